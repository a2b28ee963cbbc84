package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"size:255;not null" validate:"required" json:"name"`
	InviteCode string    `gorm:"size:8;unique" json:"invite_code"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null" validate:"required" json:"owner_id"`

	Owner     User        `gorm:"foreignkey:OwnerID" validate:"-" json:"-"`
	Members   []*User     `gorm:"many2many:team_members;" json:"members,omitempty"`
	Exercises []*Exercise `gorm:"many2many:team_exercises;" json:"exercises,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Team) BeforeSave(tx *gorm.DB) error {
	errs := ValidationErrors{}
	checkStruct(t, errs)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
