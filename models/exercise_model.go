package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Exercise struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title       string     `gorm:"size:255;not null" validate:"required" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Deadline    *time.Time `json:"deadline"`

	Questions []Question `gorm:"foreignKey:ExerciseID" json:"questions,omitempty"`
	Teams     []*Team    `gorm:"many2many:team_exercises;" json:"teams,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Exercise) BeforeSave(tx *gorm.DB) error {
	errs := ValidationErrors{}
	checkStruct(e, errs)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
