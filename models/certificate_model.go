package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Certificate struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TeamID         uuid.UUID `gorm:"type:uuid;not null" validate:"required" json:"team_id"`
	ExerciseID     uuid.UUID `gorm:"type:uuid;not null" validate:"required" json:"exercise_id"`
	Title          string    `gorm:"size:255;not null" validate:"required" json:"title"`
	CertificateURL string    `gorm:"type:text;not null" validate:"required" json:"certificate_url"`
	CompletionDate time.Time `gorm:"not null" json:"completion_date"`

	Team     Team     `gorm:"foreignkey:TeamID" validate:"-" json:"-"`
	Exercise Exercise `gorm:"foreignkey:ExerciseID" validate:"-" json:"-"`
}

func (c *Certificate) BeforeSave(tx *gorm.DB) error {
	errs := ValidationErrors{}
	checkStruct(c, errs)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
