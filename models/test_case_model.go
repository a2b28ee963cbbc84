package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestCase struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	QuestionID     uuid.UUID `gorm:"type:uuid;not null;index" validate:"required" json:"question_id"`
	Input          string    `gorm:"type:text" json:"input"`
	ExpectedOutput string    `gorm:"type:text;not null" validate:"required" json:"expected_output"`
	Hidden         bool      `gorm:"not null;default:false" json:"hidden"`

	Question Question `gorm:"foreignkey:QuestionID" validate:"-" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (tc *TestCase) BeforeSave(tx *gorm.DB) error {
	errs := ValidationErrors{}
	checkStruct(tc, errs)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (tc *TestCase) BeforeCreate(tx *gorm.DB) error {
	if tc.ID == uuid.Nil {
		tc.ID = uuid.New()
	}
	return nil
}
