package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerTestCaseResult stores the output an answer produced for one test
// case and whether it matched the expected output.
type AnswerTestCaseResult struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AnswerID   uuid.UUID `gorm:"type:uuid;not null;index" validate:"required" json:"answer_id"`
	TestCaseID uuid.UUID `gorm:"type:uuid;not null;index" validate:"required" json:"test_case_id"`
	Output     string    `gorm:"type:text;not null" validate:"required" json:"output"`
	Passed     bool      `gorm:"not null;default:false" json:"passed"`

	Answer   Answer   `gorm:"foreignkey:AnswerID" validate:"-" json:"answer,omitempty"`
	TestCase TestCase `gorm:"foreignkey:TestCaseID" validate:"-" json:"test_case,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *AnswerTestCaseResult) BeforeSave(tx *gorm.DB) error {
	errs := ValidationErrors{}
	checkStruct(r, errs)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *AnswerTestCaseResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
