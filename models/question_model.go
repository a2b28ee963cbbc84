package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Question struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ExerciseID uuid.UUID `gorm:"type:uuid;not null;index" validate:"required" json:"exercise_id"`
	Title      string    `gorm:"size:255;not null" validate:"required" json:"title"`
	Statement  string    `gorm:"type:text" json:"statement"`

	Exercise     Exercise             `gorm:"foreignkey:ExerciseID" validate:"-" json:"-"`
	Dependencies []QuestionDependency `gorm:"foreignKey:Question1ID" json:"dependencies,omitempty"`
	TestCases    []TestCase           `gorm:"foreignKey:QuestionID" json:"test_cases,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (q *Question) BeforeSave(tx *gorm.DB) error {
	errs := ValidationErrors{}
	checkStruct(q, errs)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
