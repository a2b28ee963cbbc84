package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DependencyOr  = "OR"
	DependencyAnd = "AND"
)

// QuestionDependency is a directed edge: question_1 may only be answered once
// its question_2 prerequisites are completed, grouped per operator.
type QuestionDependency struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Question1ID uuid.UUID `gorm:"column:question_1_id;type:uuid;not null;index" validate:"required" json:"question_1_id"`
	Question2ID uuid.UUID `gorm:"column:question_2_id;type:uuid;not null" validate:"required" json:"question_2_id"`
	Operator    string    `gorm:"size:3;not null" validate:"required,oneof=OR AND" json:"operator"`

	Question1 Question `gorm:"foreignkey:Question1ID" validate:"-" json:"-"`
	Question2 Question `gorm:"foreignkey:Question2ID" validate:"-" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (d *QuestionDependency) BeforeSave(tx *gorm.DB) error {
	errs := ValidationErrors{}
	checkStruct(d, errs)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (d *QuestionDependency) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
