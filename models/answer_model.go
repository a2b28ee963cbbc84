package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Answer struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" validate:"required" json:"question_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null" validate:"required" json:"user_id"`
	TeamID     uuid.UUID `gorm:"type:uuid;not null;index" validate:"required" json:"team_id"`
	Content    string    `gorm:"type:text;not null" validate:"required" json:"content"`
	Correct    bool      `gorm:"not null;default:false" json:"correct"`

	Question Question               `gorm:"foreignkey:QuestionID" validate:"-" json:"-"`
	User     User                   `gorm:"foreignkey:UserID" validate:"-" json:"-"`
	Team     Team                   `gorm:"foreignkey:TeamID" validate:"-" json:"-"`
	Results  []AnswerTestCaseResult `gorm:"foreignKey:AnswerID" json:"results,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Answer) BeforeSave(tx *gorm.DB) error {
	errs := ValidationErrors{}
	checkStruct(a, errs)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
