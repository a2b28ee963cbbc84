package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" validate:"required" json:"name"`
	Email       string    `gorm:"size:255;not null;unique" validate:"required,address" json:"email"`
	Password    string    `gorm:"not null" validate:"required" json:"-"`
	AnonymousID string    `gorm:"size:36;not null;unique" validate:"required" json:"anonymous_id"`
	Teacher     *bool     `gorm:"not null;default:false" validate:"required" json:"teacher"`
	Admin       *bool     `gorm:"not null;default:false" validate:"required" json:"admin"`

	ResetPasswordToken          *string    `gorm:"size:255;unique" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`

	TeamsCreated []Team   `gorm:"foreignKey:OwnerID" json:"teams_created,omitempty"`
	Teams        []*Team  `gorm:"many2many:team_members;" json:"teams,omitempty"`
	Answers      []Answer `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	// The anonymous ID is assigned on the first persistence attempt and never
	// regenerated afterwards.
	if u.AnonymousID == "" {
		u.AnonymousID = uuid.NewString()
	}

	errs := ValidationErrors{}
	checkStruct(u, errs)

	if u.Email != "" {
		var count int64
		if err := tx.Model(&User{}).
			Where("email = ? AND id <> ?", u.Email, u.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			errs.Add("email", "has already been taken")
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) IsOwner(team *Team) bool {
	return team.OwnerID == u.ID
}

// TeamsFromWhereBelongs returns every team the user owns or is a member of,
// without duplicates.
func (u *User) TeamsFromWhereBelongs(db *gorm.DB) ([]Team, error) {
	var teams []Team
	err := db.Distinct("teams.*").
		Joins("LEFT JOIN team_members ON team_members.team_id = teams.id").
		Where("teams.owner_id = ? OR team_members.user_id = ?", u.ID, u.ID).
		Find(&teams).Error
	return teams, err
}
