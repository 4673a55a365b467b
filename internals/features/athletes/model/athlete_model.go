package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	parentModel "ttracker_backend/internals/features/parents/model"
)

// AthleteModel maps the athletes table. The (first_name, last_name)
// pair is the de-duplication key on create.
type AthleteModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName string         `gorm:"size:20;not null" json:"first_name"`
	LastName  string         `gorm:"size:20;not null" json:"last_name"`
	Gender    string         `gorm:"type:varchar(10)" json:"gender"`
	Birthdate datatypes.Date `gorm:"type:date" json:"-"`
	FatherID  *uuid.UUID     `gorm:"type:uuid" json:"father_id,omitempty"`
	MotherID  *uuid.UUID     `gorm:"type:uuid" json:"mother_id,omitempty"`
	Mobile    *string        `gorm:"size:15" json:"mobile,omitempty"`
	Email     *string        `gorm:"size:50" json:"email,omitempty"`
	School    *string        `gorm:"size:50" json:"school,omitempty"`
	Active    bool           `gorm:"not null;default:true" json:"active"`
	PhotoURL  *string        `json:"photo_url,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	Father *parentModel.ParentModel `gorm:"foreignKey:FatherID" json:"father,omitempty"`
	Mother *parentModel.ParentModel `gorm:"foreignKey:MotherID" json:"mother,omitempty"`
}

func (AthleteModel) TableName() string {
	return "athletes"
}

// FullName is the display name: both parts capitalized, empty when
// either part is missing.
func (m *AthleteModel) FullName() string {
	if m.FirstName == "" || m.LastName == "" {
		return ""
	}
	return capitalize(m.FirstName) + " " + capitalize(m.LastName)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
