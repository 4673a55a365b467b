package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserModel maps the users table. Password holds a bcrypt hash and is
// never serialized.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName string    `gorm:"size:20;not null" json:"first_name"`
	LastName  string    `gorm:"size:20;not null" json:"last_name"`
	Gender    string    `gorm:"type:varchar(10);not null" json:"gender"`
	Username  string    `gorm:"size:10;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Mobile    string    `gorm:"size:15;not null" json:"mobile"`
	Email     *string   `gorm:"size:50" json:"email,omitempty"`
	Role      string    `gorm:"type:varchar(20);not null;default:'visitor'" json:"role"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues fills defaults before insert.
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "visitor"
	}
}

// FullName is the display name: both parts capitalized, empty when
// either part is missing.
func (u *UserModel) FullName() string {
	if u.FirstName == "" || u.LastName == "" {
		return ""
	}
	return capitalize(u.FirstName) + " " + capitalize(u.LastName)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
