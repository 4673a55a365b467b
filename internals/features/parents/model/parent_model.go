package model

import (
	"time"

	"github.com/google/uuid"
)

// ParentModel maps the parents table. Referenced by athletes as father
// or mother.
type ParentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName string    `gorm:"size:20;not null" json:"first_name"`
	LastName  string    `gorm:"size:20;not null" json:"last_name"`
	Mobile    string    `gorm:"size:15;not null" json:"mobile"`
	Email     string    `gorm:"size:50;not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ParentModel) TableName() string {
	return "parents"
}
