package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	athleteModel "ttracker_backend/internals/features/athletes/model"
	userModel "ttracker_backend/internals/features/users/user/model"
)

// AttendanceModel maps the attendances table. Coaches and athletes are
// reference lists through join tables.
type AttendanceModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date      datatypes.Date `gorm:"type:date" json:"-"`
	Venue     string         `gorm:"size:50" json:"venue"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	Coaches  []userModel.UserModel       `gorm:"many2many:attendance_coaches" json:"-"`
	Athletes []athleteModel.AthleteModel `gorm:"many2many:attendance_athletes" json:"-"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
