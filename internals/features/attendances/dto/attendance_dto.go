package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	athleteDTO "ttracker_backend/internals/features/athletes/dto"
	"ttracker_backend/internals/features/attendances/model"
	userDTO "ttracker_backend/internals/features/users/user/dto"
)

const dateLayout = "2006-01-02"

// CreateAttendanceRequest carries date, venue and the reference lists.
// There are no field-level rules beyond id syntax.
type CreateAttendanceRequest struct {
	Date       string   `json:"date"`
	Venue      string   `json:"venue"`
	CoachIDs   []string `json:"coach_ids"`
	AthleteIDs []string `json:"athlete_ids"`
}

func (r *CreateAttendanceRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.Venue = strings.TrimSpace(r.Venue)
}

// ParseIDs resolves the reference lists; any malformed id fails the
// whole request.
func (r *CreateAttendanceRequest) ParseIDs() (coaches, athletes []uuid.UUID, err error) {
	for _, s := range r.CoachIDs {
		id, perr := uuid.Parse(strings.TrimSpace(s))
		if perr != nil {
			return nil, nil, perr
		}
		coaches = append(coaches, id)
	}
	for _, s := range r.AthleteIDs {
		id, perr := uuid.Parse(strings.TrimSpace(s))
		if perr != nil {
			return nil, nil, perr
		}
		athletes = append(athletes, id)
	}
	return coaches, athletes, nil
}

// ToModel builds the record; the date falls back to today when absent
// or unparseable, matching the old loose schema.
func (r *CreateAttendanceRequest) ToModel() *model.AttendanceModel {
	t, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		t = time.Now()
	}
	return &model.AttendanceModel{
		Date:  datatypes.Date(t),
		Venue: r.Venue,
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type AttendanceListItem struct {
	ID    uuid.UUID `json:"id"`
	Date  string    `json:"date"`
	Venue string    `json:"venue"`
}

func ListFromModels(ms []model.AttendanceModel) []AttendanceListItem {
	out := make([]AttendanceListItem, 0, len(ms))
	for i := range ms {
		out = append(out, AttendanceListItem{
			ID:    ms[i].ID,
			Date:  time.Time(ms[i].Date).Format(dateLayout),
			Venue: ms[i].Venue,
		})
	}
	return out
}

type AttendanceDetail struct {
	ID       uuid.UUID                   `json:"id"`
	Date     string                      `json:"date"`
	Venue    string                      `json:"venue"`
	Coaches  []userDTO.UserListItem      `json:"coaches"`
	Athletes []athleteDTO.AthleteListItem `json:"athletes"`
}
