package dto

import (
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"ttracker_backend/internals/features/athletes/model"
	helper "ttracker_backend/internals/helpers"
)

const dateLayout = "2006-01-02"

// Message overrides keyed "field.tag"; wording kept from the old
// validator chains.
var athleteMessages = map[string]string{
	"first_name.required":         "First name must be specified",
	"first_name.min":              "First name must be specified",
	"first_name.first_name_chars": "First name has non-alphanumeric characters",
	"last_name.required":          "Last name must be specified",
	"last_name.min":               "Last name must be specified",
	"last_name.last_name_chars":   "Last name has non-alphanumeric characters",
	"birthdate.required":          "Invalid date of birth",
	"birthdate.datetime":          "Invalid date of birth",
	"mobile.mobile8":              "Mobile number must be exactly 8 digits",
	"email.email":                 "Invalid email address",
	"school.min":                  "School name must be at least 2 characters",
}

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateAthleteRequest struct {
	FirstName string  `json:"first_name" form:"first_name" validate:"required,min=1,first_name_chars"`
	LastName  string  `json:"last_name" form:"last_name" validate:"required,min=1,last_name_chars"`
	Gender    string  `json:"gender" form:"gender" validate:"omitempty,oneof=male female"`
	Birthdate string  `json:"birthdate" form:"birthdate" validate:"required,datetime=2006-01-02"`
	Mobile    *string `json:"mobile,omitempty" form:"mobile" validate:"omitempty,mobile8"`
	Email     *string `json:"email,omitempty" form:"email" validate:"omitempty,email"`
	School    *string `json:"school,omitempty" form:"school" validate:"omitempty,min=2"`
	FatherID  *string `json:"father_id,omitempty" form:"father_id" validate:"omitempty,uuid"`
	MotherID  *string `json:"mother_id,omitempty" form:"mother_id" validate:"omitempty,uuid"`
	Active    *bool   `json:"active,omitempty" form:"active"`
}

// Normalize trims and escapes text inputs; empty optional strings
// become nil so their rules are skipped.
func (r *CreateAthleteRequest) Normalize() {
	r.FirstName = html.EscapeString(strings.TrimSpace(r.FirstName))
	r.LastName = html.EscapeString(strings.TrimSpace(r.LastName))
	r.Gender = strings.TrimSpace(r.Gender)
	r.Birthdate = strings.TrimSpace(r.Birthdate)
	r.Mobile = normalizeOptional(r.Mobile, false)
	r.Email = normalizeOptional(r.Email, true)
	r.School = normalizeOptionalEscaped(r.School)
	r.FatherID = normalizeOptional(r.FatherID, false)
	r.MotherID = normalizeOptional(r.MotherID, false)
}

// Validate returns the ordered violation list; empty means valid.
func (r *CreateAthleteRequest) Validate() []helper.Violation {
	return helper.ViolationsFromError(helper.Validate.Struct(r), athleteMessages)
}

// ToModel converts a validated request. Birthdate has already passed
// the datetime rule.
func (r *CreateAthleteRequest) ToModel() *model.AthleteModel {
	t, _ := time.Parse(dateLayout, r.Birthdate)
	m := &model.AthleteModel{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Gender:    r.Gender,
		Birthdate: datatypes.Date(t),
		Mobile:    r.Mobile,
		Email:     r.Email,
		School:    r.School,
		Active:    true,
	}
	if r.FatherID != nil {
		if id, err := uuid.Parse(*r.FatherID); err == nil {
			m.FatherID = &id
		}
	}
	if r.MotherID != nil {
		if id, err := uuid.Parse(*r.MotherID); err == nil {
			m.MotherID = &id
		}
	}
	if r.Active != nil {
		m.Active = *r.Active
	}
	return m
}

// UpdateAthleteRequest: partial update; only supplied fields are
// applied (merge semantics).
type UpdateAthleteRequest struct {
	FirstName *string `json:"first_name,omitempty" form:"first_name" validate:"omitempty,min=1,first_name_chars"`
	LastName  *string `json:"last_name,omitempty" form:"last_name" validate:"omitempty,min=1,last_name_chars"`
	Gender    *string `json:"gender,omitempty" form:"gender" validate:"omitempty,oneof=male female"`
	Birthdate *string `json:"birthdate,omitempty" form:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Mobile    *string `json:"mobile,omitempty" form:"mobile" validate:"omitempty,mobile8"`
	Email     *string `json:"email,omitempty" form:"email" validate:"omitempty,email"`
	School    *string `json:"school,omitempty" form:"school" validate:"omitempty,min=2"`
	FatherID  *string `json:"father_id,omitempty" form:"father_id" validate:"omitempty,uuid"`
	MotherID  *string `json:"mother_id,omitempty" form:"mother_id" validate:"omitempty,uuid"`
	Active    *bool   `json:"active,omitempty" form:"active"`
}

func (r *UpdateAthleteRequest) Normalize() {
	r.FirstName = normalizeOptionalEscaped(r.FirstName)
	r.LastName = normalizeOptionalEscaped(r.LastName)
	r.Gender = normalizeOptional(r.Gender, false)
	r.Birthdate = normalizeOptional(r.Birthdate, false)
	r.Mobile = normalizeOptional(r.Mobile, false)
	r.Email = normalizeOptional(r.Email, true)
	r.School = normalizeOptionalEscaped(r.School)
	r.FatherID = normalizeOptional(r.FatherID, false)
	r.MotherID = normalizeOptional(r.MotherID, false)
}

func (r *UpdateAthleteRequest) Validate() []helper.Violation {
	return helper.ViolationsFromError(helper.Validate.Struct(r), athleteMessages)
}

// ApplyToModel merges supplied fields into an existing record.
func (r *UpdateAthleteRequest) ApplyToModel(m *model.AthleteModel) {
	if r.FirstName != nil {
		m.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.LastName = *r.LastName
	}
	if r.Gender != nil {
		m.Gender = *r.Gender
	}
	if r.Birthdate != nil {
		if t, err := time.Parse(dateLayout, *r.Birthdate); err == nil {
			m.Birthdate = datatypes.Date(t)
		}
	}
	if r.Mobile != nil {
		m.Mobile = r.Mobile
	}
	if r.Email != nil {
		m.Email = r.Email
	}
	if r.School != nil {
		m.School = r.School
	}
	if r.FatherID != nil {
		if id, err := uuid.Parse(*r.FatherID); err == nil {
			m.FatherID = &id
		}
	}
	if r.MotherID != nil {
		if id, err := uuid.Parse(*r.MotherID); err == nil {
			m.MotherID = &id
		}
	}
	if r.Active != nil {
		m.Active = *r.Active
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type AthleteResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Name      string    `json:"name"`
	Gender    string    `json:"gender"`
	Birthdate string    `json:"birthdate"`
	FatherID  *string   `json:"father_id,omitempty"`
	MotherID  *string   `json:"mother_id,omitempty"`
	Mobile    *string   `json:"mobile,omitempty"`
	Email     *string   `json:"email,omitempty"`
	School    *string   `json:"school,omitempty"`
	Active    bool      `json:"active"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
}

func FromModel(m *model.AthleteModel) *AthleteResponse {
	return &AthleteResponse{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Name:      m.FullName(),
		Gender:    m.Gender,
		Birthdate: time.Time(m.Birthdate).Format(dateLayout),
		FatherID:  uuidPtrToString(m.FatherID),
		MotherID:  uuidPtrToString(m.MotherID),
		Mobile:    m.Mobile,
		Email:     m.Email,
		School:    m.School,
		Active:    m.Active,
		PhotoURL:  m.PhotoURL,
	}
}

// AthleteListItem is the list projection: names, gender, active.
type AthleteListItem struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Name      string    `json:"name"`
	Gender    string    `json:"gender"`
	Active    bool      `json:"active"`
}

func ListItemFromModel(m *model.AthleteModel) AthleteListItem {
	return AthleteListItem{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Name:      m.FullName(),
		Gender:    m.Gender,
		Active:    m.Active,
	}
}

func ListFromModels(ms []model.AthleteModel) []AthleteListItem {
	out := make([]AthleteListItem, 0, len(ms))
	for i := range ms {
		out = append(out, ListItemFromModel(&ms[i]))
	}
	return out
}

/* =======================================================
   shared normalizers
   ======================================================= */

func normalizeOptional(p *string, lower bool) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	if lower {
		v = strings.ToLower(v)
	}
	return &v
}

func normalizeOptionalEscaped(p *string) *string {
	if p == nil {
		return nil
	}
	v := html.EscapeString(strings.TrimSpace(*p))
	if v == "" {
		return nil
	}
	return &v
}

func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
