package dto

import (
	"html"
	"strings"

	"github.com/google/uuid"

	"ttracker_backend/internals/features/parents/model"
	helper "ttracker_backend/internals/helpers"
)

var parentMessages = map[string]string{
	"first_name.required":         "First name must be specified",
	"first_name.min":              "First name must be specified",
	"first_name.first_name_chars": "First name has non-alphanumeric characters",
	"last_name.required":          "Last name must be specified",
	"last_name.min":               "Last name must be specified",
	"last_name.last_name_chars":   "Last name has non-alphanumeric characters",
	"mobile.required":             "Mobile number must be exactly 8 digits",
	"mobile.mobile8":              "Mobile number must be exactly 8 digits",
	"email.required":              "Invalid email address",
	"email.email":                 "Invalid email address",
}

type CreateParentRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,first_name_chars"`
	LastName  string `json:"last_name" validate:"required,min=1,last_name_chars"`
	Mobile    string `json:"mobile" validate:"required,mobile8"`
	Email     string `json:"email" validate:"required,email"`
}

func (r *CreateParentRequest) Normalize() {
	r.FirstName = html.EscapeString(strings.TrimSpace(r.FirstName))
	r.LastName = html.EscapeString(strings.TrimSpace(r.LastName))
	r.Mobile = strings.TrimSpace(r.Mobile)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *CreateParentRequest) Validate() []helper.Violation {
	return helper.ViolationsFromError(helper.Validate.Struct(r), parentMessages)
}

func (r *CreateParentRequest) ToModel() *model.ParentModel {
	return &model.ParentModel{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Mobile:    r.Mobile,
		Email:     r.Email,
	}
}

// UpdateParentRequest: partial update, merge semantics.
type UpdateParentRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,first_name_chars"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,last_name_chars"`
	Mobile    *string `json:"mobile,omitempty" validate:"omitempty,mobile8"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
}

func (r *UpdateParentRequest) Normalize() {
	if r.FirstName != nil {
		v := html.EscapeString(strings.TrimSpace(*r.FirstName))
		r.FirstName = &v
	}
	if r.LastName != nil {
		v := html.EscapeString(strings.TrimSpace(*r.LastName))
		r.LastName = &v
	}
	if r.Mobile != nil {
		v := strings.TrimSpace(*r.Mobile)
		r.Mobile = &v
	}
	if r.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &v
	}
}

func (r *UpdateParentRequest) Validate() []helper.Violation {
	return helper.ViolationsFromError(helper.Validate.Struct(r), parentMessages)
}

func (r *UpdateParentRequest) ApplyToModel(m *model.ParentModel) {
	if r.FirstName != nil {
		m.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.LastName = *r.LastName
	}
	if r.Mobile != nil {
		m.Mobile = *r.Mobile
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
}

type ParentResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Mobile    string    `json:"mobile"`
	Email     string    `json:"email"`
}

func FromModel(m *model.ParentModel) *ParentResponse {
	return &ParentResponse{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Mobile:    m.Mobile,
		Email:     m.Email,
	}
}

func ListFromModels(ms []model.ParentModel) []ParentResponse {
	out := make([]ParentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}
