package dto

import (
	"html"
	"strings"

	"github.com/google/uuid"

	"ttracker_backend/internals/features/users/user/model"
	helper "ttracker_backend/internals/helpers"
)

var userMessages = map[string]string{
	"first_name.required":         "First name must be specified",
	"first_name.min":              "First name must be specified",
	"first_name.first_name_chars": "First name has non-alphanumeric characters",
	"last_name.required":          "Last name must be specified",
	"last_name.min":               "Last name must be specified",
	"last_name.last_name_chars":   "Last name has non-alphanumeric characters",
	"username.required":           "Username must be between 4 to 10 characters.",
	"username.min":                "Username must be between 4 to 10 characters.",
	"username.max":                "Username must be between 4 to 10 characters.",
	"username.alphanum":           "Username has non-alphanumeric characters.",
	"password.required":           "Password must be at least 3 characters.",
	"password.min":                "Password must be at least 3 characters.",
	"mobile.required":             "Mobile number must be exactly 8 digits",
	"mobile.mobile8":              "Mobile number must be exactly 8 digits",
	"email.email":                 "Invalid email address",
}

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateUserRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=1,first_name_chars"`
	LastName  string  `json:"last_name" validate:"required,min=1,last_name_chars"`
	Gender    string  `json:"gender" validate:"omitempty,oneof=male female"`
	Username  string  `json:"username" validate:"required,min=4,max=10,alphanum"`
	Password  string  `json:"password" validate:"required,min=3"`
	Mobile    string  `json:"mobile" validate:"required,mobile8"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Role      string  `json:"role" validate:"omitempty,oneof=admin coach parent visitor"`
	Active    *bool   `json:"active,omitempty"`
}

func (r *CreateUserRequest) Normalize() {
	r.FirstName = html.EscapeString(strings.TrimSpace(r.FirstName))
	r.LastName = html.EscapeString(strings.TrimSpace(r.LastName))
	r.Gender = strings.TrimSpace(r.Gender)
	r.Username = strings.TrimSpace(r.Username)
	r.Password = strings.TrimSpace(r.Password)
	r.Mobile = strings.TrimSpace(r.Mobile)
	r.Email = normalizeOptionalEmail(r.Email)
	r.Role = strings.TrimSpace(r.Role)
}

func (r *CreateUserRequest) Validate() []helper.Violation {
	return helper.ViolationsFromError(helper.Validate.Struct(r), userMessages)
}

// ToModel converts the request; the password must be hashed by the
// caller before insert.
func (r *CreateUserRequest) ToModel() *model.UserModel {
	m := &model.UserModel{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Gender:    r.Gender,
		Username:  r.Username,
		Password:  r.Password,
		Mobile:    r.Mobile,
		Email:     r.Email,
		Role:      r.Role,
		Active:    true,
	}
	if r.Active != nil {
		m.Active = *r.Active
	}
	m.SetDefaultValues()
	return m
}

// UpdateUserRequest: partial update; omitted fields are left
// untouched.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,first_name_chars"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,last_name_chars"`
	Gender    *string `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	Username  *string `json:"username,omitempty" validate:"omitempty,min=4,max=10,alphanum"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=3"`
	Mobile    *string `json:"mobile,omitempty" validate:"omitempty,mobile8"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=admin coach parent visitor"`
	Active    *bool   `json:"active,omitempty"`
}

func (r *UpdateUserRequest) Normalize() {
	r.FirstName = normalizeOptionalText(r.FirstName)
	r.LastName = normalizeOptionalText(r.LastName)
	r.Gender = normalizeOptionalPlain(r.Gender)
	r.Username = normalizeOptionalPlain(r.Username)
	r.Password = normalizeOptionalPlain(r.Password)
	r.Mobile = normalizeOptionalPlain(r.Mobile)
	r.Email = normalizeOptionalEmail(r.Email)
	r.Role = normalizeOptionalPlain(r.Role)
}

func (r *UpdateUserRequest) Validate() []helper.Violation {
	return helper.ViolationsFromError(helper.Validate.Struct(r), userMessages)
}

// ApplyToModel merges supplied fields; a supplied password must be
// hashed by the caller before Save.
func (r *UpdateUserRequest) ApplyToModel(m *model.UserModel) {
	if r.FirstName != nil {
		m.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.LastName = *r.LastName
	}
	if r.Gender != nil {
		m.Gender = *r.Gender
	}
	if r.Username != nil {
		m.Username = *r.Username
	}
	if r.Password != nil {
		m.Password = *r.Password
	}
	if r.Mobile != nil {
		m.Mobile = *r.Mobile
	}
	if r.Email != nil {
		m.Email = r.Email
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.Active != nil {
		m.Active = *r.Active
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Name      string    `json:"name"`
	Gender    string    `json:"gender"`
	Username  string    `json:"username"`
	Mobile    string    `json:"mobile"`
	Email     *string   `json:"email,omitempty"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
}

func FromModel(m *model.UserModel) *UserResponse {
	return &UserResponse{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Name:      m.FullName(),
		Gender:    m.Gender,
		Username:  m.Username,
		Mobile:    m.Mobile,
		Email:     m.Email,
		Role:      m.Role,
		Active:    m.Active,
	}
}

// UserListItem is the list projection: names, username, gender, active.
type UserListItem struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username"`
	Gender    string    `json:"gender"`
	Active    bool      `json:"active"`
}

func ListFromModels(ms []model.UserModel) []UserListItem {
	out := make([]UserListItem, 0, len(ms))
	for i := range ms {
		out = append(out, UserListItem{
			ID:        ms[i].ID,
			FirstName: ms[i].FirstName,
			LastName:  ms[i].LastName,
			Username:  ms[i].Username,
			Gender:    ms[i].Gender,
			Active:    ms[i].Active,
		})
	}
	return out
}

func normalizeOptionalPlain(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

func normalizeOptionalText(p *string) *string {
	if p == nil {
		return nil
	}
	v := html.EscapeString(strings.TrimSpace(*p))
	if v == "" {
		return nil
	}
	return &v
}

func normalizeOptionalEmail(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*p))
	if v == "" {
		return nil
	}
	return &v
}
