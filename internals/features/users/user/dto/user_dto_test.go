package dto

import (
	"testing"

	"ttracker_backend/internals/constants"
	"ttracker_backend/internals/features/users/user/model"
	helper "ttracker_backend/internals/helpers"
)

func strPtr(s string) *string { return &s }

func validCreateRequest() CreateUserRequest {
	return CreateUserRequest{
		FirstName: "John",
		LastName:  "Doe",
		Username:  "johnd",
		Password:  "secret",
		Mobile:    "12345678",
	}
}

func violationByField(vs []helper.Violation, field string) *helper.Violation {
	for i := range vs {
		if vs[i].Field == field {
			return &vs[i]
		}
	}
	return nil
}

func TestCreateUserValid(t *testing.T) {
	r := validCreateRequest()
	r.Normalize()
	if vs := r.Validate(); len(vs) != 0 {
		t.Fatalf("expected no violations, got %v", vs)
	}
}

func TestCreateUserUsernameBounds(t *testing.T) {
	cases := []struct {
		username string
		want     string
	}{
		{"abc", "Username must be between 4 to 10 characters."},
		{"abcdefghijk", "Username must be between 4 to 10 characters."},
		{"john doe", "Username has non-alphanumeric characters."},
		{"john.doe", "Username has non-alphanumeric characters."},
	}
	for _, tc := range cases {
		r := validCreateRequest()
		r.Username = tc.username
		r.Normalize()
		vs := r.Validate()
		v := violationByField(vs, "username")
		if v == nil || v.Message != tc.want {
			t.Errorf("username %q: violation = %v, want %q", tc.username, v, tc.want)
		}
	}

	r := validCreateRequest()
	r.Username = "abcd"
	r.Normalize()
	if v := violationByField(r.Validate(), "username"); v != nil {
		t.Errorf("username abcd should be valid, got %v", v)
	}
}

func TestCreateUserPasswordMin(t *testing.T) {
	r := validCreateRequest()
	r.Password = "ab"
	r.Normalize()
	if v := violationByField(r.Validate(), "password"); v == nil || v.Message != "Password must be at least 3 characters." {
		t.Errorf("password violation = %v", v)
	}

	r = validCreateRequest()
	r.Password = "abc"
	r.Normalize()
	if v := violationByField(r.Validate(), "password"); v != nil {
		t.Errorf("3-char password should be valid, got %v", v)
	}
}

func TestCreateUserMobileRequired(t *testing.T) {
	for _, mobile := range []string{"", "1234567", "123456789", "1234567a"} {
		r := validCreateRequest()
		r.Mobile = mobile
		r.Normalize()
		if v := violationByField(r.Validate(), "mobile"); v == nil || v.Message != "Mobile number must be exactly 8 digits" {
			t.Errorf("mobile %q: violation = %v", mobile, v)
		}
	}
}

func TestCreateUserRoleValues(t *testing.T) {
	for _, role := range constants.ValidRoles {
		r := validCreateRequest()
		r.Role = role
		r.Normalize()
		if v := violationByField(r.Validate(), "role"); v != nil {
			t.Errorf("role %q should be valid, got %v", role, v)
		}
	}

	r := validCreateRequest()
	r.Role = "superuser"
	r.Normalize()
	if v := violationByField(r.Validate(), "role"); v == nil {
		t.Error("expected a violation for an unknown role")
	}
}

func TestCreateUserNormalizeEmail(t *testing.T) {
	r := validCreateRequest()
	r.Email = strPtr(" John.Doe@Example.COM ")
	r.Normalize()
	if r.Email == nil || *r.Email != "john.doe@example.com" {
		t.Errorf("expected lowercased trimmed email, got %v", r.Email)
	}

	r = validCreateRequest()
	r.Email = strPtr("  ")
	r.Normalize()
	if r.Email != nil {
		t.Errorf("blank email should become nil, got %v", r.Email)
	}
}

func TestCreateUserToModelDefaults(t *testing.T) {
	r := validCreateRequest()
	r.Normalize()
	m := r.ToModel()

	if !m.Active {
		t.Error("expected active default true")
	}
	if m.Role != constants.RoleVisitor {
		t.Errorf("expected default role visitor, got %q", m.Role)
	}
}

func TestUpdateUserMerge(t *testing.T) {
	m := &model.UserModel{
		FirstName: "John",
		LastName:  "Doe",
		Username:  "johnd",
		Mobile:    "12345678",
		Role:      constants.RoleCoach,
		Active:    true,
	}

	u := UpdateUserRequest{Mobile: strPtr("87654321")}
	u.Normalize()
	if vs := u.Validate(); len(vs) != 0 {
		t.Fatalf("expected no violations, got %v", vs)
	}
	u.ApplyToModel(m)

	if m.Mobile != "87654321" {
		t.Errorf("expected mobile updated, got %q", m.Mobile)
	}
	if m.Username != "johnd" || m.Role != constants.RoleCoach || !m.Active {
		t.Errorf("untouched fields changed: %q %q %v", m.Username, m.Role, m.Active)
	}
}

func TestUpdateUserValidatesSuppliedFields(t *testing.T) {
	u := UpdateUserRequest{Username: strPtr("ab")}
	u.Normalize()
	if v := violationByField(u.Validate(), "username"); v == nil {
		t.Error("expected violation for short username on update")
	}
}
