package dto

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	"ttracker_backend/internals/features/athletes/model"
	helper "ttracker_backend/internals/helpers"
)

func strPtr(s string) *string { return &s }

func validCreateRequest() CreateAthleteRequest {
	return CreateAthleteRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Gender:    "female",
		Birthdate: "2010-04-12",
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

func TestCreateAthleteValid(t *testing.T) {
	r := validCreateRequest()
	r.Normalize()
	if vs := r.Validate(); len(vs) != 0 {
		t.Fatalf("expected no violations, got %v", vs)
	}
}

func TestCreateAthleteMissingRequiredFields(t *testing.T) {
	r := CreateAthleteRequest{}
	r.Normalize()
	vs := r.Validate()

	if v := violationByField(vs, "first_name"); v == nil || v.Message != "First name must be specified" {
		t.Errorf("first_name violation = %v", v)
	}
	if v := violationByField(vs, "last_name"); v == nil || v.Message != "Last name must be specified" {
		t.Errorf("last_name violation = %v", v)
	}
	if v := violationByField(vs, "birthdate"); v == nil || v.Message != "Invalid date of birth" {
		t.Errorf("birthdate violation = %v", v)
	}
}

func TestCreateAthleteViolationOrder(t *testing.T) {
	r := CreateAthleteRequest{Birthdate: "not-a-date"}
	r.Normalize()
	vs := r.Validate()

	if len(vs) < 3 {
		t.Fatalf("expected at least 3 violations, got %v", vs)
	}
	want := []string{"first_name", "last_name", "birthdate"}
	for i, field := range want {
		if vs[i].Field != field {
			t.Errorf("violation %d: expected field %s, got %s", i, field, vs[i].Field)
		}
	}
}

func TestCreateAthleteCharsetRules(t *testing.T) {
	r := validCreateRequest()
	r.FirstName = "Jane!"
	r.Normalize()
	vs := r.Validate()
	if v := violationByField(vs, "first_name"); v == nil || v.Message != "First name has non-alphanumeric characters" {
		t.Errorf("first_name violation = %v", v)
	}

	// Spaces are allowed in first names but not last names.
	r = validCreateRequest()
	r.FirstName = "Mary Jane"
	r.LastName = "van Dyk"
	r.Normalize()
	vs = r.Validate()
	if v := violationByField(vs, "first_name"); v != nil {
		t.Errorf("unexpected first_name violation: %v", v)
	}
	if v := violationByField(vs, "last_name"); v == nil || v.Message != "Last name has non-alphanumeric characters" {
		t.Errorf("last_name violation = %v", v)
	}
}

func TestCreateAthleteInvalidBirthdate(t *testing.T) {
	r := validCreateRequest()
	r.Birthdate = "12/04/2010"
	r.Normalize()
	vs := r.Validate()
	if v := violationByField(vs, "birthdate"); v == nil || v.Message != "Invalid date of birth" {
		t.Errorf("birthdate violation = %v", v)
	}
}

func TestCreateAthleteOptionalRules(t *testing.T) {
	r := validCreateRequest()
	r.Mobile = strPtr("1234567")
	r.Email = strPtr("not-an-email")
	r.School = strPtr("x")
	r.Normalize()
	vs := r.Validate()

	if v := violationByField(vs, "mobile"); v == nil || v.Message != "Mobile number must be exactly 8 digits" {
		t.Errorf("mobile violation = %v", v)
	}
	if v := violationByField(vs, "email"); v == nil || v.Message != "Invalid email address" {
		t.Errorf("email violation = %v", v)
	}
	if v := violationByField(vs, "school"); v == nil || v.Message != "School name must be at least 2 characters" {
		t.Errorf("school violation = %v", v)
	}
}

func TestNormalizeDropsEmptyOptionals(t *testing.T) {
	r := validCreateRequest()
	r.Mobile = strPtr("   ")
	r.Email = strPtr("")
	r.School = strPtr(" ")
	r.Normalize()

	if r.Mobile != nil || r.Email != nil || r.School != nil {
		t.Errorf("empty optionals should become nil: mobile=%v email=%v school=%v",
			r.Mobile, r.Email, r.School)
	}
	if vs := r.Validate(); len(vs) != 0 {
		t.Errorf("expected no violations after dropping empties, got %v", vs)
	}
}

func TestNormalizeTrimsAndEscapes(t *testing.T) {
	r := validCreateRequest()
	r.FirstName = "  Jane "
	r.Email = strPtr(" Jane.Doe@Example.COM ")
	r.Normalize()

	if r.FirstName != "Jane" {
		t.Errorf("expected trimmed first name, got %q", r.FirstName)
	}
	if r.Email == nil || *r.Email != "jane.doe@example.com" {
		t.Errorf("expected lowercased email, got %v", r.Email)
	}

	r = validCreateRequest()
	r.FirstName = "<b>Jane</b>"
	r.Normalize()
	if r.FirstName != "&lt;b&gt;Jane&lt;/b&gt;" {
		t.Errorf("expected escaped markup, got %q", r.FirstName)
	}
}

func TestCreateToModelDefaultsActive(t *testing.T) {
	r := validCreateRequest()
	r.Normalize()
	m := r.ToModel()

	if !m.Active {
		t.Error("expected active to default to true")
	}
	if got := time.Time(m.Birthdate).Format("2006-01-02"); got != "2010-04-12" {
		t.Errorf("expected birthdate 2010-04-12, got %s", got)
	}

	inactive := false
	r.Active = &inactive
	if m := r.ToModel(); m.Active {
		t.Error("expected supplied active=false to win over the default")
	}
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	bd, _ := time.Parse("2006-01-02", "2010-04-12")
	m := &model.AthleteModel{
		FirstName: "Jane",
		LastName:  "Doe",
		Gender:    "female",
		Birthdate: datatypes.Date(bd),
		Mobile:    strPtr("12345678"),
	}

	u := UpdateAthleteRequest{LastName: strPtr("Smith")}
	u.Normalize()
	if vs := u.Validate(); len(vs) != 0 {
		t.Fatalf("expected no violations, got %v", vs)
	}
	u.ApplyToModel(m)

	if m.LastName != "Smith" {
		t.Errorf("expected last name Smith, got %q", m.LastName)
	}
	if m.FirstName != "Jane" || m.Gender != "female" {
		t.Errorf("untouched fields changed: %q %q", m.FirstName, m.Gender)
	}
	if m.Mobile == nil || *m.Mobile != "12345678" {
		t.Errorf("untouched mobile changed: %v", m.Mobile)
	}
}

func TestResponseFormatsBirthdate(t *testing.T) {
	bd, _ := time.Parse("2006-01-02", "2010-04-12")
	m := &model.AthleteModel{
		FirstName: "jane",
		LastName:  "doe",
		Birthdate: datatypes.Date(bd),
	}
	resp := FromModel(m)

	if resp.Birthdate != "2010-04-12" {
		t.Errorf("expected 2010-04-12, got %q", resp.Birthdate)
	}
	if resp.Name != "Jane Doe" {
		t.Errorf("expected capitalized full name, got %q", resp.Name)
	}
}
