package helper

import (
	"testing"
)

type sampleRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=1,first_name_chars"`
	LastName  string  `json:"last_name" validate:"required,min=1,last_name_chars"`
	Mobile    *string `json:"mobile,omitempty" validate:"omitempty,mobile8"`
}

func TestViolationsFromErrorNilError(t *testing.T) {
	got := ViolationsFromError(nil, nil)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no violations, got %d", len(got))
	}
}

func TestViolationsUseJSONFieldNames(t *testing.T) {
	req := sampleRequest{FirstName: "", LastName: "Smith"}
	violations := ViolationsFromError(Validate.Struct(&req), nil)

	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d: %v", len(violations), violations)
	}
	if violations[0].Field != "first_name" {
		t.Errorf("expected field first_name, got %q", violations[0].Field)
	}
}

func TestViolationsOrderFollowsFieldOrder(t *testing.T) {
	bad := "12345"
	req := sampleRequest{FirstName: "", LastName: "", Mobile: &bad}
	violations := ViolationsFromError(Validate.Struct(&req), nil)

	if len(violations) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(violations), violations)
	}
	want := []string{"first_name", "last_name", "mobile"}
	for i, field := range want {
		if violations[i].Field != field {
			t.Errorf("violation %d: expected field %q, got %q", i, field, violations[i].Field)
		}
	}
}

func TestViolationMessageOverride(t *testing.T) {
	req := sampleRequest{FirstName: "", LastName: "Smith"}
	overrides := map[string]string{"first_name.required": "First name must be specified"}
	violations := ViolationsFromError(Validate.Struct(&req), overrides)

	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	if violations[0].Message != "First name must be specified" {
		t.Errorf("override not applied, got %q", violations[0].Message)
	}
}

func TestMobile8Tag(t *testing.T) {
	cases := []struct {
		mobile string
		ok     bool
	}{
		{"12345678", true},
		{"1234567", false},
		{"123456789", false},
		{"1234567a", false},
	}
	for _, tc := range cases {
		m := tc.mobile
		req := sampleRequest{FirstName: "A", LastName: "B", Mobile: &m}
		violations := ViolationsFromError(Validate.Struct(&req), nil)
		if tc.ok && len(violations) != 0 {
			t.Errorf("mobile %q: unexpected violations %v", tc.mobile, violations)
		}
		if !tc.ok && len(violations) == 0 {
			t.Errorf("mobile %q: expected a violation", tc.mobile)
		}
	}
}

func TestNameCharsets(t *testing.T) {
	cases := []struct {
		first, last string
		valid       bool
	}{
		{"Mary Jane", "Smith-Jones", true},
		{"J. R.", "Tolkien", true},
		{"Anna!", "Smith", false},
		{"Anna", "Smith Jones", false}, // space not allowed in last name
	}
	for _, tc := range cases {
		req := sampleRequest{FirstName: tc.first, LastName: tc.last}
		violations := ViolationsFromError(Validate.Struct(&req), nil)
		if tc.valid && len(violations) != 0 {
			t.Errorf("%q/%q: unexpected violations %v", tc.first, tc.last, violations)
		}
		if !tc.valid && len(violations) == 0 {
			t.Errorf("%q/%q: expected a violation", tc.first, tc.last)
		}
	}
}
