package helper

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"my photo (1).jpg", "my-photo-1-.jpg"},
		{"../../etc/passwd", "..-..-etc-passwd"},
		{"  ", ""},
	}
	for _, tc := range cases {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerateUniqueFilename(t *testing.T) {
	a := GenerateUniqueFilename("photo.jpg")
	b := GenerateUniqueFilename("photo.jpg")

	if a == b {
		t.Error("two generated names should differ")
	}
	if !strings.HasSuffix(a, "photo.jpg") {
		t.Errorf("expected original name kept as suffix, got %q", a)
	}

	if got := GenerateUniqueFilename("???"); !strings.HasSuffix(got, "file") {
		t.Errorf("expected fallback base for empty sanitized name, got %q", got)
	}
}
