package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParseIDsValid(t *testing.T) {
	c1, c2 := uuid.NewString(), uuid.NewString()
	a1 := uuid.NewString()
	r := CreateAttendanceRequest{
		CoachIDs:   []string{c1, " " + c2 + " "},
		AthleteIDs: []string{a1},
	}

	coaches, athletes, err := r.ParseIDs()
	if err != nil {
		t.Fatalf("ParseIDs: %v", err)
	}
	if len(coaches) != 2 || coaches[0].String() != c1 || coaches[1].String() != c2 {
		t.Errorf("coaches = %v", coaches)
	}
	if len(athletes) != 1 || athletes[0].String() != a1 {
		t.Errorf("athletes = %v", athletes)
	}
}

func TestParseIDsAnyBadIDFailsAll(t *testing.T) {
	r := CreateAttendanceRequest{
		CoachIDs:   []string{uuid.NewString()},
		AthleteIDs: []string{uuid.NewString(), "not-a-uuid"},
	}
	if _, _, err := r.ParseIDs(); err == nil {
		t.Fatal("expected error for malformed id in reference list")
	}
}

func TestParseIDsEmptyLists(t *testing.T) {
	r := CreateAttendanceRequest{}
	coaches, athletes, err := r.ParseIDs()
	if err != nil {
		t.Fatalf("ParseIDs: %v", err)
	}
	if len(coaches) != 0 || len(athletes) != 0 {
		t.Errorf("expected empty lists, got %v %v", coaches, athletes)
	}
}

func TestToModelParsesDate(t *testing.T) {
	r := CreateAttendanceRequest{Date: "2026-08-01", Venue: " Main Hall "}
	r.Normalize()
	m := r.ToModel()

	if got := time.Time(m.Date).Format("2006-01-02"); got != "2026-08-01" {
		t.Errorf("date = %s", got)
	}
	if m.Venue != "Main Hall" {
		t.Errorf("venue = %q", m.Venue)
	}
}

func TestToModelDateFallsBackToToday(t *testing.T) {
	r := CreateAttendanceRequest{Date: "01/08/2026"}
	r.Normalize()
	m := r.ToModel()

	today := time.Now().Format("2006-01-02")
	if got := time.Time(m.Date).Format("2006-01-02"); got != today {
		t.Errorf("expected fallback to today (%s), got %s", today, got)
	}
}
