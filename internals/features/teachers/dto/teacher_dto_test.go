package dto

import (
	"testing"
	"time"

	"gorm.io/datatypes"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2026-08")
	if err != nil {
		t.Fatalf("ParseMonth: %v", err)
	}
	if m.Year() != 2026 || m.Month() != time.August {
		t.Fatalf("parsed = %v", m)
	}

	for _, bad := range []string{"2026-13", "08-2026", "2026/08", "202608"} {
		if _, err := ParseMonth(bad); err == nil {
			t.Fatalf("ParseMonth(%q) should fail", bad)
		}
	}
}

func TestSpecializationsFromJSON(t *testing.T) {
	raw, err := StringsToJSON([]string{"Mathematics", "Physics"})
	if err != nil {
		t.Fatalf("StringsToJSON: %v", err)
	}
	got := SpecializationsFromJSON(raw)
	if len(got) != 2 || got[0] != "Mathematics" || got[1] != "Physics" {
		t.Fatalf("got %v", got)
	}

	if got := SpecializationsFromJSON(nil); len(got) != 0 {
		t.Fatalf("nil input should give empty slice, got %v", got)
	}
	if got := SpecializationsFromJSON(datatypes.JSON(`{"not":"an array"}`)); len(got) != 0 {
		t.Fatalf("malformed input should give empty slice, got %v", got)
	}
}
