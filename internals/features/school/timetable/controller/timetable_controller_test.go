package controller

import (
	"testing"

	"schoolku_backend/internals/features/school/timetable/model"
)

func TestSlotConflictMessage(t *testing.T) {
	cases := []struct {
		constraint string
		want       string
	}{
		{model.ClassSlotIndex, "Slot already scheduled for this class section"},
		{model.TeacherSlotIndex, "Teacher already busy in this slot"},
		{"", "Timetable slot conflict"},
		{"some_other_index", "Timetable slot conflict"},
	}
	for _, tc := range cases {
		if got := slotConflictMessage(tc.constraint); got != tc.want {
			t.Fatalf("slotConflictMessage(%q) = %q, want %q", tc.constraint, got, tc.want)
		}
	}
}
