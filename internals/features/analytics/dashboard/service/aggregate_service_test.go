package service

import (
	"testing"
	"time"
)

func TestMonthWindow(t *testing.T) {
	at := time.Date(2026, 8, 30, 15, 42, 7, 0, time.UTC)
	start, end := MonthWindow(at)

	if !start.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", start)
	}
	if !end.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end = %v", end)
	}
}

func TestMonthWindowYearRollover(t *testing.T) {
	at := time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC)
	_, end := MonthWindow(at)
	if !end.Equal(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end = %v, want 2027-01-01", end)
	}
}

func TestMonthsBack(t *testing.T) {
	got := MonthsBack(time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC), 3)
	want := []string{"2026-06", "2026-07", "2026-08"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, m := range got {
		if m.Format("2006-01") != want[i] {
			t.Fatalf("months = %v, want %v", got, want)
		}
		if m.Day() != 1 || m.Hour() != 0 {
			t.Fatalf("month start %d = %v, want first of month at midnight", i, m)
		}
	}
}

func TestMonthsBackFromDay31(t *testing.T) {
	// Stepping back from May 31 must not normalize Feb 31 into March or
	// Apr 31 into May; every month appears exactly once.
	got := MonthsBack(time.Date(2026, 5, 31, 23, 0, 0, 0, time.UTC), 6)
	want := []string{"2025-12", "2026-01", "2026-02", "2026-03", "2026-04", "2026-05"}
	for i, m := range got {
		if m.Format("2006-01") != want[i] {
			t.Fatalf("months[%d] = %s, want %s (full: %v)", i, m.Format("2006-01"), want[i], got)
		}
	}
}

func TestDayWindow(t *testing.T) {
	at := time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC)
	start, end := DayWindow(at)
	if !start.Equal(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", start)
	}
	if !end.Equal(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end = %v", end)
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		part, total int64
		want        float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 40, 0},
		{40, 40, 100},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{37, 40, 92.5},
	}
	for _, tc := range cases {
		if got := Percent(tc.part, tc.total); got != tc.want {
			t.Fatalf("Percent(%d, %d) = %v, want %v", tc.part, tc.total, got, tc.want)
		}
	}
}
