package service

import (
	"math"
	"time"
)

// MonthStart returns the first instant of the calendar month containing t.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthWindow returns [start, end) of the calendar month containing t, in
// t's location. Used for the monthly revenue sum.
func MonthWindow(t time.Time) (time.Time, time.Time) {
	start := MonthStart(t)
	return start, start.AddDate(0, 1, 0)
}

// MonthsBack returns the starts of the n calendar months ending with the
// month containing t, oldest first. Stepping from the first of the month
// keeps AddDate from normalizing a day-31 anchor into the wrong month.
func MonthsBack(t time.Time, n int) []time.Time {
	cur := MonthStart(t)
	out := make([]time.Time, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = cur.AddDate(0, -i, 0)
	}
	return out
}

// DayWindow returns [start, end) of the calendar day containing t.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// Percent computes part/total as a percentage rounded to two decimals,
// 0 when total is zero.
func Percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}
