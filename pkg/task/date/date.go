// Package date provides the calendar-day arithmetic behind due-date
// filters: same-day comparison, day and week boundaries.
package date

import "time"

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfWeek returns midnight of the Sunday that starts the calendar week
// containing t.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// SameWeek reports whether t falls within the Sunday-start calendar week
// containing ref.
func SameWeek(t, ref time.Time) bool {
	start := StartOfWeek(ref)
	end := start.AddDate(0, 0, 7)
	return !t.Before(start) && t.Before(end)
}

// BeforeDay reports whether t's calendar day is strictly before ref's.
func BeforeDay(t, ref time.Time) bool {
	return StartOfDay(t).Before(StartOfDay(ref))
}
