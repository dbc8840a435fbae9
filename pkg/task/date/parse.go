package date

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrParsing = errors.New("error parsing date")

var absoluteFormats = []string{
	"2006-01-02",
	"_2/01/06",
	"_2/01/2006",
	"_2 Jan 2006",
	"_2 January 2006",
}

// Parse turns a human due-date input into a concrete day. Supported forms:
// "today", "tomorrow", a weekday name, "in N days/weeks/months/years" (or a
// bare "+N"), and a handful of absolute formats.
func Parse(s string, now time.Time) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return time.Time{}, ErrParsing
	}
	if s == "today" || s == "tod" || s == "now" {
		return StartOfDay(now), nil
	}
	if s == "tomorrow" || s == "tom" {
		return StartOfDay(now).AddDate(0, 0, 1), nil
	}
	if t, err := parseWeekday(s, now); err == nil {
		return t, nil
	}
	if t, err := parseOffset(s, now); err == nil {
		return t, nil
	}
	if t, err := parseAbsolute(s, now); err == nil {
		return t, nil
	}
	return time.Time{}, ErrParsing
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// parseWeekday resolves a weekday name to the next occurrence after today.
func parseWeekday(s string, now time.Time) (time.Time, error) {
	w, ok := weekdays[s]
	if !ok {
		return time.Time{}, ErrParsing
	}
	days := int(w - now.Weekday())
	if days <= 0 {
		days += 7
	}
	return StartOfDay(now).AddDate(0, 0, days), nil
}

type multiplier struct {
	key  string
	days int
}

var multipliers = []multiplier{
	{"days", 1},
	{"weeks", 7},
	{"months", 30},
	{"years", 365},
}

func parseOffset(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "in"))
	s = strings.TrimPrefix(s, "+")
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return time.Time{}, ErrParsing
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, ErrParsing
	}
	mult := 1
	if len(fields) > 1 {
		mult = 0
		word := fields[1]
		for _, m := range multipliers {
			if len(word) <= len(m.key) && m.key[:len(word)] == word {
				mult = m.days
				break
			}
		}
		if mult == 0 {
			return time.Time{}, errors.New("invalid suffix, expected 'days', 'weeks', 'months', or 'years'")
		}
	}
	return StartOfDay(now).AddDate(0, 0, n*mult), nil
}

func parseAbsolute(s string, now time.Time) (time.Time, error) {
	for _, format := range absoluteFormats {
		t, err := time.Parse(format, s)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location()), nil
		}
	}
	return time.Time{}, ErrParsing
}
