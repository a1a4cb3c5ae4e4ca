package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ClockPlaceholder is rendered when a stop has no usable time
const ClockPlaceholder = "--:--"

// DayStyle selects how FormatDay renders dates that are not today
type DayStyle int

const (
	// DayStyleShort renders "пт, 5 окт." and never says "Завтра"
	DayStyleShort DayStyle = iota
	// DayStyleLong renders "пт, 5 октября" and knows "Завтра"
	DayStyleLong
)

var (
	// ErrEmptyTime is returned by ParseTime for blank input
	ErrEmptyTime = errors.New("empty timestamp")

	zonedLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04:05",
		DateLayout,
	}

	weekdaysShort = [...]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"}
	monthsLong    = [...]string{
		"января", "февраля", "марта", "апреля", "мая", "июня",
		"июля", "августа", "сентября", "октября", "ноября", "декабря",
	}
	monthsShort = [...]string{
		"янв.", "февр.", "мар.", "апр.", "мая", "июн.",
		"июл.", "авг.", "сент.", "окт.", "нояб.", "дек.",
	}
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// ParseTime parses an API timestamp. Values without a zone offset are
// read in loc; a nil loc means time.Local.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyTime
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// FormatClock renders the HH:MM part of an API timestamp or ClockPlaceholder
func FormatClock(s string, loc *time.Location) string {
	t, err := ParseTime(s, loc)
	if err != nil {
		return ClockPlaceholder
	}
	return t.Format("15:04")
}

// FormatDay renders a human day label relative to now, or "" when the
// timestamp is unusable.
func FormatDay(s string, now time.Time, loc *time.Location, style DayStyle) string {
	t, err := ParseTime(s, loc)
	if err != nil {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)

	switch daysBetween(now, t) {
	case 0:
		return "Сегодня"
	case 1:
		if style == DayStyleLong {
			return "Завтра"
		}
	}

	months := monthsShort
	if style == DayStyleLong {
		months = monthsLong
	}
	return fmt.Sprintf("%s, %d %s", weekdaysShort[t.Weekday()], t.Day(), months[t.Month()-1])
}

// FormatDate renders a search date ("2006-01-02") as "пт, 5 октября"
func FormatDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s, %d %s", weekdaysShort[t.Weekday()], t.Day(), monthsLong[t.Month()-1])
}

// Today returns the calendar date of now in loc using DateLayout
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return now.In(loc).Format(DateLayout)
}

// daysBetween counts whole calendar days from a to b, both already in the same zone
func daysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
