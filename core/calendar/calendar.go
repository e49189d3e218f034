// Package calendar is the single civil-calendar convention used by the
// assignment engine. Availability filtering and week/month boundary
// detection must agree on weekday numbering and week definitions, so
// both go through this package rather than calling time helpers
// directly.
package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for civil dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD civil date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ISOWeekday returns the ISO weekday for t: Monday=1 .. Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// SameISOWeek reports whether a and b fall in the same ISO week.
func SameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DatesBetween expands an inclusive civil date range into one entry
// per day, in chronological order. An end before the start yields nil.
func DatesBetween(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// MinuteOfDay parses an HH:MM clock string into minutes since midnight.
func MinuteOfDay(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock %q out of range", s)
	}
	return h*60 + m, nil
}

// SlotContains reports whether the clock time at falls within
// [slotStart, slotEnd). The start is inclusive, the end exclusive;
// every caller in the engine relies on this one convention.
func SlotContains(slotStart, slotEnd, at string) (bool, error) {
	start, err := MinuteOfDay(slotStart)
	if err != nil {
		return false, err
	}
	end, err := MinuteOfDay(slotEnd)
	if err != nil {
		return false, err
	}
	t, err := MinuteOfDay(at)
	if err != nil {
		return false, err
	}
	return t >= start && t < end, nil
}
