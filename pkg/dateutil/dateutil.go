// Package dateutil holds the calendar-day helpers shared by the server and the
// client. All days are represented as midnight UTC.
package dateutil

import (
	"fmt"
	"time"
)

// Layout is the ISO calendar date format used on the wire.
const Layout = "2006-01-02"

// Parse reads an ISO date ("2025-01-31") into midnight UTC.
func Parse(value string) (time.Time, error) {
	t, err := time.Parse(Layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return t, nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// FormatPtr formats an optional date, keeping nil as nil.
func FormatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	value := Format(*t)
	return &value
}

// StartOfDay truncates t to midnight of its calendar day, in UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Today(now time.Time) time.Time {
	return StartOfDay(now)
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func AddDays(t time.Time, days int) time.Time {
	return StartOfDay(t).AddDate(0, 0, days)
}

// DaysBetween returns the number of whole days from a to b; negative when b
// is before a.
func DaysBetween(a, b time.Time) int {
	return int(StartOfDay(b).Sub(StartOfDay(a)).Hours() / 24)
}

// Range lists every day from from to to, both inclusive. It returns nil when
// to is before from.
func Range(from, to time.Time) []time.Time {
	n := DaysBetween(from, to)
	if n < 0 {
		return nil
	}
	days := make([]time.Time, 0, n+1)
	for i := 0; i <= n; i++ {
		days = append(days, AddDays(from, i))
	}
	return days
}

// WeekStart returns the Monday of t's week.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return AddDays(t, -offset)
}

// InRange reports whether day falls in [from, to].
func InRange(day, from, to time.Time) bool {
	d := StartOfDay(day)
	return !d.Before(StartOfDay(from)) && !d.After(StartOfDay(to))
}

// Compare orders optional dates, placing nil after every date.
func Compare(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	}
	return 0
}
