// Package report computes the derived views of a record set: stock balances,
// order pending pivots, KPI period comparisons, and date-bucket filters. All
// functions are pure and stateless; numeric parsing is permissive (anything
// unparseable coerces to 0, never an error) and fractional quantities are
// preserved. Rounding, where a view wants whole numbers, is the renderer's
// job.
package report

import (
	"strings"
	"time"
)

// dateLayouts are the cell formats accepted for date columns, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"02 Jan 2006",
	"2006-01-02 15:04:05",
}

// ParseDate parses a worksheet cell as a calendar date. The time component,
// if any, is discarded. Returns false for anything unparseable; callers treat
// such rows as having no date.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOnly(t), true
		}
	}
	return time.Time{}, false
}

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
