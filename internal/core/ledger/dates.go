// Package ledger holds the pure computation core: date and period
// resolution, account matching, equal-split allocation, period summaries,
// budget evaluation, and friend-balance aggregation. Everything here is a
// deterministic function over already-fetched snapshots; no I/O happens in
// this package.
package ledger

import (
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date format used across the system.
const DateLayout = "2006-01-02"

// dateLayouts are the formats ResolveDate accepts for absolute dates, tried
// in order.
var dateLayouts = []string{
	DateLayout,
	"2006/01/02",
	time.RFC3339,
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02-01-2006",
}

// ResolveDate normalizes a relative or absolute date expression into a
// canonical YYYY-MM-DD string. "today" and "yesterday" are matched
// case-insensitively; anything else is parsed against the known layouts.
// Unparseable input falls back to the current date rather than failing; the
// second return value reports whether that fallback happened so callers can
// log it. All date math uses the UTC date component of now.
func ResolveDate(s string, now time.Time) (string, bool) {
	today := now.UTC()
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return today.Format(DateLayout), false
	case "yesterday":
		return today.AddDate(0, 0, -1).Format(DateLayout), false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return parsed.Format(DateLayout), false
		}
	}
	return today.Format(DateLayout), true
}

// Period names accepted by PeriodRange.
const (
	PeriodThisMonth = "this_month"
	PeriodLastMonth = "last_month"
	PeriodThisYear  = "this_year"
	PeriodCustom    = "custom"
)

// PeriodRange resolves a named period into an inclusive [start, end] window
// of canonical date strings. "this_month" and "this_year" end at today;
// "last_month" spans the full previous calendar month. Unknown period names
// default to this month. Custom bounds are the caller's job and are used
// verbatim; an inverted custom range silently yields zero rows downstream.
func PeriodRange(period string, now time.Time) (string, string) {
	today := now.UTC()
	switch period {
	case PeriodLastMonth:
		firstOfThis := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		firstOfLast := firstOfThis.AddDate(0, -1, 0)
		lastOfLast := firstOfThis.AddDate(0, 0, -1)
		return firstOfLast.Format(DateLayout), lastOfLast.Format(DateLayout)
	case PeriodThisYear:
		firstOfYear := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return firstOfYear.Format(DateLayout), today.Format(DateLayout)
	default: // this_month and anything unrecognized
		firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return firstOfMonth.Format(DateLayout), today.Format(DateLayout)
	}
}

// CurrentMonth returns the YYYY-MM key for the UTC date component of now.
func CurrentMonth(now time.Time) string {
	return now.UTC().Format("2006-01")
}

// MonthRange expands a YYYY-MM key into the inclusive date window used for
// budget spend-to-date queries.
func MonthRange(month string) (string, string) {
	start := month + "-01"
	end := month + "-31"
	if t, err := time.Parse("2006-01", month); err == nil {
		end = t.AddDate(0, 1, -1).Format(DateLayout)
	}
	return start, end
}
