// Package analytics computes productivity statistics and insights from a
// task snapshot.
//
// Everything here is pure: callers pass the snapshot and the current
// instant in, value types come out. Nothing reads the system clock, so
// every computation is deterministic and testable with a fixed "now".
// All passes are linear in the snapshot size.
package analytics

import "time"

// Window holds the canonical time boundaries for one analytics pass.
// It is recomputed for every pass and never persisted, since "now" drifts.
type Window struct {
	// Now is the instant the window was anchored to
	Now time.Time
	// StartOfToday is local midnight of the current day
	StartOfToday time.Time
	// StartOfTomorrow is local midnight of the next day
	StartOfTomorrow time.Time
	// StartOfWeek is the Monday at or before StartOfToday
	StartOfWeek time.Time
	// StartOfLast30Days is StartOfToday minus 29 days (30-day inclusive window)
	StartOfLast30Days time.Time
	// DaysElapsedThisWeek is the number of whole days between StartOfWeek
	// and StartOfTomorrow, never less than 1
	DaysElapsedThisWeek int
}

// NewWindow computes the time boundaries anchored to the given instant
func NewWindow(now time.Time) Window {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfTomorrow := startOfToday.AddDate(0, 0, 1)

	// ISO week: Monday is day 1, Sunday is day 7, so a Sunday anchors to
	// the preceding Monday rather than itself
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	startOfWeek := startOfToday.AddDate(0, 0, -(weekday - 1))

	days := int(startOfTomorrow.Sub(startOfWeek).Hours() / 24)
	if days < 1 {
		days = 1
	}

	return Window{
		Now:                 now,
		StartOfToday:        startOfToday,
		StartOfTomorrow:     startOfTomorrow,
		StartOfWeek:         startOfWeek,
		StartOfLast30Days:   startOfToday.AddDate(0, 0, -29),
		DaysElapsedThisWeek: days,
	}
}

// dayOf truncates an instant to local midnight in the window's location
func (w Window) dayOf(t time.Time) time.Time {
	local := t.In(w.StartOfToday.Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}
