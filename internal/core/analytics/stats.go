package analytics

import (
	"time"

	"github.com/mwhitby/daybook/internal/domain"
)

// OverviewStats counts tasks by board group across the full snapshot
type OverviewStats struct {
	Planned  int `json:"planned"`
	Active   int `json:"active"`
	Resolved int `json:"resolved"`
	// Overdue is the logical overdue count: stored overdue status, or a
	// planned/pending task whose due date has passed
	Overdue int `json:"overdue"`
}

// TodayStats compares creation velocity against completion velocity for
// the current week
type TodayStats struct {
	CreatedThisWeek   int `json:"created_this_week"`
	CompletedThisWeek int `json:"completed_this_week"`
}

// PriorityStats holds per-priority totals and logical overdue counts,
// keyed by the four priority values
type PriorityStats struct {
	Counts  map[domain.Priority]int `json:"counts"`
	Overdue map[domain.Priority]int `json:"overdue"`
}

// DayPart is a fixed time-of-day bucket. The four parts are
// non-overlapping and cover the full 24-hour range.
type DayPart string

const (
	Morning   DayPart = "morning"   // [05:00, 12:00)
	Afternoon DayPart = "afternoon" // [12:00, 17:00)
	Evening   DayPart = "evening"   // [17:00, 22:00)
	Night     DayPart = "night"     // [22:00, 05:00)
)

// DayParts lists the buckets in display order
var DayParts = []DayPart{Morning, Afternoon, Evening, Night}

// DayPartOf returns the bucket containing the given instant
func DayPartOf(t time.Time) DayPart {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return Morning
	case h >= 12 && h < 17:
		return Afternoon
	case h >= 17 && h < 22:
		return Evening
	default:
		return Night
	}
}

// TimePatternStats distributes completions over time-of-day buckets and
// weekdays (ISO order, Monday = index 0)
type TimePatternStats struct {
	Completions map[DayPart]int `json:"completions"`
	Weekdays    [7]int          `json:"weekdays"`
}

// Report bundles the five statistic groups produced by one pass
type Report struct {
	Overview    OverviewStats    `json:"overview"`
	Today       TodayStats       `json:"today"`
	Streak      StreakStats      `json:"streak"`
	Priority    PriorityStats    `json:"priority"`
	TimePattern TimePatternStats `json:"time_pattern"`
}

// Compute derives all statistic groups from the snapshot and window.
// An empty snapshot yields zero-valued statistics, never an error.
func Compute(tasks []domain.Task, w Window) Report {
	r := Report{
		Priority: PriorityStats{
			Counts:  make(map[domain.Priority]int, len(domain.Priorities)),
			Overdue: make(map[domain.Priority]int, len(domain.Priorities)),
		},
		TimePattern: TimePatternStats{
			Completions: make(map[DayPart]int, len(DayParts)),
		},
	}
	for _, p := range domain.Priorities {
		r.Priority.Counts[p] = 0
		r.Priority.Overdue[p] = 0
	}
	for _, part := range DayParts {
		r.TimePattern.Completions[part] = 0
	}

	completionDays := make(map[time.Time]bool)

	for _, t := range tasks {
		overdue := t.IsOverdueAt(w.Now)

		if group, ok := domain.GroupFor(t.Status); ok {
			switch group {
			case domain.GroupPlanned:
				r.Overview.Planned++
			case domain.GroupActive:
				r.Overview.Active++
			case domain.GroupResolved:
				r.Overview.Resolved++
			}
		}
		if overdue {
			r.Overview.Overdue++
		}

		if _, known := r.Priority.Counts[t.Priority]; known {
			r.Priority.Counts[t.Priority]++
			if overdue {
				r.Priority.Overdue[t.Priority]++
			}
		}

		if inWindow(t.CreatedAt, w.StartOfWeek, w.StartOfTomorrow) {
			r.Today.CreatedThisWeek++
		}

		if t.CompletedAt != nil {
			done := *t.CompletedAt
			if inWindow(done, w.StartOfWeek, w.StartOfTomorrow) {
				r.Today.CompletedThisWeek++
			}

			local := done.In(w.StartOfToday.Location())
			r.TimePattern.Completions[DayPartOf(local)]++
			r.TimePattern.Weekdays[isoWeekdayIndex(local)]++

			completionDays[w.dayOf(done)] = true
		}
	}

	r.Streak = computeStreak(completionDays, w.StartOfToday)
	return r
}

// inWindow reports whether t falls in the half-open interval [from, to)
func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

// isoWeekdayIndex maps a time to 0..6 with Monday as 0
func isoWeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
