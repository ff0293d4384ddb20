package analytics

import (
	"sort"
	"time"
)

// CurrentStreak describes the run of consecutive completion days ending
// at (or adjacent to) today
type CurrentStreak struct {
	// Count is the run length. When the streak has lapsed, this reports
	// the length of the most recently closed run instead, so the UI can
	// show how long it was before it broke.
	Count int `json:"count"`
	// Active is true while today or yesterday has a completion. A day
	// without a completion does not break the streak until it is two days
	// old, giving the user until end of day to keep it alive.
	Active bool `json:"active"`
}

// StreakStats holds the current and historical best completion streaks
type StreakStats struct {
	Current CurrentStreak `json:"current"`
	Best    int           `json:"best"`
}

// computeStreak walks the set of distinct completion days (keyed by local
// midnight) backward from startOfToday. The walk stops at the first gap
// day; the best streak is found by a single scan over the sorted days.
func computeStreak(days map[time.Time]bool, startOfToday time.Time) StreakStats {
	if len(days) == 0 {
		return StreakStats{}
	}

	yesterday := startOfToday.AddDate(0, 0, -1)

	var cursor time.Time
	var active bool
	switch {
	case days[startOfToday]:
		cursor, active = startOfToday, true
	case days[yesterday]:
		// Grace day: yesterday still counts until today is over
		cursor, active = yesterday, true
	default:
		// Lapsed: report the length of the most recent closed run
		cursor, active = latestDay(days), false
	}

	count := 0
	for days[cursor] {
		count++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return StreakStats{
		Current: CurrentStreak{Count: count, Active: active},
		Best:    bestRun(days),
	}
}

// latestDay returns the most recent day in the set
func latestDay(days map[time.Time]bool) time.Time {
	var latest time.Time
	for d := range days {
		if d.After(latest) {
			latest = d
		}
	}
	return latest
}

// bestRun returns the length of the longest run of consecutive days
func bestRun(days map[time.Time]bool) int {
	sorted := make([]time.Time, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	best, run := 0, 0
	for i, d := range sorted {
		if i > 0 && sorted[i-1].AddDate(0, 0, 1).Equal(d) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}
