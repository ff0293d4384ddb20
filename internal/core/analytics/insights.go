package analytics

import (
	"fmt"

	"github.com/mwhitby/daybook/internal/domain"
)

// InsightType is the sentiment tag on an insight
type InsightType string

const (
	InsightPositive InsightType = "positive"
	InsightWarning  InsightType = "warning"
	InsightNeutral  InsightType = "neutral"
)

// Insight is a short rule-derived observation about the user's habits
type Insight struct {
	ID      string      `json:"id"`
	Type    InsightType `json:"type"`
	Message string      `json:"message"`
}

// rule pairs a predicate with the insight it produces. Rules are
// independent: several may fire in the same pass.
type rule struct {
	id      string
	typ     InsightType
	when    func(Report) bool
	message func(Report) string
}

// insightRules is evaluated in order; the order is the display priority,
// most important first.
var insightRules = []rule{
	{
		id:  "strong-streak",
		typ: InsightPositive,
		when: func(r Report) bool {
			return r.Streak.Current.Active && r.Streak.Current.Count >= 7
		},
		message: func(r Report) string {
			return fmt.Sprintf("You're on a %d-day completion streak. Keep it going!", r.Streak.Current.Count)
		},
	},
	{
		id:  "streak-broken",
		typ: InsightWarning,
		when: func(r Report) bool {
			return !r.Streak.Current.Active && r.Streak.Current.Count > 0
		},
		message: func(r Report) string {
			return fmt.Sprintf("Your %d-day streak has lapsed. Complete a task today to start a new one.", r.Streak.Current.Count)
		},
	},
	{
		id:  "overdue-pressure",
		typ: InsightWarning,
		when: func(r Report) bool {
			return r.Overview.Overdue > 0
		},
		message: func(r Report) string {
			if r.Overview.Overdue == 1 {
				return "1 task is past due. A quick win would clear it."
			}
			return fmt.Sprintf("%d tasks are past due. Consider tackling the oldest first.", r.Overview.Overdue)
		},
	},
	{
		id:  "high-priority-control",
		typ: InsightPositive,
		when: func(r Report) bool {
			return r.Priority.Counts[domain.PriorityHigh] > 0 && r.Priority.Overdue[domain.PriorityHigh] == 0
		},
		message: func(r Report) string {
			n := r.Priority.Counts[domain.PriorityHigh]
			if n == 1 {
				return "Your high-priority task is on schedule. Nice control."
			}
			return fmt.Sprintf("All %d high-priority tasks are on schedule. Nice control.", n)
		},
	},
	{
		id:  "backlog-reduction",
		typ: InsightPositive,
		when: func(r Report) bool {
			return r.Today.CompletedThisWeek > r.Today.CreatedThisWeek
		},
		message: func(r Report) string {
			return fmt.Sprintf("You completed %d tasks this week while adding %d. The backlog is shrinking.",
				r.Today.CompletedThisWeek, r.Today.CreatedThisWeek)
		},
	},
}

// GenerateInsights evaluates the rule table against a report and returns
// every insight whose rule fired, in table order. When nothing fires it
// returns exactly one neutral fallback, so the result is never empty.
func GenerateInsights(r Report) []Insight {
	var out []Insight
	for _, rl := range insightRules {
		if rl.when(r) {
			out = append(out, Insight{ID: rl.id, Type: rl.typ, Message: rl.message(r)})
		}
	}

	if len(out) == 0 {
		out = append(out, Insight{
			ID:      "neutral-state",
			Type:    InsightNeutral,
			Message: "Steady as she goes. Complete a few tasks to unlock more insights.",
		})
	}

	return out
}
