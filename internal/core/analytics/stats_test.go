package analytics

import (
	"testing"
	"time"

	"github.com/mwhitby/daybook/internal/domain"
)

// Wednesday 2025-06-18 15:00 UTC
var statsNow = time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC)

func makeTask(id string, status domain.Status, priority domain.Priority) domain.Task {
	return domain.Task{
		ID:        id,
		Title:     "Task " + id,
		Status:    status,
		Priority:  priority,
		CreatedAt: statsNow.AddDate(0, -1, 0),
	}
}

func withDue(t domain.Task, due time.Time) domain.Task {
	t.DueAt = &due
	return t
}

func withCompleted(t domain.Task, done time.Time) domain.Task {
	t.Status = domain.StatusDone
	t.CompletedAt = &done
	return t
}

func TestCompute_EmptySnapshot(t *testing.T) {
	r := Compute(nil, NewWindow(statsNow))

	if r.Overview != (OverviewStats{}) {
		t.Errorf("Overview = %+v, want all zero", r.Overview)
	}
	if r.Today != (TodayStats{}) {
		t.Errorf("Today = %+v, want all zero", r.Today)
	}
	if r.Streak.Current.Active || r.Streak.Current.Count != 0 || r.Streak.Best != 0 {
		t.Errorf("Streak = %+v, want inactive zero", r.Streak)
	}
	for _, p := range domain.Priorities {
		if r.Priority.Counts[p] != 0 || r.Priority.Overdue[p] != 0 {
			t.Errorf("Priority[%s] = %d/%d, want 0/0", p, r.Priority.Counts[p], r.Priority.Overdue[p])
		}
	}
}

func TestCompute_Overview(t *testing.T) {
	yesterday := statsNow.AddDate(0, 0, -1)
	tasks := []domain.Task{
		makeTask("t1", domain.StatusPlan, domain.PriorityNone),
		makeTask("t2", domain.StatusPending, domain.PriorityMedium),
		makeTask("t3", domain.StatusOverdue, domain.PriorityLow),
		makeTask("t4", domain.StatusDone, domain.PriorityNone),
		makeTask("t5", domain.StatusCancelled, domain.PriorityNone),
		// Pending past due: counted active AND logically overdue
		withDue(makeTask("t6", domain.StatusPending, domain.PriorityHigh), yesterday),
	}

	r := Compute(tasks, NewWindow(statsNow))

	if r.Overview.Planned != 1 {
		t.Errorf("Planned = %d, want 1", r.Overview.Planned)
	}
	if r.Overview.Active != 3 {
		t.Errorf("Active = %d, want 3", r.Overview.Active)
	}
	if r.Overview.Resolved != 2 {
		t.Errorf("Resolved = %d, want 2", r.Overview.Resolved)
	}
	// t3 (stored overdue) + t6 (logical overdue)
	if r.Overview.Overdue != 2 {
		t.Errorf("Overdue = %d, want 2", r.Overview.Overdue)
	}
}

func TestCompute_LogicalOverdueDespiteStoredStatus(t *testing.T) {
	// §8 scenario: PENDING task due yesterday is overdue even though the
	// stored status was never transitioned
	yesterday := statsNow.AddDate(0, 0, -1)
	tasks := []domain.Task{
		withDue(makeTask("t1", domain.StatusPending, domain.PriorityMedium), yesterday),
	}

	r := Compute(tasks, NewWindow(statsNow))

	if r.Overview.Overdue != 1 {
		t.Fatalf("Overdue = %d, want 1", r.Overview.Overdue)
	}

	insights := GenerateInsights(r)
	if !hasInsight(insights, "overdue-pressure") {
		t.Errorf("expected overdue-pressure insight, got %v", insightIDs(insights))
	}
}

func TestCompute_TodayStats(t *testing.T) {
	w := NewWindow(statsNow)

	inWeek := w.StartOfWeek.Add(10 * time.Hour)
	beforeWeek := w.StartOfWeek.Add(-time.Hour)

	tasks := []domain.Task{
		{ID: "t1", Status: domain.StatusPending, CreatedAt: inWeek},
		{ID: "t2", Status: domain.StatusPlan, CreatedAt: beforeWeek},
		withCompleted(domain.Task{ID: "t3", CreatedAt: beforeWeek}, inWeek),
		withCompleted(domain.Task{ID: "t4", CreatedAt: beforeWeek}, beforeWeek),
		withCompleted(domain.Task{ID: "t5", CreatedAt: inWeek}, inWeek.Add(time.Hour)),
	}

	r := Compute(tasks, w)

	if r.Today.CreatedThisWeek != 2 {
		t.Errorf("CreatedThisWeek = %d, want 2", r.Today.CreatedThisWeek)
	}
	if r.Today.CompletedThisWeek != 2 {
		t.Errorf("CompletedThisWeek = %d, want 2", r.Today.CompletedThisWeek)
	}
}

func TestCompute_PriorityBreakdown(t *testing.T) {
	yesterday := statsNow.AddDate(0, 0, -1)
	tasks := []domain.Task{
		makeTask("t1", domain.StatusPending, domain.PriorityHigh),
		withDue(makeTask("t2", domain.StatusPending, domain.PriorityHigh), yesterday),
		makeTask("t3", domain.StatusPlan, domain.PriorityMedium),
		makeTask("t4", domain.StatusDone, domain.PriorityLow),
		makeTask("t5", domain.StatusPending, domain.PriorityNone),
	}

	r := Compute(tasks, NewWindow(statsNow))

	if got := r.Priority.Counts[domain.PriorityHigh]; got != 2 {
		t.Errorf("high count = %d, want 2", got)
	}
	if got := r.Priority.Overdue[domain.PriorityHigh]; got != 1 {
		t.Errorf("high overdue = %d, want 1", got)
	}
	if got := r.Priority.Counts[domain.PriorityMedium]; got != 1 {
		t.Errorf("medium count = %d, want 1", got)
	}
	if got := r.Priority.Overdue[domain.PriorityMedium]; got != 0 {
		t.Errorf("medium overdue = %d, want 0", got)
	}
	if got := r.Priority.Counts[domain.PriorityNone]; got != 1 {
		t.Errorf("none count = %d, want 1", got)
	}
}

func TestCompute_TimePattern(t *testing.T) {
	day := statsNow.AddDate(0, 0, -3) // Sunday June 15
	at := func(hour int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
	}

	tasks := []domain.Task{
		withCompleted(domain.Task{ID: "t1"}, at(6)),  // morning
		withCompleted(domain.Task{ID: "t2"}, at(11)), // morning
		withCompleted(domain.Task{ID: "t3"}, at(13)), // afternoon
		withCompleted(domain.Task{ID: "t4"}, at(18)), // evening
		withCompleted(domain.Task{ID: "t5"}, at(23)), // night
		withCompleted(domain.Task{ID: "t6"}, at(2)),  // night
	}

	r := Compute(tasks, NewWindow(statsNow))

	want := map[DayPart]int{Morning: 2, Afternoon: 1, Evening: 1, Night: 2}
	for part, n := range want {
		if got := r.TimePattern.Completions[part]; got != n {
			t.Errorf("Completions[%s] = %d, want %d", part, got, n)
		}
	}

	// June 15 2025 is a Sunday, ISO index 6
	if got := r.TimePattern.Weekdays[6]; got != 6 {
		t.Errorf("Weekdays[6] = %d, want 6", got)
	}
}

func TestDayPartOf_CoversAllHours(t *testing.T) {
	for h := 0; h < 24; h++ {
		at := time.Date(2025, 6, 18, h, 0, 0, 0, time.UTC)
		part := DayPartOf(at)

		var want DayPart
		switch {
		case h >= 5 && h < 12:
			want = Morning
		case h >= 12 && h < 17:
			want = Afternoon
		case h >= 17 && h < 22:
			want = Evening
		default:
			want = Night
		}

		if part != want {
			t.Errorf("DayPartOf(hour %d) = %s, want %s", h, part, want)
		}
	}
}

func TestCompute_MissingTimestampsIgnored(t *testing.T) {
	// Done without CompletedAt contributes nothing to completions;
	// pending without DueAt is never overdue
	tasks := []domain.Task{
		{ID: "t1", Status: domain.StatusDone},
		{ID: "t2", Status: domain.StatusPending},
	}

	r := Compute(tasks, NewWindow(statsNow))

	if r.Today.CompletedThisWeek != 0 {
		t.Errorf("CompletedThisWeek = %d, want 0", r.Today.CompletedThisWeek)
	}
	if r.Overview.Overdue != 0 {
		t.Errorf("Overdue = %d, want 0", r.Overview.Overdue)
	}
	if r.Streak.Current.Count != 0 {
		t.Errorf("streak count = %d, want 0", r.Streak.Current.Count)
	}
}

func hasInsight(insights []Insight, id string) bool {
	for _, in := range insights {
		if in.ID == id {
			return true
		}
	}
	return false
}

func insightIDs(insights []Insight) []string {
	ids := make([]string, len(insights))
	for i, in := range insights {
		ids[i] = in.ID
	}
	return ids
}
