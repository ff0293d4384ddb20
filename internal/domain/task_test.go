package domain

import (
	"testing"
	"time"
)

func TestPriority_Rank(t *testing.T) {
	tests := []struct {
		priority Priority
		rank     int
	}{
		{PriorityHigh, 0},
		{PriorityMedium, 1},
		{PriorityLow, 2},
		{PriorityNone, 3},
		{Priority("urgent"), 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := tt.priority.Rank(); got != tt.rank {
				t.Errorf("Rank() = %d, want %d", got, tt.rank)
			}
		})
	}
}

func TestStatus_IsResolved(t *testing.T) {
	tests := []struct {
		status   Status
		resolved bool
	}{
		{StatusPlan, false},
		{StatusPending, false},
		{StatusOverdue, false},
		{StatusDone, true},
		{StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsResolved(); got != tt.resolved {
				t.Errorf("IsResolved() = %v, want %v", got, tt.resolved)
			}
		})
	}
}

func TestTask_IsOverdueAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name    string
		task    Task
		overdue bool
	}{
		{
			name:    "stored overdue status",
			task:    Task{Status: StatusOverdue},
			overdue: true,
		},
		{
			name:    "pending past due",
			task:    Task{Status: StatusPending, DueAt: &yesterday},
			overdue: true,
		},
		{
			name:    "planned past due",
			task:    Task{Status: StatusPlan, DueAt: &yesterday},
			overdue: true,
		},
		{
			name:    "pending due in future",
			task:    Task{Status: StatusPending, DueAt: &tomorrow},
			overdue: false,
		},
		{
			name:    "pending without due date",
			task:    Task{Status: StatusPending},
			overdue: false,
		},
		{
			name:    "done past due is not overdue",
			task:    Task{Status: StatusDone, DueAt: &yesterday},
			overdue: false,
		},
		{
			name:    "cancelled past due is not overdue",
			task:    Task{Status: StatusCancelled, DueAt: &yesterday},
			overdue: false,
		},
		{
			name:    "due exactly now is not overdue",
			task:    Task{Status: StatusPending, DueAt: &now},
			overdue: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IsOverdueAt(now); got != tt.overdue {
				t.Errorf("IsOverdueAt() = %v, want %v", got, tt.overdue)
			}
		})
	}
}
