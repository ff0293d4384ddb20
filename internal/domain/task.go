// Package domain contains core business types for the Daybook application.
package domain

import "time"

// Task represents a single to-do item
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Notes       string     `json:"notes,omitempty"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	FolderID    *string    `json:"folder_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DueAt       *time.Time `json:"due_at,omitempty"`
}

// Status represents task status
type Status string

const (
	StatusPlan      Status = "plan"
	StatusPending   Status = "pending"
	StatusOverdue   Status = "overdue"
	StatusDone      Status = "done"
	StatusCancelled Status = "cancelled"
)

// String returns the display string
func (s Status) String() string {
	return string(s)
}

// IsResolved reports whether the status is terminal (done or cancelled)
func (s Status) IsResolved() bool {
	return s == StatusDone || s == StatusCancelled
}

// Priority represents task priority
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
	PriorityNone   Priority = "none"
)

// Priorities lists all priority values in display order
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow, PriorityNone}

// String returns the display string
func (p Priority) String() string {
	return string(p)
}

// Rank returns the sort rank for a priority (0 = highest)
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	case PriorityNone:
		return 3
	default:
		return 4
	}
}

// IsOverdueAt reports whether the task is logically overdue at the given
// instant. A task counts as overdue when its stored status is already
// overdue, or when it is still planned/pending and its due date has passed.
// The stored status may lag behind the due date, so callers must use this
// check rather than comparing against StatusOverdue directly.
func (t Task) IsOverdueAt(now time.Time) bool {
	if t.Status == StatusOverdue {
		return true
	}
	if t.Status != StatusPlan && t.Status != StatusPending {
		return false
	}
	return t.DueAt != nil && t.DueAt.Before(now)
}
