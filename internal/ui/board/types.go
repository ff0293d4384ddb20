package board

import "github.com/mwhitby/daybook/internal/domain"

// Column represents a board column with tasks
type Column struct {
	Title string
	Group domain.BoardGroup
	Tasks []domain.Task
}

// Cursor represents the current cursor position
type Cursor struct {
	Column int // Column index (0-2)
	Task   int // Task index within column
}

// BuildColumns arranges a partitioned board into the three display columns
func BuildColumns(b domain.Board) []Column {
	return []Column{
		{Title: "Planned", Group: domain.GroupPlanned, Tasks: b.Planned},
		{Title: "Active", Group: domain.GroupActive, Tasks: b.Active},
		{Title: "Resolved", Group: domain.GroupResolved, Tasks: b.Resolved},
	}
}
