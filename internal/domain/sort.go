package domain

import "sort"

// SortField represents a field to sort by
type SortField string

const (
	SortByPriority SortField = "priority"
	SortByCreated  SortField = "created"
	SortByDue      SortField = "due"
)

// SortOrder represents sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// Sort represents sorting state
type Sort struct {
	Field SortField
	Order SortOrder
}

// Toggle toggles the sort field or direction
// If field is different, sets new field with ascending order
// If field is same, toggles between ascending and descending
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
	} else {
		s.Field = field
		s.Order = SortAsc
	}
}

// Apply sorts a list of tasks
func (s *Sort) Apply(tasks []Task) []Task {
	if len(tasks) == 0 {
		return tasks
	}

	// Make a copy to avoid modifying the input slice
	result := make([]Task, len(tasks))
	copy(result, tasks)

	switch s.Field {
	case SortByPriority:
		sort.SliceStable(result, func(i, j int) bool {
			if s.Order == SortAsc {
				return result[i].Priority.Rank() < result[j].Priority.Rank()
			}
			return result[i].Priority.Rank() > result[j].Priority.Rank()
		})

	case SortByCreated:
		sort.SliceStable(result, func(i, j int) bool {
			if s.Order == SortAsc {
				return result[i].CreatedAt.Before(result[j].CreatedAt)
			}
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})

	case SortByDue:
		// Tasks without a due date sort last regardless of direction
		sort.SliceStable(result, func(i, j int) bool {
			di, dj := result[i].DueAt, result[j].DueAt
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			if s.Order == SortAsc {
				return di.Before(*dj)
			}
			return di.After(*dj)
		})
	}

	return result
}
