// Package editor provides editing mode and view state management
package editor

import (
	"time"

	"github.com/mwhitby/daybook/internal/domain"
	"github.com/mwhitby/daybook/internal/types"
)

// Re-export Mode type for convenience
type Mode = types.Mode

// Mode constants
const (
	ModeNormal = types.ModeNormal
	ModeSearch = types.ModeSearch
	ModeAction = types.ModeAction
)

// Service manages editing state (mode, filter, sort, selection)
type Service struct {
	mode          Mode
	filter        *domain.Filter
	sort          *domain.Sort
	selectedTasks map[string]bool
}

// NewService creates a new editor service with defaults
func NewService() *Service {
	return &Service{
		mode:   ModeNormal,
		filter: domain.NewFilter(),
		sort: &domain.Sort{
			Field: domain.SortByPriority,
			Order: domain.SortAsc,
		},
		selectedTasks: make(map[string]bool),
	}
}

// GetMode returns the current mode
func (s *Service) GetMode() Mode {
	return s.mode
}

// EnterSearch switches to search mode
func (s *Service) EnterSearch() {
	s.mode = ModeSearch
}

// EnterAction switches to action mode
func (s *Service) EnterAction() {
	s.mode = ModeAction
}

// ExitMode returns to normal mode if not already normal
func (s *Service) ExitMode() bool {
	if s.mode != ModeNormal {
		s.mode = ModeNormal
		return true
	}
	return false
}

// IsNormal returns true if in normal mode
func (s *Service) IsNormal() bool {
	return s.mode == ModeNormal
}

// IsSearch returns true if in search mode
func (s *Service) IsSearch() bool {
	return s.mode == ModeSearch
}

// Filter management

// GetFilter returns the current filter
func (s *Service) GetFilter() *domain.Filter {
	return s.filter
}

// SetSearchQuery updates the search query in the filter
func (s *Service) SetSearchQuery(query string) {
	s.filter.SearchQuery = query
}

// ClearSearch clears the search query
func (s *Service) ClearSearch() {
	s.filter.SearchQuery = ""
}

// ToggleStatusFilter toggles a status in the filter
func (s *Service) ToggleStatusFilter(status domain.Status) {
	s.filter.ToggleStatus(status)
}

// TogglePriorityFilter toggles a priority in the filter
func (s *Service) TogglePriorityFilter(priority domain.Priority) {
	s.filter.TogglePriority(priority)
}

// SetDueWithin sets the due-soon horizon (nil to disable)
func (s *Service) SetDueWithin(days *int) {
	s.filter.DueWithin = days
}

// ClearFilters clears all filters
func (s *Service) ClearFilters() {
	s.filter = domain.NewFilter()
}

// IsFilterActive returns true if any filter is active
func (s *Service) IsFilterActive() bool {
	return s.filter.IsActive()
}

// Sort management

// GetSort returns the current sort settings
func (s *Service) GetSort() *domain.Sort {
	return s.sort
}

// ToggleSort toggles between fields or direction
func (s *Service) ToggleSort(field domain.SortField) {
	s.sort.Toggle(field)
}

// Selection management

// GetSelectedTasks returns the set of selected task IDs
func (s *Service) GetSelectedTasks() map[string]bool {
	return s.selectedTasks
}

// IsSelected returns true if the task is selected
func (s *Service) IsSelected(taskID string) bool {
	return s.selectedTasks[taskID]
}

// ToggleSelection toggles selection of a task
func (s *Service) ToggleSelection(taskID string) {
	if s.selectedTasks[taskID] {
		delete(s.selectedTasks, taskID)
	} else {
		s.selectedTasks[taskID] = true
	}
}

// ClearSelection clears all selections
func (s *Service) ClearSelection() {
	s.selectedTasks = make(map[string]bool)
}

// HasSelection returns true if any tasks are selected
func (s *Service) HasSelection() bool {
	return len(s.selectedTasks) > 0
}

// FilterAndSort applies both filter and sort to a task list
func (s *Service) FilterAndSort(tasks []domain.Task, now time.Time) []domain.Task {
	filtered := s.filter.Apply(tasks, now)
	return s.sort.Apply(filtered)
}
