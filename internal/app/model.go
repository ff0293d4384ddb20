// Package app contains the main application model and TEA implementation.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitby/daybook/internal/config"
	"github.com/mwhitby/daybook/internal/core/analytics"
	"github.com/mwhitby/daybook/internal/domain"
	"github.com/mwhitby/daybook/internal/services/editor"
	"github.com/mwhitby/daybook/internal/services/store"
	"github.com/mwhitby/daybook/internal/types"
	"github.com/mwhitby/daybook/internal/ui/board"
	"github.com/mwhitby/daybook/internal/ui/overlay"
	"github.com/mwhitby/daybook/internal/ui/styles"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeNormal = types.ModeNormal
	ModeSearch = types.ModeSearch
	ModeAction = types.ModeAction
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// ViewMode represents the current main view
type ViewMode int

const (
	ViewBoard ViewMode = iota
	ViewDashboard
)

// Model is the main application state
type Model struct {
	// Core data
	tasks    []domain.Task
	report   analytics.Report
	insights []analytics.Insight

	// Editor state (mode, filter, sort, selections)
	editor *editor.Service

	// UI state
	overlayStack *overlay.Stack
	view         ViewMode
	cursor       board.Cursor
	searchInput  textinput.Model
	showResolved bool

	// Pending destructive action, confirmed via dialog
	pendingDelete string

	// Toasts
	toasts []Toast

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	config *config.Config

	// Loading state
	loading     bool
	spinner     spinner.Model
	lastRefresh time.Time

	store  *store.Store
	logger *slog.Logger

	// Clock, swappable in tests
	now func() time.Time
}

// New creates a new application model with the given config and store
func New(cfg *config.Config, st *store.Store, logger *slog.Logger) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	search := textinput.New()
	search.Placeholder = "search..."
	search.CharLimit = 100
	search.Width = 40

	view := ViewBoard
	if cfg.UI.DefaultView == "dashboard" {
		view = ViewDashboard
	}

	return Model{
		tasks:        []domain.Task{},
		editor:       editor.NewService(),
		overlayStack: overlay.NewStack(),
		view:         view,
		searchInput:  search,
		showResolved: cfg.UI.ShowResolved,
		toasts:       []Toast{},
		styles:       styles.New(),
		config:       cfg,
		loading:      true,
		spinner:      s,
		store:        st,
		logger:       logger,
		now:          time.Now,
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadTasksCmd(),
	)
}

// Update handles all application messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		if m.editor.IsSearch() {
			return m.handleSearchMode(msg)
		}
		return m.handleNormalMode(msg)

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		if m.editor.GetMode() == ModeAction {
			m.editor.ExitMode()
		}
		return m, nil

	case overlay.TaskCreatedMsg:
		return m, m.createTaskCmd(msg)

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case tasksLoadedMsg:
		wasLoading := m.loading
		m.tasks = msg.tasks
		m.loading = false
		m.lastRefresh = m.now()
		m.refreshAnalytics()
		if wasLoading {
			m.addToast(Toast{
				Level:   ToastSuccess,
				Message: "Tasks loaded",
				Expires: m.now().Add(3 * time.Second),
			})
		}
		return m, tickEvery(time.Second)

	case taskSavedMsg:
		return m, m.loadTasksCmd()

	case storeErrorMsg:
		m.loading = false
		m.addToast(Toast{
			Level:   ToastError,
			Message: msg.err.Error(),
			Expires: m.now().Add(8 * time.Second),
		})
		return m, tickEvery(5 * time.Second)

	case tickMsg:
		m.expireToasts()
		return m, tickEvery(time.Second)
	}

	return m, nil
}

// handleNormalMode processes keys in normal mode
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "ctrl+l":
		return m, tea.ClearScreen

	case "tab":
		if m.view == ViewBoard {
			m.view = ViewDashboard
		} else {
			m.view = ViewBoard
		}
		return m, nil

	case "esc":
		if m.editor.HasSelection() {
			m.editor.ClearSelection()
			return m, nil
		}
		if m.editor.IsFilterActive() {
			m.editor.ClearFilters()
			m.searchInput.SetValue("")
		}
		return m, nil

	case "v":
		m.showResolved = !m.showResolved
		if cols := m.buildColumns(); m.cursor.Column >= len(cols) {
			m.cursor.Column = len(cols) - 1
			m.cursor.Task = 0
		}
		return m, nil

	case " ":
		if task, ok := m.currentTask(); ok {
			m.editor.ToggleSelection(task.ID)
		}
		return m, nil

	case "f":
		if m.editor.GetFilter().DueWithin != nil {
			m.editor.SetDueWithin(nil)
		} else {
			days := m.config.UI.DueSoonDays
			m.editor.SetDueWithin(&days)
		}
		m.cursor.Task = 0
		return m, nil

	case "c":
		m.cycleStatusFilter()
		m.cursor.Task = 0
		return m, nil

	case "1":
		m.editor.TogglePriorityFilter(domain.PriorityHigh)
		m.cursor.Task = 0
		return m, nil

	case "2":
		m.editor.TogglePriorityFilter(domain.PriorityMedium)
		m.cursor.Task = 0
		return m, nil

	case "3":
		m.editor.TogglePriorityFilter(domain.PriorityLow)
		m.cursor.Task = 0
		return m, nil

	case "4":
		m.editor.TogglePriorityFilter(domain.PriorityNone)
		m.cursor.Task = 0
		return m, nil

	case "o":
		m.editor.ToggleSort(nextSortField(m.editor.GetSort().Field))
		return m, nil

	case "O":
		m.editor.ToggleSort(m.editor.GetSort().Field)
		return m, nil

	case "?":
		m.editor.EnterAction()
		return m, m.overlayStack.Push(overlay.NewHelpOverlay())

	case "a":
		m.editor.EnterAction()
		return m, m.overlayStack.Push(overlay.NewCreateTaskOverlay())

	case "/":
		m.editor.EnterSearch()
		m.searchInput.Focus()
		return m, textinput.Blink

	case "enter":
		if task, ok := m.currentTask(); ok {
			m.editor.EnterAction()
			return m, m.overlayStack.Push(overlay.NewDetailPanel(task, m.now()))
		}
		return m, nil

	case "h", "left":
		if m.cursor.Column > 0 {
			m.cursor.Column--
			m.cursor.Task = 0
		}
		return m, nil

	case "l", "right":
		if cols := m.buildColumns(); m.cursor.Column < len(cols)-1 {
			m.cursor.Column++
			m.cursor.Task = 0
		}
		return m, nil

	case "j", "down":
		if col, ok := m.columnAt(m.cursor.Column); ok && m.cursor.Task < len(col.Tasks)-1 {
			m.cursor.Task++
		}
		return m, nil

	case "k", "up":
		if m.cursor.Task > 0 {
			m.cursor.Task--
		}
		return m, nil

	case "s":
		return m.transitionCurrent(domain.StatusPending)

	case "d":
		return m.transitionCurrent(domain.StatusDone)

	case "x":
		return m.transitionCurrent(domain.StatusCancelled)

	case "D":
		if task, ok := m.currentTask(); ok {
			m.pendingDelete = task.ID
			m.editor.EnterAction()
			return m, m.overlayStack.Push(overlay.NewConfirmDialog(
				"Delete Task",
				"Delete \""+task.Title+"\"? This cannot be undone.",
			))
		}
		return m, nil
	}

	return m, nil
}

// handleSearchMode processes keys while the search input is active
func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editor.SetSearchQuery(m.searchInput.Value())
		m.editor.ExitMode()
		m.searchInput.Blur()
		m.cursor.Task = 0
		return m, nil

	case "esc":
		m.editor.ClearSearch()
		m.editor.ExitMode()
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Live filtering as the query changes
	m.editor.SetSearchQuery(m.searchInput.Value())
	m.cursor.Task = 0
	return m, cmd
}

// handleSelection routes overlay selection results
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	if result, ok := msg.Value.(overlay.ConfirmResult); ok {
		m.overlayStack.Pop()
		m.editor.ExitMode()

		id := m.pendingDelete
		m.pendingDelete = ""
		if result.Confirmed && id != "" {
			return m, m.deleteTaskCmd(id)
		}
		return m, nil
	}

	return m, nil
}

// transitionCurrent moves the task under the cursor to the given status.
// With a selection active it moves every selected task instead.
func (m Model) transitionCurrent(status domain.Status) (tea.Model, tea.Cmd) {
	if m.editor.HasSelection() {
		var cmds []tea.Cmd
		for _, t := range m.tasks {
			if m.editor.IsSelected(t.ID) && t.Status != status {
				cmds = append(cmds, m.setStatusCmd(t.ID, status))
			}
		}
		m.editor.ClearSelection()
		if len(cmds) == 0 {
			return m, nil
		}
		return m, tea.Batch(cmds...)
	}

	task, ok := m.currentTask()
	if !ok {
		return m, nil
	}
	if task.Status == status {
		return m, nil
	}
	return m, m.setStatusCmd(task.ID, status)
}

// statusFilterOrder is the cycle walked by the status filter key.
var statusFilterOrder = []domain.Status{
	domain.StatusPlan,
	domain.StatusPending,
	domain.StatusOverdue,
	domain.StatusDone,
	domain.StatusCancelled,
}

// cycleStatusFilter advances the single-status filter one step, ending with
// the filter off again after the last status.
func (m *Model) cycleStatusFilter() {
	f := m.editor.GetFilter()
	next := 0
	for i, st := range statusFilterOrder {
		if f.Status[st] {
			m.editor.ToggleStatusFilter(st)
			next = i + 1
			break
		}
	}
	if next < len(statusFilterOrder) {
		m.editor.ToggleStatusFilter(statusFilterOrder[next])
	}
}

// nextSortField cycles priority -> created -> due.
func nextSortField(f domain.SortField) domain.SortField {
	switch f {
	case domain.SortByPriority:
		return domain.SortByCreated
	case domain.SortByCreated:
		return domain.SortByDue
	default:
		return domain.SortByPriority
	}
}

// refreshAnalytics recomputes the dashboard report from the full snapshot
func (m *Model) refreshAnalytics() {
	w := analytics.NewWindow(m.now())
	m.report = analytics.Compute(m.tasks, w)
	m.insights = analytics.GenerateInsights(m.report)
}

// buildColumns converts tasks into board columns, applying filter and sort.
// The resolved column is dropped when hidden.
func (m Model) buildColumns() []board.Column {
	visible := m.editor.FilterAndSort(m.tasks, m.now())
	columns := board.BuildColumns(domain.BuildBoard(visible))
	if !m.showResolved {
		columns = columns[:2]
	}
	return columns
}

// columnAt returns the column at the given index, if it exists
func (m Model) columnAt(i int) (board.Column, bool) {
	columns := m.buildColumns()
	if i < 0 || i >= len(columns) {
		return board.Column{}, false
	}
	return columns[i], true
}

// currentTask returns the task under the cursor, if any
func (m Model) currentTask() (domain.Task, bool) {
	col, ok := m.columnAt(m.cursor.Column)
	if !ok || m.cursor.Task < 0 || m.cursor.Task >= len(col.Tasks) {
		return domain.Task{}, false
	}
	return col.Tasks[m.cursor.Task], true
}

func (m *Model) addToast(t Toast) {
	m.toasts = append(m.toasts, t)
}

// expireToasts drops toasts whose deadline has passed
func (m *Model) expireToasts() {
	now := m.now()
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

// Messages

type tasksLoadedMsg struct {
	tasks []domain.Task
}

type taskSavedMsg struct{}

type storeErrorMsg struct {
	err error
}

type tickMsg time.Time

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Commands

func (m Model) loadTasksCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.store.LoadTasks()
		if err != nil {
			return storeErrorMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func (m Model) createTaskCmd(msg overlay.TaskCreatedMsg) tea.Cmd {
	return func() tea.Msg {
		_, err := m.store.CreateTask(msg.Title, msg.Notes, msg.Priority, msg.DueAt, m.now())
		if err != nil {
			return storeErrorMsg{err: err}
		}
		return taskSavedMsg{}
	}
}

func (m Model) setStatusCmd(id string, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.store.UpdateTaskStatus(id, status, m.now()); err != nil {
			return storeErrorMsg{err: err}
		}
		return taskSavedMsg{}
	}
}

func (m Model) deleteTaskCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.store.DeleteTask(id); err != nil {
			return storeErrorMsg{err: err}
		}
		return taskSavedMsg{}
	}
}
