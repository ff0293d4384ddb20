package overlay

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitby/daybook/internal/domain"
)

// TaskCreatedMsg is emitted when a new task is created
type TaskCreatedMsg struct {
	Title    string
	Notes    string
	Priority domain.Priority
	DueAt    *time.Time
}

// CreateTaskOverlay provides a form to create a new task
type CreateTaskOverlay struct {
	title      textinput.Model
	notes      textarea.Model
	due        textinput.Model
	priority   domain.Priority
	focusIndex int
	dueErr     bool
	styles     *Styles
}

const (
	focusTitle = iota
	focusNotes
	focusPriority
	focusDue
	focusSubmit
	focusFieldCount
)

// NewCreateTaskOverlay creates a new task creation overlay
func NewCreateTaskOverlay() *CreateTaskOverlay {
	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	ta := textarea.New()
	ta.Placeholder = "Notes (optional)..."
	ta.CharLimit = 2000
	ta.SetWidth(60)
	ta.SetHeight(4)

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD (optional)"
	due.CharLimit = 10
	due.Width = 20

	return &CreateTaskOverlay{
		title:    ti,
		notes:    ta,
		due:      due,
		priority: domain.PriorityMedium,
		styles:   New(),
	}
}

// Init initializes the overlay
func (c *CreateTaskOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (c *CreateTaskOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return c, func() tea.Msg { return CloseOverlayMsg{} }

		case "ctrl+s":
			return c, c.submit()

		case "tab", "shift+tab":
			if msg.String() == "tab" {
				c.focusIndex = (c.focusIndex + 1) % focusFieldCount
			} else {
				c.focusIndex = (c.focusIndex - 1 + focusFieldCount) % focusFieldCount
			}

			c.title.Blur()
			c.notes.Blur()
			c.due.Blur()
			switch c.focusIndex {
			case focusTitle:
				c.title.Focus()
			case focusNotes:
				c.notes.Focus()
			case focusDue:
				c.due.Focus()
			}

			return c, nil

		case "enter":
			if c.focusIndex == focusSubmit {
				return c, c.submit()
			}
			// Let the active field handle enter
		}

		// Priority selection when focused
		if c.focusIndex == focusPriority {
			switch msg.String() {
			case "h":
				c.priority = domain.PriorityHigh
				return c, nil
			case "m":
				c.priority = domain.PriorityMedium
				return c, nil
			case "l":
				c.priority = domain.PriorityLow
				return c, nil
			case "n":
				c.priority = domain.PriorityNone
				return c, nil
			}
		}
	}

	var cmd tea.Cmd
	switch c.focusIndex {
	case focusTitle:
		c.title, cmd = c.title.Update(msg)
		cmds = append(cmds, cmd)
	case focusNotes:
		c.notes, cmd = c.notes.Update(msg)
		cmds = append(cmds, cmd)
	case focusDue:
		c.due, cmd = c.due.Update(msg)
		cmds = append(cmds, cmd)
	}

	return c, tea.Batch(cmds...)
}

// View renders the form
func (c *CreateTaskOverlay) View() string {
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94e2d5")).
		Width(10).
		Align(lipgloss.Right)

	focusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#89b4fa")).
		Bold(true)

	label := func(idx int, text string) string {
		if c.focusIndex == idx {
			return focusStyle.Render(text)
		}
		return labelStyle.Render(text)
	}

	b.WriteString(label(focusTitle, "Title:"))
	b.WriteString("  ")
	b.WriteString(c.title.View())
	b.WriteString("\n\n")

	b.WriteString(label(focusNotes, "Notes:"))
	b.WriteString("\n")
	b.WriteString(c.notes.View())
	b.WriteString("\n\n")

	b.WriteString(label(focusPriority, "Priority:"))
	b.WriteString("  ")
	b.WriteString(c.renderPrioritySelector())
	b.WriteString("\n\n")

	b.WriteString(label(focusDue, "Due:"))
	b.WriteString("  ")
	b.WriteString(c.due.View())
	if c.dueErr {
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Render("invalid date"))
	}
	b.WriteString("\n\n")

	b.WriteString(c.styles.Separator.Render(strings.Repeat("─", 60)))
	b.WriteString("\n\n")

	submitStyle := c.styles.MenuItem
	if c.focusIndex == focusSubmit {
		submitStyle = c.styles.MenuItemActive
	}
	b.WriteString(submitStyle.Render("[ Create Task ]"))
	b.WriteString("\n\n")

	hints := []string{
		c.styles.MenuKey.Render("Tab") + " " + c.styles.Footer.Render("Switch fields"),
		c.styles.MenuKey.Render("Ctrl+S") + " " + c.styles.Footer.Render("Submit"),
		c.styles.MenuKey.Render("Esc") + " " + c.styles.Footer.Render("Cancel"),
	}
	b.WriteString(c.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// renderPrioritySelector renders the priority selector with current selection
func (c *CreateTaskOverlay) renderPrioritySelector() string {
	priorities := []struct {
		key string
		pri domain.Priority
	}{
		{"h", domain.PriorityHigh},
		{"m", domain.PriorityMedium},
		{"l", domain.PriorityLow},
		{"n", domain.PriorityNone},
	}

	var parts []string
	for _, p := range priorities {
		style := c.styles.MenuItem
		indicator := " "
		if p.pri == c.priority {
			style = c.styles.MenuItemActive
			indicator = "●"
		}

		parts = append(parts, style.Render(fmt.Sprintf("[%s%s %s]", indicator, p.key, string(p.pri))))
	}

	return strings.Join(parts, " ")
}

// submit validates the form and emits a TaskCreatedMsg
func (c *CreateTaskOverlay) submit() tea.Cmd {
	title := strings.TrimSpace(c.title.Value())
	if title == "" {
		return nil
	}

	var dueAt *time.Time
	if raw := strings.TrimSpace(c.due.Value()); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.dueErr = true
			return nil
		}
		// Due at end of the chosen day
		endOfDay := parsed.AddDate(0, 0, 1).Add(-time.Second)
		dueAt = &endOfDay
	}
	c.dueErr = false

	return tea.Batch(
		func() tea.Msg {
			return TaskCreatedMsg{
				Title:    title,
				Notes:    strings.TrimSpace(c.notes.Value()),
				Priority: c.priority,
				DueAt:    dueAt,
			}
		},
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// Title returns the overlay title
func (c *CreateTaskOverlay) Title() string {
	return "New Task"
}

// Size returns the overlay dimensions
func (c *CreateTaskOverlay) Size() (width, height int) {
	return 70, 22
}
