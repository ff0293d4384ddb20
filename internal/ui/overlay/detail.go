package overlay

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitby/daybook/internal/domain"
)

// DetailPanel displays full task details with scrollable notes
type DetailPanel struct {
	task          domain.Task
	now           time.Time
	scrollY       int
	contentHeight int
	viewHeight    int
	styles        *Styles
}

// NewDetailPanel creates a new detail panel for the given task
func NewDetailPanel(task domain.Task, now time.Time) *DetailPanel {
	contentHeight := 0
	if task.Notes != "" {
		contentHeight = len(strings.Split(task.Notes, "\n"))
	}

	return &DetailPanel{
		task:          task,
		now:           now,
		contentHeight: contentHeight,
		viewHeight:    15,
		styles:        New(),
	}
}

// Init initializes the detail panel
func (d *DetailPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *DetailPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return d, func() tea.Msg { return CloseOverlayMsg{} }

		case "j", "down":
			if d.scrollY < d.maxScroll() {
				d.scrollY++
			}
			return d, nil

		case "k", "up":
			if d.scrollY > 0 {
				d.scrollY--
			}
			return d, nil

		case "g":
			d.scrollY = 0
			return d, nil

		case "G":
			d.scrollY = d.maxScroll()
			return d, nil
		}
	}

	return d, nil
}

// View renders the detail panel
func (d *DetailPanel) View() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#89b4fa")).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94e2d5")).
		Width(12).
		Align(lipgloss.Right)

	valueStyle := d.styles.MenuItem

	b.WriteString(headerStyle.Render(d.task.Title))
	b.WriteString("\n\n")

	field := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	field("Status:", d.formatStatus(d.task.Status))
	field("Priority:", string(d.task.Priority))

	if d.task.DueAt != nil {
		due := d.formatTime(*d.task.DueAt)
		if d.task.IsOverdueAt(d.now) {
			due += "  (overdue)"
		}
		field("Due:", due)
	}

	field("Created:", d.formatTime(d.task.CreatedAt))
	field("Updated:", d.formatTime(d.task.UpdatedAt))

	if d.task.CompletedAt != nil {
		field("Completed:", d.formatTime(*d.task.CompletedAt))
	}

	if d.task.Notes != "" {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Notes"))
		b.WriteString("\n")

		noteLines := strings.Split(d.task.Notes, "\n")
		d.contentHeight = len(noteLines)

		start := d.scrollY
		end := min(d.scrollY+d.viewHeight, len(noteLines))

		for i := start; i < end; i++ {
			b.WriteString(valueStyle.Render(noteLines[i]))
			b.WriteString("\n")
		}

		if d.maxScroll() > 0 {
			scrollInfo := d.styles.Footer.Render(
				fmt.Sprintf("[j/k to scroll, g/G to jump] (line %d/%d)", d.scrollY+1, d.contentHeight),
			)
			b.WriteString("\n")
			b.WriteString(scrollInfo)
		}
	}

	return b.String()
}

// Title returns the overlay title
func (d *DetailPanel) Title() string {
	return "Task Details"
}

// Size returns the overlay dimensions
func (d *DetailPanel) Size() (width, height int) {
	d.viewHeight = 15
	return 70, 28
}

// formatStatus formats a status for display
func (d *DetailPanel) formatStatus(status domain.Status) string {
	switch status {
	case domain.StatusPlan:
		return "Planned"
	case domain.StatusPending:
		return "Pending"
	case domain.StatusOverdue:
		return "Overdue"
	case domain.StatusDone:
		return "Done"
	case domain.StatusCancelled:
		return "Cancelled"
	default:
		return string(status)
	}
}

// formatTime formats a timestamp for display
func (d *DetailPanel) formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// maxScroll returns the maximum scroll position
func (d *DetailPanel) maxScroll() int {
	return max(0, d.contentHeight-d.viewHeight)
}
