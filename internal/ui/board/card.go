package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitby/daybook/internal/domain"
	"github.com/mwhitby/daybook/internal/ui/styles"
)

// renderCard renders a task card
func renderCard(task domain.Task, isCursor bool, isSelected bool, now time.Time, dueSoonDays int, width int, s *styles.Styles) string {
	cardStyle := s.Card
	if isSelected {
		cardStyle = s.CardSelected
	} else if isCursor {
		cardStyle = s.CardActive
	}
	cardStyle = cardStyle.Width(width)

	// Priority badge (e.g., "HIGH", "MED")
	priorityBadge := s.PriorityBadge(task.Priority).Render(priorityLabel(task.Priority))

	statusDot := s.StatusDot(task.Status).Render("●")

	// Title - truncate if needed
	maxTitleLen := width - 4
	title := task.Title
	if len(title) > maxTitleLen && maxTitleLen > 1 {
		title = title[:maxTitleLen-1] + "…"
	}

	cursor := ""
	if isCursor {
		cursor = "▶"
	}

	titleLine := cursor + title
	badges := []string{statusDot, " ", priorityBadge}
	if due := dueLabel(task, now, dueSoonDays, s); due != "" {
		badges = append(badges, " ", due)
	}
	badgeLine := lipgloss.JoinHorizontal(lipgloss.Left, badges...)

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, badgeLine)

	return cardStyle.Render(content)
}

// dueLabel formats the due date indicator for unresolved tasks. Dates inside
// the configured due-soon horizon get the relative "due Nd" form; anything
// further out shows the calendar date.
func dueLabel(task domain.Task, now time.Time, dueSoonDays int, s *styles.Styles) string {
	if task.DueAt == nil || task.Status.IsResolved() {
		return ""
	}

	due := *task.DueAt
	if task.IsOverdueAt(now) {
		return s.DueOverdue.Render("overdue")
	}

	days := int(due.Sub(now).Hours() / 24)
	switch {
	case days < 1:
		return s.DueSoon.Render("due today")
	case days <= dueSoonDays:
		return s.DueSoon.Render(fmt.Sprintf("due %dd", days))
	default:
		return s.TaskMeta.Render("due " + due.Format("Jan 2"))
	}
}

func priorityLabel(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return "HIGH"
	case domain.PriorityMedium:
		return "MED"
	case domain.PriorityLow:
		return "LOW"
	default:
		return strings.ToUpper(string(domain.PriorityNone))
	}
}

// RenderCard is the exported version for testing
func RenderCard(task domain.Task, isCursor bool, isSelected bool, now time.Time, dueSoonDays int, width int, s *styles.Styles) string {
	return renderCard(task, isCursor, isSelected, now, dueSoonDays, width, s)
}
