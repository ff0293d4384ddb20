package board

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitby/daybook/internal/domain"
	"github.com/mwhitby/daybook/internal/ui/styles"
)

// renderColumn renders a board column with header and task cards
func renderColumn(
	title string,
	tasks []domain.Task,
	cursorTask int,
	isActive bool,
	selectedTasks map[string]bool,
	now time.Time,
	dueSoonDays int,
	width int,
	height int,
	s *styles.Styles,
) string {
	headerStyle := s.ColumnHeader
	if isActive {
		headerStyle = s.ColumnHeaderActive
	}

	// Render header with title (e.g., "─ Planned ─────")
	headerText := "─ " + title + " "
	remainingWidth := width - len(headerText) - 2
	if remainingWidth > 0 {
		headerText += strings.Repeat("─", remainingWidth)
	}
	header := headerStyle.Render(headerText)

	var cardStrings []string
	cardWidth := width - 4 // Account for column border and padding
	for i, task := range tasks {
		isCursor := isActive && i == cursorTask
		isSelected := selectedTasks[task.ID]
		cardStrings = append(cardStrings, renderCard(task, isCursor, isSelected, now, dueSoonDays, cardWidth, s))
	}

	content := ""
	if len(cardStrings) > 0 {
		content = strings.Join(cardStrings, "\n")
	}

	columnStyle := s.Column.Width(width).Height(height)
	columnContent := columnStyle.Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, columnContent)
}
