// Package board renders the three-column task board.
package board

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitby/daybook/internal/ui/styles"
)

// Render renders the board columns side by side. dueSoonDays is the
// configured horizon for relative due badges on cards.
func Render(
	columns []Column,
	cursor Cursor,
	selectedTasks map[string]bool,
	now time.Time,
	dueSoonDays int,
	s *styles.Styles,
	width int,
	height int,
) string {
	if len(columns) == 0 {
		return ""
	}

	// Columns share the width evenly
	columnWidth := width / len(columns)

	var columnStrings []string
	for i, col := range columns {
		isActive := i == cursor.Column
		cursorTask := 0
		if isActive {
			cursorTask = cursor.Task
		}

		columnStr := renderColumn(
			col.Title,
			col.Tasks,
			cursorTask,
			isActive,
			selectedTasks,
			now,
			dueSoonDays,
			columnWidth,
			height,
			s,
		)

		sized := lipgloss.NewStyle().Width(columnWidth).Height(height).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...)
}
