package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitby/daybook/internal/domain"
	"github.com/mwhitby/daybook/internal/ui/board"
	"github.com/mwhitby/daybook/internal/ui/dashboard"
	"github.com/mwhitby/daybook/internal/ui/statusbar"
	"github.com/mwhitby/daybook/internal/ui/toast"
)

// View renders the full application frame
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.loading {
		return m.renderLoading()
	}

	mainHeight := m.height - 2

	var mainView string
	if m.view == ViewDashboard {
		mainView = dashboard.Render(m.report, m.insights, m.styles, m.width, mainHeight)
	} else {
		mainView = board.Render(
			m.buildColumns(),
			m.cursor,
			m.editor.GetSelectedTasks(),
			m.now(),
			m.config.UI.DueSoonDays,
			m.styles,
			m.width,
			mainHeight,
		)
	}

	sb := statusbar.New(m.editor.GetMode(), m.width, m.styles)
	if m.editor.IsSearch() {
		sb = sb.WithInfo(m.searchInput.View())
	} else if m.editor.IsFilterActive() {
		sb = sb.WithInfo("filter: " + m.filterSummary())
	}
	statusBarView := sb.Render()

	view := lipgloss.JoinVertical(lipgloss.Left, mainView, statusBarView)

	if !m.overlayStack.IsEmpty() {
		current := m.overlayStack.Current()
		overlayView := current.View()

		overlayWidth, overlayHeight := current.Size()

		if title := current.Title(); title != "" {
			titleView := m.styles.OverlayTitle.Render(title)
			overlayView = lipgloss.JoinVertical(lipgloss.Left, titleView, overlayView)
		}
		overlayView = m.styles.Overlay.
			Width(overlayWidth).
			Height(overlayHeight).
			Render(overlayView)

		centeredOverlay := lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			overlayView,
		)

		view = lipgloss.JoinVertical(lipgloss.Left, view, centeredOverlay)
	}

	if len(m.toasts) > 0 {
		toastRenderer := toast.New(m.styles)
		if toastView := toastRenderer.Render(m.toasts, m.width); toastView != "" {
			view = lipgloss.JoinVertical(lipgloss.Left, view, toastView)
		}
	}

	return view
}

// filterSummary describes the active filters for the status bar
func (m Model) filterSummary() string {
	f := m.editor.GetFilter()
	var parts []string
	if f.SearchQuery != "" {
		parts = append(parts, f.SearchQuery)
	}
	for _, st := range statusFilterOrder {
		if f.Status[st] {
			parts = append(parts, string(st))
		}
	}
	for _, p := range domain.Priorities {
		if f.Priority[p] {
			parts = append(parts, string(p))
		}
	}
	if f.DueWithin != nil {
		parts = append(parts, fmt.Sprintf("due<=%dd", *f.DueWithin))
	}
	return strings.Join(parts, " ")
}

// renderLoading shows the spinner while the first snapshot loads
func (m Model) renderLoading() string {
	msg := m.spinner.View() + " Loading tasks..."
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		msg,
	)
}
