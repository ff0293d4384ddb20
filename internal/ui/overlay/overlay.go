package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal panel layered over the board or dashboard. A panel is
// a full tea.Model so it owns its input handling while open.
type Overlay interface {
	tea.Model
	// Title is rendered above the panel body by the app frame.
	Title() string
	// Size reports the panel's preferred width and height.
	Size() (width, height int)
}

// CloseOverlayMsg asks the app to dismiss the topmost panel.
type CloseOverlayMsg struct{}

// SelectionMsg carries a choice made inside a panel back to the app, for
// example the outcome of a delete confirmation.
type SelectionMsg struct {
	Key   string
	Value any
}
