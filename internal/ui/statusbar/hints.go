package statusbar

import "github.com/mwhitby/daybook/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "h/l: columns  j/k: tasks  a: add  d: done  Tab: view  ?: help  q: quit"
	case types.ModeSearch:
		return "Type to search  Enter: confirm  Esc: cancel"
	case types.ModeAction:
		// Action mode hints come from the open overlay
		return ""
	default:
		return ""
	}
}
