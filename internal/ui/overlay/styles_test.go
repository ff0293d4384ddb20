package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestStylesInitialized(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}

	tests := []struct {
		name  string
		style lipgloss.Style
		text  string
	}{
		{"Overlay", s.Overlay, "New Task"},
		{"Title", s.Title, "Task Details"},
		{"MenuItem", s.MenuItem, "[N] No"},
		{"MenuItemActive", s.MenuItemActive, "[Y] Yes"},
		{"MenuItemDisabled", s.MenuItemDisabled, "submit"},
		{"MenuKey", s.MenuKey, "d"},
		{"MenuKeyDisabled", s.MenuKeyDisabled, "d"},
		{"Separator", s.Separator, "────────"},
		{"Footer", s.Footer, "Esc: cancel"},
		{"MenuHeader", s.MenuHeader, "Tasks"},
		{"MenuCount", s.MenuCount, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered := tt.style.Render(tt.text)
			if rendered == "" {
				t.Errorf("%s style rendered empty string", tt.name)
			}
			if !strings.Contains(ansi.Strip(rendered), tt.text) {
				t.Errorf("%s style should preserve its text, got %q", tt.name, rendered)
			}
		})
	}
}

func TestOverlayStyleWrapsContent(t *testing.T) {
	s := New()

	rendered := s.Overlay.Render("Delete \"Renew passport\"?")
	if len(rendered) <= len("Delete \"Renew passport\"?") {
		t.Error("Overlay style should add border and padding around the content")
	}
}
