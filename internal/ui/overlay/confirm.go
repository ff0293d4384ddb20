package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmDialog asks the user to approve a destructive action, currently
// task deletion. It starts on No so a stray Enter never deletes anything.
type ConfirmDialog struct {
	title   string
	message string
	styles  *Styles
	confirm bool
}

// ConfirmResult is delivered through a SelectionMsg when the dialog closes.
type ConfirmResult struct {
	Confirmed bool
}

// NewConfirmDialog creates a confirmation dialog with the given title and message
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		title:   title,
		message: message,
		styles:  New(),
	}
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

// choose closes the dialog with the given answer.
func (c *ConfirmDialog) choose(confirmed bool) tea.Cmd {
	key := "no"
	if confirmed {
		key = "yes"
	}
	return func() tea.Msg {
		return SelectionMsg{Key: key, Value: ConfirmResult{Confirmed: confirmed}}
	}
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key.String() {
	case "y", "Y":
		return c, c.choose(true)

	case "n", "N", "esc":
		return c, c.choose(false)

	case "enter":
		return c, c.choose(c.confirm)

	case "h", "left":
		c.confirm = false

	case "l", "right", "tab":
		c.confirm = true
	}

	return c, nil
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	yes := c.styles.MenuItem.Render("[Y] Yes")
	no := c.styles.MenuItemActive.Render("[N] No")
	if c.confirm {
		yes = c.styles.MenuItemActive.Render("[Y] Yes")
		no = c.styles.MenuItem.Render("[N] No")
	}

	footer := c.styles.Footer.Render("h/l: switch  Enter: choose  Esc: cancel")

	return lipgloss.JoinVertical(lipgloss.Left,
		c.styles.MenuItem.Render(c.message),
		"",
		yes+"    "+no,
		footer,
	)
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	messageLines := strings.Count(c.message, "\n") + 1
	return 56, messageLines + 6
}
