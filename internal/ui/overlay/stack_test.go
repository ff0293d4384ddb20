package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// stubPanel is a minimal panel used to exercise the stack
type stubPanel struct {
	title  string
	width  int
	height int
	taskID string
}

func (p stubPanel) Init() tea.Cmd {
	return nil
}

func (p stubPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			return p, func() tea.Msg {
				return SelectionMsg{Key: "task", Value: p.taskID}
			}
		case "esc":
			return p, func() tea.Msg {
				return CloseOverlayMsg{}
			}
		}
	}
	return p, nil
}

func (p stubPanel) View() string {
	return p.title
}

func (p stubPanel) Title() string {
	return p.title
}

func (p stubPanel) Size() (width, height int) {
	return p.width, p.height
}

func TestStackStartsEmpty(t *testing.T) {
	stack := NewStack()

	if !stack.IsEmpty() {
		t.Error("new stack should be empty")
	}
	if stack.Current() != nil {
		t.Error("Current on an empty stack should return nil")
	}
	if stack.Pop() != nil {
		t.Error("Pop on an empty stack should return nil")
	}
}

func TestStackPushPop(t *testing.T) {
	stack := NewStack()
	details := stubPanel{title: "Task Details", width: 60, height: 20}
	confirm := stubPanel{title: "Delete Task", width: 56, height: 7}

	if cmd := stack.Push(details); cmd != nil {
		t.Error("Push should return the panel's nil Init command")
	}
	stack.Push(confirm)

	if stack.IsEmpty() {
		t.Fatal("stack should not be empty after pushes")
	}
	if got := stack.Current().Title(); got != "Delete Task" {
		t.Errorf("top panel should be the confirm dialog, got %q", got)
	}

	// Dismissing the dialog reveals the details panel beneath it
	if popped := stack.Pop(); popped.Title() != "Delete Task" {
		t.Errorf("Pop returned %q, want the confirm dialog", popped.Title())
	}
	if got := stack.Current().Title(); got != "Task Details" {
		t.Errorf("details panel should be revealed, got %q", got)
	}

	stack.Pop()
	if !stack.IsEmpty() {
		t.Error("stack should be empty after popping every panel")
	}
}

func TestStackClear(t *testing.T) {
	stack := NewStack()
	stack.Push(stubPanel{title: "Help"})
	stack.Push(stubPanel{title: "Task Details"})

	stack.Clear()

	if !stack.IsEmpty() {
		t.Error("stack should be empty after Clear")
	}
	if stack.Current() != nil {
		t.Error("Current should return nil after Clear")
	}
}

func TestStackUpdateOnEmptyStack(t *testing.T) {
	stack := NewStack()

	if cmd := stack.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("Update on an empty stack should return nil")
	}
}

func TestStackUpdateForwardsToTopPanel(t *testing.T) {
	stack := NewStack()
	stack.Push(stubPanel{title: "Task Details", taskID: "t-42"})

	cmd := stack.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Update should return the panel's command")
	}

	sel, ok := cmd().(SelectionMsg)
	if !ok {
		t.Fatalf("expected SelectionMsg, got %T", cmd())
	}
	if sel.Key != "task" || sel.Value != "t-42" {
		t.Errorf("selection should carry the panel's task, got %+v", sel)
	}
}

func TestStackUpdateIgnoredKey(t *testing.T) {
	stack := NewStack()
	stack.Push(stubPanel{title: "Help"})

	if cmd := stack.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}); cmd != nil {
		t.Error("unhandled key should return nil command")
	}
	if got := stack.Current().Title(); got != "Help" {
		t.Errorf("panel should be unchanged, got %q", got)
	}
}

func TestStackUpdateCloseMsgPopsInsteadOfForwarding(t *testing.T) {
	stack := NewStack()
	stack.Push(stubPanel{title: "Task Details"})
	stack.Push(stubPanel{title: "Delete Task"})

	if cmd := stack.Update(CloseOverlayMsg{}); cmd != nil {
		t.Error("CloseOverlayMsg should return nil command")
	}
	if got := stack.Current().Title(); got != "Task Details" {
		t.Errorf("close should dismiss only the top panel, got %q", got)
	}

	stack.Update(CloseOverlayMsg{})
	if !stack.IsEmpty() {
		t.Error("stack should be empty after closing every panel")
	}
}
