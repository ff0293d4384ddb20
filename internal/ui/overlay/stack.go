package overlay

import tea "github.com/charmbracelet/bubbletea"

// Stack holds the open panels, topmost last. Only the top panel receives
// input; the ones beneath keep their state until revealed again.
type Stack struct {
	panels []Overlay
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push opens a panel on top of the stack and runs its Init command.
func (s *Stack) Push(o Overlay) tea.Cmd {
	s.panels = append(s.panels, o)
	return o.Init()
}

// Pop dismisses the top panel and returns it, or nil when nothing is open.
func (s *Stack) Pop() Overlay {
	n := len(s.panels)
	if n == 0 {
		return nil
	}
	top := s.panels[n-1]
	s.panels = s.panels[:n-1]
	return top
}

// Current returns the top panel without dismissing it, or nil.
func (s *Stack) Current() Overlay {
	if len(s.panels) == 0 {
		return nil
	}
	return s.panels[len(s.panels)-1]
}

// IsEmpty reports whether any panel is open.
func (s *Stack) IsEmpty() bool {
	return len(s.panels) == 0
}

// Clear dismisses every open panel.
func (s *Stack) Clear() {
	s.panels = nil
}

// Update routes a message to the top panel. A CloseOverlayMsg dismisses the
// panel instead of being forwarded to it.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	top := s.Current()
	if top == nil {
		return nil
	}

	if _, ok := msg.(CloseOverlayMsg); ok {
		s.Pop()
		return nil
	}

	next, cmd := top.Update(msg)
	if o, ok := next.(Overlay); ok {
		s.panels[len(s.panels)-1] = o
	}
	return cmd
}
