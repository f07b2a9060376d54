package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Overlay is a view drawn over the grid until its dismiss binding fires.
type Overlay struct {
	View    View
	Dismiss key.Binding
}

// OverlayStack holds open overlays; the topmost receives input first.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens an overlay on top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop closes the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// Clear closes every overlay, e.g. when the items they describe are replaced.
func (s *OverlayStack) Clear() {
	s.Stack = nil
}

// HandleKey routes msg to the top overlay. It pops the overlay when msg
// matches its dismiss binding. ok is false when no overlay is open.
func (s *OverlayStack) HandleKey(msg tea.KeyMsg) (cmd tea.Cmd, ok bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	if key.Matches(msg, top.Dismiss) {
		s.Pop()
		return nil, true
	}
	next, cmd := top.View.Update(msg)
	top.View = next
	return cmd, true
}
