package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal view composited over the workspace with a dismiss key.
type Overlay struct {
	View    View
	Dismiss string // key that dismisses (e.g. "esc")
}

// OverlayStack manages a stack of overlays (topmost receives input first).
// While any overlay is open the workspace suppresses mouse docking.
type OverlayStack struct {
	stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.stack = append(s.stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.stack) == 0 {
		return Overlay{}, false
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.stack) == 0 {
		return Overlay{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.stack)
}

// UpdateTop passes msg to the top overlay's Update and replaces its View
// with the result. Caller runs the returned cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	top := &s.stack[len(s.stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}
