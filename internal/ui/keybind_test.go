package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+b q", tea.Quit)
	reg.Bind("esc", tea.Quit)

	if reg.Lookup("ctrl+b q") == nil {
		t.Error("expected ctrl+b q to be bound")
	}
	if reg.Lookup("esc") == nil {
		t.Error("expected esc to be bound")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
	if !reg.HasPrefix("ctrl+b") {
		t.Error("ctrl+b should be a prefix of a longer binding")
	}
}

func TestKeyHandler_LeaderSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("ctrl+b x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	consumed, literal, cmd := h.Handle(keyMsg("ctrl+b"))
	if !consumed || literal || cmd != nil {
		t.Errorf("leader: consumed=%v literal=%v cmd=%v", consumed, literal, cmd)
	}
	if !h.Waiting {
		t.Error("expected handler armed after leader")
	}

	consumed, _, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Error("x: expected consumed")
	}
	if h.Waiting {
		t.Error("handler should disarm after completing a sequence")
	}
	if cmd != nil {
		cmd()
		if !executed {
			t.Error("expected command to execute")
		}
	}
}

func TestKeyHandler_LeaderTwiceIsLiteral(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+b x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg("ctrl+b"))
	consumed, literal, cmd := h.Handle(keyMsg("ctrl+b"))
	if !consumed || !literal || cmd != nil {
		t.Errorf("double leader: consumed=%v literal=%v cmd=%v", consumed, literal, cmd)
	}
	if h.Waiting {
		t.Error("handler should disarm after literal forward")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+b x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg("ctrl+b"))
	consumed, _, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.Waiting {
		t.Error("esc should disarm the handler")
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+b q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}

	// Unknown continuation after the leader is swallowed, not forwarded.
	h.Handle(keyMsg("ctrl+b"))
	consumed, _, cmd := h.Handle(keyMsg("z"))
	if !consumed || cmd != nil {
		t.Errorf("ctrl+b z: consumed=%v cmd=%v", consumed, cmd)
	}
}

// keyMsg creates a tea.KeyMsg for testing.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+b":
		return tea.KeyMsg{Type: tea.KeyCtrlB}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
