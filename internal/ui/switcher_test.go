package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(v View, s string) View {
	for _, r := range s {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}

func TestSwitcher_RanksSubstringMatchesFirst(t *testing.T) {
	s := NewSwitcher([]string{"log", "shell", "tmux sessions"})
	v := typeInto(s, "she")
	s = v.(*Switcher)

	if s.ranked[0] != "shell" {
		t.Errorf("top match: got %q, want shell", s.ranked[0])
	}
}

func TestSwitcher_RanksByEditDistance(t *testing.T) {
	s := NewSwitcher([]string{"tmux sessions", "log", "shell"})
	v := typeInto(s, "lgo")
	s = v.(*Switcher)

	// No substring match; "log" is one transposition away.
	if s.ranked[0] != "log" {
		t.Errorf("top match: got %q, want log", s.ranked[0])
	}
}

func TestSwitcher_EmptyQueryKeepsDockOrder(t *testing.T) {
	labels := []string{"b", "a", "c"}
	s := NewSwitcher(labels)
	for i, want := range labels {
		if s.ranked[i] != want {
			t.Errorf("ranked[%d] = %q, want %q", i, s.ranked[i], want)
		}
	}
}

func TestSwitcher_EnterEmitsFocusPanel(t *testing.T) {
	s := NewSwitcher([]string{"log", "shell"})
	v := typeInto(s, "sh")
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should produce a command")
	}
	msg, ok := cmd().(FocusPanelMsg)
	if !ok || msg.Label != "shell" {
		t.Errorf("got %#v, want FocusPanelMsg{shell}", msg)
	}
}

func TestSwitcher_EscDismisses(t *testing.T) {
	s := NewSwitcher([]string{"log"})
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should produce a command")
	}
	if _, ok := cmd().(DismissOverlayMsg); !ok {
		t.Error("esc should emit DismissOverlayMsg")
	}
}

func TestSwitcher_CursorMovesAndClamps(t *testing.T) {
	s := NewSwitcher([]string{"a", "b"})
	v, _ := s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s = v.(*Switcher)
	if s.cursor != 1 {
		t.Errorf("cursor after down: %d", s.cursor)
	}
	v, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s = v.(*Switcher)
	if s.cursor != 1 {
		t.Errorf("cursor should clamp at the last row: %d", s.cursor)
	}
}
