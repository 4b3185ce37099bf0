package panel

import (
	"strings"
	"testing"

	"dockgrid/internal/ui"
)

func TestLog_PrintfAppends(t *testing.T) {
	l := NewLog("log")
	l.Update(ui.ResizeMsg{Width: 40, Height: 10})
	l.Printf("focus %s -> %s", "a", "b")
	l.Printf("closed %s", "shell")

	out := l.View()
	if !strings.Contains(out, "focus a -> b") || !strings.Contains(out, "closed shell") {
		t.Errorf("lines missing:\n%s", out)
	}
}

func TestLog_NotClosable(t *testing.T) {
	if NewLog("log").Closable() {
		t.Error("the event log must not be closable")
	}
}

func TestLog_EmptyState(t *testing.T) {
	l := NewLog("log")
	if !strings.Contains(l.View(), "nothing logged") {
		t.Errorf("empty state: %q", l.View())
	}
}
