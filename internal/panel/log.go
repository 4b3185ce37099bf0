package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dockgrid/internal/ui"
)

// Log is an append-only text panel for workspace events. It is the one
// panel that cannot be closed, so an empty workspace always has somewhere
// to report to.
type Log struct {
	label    string
	lines    []string
	viewport viewport.Model
}

var _ ui.View = (*Log)(nil)

// NewLog creates an empty log panel.
func NewLog(label string) *Log {
	return &Log{
		label:    label,
		viewport: viewport.New(80, 24),
	}
}

// Label implements dock.Item.
func (l *Log) Label() string { return l.label }

// Closable implements dock.Item.
func (l *Log) Closable() bool { return false }

// Printf appends a formatted line and scrolls to it.
func (l *Log) Printf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
	l.refresh()
	l.viewport.GotoBottom()
}

// Init implements ui.View.
func (l *Log) Init() tea.Cmd { return nil }

// Update implements ui.View.
func (l *Log) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.ResizeMsg:
		l.viewport.Width = msg.Width
		l.viewport.Height = msg.Height
		l.refresh()
		return l, nil
	case tea.KeyMsg:
		// Scroll keys only; the log has no other input.
		var cmd tea.Cmd
		l.viewport, cmd = l.viewport.Update(msg)
		return l, cmd
	}
	return l, nil
}

// View implements ui.View.
func (l *Log) View() string {
	if len(l.lines) == 0 {
		return ui.Styles.Empty.Render("nothing logged yet")
	}
	return l.viewport.View()
}

func (l *Log) refresh() {
	l.viewport.SetContent(strings.Join(l.lines, "\n"))
}
