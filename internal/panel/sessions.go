package panel

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"dockgrid/internal/tmux"
	"dockgrid/internal/ui"
)

// sessionsMsg carries a refreshed session list back to its panel.
type sessionsMsg struct {
	source *Sessions
	list   []tmux.Session
	err    error
}

// Sessions lists the tmux sessions on the local server. Press r to refresh.
type Sessions struct {
	label    string
	lister   tmux.Lister
	sessions []tmux.Session
	err      error
	loaded   bool
}

var _ ui.View = (*Sessions)(nil)

// NewSessions creates a session list panel backed by lister.
func NewSessions(label string, lister tmux.Lister) *Sessions {
	return &Sessions{label: label, lister: lister}
}

// Label implements dock.Item.
func (p *Sessions) Label() string { return p.label }

// Closable implements dock.Item.
func (p *Sessions) Closable() bool { return true }

// Init implements ui.View.
func (p *Sessions) Init() tea.Cmd {
	return p.load()
}

func (p *Sessions) load() tea.Cmd {
	return func() tea.Msg {
		list, err := p.lister.Sessions()
		return sessionsMsg{source: p, list: list, err: err}
	}
}

// Update implements ui.View.
func (p *Sessions) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsMsg:
		if msg.source != p {
			return p, nil
		}
		p.sessions = msg.list
		p.err = msg.err
		p.loaded = true
		return p, nil
	case tea.KeyMsg:
		if msg.String() == "r" {
			return p, p.load()
		}
	}
	return p, nil
}

// View implements ui.View.
func (p *Sessions) View() string {
	if p.err != nil {
		return ui.Styles.Error.Render(p.err.Error())
	}
	if !p.loaded {
		return ui.Styles.Empty.Render("loading sessions…")
	}
	if len(p.sessions) == 0 {
		return ui.Styles.Empty.Render("no tmux sessions")
	}

	var b strings.Builder
	b.WriteString(ui.Styles.Title.Render("tmux sessions"))
	b.WriteString("\n")
	for _, s := range p.sessions {
		line := fmt.Sprintf("%s  %d windows", s.Name, s.Windows)
		if s.Attached {
			b.WriteString(ui.Styles.Select.Render(line + "  (attached)"))
		} else {
			b.WriteString(ui.Styles.Muted.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString(ui.Styles.Hint.Render("r: refresh"))
	return b.String()
}
