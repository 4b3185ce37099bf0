package ui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Switcher is a type-to-jump panel picker. Candidates are re-ranked on every
// keystroke by edit distance to the query, with substring matches pinned to
// the top, so a rough guess at a panel name still lands.
type Switcher struct {
	input  textinput.Model
	labels []string
	ranked []string
	cursor int
}

var _ View = (*Switcher)(nil)

// NewSwitcher creates a picker over the given panel labels.
func NewSwitcher(labels []string) *Switcher {
	ti := textinput.New()
	ti.Placeholder = "panel name"
	ti.CharLimit = 40
	ti.Width = 28
	ti.Focus()
	s := &Switcher{input: ti, labels: labels}
	s.rank()
	return s
}

// Init implements View.
func (s *Switcher) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (s *Switcher) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return DismissOverlayMsg{} }
		case "enter":
			if len(s.ranked) == 0 {
				return s, nil
			}
			label := s.ranked[s.cursor]
			return s, func() tea.Msg { return FocusPanelMsg{Label: label} }
		case "up", "ctrl+p":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil
		case "down", "ctrl+n":
			if s.cursor < len(s.ranked)-1 {
				s.cursor++
			}
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.rank()
	return s, cmd
}

// rank orders labels for the current query. An empty query keeps dock order.
func (s *Switcher) rank() {
	ranked := make([]string, len(s.labels))
	copy(ranked, s.labels)
	q := strings.ToLower(s.input.Value())
	if q != "" {
		sort.SliceStable(ranked, func(i, j int) bool {
			return switcherScore(q, ranked[i]) < switcherScore(q, ranked[j])
		})
	}
	s.ranked = ranked
	if s.cursor >= len(ranked) {
		s.cursor = 0
	}
}

// switcherScore is the ranking key: Levenshtein distance, with a large
// bonus for substring matches so exact fragments always win.
func switcherScore(q, label string) int {
	l := strings.ToLower(label)
	d := levenshtein.ComputeDistance(q, l)
	if strings.Contains(l, q) {
		d -= 100
	}
	return d
}

// View implements View.
func (s *Switcher) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Go to panel"))
	b.WriteString("\n")
	b.WriteString(s.input.View())
	b.WriteString("\n")
	for i, label := range s.ranked {
		if i == s.cursor {
			b.WriteString(Styles.Select.Render("> " + label))
		} else {
			b.WriteString(Styles.Muted.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString(Styles.Hint.Render("Enter: jump  Esc: cancel"))
	return Styles.Box.Render(b.String())
}
