package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Sequences use Bubble Tea key strings joined by spaces: "ctrl+b n" means
// ctrl+b then n. Single keys ("esc", "q") are also valid sequences.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key sequence to a command.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help line.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.bindings[seq] = cmd
	if desc != "" {
		r.descriptions[seq] = desc
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[seq]
}

// HasPrefix returns true if any binding starts with seq and a space
// (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := seq + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// PrefixHints returns the continuations of prefix with descriptions, for
// display while the handler waits for the rest of a sequence. Keys are the
// next key in each matching sequence.
func (r *KeybindRegistry) PrefixHints(prefix string) map[string]string {
	out := make(map[string]string)
	p := prefix + " "
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, p) {
			continue
		}
		rest := strings.TrimPrefix(seq, p)
		next := rest
		if i := strings.IndexByte(rest, ' '); i >= 0 {
			next = rest[:i]
		}
		if d, ok := r.descriptions[seq]; ok && d != "" && !strings.Contains(rest, " ") {
			out[next] = d
		} else {
			out[next] = next + "…"
		}
	}
	return out
}

// KeyHandler manages prefix-key state and dispatches to the registry.
// The leader works like tmux's prefix: pressing it arms the handler, the
// following keys complete a sequence. Leader twice forwards a literal
// leader keypress to the focused panel.
type KeyHandler struct {
	Registry *KeybindRegistry
	Leader   string   // e.g. "ctrl+b" (tea.KeyMsg.String() format)
	Waiting  bool     // true when armed, waiting for the rest of a sequence
	Buffer   []string // accumulated sequence
}

// NewKeyHandler creates a handler with ctrl+b as the leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg, Leader: "ctrl+b"}
}

// Handle processes a KeyMsg. Returns (consumed, literal, cmd).
// consumed: the key belongs to the keybind system, do not forward it.
// literal: the user pressed leader twice; forward one leader keypress.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed, literal bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" && h.Waiting {
		h.reset()
		return true, false, nil
	}

	if !h.Waiting {
		if s == h.Leader {
			h.Waiting = true
			h.Buffer = []string{h.Leader}
			return true, false, nil
		}
		if c := h.Registry.Lookup(s); c != nil {
			return true, false, c
		}
		return false, false, nil
	}

	// Armed: leader twice sends a literal leader key to the panel.
	if s == h.Leader && len(h.Buffer) == 1 {
		h.reset()
		return true, true, nil
	}

	h.Buffer = append(h.Buffer, s)
	seq := strings.Join(h.Buffer, " ")
	if c := h.Registry.Lookup(seq); c != nil {
		h.reset()
		return true, false, c
	}
	if h.Registry.HasPrefix(seq) {
		return true, false, nil
	}
	h.reset()
	return true, false, nil
}

func (h *KeyHandler) reset() {
	h.Waiting = false
	h.Buffer = nil
}

// HelpBindings returns key.Binding values for the current handler state,
// suitable for bubbles/help rendering in the status line.
func (h *KeyHandler) HelpBindings() []key.Binding {
	prefix := h.Leader
	if h.Waiting {
		prefix = strings.Join(h.Buffer, " ")
	}
	hints := h.Registry.PrefixHints(prefix)
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	if h.Waiting {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		))
	}
	return bindings
}
