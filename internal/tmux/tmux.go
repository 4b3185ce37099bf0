// Package tmux discovers tmux sessions for display inside a dock panel.
// It wraps the gotmux client; machines without a running tmux server get
// an empty listing plus the error for the status line.
package tmux

import (
	"fmt"

	"github.com/GianlucaP106/gotmux/gotmux"
)

// Session is the subset of tmux session state the sessions panel shows.
type Session struct {
	Name     string
	Windows  int
	Attached bool
}

// Lister enumerates tmux sessions. The sessions panel takes a Lister so
// tests can feed it canned data.
type Lister interface {
	Sessions() ([]Session, error)
}

// Client implements Lister against the local tmux server.
type Client struct {
	tmux *gotmux.Tmux
}

var _ Lister = (*Client)(nil)

// NewClient connects to the default tmux socket.
func NewClient() (*Client, error) {
	t, err := gotmux.DefaultTmux()
	if err != nil {
		return nil, fmt.Errorf("connect tmux: %w", err)
	}
	return &Client{tmux: t}, nil
}

// Sessions lists the sessions on the server in server order.
func (c *Client) Sessions() ([]Session, error) {
	list, err := c.tmux.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	out := make([]Session, 0, len(list))
	for _, s := range list {
		out = append(out, Session{
			Name:     s.Name,
			Windows:  s.Windows,
			Attached: s.Attached > 0,
		})
	}
	return out, nil
}
