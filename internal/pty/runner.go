package pty

import (
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// Size is a terminal dimension in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner spawns and controls a PTY. Shell panels receive a Runner so tests
// can substitute a mock instead of forking real processes.
type Runner interface {
	Start(cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// CreackPTY implements Runner using github.com/creack/pty.
type CreackPTY struct{}

var _ Runner = (*CreackPTY)(nil)

// Start spawns cmd in a PTY of the given size.
func (c *CreackPTY) Start(cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	ws := &pty.Winsize{Rows: size.Rows, Cols: size.Cols}
	return pty.StartWithSize(cmd, ws)
}

// Resize adjusts the PTY to the given dimensions. The rwc must be the
// *os.File returned by Start; other types are a no-op, which is what the
// mock used in tests relies on.
func (c *CreackPTY) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}
