package panel

import (
	"bytes"
	"io"
	"os/exec"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dockgrid/internal/pty"
	"dockgrid/internal/ui"
)

// OutputMsg carries bytes read from a shell's PTY. Source routes the message
// back to the owning panel when several shells are docked at once.
type OutputMsg struct {
	Source *Shell
	Data   []byte
}

// Shell is a PTY-backed interactive terminal panel. Keys forwarded by the
// workspace go straight to the PTY; output is pumped back through OutputMsg
// and displayed in a viewport.
type Shell struct {
	label   string
	runner  pty.Runner
	command string
	workDir string

	ptmx     io.ReadWriteCloser
	content  *bytes.Buffer
	viewport viewport.Model
	width    int
	height   int
	outputCh chan []byte
}

var _ ui.View = (*Shell)(nil)

const defaultShellWidth = 80
const defaultShellHeight = 24

// NewShell creates a shell panel that will spawn command in workDir.
// The runner is injected so tests can avoid forking real processes.
func NewShell(label string, runner pty.Runner, command, workDir string) *Shell {
	return &Shell{
		label:    label,
		runner:   runner,
		command:  command,
		workDir:  workDir,
		content:  &bytes.Buffer{},
		viewport: viewport.New(defaultShellWidth, defaultShellHeight),
		width:    defaultShellWidth,
		height:   defaultShellHeight,
		outputCh: make(chan []byte, 64),
	}
}

// Label implements dock.Item.
func (s *Shell) Label() string { return s.label }

// Closable implements dock.Item.
func (s *Shell) Closable() bool { return true }

// Init implements ui.View. Spawns the shell and starts the output pump.
func (s *Shell) Init() tea.Cmd {
	cmd := exec.Command(s.command)
	cmd.Dir = s.workDir
	if cmd.Dir == "" {
		cmd.Dir = "."
	}

	sz := pty.Size{Rows: uint16(s.height), Cols: uint16(s.width)}
	ptmx, err := s.runner.Start(cmd, sz)
	if err != nil {
		s.content.WriteString("failed to spawn " + s.command + ": " + err.Error() + "\r\n")
		s.refresh()
		return nil
	}
	s.ptmx = ptmx

	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				cp := make([]byte, n)
				copy(cp, buf[:n])
				select {
				case s.outputCh <- cp:
				default:
					// channel full, drop rather than block the pump
				}
			}
			if err != nil {
				close(s.outputCh)
				return
			}
		}
	}()

	return s.waitForOutput()
}

// waitForOutput blocks on the pump channel. Exactly one waiter is in flight
// per shell: Init arms it and only the OutputMsg handler re-arms it.
func (s *Shell) waitForOutput() tea.Cmd {
	return func() tea.Msg {
		data, ok := <-s.outputCh
		if !ok {
			return nil
		}
		return OutputMsg{Source: s, Data: data}
	}
}

// Update implements ui.View.
func (s *Shell) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case OutputMsg:
		if msg.Source != s {
			return s, nil
		}
		s.content.Write(msg.Data)
		s.refresh()
		s.viewport.GotoBottom()
		return s, s.waitForOutput()

	case ui.ResizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.viewport.Width = msg.Width
		s.viewport.Height = msg.Height
		if s.ptmx != nil {
			s.runner.Resize(s.ptmx, pty.Size{Rows: uint16(msg.Height), Cols: uint16(msg.Width)})
		}
		s.refresh()
		return s, nil

	case tea.KeyMsg:
		if s.ptmx != nil {
			if b := keyToPTYBytes(msg); len(b) > 0 {
				s.ptmx.Write(b)
			}
		}
		return s, nil
	}
	return s, nil
}

// View implements ui.View.
func (s *Shell) View() string {
	return s.viewport.View()
}

func (s *Shell) refresh() {
	s.viewport.SetContent(s.content.String())
}

// Close releases the PTY. The workspace calls it when the tab closes.
func (s *Shell) Close() error {
	if s.ptmx != nil {
		return s.ptmx.Close()
	}
	return nil
}

// keyToPTYBytes converts a Bubble Tea KeyMsg to the bytes the PTY expects.
func keyToPTYBytes(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyEnter:
		return []byte{'\r'}
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte{'\t'}
	case tea.KeySpace:
		return []byte{' '}
	case tea.KeyUp:
		return []byte{0x1b, '[', 'A'}
	case tea.KeyDown:
		return []byte{0x1b, '[', 'B'}
	case tea.KeyRight:
		return []byte{0x1b, '[', 'C'}
	case tea.KeyLeft:
		return []byte{0x1b, '[', 'D'}
	case tea.KeyCtrlC:
		return []byte{0x03}
	case tea.KeyCtrlD:
		return []byte{0x04}
	case tea.KeyCtrlB:
		return []byte{0x02}
	case tea.KeyEsc:
		return []byte{0x1b}
	case tea.KeyRunes:
		return []byte(string(msg.Runes))
	default:
		if len(msg.Runes) > 0 {
			return []byte(string(msg.Runes))
		}
		return nil
	}
}
