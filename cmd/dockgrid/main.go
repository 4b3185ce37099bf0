package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"dockgrid/internal/config"
	"dockgrid/internal/dock"
	"dockgrid/internal/panel"
	"dockgrid/internal/pty"
	"dockgrid/internal/telemetry"
	"dockgrid/internal/tmux"
	"dockgrid/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dockgrid: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	tracer, shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dockgrid: %v\n", err)
		os.Exit(1)
	}
	defer shutdown(ctx)

	ws := ui.NewWorkspace()
	ws.SetTracer(tracer)

	logPanel := panel.NewLog("log")
	ws.OnFocusChange(func(from, to *dock.Group) {
		if to != nil && to.CurrentItem() != nil {
			logPanel.Printf("focus: %s", to.CurrentItem().Label())
		}
	})
	if err := ws.AddPanel(logPanel, logPanel); err != nil {
		fmt.Fprintf(os.Stderr, "dockgrid: %v\n", err)
		os.Exit(1)
	}

	shell := panel.NewShell("shell", &pty.CreackPTY{}, cfg.Shell.Command, cfg.Shell.WorkDir)
	if err := ws.AddPanel(shell, shell); err != nil {
		fmt.Fprintf(os.Stderr, "dockgrid: %v\n", err)
		os.Exit(1)
	}

	if client, err := tmux.NewClient(); err == nil {
		sessions := panel.NewSessions("tmux", client)
		if err := ws.AddTab(sessions, sessions); err != nil {
			logPanel.Printf("tmux panel: %v", err)
		}
	} else {
		logPanel.Printf("tmux unavailable: %v", err)
	}

	p := tea.NewProgram(ws, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "dockgrid: %v\n", err)
		os.Exit(1)
	}
}
