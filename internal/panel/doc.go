// Package panel provides the content panels that dock into the workspace:
// an interactive PTY shell, an append-only event log, and a tmux session
// list. Every panel implements both dock.Item (identity, tab label) and
// ui.View (Elm-style model).
package panel
