// Package ui composes the dock workspace with Bubble Tea.
//
// Core abstractions:
//   - View: a panel body or overlay with its own model, update, view (Elm-style)
//   - Workspace: root model owning the dock tree, the drag session, and focus
//   - FocusRing: tracks and rotates focus across tab groups
//   - Switcher: type-to-jump panel picker overlay
//   - KeybindRegistry/KeyHandler: prefix-key dispatch (tmux-style ctrl+b leader)
package ui
