// Package dock implements a resizable, nestable grid of splitters and tab
// groups, and the mutation/hit-testing algorithms that let content panels be
// rearranged by dragging a tab to a new position.
//
// Core pieces:
//   - Tree: the dock layout tree (splitters and tab groups) plus the
//     item-to-group ownership map. Insert/detach operations preserve the
//     structural invariants (no empty groups, single-child splitters are
//     collapsed, same-orientation nestings are flattened).
//   - Group: a leaf hosting an ordered set of Items behind a tab selector.
//   - Splitter: a branch dividing space among children along one axis using
//     relative shares (only ratios matter).
//   - Locate: classifies a pointer position into a dock zone (root edge band
//     or panel sub-region) for drop targeting.
//   - Drag: the state machine for one drag-to-redock gesture.
//
// The package is single-threaded by design: all operations are synchronous
// and expected to run on the event loop that receives pointer input (the
// Bubble Tea update loop in this repo). Rendering is the caller's concern;
// the tree only deals in cell rectangles.
package dock
