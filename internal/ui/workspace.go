package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"dockgrid/internal/dock"
	"dockgrid/internal/ui/textutil"
)

// statusHeight is the number of rows reserved below the dock area.
const statusHeight = 1

// Workspace is the root model. It owns the dock tree, the panel views, the
// drag session, and focus; every tree mutation funnels through its Update
// so nothing re-enters the tree from inside a removal path.
type Workspace struct {
	tree  *dock.Tree
	drag  *dock.Drag
	focus FocusRing
	views map[dock.Item]View

	keys     *KeyHandler
	overlays OverlayStack
	helpView help.Model

	width  int
	height int

	// Mouse gesture state. A press on a tab arms a potential drag; motion
	// past the press cell promotes it to a drag session.
	pressed   bool
	pressItem dock.Item
	pressAt   dock.Point
	dragging  bool
	hit       dock.Hit

	tracer trace.Tracer
	status string
}

var _ tea.Model = (*Workspace)(nil)

// NewWorkspace creates an empty workspace with a no-op tracer.
func NewWorkspace() *Workspace {
	ws := &Workspace{
		tree:     dock.NewTree(),
		views:    make(map[dock.Item]View),
		helpView: help.New(),
		tracer:   noop.NewTracerProvider().Tracer("dockgrid"),
	}
	ws.drag = dock.NewDrag(ws.tree)
	ws.keys = NewKeyHandler(ws.defaultBindings())
	return ws
}

// SetTracer replaces the gesture/mutation tracer.
func (ws *Workspace) SetTracer(t trace.Tracer) {
	if t != nil {
		ws.tracer = t
	}
}

// Tree exposes the dock tree for startup wiring and tests.
func (ws *Workspace) Tree() *dock.Tree { return ws.tree }

// Focused returns the focused group, or nil when the tree is empty.
func (ws *Workspace) Focused() *dock.Group { return ws.focus.Current }

// OnFocusChange installs a hook called whenever focus moves between groups.
func (ws *Workspace) OnFocusChange(fn func(from, to *dock.Group)) {
	ws.focus.OnChange = fn
}

// AddPanel docks a new panel in its own slot beside the focused group,
// or as the first panel, and registers its view. The new panel takes focus.
func (ws *Workspace) AddPanel(it dock.Item, v View) error {
	var ref dock.Item
	if g := ws.focus.Current; g != nil {
		ref = g.CurrentItem()
	}
	if err := ws.tree.InsertSplit(it, ref, dock.Horizontal, true); err != nil {
		return err
	}
	ws.views[it] = v
	if g, err := ws.tree.GroupOf(it); err == nil {
		ws.focus.Set(g)
	}
	ws.relayout()
	return nil
}

// AddTab docks a new panel as a tab behind the focused group's current item.
func (ws *Workspace) AddTab(it dock.Item, v View) error {
	var ref dock.Item
	if g := ws.focus.Current; g != nil {
		ref = g.CurrentItem()
	}
	if err := ws.tree.InsertTab(it, ref, true); err != nil {
		return err
	}
	ws.views[it] = v
	ws.focus.Sync(ws.tree)
	ws.relayout()
	return nil
}

func (ws *Workspace) defaultBindings() *KeybindRegistry {
	reg := NewKeybindRegistry()
	bind := func(seq string, msg tea.Msg, desc string) {
		reg.BindWithDesc(seq, func() tea.Msg { return msg }, desc)
	}
	bind("ctrl+b o", FocusNextMsg{}, "next panel")
	bind("ctrl+b O", FocusPrevMsg{}, "prev panel")
	bind("ctrl+b n", NextTabMsg{}, "next tab")
	bind("ctrl+b p", PrevTabMsg{}, "prev tab")
	bind("ctrl+b c", CloseTabMsg{}, "close tab")
	bind("ctrl+b %", SplitRightMsg{}, "split right")
	bind("ctrl+b \"", SplitDownMsg{}, "split down")
	bind("ctrl+b w", ShowSwitcherMsg{}, "switcher")
	reg.BindWithDesc("ctrl+b q", tea.Quit, "quit")
	return reg
}

// Init implements tea.Model.
func (ws *Workspace) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(ws.views))
	for _, v := range ws.views {
		if c := v.Init(); c != nil {
			cmds = append(cmds, c)
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (ws *Workspace) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ws.width, ws.height = msg.Width, msg.Height
		ws.helpView.Width = msg.Width
		return ws, ws.relayout()

	case tea.KeyMsg:
		return ws.updateKey(msg)

	case tea.MouseMsg:
		return ws.updateMouse(msg)

	case FocusNextMsg:
		ws.focus.Next(ws.tree)
		return ws, nil
	case FocusPrevMsg:
		ws.focus.Prev(ws.tree)
		return ws, nil

	case NextTabMsg:
		return ws, ws.cycleTab(1)
	case PrevTabMsg:
		return ws, ws.cycleTab(-1)

	case CloseTabMsg:
		return ws, ws.closeCurrent()
	case SplitRightMsg:
		return ws, ws.splitCurrent(dock.Horizontal)
	case SplitDownMsg:
		return ws, ws.splitCurrent(dock.Vertical)

	case ShowSwitcherMsg:
		sw := NewSwitcher(ws.labels())
		ws.overlays.Push(Overlay{View: sw, Dismiss: "esc"})
		return ws, sw.Init()
	case DismissOverlayMsg:
		ws.overlays.Pop()
		return ws, nil
	case FocusPanelMsg:
		ws.overlays.Pop()
		return ws, ws.focusLabel(msg.Label)
	}

	// Everything else (pty output, blinks, ticks) goes to every panel view;
	// each view filters out messages that are not addressed to it.
	return ws, ws.broadcast(msg)
}

func (ws *Workspace) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ws.status = ""

	if ws.overlays.Len() > 0 {
		cmd, _ := ws.overlays.UpdateTop(msg)
		return ws, cmd
	}

	if ws.dragging && msg.String() == "esc" {
		ws.drag.Cancel()
		ws.endGesture()
		return ws, ws.relayout()
	}

	consumed, literal, cmd := ws.keys.Handle(msg)
	if literal {
		return ws, ws.forwardToFocused(tea.KeyMsg{Type: tea.KeyCtrlB})
	}
	if consumed {
		return ws, cmd
	}
	return ws, ws.forwardToFocused(msg)
}

func (ws *Workspace) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if ws.overlays.Len() > 0 {
		return ws, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ws, nil
		}
		ws.status = ""
		return ws, ws.handlePress(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if ws.pressed && !ws.dragging && (msg.X != ws.pressAt.X || msg.Y != ws.pressAt.Y) {
			if err := ws.drag.Start(ws.pressItem); err == nil {
				ws.dragging = true
			}
		}
		if ws.dragging {
			if hit, changed := ws.drag.Move(msg.X, msg.Y); changed {
				ws.hit = hit
			}
		}
		return ws, nil

	case tea.MouseActionRelease:
		if !ws.dragging {
			ws.pressed = false
			ws.pressItem = nil
			return ws, nil
		}
		return ws, ws.finishDrag(msg.X, msg.Y)
	}
	return ws, nil
}

// handlePress focuses the panel under the pointer; a press on a tab cell
// also selects that tab and arms a potential drag.
func (ws *Workspace) handlePress(x, y int) tea.Cmd {
	for _, g := range ws.tree.Groups() {
		b := g.Bounds()
		if !b.Contains(x, y) {
			continue
		}
		ws.focus.Set(g)
		if y == b.Y+1 {
			if idx := tabAt(g, x-(b.X+1)); idx >= 0 {
				g.Select(idx)
				ws.pressed = true
				ws.pressItem = g.At(idx)
				ws.pressAt = dock.Point{X: x, Y: y}
				return ws.resizeViewsOf(g)
			}
		}
		return nil
	}
	return nil
}

func (ws *Workspace) finishDrag(x, y int) tea.Cmd {
	it := ws.drag.Item()
	_, span := ws.tracer.Start(context.Background(), "dock.drop",
		trace.WithAttributes(
			attribute.String("zone", ws.hit.Zone.String()),
			attribute.Bool("edge", ws.hit.Edge),
		))
	err := ws.drag.Drop(x, y)
	span.End()
	if err != nil {
		ws.status = err.Error()
	}
	ws.endGesture()
	if it != nil {
		if g, gerr := ws.tree.GroupOf(it); gerr == nil {
			ws.focus.Set(g)
		}
	}
	return ws.relayout()
}

func (ws *Workspace) endGesture() {
	ws.pressed = false
	ws.pressItem = nil
	ws.dragging = false
	ws.hit = dock.Hit{}
	ws.focus.Sync(ws.tree)
}

func (ws *Workspace) cycleTab(dir int) tea.Cmd {
	g := ws.focus.Current
	if g == nil || g.Len() == 0 {
		return nil
	}
	g.Select((g.Current() + dir + g.Len()) % g.Len())
	return ws.resizeViewsOf(g)
}

// closeCurrent detaches the focused group's current item if the panel
// allows closing, releasing its resources.
func (ws *Workspace) closeCurrent() tea.Cmd {
	g := ws.focus.Current
	if g == nil {
		return nil
	}
	it := g.CurrentItem()
	if it == nil {
		return nil
	}
	if !it.Closable() {
		ws.status = it.Label() + " cannot be closed"
		return nil
	}
	_, span := ws.tracer.Start(context.Background(), "dock.close",
		trace.WithAttributes(attribute.String("panel", it.Label())))
	err := ws.tree.Detach(it)
	span.End()
	if err != nil {
		ws.status = err.Error()
		return nil
	}
	if c, ok := it.(interface{ Close() error }); ok {
		_ = c.Close()
	}
	delete(ws.views, it)
	ws.focus.Sync(ws.tree)
	return ws.relayout()
}

// splitCurrent moves the focused item out of its group into an adjacent
// slot. A sole item re-docks at the matching root edge instead, which is
// the only split that changes anything in that case.
func (ws *Workspace) splitCurrent(o dock.Orientation) tea.Cmd {
	g := ws.focus.Current
	if g == nil {
		return nil
	}
	it := g.CurrentItem()
	if it == nil {
		return nil
	}
	var ref dock.Item
	if g.Len() > 1 {
		if g.Current() > 0 {
			ref = g.At(g.Current() - 1)
		} else {
			ref = g.At(1)
		}
	}
	_, span := ws.tracer.Start(context.Background(), "dock.split",
		trace.WithAttributes(
			attribute.String("panel", it.Label()),
			attribute.String("orientation", o.String()),
		))
	err := ws.tree.InsertSplit(it, ref, o, true)
	span.End()
	if err != nil {
		ws.status = err.Error()
		return nil
	}
	ws.focus.Sync(ws.tree)
	if ng, gerr := ws.tree.GroupOf(it); gerr == nil {
		ws.focus.Set(ng)
	}
	return ws.relayout()
}

func (ws *Workspace) labels() []string {
	items := ws.tree.Items()
	labels := make([]string, 0, len(items))
	for _, it := range items {
		labels = append(labels, it.Label())
	}
	return labels
}

func (ws *Workspace) focusLabel(label string) tea.Cmd {
	for _, it := range ws.tree.Items() {
		if it.Label() != label {
			continue
		}
		g, err := ws.tree.GroupOf(it)
		if err != nil {
			return nil
		}
		g.SelectItem(it)
		ws.focus.Set(g)
		return ws.resizeViewsOf(g)
	}
	ws.status = "no panel named " + label
	return nil
}

// relayout distributes the dock area and tells every panel view its new
// content size.
func (ws *Workspace) relayout() tea.Cmd {
	if ws.width <= 0 || ws.height <= statusHeight {
		return nil
	}
	ws.tree.Layout(dock.Rect{X: 0, Y: 0, W: ws.width, H: ws.height - statusHeight})
	var cmds []tea.Cmd
	for _, g := range ws.tree.Groups() {
		if c := ws.resizeViewsOf(g); c != nil {
			cmds = append(cmds, c)
		}
	}
	return tea.Batch(cmds...)
}

func (ws *Workspace) resizeViewsOf(g *dock.Group) tea.Cmd {
	b := g.Bounds()
	msg := ResizeMsg{Width: b.W - 2, Height: b.H - 3}
	if msg.Width < 1 || msg.Height < 1 {
		return nil
	}
	var cmds []tea.Cmd
	for i := 0; i < g.Len(); i++ {
		it := g.At(i)
		v, ok := ws.views[it]
		if !ok {
			continue
		}
		nv, cmd := v.Update(msg)
		ws.views[it] = nv
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (ws *Workspace) forwardToFocused(msg tea.Msg) tea.Cmd {
	g := ws.focus.Current
	if g == nil {
		return nil
	}
	it := g.CurrentItem()
	if it == nil {
		return nil
	}
	v, ok := ws.views[it]
	if !ok {
		return nil
	}
	nv, cmd := v.Update(msg)
	ws.views[it] = nv
	return cmd
}

func (ws *Workspace) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for it, v := range ws.views {
		nv, cmd := v.Update(msg)
		ws.views[it] = nv
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (ws *Workspace) View() string {
	if ws.width <= 0 || ws.height <= statusHeight {
		return ""
	}
	frame := blankCanvas(ws.width, ws.height-statusHeight)

	if ws.tree.Empty() {
		hint := Styles.Empty.Render("no panels docked")
		frame = composite(frame, hint, (ws.width-lipgloss.Width(hint))/2, (ws.height-statusHeight)/2)
	}

	for _, g := range ws.tree.Groups() {
		b := g.Bounds()
		if b.Empty() || b.W < 4 || b.H < 3 {
			continue
		}
		frame = composite(frame, ws.renderPanel(g), b.X, b.Y)
	}

	if ws.dragging && ws.hit.Zone != dock.ZoneInvalid {
		if r, ok := ws.tree.IndicatorRect(ws.hit); ok {
			if box := indicatorView(r, ws.hit.Zone); box != "" {
				frame = composite(frame, box, r.X, r.Y)
			}
		}
	}

	if top, ok := ws.overlays.Peek(); ok {
		o := top.View.View()
		ox := (ws.width - lipgloss.Width(o)) / 2
		oy := (ws.height - statusHeight - lipgloss.Height(o)) / 2
		frame = composite(frame, o, ox, oy)
	}

	return frame + "\n" + ws.statusLine()
}

func (ws *Workspace) renderPanel(g *dock.Group) string {
	b := g.Bounds()
	focused := g == ws.focus.Current

	strip := renderTabStrip(g, focused, b.W-2)
	body := ""
	if it := g.CurrentItem(); it != nil {
		if v, ok := ws.views[it]; ok {
			body = v.View()
		}
	}
	body = lipgloss.NewStyle().
		Width(b.W - 2).
		Height(b.H - 3).
		MaxWidth(b.W - 2).
		MaxHeight(b.H - 3).
		Render(body)

	frame := Styles.PanelBorder
	if focused {
		frame = Styles.PanelFocused
	}
	return frame.Render(strip + "\n" + body)
}

func (ws *Workspace) statusLine() string {
	if ws.status != "" {
		return Styles.Error.Render(textutil.Truncate(ws.status, ws.width))
	}
	if ws.dragging {
		return Styles.Hint.Render("edges split, center joins tabs, esc cancels")
	}
	return ws.helpView.ShortHelpView(ws.keys.HelpBindings())
}
