package app

import (
	"github.com/dshills/termstack/internal/input/key"
	"github.com/dshills/termstack/internal/input/mouse"
	"github.com/dshills/termstack/internal/view"
)

// ClosingEvent is passed to Closing handlers. Setting Cancel keeps the
// toplevel running.
type ClosingEvent struct {
	// Requesting is the toplevel the stop was requested for. It differs
	// from the closing toplevel when an MDI container closes its
	// children.
	Requesting *Toplevel
	Cancel     bool
}

// Toplevel is a window that can be run by the Application. Its view is
// a root of the view tree, or a subview of another toplevel's tree.
type Toplevel struct {
	*view.View

	// Running is true between Begin and the stop of the toplevel.
	Running bool

	// Modal toplevels stack above everything else and receive all input
	// until they end.
	Modal bool

	// IsMdiContainer makes the toplevel host the non-modal toplevels
	// begun while it is active.
	IsMdiContainer bool

	// Movable lets the user drag the toplevel by its title row.
	Movable bool

	// MenuBar and StatusBar are optional chrome rows. Placement keeps
	// floating windows clear of them while they are visible.
	MenuBar   *view.View
	StatusBar *view.View

	delegate view.Responder
	app      *Application
	drag     mouse.Drag
	fill     bool

	loaded         []func(*Toplevel)
	ready          []func(*Toplevel)
	unloaded       []func(*Toplevel)
	closing        []func(*Toplevel, *ClosingEvent)
	closed         []func(*Toplevel)
	allChildClosed []func(*Toplevel)
	activate       []func(top, deactivated *Toplevel)
	deactivate     []func(top, activated *Toplevel)
}

// NewToplevel creates a focusable toplevel. A responder given through
// opts still receives every event the toplevel does not consume.
func NewToplevel(opts ...view.Option) *Toplevel {
	t := &Toplevel{}
	t.View = view.New(append([]view.Option{view.WithCanFocus()}, opts...)...)
	t.delegate = t.View.Responder()
	t.View.SetResponder(t)
	return t
}

// NewWindow creates a movable toplevel with a border and title.
func NewWindow(title string, opts ...view.Option) *Toplevel {
	t := NewToplevel(append([]view.Option{view.WithBorder(), view.WithTitle(title)}, opts...)...)
	t.Movable = true
	return t
}

// ToplevelOf returns the toplevel whose view is v.
func ToplevelOf(v *view.View) (*Toplevel, bool) {
	if v == nil {
		return nil, false
	}
	t, ok := v.Responder().(*Toplevel)
	return t, ok
}

// nearestToplevel returns the closest toplevel at or above v.
func nearestToplevel(v *view.View) *Toplevel {
	for ; v != nil; v = v.Superview() {
		if t, ok := ToplevelOf(v); ok {
			return t
		}
	}
	return nil
}

// Application returns the application that began the toplevel, or nil.
func (t *Toplevel) Application() *Application { return t.app }

// SetDelegate replaces the responder that receives unconsumed events.
func (t *Toplevel) SetDelegate(r view.Responder) {
	if r == nil {
		r = view.BaseResponder{}
	}
	t.delegate = r
}

// OnLoaded registers a handler run by Begin.
func (t *Toplevel) OnLoaded(h func(*Toplevel)) { t.loaded = append(t.loaded, h) }

// OnReady registers a handler run by Begin after the Loaded handlers.
func (t *Toplevel) OnReady(h func(*Toplevel)) { t.ready = append(t.ready, h) }

// OnUnloaded registers a handler run by End.
func (t *Toplevel) OnUnloaded(h func(*Toplevel)) { t.unloaded = append(t.unloaded, h) }

// OnClosing registers a handler run when a stop is requested. The
// handler may cancel the stop.
func (t *Toplevel) OnClosing(h func(*Toplevel, *ClosingEvent)) {
	t.closing = append(t.closing, h)
}

// OnClosed registers a handler run by End after Unloaded.
func (t *Toplevel) OnClosed(h func(*Toplevel)) { t.closed = append(t.closed, h) }

// OnAllChildClosed registers a handler run on an MDI container when its
// last child ends.
func (t *Toplevel) OnAllChildClosed(h func(*Toplevel)) {
	t.allChildClosed = append(t.allChildClosed, h)
}

// OnActivate registers a handler run when the toplevel becomes Current.
func (t *Toplevel) OnActivate(h func(top, deactivated *Toplevel)) {
	t.activate = append(t.activate, h)
}

// OnDeactivate registers a handler run when the toplevel stops being
// Current.
func (t *Toplevel) OnDeactivate(h func(top, activated *Toplevel)) {
	t.deactivate = append(t.deactivate, h)
}

func (t *Toplevel) fire(handlers []func(*Toplevel)) {
	for _, h := range handlers {
		h(t)
	}
}

func (t *Toplevel) fireClosing(ev *ClosingEvent) bool {
	for _, h := range t.closing {
		h(t, ev)
	}
	return !ev.Cancel
}

func (t *Toplevel) fireActivate(deactivated *Toplevel) {
	for _, h := range t.activate {
		h(t, deactivated)
	}
}

func (t *Toplevel) fireDeactivate(activated *Toplevel) {
	for _, h := range t.deactivate {
		h(t, activated)
	}
}

// RequestStop asks the application to stop the toplevel.
func (t *Toplevel) RequestStop() {
	if t.app != nil {
		t.app.RequestStop(t)
		return
	}
	t.Running = false
}

func (t *Toplevel) String() string {
	if t == nil {
		return "Toplevel(nil)"
	}
	return "Toplevel(" + t.View.String() + ")"
}

// Responder implementation. Toplevels handle title-row dragging
// themselves and hand everything else to the delegate.

func (t *Toplevel) OnKeyDown(ev *key.Event) bool    { return t.delegate.OnKeyDown(ev) }
func (t *Toplevel) OnKeyPressed(ev *key.Event) bool { return t.delegate.OnKeyPressed(ev) }
func (t *Toplevel) OnKeyUp(ev *key.Event) bool      { return t.delegate.OnKeyUp(ev) }
func (t *Toplevel) OnEnter(v *view.View) bool       { return t.delegate.OnEnter(v) }
func (t *Toplevel) OnLeave(v *view.View) bool       { return t.delegate.OnLeave(v) }

func (t *Toplevel) OnMouseEnter(ev *view.MouseEvent) bool { return t.delegate.OnMouseEnter(ev) }
func (t *Toplevel) OnMouseLeave(ev *view.MouseEvent) bool { return t.delegate.OnMouseLeave(ev) }

// DrawContent paints the content area through the delegate when it is a
// view.ContentDrawer.
func (t *Toplevel) DrawContent(v *view.View, c view.Canvas) {
	if d, ok := t.delegate.(view.ContentDrawer); ok {
		d.DrawContent(v, c)
	}
}

func (t *Toplevel) OnMouseEvent(ev *view.MouseEvent) bool {
	if t.handleDrag(ev) {
		return true
	}
	return t.delegate.OnMouseEvent(ev)
}

// handleDrag moves the toplevel while button 1 is held after a press on
// its title row. Every move is clamped by EnsureVisibleBounds.
func (t *Toplevel) handleDrag(ev *view.MouseEvent) bool {
	if !t.Movable || t.app == nil || !t.Border() {
		return false
	}
	screen := ev.ScreenPosition()

	switch {
	case ev.Flags.Has(mouse.Button1Pressed) && ev.Y == 0 && !t.drag.Active():
		f := t.Frame()
		if !t.app.GrabMouse(t.View) {
			return false
		}
		t.drag.Start(screen, mouse.Position{X: f.X, Y: f.Y})
		return true

	case t.drag.Active() && ev.Flags.Has(mouse.Button1Released):
		t.drag.End()
		return true

	case t.drag.Active() && ev.Flags.Has(mouse.ReportMousePosition):
		to := t.drag.Update(screen)
		nx, ny, _, _ := t.app.EnsureVisibleBounds(t, to.X, to.Y)
		t.SetFrame(t.Frame().WithLocation(nx, ny))
		return true
	}
	return false
}
