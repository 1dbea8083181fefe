package app

import (
	"github.com/dshills/termstack/internal/input/mouse"
	"github.com/dshills/termstack/internal/view"
)

// GrabMouse sends every mouse event to v until UngrabMouse or a button
// release. It reports false when v is not in the tree of an active
// toplevel.
func (app *Application) GrabMouse(v *view.View) bool {
	st := app.state
	if st == nil || !st.isLive(v) {
		return false
	}
	if st.grabView != v {
		app.logger.Debug("grab mouse %s", v)
	}
	st.grabView = v
	return true
}

// UngrabMouse releases the mouse grab.
func (app *Application) UngrabMouse() {
	if st := app.state; st != nil && st.grabView != nil {
		app.logger.Debug("ungrab mouse %s", st.grabView)
		st.grabView = nil
	}
}

// MouseGrabView returns the view holding the mouse grab, or nil. A grab
// whose view left the live tree is dropped.
func (app *Application) MouseGrabView() *view.View {
	st := app.state
	if st == nil {
		return nil
	}
	if st.grabView != nil && !st.isLive(st.grabView) {
		st.grabView = nil
	}
	return st.grabView
}

// ProcessMouseEvent routes a mouse event given in screen coordinates.
// A grab view receives everything. Otherwise the event goes to the
// deepest view under the pointer in the frontmost toplevel containing
// it, and bubbles to its superviews until handled. A modal toplevel
// hides everything below it. A press brings an MDI child to the front
// and focuses the view under the pointer.
func (app *Application) ProcessMouseEvent(me mouse.Event) bool {
	app.metrics.RecordMouse()
	me = app.synth.Process(me)

	st := app.state
	if st == nil {
		return false
	}

	if g := app.MouseGrabView(); g != nil {
		handled := g.NewMouseEvent(mouseEventFor(g, me))
		if me.Flags.IsReleased() {
			app.UngrabMouse()
		}
		return handled
	}

	target := app.hitTest(me.ScreenX, me.ScreenY)
	app.updateMouseOver(target, me)
	if target == nil {
		return false
	}

	if me.Flags.IsPressed() {
		for top := nearestToplevel(target); top != nil; top = nearestToplevel(top.Superview()) {
			if app.MoveToFront(top) {
				break
			}
		}
		if target.CanFocus() {
			target.SetFocus()
		}
	}

	for v := target; v != nil; v = v.Superview() {
		if v.NewMouseEvent(mouseEventFor(v, me)) {
			return true
		}
	}
	return false
}

// mouseEventFor addresses me to v.
func mouseEventFor(v *view.View, me mouse.Event) *view.MouseEvent {
	p := v.ScreenToView(me.ScreenX, me.ScreenY)
	me.X, me.Y = p.X, p.Y
	me.Handled = false
	return &view.MouseEvent{Event: me}
}

// hitTest returns the deepest view at screen position (x, y).
func (app *Application) hitTest(x, y int) *view.View {
	for _, t := range app.state.zOrder() {
		fx, fy := x, y
		if sv := t.Superview(); sv != nil {
			content := sv.ScreenFrame().Inset(sv.Thickness())
			fx, fy = x-content.X, y-content.Y
		}
		if v, _ := t.FindDeepestView(fx, fy); v != nil {
			return v
		}
		if t.Modal {
			return nil
		}
	}
	return nil
}

func (app *Application) updateMouseOver(target *view.View, me mouse.Event) {
	st := app.state
	old := st.mouseOver
	if old == target {
		return
	}
	if old != nil && st.isLive(old) {
		old.NewMouseLeaveEvent(mouseEventFor(old, me))
	}
	st.mouseOver = target
	if target != nil {
		target.NewMouseEnterEvent(mouseEventFor(target, me))
	}
}
