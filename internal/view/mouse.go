package view

import "github.com/dshills/termstack/internal/input/mouse"

// MouseEvent is a mouse event addressed to a view. X and Y are relative
// to the frame of View.
type MouseEvent struct {
	mouse.Event
	View *View
}

// NewMouseEvent delivers ev to the responder. It reports whether the
// event was handled.
func (v *View) NewMouseEvent(ev *MouseEvent) bool {
	if !v.visible || !v.enabled {
		return false
	}
	ev.View = v
	if v.responder.OnMouseEvent(ev) || ev.Handled {
		ev.Handled = true
		return true
	}
	return false
}

// NewMouseEnterEvent notifies the view that the pointer moved onto it.
func (v *View) NewMouseEnterEvent(ev *MouseEvent) bool {
	ev.View = v
	return v.responder.OnMouseEnter(ev)
}

// NewMouseLeaveEvent notifies the view that the pointer left it.
func (v *View) NewMouseLeaveEvent(ev *MouseEvent) bool {
	ev.View = v
	return v.responder.OnMouseLeave(ev)
}
