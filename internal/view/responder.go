package view

import "github.com/dshills/termstack/internal/input/key"

// Responder receives input and focus notifications for a view. Every
// hook returns true when it consumed the event.
type Responder interface {
	// OnKeyDown runs before the view's Focused-scope bindings.
	OnKeyDown(ev *key.Event) bool
	// OnKeyPressed runs when no binding of the view handled the key.
	OnKeyPressed(ev *key.Event) bool
	// OnKeyUp runs for key release notifications.
	OnKeyUp(ev *key.Event) bool

	OnMouseEvent(ev *MouseEvent) bool
	OnMouseEnter(ev *MouseEvent) bool
	OnMouseLeave(ev *MouseEvent) bool

	// OnEnter and OnLeave report focus changes of v.
	OnEnter(v *View) bool
	OnLeave(v *View) bool
}

// BaseResponder ignores every event. Embed it to implement only some
// hooks.
type BaseResponder struct{}

func (BaseResponder) OnKeyDown(*key.Event) bool    { return false }
func (BaseResponder) OnKeyPressed(*key.Event) bool { return false }
func (BaseResponder) OnKeyUp(*key.Event) bool      { return false }
func (BaseResponder) OnMouseEvent(*MouseEvent) bool { return false }
func (BaseResponder) OnMouseEnter(*MouseEvent) bool { return false }
func (BaseResponder) OnMouseLeave(*MouseEvent) bool { return false }
func (BaseResponder) OnEnter(*View) bool            { return false }
func (BaseResponder) OnLeave(*View) bool            { return false }

// ResponderFuncs adapts optional functions to a Responder. Nil fields
// ignore their event.
type ResponderFuncs struct {
	KeyDown    func(ev *key.Event) bool
	KeyPressed func(ev *key.Event) bool
	KeyUp      func(ev *key.Event) bool
	Mouse      func(ev *MouseEvent) bool
	MouseEnter func(ev *MouseEvent) bool
	MouseLeave func(ev *MouseEvent) bool
	Enter      func(v *View) bool
	Leave      func(v *View) bool
}

func (f ResponderFuncs) OnKeyDown(ev *key.Event) bool {
	return f.KeyDown != nil && f.KeyDown(ev)
}

func (f ResponderFuncs) OnKeyPressed(ev *key.Event) bool {
	return f.KeyPressed != nil && f.KeyPressed(ev)
}

func (f ResponderFuncs) OnKeyUp(ev *key.Event) bool {
	return f.KeyUp != nil && f.KeyUp(ev)
}

func (f ResponderFuncs) OnMouseEvent(ev *MouseEvent) bool {
	return f.Mouse != nil && f.Mouse(ev)
}

func (f ResponderFuncs) OnMouseEnter(ev *MouseEvent) bool {
	return f.MouseEnter != nil && f.MouseEnter(ev)
}

func (f ResponderFuncs) OnMouseLeave(ev *MouseEvent) bool {
	return f.MouseLeave != nil && f.MouseLeave(ev)
}

func (f ResponderFuncs) OnEnter(v *View) bool {
	return f.Enter != nil && f.Enter(v)
}

func (f ResponderFuncs) OnLeave(v *View) bool {
	return f.Leave != nil && f.Leave(v)
}
