package view

import (
	"github.com/dshills/termstack/internal/command"
	"github.com/dshills/termstack/internal/input/key"
	"github.com/dshills/termstack/internal/input/keybinding"
)

// NewKeyDownEvent routes a key press down the focus chain, giving the
// deepest focused view the first chance. It reports whether the key was
// handled.
func (v *View) NewKeyDownEvent(ev *key.Event) bool {
	if !v.visible || !v.enabled {
		return false
	}
	if f := v.focused; f != nil && f.hasFocus {
		if f.NewKeyDownEvent(ev) {
			return true
		}
	}

	if v.responder.OnKeyDown(ev) || ev.Handled {
		ev.Handled = true
		return true
	}
	if res, found := v.keyBindings.Invoke(ev.Key, keybinding.Focused); found && res == command.Handled {
		ev.Handled = true
		return true
	}
	if v.responder.OnKeyPressed(ev) || ev.Handled {
		ev.Handled = true
		return true
	}
	return false
}

// NewKeyUpEvent routes a key release down the focus chain.
func (v *View) NewKeyUpEvent(ev *key.Event) bool {
	if !v.visible || !v.enabled {
		return false
	}
	if f := v.focused; f != nil && f.hasFocus {
		if f.NewKeyUpEvent(ev) {
			return true
		}
	}
	if v.responder.OnKeyUp(ev) || ev.Handled {
		ev.Handled = true
		return true
	}
	return false
}

// InvokeHotKeys offers the key to the HotKey-scope bindings of v and
// its visible, enabled descendants, depth first. The walk starts at a
// focused view, so every binding reached has a focused ancestor.
func (v *View) InvokeHotKeys(ev *key.Event) bool {
	if !v.visible || !v.enabled {
		return false
	}
	if res, found := v.keyBindings.Invoke(ev.Key, keybinding.HotKey); found && res == command.Handled {
		ev.Handled = true
		return true
	}
	for _, sub := range v.subviews {
		if sub.InvokeHotKeys(ev) {
			return true
		}
	}
	return false
}
