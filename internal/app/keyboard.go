package app

import (
	"github.com/dshills/termstack/internal/command"
	"github.com/dshills/termstack/internal/input/key"
	"github.com/dshills/termstack/internal/input/keybinding"
)

// ProcessKeyEvent routes a key press. Current's focus chain sees it
// first, deepest view first, with Focused-scope bindings. Then the
// HotKey-scope bindings of Current's tree, and of the MDI container
// when Current is one of its children. Last come the Application-scope
// bindings. Routing stops as soon as anything handles the key.
func (app *Application) ProcessKeyEvent(ev *key.Event) bool {
	handled := app.processKey(ev)
	app.metrics.RecordKey(handled)
	return handled
}

func (app *Application) processKey(ev *key.Event) bool {
	if ev == nil || !ev.Key.IsValid() {
		return false
	}
	if st := app.state; st != nil && st.current != nil {
		cur := st.current
		if cur.NewKeyDownEvent(ev) {
			return true
		}
		if cur.InvokeHotKeys(ev) {
			return true
		}
		if mdi := st.mdiTop; mdi != nil && mdi != cur && !cur.Modal {
			if mdi.InvokeHotKeys(ev) {
				return true
			}
		}
	}

	res, found := app.keyBindings.Invoke(ev.Key, keybinding.Application)
	if found && res == command.Handled {
		ev.Handled = true
		return true
	}
	return false
}

// ProcessKeyUpEvent routes a key release down Current's focus chain.
func (app *Application) ProcessKeyUpEvent(ev *key.Event) bool {
	if ev == nil || app.state == nil || app.state.current == nil {
		return false
	}
	return app.state.current.NewKeyUpEvent(ev)
}
