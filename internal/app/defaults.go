package app

import (
	"github.com/dshills/termstack/internal/command"
	"github.com/dshills/termstack/internal/input/key"
	"github.com/dshills/termstack/internal/input/keybinding"
)

// registerDefaults installs the application commands and their
// Application-scope bindings.
func (app *Application) registerDefaults() {
	app.AddCommand(command.QuitToplevel, func(command.Context) command.Result {
		if app.Current() == nil {
			return command.NotHandled
		}
		app.RequestStop(nil)
		return command.Handled
	})
	app.AddCommand(command.Suspend, func(command.Context) command.Result {
		if err := app.Suspend(); err != nil {
			app.logger.Error("suspend: %v", err)
			return command.NotHandled
		}
		return command.Handled
	})
	app.AddCommand(command.Refresh, command.Simple(app.Refresh))
	app.AddCommand(command.NextView, func(command.Context) command.Result {
		return app.moveFocus(true)
	})
	app.AddCommand(command.PreviousView, func(command.Context) command.Result {
		return app.moveFocus(false)
	})
	app.AddCommand(command.NextMdiChild, func(command.Context) command.Result {
		return command.FromBool(app.NextMdiChild())
	})
	app.AddCommand(command.PreviousMdiChild, func(command.Context) command.Result {
		return command.FromBool(app.PreviousMdiChild())
	})

	defaults := []struct {
		k   key.Key
		cmd command.Command
	}{
		{app.quitKey, command.QuitToplevel},
		{key.NewKey(key.Z | key.CtrlMask), command.Suspend},
		{key.NewKey(key.L | key.CtrlMask), command.Refresh},
		{key.NewKey(key.Tab), command.NextView},
		{key.NewKey(key.BackTab), command.PreviousView},
		{key.NewKey(key.Tab | key.CtrlMask), command.NextMdiChild},
		{key.NewKey(key.Tab | key.CtrlMask | key.ShiftMask), command.PreviousMdiChild},
	}
	for _, d := range defaults {
		if err := app.keyBindings.Add(d.k, keybinding.Application, d.cmd); err != nil {
			app.logger.Warn("default binding %s: %v", d.k, err)
		}
	}
}

// moveFocus moves focus through Current's tab order, wrapping at either
// end.
func (app *Application) moveFocus(forward bool) command.Result {
	cur := app.Current()
	if cur == nil {
		return command.NotHandled
	}
	var moved bool
	if forward {
		moved = cur.FocusNext() || cur.FocusFirst()
	} else {
		moved = cur.FocusPrevious() || cur.FocusLast()
	}
	if moved {
		cur.SetNeedsDisplay()
	}
	return command.FromBool(moved)
}

// Suspend hands the console back to the shell and stops the process
// until it is continued, then restores and redraws the screen.
func (app *Application) Suspend() error {
	if !app.driverReady {
		return ErrNotRunning
	}
	if err := app.driver.Suspend(); err != nil {
		return NewOperationError("suspend", "driver", err)
	}
	perr := app.suspendProcess()
	if err := app.driver.Resume(); err != nil {
		return NewOperationError("resume", "driver", err)
	}
	app.Refresh()
	if perr != nil {
		return NewOperationError("suspend", "process", perr)
	}
	return nil
}
