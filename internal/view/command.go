package view

import (
	"github.com/dshills/termstack/internal/command"
	"github.com/dshills/termstack/internal/input/key"
	"github.com/dshills/termstack/internal/input/keybinding"
)

// AddCommand registers the handler for c, replacing any previous one.
func (v *View) AddCommand(c command.Command, h command.Handler) {
	if h == nil {
		delete(v.commands, c)
		return
	}
	v.commands[c] = h
}

// SupportsCommand reports whether a handler is registered for c.
func (v *View) SupportsCommand(c command.Command) bool {
	_, ok := v.commands[c]
	return ok
}

// InvokeCommand runs the handler for ctx.Command. It returns
// Unsupported when the view has none.
func (v *View) InvokeCommand(ctx command.Context) command.Result {
	h, ok := v.commands[ctx.Command]
	if !ok {
		return command.Unsupported
	}
	return h(ctx)
}

// InvokeCommands runs cmds in order until one is handled.
func (v *View) InvokeCommands(k key.Key, cmds ...command.Command) command.Result {
	return keybinding.Binding{Commands: cmds}.Invoke(v, k)
}
