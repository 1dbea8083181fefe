package keybinding

import (
	"github.com/dshills/termstack/internal/command"
	"github.com/dshills/termstack/internal/input/key"
)

// Owner executes commands on behalf of a binding.
type Owner interface {
	InvokeCommand(ctx command.Context) command.Result
}

// Binding is an ordered list of commands bound to a key in a scope.
type Binding struct {
	// Commands run in order until one is handled.
	Commands []command.Command

	// Scope decides when the binding is active.
	Scope Scope

	// Owner receives the commands. Nil means the owner of the table.
	Owner Owner
}

// clone returns a binding with its own command slice.
func (b Binding) clone() Binding {
	b.Commands = append([]command.Command(nil), b.Commands...)
	return b
}

// Invoke runs the commands of the binding on owner in declared order,
// stopping at the first Handled result. It reports Unsupported when the
// owner supports none of the commands.
func (b Binding) Invoke(owner Owner, k key.Key) command.Result {
	if b.Owner != nil {
		owner = b.Owner
	}
	if owner == nil {
		return command.Unsupported
	}

	result := command.Unsupported
	for _, c := range b.Commands {
		r := owner.InvokeCommand(command.NewContext(c, k))
		if r == command.Handled {
			return command.Handled
		}
		result = result.Combine(r)
	}
	return result
}

// Entry pairs a key with its binding.
type Entry struct {
	Key     key.Key
	Binding Binding
}
