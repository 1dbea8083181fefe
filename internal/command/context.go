package command

import "github.com/dshills/termstack/internal/input/key"

// Context is the trigger of one command invocation.
type Context struct {
	Command Command

	// Key is the key that triggered the command, or key.Empty when the
	// command was invoked directly.
	Key key.Key
}

// NewContext returns a context for c triggered by k.
func NewContext(c Command, k key.Key) Context {
	return Context{Command: c, Key: k}
}

// HasKey reports whether the command was triggered by a key.
func (c Context) HasKey() bool {
	return c.Key != key.Empty
}
