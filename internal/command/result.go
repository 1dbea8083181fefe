package command

// Result is the outcome of a command handler.
type Result uint8

const (
	// Unsupported means the receiver has no handler for the command.
	Unsupported Result = iota
	// NotHandled means a handler ran but did not consume the command.
	NotHandled
	// Handled means the command was consumed.
	Handled
)

// String returns a string representation of the result.
func (r Result) String() string {
	switch r {
	case Handled:
		return "handled"
	case NotHandled:
		return "not-handled"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// IsHandled reports whether r is Handled.
func (r Result) IsHandled() bool {
	return r == Handled
}

// Combine folds the result of the next command in a list into the
// result so far. Handled wins, then NotHandled; the list is Unsupported
// only when every command was.
func (r Result) Combine(next Result) Result {
	if next > r {
		return next
	}
	return r
}

// FromBool maps true to Handled and false to NotHandled.
func FromBool(handled bool) Result {
	if handled {
		return Handled
	}
	return NotHandled
}

// Handler executes a command.
type Handler func(ctx Context) Result

// Simple adapts a function that always consumes the command.
func Simple(fn func()) Handler {
	return func(Context) Result {
		fn()
		return Handled
	}
}
