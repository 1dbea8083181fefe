// Package command defines the widget-agnostic action vocabulary.
//
// A Command names what the user wants done (move up, accept, quit the
// current toplevel) independently of the key that asked for it. Views
// register a Handler per Command they support; key bindings map keys to
// ordered lists of Commands.
//
// Handlers answer with a three-state Result. Unsupported is distinct from
// NotHandled: it means the receiver has no behavior at all for the
// command, so the caller may try another binding or scope.
package command
