// Package keybinding maps keys to ordered command lists.
//
// Every view may own a Bindings table and the application owns one
// global table. A Binding has a Scope that decides when it is active:
//
//   - Focused: while the owning view holds focus.
//   - HotKey: while an ancestor of the owning view holds focus, so
//     accelerators fire without the view being focused.
//   - Application: always, with the lowest priority.
//
// Lookups resolve scopes in the fixed order Focused, HotKey,
// Application. A binding whose scope combines several flags matches a
// lookup when any flag overlaps.
//
// Add rejects an existing (key, scope) pair; Replace and ReplaceCommands
// are the only ways to change a binding. Add silently ignores invalid
// keys, since keys often come from user input or configuration.
//
// # Binding Files
//
// Bindings can be loaded from TOML, YAML or JSON files:
//
//	[[binding]]
//	key = "Ctrl+Q"
//	scope = "application"
//	commands = ["QuitToplevel"]
package keybinding
