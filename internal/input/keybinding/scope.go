package keybinding

import (
	"fmt"
	"strings"
)

// Scope is a set of binding scopes.
type Scope uint8

const (
	// Focused bindings are active while their owner has focus.
	Focused Scope = 1 << iota
	// HotKey bindings are active while an ancestor of their owner has
	// focus.
	HotKey
	// Application bindings are always active.
	Application

	// AllScopes matches every scope.
	AllScopes = Focused | HotKey | Application
)

// resolutionOrder is the priority order of scopes.
var resolutionOrder = [...]Scope{Focused, HotKey, Application}

// Matches reports whether s and other share any scope.
func (s Scope) Matches(other Scope) bool {
	return s&other != 0
}

// String returns the scope names joined by '|'.
func (s Scope) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	if s&Focused != 0 {
		parts = append(parts, "focused")
	}
	if s&HotKey != 0 {
		parts = append(parts, "hotkey")
	}
	if s&Application != 0 {
		parts = append(parts, "application")
	}
	return strings.Join(parts, "|")
}

// ParseScope parses names such as "focused", "HotKey" or
// "focused|hotkey". The empty string parses as Application.
func ParseScope(text string) (Scope, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Application, nil
	}
	var s Scope
	for _, part := range strings.Split(text, "|") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "focused":
			s |= Focused
		case "hotkey":
			s |= HotKey
		case "application", "app":
			s |= Application
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidScope, part)
		}
	}
	return s, nil
}
