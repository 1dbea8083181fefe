// Package view implements the view tree that the application runtime
// routes input through.
//
// A View is a rectangle with an optional one-cell border, a list of
// subviews, focus state, a command table and its own key bindings.
// Behavior is attached through the Responder capability interface: the
// routing code only ever calls Responder methods, so concrete widgets
// supply their own Responder and keep the View for structure.
//
// # Coordinates
//
// A view's frame is relative to the content area of its superview. The
// content area is the frame minus the border. A view without a
// superview has its frame in screen coordinates. Mouse events carry
// coordinates relative to the frame of the receiving view.
//
// # Key Routing
//
// NewKeyDownEvent walks the focus chain deepest view first. At each
// level the responder's OnKeyDown hook runs, then the view's
// Focused-scope bindings, then OnKeyPressed. InvokeHotKeys scans the
// HotKey-scope bindings of a whole subtree.
package view
