package view

import (
	"github.com/google/uuid"

	"github.com/dshills/termstack/internal/command"
	"github.com/dshills/termstack/internal/core"
	"github.com/dshills/termstack/internal/input/key"
	"github.com/dshills/termstack/internal/input/keybinding"
)

// View is a node of the view tree.
type View struct {
	id    string
	title string
	style core.Style

	frame   core.Rect
	border  bool
	visible bool
	enabled bool

	canFocus bool
	tabStop  bool
	hasFocus bool
	focused  *View

	superview *View
	subviews  []*View

	hotKey      key.Key
	commands    map[command.Command]command.Handler
	keyBindings *keybinding.Bindings

	responder    Responder
	needsDisplay bool
}

// Option configures a View.
type Option func(*View)

// WithFrame sets the frame.
func WithFrame(r core.Rect) Option {
	return func(v *View) { v.frame = r }
}

// WithTitle sets the title drawn in the top border.
func WithTitle(title string) Option {
	return func(v *View) { v.title = title }
}

// WithBorder draws a one-cell border around the content area.
func WithBorder() Option {
	return func(v *View) { v.border = true }
}

// WithCanFocus lets the view take focus.
func WithCanFocus() Option {
	return func(v *View) { v.canFocus = true }
}

// WithResponder attaches behavior to the view.
func WithResponder(r Responder) Option {
	return func(v *View) { v.responder = r }
}

// WithStyle sets the drawing style.
func WithStyle(s core.Style) Option {
	return func(v *View) { v.style = s }
}

// WithHotKey sets the hot key.
func WithHotKey(k key.Key) Option {
	return func(v *View) { v.SetHotKey(k) }
}

// New creates a visible, enabled view.
func New(opts ...Option) *View {
	v := &View{
		id:           uuid.NewString(),
		style:        core.DefaultStyle(),
		visible:      true,
		enabled:      true,
		tabStop:      true,
		commands:     make(map[command.Command]command.Handler),
		responder:    BaseResponder{},
		needsDisplay: true,
	}
	v.keyBindings = keybinding.New(v)
	v.AddCommand(command.HotKey, func(command.Context) command.Result {
		return command.FromBool(v.SetFocus())
	})
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ID returns the unique id of the view.
func (v *View) ID() string { return v.id }

// Title returns the title.
func (v *View) Title() string { return v.title }

// SetTitle sets the title.
func (v *View) SetTitle(title string) {
	v.title = title
	v.SetNeedsDisplay()
}

// Style returns the drawing style.
func (v *View) Style() core.Style { return v.style }

// SetStyle sets the drawing style.
func (v *View) SetStyle(s core.Style) {
	v.style = s
	v.SetNeedsDisplay()
}

// Visible reports whether the view is shown.
func (v *View) Visible() bool { return v.visible }

// SetVisible shows or hides the view. Hiding a focused view moves focus
// to a sibling.
func (v *View) SetVisible(visible bool) {
	if v.visible == visible {
		return
	}
	v.visible = visible
	if !visible && v.hasFocus && v.superview != nil {
		v.superview.refocusAfterLoss(v)
	}
	v.SetNeedsDisplay()
	if v.superview != nil {
		v.superview.SetNeedsDisplay()
	}
}

// Enabled reports whether the view accepts input.
func (v *View) Enabled() bool { return v.enabled }

// SetEnabled enables or disables the view.
func (v *View) SetEnabled(enabled bool) {
	if v.enabled == enabled {
		return
	}
	v.enabled = enabled
	if !enabled && v.hasFocus && v.superview != nil {
		v.superview.refocusAfterLoss(v)
	}
	v.SetNeedsDisplay()
}

// Border reports whether the view draws a border.
func (v *View) Border() bool { return v.border }

// SetBorder turns the border on or off.
func (v *View) SetBorder(border bool) {
	v.border = border
	v.SetNeedsDisplay()
}

// CanFocus reports whether the view can take focus.
func (v *View) CanFocus() bool { return v.canFocus }

// SetCanFocus sets whether the view can take focus.
func (v *View) SetCanFocus(canFocus bool) {
	v.canFocus = canFocus
	if !canFocus && v.hasFocus && v.superview != nil {
		v.superview.refocusAfterLoss(v)
	}
}

// TabStop reports whether focus navigation stops at the view.
func (v *View) TabStop() bool { return v.tabStop }

// SetTabStop sets whether focus navigation stops at the view.
func (v *View) SetTabStop(tabStop bool) { v.tabStop = tabStop }

// Responder returns the attached behavior.
func (v *View) Responder() Responder { return v.responder }

// SetResponder attaches behavior. Nil restores BaseResponder.
func (v *View) SetResponder(r Responder) {
	if r == nil {
		r = BaseResponder{}
	}
	v.responder = r
}

// KeyBindings returns the bindings owned by the view.
func (v *View) KeyBindings() *keybinding.Bindings { return v.keyBindings }

// HotKey returns the hot key.
func (v *View) HotKey() key.Key { return v.hotKey }

// SetHotKey binds k and Alt+k to the HotKey command in HotKey scope,
// replacing the previous hot key. key.Empty removes it.
func (v *View) SetHotKey(k key.Key) {
	if v.hotKey.IsValid() {
		v.keyBindings.Remove(v.hotKey, keybinding.HotKey)
		v.keyBindings.Remove(v.hotKey.WithAlt(), keybinding.HotKey)
	}
	v.hotKey = k
	if !k.IsValid() {
		return
	}
	v.keyBindings.ReplaceCommands(k, keybinding.HotKey, command.HotKey)
	if !k.IsAlt() {
		v.keyBindings.ReplaceCommands(k.WithAlt(), keybinding.HotKey, command.HotKey)
	}
}

// SetNeedsDisplay marks the view and its ancestors for redraw.
func (v *View) SetNeedsDisplay() {
	for w := v; w != nil; w = w.superview {
		w.needsDisplay = true
	}
}

// NeedsDisplay reports whether the view or a descendant needs redraw.
func (v *View) NeedsDisplay() bool { return v.needsDisplay }

// String returns the title, or the id when there is no title.
func (v *View) String() string {
	if v.title != "" {
		return v.title
	}
	return v.id
}
