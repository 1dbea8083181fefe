package driver

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termstack/internal/core"
	"github.com/dshills/termstack/internal/input/key"
	"github.com/dshills/termstack/internal/input/mouse"
)

// specialKeys maps tcell keys without a rune to key codes.
var specialKeys = map[tcell.Key]key.KeyCode{
	tcell.KeyEnter:      key.Enter,
	tcell.KeyTab:        key.Tab,
	tcell.KeyBacktab:    key.BackTab,
	tcell.KeyBackspace:  key.Backspace,
	tcell.KeyBackspace2: key.Backspace,
	tcell.KeyEscape:     key.Esc,
	tcell.KeyDelete:     key.DeleteChar,
	tcell.KeyInsert:     key.Insert,
	tcell.KeyHome:       key.Home,
	tcell.KeyEnd:        key.End,
	tcell.KeyPgUp:       key.PageUp,
	tcell.KeyPgDn:       key.PageDown,
	tcell.KeyUp:         key.CursorUp,
	tcell.KeyDown:       key.CursorDown,
	tcell.KeyLeft:       key.CursorLeft,
	tcell.KeyRight:      key.CursorRight,
	tcell.KeyPrint:      key.PrintScreen,
	tcell.KeyPause:      key.Pause,
	tcell.KeyCapsLock:   key.CapsLock,
	tcell.KeyScrollLock: key.ScrollLock,
	tcell.KeyNumLock:    key.NumLock,
	tcell.KeyF1:         key.F1,
	tcell.KeyF2:         key.F2,
	tcell.KeyF3:         key.F3,
	tcell.KeyF4:         key.F4,
	tcell.KeyF5:         key.F5,
	tcell.KeyF6:         key.F6,
	tcell.KeyF7:         key.F7,
	tcell.KeyF8:         key.F8,
	tcell.KeyF9:         key.F9,
	tcell.KeyF10:        key.F10,
	tcell.KeyF11:        key.F11,
	tcell.KeyF12:        key.F12,
}

// convertModifiers converts a tcell modifier mask to key modifier flags.
// Meta is folded into Alt.
func convertModifiers(m tcell.ModMask) key.KeyCode {
	var result key.KeyCode
	if m&tcell.ModShift != 0 {
		result |= key.ShiftMask
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.CtrlMask
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		result |= key.AltMask
	}
	return result
}

// convertKey converts a tcell key event to a Key. It returns key.Empty
// for keys that have no KeyCode.
func convertKey(ev *tcell.EventKey) key.Key {
	mods := convertModifiers(ev.Modifiers())
	k := ev.Key()

	if k == tcell.KeyRune {
		base := key.FromRune(ev.Rune())
		if !base.IsValid() {
			return key.Empty
		}
		// Case is already part of the rune.
		return key.NewKey(base.KeyCode() | mods&^key.ShiftMask)
	}

	if code, ok := specialKeys[k]; ok {
		if code == key.BackTab {
			mods &^= key.ShiftMask
		}
		return key.NewKey(code | mods)
	}

	switch {
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.NewKey(key.A + key.KeyCode(k-tcell.KeyCtrlA) | key.CtrlMask | mods)
	case k == tcell.KeyCtrlSpace:
		return key.NewKey(key.Space | key.CtrlMask | mods)
	}
	return key.Empty
}

// buttonMap pairs tcell buttons with their flags. tcell numbers the
// middle button 3 and the secondary button 2; the runtime numbers them
// the other way round.
var buttonMap = []struct {
	button   tcell.ButtonMask
	pressed  mouse.Flags
	released mouse.Flags
}{
	{tcell.ButtonPrimary, mouse.Button1Pressed, mouse.Button1Released},
	{tcell.ButtonMiddle, mouse.Button2Pressed, mouse.Button2Released},
	{tcell.ButtonSecondary, mouse.Button3Pressed, mouse.Button3Released},
	{tcell.Button4, mouse.Button4Pressed, mouse.Button4Released},
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// convertMouse derives mouse flags from the button state of the
// previous and current events. tcell reports which buttons are held;
// presses and releases are the transitions between two states. An event
// with no transition and no wheel motion is a motion report.
func convertMouse(prev, cur tcell.ButtonMask, mod tcell.ModMask) mouse.Flags {
	var flags mouse.Flags
	for _, b := range buttonMap {
		was, is := prev&b.button != 0, cur&b.button != 0
		switch {
		case is && !was:
			flags |= b.pressed
		case was && !is:
			flags |= b.released
		}
	}

	if cur&tcell.WheelUp != 0 {
		flags |= mouse.WheeledUp
	}
	if cur&tcell.WheelDown != 0 {
		flags |= mouse.WheeledDown
	}
	if cur&tcell.WheelLeft != 0 {
		flags |= mouse.WheeledLeft
	}
	if cur&tcell.WheelRight != 0 {
		flags |= mouse.WheeledRight
	}

	if flags == 0 {
		flags = mouse.ReportMousePosition
	}

	if mod&tcell.ModShift != 0 {
		flags |= mouse.ButtonShift
	}
	if mod&tcell.ModCtrl != 0 {
		flags |= mouse.ButtonCtrl
	}
	if mod&(tcell.ModAlt|tcell.ModMeta) != 0 {
		flags |= mouse.ButtonAlt
	}
	return flags
}

// convertStyle converts a cell style to a tcell style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if s.Foreground != core.ColorDefault {
		style = style.Foreground(tcell.PaletteColor(int(s.Foreground)))
	}
	if s.Background != core.ColorDefault {
		style = style.Background(tcell.PaletteColor(int(s.Background)))
	}

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}
