package key

import (
	"unicode"
	"unicode/utf8"
)

// KeyCode is a bit-packed key: a base symbol in the low bits plus
// modifier flags in the high bits.
type KeyCode uint32

// Masks.
const (
	// MaskBase selects the base symbol. It covers every Unicode scalar.
	MaskBase KeyCode = 0x001F_FFFF

	// ShiftMask marks the Shift modifier.
	ShiftMask KeyCode = 1 << 28

	// SpecialMask marks a base that is not a character.
	SpecialMask KeyCode = 1 << 29

	// CtrlMask marks the Ctrl modifier.
	CtrlMask KeyCode = 1 << 30

	// AltMask marks the Alt modifier.
	AltMask KeyCode = 1 << 31

	// MaskModifiers selects Shift, Ctrl and Alt.
	MaskModifiers = ShiftMask | CtrlMask | AltMask
)

// NoRune is returned by AsRune when a key has no printable character.
const NoRune rune = 0

// Character keys.
const (
	Null      KeyCode = 0
	Backspace KeyCode = 8
	Tab       KeyCode = 9
	Enter     KeyCode = '\n'
	Esc       KeyCode = 27
	Space     KeyCode = ' '
	Delete    KeyCode = 127

	// Whitespace controls that have no printable form.
	VerticalTab    KeyCode = '\v'
	FormFeed       KeyCode = '\f'
	CarriageReturn KeyCode = '\r'

	D0 KeyCode = '0'
	D1 KeyCode = '1'
	D2 KeyCode = '2'
	D3 KeyCode = '3'
	D4 KeyCode = '4'
	D5 KeyCode = '5'
	D6 KeyCode = '6'
	D7 KeyCode = '7'
	D8 KeyCode = '8'
	D9 KeyCode = '9'

	// A through Z are the unshifted letters.
	A KeyCode = 'A'
	B KeyCode = 'B'
	C KeyCode = 'C'
	D KeyCode = 'D'
	E KeyCode = 'E'
	F KeyCode = 'F'
	G KeyCode = 'G'
	H KeyCode = 'H'
	I KeyCode = 'I'
	J KeyCode = 'J'
	K KeyCode = 'K'
	L KeyCode = 'L'
	M KeyCode = 'M'
	N KeyCode = 'N'
	O KeyCode = 'O'
	P KeyCode = 'P'
	Q KeyCode = 'Q'
	R KeyCode = 'R'
	S KeyCode = 'S'
	T KeyCode = 'T'
	U KeyCode = 'U'
	V KeyCode = 'V'
	W KeyCode = 'W'
	X KeyCode = 'X'
	Y KeyCode = 'Y'
	Z KeyCode = 'Z'
)

// Special keys.
const (
	CursorUp KeyCode = SpecialMask | (iota + 1)
	CursorDown
	CursorLeft
	CursorRight
	PageUp
	PageDown
	Home
	End
	Insert
	DeleteChar
	BackTab
	PrintScreen
	Pause
	CapsLock
	ScrollLock
	NumLock
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
)

// codeNames maps named codes to their canonical names.
var codeNames = map[KeyCode]string{
	Null:        "Null",
	Backspace:   "Backspace",
	Tab:         "Tab",
	Enter:       "Enter",
	Esc:         "Esc",
	Space:       "Space",
	Delete:      "Delete",
	CursorUp:    "CursorUp",
	CursorDown:  "CursorDown",
	CursorLeft:  "CursorLeft",
	CursorRight: "CursorRight",
	PageUp:      "PageUp",
	PageDown:    "PageDown",
	Home:        "Home",
	End:         "End",
	Insert:      "Insert",
	DeleteChar:  "DeleteChar",
	BackTab:     "BackTab",
	PrintScreen: "PrintScreen",
	Pause:       "Pause",
	CapsLock:    "CapsLock",
	ScrollLock:  "ScrollLock",
	NumLock:     "NumLock",
	F1:          "F1",
	F2:          "F2",
	F3:          "F3",
	F4:          "F4",
	F5:          "F5",
	F6:          "F6",
	F7:          "F7",
	F8:          "F8",
	F9:          "F9",
	F10:         "F10",
	F11:         "F11",
	F12:         "F12",

	VerticalTab:    "VerticalTab",
	FormFeed:       "FormFeed",
	CarriageReturn: "CarriageReturn",
}

// nameCodes maps lowercase names and aliases to codes. Letters and
// digits are resolved separately.
var nameCodes = map[string]KeyCode{
	"backspace":   Backspace,
	"bs":          Backspace,
	"tab":         Tab,
	"enter":       Enter,
	"return":      Enter,
	"cr":          Enter,
	"esc":         Esc,
	"escape":      Esc,
	"space":       Space,
	"delete":      Delete,
	"del":         Delete,
	"cursorup":    CursorUp,
	"up":          CursorUp,
	"cursordown":  CursorDown,
	"down":        CursorDown,
	"cursorleft":  CursorLeft,
	"left":        CursorLeft,
	"cursorright": CursorRight,
	"right":       CursorRight,
	"pageup":      PageUp,
	"pgup":        PageUp,
	"pagedown":    PageDown,
	"pgdn":        PageDown,
	"home":        Home,
	"end":         End,
	"insert":      Insert,
	"ins":         Insert,
	"deletechar":  DeleteChar,
	"backtab":     BackTab,
	"printscreen": PrintScreen,
	"pause":       Pause,
	"capslock":    CapsLock,
	"scrolllock":  ScrollLock,
	"numlock":     NumLock,
	"f1":          F1,
	"f2":          F2,
	"f3":          F3,
	"f4":          F4,
	"f5":          F5,
	"f6":          F6,
	"f7":          F7,
	"f8":          F8,
	"f9":          F9,
	"f10":         F10,
	"f11":         F11,
	"f12":         F12,

	"verticaltab":    VerticalTab,
	"vt":             VerticalTab,
	"formfeed":       FormFeed,
	"ff":             FormFeed,
	"carriagereturn": CarriageReturn,
}

// modifierNames maps lowercase modifier names to their masks.
var modifierNames = map[string]KeyCode{
	"ctrl":    CtrlMask,
	"control": CtrlMask,
	"alt":     AltMask,
	"option":  AltMask,
	"meta":    AltMask,
	"shift":   ShiftMask,
}

// Base returns the base symbol without modifier flags.
func (c KeyCode) Base() KeyCode {
	return c & (MaskBase | SpecialMask)
}

// Has reports whether all bits of mask are set.
func (c KeyCode) Has(mask KeyCode) bool {
	return c&mask == mask
}

// IsLetter reports whether the base is one of A through Z.
func (c KeyCode) IsLetter() bool {
	b := c.Base()
	return b >= A && b <= Z
}

// IsDigit reports whether the base is one of D0 through D9.
func (c KeyCode) IsDigit() bool {
	b := c.Base()
	return b >= D0 && b <= D9
}

// IsModifierOnly reports whether the code carries modifier flags but no
// base symbol, as produced by parsing "Ctrl" alone.
func (c KeyCode) IsModifierOnly() bool {
	return c.Base() == Null && c&MaskModifiers != 0
}

// AsRune returns the printable character a key produces, or NoRune when
// Ctrl or Alt is held, the key is special, or the key is a bare
// modifier. Letters are lowercase unless Shift is set.
func AsRune(c KeyCode) rune {
	if c&(CtrlMask|AltMask|SpecialMask) != 0 {
		return NoRune
	}
	base := c & MaskBase
	if base == Null {
		return NoRune
	}
	if base >= A && base <= Z {
		if c&ShiftMask != 0 {
			return rune(base)
		}
		return unicode.ToLower(rune(base))
	}
	r := rune(base)
	if !utf8.ValidRune(r) || !unicode.IsPrint(r) {
		return NoRune
	}
	return r
}
