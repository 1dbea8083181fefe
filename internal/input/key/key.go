package key

// Key wraps a KeyCode. Keys compare by value and can be used as map keys.
type Key struct {
	code KeyCode
}

// Empty is the null key.
var Empty = Key{}

// NewKey returns the key for a code.
func NewKey(code KeyCode) Key {
	return Key{code: code}
}

// FromRune returns the key a character produces. Lowercase letters map
// to A..Z and uppercase letters to A..Z with Shift. Newline and carriage
// return map to Enter.
func FromRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return Key{code: KeyCode(r - 'a' + 'A')}
	case r >= 'A' && r <= 'Z':
		return Key{code: KeyCode(r) | ShiftMask}
	case r == '\r' || r == '\n':
		return Key{code: Enter}
	case r < 0 || KeyCode(r) > MaskBase:
		return Empty
	}
	return Key{code: KeyCode(r)}
}

// MustParse is like TryParse but panics when text is not a valid key.
// It is intended for package-level defaults.
func MustParse(text string) Key {
	k, ok := TryParse(text)
	if !ok {
		panic("key: invalid key string " + text)
	}
	return k
}

// KeyCode returns the underlying code.
func (k Key) KeyCode() KeyCode {
	return k.code
}

// IsValid reports whether the key has a base symbol. The null key and
// bare modifier keys are not valid.
func (k Key) IsValid() bool {
	return k.code.Base() != Null
}

// IsShift reports whether Shift is held.
func (k Key) IsShift() bool { return k.code&ShiftMask != 0 }

// IsCtrl reports whether Ctrl is held.
func (k Key) IsCtrl() bool { return k.code&CtrlMask != 0 }

// IsAlt reports whether Alt is held.
func (k Key) IsAlt() bool { return k.code&AltMask != 0 }

// IsSpecial reports whether the base is a non-character key.
func (k Key) IsSpecial() bool { return k.code&SpecialMask != 0 }

// BareKey returns the key without Shift, Ctrl and Alt.
func (k Key) BareKey() Key {
	return Key{code: k.code &^ MaskModifiers}
}

// Modifiers returns only the modifier flags of the key.
func (k Key) Modifiers() KeyCode {
	return k.code & MaskModifiers
}

// AsRune returns the printable character of the key, or NoRune.
func (k Key) AsRune() rune {
	return AsRune(k.code)
}

// WithShift returns the key with Shift added.
func (k Key) WithShift() Key { return Key{code: k.code | ShiftMask} }

// WithCtrl returns the key with Ctrl added.
func (k Key) WithCtrl() Key { return Key{code: k.code | CtrlMask} }

// WithAlt returns the key with Alt added.
func (k Key) WithAlt() Key { return Key{code: k.code | AltMask} }

// NoShift returns the key with Shift removed.
func (k Key) NoShift() Key { return Key{code: k.code &^ ShiftMask} }

// NoCtrl returns the key with Ctrl removed.
func (k Key) NoCtrl() Key { return Key{code: k.code &^ CtrlMask} }

// NoAlt returns the key with Alt removed.
func (k Key) NoAlt() Key { return Key{code: k.code &^ AltMask} }

// String formats the key with '+' as separator.
func (k Key) String() string {
	return ToString(k.code, '+')
}

// Format formats the key with the given separator.
func (k Key) Format(sep rune) string {
	return ToString(k.code, sep)
}
