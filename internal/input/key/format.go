package key

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToString formats a code as modifiers in the order Ctrl, Alt, Shift, each
// followed by sep, then the base key name or character. A bare letter is
// written lowercase; after a modifier it is written uppercase. The null
// code formats as the empty string.
func ToString(c KeyCode, sep rune) string {
	if c == Null {
		return ""
	}

	var sb strings.Builder
	if c&CtrlMask != 0 {
		sb.WriteString("Ctrl")
		sb.WriteRune(sep)
	}
	if c&AltMask != 0 {
		sb.WriteString("Alt")
		sb.WriteRune(sep)
	}
	if c&ShiftMask != 0 {
		sb.WriteString("Shift")
		sb.WriteRune(sep)
	}

	base := c.Base()
	if base == Null {
		return strings.TrimSuffix(sb.String(), string(sep))
	}
	sb.WriteString(baseName(base, c&MaskModifiers != 0))
	return sb.String()
}

// baseName returns the display name of a base symbol.
func baseName(base KeyCode, modified bool) string {
	switch {
	case base >= A && base <= Z:
		if modified {
			return string(rune(base))
		}
		return string(unicode.ToLower(rune(base)))
	case base >= D0 && base <= D9:
		return string(rune(base))
	}
	if name, ok := codeNames[base]; ok {
		return name
	}
	r := rune(base & MaskBase)
	if base&SpecialMask != 0 || !utf8.ValidRune(r) {
		return ""
	}
	return string(r)
}
