package key

import (
	"strings"
	"unicode/utf8"
)

// maxSegments is the longest key string: three modifiers and a key.
const maxSegments = 4

// TryParse parses a key string such as "Ctrl+S", "Alt-F4", "a" or "Esc".
//
// The text is split on '+' and '-'. A lone modifier name yields the bare
// modifier key. Otherwise the modifier names are removed and the single
// remaining segment is resolved as, in order: an ASCII digit, a key name,
// or a literal character. A bare uppercase letter name ("A") becomes
// Shift+A, while "a" is the unshifted letter.
//
// A lone '+' or '-' and a trailing doubled separator ("Ctrl++") name the
// separator character itself. TryParse reports false for empty text,
// empty segments, more than four segments and unknown names.
func TryParse(text string) (Key, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Empty, false
	}
	if utf8.RuneCountInString(text) == 1 {
		return resolveSegment(text, 0)
	}

	segments, ok := splitSegments(text)
	if !ok || len(segments) == 0 || len(segments) > maxSegments {
		return Empty, false
	}

	var mods KeyCode
	var rest []string
	for _, seg := range segments {
		if m, ok := modifierNames[strings.ToLower(seg)]; ok {
			mods |= m
			continue
		}
		rest = append(rest, seg)
	}

	switch len(rest) {
	case 0:
		return NewKey(mods), true
	case 1:
		return resolveSegment(rest[0], mods)
	default:
		return Empty, false
	}
}

// splitSegments splits text on separators, rejecting empty segments.
func splitSegments(text string) ([]string, bool) {
	var last string
	if n := len(text); n >= 2 && isSeparator(text[n-1]) && isSeparator(text[n-2]) {
		last = text[n-1:]
		text = text[:n-2]
	}

	var segments []string
	start := 0
	for i := 0; i < len(text); i++ {
		if isSeparator(text[i]) {
			segments = append(segments, text[start:i])
			start = i + 1
		}
	}
	segments = append(segments, text[start:])

	for _, seg := range segments {
		if seg == "" {
			return nil, false
		}
	}
	if last != "" {
		segments = append(segments, last)
	}
	return segments, true
}

func isSeparator(b byte) bool {
	return b == '+' || b == '-'
}

// resolveSegment resolves the key segment and applies mods.
func resolveSegment(seg string, mods KeyCode) (Key, bool) {
	if len(seg) == 1 && seg[0] >= '0' && seg[0] <= '9' {
		return NewKey(KeyCode(seg[0]) | mods), true
	}

	if code, ok := lookupName(seg); ok {
		if code.IsLetter() && mods == 0 {
			code |= ShiftMask
		}
		return NewKey(code | mods), true
	}

	r, size := utf8.DecodeRuneInString(seg)
	if size != len(seg) || r == utf8.RuneError {
		return Empty, false
	}
	k := FromRune(r)
	if !k.IsValid() {
		return Empty, false
	}
	return NewKey(k.code | mods), true
}

// lookupName resolves an uppercase letter, a D0..D9 name or a key name.
func lookupName(name string) (KeyCode, bool) {
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		return KeyCode(name[0]), true
	}
	if len(name) == 2 && (name[0] == 'D' || name[0] == 'd') && name[1] >= '0' && name[1] <= '9' {
		return KeyCode(name[1]), true
	}
	code, ok := nameCodes[strings.ToLower(name)]
	return code, ok
}
