package key

import "testing"

func TestAsRune(t *testing.T) {
	tests := []struct {
		name string
		code KeyCode
		want rune
	}{
		{"lowercase letter", A, 'a'},
		{"shifted letter", A | ShiftMask, 'A'},
		{"digit", D7, '7'},
		{"shifted digit", D7 | ShiftMask, '7'},
		{"space", Space, ' '},
		{"punctuation", '?', '?'},
		{"non-ascii", 'ß', 'ß'},
		{"ctrl letter", A | CtrlMask, NoRune},
		{"alt letter", A | AltMask, NoRune},
		{"special", F1, NoRune},
		{"cursor", CursorLeft, NoRune},
		{"bare modifier", CtrlMask, NoRune},
		{"null", Null, NoRune},
		{"enter", Enter, NoRune},
		{"esc", Esc, NoRune},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AsRune(tt.code); got != tt.want {
				t.Errorf("AsRune(%#x) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		code KeyCode
		sep  rune
		want string
	}{
		{A, '+', "a"},
		{A | ShiftMask, '+', "Shift+A"},
		{S | CtrlMask, '+', "Ctrl+S"},
		{S | CtrlMask | AltMask | ShiftMask, '+', "Ctrl+Alt+Shift+S"},
		{S | ShiftMask | CtrlMask, '-', "Ctrl-Shift-S"},
		{D3, '+', "3"},
		{F4 | AltMask, '+', "Alt+F4"},
		{Enter, '+', "Enter"},
		{CursorUp, '+', "CursorUp"},
		{'+' | CtrlMask, '+', "Ctrl++"},
		{CtrlMask, '+', "Ctrl"},
		{CtrlMask | ShiftMask, '+', "Ctrl+Shift"},
		{Null, '+', ""},
	}

	for _, tt := range tests {
		if got := ToString(tt.code, tt.sep); got != tt.want {
			t.Errorf("ToString(%#x, %q) = %q, want %q", tt.code, tt.sep, got, tt.want)
		}
	}
}

func TestFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want KeyCode
	}{
		{'a', A},
		{'A', A | ShiftMask},
		{'\n', Enter},
		{'\r', Enter},
		{'\t', Tab},
		{'5', D5},
		{'€', '€'},
	}

	for _, tt := range tests {
		if got := FromRune(tt.r).KeyCode(); got != tt.want {
			t.Errorf("FromRune(%q) = %#x, want %#x", tt.r, got, tt.want)
		}
	}
}

func TestKeyPredicates(t *testing.T) {
	k := NewKey(X | CtrlMask | ShiftMask)

	if !k.IsCtrl() || !k.IsShift() || k.IsAlt() {
		t.Errorf("modifier predicates wrong for %v", k)
	}
	if k.BareKey() != NewKey(X) {
		t.Errorf("BareKey() = %v, want x", k.BareKey())
	}
	if k.NoCtrl().KeyCode() != X|ShiftMask {
		t.Errorf("NoCtrl() = %#x", k.NoCtrl().KeyCode())
	}
	if !NewKey(F5).IsSpecial() {
		t.Error("F5 should be special")
	}
	if Empty.IsValid() {
		t.Error("Empty should not be valid")
	}
	if NewKey(A).WithAlt().WithCtrl() != NewKey(A|AltMask|CtrlMask) {
		t.Error("WithAlt().WithCtrl() did not combine")
	}

	seen := map[Key]bool{NewKey(A): true}
	if !seen[FromRune('a')] {
		t.Error("keys with equal codes should be equal map keys")
	}
}
