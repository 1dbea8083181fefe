// Package key provides the bit-packed key representation used by the
// input pipeline.
//
// A KeyCode is a 32-bit value. The low bits hold a base symbol and the
// high bits hold independent modifier flags:
//
//   - Base: a Unicode scalar, or a small index combined with SpecialMask
//     for keys that have no character (cursor keys, function keys).
//   - Flags: ShiftMask, CtrlMask, AltMask and SpecialMask, combined with
//     bitwise OR.
//
// The codes A through Z share their values with ASCII uppercase letters
// but stand for the unshifted (lowercase) letter. The uppercase letter is
// A|ShiftMask. This keeps one value per physical key plus any modifier
// combination.
//
// # Key Strings
//
// Keys are written as [Ctrl+][Alt+][Shift+]<name-or-char>, for example
// "Ctrl+S", "Alt+F4", "Ctrl+Shift+Tab", "a" or "Esc". Format and TryParse
// produce and consume exactly that form. Either '+' or '-' separates
// segments.
//
// TryParse never panics: key strings come from configuration files and
// scripts, so malformed text is reported with a false result.
package key
