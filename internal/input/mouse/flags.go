package mouse

import "strings"

// Flags is a bit set describing one mouse event.
type Flags uint32

// Button transitions.
const (
	Button1Pressed Flags = 1 << iota
	Button1Released
	Button1Clicked
	Button1DoubleClicked
	Button1TripleClicked
	Button2Pressed
	Button2Released
	Button2Clicked
	Button2DoubleClicked
	Button2TripleClicked
	Button3Pressed
	Button3Released
	Button3Clicked
	Button3DoubleClicked
	Button3TripleClicked
	Button4Pressed
	Button4Released
	Button4Clicked
	Button4DoubleClicked
	Button4TripleClicked

	// ReportMousePosition marks motion.
	ReportMousePosition

	WheeledUp
	WheeledDown
	WheeledLeft
	WheeledRight

	// ButtonShift, ButtonCtrl and ButtonAlt report held keyboard
	// modifiers.
	ButtonShift
	ButtonCtrl
	ButtonAlt
)

// Groups of flags.
const (
	AllPressed  = Button1Pressed | Button2Pressed | Button3Pressed | Button4Pressed
	AllReleased = Button1Released | Button2Released | Button3Released | Button4Released
	AllClicked  = Button1Clicked | Button2Clicked | Button3Clicked | Button4Clicked |
		Button1DoubleClicked | Button2DoubleClicked | Button3DoubleClicked | Button4DoubleClicked |
		Button1TripleClicked | Button2TripleClicked | Button3TripleClicked | Button4TripleClicked
	AllWheeled   = WheeledUp | WheeledDown | WheeledLeft | WheeledRight
	AllModifiers = ButtonShift | ButtonCtrl | ButtonAlt
)

// buttonShift is the number of bits used per button.
const buttonShift = 5

// Transition flags relative to a button's Pressed bit.
const (
	offPressed = iota
	offReleased
	offClicked
	offDoubleClicked
	offTripleClicked
)

// buttonFlag returns the flag for button (1-4) at the given transition
// offset relative to Button1Pressed.
func buttonFlag(button, offset int) Flags {
	return Flags(1) << uint((button-1)*buttonShift+offset)
}

// Has reports whether all bits of f are set.
func (m Flags) Has(f Flags) bool {
	return m&f == f
}

// Any reports whether any bit of f is set.
func (m Flags) Any(f Flags) bool {
	return m&f != 0
}

// IsPressed reports whether any button was pressed.
func (m Flags) IsPressed() bool { return m.Any(AllPressed) }

// IsReleased reports whether any button was released.
func (m Flags) IsReleased() bool { return m.Any(AllReleased) }

// IsClicked reports whether any single, double or triple click is set.
func (m Flags) IsClicked() bool { return m.Any(AllClicked) }

// IsWheel reports whether the wheel moved.
func (m Flags) IsWheel() bool { return m.Any(AllWheeled) }

// WithoutModifiers returns the flags with keyboard modifiers removed.
func (m Flags) WithoutModifiers() Flags { return m &^ AllModifiers }

var flagNames = []struct {
	flag Flags
	name string
}{
	{Button1Pressed, "Button1Pressed"},
	{Button1Released, "Button1Released"},
	{Button1Clicked, "Button1Clicked"},
	{Button1DoubleClicked, "Button1DoubleClicked"},
	{Button1TripleClicked, "Button1TripleClicked"},
	{Button2Pressed, "Button2Pressed"},
	{Button2Released, "Button2Released"},
	{Button2Clicked, "Button2Clicked"},
	{Button2DoubleClicked, "Button2DoubleClicked"},
	{Button2TripleClicked, "Button2TripleClicked"},
	{Button3Pressed, "Button3Pressed"},
	{Button3Released, "Button3Released"},
	{Button3Clicked, "Button3Clicked"},
	{Button3DoubleClicked, "Button3DoubleClicked"},
	{Button3TripleClicked, "Button3TripleClicked"},
	{Button4Pressed, "Button4Pressed"},
	{Button4Released, "Button4Released"},
	{Button4Clicked, "Button4Clicked"},
	{Button4DoubleClicked, "Button4DoubleClicked"},
	{Button4TripleClicked, "Button4TripleClicked"},
	{ReportMousePosition, "ReportMousePosition"},
	{WheeledUp, "WheeledUp"},
	{WheeledDown, "WheeledDown"},
	{WheeledLeft, "WheeledLeft"},
	{WheeledRight, "WheeledRight"},
	{ButtonShift, "ButtonShift"},
	{ButtonCtrl, "ButtonCtrl"},
	{ButtonAlt, "ButtonAlt"},
}

// String returns the set flag names joined by '|'.
func (m Flags) String() string {
	if m == 0 {
		return "None"
	}
	var parts []string
	for _, fn := range flagNames {
		if m&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}
