package core

import "github.com/mattn/go-runewidth"

// Attribute represents text attributes (bold, reverse, etc.).
type Attribute uint8

// Text attribute flags.
const (
	AttrNone Attribute = 0
	AttrBold Attribute = 1 << (iota - 1)
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse
)

// Has returns true if the attribute set contains attr.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Color is a terminal palette color. ColorDefault is the terminal's own
// color.
type Color int16

// Palette colors.
const (
	ColorDefault Color = iota - 1
	ColorBlack
	ColorMaroon
	ColorGreen
	ColorOlive
	ColorNavy
	ColorPurple
	ColorTeal
	ColorSilver
	ColorGray
	ColorRed
	ColorLime
	ColorYellow
	ColorBlue
	ColorFuchsia
	ColorAqua
	ColorWhite
)

// Style combines colors and attributes.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle uses the terminal's colors with no attributes.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// Reverse returns the style with reverse video toggled on.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Bold returns the style with bold on.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Cell is one character cell of the screen.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Style: DefaultStyle()}
}

// NewCell returns a cell for r in style.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}

// RuneWidth returns the number of columns r occupies.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the number of columns s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most width columns, ending with tail when cut.
func Truncate(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, tail)
}
