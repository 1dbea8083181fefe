package view

import "github.com/dshills/termstack/internal/core"

// Canvas is a surface addressed in screen coordinates.
type Canvas interface {
	SetCell(x, y int, c core.Cell)
	Size() core.Size
}

// ContentDrawer is implemented by responders that paint the content
// area of their view.
type ContentDrawer interface {
	// DrawContent paints the content area. Coordinates passed to
	// c.SetCell are relative to the content area and clipped to it.
	DrawContent(v *View, c Canvas)
}

// clipCanvas translates content coordinates to screen coordinates and
// drops cells outside clip.
type clipCanvas struct {
	target Canvas
	origin core.Point
	clip   core.Rect
}

func (c *clipCanvas) SetCell(x, y int, cell core.Cell) {
	sx, sy := x+c.origin.X, y+c.origin.Y
	if c.clip.Contains(sx, sy) {
		c.target.SetCell(sx, sy, cell)
	}
}

func (c *clipCanvas) Size() core.Size {
	return core.Size{Width: c.clip.Right() - c.origin.X, Height: c.clip.Bottom() - c.origin.Y}
}

// Draw paints the view and its subviews onto c and clears the redraw
// flags.
func (v *View) Draw(c Canvas) {
	size := c.Size()
	clip := core.Rect{Width: size.Width, Height: size.Height}
	for sv := v.superview; sv != nil; sv = sv.superview {
		t := sv.Thickness()
		content := sv.ScreenFrame().Inset(t)
		clip = clip.Intersect(content)
	}
	v.draw(c, clip)
}

func (v *View) draw(c Canvas, clip core.Rect) {
	if !v.visible {
		v.needsDisplay = false
		return
	}
	frame := v.ScreenFrame()
	clip = clip.Intersect(frame)
	if clip.IsEmpty() {
		v.needsDisplay = false
		return
	}

	blank := core.NewCell(' ', v.style)
	for y := clip.Y; y < clip.Bottom(); y++ {
		for x := clip.X; x < clip.Right(); x++ {
			c.SetCell(x, y, blank)
		}
	}
	if v.border {
		v.drawBorder(c, frame, clip)
	}

	t := v.Thickness()
	content := frame.Inset(t)
	inner := clip.Intersect(content)
	if !inner.IsEmpty() {
		if d, ok := v.responder.(ContentDrawer); ok {
			d.DrawContent(v, &clipCanvas{target: c, origin: content.Location(), clip: inner})
		}
		for _, sub := range v.subviews {
			sub.draw(c, inner)
		}
	}
	v.needsDisplay = false
}

// Border runes.
const (
	boxHorizontal  = '─'
	boxVertical    = '│'
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
)

func (v *View) drawBorder(c Canvas, frame, clip core.Rect) {
	style := v.style
	put := func(x, y int, r rune) {
		if clip.Contains(x, y) {
			c.SetCell(x, y, core.NewCell(r, style))
		}
	}

	right, bottom := frame.Right()-1, frame.Bottom()-1
	for x := frame.X + 1; x < right; x++ {
		put(x, frame.Y, boxHorizontal)
		put(x, bottom, boxHorizontal)
	}
	for y := frame.Y + 1; y < bottom; y++ {
		put(frame.X, y, boxVertical)
		put(right, y, boxVertical)
	}
	put(frame.X, frame.Y, boxTopLeft)
	put(right, frame.Y, boxTopRight)
	put(frame.X, bottom, boxBottomLeft)
	put(right, bottom, boxBottomRight)

	if v.title == "" || frame.Width < 5 {
		return
	}
	titleStyle := style
	if v.hasFocus {
		titleStyle = titleStyle.Reverse()
	}
	title := core.Truncate(v.title, frame.Width-4, "~")
	x := frame.X + 2
	for _, r := range title {
		if clip.Contains(x, frame.Y) {
			c.SetCell(x, frame.Y, core.NewCell(r, titleStyle))
		}
		x += core.RuneWidth(r)
	}
}
