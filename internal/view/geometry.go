package view

import "github.com/dshills/termstack/internal/core"

// Frame returns the frame relative to the superview content area.
func (v *View) Frame() core.Rect { return v.frame }

// SetFrame moves or resizes the view.
func (v *View) SetFrame(r core.Rect) {
	if r == v.frame {
		return
	}
	if v.superview != nil {
		v.superview.SetNeedsDisplay()
	}
	v.frame = r
	v.SetNeedsDisplay()
}

// Thickness returns the border width, 1 or 0.
func (v *View) Thickness() int {
	if v.border {
		return 1
	}
	return 0
}

// Bounds returns the content area in content coordinates.
func (v *View) Bounds() core.Rect {
	t := v.Thickness()
	return core.Rect{Width: max(v.frame.Width-2*t, 0), Height: max(v.frame.Height-2*t, 0)}
}

// ScreenFrame returns the frame in screen coordinates.
func (v *View) ScreenFrame() core.Rect {
	r := v.frame
	for sv := v.superview; sv != nil; sv = sv.superview {
		t := sv.Thickness()
		r = r.Offset(sv.frame.X+t, sv.frame.Y+t)
	}
	return r
}

// ScreenToView converts screen coordinates to coordinates relative to
// the frame origin.
func (v *View) ScreenToView(x, y int) core.Point {
	f := v.ScreenFrame()
	return core.Point{X: x - f.X, Y: y - f.Y}
}

// ViewToScreen converts frame relative coordinates to screen
// coordinates.
func (v *View) ViewToScreen(x, y int) core.Point {
	f := v.ScreenFrame()
	return core.Point{X: x + f.X, Y: y + f.Y}
}

// FindDeepestView returns the deepest visible view under (x, y), given
// in the coordinate space of v's frame, with the point translated to
// that view's frame. It returns nil when v does not contain the point.
func (v *View) FindDeepestView(x, y int) (*View, core.Point) {
	if !v.visible || !v.frame.Contains(x, y) {
		return nil, core.Point{}
	}
	local := core.Point{X: x - v.frame.X, Y: y - v.frame.Y}
	t := v.Thickness()
	if v.Bounds().Contains(local.X-t, local.Y-t) {
		for i := len(v.subviews) - 1; i >= 0; i-- {
			if d, p := v.subviews[i].FindDeepestView(local.X-t, local.Y-t); d != nil {
				return d, p
			}
		}
	}
	return v, local
}
