package app

import "github.com/dshills/termstack/internal/view"

// EnsureVisibleBounds adjusts a requested position (x, y) of top so its
// frame stays inside the reference area and clear of the host's visible
// MenuBar and StatusBar rows. It returns the adjusted position and the
// chrome views that were taken into account.
//
// The reference area is the console for root toplevels and MDI
// children, with the MDI container, or else the bottom toplevel, as the
// host. For any other toplevel it is the content area of its
// superview, hosted by the nearest toplevel above it. An MDI container
// host keeps its children one cell inside its border.
//
// A position that already fits is returned unchanged. When the frame
// would cross the right or bottom edge, the pulled-back position is also
// limited to the far edge of the current frame.
func (app *Application) EnsureVisibleBounds(top *Toplevel, x, y int) (nx, ny int, menu, status *view.View) {
	f := top.Frame()

	var cols, rows int
	var host *Toplevel
	if sv := top.Superview(); sv == nil || app.IsMdiChild(top) {
		size := app.driver.Size()
		cols, rows = size.Width, size.Height
		host = app.viewportHost(top)
	} else {
		b := sv.Bounds()
		cols, rows = b.Width, b.Height
		host = nearestToplevel(sv)
	}

	inset := 0
	if host != nil && host != top {
		if host.IsMdiContainer {
			inset = 1
		}
		menu = visibleChrome(host.MenuBar)
		status = visibleChrome(host.StatusBar)
	}

	menuRows, statusRows := 0, 0
	if menu != nil {
		menuRows = 1
	}
	if status != nil {
		statusRows = 1
	}

	nx = clampAxis(x, f.X, f.Width, inset, cols-inset)
	ny = clampAxis(y, f.Y, f.Height, menuRows+inset, rows-statusRows-inset)
	return nx, ny, menu, status
}

// clampAxis places a span of length size starting near want inside
// [lo, hi). pos is the current start of the span; it only limits a
// span that overflowed hi.
func clampAxis(want, pos, size, lo, hi int) int {
	n := max(want, lo)
	n = min(n, hi)
	if n+size > hi {
		n = max(hi-size, lo)
		if n > pos+size {
			n = max(pos+size, lo)
		}
	}
	return n
}

// viewportHost returns the toplevel whose chrome limits windows placed
// on the console.
func (app *Application) viewportHost(top *Toplevel) *Toplevel {
	st := app.state
	if st == nil {
		return top
	}
	if st.mdiTop != nil {
		return st.mdiTop
	}
	if len(st.stack) > 0 {
		return st.stack[0].Toplevel
	}
	return top
}

func visibleChrome(v *view.View) *view.View {
	if v == nil || !v.Visible() {
		return nil
	}
	return v
}
