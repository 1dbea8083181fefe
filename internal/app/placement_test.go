package app

import (
	"testing"

	"github.com/dshills/termstack/internal/core"
	"github.com/dshills/termstack/internal/view"
)

func withBars(top *Toplevel) *Toplevel {
	top.MenuBar = view.New(view.WithFrame(core.NewRect(0, 0, 20, 1)))
	top.StatusBar = view.New(view.WithFrame(core.NewRect(0, 19, 20, 1)))
	top.Add(top.MenuBar, top.StatusBar)
	return top
}

func TestEnsureVisibleBounds(t *testing.T) {
	tests := []struct {
		name       string
		mdi        bool
		x, y       int
		wantX      int
		wantY      int
		wantChrome bool
	}{
		{"origin below menu", false, 0, 0, 0, 1, true},
		{"far corner limited by frame", false, 100, 40, 8, 7, true},
		{"inside", false, 3, 4, 3, 4, true},
		{"valid move kept", false, 10, 5, 10, 5, true},
		{"mdi valid move kept", true, 10, 5, 10, 5, true},
		{"mdi origin inset", true, 0, 0, 1, 2, true},
		{"mdi far corner", true, 100, 40, 8, 7, true},
		{"negative", false, -5, -5, 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, 20, 20)
			root := withBars(titled("root"))
			root.IsMdiContainer = tt.mdi
			mustBegin(t, app, root)

			win := NewWindow("win", view.WithFrame(core.NewRect(0, 0, 8, 7)))
			mustBegin(t, app, win)
			if app.IsMdiChild(win) != tt.mdi {
				t.Fatalf("IsMdiChild() = %v", app.IsMdiChild(win))
			}

			x, y, menu, status := app.EnsureVisibleBounds(win, tt.x, tt.y)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("EnsureVisibleBounds(%d, %d) = (%d, %d), want (%d, %d)",
					tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
			if (menu == root.MenuBar && status == root.StatusBar) != tt.wantChrome {
				t.Errorf("menu = %v, status = %v", menu, status)
			}
		})
	}
}

func TestEnsureVisibleBoundsHiddenChrome(t *testing.T) {
	app, _ := newTestApp(t, 20, 20)
	root := withBars(titled("root"))
	root.MenuBar.SetVisible(false)
	mustBegin(t, app, root)
	win := NewWindow("win", view.WithFrame(core.NewRect(0, 0, 8, 7)))
	mustBegin(t, app, win)

	x, y, menu, status := app.EnsureVisibleBounds(win, 0, 0)
	if x != 0 || y != 0 || menu != nil || status != root.StatusBar {
		t.Errorf("got (%d, %d) menu=%v status=%v", x, y, menu, status)
	}

	// The host's own chrome does not limit the host.
	_, y, menu, status = app.EnsureVisibleBounds(root, 0, 0)
	if y != 0 || menu != nil || status != nil {
		t.Errorf("root: y = %d menu=%v status=%v", y, menu, status)
	}
}

func TestEnsureVisibleBoundsSubview(t *testing.T) {
	app, _ := newTestApp(t, 40, 20)
	root := titled("root")
	panel := view.New(view.WithBorder(), view.WithFrame(core.NewRect(2, 2, 12, 10)))
	root.Add(panel)
	inner := NewWindow("inner", view.WithFrame(core.NewRect(1, 1, 4, 3)))
	panel.Add(inner.View)
	mustBegin(t, app, root)

	// Panel content is 10x8.
	x, y, _, _ := app.EnsureVisibleBounds(inner, 100, 100)
	if x != 5 || y != 4 {
		t.Errorf("got (%d, %d), want (5, 4)", x, y)
	}
	x, y, _, _ = app.EnsureVisibleBounds(inner, 3, 2)
	if x != 3 || y != 2 {
		t.Errorf("got (%d, %d), want (3, 2)", x, y)
	}
}

func TestEnsureVisibleBoundsCombinations(t *testing.T) {
	sizes := []core.Size{{Width: 10, Height: 10}, {Width: 14, Height: 12}, {Width: 20, Height: 20}, {Width: 33, Height: 25}, {Width: 80, Height: 40}}
	const w, h = 8, 7

	for _, size := range sizes {
		for _, mdi := range []bool{false, true} {
			for _, menuShown := range []bool{false, true} {
				for _, statusShown := range []bool{false, true} {
					app, _ := newTestApp(t, size.Width, size.Height)
					root := withBars(titled("root"))
					root.IsMdiContainer = mdi
					root.MenuBar.SetVisible(menuShown)
					root.StatusBar.SetVisible(statusShown)
					mustBegin(t, app, root)
					win := NewWindow("win", view.WithFrame(core.NewRect(2, 3, w, h)))
					mustBegin(t, app, win)

					menuRows, statusRows, inset := 0, 0, 0
					if menuShown {
						menuRows = 1
					}
					if statusShown {
						statusRows = 1
					}
					if mdi {
						inset = 1
					}
					fits := h <= size.Height-menuRows-statusRows-2*inset

					for x := -4; x <= size.Width+4; x++ {
						for y := -4; y <= size.Height+4; y++ {
							nx, ny, _, _ := app.EnsureVisibleBounds(win, x, y)
							if nx < 0 || nx+w > size.Width || ny < menuRows {
								t.Fatalf("%v mdi=%v menu=%v status=%v: EnsureVisibleBounds(%d, %d) = (%d, %d)",
									size, mdi, menuShown, statusShown, x, y, nx, ny)
							}
							if fits && ny+h > size.Height-statusRows {
								t.Fatalf("%v mdi=%v menu=%v status=%v: EnsureVisibleBounds(%d, %d) = (%d, %d) covers the status row",
									size, mdi, menuShown, statusShown, x, y, nx, ny)
							}
						}
					}
				}
			}
		}
	}
}

func TestClampAxisKeepsFittingPosition(t *testing.T) {
	for hi := 1; hi <= 12; hi++ {
		for size := 1; size <= hi; size++ {
			for lo := 0; lo <= 2 && lo <= hi-size; lo++ {
				for pos := lo; pos <= hi; pos++ {
					for want := lo; want <= hi-size; want++ {
						if got := clampAxis(want, pos, size, lo, hi); got != want {
							t.Fatalf("clampAxis(%d, %d, %d, %d, %d) = %d, want %d",
								want, pos, size, lo, hi, got, want)
						}
					}
				}
			}
		}
	}
}

func TestClampAxisStaysInRange(t *testing.T) {
	for hi := 1; hi <= 12; hi++ {
		for size := 1; size <= 14; size++ {
			for lo := 0; lo <= 2 && lo < hi; lo++ {
				for pos := lo; pos <= hi; pos++ {
					for want := -3; want <= hi+3; want++ {
						got := clampAxis(want, pos, size, lo, hi)
						upper := max(hi-size, lo)
						if got < lo || got > upper {
							t.Fatalf("clampAxis(%d, %d, %d, %d, %d) = %d, want in [%d, %d]",
								want, pos, size, lo, hi, got, lo, upper)
						}
					}
				}
			}
		}
	}
}
