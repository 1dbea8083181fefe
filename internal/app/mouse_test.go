package app

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/dshills/termstack/internal/core"
	"github.com/dshills/termstack/internal/input/mouse"
	"github.com/dshills/termstack/internal/view"
)

func mouseAt(x, y int, flags mouse.Flags) mouse.Event {
	return mouse.Event{X: x, Y: y, ScreenX: x, ScreenY: y, Flags: flags}
}

type mouseLog struct {
	events []string
	handle bool
}

func (l *mouseLog) responder(name string) view.Responder {
	return view.ResponderFuncs{
		Mouse: func(ev *view.MouseEvent) bool {
			l.events = append(l.events, fmt.Sprintf("%s:mouse@%d,%d", name, ev.X, ev.Y))
			return l.handle
		},
		MouseEnter: func(*view.MouseEvent) bool {
			l.events = append(l.events, name+":enter")
			return false
		},
		MouseLeave: func(*view.MouseEvent) bool {
			l.events = append(l.events, name+":leave")
			return false
		},
	}
}

func TestMouseGrab(t *testing.T) {
	app, _ := newTestApp(t, 20, 10)
	log := &mouseLog{handle: true}
	a := view.New(view.WithFrame(core.NewRect(0, 0, 5, 5)), view.WithResponder(log.responder("a")))
	root := titled("root")
	root.Add(a)

	if app.GrabMouse(a) {
		t.Fatal("GrabMouse() before Begin = true")
	}
	mustBegin(t, app, root)
	if !app.GrabMouse(a) || app.MouseGrabView() != a {
		t.Fatal("GrabMouse() failed")
	}

	app.ProcessMouseEvent(mouseAt(15, 8, mouse.ReportMousePosition))
	app.ProcessMouseEvent(mouseAt(16, 8, mouse.Button1Released))
	want := []string{"a:mouse@15,8", "a:mouse@16,8"}
	if !reflect.DeepEqual(log.events, want) {
		t.Errorf("events = %v, want %v", log.events, want)
	}
	if app.MouseGrabView() != nil {
		t.Error("release should ungrab")
	}

	app.GrabMouse(a)
	root.Remove(a)
	if app.MouseGrabView() != nil {
		t.Error("grab of a detached view should be dropped")
	}
}

func TestMouseEnterLeave(t *testing.T) {
	app, _ := newTestApp(t, 20, 10)
	log := &mouseLog{handle: true}
	a := view.New(view.WithFrame(core.NewRect(0, 0, 5, 5)), view.WithResponder(log.responder("a")))
	b := view.New(view.WithFrame(core.NewRect(10, 0, 5, 5)), view.WithResponder(log.responder("b")))
	root := titled("root")
	root.Add(a, b)
	mustBegin(t, app, root)

	for _, p := range []core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 11, Y: 1}, {X: 1, Y: 1}} {
		app.ProcessMouseEvent(mouseAt(p.X, p.Y, mouse.ReportMousePosition))
	}
	want := []string{
		"a:enter", "a:mouse@1,1",
		"a:mouse@2,1",
		"a:leave", "b:enter", "b:mouse@1,1",
		"b:leave", "a:enter", "a:mouse@1,1",
	}
	if !reflect.DeepEqual(log.events, want) {
		t.Errorf("events =\n%v\nwant\n%v", log.events, want)
	}
	if got := app.Metrics().Snapshot().MouseEvents; got != 4 {
		t.Errorf("MouseEvents = %d, want 4", got)
	}
}

func TestMouseBubblesAndFocuses(t *testing.T) {
	app, _ := newTestApp(t, 20, 10)
	inner := &mouseLog{}
	outer := &mouseLog{handle: true}
	a := view.New(view.WithCanFocus(), view.WithFrame(core.NewRect(0, 0, 5, 5)))
	b := view.New(view.WithCanFocus(), view.WithFrame(core.NewRect(6, 2, 5, 5)), view.WithResponder(inner.responder("b")))
	root := titled("root", view.WithResponder(outer.responder("root")))
	root.Add(a, b)
	mustBegin(t, app, root)
	if !a.HasFocus() {
		t.Fatal("a should start focused")
	}

	if !app.ProcessMouseEvent(mouseAt(7, 3, mouse.Button1Pressed)) {
		t.Error("ProcessMouseEvent() = false, want root to handle the bubbled event")
	}
	if !b.HasFocus() || a.HasFocus() {
		t.Error("press should focus the view under the pointer")
	}
	if want := []string{"b:enter", "b:mouse@1,1"}; !reflect.DeepEqual(inner.events, want) {
		t.Errorf("b events = %v, want %v", inner.events, want)
	}
	if want := []string{"root:mouse@7,3"}; !reflect.DeepEqual(outer.events, want) {
		t.Errorf("root events = %v, want %v", outer.events, want)
	}
}

func TestMouseClickBringsChildToFront(t *testing.T) {
	app, _ := newTestApp(t, 20, 10)
	mustBegin(t, app, newMdiContainer("mdi"))
	c1 := titled("c1", view.WithFrame(core.NewRect(0, 0, 10, 5)))
	c2 := titled("c2", view.WithFrame(core.NewRect(5, 2, 10, 5)))
	mustBegin(t, app, c1)
	mustBegin(t, app, c2)

	tests := []struct {
		x, y int
		want *Toplevel
	}{
		{1, 1, c1},
		{7, 3, c1},
		{13, 6, c2},
		{7, 3, c2},
	}
	for _, tt := range tests {
		app.ProcessMouseEvent(mouseAt(tt.x, tt.y, mouse.Button1Pressed))
		app.ProcessMouseEvent(mouseAt(tt.x, tt.y, mouse.Button1Released))
		if app.Current() != tt.want {
			t.Errorf("click at (%d, %d): Current() = %v, want %v", tt.x, tt.y, app.Current(), tt.want)
		}
	}
}

func TestMouseClickBringsNestedChildToFront(t *testing.T) {
	app, _ := newTestApp(t, 20, 10)
	mdi := newMdiContainer("mdi")
	c1 := titled("c1", view.WithFrame(core.NewRect(0, 0, 10, 5)))
	c2 := titled("c2", view.WithFrame(core.NewRect(8, 3, 10, 5)))
	mdi.Add(c1.View, c2.View)
	mustBegin(t, app, mdi)
	mustBegin(t, app, c1)
	mustBegin(t, app, c2)

	if got := app.MdiChildren(); !reflect.DeepEqual(got, []*Toplevel{c2, c1}) {
		t.Fatalf("MdiChildren() = %v, want [c2 c1]", got)
	}
	// Screen (3, 3) lies inside c1 only.
	app.ProcessMouseEvent(mouseAt(3, 3, mouse.Button1Pressed))
	app.ProcessMouseEvent(mouseAt(3, 3, mouse.Button1Released))
	if got := app.MdiChildren(); !reflect.DeepEqual(got, []*Toplevel{c1, c2}) {
		t.Errorf("MdiChildren() after click = %v, want [c1 c2]", got)
	}
	if app.Current() != c1 {
		t.Errorf("Current() = %v, want c1", app.Current())
	}
}

func TestMouseModalBlocksBelow(t *testing.T) {
	app, _ := newTestApp(t, 20, 10)
	below := &mouseLog{handle: true}
	dlgLog := &mouseLog{handle: true}
	mustBegin(t, app, titled("root", view.WithResponder(below.responder("root"))))
	dlg := titled("dlg", view.WithFrame(core.NewRect(5, 2, 6, 4)), view.WithResponder(dlgLog.responder("dlg")))
	dlg.Modal = true
	mustBegin(t, app, dlg)

	if app.ProcessMouseEvent(mouseAt(0, 0, mouse.Button1Pressed)) {
		t.Error("press outside the modal was handled")
	}
	if !app.ProcessMouseEvent(mouseAt(6, 3, mouse.Button1Pressed)) {
		t.Error("press inside the modal was not handled")
	}
	for _, e := range below.events {
		if e != "root:leave" && e != "root:enter" {
			t.Errorf("toplevel below the modal got %q", e)
		}
	}
	if len(dlgLog.events) == 0 {
		t.Error("modal got no events")
	}
}

func TestWindowDrag(t *testing.T) {
	app, _ := newTestApp(t, 20, 10)
	mustBegin(t, app, titled("root"))
	win := NewWindow("win", view.WithFrame(core.NewRect(2, 2, 8, 5)))
	mustBegin(t, app, win)

	if !app.ProcessMouseEvent(mouseAt(3, 2, mouse.Button1Pressed)) {
		t.Fatal("press on the title row was not handled")
	}
	if app.MouseGrabView() != win.View {
		t.Fatal("drag should grab the mouse")
	}

	steps := []struct {
		x, y int
		want core.Rect
	}{
		{5, 4, core.NewRect(4, 4, 8, 5)},
		{100, 100, core.NewRect(12, 5, 8, 5)},
	}
	for _, s := range steps {
		app.ProcessMouseEvent(mouseAt(s.x, s.y, mouse.ReportMousePosition))
		if win.Frame() != s.want {
			t.Errorf("move to (%d, %d): frame = %v, want %v", s.x, s.y, win.Frame(), s.want)
		}
	}

	app.ProcessMouseEvent(mouseAt(17, 9, mouse.Button1Released))
	if app.MouseGrabView() != nil {
		t.Error("release should end the drag")
	}
	before := win.Frame()
	app.ProcessMouseEvent(mouseAt(1, 1, mouse.ReportMousePosition))
	if win.Frame() != before {
		t.Error("motion after release moved the window")
	}
}

func TestWindowDragNeedsTitleRow(t *testing.T) {
	app, _ := newTestApp(t, 20, 10)
	mustBegin(t, app, titled("root"))
	win := NewWindow("win", view.WithFrame(core.NewRect(2, 2, 8, 5)))
	mustBegin(t, app, win)

	app.ProcessMouseEvent(mouseAt(4, 4, mouse.Button1Pressed))
	if app.MouseGrabView() != nil {
		t.Error("press below the title row started a drag")
	}
}
