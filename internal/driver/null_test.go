package driver

import (
	"errors"
	"testing"
	"time"

	"github.com/dshills/termstack/internal/core"
	"github.com/dshills/termstack/internal/input/key"
	"github.com/dshills/termstack/internal/input/mouse"
)

func TestNullDriverSize(t *testing.T) {
	d := NewNullDriver(80, 24)
	if err := d.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if got := d.Size(); got != (core.Size{Width: 80, Height: 24}) {
		t.Errorf("Size() = %v, want 80x24", got)
	}
}

func TestNullDriverSetCell(t *testing.T) {
	d := NewNullDriver(10, 3)
	cell := core.NewCell('X', core.DefaultStyle().Bold())
	d.SetCell(2, 1, cell)

	if got := d.Cell(2, 1); got != cell {
		t.Errorf("Cell(2, 1) = %+v, want %+v", got, cell)
	}
	if got := d.Row(1); got != "  X       " {
		t.Errorf("Row(1) = %q", got)
	}

	// Out of range writes are ignored.
	d.SetCell(-1, 0, cell)
	d.SetCell(10, 0, cell)
	d.SetCell(0, 3, cell)
	if got := d.Row(0); got != "          " {
		t.Errorf("Row(0) = %q, want blank", got)
	}
	if got := d.Cell(-1, 0); got != core.EmptyCell() {
		t.Errorf("Cell(-1, 0) = %+v, want empty", got)
	}

	d.Clear()
	if got := d.Cell(2, 1); got != core.EmptyCell() {
		t.Errorf("after Clear, Cell(2, 1) = %+v", got)
	}
}

func TestNullDriverEventsInOrder(t *testing.T) {
	d := NewNullDriver(10, 3)
	events := []Event{
		KeyEvent(key.NewKey(key.F1)),
		MouseEvent(3, 4, mouse.Button1Pressed),
		InterruptEvent(),
	}
	for _, ev := range events {
		if err := d.PostEvent(ev); err != nil {
			t.Fatalf("PostEvent(%v) failed: %v", ev.Type, err)
		}
	}
	if d.Pending() != 3 {
		t.Errorf("Pending() = %d, want 3", d.Pending())
	}
	for i, want := range events {
		got := d.PollEvent()
		if got.Type != want.Type || got.Key != want.Key || got.Mouse != want.Mouse {
			t.Errorf("event %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestNullDriverResize(t *testing.T) {
	d := NewNullDriver(10, 3)
	if err := d.Resize(20, 5); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	ev := d.PollEvent()
	if ev.Type != EventResize || ev.Width != 20 || ev.Height != 5 {
		t.Errorf("PollEvent() = %+v, want resize 20x5", ev)
	}
	if got := d.Size(); got != (core.Size{Width: 20, Height: 5}) {
		t.Errorf("Size() = %v", got)
	}
}

func TestNullDriverShutdownUnblocksPoll(t *testing.T) {
	d := NewNullDriver(10, 3)
	done := make(chan Event)
	go func() { done <- d.PollEvent() }()

	d.Shutdown()
	select {
	case ev := <-done:
		if ev.Type != EventNone {
			t.Errorf("PollEvent() after Shutdown = %v, want none", ev.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("PollEvent did not return after Shutdown")
	}

	if err := d.PostEvent(InterruptEvent()); !errors.Is(err, ErrClosed) {
		t.Errorf("PostEvent after Shutdown = %v, want ErrClosed", err)
	}
	d.Shutdown()
}

func TestNullDriverQueueFull(t *testing.T) {
	d := NewNullDriver(1, 1)
	var err error
	for i := 0; i < 1000 && err == nil; i++ {
		err = d.PostEvent(InterruptEvent())
	}
	if !errors.Is(err, ErrQueueFull) {
		t.Errorf("PostEvent on a full queue = %v, want ErrQueueFull", err)
	}
}

func TestNullDriverCounters(t *testing.T) {
	d := NewNullDriver(1, 1)
	d.Show()
	d.Show()
	d.Beep()
	if d.Shows() != 2 || d.Beeps() != 1 {
		t.Errorf("Shows() = %d, Beeps() = %d, want 2, 1", d.Shows(), d.Beeps())
	}
	_ = d.Suspend()
	if !d.Suspended() {
		t.Error("Suspended() = false after Suspend")
	}
	_ = d.Resume()
	if d.Suspended() {
		t.Error("Suspended() = true after Resume")
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventNone, "none"},
		{EventKey, "key"},
		{EventMouse, "mouse"},
		{EventResize, "resize"},
		{EventInterrupt, "interrupt"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
