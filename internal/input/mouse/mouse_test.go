package mouse

import (
	"testing"
	"time"
)

func TestButtonFlagLayout(t *testing.T) {
	tests := []struct {
		button, offset int
		want           Flags
	}{
		{1, offPressed, Button1Pressed},
		{1, offTripleClicked, Button1TripleClicked},
		{2, offReleased, Button2Released},
		{3, offDoubleClicked, Button3DoubleClicked},
		{4, offClicked, Button4Clicked},
	}

	for _, tt := range tests {
		if got := buttonFlag(tt.button, tt.offset); got != tt.want {
			t.Errorf("buttonFlag(%d, %d) = %v, want %v", tt.button, tt.offset, got, tt.want)
		}
	}
}

func TestFlagsPredicates(t *testing.T) {
	f := Button1Pressed | ButtonCtrl

	if !f.IsPressed() || f.IsReleased() || f.IsClicked() || f.IsWheel() {
		t.Errorf("predicates wrong for %v", f)
	}
	if f.WithoutModifiers() != Button1Pressed {
		t.Errorf("WithoutModifiers() = %v", f.WithoutModifiers())
	}
	if got := f.String(); got != "Button1Pressed|ButtonCtrl" {
		t.Errorf("String() = %q", got)
	}
	if Flags(0).String() != "None" {
		t.Errorf("String() of zero = %q", Flags(0).String())
	}
}

func press(x, y int, ts time.Time) Event {
	return Event{X: x, Y: y, ScreenX: x, ScreenY: y, Flags: Button1Pressed, Timestamp: ts}
}

func release(x, y int, ts time.Time) Event {
	return Event{X: x, Y: y, ScreenX: x, ScreenY: y, Flags: Button1Released, Timestamp: ts}
}

func TestSynthesizerClicks(t *testing.T) {
	s := NewSynthesizer(DefaultConfig())
	base := time.Now()

	want := []Flags{Button1Clicked, Button1DoubleClicked, Button1TripleClicked, Button1Clicked}
	for i, w := range want {
		ts := base.Add(time.Duration(i) * 100 * time.Millisecond)
		if got := s.Process(press(3, 3, ts)); got.Flags != Button1Pressed {
			t.Fatalf("press %d flags = %v", i, got.Flags)
		}
		got := s.Process(release(3, 3, ts.Add(10*time.Millisecond)))
		if !got.Flags.Has(w) {
			t.Errorf("release %d flags = %v, want %v", i, got.Flags, w)
		}
	}
}

func TestSynthesizerSlowClicks(t *testing.T) {
	s := NewSynthesizer(DefaultConfig())
	base := time.Now()

	s.Process(press(0, 0, base))
	s.Process(release(0, 0, base))
	s.Process(press(0, 0, base.Add(time.Second)))
	got := s.Process(release(0, 0, base.Add(time.Second)))
	if !got.Flags.Has(Button1Clicked) || got.Flags.Has(Button1DoubleClicked) {
		t.Errorf("flags = %v, want single click", got.Flags)
	}
}

func TestSynthesizerDragIsNotClick(t *testing.T) {
	s := NewSynthesizer(DefaultConfig())
	now := time.Now()

	s.Process(press(0, 0, now))
	got := s.Process(release(10, 0, now))
	if got.Flags.IsClicked() {
		t.Errorf("flags = %v, drag should not click", got.Flags)
	}
}

func TestSynthesizerSequenceBreaks(t *testing.T) {
	base := time.Now()
	at := func(ms int) time.Time { return base.Add(time.Duration(ms) * time.Millisecond) }

	tests := []struct {
		name   string
		events []Event
		want   Flags
	}{
		{"moved away", []Event{press(0, 0, at(0)), release(0, 0, at(0)), press(5, 0, at(50)), release(5, 0, at(50))}, Button1Clicked},
		{"within distance", []Event{press(0, 0, at(0)), release(0, 0, at(0)), press(1, 0, at(50)), release(1, 0, at(50))}, Button1DoubleClicked},
		{"clock skew", []Event{press(0, 0, at(100)), release(0, 0, at(100)), press(0, 0, at(0)), release(0, 0, at(0))}, Button1Clicked},
		{"drag between", []Event{press(0, 0, at(0)), release(0, 0, at(0)), press(0, 0, at(10)), release(9, 0, at(10)), press(0, 0, at(20)), release(0, 0, at(20))}, Button1Clicked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSynthesizer(DefaultConfig())
			var got Event
			for _, ev := range tt.events {
				got = s.Process(ev)
			}
			if got.Flags.WithoutModifiers() != Button1Released|tt.want {
				t.Errorf("last release flags = %v, want %v", got.Flags, Button1Released|tt.want)
			}
		})
	}
}

func TestSynthesizerButtonsAreIndependent(t *testing.T) {
	s := NewSynthesizer(DefaultConfig())
	now := time.Now()

	s.Process(press(2, 2, now))
	s.Process(release(2, 2, now))
	s.Process(Event{ScreenX: 2, ScreenY: 2, Flags: Button2Pressed, Timestamp: now})
	got := s.Process(Event{ScreenX: 2, ScreenY: 2, Flags: Button2Released, Timestamp: now})
	if !got.Flags.Has(Button2Clicked) {
		t.Errorf("button 2 flags = %v, want Button2Clicked", got.Flags)
	}
	s.Process(press(2, 2, now))
	if got := s.Process(release(2, 2, now)); !got.Flags.Has(Button1DoubleClicked) {
		t.Errorf("button 1 flags = %v, want Button1DoubleClicked", got.Flags)
	}

	s.Reset()
	s.Process(press(2, 2, now))
	if got := s.Process(release(2, 2, now)); !got.Flags.Has(Button1Clicked) {
		t.Errorf("after Reset flags = %v, want Button1Clicked", got.Flags)
	}
}

func TestSynthesizerReleaseWithoutPress(t *testing.T) {
	s := NewSynthesizer(DefaultConfig())
	got := s.Process(release(1, 1, time.Now()))
	if got.Flags != Button1Released {
		t.Errorf("flags = %v, want Button1Released", got.Flags)
	}
}

func TestDrag(t *testing.T) {
	var d Drag
	if d.Active() {
		t.Fatal("zero Drag should be inactive")
	}

	d.Start(Position{X: 10, Y: 5}, Position{X: 4, Y: 2})
	got := d.Update(Position{X: 13, Y: 4})
	if got != (Position{X: 7, Y: 1}) {
		t.Errorf("Update() = %v, want {7 1}", got)
	}

	d.End()
	if d.Active() {
		t.Error("Drag should be inactive after End")
	}
}
