package driver

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termstack/internal/core"
)

// Terminal implements Driver using tcell.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex

	// buttons is the button state of the previous mouse event. Only
	// PollEvent touches it.
	buttons tcell.ButtonMask
}

// NewTerminal creates a terminal driver for the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen creates a terminal driver over an existing
// screen, such as a tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() core.Size {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, h := t.screen.Size()
	return core.Size{Width: w, Height: h}
}

// PollEvent waits for the next event tcell reports that the runtime
// understands. Paste and focus events are skipped.
func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventNone}
		}
		if out, ok := t.convertEvent(ev); ok {
			return out
		}
	}
}

// postedEvent carries an Event through tcell's queue unchanged.
type postedEvent struct {
	tcell.EventTime
	ev Event
}

func (t *Terminal) PostEvent(ev Event) error {
	pe := &postedEvent{ev: ev}
	if ev.Time.IsZero() {
		pe.SetEventNow()
	} else {
		pe.SetEventTime(ev.Time)
	}
	if err := t.screen.PostEvent(pe); err != nil {
		return ErrQueueFull
	}
	return nil
}

func (t *Terminal) SetCell(x, y int, c core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, c.Rune, nil, convertStyle(c.Style))
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep() // best-effort; terminal may not support beep
}

func (t *Terminal) Suspend() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Suspend()
}

func (t *Terminal) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Resume()
}

func (t *Terminal) convertEvent(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *postedEvent:
		return e.ev, true

	case *tcell.EventKey:
		k := convertKey(e)
		if !k.IsValid() {
			return Event{}, false
		}
		return Event{Type: EventKey, Key: k, Time: e.When()}, true

	case *tcell.EventMouse:
		x, y := e.Position()
		buttons := e.Buttons()
		flags := convertMouse(t.buttons, buttons, e.Modifiers())
		t.buttons = buttons &^ wheelMask
		return Event{
			Type:  EventMouse,
			Mouse: MouseInput{X: x, Y: y, Flags: flags},
			Time:  e.When(),
		}, true

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h, Time: e.When()}, true

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Time: e.When()}, true

	default:
		return Event{}, false
	}
}
