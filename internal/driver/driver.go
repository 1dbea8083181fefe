// Package driver abstracts the console the runtime draws to and reads
// input from.
//
// Two drivers are provided: Terminal, backed by tcell, and NullDriver, an
// in-memory console used by tests and headless runs.
package driver

import (
	"errors"
	"time"

	"github.com/dshills/termstack/internal/core"
	"github.com/dshills/termstack/internal/input/key"
	"github.com/dshills/termstack/internal/input/mouse"
)

// Errors returned by drivers.
var (
	ErrClosed    = errors.New("driver: closed")
	ErrQueueFull = errors.New("driver: event queue full")
)

// EventType identifies the type of console event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	// EventInterrupt wakes a blocked PollEvent without carrying input.
	EventInterrupt
)

func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventInterrupt:
		return "interrupt"
	default:
		return "none"
	}
}

// MouseInput is the raw mouse state of a mouse event in screen
// coordinates.
type MouseInput struct {
	X     int
	Y     int
	Flags mouse.Flags
}

// Event is one console event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Key

	// Mouse is set for EventMouse.
	Mouse MouseInput

	// Width and Height are set for EventResize.
	Width, Height int

	Time time.Time
}

// KeyEvent returns a key event for k.
func KeyEvent(k key.Key) Event {
	return Event{Type: EventKey, Key: k, Time: time.Now()}
}

// MouseEvent returns a mouse event at screen position (x, y).
func MouseEvent(x, y int, flags mouse.Flags) Event {
	return Event{Type: EventMouse, Mouse: MouseInput{X: x, Y: y, Flags: flags}, Time: time.Now()}
}

// ResizeEvent returns a resize event.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height, Time: time.Now()}
}

// InterruptEvent returns an interrupt event.
func InterruptEvent() Event {
	return Event{Type: EventInterrupt, Time: time.Now()}
}

// Driver is a character-grid console.
//
// PollEvent blocks until an event is available and returns an event of
// type EventNone once the driver has been shut down. PostEvent may be
// called from any goroutine. The output methods are only called from the
// main loop.
type Driver interface {
	// Init prepares the console for use.
	Init() error

	// Shutdown restores the console. PollEvent unblocks.
	Shutdown()

	// Size returns the console size in cells.
	Size() core.Size

	// PollEvent waits for the next event.
	PollEvent() Event

	// PostEvent queues an event as if it came from the console.
	PostEvent(ev Event) error

	// SetCell sets the cell at (x, y). Out of range coordinates are
	// ignored.
	SetCell(x, y int, c core.Cell)

	// Clear blanks the screen.
	Clear()

	// Show flushes pending output.
	Show()

	// Beep rings the bell.
	Beep()

	// Suspend gives the console back to the shell.
	Suspend() error

	// Resume takes the console back after Suspend.
	Resume() error
}
