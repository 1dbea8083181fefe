package driver

import (
	"strings"
	"sync"

	"github.com/dshills/termstack/internal/core"
)

// NullDriver is an in-memory console. Posted events are queued and
// returned by PollEvent in order; output goes to a cell grid that can be
// inspected.
type NullDriver struct {
	mu        sync.Mutex
	width     int
	height    int
	cells     [][]core.Cell
	shows     int
	beeps     int
	suspended bool

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewNullDriver creates a null driver with the given dimensions.
func NewNullDriver(width, height int) *NullDriver {
	d := &NullDriver{
		width:  width,
		height: height,
		events: make(chan Event, 256),
		done:   make(chan struct{}),
	}
	d.cells = newGrid(width, height)
	return d
}

func newGrid(width, height int) [][]core.Cell {
	cells := make([][]core.Cell, height)
	for y := range cells {
		cells[y] = make([]core.Cell, width)
		for x := range cells[y] {
			cells[y][x] = core.EmptyCell()
		}
	}
	return cells
}

func (d *NullDriver) Init() error { return nil }

func (d *NullDriver) Shutdown() {
	d.closeOnce.Do(func() { close(d.done) })
}

func (d *NullDriver) Size() core.Size {
	d.mu.Lock()
	defer d.mu.Unlock()
	return core.Size{Width: d.width, Height: d.height}
}

// Resize changes the screen size, dropping its contents, and queues a
// resize event.
func (d *NullDriver) Resize(width, height int) error {
	d.mu.Lock()
	d.width, d.height = width, height
	d.cells = newGrid(width, height)
	d.mu.Unlock()
	return d.PostEvent(ResizeEvent(width, height))
}

func (d *NullDriver) PollEvent() Event {
	// Events queued before Shutdown are still delivered.
	select {
	case ev := <-d.events:
		return ev
	default:
	}
	select {
	case ev := <-d.events:
		return ev
	case <-d.done:
		return Event{Type: EventNone}
	}
}

func (d *NullDriver) PostEvent(ev Event) error {
	select {
	case <-d.done:
		return ErrClosed
	default:
	}
	select {
	case d.events <- ev:
		return nil
	default:
		return ErrQueueFull
	}
}

// Pending returns the number of queued events.
func (d *NullDriver) Pending() int {
	return len(d.events)
}

func (d *NullDriver) SetCell(x, y int, c core.Cell) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return
	}
	d.cells[y][x] = c
}

// Cell returns the cell at (x, y), or an empty cell when out of range.
func (d *NullDriver) Cell(x, y int) core.Cell {
	d.mu.Lock()
	defer d.mu.Unlock()
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return core.EmptyCell()
	}
	return d.cells[y][x]
}

// Row returns the runes of row y as a string.
func (d *NullDriver) Row(y int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if y < 0 || y >= d.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range d.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

func (d *NullDriver) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cells = newGrid(d.width, d.height)
}

func (d *NullDriver) Show() {
	d.mu.Lock()
	d.shows++
	d.mu.Unlock()
}

// Shows returns how many times Show was called.
func (d *NullDriver) Shows() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shows
}

func (d *NullDriver) Beep() {
	d.mu.Lock()
	d.beeps++
	d.mu.Unlock()
}

// Beeps returns how many times Beep was called.
func (d *NullDriver) Beeps() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.beeps
}

func (d *NullDriver) Suspend() error {
	d.mu.Lock()
	d.suspended = true
	d.mu.Unlock()
	return nil
}

func (d *NullDriver) Resume() error {
	d.mu.Lock()
	d.suspended = false
	d.mu.Unlock()
	return nil
}

// Suspended reports whether the driver is suspended.
func (d *NullDriver) Suspended() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.suspended
}
