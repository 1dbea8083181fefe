package app

import (
	"context"

	"github.com/dshills/termstack/internal/core"
	"github.com/dshills/termstack/internal/driver"
	"github.com/dshills/termstack/internal/input/key"
	"github.com/dshills/termstack/internal/input/mouse"
)

// startPolling starts the goroutine that reads the driver.
func (app *Application) startPolling() {
	app.pollOnce.Do(func() {
		go app.pollEvents()
	})
}

// pollEvents forwards driver events to the main loop until the driver
// or the application shuts down.
func (app *Application) pollEvents() {
	defer close(app.events)
	for {
		ev := app.driver.PollEvent()
		if ev.Type == driver.EventNone {
			return
		}
		select {
		case app.events <- ev:
		case <-app.done:
			return
		}
	}
}

// nextEvent returns the next driver event. Without wait it only takes
// an event that is already queued. ok is false when the wait ended
// without an event.
func (app *Application) nextEvent(ctx context.Context, wait bool) (ev driver.Event, ok bool, err error) {
	if !wait {
		select {
		case ev, open := <-app.events:
			if !open {
				return ev, false, ErrShutdown
			}
			return ev, true, nil
		default:
			return ev, false, nil
		}
	}

	select {
	case ev, open := <-app.events:
		if !open {
			return ev, false, ErrShutdown
		}
		return ev, true, nil
	case <-app.wake:
		return ev, false, nil
	case <-ctx.Done():
		return ev, false, ctx.Err()
	case <-app.done:
		return ev, false, ErrShutdown
	}
}

// handleEvent dispatches one driver event.
func (app *Application) handleEvent(ev driver.Event) {
	switch ev.Type {
	case driver.EventKey:
		ke := key.NewEvent(ev.Key)
		if !ev.Time.IsZero() {
			ke.Timestamp = ev.Time
		}
		app.ProcessKeyEvent(ke)

	case driver.EventMouse:
		me := mouse.Event{
			X:         ev.Mouse.X,
			Y:         ev.Mouse.Y,
			ScreenX:   ev.Mouse.X,
			ScreenY:   ev.Mouse.Y,
			Flags:     ev.Mouse.Flags,
			Timestamp: ev.Time,
		}
		app.ProcessMouseEvent(me)

	case driver.EventResize:
		app.handleResize(ev.Width, ev.Height)

	case driver.EventInterrupt:
		app.signal()
	}
}

// handleResize resizes the toplevels that fill the console.
func (app *Application) handleResize(width, height int) {
	app.logger.Debug("resize %dx%d", width, height)
	if st := app.state; st != nil {
		for _, t := range st.zOrder() {
			if t.fill && t.Superview() == nil {
				t.SetFrame(core.Rect{Width: width, Height: height})
			}
		}
	}
	app.needsRedraw = true
}

// Refresh clears the console and redraws everything on the next
// iteration.
func (app *Application) Refresh() {
	app.needsRedraw = true
	app.signal()
}

// redraw paints the root toplevels back to front when anything needs
// display.
func (app *Application) redraw() {
	st := app.state
	if st == nil {
		return
	}
	order := st.zOrder()
	dirty := app.needsRedraw
	for _, t := range order {
		if t.NeedsDisplay() {
			dirty = true
			break
		}
	}
	if !dirty {
		return
	}

	if app.needsRedraw {
		app.driver.Clear()
	}
	for i := len(order) - 1; i >= 0; i-- {
		if t := order[i]; t.Superview() == nil {
			t.Draw(app.driver)
		}
	}
	app.driver.Show()
	app.needsRedraw = false
	app.metrics.RecordRedraw()
}

// reapStopped ends MDI children that stopped without a Run of their own
// to end them.
func (app *Application) reapStopped() {
	st := app.state
	if st == nil {
		return
	}
	var stopped []*RunState
	for _, rs := range st.mdiChildren {
		if !rs.Toplevel.Running && !rs.looping {
			stopped = append(stopped, rs)
		}
	}
	for _, rs := range stopped {
		if err := app.End(rs); err != nil {
			app.logger.Error("end stopped child %s: %v", rs.Toplevel.View, err)
		}
	}
}
