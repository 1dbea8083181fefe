package app

import (
	"context"
	"time"

	"github.com/dshills/termstack/internal/core"
)

// Begin starts top: it becomes Current (or, when an MDI container is
// active and top is neither modal nor a container, the front MDI
// child), and its Loaded and Ready handlers run. The returned run state
// must be passed to End exactly once.
func (app *Application) Begin(top *Toplevel) (*RunState, error) {
	if top == nil {
		return nil, ErrNilToplevel
	}
	select {
	case <-app.done:
		return nil, ErrShutdown
	default:
	}
	st := app.state
	if st != nil {
		if st.runStateOf(top) != nil {
			return nil, NewOperationError("begin", top.View.String(), ErrAlreadyRunning)
		}
		if top.IsMdiContainer && st.mdiTop != nil {
			return nil, NewOperationError("begin", top.View.String(), ErrMdiContainerActive).
				WithContext("active container " + st.mdiTop.View.String())
		}
	}
	if err := app.ensureDriver(); err != nil {
		return nil, err
	}
	if st == nil {
		st = newState()
		app.state = st
		app.logger.Debug("runtime state created")
	}

	child := st.mdiTop != nil && !top.Modal && !top.IsMdiContainer
	rs := newRunState(top, child)
	if child {
		st.mdiChildren = append([]*RunState{rs}, st.mdiChildren...)
	} else {
		st.stack = append(st.stack, rs)
	}
	if top.IsMdiContainer {
		st.mdiTop = top
	}

	top.app = app
	top.Running = true
	if top.Superview() == nil && top.Frame().IsEmpty() {
		size := app.driver.Size()
		top.SetFrame(core.Rect{Width: size.Width, Height: size.Height})
		top.fill = true
	}
	app.needsRedraw = true
	app.logger.Debug("begin %s modal=%t mdi=%t child=%t", top.View, top.Modal, top.IsMdiContainer, child)

	app.updateCurrent()
	top.fire(top.loaded)
	top.fire(top.ready)
	return rs, nil
}

// End finishes rs. Run states on the stack must end innermost first;
// MDI children may end in any order. Ending an MDI container ends its
// remaining children first. The last End releases the runtime state.
func (app *Application) End(rs *RunState) error {
	st := app.state
	if st == nil {
		return ErrNotRunning
	}
	if rs == nil {
		return NewOperationError("end", "", ErrRunStateMismatch)
	}
	top := rs.Toplevel

	if rs.mdiChild {
		i := st.mdiIndex(top)
		if i < 0 || st.mdiChildren[i] != rs {
			return NewOperationError("end", top.View.String(), ErrRunStateMismatch)
		}
		st.mdiChildren = append(st.mdiChildren[:i], st.mdiChildren[i+1:]...)
	} else {
		n := len(st.stack)
		if n == 0 || st.stack[n-1] != rs {
			return NewOperationError("end", top.View.String(), ErrRunStateMismatch)
		}
		if top == st.mdiTop {
			for len(st.mdiChildren) > 0 {
				child := st.mdiChildren[0]
				child.Toplevel.Running = false
				if err := app.End(child); err != nil {
					return err
				}
			}
			st.mdiTop = nil
		}
		st.stack = st.stack[:n-1]
	}

	top.Running = false
	top.drag.End()
	if !st.isLive(st.grabView) {
		st.grabView = nil
	}
	if !st.isLive(st.mouseOver) {
		st.mouseOver = nil
	}
	app.needsRedraw = true
	app.logger.Debug("end %s", top.View)

	app.updateCurrent()
	top.fire(top.unloaded)
	top.fire(top.closed)
	if rs.mdiChild && len(st.mdiChildren) == 0 && st.mdiTop != nil {
		st.mdiTop.fire(st.mdiTop.allChildClosed)
	}

	if st.empty() && app.state == st {
		app.state = nil
		app.synth.Reset()
		app.logger.Debug("runtime state released")
	}
	return nil
}

// updateCurrent recomputes Current and moves focus and activation to
// it.
func (app *Application) updateCurrent() {
	st := app.state
	prev := st.current
	next := st.computeCurrent()
	if next == prev {
		return
	}
	st.current = next
	app.needsRedraw = true

	if prev != nil {
		prev.RemoveFocus()
		if st.runStateOf(prev) != nil {
			prev.fireDeactivate(next)
		}
	}
	if next != nil {
		if !next.HasFocus() {
			next.SetFocus()
		}
		next.fireActivate(prev)
	}
}

// Run begins top, pumps events until top stops, and ends it. A Run
// called from an event handler nests: it returns when its own toplevel
// stops and the outer loop continues with the remaining events.
// Cancelling ctx stops top and makes Run return ctx.Err().
func (app *Application) Run(ctx context.Context, top *Toplevel) error {
	rs, err := app.Begin(top)
	if err != nil {
		return err
	}
	st := app.state
	rs.looping = true
	st.depth++
	app.metrics.RecordDepth(st.depth)

	var runErr error
	for top.Running {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		if err := app.RunIteration(ctx, true); err != nil {
			runErr = err
			break
		}
	}

	rs.looping = false
	st.depth--
	if app.state != st || st.runStateOf(top) != rs {
		// Ended elsewhere, e.g. by Shutdown.
		return runErr
	}
	top.Running = false
	if err := app.End(rs); err != nil {
		return err
	}
	return runErr
}

// RunIteration runs queued invocations, ends stopped MDI children,
// redraws, and dispatches at most one input event. With wait set it
// blocks until an event arrives, Invoke or RequestStop wakes it, or ctx
// is done.
func (app *Application) RunIteration(ctx context.Context, wait bool) error {
	start := time.Now()
	defer func() { app.metrics.RecordIteration(time.Since(start)) }()

	app.startPolling()
	app.runInvokes()
	app.reapStopped()
	app.redraw()

	ev, ok, err := app.nextEvent(ctx, wait)
	if err != nil {
		return err
	}
	if ok {
		app.handleEvent(ev)
	}
	return nil
}

// RequestStop stops a toplevel. A nil top stops Current. Unless an MDI
// container is active, any top is treated as Current. Stopping the MDI
// container first stops each child, front to back; a child that cancels
// its Closing aborts the whole stop.
func (app *Application) RequestStop(top *Toplevel) {
	st := app.state
	if st == nil {
		return
	}
	if top == nil || st.mdiTop == nil {
		top = st.current
	}
	if top == nil {
		return
	}
	if top == st.mdiTop {
		app.stopMdiContainer(top)
		return
	}
	app.stop(top, top)
}

// stop runs the Closing handlers of t and clears Running unless one of
// them cancels.
func (app *Application) stop(t, requesting *Toplevel) bool {
	if !t.Running {
		return true
	}
	ev := &ClosingEvent{Requesting: requesting}
	if !t.fireClosing(ev) {
		app.logger.Debug("stop of %s cancelled", t.View)
		return false
	}
	t.Running = false
	app.logger.Debug("stop %s", t.View)
	if st := app.state; st != nil && st.mdiIndex(t) > 0 {
		app.moveChildToFront(st.mdiIndex(t))
	}
	app.signal()
	return true
}

func (app *Application) stopMdiContainer(container *Toplevel) {
	children := append([]*RunState(nil), app.state.mdiChildren...)
	for _, rs := range children {
		if !app.stop(rs.Toplevel, container) {
			return
		}
	}
	app.stop(container, container)
}
