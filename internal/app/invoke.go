package app

import "runtime/debug"

// Invoke queues fn to run on the main loop goroutine at the start of
// the next iteration and wakes a loop waiting for input. It is safe to
// call from any goroutine. A panic in fn is recovered and logged.
func (app *Application) Invoke(fn func()) {
	if fn == nil {
		return
	}
	app.invokeMu.Lock()
	app.invokes = append(app.invokes, fn)
	app.invokeMu.Unlock()
	app.signal()
}

// PendingInvokes returns the number of queued invocations.
func (app *Application) PendingInvokes() int {
	app.invokeMu.Lock()
	defer app.invokeMu.Unlock()
	return len(app.invokes)
}

// signal wakes a waiting RunIteration.
func (app *Application) signal() {
	select {
	case app.wake <- struct{}{}:
	default:
	}
}

// runInvokes runs the invocations queued so far. Invocations queued
// while they run wait for the next iteration.
func (app *Application) runInvokes() {
	app.invokeMu.Lock()
	queue := app.invokes
	app.invokes = nil
	app.invokeMu.Unlock()

	for _, fn := range queue {
		app.safeInvoke(fn)
	}
}

func (app *Application) safeInvoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			err := NewRecoveredPanicError(r, string(debug.Stack()))
			app.metrics.RecordPanic()
			app.logger.Error("invoke: %v", err)
		}
	}()
	app.metrics.RecordInvocation()
	fn()
}
