// Package app provides the Application runtime: the stack of running
// toplevels, modal and MDI lifecycles, input routing and the main loop.
package app

import (
	"sync"

	"github.com/dshills/termstack/internal/command"
	"github.com/dshills/termstack/internal/driver"
	"github.com/dshills/termstack/internal/input/key"
	"github.com/dshills/termstack/internal/input/keybinding"
	"github.com/dshills/termstack/internal/input/mouse"
	"github.com/dshills/termstack/internal/logging"
)

// DefaultQuitKey stops the current toplevel.
var DefaultQuitKey = key.NewKey(key.Q | key.CtrlMask)

// Options configures the application.
type Options struct {
	// Driver is the console. Required.
	Driver driver.Driver

	// Logger receives lifecycle and error messages. Defaults to
	// logging.Default().
	Logger *logging.Logger

	// QuitKey is bound to QuitToplevel. Defaults to DefaultQuitKey.
	QuitKey key.Key

	// Mouse configures click synthesis. Zero fields take defaults.
	Mouse mouse.Config
}

// Application coordinates the runtime. All methods except Invoke must
// be called from the goroutine running the main loop.
type Application struct {
	driver  driver.Driver
	logger  *logging.Logger
	metrics *Metrics
	quitKey key.Key

	keyBindings *keybinding.Bindings
	commands    map[command.Command]command.Handler
	synth       *mouse.Synthesizer

	state       *State
	driverReady bool
	needsRedraw bool

	// suspendProcess stops the process after the driver is suspended.
	suspendProcess func() error

	invokeMu sync.Mutex
	invokes  []func()
	wake     chan struct{}

	events   chan driver.Event
	pollOnce sync.Once
	done     chan struct{}
	shutdown sync.Once
}

// New creates an application.
func New(opts Options) (*Application, error) {
	if opts.Driver == nil {
		return nil, ErrNoDriver
	}
	if !opts.QuitKey.IsValid() {
		opts.QuitKey = DefaultQuitKey
	}
	mc := mouse.DefaultConfig()
	if opts.Mouse.DoubleClickTime > 0 {
		mc.DoubleClickTime = opts.Mouse.DoubleClickTime
	}
	if opts.Mouse.DoubleClickDistance > 0 {
		mc.DoubleClickDistance = opts.Mouse.DoubleClickDistance
	}

	app := &Application{
		driver:         opts.Driver,
		logger:         logging.OrDefault(opts.Logger).WithComponent("app"),
		metrics:        NewMetrics(),
		quitKey:        opts.QuitKey,
		commands:       make(map[command.Command]command.Handler),
		synth:          mouse.NewSynthesizer(mc),
		suspendProcess: suspendProcess,
		wake:           make(chan struct{}, 1),
		events:         make(chan driver.Event, 64),
		done:           make(chan struct{}),
	}
	app.keyBindings = keybinding.New(app)
	app.registerDefaults()
	return app, nil
}

// Driver returns the console driver.
func (app *Application) Driver() driver.Driver { return app.driver }

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger { return app.logger }

// Metrics returns the main loop metrics.
func (app *Application) Metrics() *Metrics { return app.metrics }

// QuitKey returns the key bound to QuitToplevel.
func (app *Application) QuitKey() key.Key { return app.quitKey }

// SetQuitKey rebinds QuitToplevel from the current quit key to k.
// Invalid keys are ignored.
func (app *Application) SetQuitKey(k key.Key) error {
	if !k.IsValid() || k == app.quitKey {
		return nil
	}
	if err := app.keyBindings.Replace(app.quitKey, k); err != nil {
		return err
	}
	app.quitKey = k
	return nil
}

// KeyBindings returns the Application-scope binding table.
func (app *Application) KeyBindings() *keybinding.Bindings { return app.keyBindings }

// State returns the runtime state, or nil when nothing is running.
func (app *Application) State() *State { return app.state }

// AddCommand sets the handler for an application command. A nil handler
// removes it.
func (app *Application) AddCommand(c command.Command, h command.Handler) {
	if h == nil {
		delete(app.commands, c)
		return
	}
	app.commands[c] = h
}

// SupportsCommand reports whether the application handles c.
func (app *Application) SupportsCommand(c command.Command) bool {
	_, ok := app.commands[c]
	return ok
}

// InvokeCommand runs the handler for ctx.Command.
func (app *Application) InvokeCommand(ctx command.Context) command.Result {
	h, ok := app.commands[ctx.Command]
	if !ok {
		return command.Unsupported
	}
	return h(ctx)
}

// Current returns the toplevel receiving input, or nil.
func (app *Application) Current() *Toplevel {
	if app.state == nil {
		return nil
	}
	return app.state.current
}

// Toplevels returns the active toplevels front to back.
func (app *Application) Toplevels() []*Toplevel {
	if app.state == nil {
		return nil
	}
	return app.state.zOrder()
}

// ensureDriver initializes the driver once.
func (app *Application) ensureDriver() error {
	if app.driverReady {
		return nil
	}
	select {
	case <-app.done:
		return ErrShutdown
	default:
	}
	if err := app.driver.Init(); err != nil {
		return NewOperationError("init", "driver", err)
	}
	app.driverReady = true
	return nil
}

// Shutdown ends every active toplevel, innermost first, and shuts the
// driver down. The application cannot be used afterwards.
func (app *Application) Shutdown() {
	app.shutdown.Do(func() {
		if st := app.state; st != nil {
			for len(st.stack) > 0 && app.state == st {
				rs := st.stack[len(st.stack)-1]
				rs.Toplevel.Running = false
				if err := app.End(rs); err != nil {
					app.logger.Error("shutdown: %v", err)
					break
				}
			}
			app.state = nil
		}
		close(app.done)
		if app.driverReady {
			app.driver.Shutdown()
		}
		app.logger.Debug("shutdown complete")
	})
}
