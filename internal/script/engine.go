// Package script runs Lua scripts that configure key bindings.
//
// Scripts run in a sandboxed gopher-lua state with only the base,
// table, string and math libraries. Two modules are available as
// globals and through require:
//
//	keys.bind(key, scope, command...)   bind key to commands in scope
//	keys.unbind(key, scope)             remove a binding, returns true if one existed
//	keys.clear(command...)              remove bindings of exactly these commands
//	keys.commands(key)                  commands bound to key, highest scope first
//	keys.parse(text)                    canonical key string, or nil
//	keys.format(text, sep)              key string with a custom separator
//	app.request_stop()                  stop the current toplevel
//	app.log(level, message)             write to the application log
//
// print writes to the application log at info level.
package script

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/termstack/internal/app"
	"github.com/dshills/termstack/internal/input/keybinding"
	"github.com/dshills/termstack/internal/logging"
)

// DefaultTimeout bounds a single DoString or DoFile call.
const DefaultTimeout = 5 * time.Second

// ErrEngineClosed is returned after Close.
var ErrEngineClosed = errors.New("script engine closed")

// Host is the application a script controls.
type Host interface {
	KeyBindings() *keybinding.Bindings
	RequestStop(top *app.Toplevel)
}

// Options configures an Engine.
type Options struct {
	Host    Host
	Logger  *logging.Logger
	Timeout time.Duration
}

// Engine owns one Lua state. It is safe for concurrent use; calls are
// serialized.
type Engine struct {
	mu      sync.Mutex
	L       *lua.LState
	host    Host
	logger  *logging.Logger
	timeout time.Duration
	closed  bool
}

// NewEngine creates a sandboxed engine bound to opts.Host.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Host == nil {
		return nil, errors.New("script: nil host")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	e := &Engine{
		host:    opts.Host,
		logger:  logging.OrDefault(opts.Logger).WithComponent("script"),
		timeout: opts.Timeout,
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	e.L = L
	e.sandbox()
	e.registerKeys()
	e.registerApp()
	return e, nil
}

// sandbox removes file loading and routes print to the log.
func (e *Engine) sandbox() {
	L := e.L
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
	if pkg, ok := L.GetGlobal("package").(*lua.LTable); ok {
		L.SetField(pkg, "path", lua.LString(""))
		L.SetField(pkg, "cpath", lua.LString(""))
	}
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		e.logger.Info("%s", strings.Join(parts, "\t"))
		return 0
	}))
}

// module installs tbl as global name and as a preloaded module.
func (e *Engine) module(name string, funcs map[string]lua.LGFunction) {
	L := e.L
	mod := L.SetFuncs(L.NewTable(), funcs)
	L.SetGlobal(name, mod)
	L.PreloadModule(name, func(L *lua.LState) int {
		L.Push(mod)
		return 1
	})
}

// DoString runs Lua source.
func (e *Engine) DoString(code string) error {
	return e.run(func(L *lua.LState) error { return L.DoString(code) })
}

// DoFile runs the Lua file at path.
func (e *Engine) DoFile(path string) error {
	err := e.run(func(L *lua.LState) error { return L.DoFile(path) })
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	e.logger.Debug("ran %s", path)
	return nil
}

// LoadFiles runs each file in order and returns the failures together.
// A failing file does not stop the ones after it.
func (e *Engine) LoadFiles(paths []string) error {
	errs := app.NewErrorList()
	for _, p := range paths {
		if err := e.DoFile(p); err != nil {
			e.logger.Warn("script: %v", err)
			errs.Add(err)
		}
	}
	return errs.AsError()
}

func (e *Engine) run(fn func(*lua.LState) error) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrEngineClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()
	e.L.SetContext(ctx)
	defer e.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn(e.L)
}

// Close releases the Lua state.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}
