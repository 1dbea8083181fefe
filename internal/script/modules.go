package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/termstack/internal/command"
	"github.com/dshills/termstack/internal/input/key"
	"github.com/dshills/termstack/internal/input/keybinding"
	"github.com/dshills/termstack/internal/logging"
)

func (e *Engine) registerKeys() {
	e.module("keys", map[string]lua.LGFunction{
		"bind":     e.keysBind,
		"unbind":   e.keysUnbind,
		"clear":    e.keysClear,
		"commands": e.keysCommands,
		"parse":    keysParse,
		"format":   keysFormat,
	})
}

func (e *Engine) registerApp() {
	e.module("app", map[string]lua.LGFunction{
		"request_stop": e.appRequestStop,
		"log":          e.appLog,
	})
}

func checkKey(L *lua.LState, n int) key.Key {
	text := L.CheckString(n)
	k, ok := key.TryParse(text)
	if !ok {
		L.ArgError(n, "invalid key "+text)
	}
	return k
}

func checkScope(L *lua.LState, n int) keybinding.Scope {
	s, err := keybinding.ParseScope(L.OptString(n, ""))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return s
}

// checkCommands reads command names from argument first onwards.
func checkCommands(L *lua.LState, first int) []command.Command {
	var cmds []command.Command
	for i := first; i <= L.GetTop(); i++ {
		name := L.CheckString(i)
		c, ok := command.Parse(name)
		if !ok {
			L.ArgError(i, "unknown command "+name)
		}
		cmds = append(cmds, c)
	}
	return cmds
}

// bind(key, scope, command...) -> nil
func (e *Engine) keysBind(L *lua.LState) int {
	k := checkKey(L, 1)
	scope := checkScope(L, 2)
	cmds := checkCommands(L, 3)
	if len(cmds) == 0 {
		L.RaiseError("bind: no commands")
		return 0
	}
	if err := e.host.KeyBindings().ReplaceCommands(k, scope, cmds...); err != nil {
		L.RaiseError("bind: %v", err)
	}
	return 0
}

// unbind(key, scope) -> bool
func (e *Engine) keysUnbind(L *lua.LState) int {
	k := checkKey(L, 1)
	scope := checkScope(L, 2)
	L.Push(lua.LBool(e.host.KeyBindings().Remove(k, scope)))
	return 1
}

// clear(command...) -> number removed
func (e *Engine) keysClear(L *lua.LState) int {
	cmds := checkCommands(L, 1)
	L.Push(lua.LNumber(e.host.KeyBindings().ClearCommands(cmds...)))
	return 1
}

// commands(key) -> table of command names
func (e *Engine) keysCommands(L *lua.LState) int {
	k := checkKey(L, 1)
	tbl := L.NewTable()
	for _, c := range e.host.KeyBindings().GetCommands(k) {
		tbl.Append(lua.LString(c.String()))
	}
	L.Push(tbl)
	return 1
}

// parse(text) -> canonical string or nil
func keysParse(L *lua.LState) int {
	k, ok := key.TryParse(L.CheckString(1))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(k.String()))
	return 1
}

// format(text, sep) -> string
func keysFormat(L *lua.LState) int {
	k := checkKey(L, 1)
	sep := L.OptString(2, "+")
	r := []rune(sep)
	if len(r) != 1 {
		L.ArgError(2, "separator must be one character")
	}
	L.Push(lua.LString(k.Format(r[0])))
	return 1
}

// request_stop() -> nil
func (e *Engine) appRequestStop(L *lua.LState) int {
	e.host.RequestStop(nil)
	return 0
}

// log(level, message) -> nil
func (e *Engine) appLog(L *lua.LState) int {
	lvl, err := logging.ParseLevel(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}
	msg := L.CheckString(2)
	switch lvl {
	case logging.LevelDebug:
		e.logger.Debug("%s", msg)
	case logging.LevelInfo:
		e.logger.Info("%s", msg)
	case logging.LevelWarn:
		e.logger.Warn("%s", msg)
	default:
		e.logger.Error("%s", msg)
	}
	return 0
}
