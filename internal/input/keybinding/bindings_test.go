package keybinding

import (
	"errors"
	"testing"

	"github.com/dshills/termstack/internal/command"
	"github.com/dshills/termstack/internal/input/key"
)

// recorder is an Owner that records invocations and answers from a table.
type recorder struct {
	results map[command.Command]command.Result
	calls   []command.Command
}

func (r *recorder) InvokeCommand(ctx command.Context) command.Result {
	r.calls = append(r.calls, ctx.Command)
	if res, ok := r.results[ctx.Command]; ok {
		return res
	}
	return command.Unsupported
}

var ctrlQ = key.NewKey(key.Q | key.CtrlMask)

func TestAddGetCommands(t *testing.T) {
	b := New(nil)
	cmds := []command.Command{command.Up, command.Select, command.Accept}

	if err := b.Add(ctrlQ, Focused, cmds...); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	got := b.GetCommands(ctrlQ)
	if !command.Equal(got, cmds) {
		t.Errorf("GetCommands() = %v, want %v", got, cmds)
	}

	// The returned slice is a copy.
	got[0] = command.Down
	if b.GetCommands(ctrlQ)[0] != command.Up {
		t.Error("GetCommands() exposed internal slice")
	}
}

func TestAddInvalidKeyIsNoOp(t *testing.T) {
	b := New(nil)
	for _, k := range []key.Key{key.Empty, key.NewKey(key.CtrlMask)} {
		if err := b.Add(k, Focused, command.Accept); err != nil {
			t.Errorf("Add(%v) error = %v, want nil", k, err)
		}
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestAddErrors(t *testing.T) {
	b := New(nil)
	if err := b.Add(ctrlQ, Focused); !errors.Is(err, ErrNoCommands) {
		t.Errorf("Add() with no commands error = %v, want ErrNoCommands", err)
	}
	if err := b.Add(ctrlQ, 0, command.Accept); !errors.Is(err, ErrInvalidScope) {
		t.Errorf("Add() with no scope error = %v, want ErrInvalidScope", err)
	}
	if err := b.Add(ctrlQ, Focused, command.Invalid); !errors.Is(err, ErrInvalidCommand) {
		t.Errorf("Add() with invalid command error = %v, want ErrInvalidCommand", err)
	}
	if b.Len() != 0 {
		t.Fatalf("failed Add changed the table: Len() = %d", b.Len())
	}

	if err := b.Add(ctrlQ, Focused, command.Accept); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := b.Add(ctrlQ, Focused, command.Cancel); !errors.Is(err, ErrDuplicateBinding) {
		t.Errorf("duplicate Add() error = %v, want ErrDuplicateBinding", err)
	}
	if err := b.Add(ctrlQ, Application, command.Cancel); err != nil {
		t.Errorf("Add() in another scope error = %v", err)
	}
	if got := b.GetCommands(ctrlQ); !command.Equal(got, []command.Command{command.Accept}) {
		t.Errorf("GetCommands() = %v, want [Accept]", got)
	}
}

func TestScopePriority(t *testing.T) {
	b := New(nil)
	b.Add(ctrlQ, Application, command.QuitToplevel)
	b.Add(ctrlQ, HotKey, command.HotKey)
	b.Add(ctrlQ, Focused, command.Accept)

	tests := []struct {
		scope Scope
		want  command.Command
	}{
		{AllScopes, command.Accept},
		{HotKey | Application, command.HotKey},
		{Application, command.QuitToplevel},
		{Focused, command.Accept},
	}

	for _, tt := range tests {
		bd, ok := b.TryGet(ctrlQ, tt.scope)
		if !ok {
			t.Errorf("TryGet(%v) not found", tt.scope)
			continue
		}
		if bd.Commands[0] != tt.want {
			t.Errorf("TryGet(%v) = %v, want %v", tt.scope, bd.Commands, tt.want)
		}
	}
}

func TestCombinedScopeMatchesAnyBit(t *testing.T) {
	b := New(nil)
	b.Add(ctrlQ, Focused|HotKey, command.Select)

	for _, s := range []Scope{Focused, HotKey} {
		if _, ok := b.TryGet(ctrlQ, s); !ok {
			t.Errorf("TryGet(%v) should match focused|hotkey binding", s)
		}
	}
	if _, ok := b.TryGet(ctrlQ, Application); ok {
		t.Error("TryGet(application) should not match focused|hotkey binding")
	}
}

func TestReplace(t *testing.T) {
	b := New(nil)
	ctrlW := key.NewKey(key.W | key.CtrlMask)
	b.Add(ctrlQ, Application, command.QuitToplevel)
	b.Add(ctrlW, Application, command.Refresh)

	if err := b.Replace(ctrlQ, ctrlW); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if b.GetCommands(ctrlQ) != nil {
		t.Error("old key still bound")
	}
	if got := b.GetCommands(ctrlW); !command.Equal(got, []command.Command{command.QuitToplevel}) {
		t.Errorf("GetCommands(new) = %v, want [QuitToplevel]", got)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}

	if err := b.Replace(ctrlQ, ctrlW); !errors.Is(err, ErrNotBound) {
		t.Errorf("Replace() of unbound key error = %v, want ErrNotBound", err)
	}
	if err := b.Replace(ctrlW, key.Empty); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Replace() to empty key error = %v, want ErrInvalidKey", err)
	}
}

func TestReplaceCommands(t *testing.T) {
	b := New(nil)
	b.Add(ctrlQ, Focused, command.Accept)

	if err := b.ReplaceCommands(ctrlQ, Focused, command.Cancel, command.Accept); err != nil {
		t.Fatalf("ReplaceCommands() error = %v", err)
	}
	want := []command.Command{command.Cancel, command.Accept}
	if got := b.GetCommands(ctrlQ); !command.Equal(got, want) {
		t.Errorf("GetCommands() = %v, want %v", got, want)
	}

	f2 := key.NewKey(key.F2)
	if err := b.ReplaceCommands(f2, HotKey, command.HotKey); err != nil {
		t.Fatalf("ReplaceCommands() on new key error = %v", err)
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

func TestClearCommands(t *testing.T) {
	b := New(nil)
	f1, f2, f3 := key.NewKey(key.F1), key.NewKey(key.F2), key.NewKey(key.F3)
	b.Add(f1, Focused, command.Up, command.Down)
	b.Add(f2, Application, command.Up, command.Down)
	b.Add(f3, Focused, command.Down, command.Up)

	if n := b.ClearCommands(command.Up, command.Down); n != 2 {
		t.Errorf("ClearCommands() = %d, want 2", n)
	}
	if b.Len() != 1 || b.GetCommands(f3) == nil {
		t.Errorf("ClearCommands() removed the wrong bindings: %v", b.All())
	}
}

func TestGetKeysFromCommands(t *testing.T) {
	b := New(nil)
	f1, f2 := key.NewKey(key.F1), key.NewKey(key.F2)
	b.Add(f2, Focused, command.Accept)
	b.Add(f1, Application, command.Accept)
	b.Add(ctrlQ, Application, command.Cancel)

	got := b.GetKeysFromCommands(command.Accept)
	if len(got) != 2 || got[0] != f1 || got[1] != f2 {
		t.Errorf("GetKeysFromCommands() = %v, want [F1 F2]", got)
	}
}

func TestInvokeDeclaredOrder(t *testing.T) {
	tests := []struct {
		name      string
		results   map[command.Command]command.Result
		want      command.Result
		wantCalls int
	}{
		{
			name:      "first handled stops",
			results:   map[command.Command]command.Result{command.Up: command.Handled},
			want:      command.Handled,
			wantCalls: 1,
		},
		{
			name:      "falls through to second",
			results:   map[command.Command]command.Result{command.Up: command.NotHandled, command.Down: command.Handled},
			want:      command.Handled,
			wantCalls: 2,
		},
		{
			name:      "none handled",
			results:   map[command.Command]command.Result{command.Down: command.NotHandled},
			want:      command.NotHandled,
			wantCalls: 3,
		},
		{
			name:      "all unsupported",
			results:   nil,
			want:      command.Unsupported,
			wantCalls: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner := &recorder{results: tt.results}
			b := New(owner)
			b.Add(ctrlQ, Focused, command.Up, command.Down, command.Accept)

			got, found := b.Invoke(ctrlQ, Focused)
			if !found {
				t.Fatal("Invoke() found = false")
			}
			if got != tt.want {
				t.Errorf("Invoke() = %v, want %v", got, tt.want)
			}
			if len(owner.calls) != tt.wantCalls {
				t.Errorf("Invoke() made %d calls, want %d", len(owner.calls), tt.wantCalls)
			}
		})
	}
}

func TestInvokeBindingOwner(t *testing.T) {
	tableOwner := &recorder{}
	bound := &recorder{results: map[command.Command]command.Result{command.Accept: command.Handled}}
	b := New(tableOwner)
	b.AddBinding(ctrlQ, Binding{Commands: []command.Command{command.Accept}, Scope: Application, Owner: bound})

	if got, _ := b.Invoke(ctrlQ, Application); got != command.Handled {
		t.Errorf("Invoke() = %v, want handled", got)
	}
	if len(tableOwner.calls) != 0 || len(bound.calls) != 1 {
		t.Errorf("calls table=%d bound=%d, want 0 and 1", len(tableOwner.calls), len(bound.calls))
	}
	if _, found := b.Invoke(key.NewKey(key.F9), Application); found {
		t.Error("Invoke() of unbound key found = true")
	}
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		text    string
		want    Scope
		wantErr bool
	}{
		{"", Application, false},
		{"focused", Focused, false},
		{"HotKey", HotKey, false},
		{"focused|hotkey", Focused | HotKey, false},
		{"app", Application, false},
		{"global", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseScope(tt.text)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseScope(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseScope(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
	if s := (Focused | Application).String(); s != "focused|application" {
		t.Errorf("String() = %q", s)
	}
}
