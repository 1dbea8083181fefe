package app

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestOperationError(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{"op only", NewOperationError("init", "", nil), "init"},
		{"target", NewOperationError("begin", "main", ErrAlreadyRunning), "begin main: toplevel already running"},
		{"context", NewOperationError("end", "dlg", ErrRunStateMismatch).WithContext("top is main"),
			"end dlg (top is main): run state is not the innermost active run state"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	err := error(NewOperationError("begin", "x", ErrMdiContainerActive))
	if !errors.Is(err, ErrMdiContainerActive) {
		t.Error("errors.Is() did not see the wrapped error")
	}
	var nilErr *OperationError
	if nilErr.WithContext("x") != nil || nilErr.Error() != "" || nilErr.Unwrap() != nil {
		t.Error("nil OperationError methods should be no-ops")
	}
}

func TestRecoveredPanicError(t *testing.T) {
	err := NewRecoveredPanicError("boom", "")
	if err.Error() != "panic: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	err = NewRecoveredPanicError("boom", "stack")
	if !strings.HasPrefix(err.Error(), "panic: boom\n") {
		t.Errorf("Error() = %q, want stack appended", err.Error())
	}
}

func TestErrorList(t *testing.T) {
	list := NewErrorList()
	if list.AsError() != nil {
		t.Fatal("AsError() on empty list should be nil")
	}
	list.Add(nil)
	list.Add(ErrNotRunning)
	if list.Len() != 1 || list.Error() != ErrNotRunning.Error() {
		t.Errorf("single error list = %d %q", list.Len(), list.Error())
	}
	list.Add(ErrShutdown)
	err := list.AsError()
	if err == nil || !list.HasErrors() {
		t.Fatal("AsError() = nil, want list")
	}
	if !errors.Is(err, ErrShutdown) || !errors.Is(err, ErrNotRunning) {
		t.Error("errors.Is() should see every collected error")
	}
	if !strings.HasPrefix(err.Error(), "2 errors") {
		t.Errorf("Error() = %q", err.Error())
	}
	errs := list.Errors()
	errs[0] = nil
	if list.Errors()[0] == nil {
		t.Error("Errors() should return a copy")
	}
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	m.RecordIteration(2 * time.Millisecond)
	m.RecordIteration(4 * time.Millisecond)
	m.RecordKey(true)
	m.RecordKey(false)
	m.RecordMouse()
	m.RecordRedraw()
	m.RecordInvocation()
	m.RecordPanic()
	m.RecordDepth(3)
	m.RecordDepth(1)

	s := m.Snapshot()
	if s.Iterations != 2 || s.AvgIterationNs != int64(3*time.Millisecond) {
		t.Errorf("iterations = %d avg = %d", s.Iterations, s.AvgIterationNs)
	}
	if s.KeyEvents != 2 || s.HandledKeys != 1 {
		t.Errorf("keys = %d handled = %d, want 2 1", s.KeyEvents, s.HandledKeys)
	}
	if s.MouseEvents != 1 || s.Redraws != 1 || s.Invocations != 1 || s.RecoveredPanics != 1 {
		t.Errorf("counters = %+v", s)
	}
	if s.MaxRunDepth != 3 {
		t.Errorf("MaxRunDepth = %d, want 3", s.MaxRunDepth)
	}
}
