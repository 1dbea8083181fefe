package app

import (
	"github.com/google/uuid"

	"github.com/dshills/termstack/internal/view"
)

// RunState pairs one Begin with its End.
type RunState struct {
	id       string
	Toplevel *Toplevel

	// mdiChild run states live in the MDI layer rather than on the LIFO
	// stack and may end in any order.
	mdiChild bool

	// looping is set while a Run call pumps events for the run state.
	looping bool
}

func newRunState(top *Toplevel, mdiChild bool) *RunState {
	return &RunState{id: uuid.NewString(), Toplevel: top, mdiChild: mdiChild}
}

// ID returns the unique id of the run state.
func (rs *RunState) ID() string { return rs.id }

// State is the runtime state of an Application. It exists from the
// first Begin until the last End or Shutdown.
//
// Toplevels begun outside an MDI container, the container itself and
// modal toplevels form a LIFO stack. Non-modal toplevels begun while a
// container is active form the MDI layer directly above the container,
// ordered front (most recently active) first.
type State struct {
	stack       []*RunState
	mdiTop      *Toplevel
	mdiChildren []*RunState

	grabView  *view.View
	mouseOver *view.View

	current *Toplevel
	depth   int
}

func newState() *State {
	return &State{}
}

// computeCurrent returns the toplevel that receives input: the top of
// the stack, or the front MDI child when the container is on top.
func (s *State) computeCurrent() *Toplevel {
	if len(s.stack) == 0 {
		return nil
	}
	top := s.stack[len(s.stack)-1].Toplevel
	if top == s.mdiTop && len(s.mdiChildren) > 0 {
		return s.mdiChildren[0].Toplevel
	}
	return top
}

func (s *State) empty() bool {
	return len(s.stack) == 0 && len(s.mdiChildren) == 0
}

// runStateOf returns the active run state of t.
func (s *State) runStateOf(t *Toplevel) *RunState {
	for _, rs := range s.stack {
		if rs.Toplevel == t {
			return rs
		}
	}
	for _, rs := range s.mdiChildren {
		if rs.Toplevel == t {
			return rs
		}
	}
	return nil
}

func (s *State) mdiIndex(t *Toplevel) int {
	for i, rs := range s.mdiChildren {
		if rs.Toplevel == t {
			return i
		}
	}
	return -1
}

// zOrder returns the active toplevels front to back.
func (s *State) zOrder() []*Toplevel {
	var out []*Toplevel
	for i := len(s.stack) - 1; i >= 0; i-- {
		t := s.stack[i].Toplevel
		if t == s.mdiTop {
			for _, rs := range s.mdiChildren {
				out = append(out, rs.Toplevel)
			}
		}
		out = append(out, t)
	}
	return out
}

// isLive reports whether v belongs to the tree of an active toplevel.
func (s *State) isLive(v *view.View) bool {
	if v == nil {
		return false
	}
	t, ok := ToplevelOf(v.Root())
	return ok && s.runStateOf(t) != nil
}
