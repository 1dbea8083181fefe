package mouse

import (
	"sync"
	"time"
)

// Config configures click synthesis.
type Config struct {
	// DoubleClickTime is the maximum time between clicks of a sequence.
	DoubleClickTime time.Duration

	// DoubleClickDistance is the maximum distance between clicks of a
	// sequence, and between a press and its release for a click.
	DoubleClickDistance int
}

// DefaultConfig returns the default click thresholds.
func DefaultConfig() Config {
	return Config{
		DoubleClickTime:     400 * time.Millisecond,
		DoubleClickDistance: 1,
	}
}

const numButtons = 4

// button is the click state of one button. count is the length of the
// current click sequence and wraps from 3 back to 1.
type button struct {
	pressed  bool
	pressPos Position

	lastPos  Position
	lastTime time.Time
	count    int
}

// Synthesizer adds click flags to release events. A release close to the
// matching press becomes Clicked, DoubleClicked or TripleClicked
// depending on how many clicks preceded it.
type Synthesizer struct {
	mu      sync.Mutex
	config  Config
	buttons [numButtons]button
}

// NewSynthesizer creates a synthesizer.
func NewSynthesizer(config Config) *Synthesizer {
	return &Synthesizer{config: config}
}

var clickFlags = [...]int{offClicked, offDoubleClicked, offTripleClicked}

// Process returns ev with click flags added where a release completes a
// click. Other events are returned unchanged.
func (s *Synthesizer) Process(ev Event) Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := ev.ScreenPosition()
	for b := 1; b <= numButtons; b++ {
		st := &s.buttons[b-1]
		if ev.Flags.Has(buttonFlag(b, offPressed)) {
			st.pressed = true
			st.pressPos = pos
			continue
		}
		if !ev.Flags.Has(buttonFlag(b, offReleased)) || !st.pressed {
			continue
		}
		st.pressed = false
		if pos.Distance(st.pressPos) > s.config.DoubleClickDistance {
			st.count = 0
			continue
		}
		n := s.click(st, pos, ev.Timestamp)
		ev.Flags |= buttonFlag(b, clickFlags[n-1])
	}
	return ev
}

// click records a click at pos and returns its place in the sequence.
func (s *Synthesizer) click(st *button, pos Position, ts time.Time) int {
	if ts.IsZero() {
		ts = time.Now()
	}
	elapsed := ts.Sub(st.lastTime)
	// A negative elapsed time means the clock went backwards.
	if st.count > 0 && elapsed >= 0 && elapsed <= s.config.DoubleClickTime &&
		pos.Distance(st.lastPos) <= s.config.DoubleClickDistance {
		st.count = st.count%3 + 1
	} else {
		st.count = 1
	}
	st.lastPos = pos
	st.lastTime = ts
	return st.count
}

// Reset forgets pending presses and click sequences.
func (s *Synthesizer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buttons = [numButtons]button{}
}
