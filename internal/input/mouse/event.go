package mouse

import "time"

// Position is a cell coordinate.
type Position struct {
	X int
	Y int
}

// Distance returns the Manhattan distance between two positions.
func (p Position) Distance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Event is one mouse event. X and Y are relative to the view receiving
// the event and may lie outside it while the mouse is grabbed; ScreenX
// and ScreenY are absolute.
type Event struct {
	X       int
	Y       int
	ScreenX int
	ScreenY int
	Flags   Flags

	Timestamp time.Time

	// Handled stops further delivery.
	Handled bool
}

// Position returns the view relative position.
func (e *Event) Position() Position {
	return Position{X: e.X, Y: e.Y}
}

// ScreenPosition returns the absolute position.
func (e *Event) ScreenPosition() Position {
	return Position{X: e.ScreenX, Y: e.ScreenY}
}
