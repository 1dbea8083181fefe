package key

import "time"

// Event is one key press travelling through the input pipeline. The
// same event is offered to the KeyDown, KeyPressed and KeyUp phases;
// Handled stops further routing.
type Event struct {
	Key       Key
	Timestamp time.Time
	Handled   bool
}

// NewEvent creates an event for k stamped with the current time.
func NewEvent(k Key) *Event {
	return &Event{Key: k, Timestamp: time.Now()}
}

// String returns the key string of the event.
func (e *Event) String() string {
	return e.Key.String()
}
