package mouse

// Drag tracks a press-move-release gesture that moves an object whose
// origin was known when the gesture started.
type Drag struct {
	active bool
	start  Position
	origin Position
}

// Start begins a drag at pointer position pos for an object at origin.
func (d *Drag) Start(pos, origin Position) {
	d.active = true
	d.start = pos
	d.origin = origin
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool {
	return d.active
}

// Update returns the origin the object should move to for pointer
// position pos. It returns the start origin when no drag is active.
func (d *Drag) Update(pos Position) Position {
	if !d.active {
		return d.origin
	}
	return Position{
		X: d.origin.X + pos.X - d.start.X,
		Y: d.origin.Y + pos.Y - d.start.Y,
	}
}

// End finishes the drag.
func (d *Drag) End() {
	*d = Drag{}
}
