package view

// Add appends subviews. A view already in another superview is moved.
func (v *View) Add(views ...*View) {
	for _, sub := range views {
		if sub == nil || sub == v {
			continue
		}
		if sub.superview != nil {
			sub.superview.Remove(sub)
		}
		sub.superview = v
		v.subviews = append(v.subviews, sub)
		if v.hasFocus && v.focused == nil && sub.focusable() {
			v.setFocusedChild(sub)
		}
		sub.SetNeedsDisplay()
	}
}

// Remove detaches sub. Focus moves to a sibling when sub held it.
func (v *View) Remove(sub *View) {
	for i, s := range v.subviews {
		if s != sub {
			continue
		}
		if v.focused == sub {
			v.refocusAfterLoss(sub)
		}
		v.subviews = append(v.subviews[:i], v.subviews[i+1:]...)
		sub.superview = nil
		v.SetNeedsDisplay()
		return
	}
}

// RemoveAll detaches every subview.
func (v *View) RemoveAll() {
	for len(v.subviews) > 0 {
		v.Remove(v.subviews[len(v.subviews)-1])
	}
}

// Superview returns the parent view, or nil.
func (v *View) Superview() *View { return v.superview }

// Subviews returns the subviews in z-order, bottom first.
func (v *View) Subviews() []*View {
	out := make([]*View, len(v.subviews))
	copy(out, v.subviews)
	return out
}

// Root returns the topmost ancestor, or v itself.
func (v *View) Root() *View {
	w := v
	for w.superview != nil {
		w = w.superview
	}
	return w
}

// IsAncestorOf reports whether v is a strict ancestor of other.
func (v *View) IsAncestorOf(other *View) bool {
	if other == nil {
		return false
	}
	for w := other.superview; w != nil; w = w.superview {
		if w == v {
			return true
		}
	}
	return false
}

// Contains reports whether other is v or one of its descendants.
func (v *View) Contains(other *View) bool {
	return other == v || v.IsAncestorOf(other)
}
