package view

// HasFocus reports whether the view is on the focus chain.
func (v *View) HasFocus() bool { return v.hasFocus }

// Focused returns the subview holding focus, or nil.
func (v *View) Focused() *View { return v.focused }

// MostFocused returns the deepest view on the focus chain below v, or
// nil when no subview holds focus.
func (v *View) MostFocused() *View {
	if v.focused == nil {
		return nil
	}
	if most := v.focused.MostFocused(); most != nil {
		return most
	}
	return v.focused
}

// focusable reports whether focus navigation may stop at the view.
func (v *View) focusable() bool {
	return v.canFocus && v.tabStop && v.visible && v.enabled
}

// SetFocus moves focus to v, focusing its ancestors as needed. It
// reports false when v cannot take focus.
func (v *View) SetFocus() bool {
	if !v.canFocus || !v.visible || !v.enabled {
		return false
	}
	sv := v.superview
	if sv == nil {
		if !v.hasFocus {
			v.enter()
		}
		return true
	}
	sv.setFocusedChild(v)
	if !sv.hasFocus {
		return sv.SetFocus()
	}
	return true
}

// setFocusedChild makes sub the focused subview of v. The new chain
// only enters focus when v already has it.
func (v *View) setFocusedChild(sub *View) {
	if v.focused == sub {
		if v.hasFocus && !sub.hasFocus {
			sub.enter()
		}
		return
	}
	if old := v.focused; old != nil {
		old.leave()
	}
	v.focused = sub
	if v.hasFocus {
		sub.enter()
	}
}

// enter puts v and its focused descendants on the focus chain.
func (v *View) enter() {
	v.hasFocus = true
	v.SetNeedsDisplay()
	v.responder.OnEnter(v)
	if v.focused == nil {
		for _, sub := range v.subviews {
			if sub.focusable() {
				v.focused = sub
				break
			}
		}
	}
	if v.focused != nil && !v.focused.hasFocus {
		v.focused.enter()
	}
}

// leave removes v and its descendants from the focus chain, deepest
// first.
func (v *View) leave() {
	if !v.hasFocus {
		return
	}
	if v.focused != nil {
		v.focused.leave()
	}
	v.hasFocus = false
	v.SetNeedsDisplay()
	v.responder.OnLeave(v)
}

// refocusAfterLoss moves focus off lost to another subview.
func (v *View) refocusAfterLoss(lost *View) {
	if v.focused != lost {
		return
	}
	for _, sub := range v.subviews {
		if sub != lost && sub.focusable() {
			v.setFocusedChild(sub)
			return
		}
	}
	lost.leave()
	v.focused = nil
}

// RemoveFocus takes v and its descendants off the focus chain.
func (v *View) RemoveFocus() {
	v.leave()
}

// FocusFirst focuses the first focusable subview, descending into it.
func (v *View) FocusFirst() bool {
	for _, sub := range v.subviews {
		if sub.focusable() {
			sub.SetFocus()
			sub.FocusFirst()
			return true
		}
	}
	return false
}

// FocusLast focuses the last focusable subview, descending into it.
func (v *View) FocusLast() bool {
	for i := len(v.subviews) - 1; i >= 0; i-- {
		if sub := v.subviews[i]; sub.focusable() {
			sub.SetFocus()
			sub.FocusLast()
			return true
		}
	}
	return false
}

// FocusNext advances focus to the next focusable view in tab order
// below v. It reports false at the end of the order without wrapping.
func (v *View) FocusNext() bool {
	if v.focused == nil {
		return v.FocusFirst()
	}
	if v.focused.FocusNext() {
		return true
	}
	idx := v.indexOf(v.focused)
	for i := idx + 1; i < len(v.subviews); i++ {
		if sub := v.subviews[i]; sub.focusable() {
			sub.SetFocus()
			sub.FocusFirst()
			return true
		}
	}
	return false
}

// FocusPrevious moves focus to the previous focusable view in tab order
// below v. It reports false at the start of the order without wrapping.
func (v *View) FocusPrevious() bool {
	if v.focused == nil {
		return v.FocusLast()
	}
	if v.focused.FocusPrevious() {
		return true
	}
	idx := v.indexOf(v.focused)
	for i := idx - 1; i >= 0; i-- {
		if sub := v.subviews[i]; sub.focusable() {
			sub.SetFocus()
			sub.FocusLast()
			return true
		}
	}
	return false
}

func (v *View) indexOf(sub *View) int {
	for i, s := range v.subviews {
		if s == sub {
			return i
		}
	}
	return -1
}
