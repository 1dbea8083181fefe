package app

// MdiTop returns the active MDI container, or nil.
func (app *Application) MdiTop() *Toplevel {
	if app.state == nil {
		return nil
	}
	return app.state.mdiTop
}

// MdiChildren returns the active MDI children, most recently active
// first.
func (app *Application) MdiChildren() []*Toplevel {
	if app.state == nil {
		return nil
	}
	out := make([]*Toplevel, len(app.state.mdiChildren))
	for i, rs := range app.state.mdiChildren {
		out[i] = rs.Toplevel
	}
	return out
}

// IsMdiChild reports whether t is an active MDI child.
func (app *Application) IsMdiChild(t *Toplevel) bool {
	return app.state != nil && app.state.mdiIndex(t) >= 0
}

// MoveToFront makes the MDI child t the front child. It reports false
// when t is not an MDI child.
func (app *Application) MoveToFront(t *Toplevel) bool {
	if app.state == nil {
		return false
	}
	i := app.state.mdiIndex(t)
	if i < 0 {
		return false
	}
	app.moveChildToFront(i)
	return true
}

func (app *Application) moveChildToFront(i int) {
	st := app.state
	if i == 0 {
		return
	}
	rs := st.mdiChildren[i]
	copy(st.mdiChildren[1:i+1], st.mdiChildren[:i])
	st.mdiChildren[0] = rs
	app.needsRedraw = true
	app.updateCurrent()
}

// NextMdiChild sends the front child to the back. It reports false when
// there are fewer than two children.
func (app *Application) NextMdiChild() bool {
	st := app.state
	if st == nil || len(st.mdiChildren) < 2 {
		return false
	}
	front := st.mdiChildren[0]
	copy(st.mdiChildren, st.mdiChildren[1:])
	st.mdiChildren[len(st.mdiChildren)-1] = front
	app.needsRedraw = true
	app.updateCurrent()
	return true
}

// PreviousMdiChild brings the back child to the front. It reports false
// when there are fewer than two children.
func (app *Application) PreviousMdiChild() bool {
	st := app.state
	if st == nil || len(st.mdiChildren) < 2 {
		return false
	}
	app.moveChildToFront(len(st.mdiChildren) - 1)
	return true
}
