package wm

// Focus moves selection to c, falling back to the current selection and
// then to the first visible client, so a visible window holds focus
// whenever one exists. A nil result focuses the root window.
func (m *Manager) Focus(c *Client) {
	if c == nil || !c.VisibleIn(m.tagset) {
		c = m.sel
		if c == nil || !c.VisibleIn(m.tagset) {
			c = m.reg.FirstVisible(m.tagset)
		}
	}
	if m.sel != nil && m.sel != c {
		// Catch the click-to-raise that could be coming.
		m.dpy.GrabClickToRaise(m.sel.Win)
		m.dpy.SetBorder(m.sel.Win, m.borderPx)
	}
	if c != nil {
		m.dpy.SetBorder(c.Win, m.selBorderPx)
		if !m.barFocus {
			m.dpy.FocusWindow(c.Win)
			m.dpy.SetActiveWindow(c.Win)
			m.dpy.SendTakeFocus(c.Win)
		}
	} else {
		m.dpy.FocusRoot()
		m.dpy.ClearActiveWindow()
	}
	m.sel = c
	m.setUrgency(c) // focusing a window clears its urgency
	m.drawBar(false)
}

// setUrgency reconciles a client's urgency with the selection: the focused
// window is never urgent, and an activation request on an unfocused window
// marks it urgent instead of stealing focus.
func (m *Manager) setUrgency(c *Client) {
	if c == nil {
		return
	}
	urgent := m.sel != c
	if c.Urgent == urgent {
		return
	}
	c.Urgent = urgent
	m.dpy.SetUrgency(c.Win, urgent)
}

// FocusStack moves focus through the visible clients in registry order,
// wrapping at the ends. Outside a stack cycle the new focus is also
// raised; during a cycle only the candidate changes, the commit on release
// does the raising.
func (m *Manager) FocusStack(dir int) {
	if m.sel == nil {
		return
	}
	var c *Client
	if dir > 0 {
		for c = m.sel.Next(); c != nil && !c.VisibleIn(m.tagset); c = c.Next() {
		}
		if c == nil {
			c = m.reg.FirstVisible(m.tagset)
		}
	} else {
		i := m.reg.First()
		for ; i != m.sel; i = i.Next() {
			if i.VisibleIn(m.tagset) {
				c = i
			}
		}
		if c == nil {
			for ; i != nil; i = i.Next() {
				if i.VisibleIn(m.tagset) {
					c = i
				}
			}
		}
	}
	if c != nil {
		m.Focus(c)
		if m.drag != DragStack {
			m.restack(c, Raise)
		}
	}
}
