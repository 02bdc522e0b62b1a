package wm

import "github.com/1broseidon/tilewm/internal/config"

// PropKind classifies the property changes the manager reacts to. The
// connection layer maps atoms to kinds so the core never sees raw atoms.
type PropKind int

const (
	PropTransient PropKind = iota
	PropNormalHints
	PropHints
	PropName
	PropWindowType
)

// ConfigureRequest is a client's configure request, with per-field
// presence flags mirroring the protocol value mask.
type ConfigureRequest struct {
	Win                           WindowID
	X, Y, W, H, BorderWidth       int
	HasX, HasY, HasW, HasH, HasBW bool
}

// HandleMapRequest manages a new window: it becomes a floating client on
// the current view, clamped into the monitor under the pointer and kept
// clear of the bar.
func (m *Manager) HandleMapRequest(win WindowID) {
	g, oldBW, override, ok := m.dpy.WindowAttributes(win)
	if !ok || override || m.reg.Find(win) != nil {
		return
	}

	c := &Client{
		Win:      win,
		Floating: true,
		Tags:     m.tagset,
		FX:       g.X,
		FY:       g.Y,
		FW:       g.W,
		FH:       g.H,
		OldBW:    oldBW,
	}
	m.reg.Attach(c)
	c.Name = m.dpy.WindowTitle(win)
	c.ZenName = c.Name
	// Show the window on the same workspaces as its parent, if it has
	// one.
	if parent, ok := m.dpy.TransientFor(win); ok {
		if t := m.reg.Find(parent); t != nil {
			c.Tags = t.Tags
		}
	}

	mon := 0
	if x, y, ok := m.dpy.PointerAt(); ok {
		mon = m.screen.MonDesc(x, y)
	}
	c.BW = m.cfg.BorderWidth
	m.clampIntoMonitor(c, mon)

	if m.dpy.FullscreenRequested(win) {
		m.setFullscreen(c, true)
	}
	m.applySizeHints(c)
	m.dpy.WatchClient(win)
	m.publishClientList()
	// Some windows need to see a configure before their first map; park
	// the window offscreen first so nothing flashes at the wrong spot.
	m.dpy.MoveResizeWindow(win, c.FX+2*m.screen.W, c.FY, c.FW, c.FH)
	m.dpy.SetNormalState(win)
	m.resize(c, c.FX, c.FY, c.FW, c.FH)
	m.restack(c, Raise)
	m.dpy.MapWindow(win)
	m.Focus(c)
}

// clampIntoMonitor pulls the pending floating geometry inside the given
// monitor. The y floor only avoids the bar when the window's center sits
// over the primary monitor.
func (m *Manager) clampIntoMonitor(c *Client, mon int) {
	mons := m.screen.Mons
	if c.FX+c.FW+2*c.BW > mons[mon].X+mons[mon].W {
		c.FX = mons[mon].X + mons[mon].W - c.FW - 2*c.BW
	}
	if c.FY+c.FH+2*c.BW > mons[mon].Y+mons[mon].H {
		c.FY = mons[mon].Y + mons[mon].H - c.FH - 2*c.BW
	}
	c.FX = max(c.FX, mons[mon].X)
	centerX := c.FX + c.FW/2
	yFloor := mons[0].Y
	if m.screen.BarY() == mons[0].Y && centerX >= mons[0].X && centerX < mons[0].X+mons[0].W {
		yFloor = mons[0].Y + m.screen.BarH
	}
	c.FY = max(c.FY, yFloor)
}

func (m *Manager) applySizeHints(c *Client) {
	h := m.dpy.SizeHints(c.Win)
	c.BaseW, c.BaseH = h.BaseW, h.BaseH
	c.MinW, c.MinH = h.MinW, h.MinH
	c.MaxW, c.MaxH = h.MaxW, h.MaxH
	c.MinA, c.MaxA = h.MinA, h.MaxA
}

func (m *Manager) unmanage(c *Client, destroyed bool) {
	m.restack(c, Remove)
	if !destroyed {
		m.dpy.ReleaseWindow(c.Win, c.OldBW)
	}
	if m.sel == c {
		m.sel = nil
	}
	if m.hover == c {
		m.hover = nil
		m.hoverWin = 0
	}
	m.publishClientList()
	m.arrange()
}

func (m *Manager) HandleDestroyNotify(win WindowID) {
	if c := m.reg.Find(win); c != nil {
		m.unmanage(c, true)
	}
}

// HandleUnmapNotify treats a synthetic unmap as the ICCCM withdrawal
// signal and a real one as the window going away.
func (m *Manager) HandleUnmapNotify(win WindowID, synthetic bool) {
	c := m.reg.Find(win)
	if c == nil {
		return
	}
	if synthetic {
		m.dpy.SetWithdrawn(win)
	} else {
		m.unmanage(c, false)
	}
}

// HandleConfigureRequest honors requests from floating clients and
// answers tiled ones with their imposed geometry. It reports whether the
// window was managed; unmanaged requests must be forwarded verbatim.
func (m *Manager) HandleConfigureRequest(ev ConfigureRequest) bool {
	c := m.reg.Find(ev.Win)
	if c == nil {
		return false
	}
	if ev.HasBW {
		c.BW = ev.BorderWidth
	}
	if c.Floating {
		if ev.HasX {
			c.X, c.FX = ev.X, ev.X
		}
		if ev.HasY {
			c.Y, c.FY = ev.Y, ev.Y
		}
		if ev.HasW {
			c.W, c.FW = ev.W, ev.W
		}
		if ev.HasH {
			c.H, c.FH = ev.H, ev.H
		}
		if (ev.HasX || ev.HasY) && !(ev.HasW || ev.HasH) {
			m.dpy.SendConfigureNotify(c.Win, Geom{X: c.X, Y: c.Y, W: c.W, H: c.H}, c.BW)
		}
		if c.VisibleIn(m.tagset) {
			m.dpy.MoveResizeWindow(c.Win, c.X, c.Y, c.W, c.H)
		}
	} else {
		m.dpy.SendConfigureNotify(c.Win, Geom{X: c.X, Y: c.Y, W: c.W, H: c.H}, c.BW)
	}
	return true
}

// HandleProperty reacts to a property change on a managed window. Deleted
// properties are ignored upstream.
func (m *Manager) HandleProperty(win WindowID, kind PropKind, time uint32) {
	c := m.reg.Find(win)
	if c == nil {
		return
	}
	switch kind {
	case PropTransient:
		if !c.Floating {
			if parent, ok := m.dpy.TransientFor(win); ok && m.reg.Find(parent) != nil {
				c.Floating = true
				m.arrange()
			}
		}
	case PropNormalHints:
		m.applySizeHints(c)
	case PropHints:
		c.Urgent = m.dpy.UrgencyHint(win)
		m.setUrgency(c)
		m.drawBar(true)
	case PropName:
		c.Name = m.dpy.WindowTitle(win)
		// Busy windows retitle constantly (builds, timers, spinners).
		// The bar's title only follows once the window has been quiet
		// for a while, so it stops flickering.
		if c == m.sel && time-c.ZenPing > uint32(m.cfg.ZenSeconds)*1000 {
			c.ZenName = c.Name
		}
		c.ZenPing = time
		m.drawBar(true)
	case PropWindowType:
		if m.dpy.FullscreenRequested(win) {
			m.setFullscreen(c, true)
		}
	}
}

// HandleStatusChanged re-reads the root window name into the bar's status
// area.
func (m *Manager) HandleStatusChanged() {
	m.status = m.dpy.StatusText()
	m.drawBar(true)
}

// HandleFullscreenMessage handles a net wm state client message. Action is
// the EWMH value: 0 remove, 1 add, 2 toggle.
func (m *Manager) HandleFullscreenMessage(win WindowID, action int) {
	c := m.reg.Find(win)
	if c == nil {
		return
	}
	m.setFullscreen(c, action == 1 || (action == 2 && !c.Fullscreen))
}

// HandleActivateMessage marks the window urgent rather than letting it
// steal focus.
func (m *Manager) HandleActivateMessage(win WindowID) {
	if c := m.reg.Find(win); c != nil {
		m.setUrgency(c)
		m.drawBar(true)
	}
}

func (m *Manager) HandleKeyPress(code uint32, mods uint16) {
	m.grabResizeAbort()
	for _, k := range m.keys {
		if k.Code == code && k.Mod&modMask == mods&modMask {
			m.Do(k.Binding)
		}
	}
}

// HandleKeyRelease finishes drags whose keys went up and commits a stack
// cycle when the cycle modifier is released: the focused candidate is
// zoomed to the front of the layout.
func (m *Manager) HandleKeyRelease(code uint32, mods uint16) {
	m.grabResizeAbort()
	if m.drag == DragStack && code == m.stackReleaseCode {
		m.drag = DragNone
		m.restack(m.sel, Zoom)
		m.arrange() // zooming tiled windows can rearrange tiling
		m.dpy.UngrabKeyboard()
	}
}

// HandleButtonPress routes bar clicks to their bindings, promotes an armed
// edge hover into a drag, and implements click-to-raise on clients.
func (m *Manager) HandleButtonPress(win WindowID, button int, mods uint16, x, rootX, rootY int) {
	if win == m.bar.Window() {
		region, tag := m.bar.HitTest(x, m.snapshot(true))
		for _, bb := range m.cfg.Buttons {
			if bb.Region != region || bb.Button != button {
				continue
			}
			bmod, _ := config.ParseModifiers(bb.Mod)
			if bmod != mods&modMask {
				continue
			}
			mask := m.cfg.TagMask()
			if region == config.RegionTags && tag >= 0 {
				mask = 1 << tag
			}
			m.runAction(bb.Action, bb.Amount, mask, bb.Command)
		}
		return
	}

	if m.sel != nil && m.drag == DragCheck {
		mode := DragSize
		if m.sel.InMoveZone(rootX, rootY) {
			mode = DragMove
		}
		m.grabResize(mode)
		return
	}

	if c := m.reg.Find(win); c != nil {
		m.dpy.ReplayPointer()
		m.dpy.UngrabClickToRaise(c.Win)
		m.Focus(c)
		if c.Floating {
			m.restack(c, Zoom)
		} else {
			m.restack(c, Raise)
		}
	}
}

func (m *Manager) HandleButtonRelease() {
	m.grabResizeAbort()
}

// HandleMotion drives every pointer-position behavior: active drags, edge
// hover arming, the bar peek zone, and focus-follows-mouse. win is the
// toplevel under the pointer, or 0 when it is over the root.
func (m *Manager) HandleMotion(win WindowID, rootX, rootY int, state uint16) {
	dx := rootX - m.lastX
	dy := rootY - m.lastY
	m.lastX, m.lastY = rootX, rootY

	if m.sel != nil {
		switch m.drag {
		case DragMove:
			m.resize(m.sel, m.sel.FX+dx, m.sel.FY+dy, m.sel.FW, m.sel.FH)
		case DragSize:
			m.resize(m.sel, m.sel.FX, m.sel.FY, max(m.sel.FW+dx, 1), max(m.sel.FH+dy, 1))
		case DragTile:
			m.resize(m.sel, m.sel.X, m.sel.Y, max(m.sel.W+dx, 1), max(m.sel.H+dy, 1))
		}
	}
	if m.drag == DragCheck && (m.sel == nil || m.screen.InBarZone(rootX, rootY) ||
		(!m.sel.InMoveZone(rootX, rootY) && !m.sel.InResizeZone(rootX, rootY))) {
		m.grabResizeAbort()
	}
	if m.drag != DragNone {
		return
	}

	// Raise the bar when the pointer hits its screen edge; useful for
	// apps that capture the keyboard.
	if m.screen.InBarZone(rootX, rootY) && !m.barFocus {
		m.barFocus = true
		m.restack(nil, Refresh)
		m.dpy.FocusRoot()
		m.dpy.ClearActiveWindow()
	} else if !m.screen.InBarZone(rootX, rootY) && m.barFocus {
		m.barFocus = false
		if m.sel != nil {
			m.Focus(m.sel)
		}
		m.restack(nil, Refresh)
	}

	if win != m.hoverWin {
		m.hover = m.reg.Find(win)
		m.hoverWin = win
	}
	// Focus follows mouse.
	if m.hover != nil && m.hover != m.sel {
		m.Focus(m.hover)
	}
	// Arm edge dragging when the pointer rests on a border with no
	// buttons held.
	if m.hover != nil && state&anyButtonMask == 0 &&
		(m.hover.InMoveZone(rootX, rootY) || m.hover.InResizeZone(rootX, rootY)) {
		m.grabResize(DragCheck)
	}
}

// HandleExpose redraws the bar once the last expose in a series arrives.
func (m *Manager) HandleExpose(count int) {
	if count == 0 {
		m.drawBar(false)
	}
}
