package wm

import (
	"log"

	"github.com/1broseidon/tilewm/internal/config"
)

// Key is a key binding resolved against the live keyboard mapping.
type Key struct {
	Code    uint32
	Mod     uint16
	Binding config.KeyBinding
}

const modMask = config.ModShift | config.ModControl | config.ModAlt | config.ModSuper

// anyButtonMask covers the five pointer button state bits.
const anyButtonMask uint16 = 0x1f00

// Manager owns all window management state: the client registry, the view
// mask, per-monitor layout parameters, focus, stacking slots and the drag
// machine. It is single-threaded: the event loop feeds it one event at a
// time and every handler runs to completion before the next.
type Manager struct {
	cfg     *config.Config
	dpy     Display
	bar     Bar
	spawner Spawner

	screen Screen
	reg    Registry
	stack  Stacker

	tagset uint32
	mfact  []float64
	nmain  []int

	sel      *Client
	barFocus bool
	status   string

	drag         DragMode
	lastX, lastY int
	hoverWin     WindowID
	hover        *Client

	borderPx    uint32
	selBorderPx uint32

	keys             []Key
	stackReleaseCode uint32

	quit bool
}

// New builds a Manager over the given display. cfg must already have
// passed config.Validate; in particular the border colors are assumed
// well-formed and parse errors here are ignored.
func New(cfg *config.Config, dpy Display, bar Bar, spawner Spawner) *Manager {
	borderPx, _ := config.ParseColor(cfg.Colors.Border)
	selBorderPx, _ := config.ParseColor(cfg.Colors.SelBorder)
	return &Manager{
		cfg:         cfg,
		dpy:         dpy,
		bar:         bar,
		spawner:     spawner,
		tagset:      1,
		borderPx:    borderPx,
		selBorderPx: selBorderPx,
	}
}

// Done reports whether a quit was requested.
func (m *Manager) Done() bool { return m.quit }

// Selected returns the currently focused client, if any.
func (m *Manager) Selected() *Client { return m.sel }

// View returns the current visible tag mask.
func (m *Manager) View() uint32 { return m.tagset }

// Drag returns the current input machine state.
func (m *Manager) Drag() DragMode { return m.drag }

// SetKeymap installs the resolved key bindings and the keycode whose
// release commits a stack cycle.
func (m *Manager) SetKeymap(keys []Key, stackRelease uint32) {
	m.keys = keys
	m.stackReleaseCode = stackRelease
}

// SetMonitors installs a new monitor split, preserving per-monitor layout
// parameters where monitors survive, and rearranges everything.
func (m *Manager) SetMonitors(w, h int, mons []Monitor) {
	m.screen = Screen{
		W:      w,
		H:      h,
		Mons:   mons,
		TopBar: m.cfg.TopBar,
		BarH:   m.cfg.BarHeight,
	}
	mfact := make([]float64, len(mons))
	nmain := make([]int, len(mons))
	for i := range mons {
		mfact[i] = m.cfg.MFact
		nmain[i] = m.cfg.NMain
		if i < len(m.mfact) {
			mfact[i] = m.mfact[i]
			nmain[i] = m.nmain[i]
		}
	}
	m.mfact = mfact
	m.nmain = nmain
	if m.bar != nil {
		m.bar.Reposition(mons[0].X, m.screen.BarY(), mons[0].W, m.cfg.BarHeight)
	}
	m.arrange()
}

// resize moves and resizes a client through the geometry resolver, applying
// the result only when something actually changed.
func (m *Manager) resize(c *Client, x, y, w, h int) {
	g := m.screen.Resolve(c, x, y, w, h, m.cfg.Snap)
	if g.X != c.X || g.Y != c.Y || g.W != c.W || g.H != c.H {
		c.X, c.Y, c.W, c.H = g.X, g.Y, g.W, g.H
		m.dpy.ApplyGeometry(c.Win, g, c.BW)
	}
}

// arrange shows and hides clients for the current view, retiles every
// monitor and lifts the selection back on top.
func (m *Manager) arrange() {
	m.Focus(nil)
	for c := m.reg.First(); c != nil; c = c.Next() {
		if c.VisibleIn(m.tagset) {
			m.dpy.MoveWindow(c.Win, c.X, c.Y)
		} else {
			// Park hidden windows offscreen instead of unmapping, so
			// no unmap round-trips are needed to bring them back.
			m.dpy.MoveWindow(c.Win, c.TotalW()*-2, c.Y)
		}
	}
	tile(&m.screen, m.reg.First(), m.tagset, m.mfact, m.nmain, m.resize)
	m.restack(m.sel, Raise)
}

// restack recomputes stacking for mode applied to c and pushes the order
// and the stacking list property to the server.
func (m *Manager) restack(c *Client, mode RestackMode) {
	order := m.stack.Restack(&m.reg, c, mode, m.bar.Window(), m.barFocus)
	m.dpy.Restack(order)
	clients := ClientOrder(order, m.bar.Window())
	for i, j := 0, len(clients)-1; i < j; i, j = i+1, j-1 {
		clients[i], clients[j] = clients[j], clients[i]
	}
	m.dpy.SetStackingList(clients)
}

func (m *Manager) publishClientList() {
	wins := make([]WindowID, 0, m.reg.Len())
	for c := m.reg.First(); c != nil; c = c.Next() {
		wins = append(wins, c.Win)
	}
	// Oldest first, matching the order windows were mapped in.
	for i, j := 0, len(wins)-1; i < j; i, j = i+1, j-1 {
		wins[i], wins[j] = wins[j], wins[i]
	}
	m.dpy.SetClientList(wins)
}

func (m *Manager) setFullscreen(c *Client, on bool) {
	if on && !c.Fullscreen {
		m.dpy.SetFullscreenProp(c.Win, true)
		c.Fullscreen = true
		c.FloatSaved = c.Floating
		c.FBW = c.BW
		c.BW = 0
		c.Floating = true
		// Span every monitor between the one under the top-left corner
		// and the one under the bottom-right, when that makes a sane
		// rectangle.
		m1 := m.screen.MonDesc(c.X, c.Y)
		m2 := -1
		for i := range m.screen.Mons {
			if m.screen.Mons[i].contains(c.X+c.TotalW(), c.Y+c.TotalH()) {
				m2 = i
				break
			}
		}
		if m2 < 0 || m.screen.Mons[m2].X+m.screen.Mons[m2].W <= m.screen.Mons[m1].X ||
			m.screen.Mons[m2].Y+m.screen.Mons[m2].H <= m.screen.Mons[m1].Y {
			m2 = m1
		}
		w := m.screen.Mons[m2].X - m.screen.Mons[m1].X + m.screen.Mons[m2].W
		h := m.screen.Mons[m2].Y - m.screen.Mons[m1].Y + m.screen.Mons[m2].H
		m.resize(c, m.screen.Mons[m1].X, m.screen.Mons[m1].Y, w, h)
		m.restack(c, Zoom)
	} else if !on && c.Fullscreen {
		m.dpy.SetFullscreenProp(c.Win, false)
		c.Fullscreen = false
		c.Floating = c.FloatSaved
		c.BW = c.FBW
		m.resize(c, c.FX, c.FY, c.FW, c.FH)
	}
	m.arrange()
}

// Do runs a key binding's action.
func (m *Manager) Do(b config.KeyBinding) {
	mask := m.cfg.TagMask()
	if b.Tag > 0 {
		mask = 1 << (b.Tag - 1)
	}
	m.runAction(b.Action, b.Amount, mask, b.Command)
}

func (m *Manager) runAction(action config.Action, amount int, tagMask uint32, command []string) {
	n := len(m.cfg.Tags)
	switch action {
	case config.ActionSpawn:
		m.spawner.Spawn(command)
	case config.ActionView:
		m.tagset = tagMask & m.cfg.TagMask()
		m.arrange()
	case config.ActionToggleView:
		if next := m.tagset ^ (tagMask & m.cfg.TagMask()); next != 0 {
			m.tagset = next
			m.arrange()
		}
	case config.ActionViewShift:
		m.tagset = RotateTags(m.tagset, amount, n)
		m.arrange()
	case config.ActionViewTagShift:
		if m.sel != nil {
			m.sel.Tags = RotateTags(m.sel.Tags, amount, n)
		}
		m.tagset = RotateTags(m.tagset, amount, n)
		m.arrange()
	case config.ActionTag:
		if m.sel != nil && tagMask&m.cfg.TagMask() != 0 {
			m.sel.Tags = tagMask & m.cfg.TagMask()
			m.arrange()
		}
	case config.ActionToggleTag:
		if m.sel != nil {
			if next := m.sel.Tags ^ (tagMask & m.cfg.TagMask()); next != 0 {
				m.sel.Tags = next
				m.arrange()
			}
		}
	case config.ActionFocusStack:
		m.FocusStack(amount)
	case config.ActionGrabStack:
		m.grabStack(amount)
	case config.ActionGrabMove:
		m.grabResize(DragMove)
	case config.ActionGrabResize:
		m.grabResize(DragSize)
	case config.ActionToggleFloating:
		m.toggleFloating()
	case config.ActionToggleFullscreen:
		if m.sel != nil {
			m.setFullscreen(m.sel, !m.sel.Fullscreen)
		}
	case config.ActionPin:
		m.restack(m.sel, Pin)
	case config.ActionZoom:
		m.restack(m.sel, Zoom)
		m.arrange() // zooming tiled windows can rearrange tiling
	case config.ActionKillClient:
		m.killClient()
	case config.ActionQuit:
		m.quit = true
	default:
		log.Printf("unhandled action %q", action)
	}
}

func (m *Manager) toggleFloating() {
	if m.sel == nil {
		return
	}
	if m.sel.Fullscreen {
		m.setFullscreen(m.sel, false)
	}
	m.sel.Floating = !m.sel.Floating
	if m.sel.Floating {
		m.resize(m.sel, m.sel.FX, m.sel.FY, m.sel.FW, m.sel.FH)
	}
	m.arrange()
}

func (m *Manager) killClient() {
	if m.sel == nil {
		return
	}
	if !m.dpy.SendDelete(m.sel.Win) {
		m.dpy.ForceKill(m.sel.Win)
	}
}

// grabResize enters a pointer drag for the selected client. Tiled clients
// always drag the layout instead of their own frame.
func (m *Manager) grabResize(mode DragMode) {
	if m.drag == mode {
		return
	}
	if m.sel == nil || m.sel.Fullscreen {
		return
	}
	m.drag = mode
	if (mode == DragMove || mode == DragSize) && !m.sel.Floating {
		m.drag = DragTile
	}
	if !m.dpy.GrabPointer() {
		m.drag = DragNone
		return
	}
	if m.drag != DragCheck {
		if !m.dpy.GrabKeyboard() {
			m.dpy.UngrabPointer()
			m.drag = DragNone
			return
		}
		m.restack(m.sel, Raise)
	}
}

// grabResizeAbort ends a pointer drag once it is safe to do so. Drags hold
// until every key is released so key repeat cannot flap the grab; DragTile
// back-solves the monitor's layout parameters from where the window ended
// up.
func (m *Manager) grabResizeAbort() {
	if !m.drag.pointerDrag() {
		return
	}
	if m.drag != DragCheck && m.dpy.AnyKeyDown() {
		return
	}
	if m.sel != nil && m.drag == DragTile {
		mon := m.screen.MonAsc(m.sel.X, m.sel.Y)
		mfact := float64(m.sel.TotalW()) / float64(m.screen.Mons[mon].W)
		m.mfact[mon] = min(0.95, max(0.05, mfact))
		m.nmain[mon] = max(1, m.screen.Mons[mon].H/m.sel.TotalH())
		m.arrange()
	}
	m.dpy.UngrabPointer()
	m.dpy.UngrabKeyboard()
	m.drag = DragNone
}

// grabStack begins or continues keyboard window cycling.
func (m *Manager) grabStack(dir int) {
	if m.drag.pointerDrag() {
		return
	}
	if m.drag != DragStack {
		if !m.dpy.GrabKeyboard() {
			return
		}
		m.drag = DragStack
	}
	m.FocusStack(dir)
}

func (m *Manager) snapshot(useZen bool) BarSnapshot {
	var occ, urg uint32
	for c := m.reg.First(); c != nil; c = c.Next() {
		occ |= c.Tags
		if c.Urgent {
			urg |= c.Tags
		}
	}
	title := ""
	if m.sel != nil {
		title = m.sel.Name
		if useZen {
			title = m.sel.ZenName
		}
	}
	return BarSnapshot{
		Launcher: ">",
		Title:    title,
		Status:   m.status,
		Tags:     m.cfg.Tags,
		View:     m.tagset,
		Occupied: occ,
		Urgent:   urg,
		Width:    m.screen.Mons[0].W,
	}
}

func (m *Manager) drawBar(useZen bool) {
	if m.bar == nil || len(m.screen.Mons) == 0 {
		return
	}
	m.bar.Draw(m.snapshot(useZen))
}

// Cleanup reverses management of every client: all windows become visible
// on every tag and are handed back to the server untouched.
func (m *Manager) Cleanup() {
	m.tagset = m.cfg.TagMask()
	m.arrange()
	for m.reg.First() != nil {
		m.unmanage(m.reg.First(), false)
	}
	m.dpy.FocusRoot()
	m.dpy.ClearActiveWindow()
}
