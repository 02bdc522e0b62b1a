package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/1broseidon/tilewm/internal/wm"
)

// clientEventMask is selected on every managed window so the manager hears
// about title and hint changes, destruction, and the pointer entering or
// crossing the window.
const clientEventMask = xproto.EventMaskPropertyChange |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskPointerMotion

const grabEventMask = xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion

// Server adapts the X connection to what the manager core expects.
// Commands are issued unchecked; the server reports failures
// asynchronously and the event loop triages them.
type Server struct {
	c *Connection
}

func NewServer(c *Connection) *Server {
	return &Server{c: c}
}

func (s *Server) ApplyGeometry(win wm.WindowID, g wm.Geom, borderWidth int) {
	xproto.ConfigureWindow(s.c.Conn(), xproto.Window(win),
		xproto.ConfigWindowX|xproto.ConfigWindowY|
			xproto.ConfigWindowWidth|xproto.ConfigWindowHeight|
			xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(g.X), uint32(g.Y), uint32(g.W), uint32(g.H), uint32(borderWidth)})
	// ICCCM 4.1.5: clients whose configure request was overridden learn
	// their real geometry from a synthetic ConfigureNotify.
	s.SendConfigureNotify(win, g, borderWidth)
}

func (s *Server) MoveWindow(win wm.WindowID, x, y int) {
	xproto.ConfigureWindow(s.c.Conn(), xproto.Window(win),
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(x), uint32(y)})
}

func (s *Server) MoveResizeWindow(win wm.WindowID, x, y, w, h int) {
	xproto.ConfigureWindow(s.c.Conn(), xproto.Window(win),
		xproto.ConfigWindowX|xproto.ConfigWindowY|
			xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(x), uint32(y), uint32(w), uint32(h)})
}

func (s *Server) SendConfigureNotify(win wm.WindowID, g wm.Geom, borderWidth int) {
	ev := xproto.ConfigureNotifyEvent{
		Event:       xproto.Window(win),
		Window:      xproto.Window(win),
		X:           int16(g.X),
		Y:           int16(g.Y),
		Width:       uint16(g.W),
		Height:      uint16(g.H),
		BorderWidth: uint16(borderWidth),
	}
	xproto.SendEvent(s.c.Conn(), false, xproto.Window(win),
		xproto.EventMaskStructureNotify, string(ev.Bytes()))
}

func (s *Server) MapWindow(win wm.WindowID) {
	xproto.MapWindow(s.c.Conn(), xproto.Window(win))
}

func (s *Server) Restack(order []wm.WindowID) {
	if len(order) == 0 {
		return
	}
	xproto.ConfigureWindow(s.c.Conn(), xproto.Window(order[0]),
		xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove})
	for i := 1; i < len(order); i++ {
		xproto.ConfigureWindow(s.c.Conn(), xproto.Window(order[i]),
			xproto.ConfigWindowSibling|xproto.ConfigWindowStackMode,
			[]uint32{uint32(order[i-1]), xproto.StackModeBelow})
	}
}

func (s *Server) SetBorder(win wm.WindowID, pixel uint32) {
	xproto.ChangeWindowAttributes(s.c.Conn(), xproto.Window(win),
		xproto.CwBorderPixel, []uint32{pixel})
}

func (s *Server) FocusWindow(win wm.WindowID) {
	xproto.SetInputFocus(s.c.Conn(), xproto.InputFocusPointerRoot,
		xproto.Window(win), xproto.TimeCurrentTime)
}

func (s *Server) FocusRoot() {
	xproto.SetInputFocus(s.c.Conn(), xproto.InputFocusPointerRoot,
		s.c.Root, xproto.TimeCurrentTime)
}

// GrabClickToRaise arms a synchronous grab for any button on an unfocused
// window. The press freezes event processing until ReplayPointer both
// raises the window and hands the click to the application.
func (s *Server) GrabClickToRaise(win wm.WindowID) {
	xproto.GrabButton(s.c.Conn(), false, xproto.Window(win),
		uint16(grabEventMask), xproto.GrabModeSync, xproto.GrabModeSync,
		xproto.WindowNone, xproto.CursorNone,
		xproto.ButtonIndexAny, xproto.ModMaskAny)
}

func (s *Server) UngrabClickToRaise(win wm.WindowID) {
	xproto.UngrabButton(s.c.Conn(), xproto.ButtonIndexAny,
		xproto.Window(win), xproto.ModMaskAny)
}

func (s *Server) ReplayPointer() {
	xproto.AllowEvents(s.c.Conn(), xproto.AllowReplayPointer, xproto.TimeCurrentTime)
}

func (s *Server) GrabPointer() bool {
	reply, err := xproto.GrabPointer(s.c.Conn(), false, s.c.Root,
		uint16(grabEventMask), xproto.GrabModeAsync, xproto.GrabModeAsync,
		xproto.WindowNone, s.c.cursorSizing, xproto.TimeCurrentTime).Reply()
	return err == nil && reply.Status == xproto.GrabStatusSuccess
}

func (s *Server) UngrabPointer() {
	xproto.UngrabPointer(s.c.Conn(), xproto.TimeCurrentTime)
}

func (s *Server) GrabKeyboard() bool {
	reply, err := xproto.GrabKeyboard(s.c.Conn(), true, s.c.Root,
		xproto.TimeCurrentTime, xproto.GrabModeAsync, xproto.GrabModeAsync).Reply()
	return err == nil && reply.Status == xproto.GrabStatusSuccess
}

func (s *Server) UngrabKeyboard() {
	xproto.UngrabKeyboard(s.c.Conn(), xproto.TimeCurrentTime)
}

// AnyKeyDown reports whether any key on the keyboard is currently pressed.
func (s *Server) AnyKeyDown() bool {
	reply, err := xproto.QueryKeymap(s.c.Conn()).Reply()
	if err != nil {
		return false
	}
	for _, b := range reply.Keys {
		if b != 0 {
			return true
		}
	}
	return false
}

func (s *Server) PointerAt() (int, int, bool) {
	reply, err := xproto.QueryPointer(s.c.Conn(), s.c.Root).Reply()
	if err != nil {
		return 0, 0, false
	}
	return int(reply.RootX), int(reply.RootY), true
}

func (s *Server) supportsProtocol(win wm.WindowID, atom xproto.Atom) bool {
	protocols, err := icccm.WmProtocolsGet(s.c.XUtil, xproto.Window(win))
	if err != nil {
		return false
	}
	name := "WM_TAKE_FOCUS"
	if atom == s.c.atomWMDeleteWindow {
		name = "WM_DELETE_WINDOW"
	}
	for _, p := range protocols {
		if p == name {
			return true
		}
	}
	return false
}

func (s *Server) sendProtocol(win wm.WindowID, atom xproto.Atom) {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(win),
		Type:   s.c.atomWMProtocols,
		Data: xproto.ClientMessageDataUnionData32New(
			[]uint32{uint32(atom), uint32(xproto.TimeCurrentTime), 0, 0, 0}),
	}
	xproto.SendEvent(s.c.Conn(), false, xproto.Window(win),
		xproto.EventMaskNoEvent, string(ev.Bytes()))
}

func (s *Server) SendTakeFocus(win wm.WindowID) {
	if s.supportsProtocol(win, s.c.atomWMTakeFocus) {
		s.sendProtocol(win, s.c.atomWMTakeFocus)
	}
}

func (s *Server) SendDelete(win wm.WindowID) bool {
	if !s.supportsProtocol(win, s.c.atomWMDeleteWindow) {
		return false
	}
	s.sendProtocol(win, s.c.atomWMDeleteWindow)
	return true
}

// ForceKill disconnects a client that ignores the delete protocol. The
// server grab keeps the kill from racing a concurrent unmap.
func (s *Server) ForceKill(win wm.WindowID) {
	conn := s.c.Conn()
	xproto.GrabServer(conn)
	xproto.SetCloseDownMode(conn, xproto.CloseDownDestroyAll)
	xproto.KillClient(conn, uint32(win))
	conn.Sync()
	xproto.UngrabServer(conn)
}

func (s *Server) SetActiveWindow(win wm.WindowID) {
	ewmh.ActiveWindowSet(s.c.XUtil, xproto.Window(win))
}

func (s *Server) ClearActiveWindow() {
	xproto.DeleteProperty(s.c.Conn(), s.c.Root, s.c.atomNetActiveWin)
}

func (s *Server) SetClientList(wins []wm.WindowID) {
	ewmh.ClientListSet(s.c.XUtil, toXWindows(wins))
}

func (s *Server) SetStackingList(bottomToTop []wm.WindowID) {
	ewmh.ClientListStackingSet(s.c.XUtil, toXWindows(bottomToTop))
}

func (s *Server) SetFullscreenProp(win wm.WindowID, on bool) {
	states := []string{}
	if on {
		states = []string{"_NET_WM_STATE_FULLSCREEN"}
	}
	ewmh.WmStateSet(s.c.XUtil, xproto.Window(win), states)
}

func (s *Server) SetNormalState(win wm.WindowID) {
	icccm.WmStateSet(s.c.XUtil, xproto.Window(win),
		&icccm.WmState{State: icccm.StateNormal})
}

func (s *Server) SetWithdrawn(win wm.WindowID) {
	icccm.WmStateSet(s.c.XUtil, xproto.Window(win),
		&icccm.WmState{State: icccm.StateWithdrawn})
}

// ReleaseWindow hands a surviving window back to the server untouched:
// original border, no grabs, no WM_STATE. The server grab makes the
// teardown atomic against the client racing its own unmap.
func (s *Server) ReleaseWindow(win wm.WindowID, borderWidth int) {
	conn := s.c.Conn()
	xproto.GrabServer(conn)
	xproto.ConfigureWindow(conn, xproto.Window(win),
		xproto.ConfigWindowBorderWidth, []uint32{uint32(borderWidth)})
	s.UngrabClickToRaise(win)
	xproto.DeleteProperty(conn, xproto.Window(win), s.c.atomWMState)
	conn.Sync()
	xproto.UngrabServer(conn)
}

func (s *Server) SetUrgency(win wm.WindowID, urgent bool) {
	hints, err := icccm.WmHintsGet(s.c.XUtil, xproto.Window(win))
	if err != nil {
		hints = &icccm.Hints{}
	}
	if urgent {
		hints.Flags |= icccm.HintUrgency
	} else {
		hints.Flags &^= icccm.HintUrgency
	}
	icccm.WmHintsSet(s.c.XUtil, xproto.Window(win), hints)
}

func (s *Server) WindowAttributes(win wm.WindowID) (wm.Geom, int, bool, bool) {
	attrs, err := xproto.GetWindowAttributes(s.c.Conn(), xproto.Window(win)).Reply()
	if err != nil {
		return wm.Geom{}, 0, false, false
	}
	geom, err := xproto.GetGeometry(s.c.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return wm.Geom{}, 0, false, false
	}
	g := wm.Geom{
		X: int(geom.X),
		Y: int(geom.Y),
		W: int(geom.Width),
		H: int(geom.Height),
	}
	return g, int(geom.BorderWidth), attrs.OverrideRedirect, true
}

func (s *Server) WindowTitle(win wm.WindowID) string {
	if name, err := ewmh.WmNameGet(s.c.XUtil, xproto.Window(win)); err == nil && name != "" {
		return name
	}
	name, _ := icccm.WmNameGet(s.c.XUtil, xproto.Window(win))
	return name
}

func (s *Server) SizeHints(win wm.WindowID) wm.SizeHints {
	var out wm.SizeHints
	nh, err := icccm.WmNormalHintsGet(s.c.XUtil, xproto.Window(win))
	if err != nil {
		return out
	}
	if nh.Flags&icccm.SizeHintPBaseSize != 0 {
		out.BaseW = int(nh.BaseWidth)
		out.BaseH = int(nh.BaseHeight)
		out.MinW = int(nh.BaseWidth)
		out.MinH = int(nh.BaseHeight)
	}
	if nh.Flags&icccm.SizeHintPMaxSize != 0 {
		out.MaxW = int(nh.MaxWidth)
		out.MaxH = int(nh.MaxHeight)
	}
	if nh.Flags&icccm.SizeHintPMinSize != 0 {
		out.MinW = int(nh.MinWidth)
		out.MinH = int(nh.MinHeight)
	}
	if nh.Flags&icccm.SizeHintPAspect != 0 {
		if nh.MinAspectNum > 0 {
			out.MinA = float64(nh.MinAspectDen) / float64(nh.MinAspectNum)
		}
		if nh.MaxAspectDen > 0 {
			out.MaxA = float64(nh.MaxAspectNum) / float64(nh.MaxAspectDen)
		}
	}
	return out
}

func (s *Server) TransientFor(win wm.WindowID) (wm.WindowID, bool) {
	parent, err := icccm.WmTransientForGet(s.c.XUtil, xproto.Window(win))
	if err != nil || parent == 0 {
		return 0, false
	}
	return wm.WindowID(parent), true
}

func (s *Server) FullscreenRequested(win wm.WindowID) bool {
	states, err := ewmh.WmStateGet(s.c.XUtil, xproto.Window(win))
	if err != nil {
		return false
	}
	for _, st := range states {
		if st == "_NET_WM_STATE_FULLSCREEN" {
			return true
		}
	}
	return false
}

func (s *Server) UrgencyHint(win wm.WindowID) bool {
	hints, err := icccm.WmHintsGet(s.c.XUtil, xproto.Window(win))
	if err != nil {
		return false
	}
	return hints.Flags&icccm.HintUrgency != 0
}

// StatusText reads the root window name, the classic xsetroot status
// channel.
func (s *Server) StatusText() string {
	name, err := icccm.WmNameGet(s.c.XUtil, s.c.Root)
	if err != nil {
		return ""
	}
	return name
}

func (s *Server) WatchClient(win wm.WindowID) {
	xproto.ChangeWindowAttributes(s.c.Conn(), xproto.Window(win),
		xproto.CwEventMask, []uint32{uint32(clientEventMask)})
}

func toXWindows(wins []wm.WindowID) []xproto.Window {
	out := make([]xproto.Window, len(wins))
	for i, w := range wins {
		out[i] = xproto.Window(w)
	}
	return out
}
