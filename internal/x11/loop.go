package x11

import (
	"log"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/tilewm/internal/config"
	"github.com/1broseidon/tilewm/internal/wm"
)

// ManageExisting adopts windows that were already mapped before the
// manager started, as after a restart or a takeover from another
// window manager.
func ManageExisting(c *Connection, m *wm.Manager) error {
	tree, err := xproto.QueryTree(c.Conn(), c.Root).Reply()
	if err != nil {
		return err
	}
	for _, child := range tree.Children {
		attrs, err := xproto.GetWindowAttributes(c.Conn(), child).Reply()
		if err != nil || attrs.OverrideRedirect || attrs.MapState != xproto.MapStateViewable {
			continue
		}
		m.HandleMapRequest(wm.WindowID(child))
	}
	return nil
}

// Run dispatches X events into the manager until it quits or the
// connection drops.
func Run(c *Connection, cfg *config.Config, m *wm.Manager) error {
	conn := c.Conn()
	for !m.Done() {
		event, xerr := conn.WaitForEvent()
		if event == nil && xerr == nil {
			return nil // connection closed
		}
		if xerr != nil {
			triageError(xerr)
			continue
		}

		switch ev := event.(type) {
		case xproto.MapRequestEvent:
			m.HandleMapRequest(wm.WindowID(ev.Window))
		case xproto.DestroyNotifyEvent:
			m.HandleDestroyNotify(wm.WindowID(ev.Window))
		case xproto.UnmapNotifyEvent:
			// The send-event bit that would distinguish an ICCCM
			// withdraw is stripped by the transport, so every unmap of
			// a managed window ends management.
			m.HandleUnmapNotify(wm.WindowID(ev.Window), false)
		case xproto.ConfigureRequestEvent:
			handleConfigureRequest(c, m, ev)
		case xproto.ButtonPressEvent:
			win := ev.Event
			if win == c.Root && ev.Child != 0 {
				win = ev.Child
			}
			m.HandleButtonPress(wm.WindowID(win), int(ev.Detail), ev.State,
				int(ev.EventX), int(ev.RootX), int(ev.RootY))
		case xproto.ButtonReleaseEvent:
			m.HandleButtonRelease()
		case xproto.MotionNotifyEvent:
			win := ev.Event
			if win == c.Root {
				win = ev.Child
			}
			m.HandleMotion(wm.WindowID(win), int(ev.RootX), int(ev.RootY), ev.State)
		case xproto.EnterNotifyEvent:
			win := ev.Event
			if win == c.Root {
				win = ev.Child
			}
			m.HandleMotion(wm.WindowID(win), int(ev.RootX), int(ev.RootY), ev.State)
		case xproto.KeyPressEvent:
			m.HandleKeyPress(uint32(ev.Detail), ev.State)
		case xproto.KeyReleaseEvent:
			m.HandleKeyRelease(uint32(ev.Detail), ev.State)
		case xproto.PropertyNotifyEvent:
			handlePropertyNotify(c, m, ev)
		case xproto.ClientMessageEvent:
			handleClientMessage(c, m, ev)
		case xproto.ExposeEvent:
			m.HandleExpose(int(ev.Count))
		case xproto.MappingNotifyEvent:
			keys, stackRelease, err := c.RefreshKeymap(cfg)
			if err != nil {
				log.Printf("keymap refresh: %v", err)
				continue
			}
			m.SetKeymap(keys, stackRelease)
		case randr.ScreenChangeNotifyEvent:
			w, h, mons, err := c.EffectiveMonitors(cfg)
			if err != nil {
				log.Printf("monitor query: %v", err)
				continue
			}
			m.SetMonitors(w, h, mons)
		}
	}
	return nil
}

func handleConfigureRequest(c *Connection, m *wm.Manager, ev xproto.ConfigureRequestEvent) {
	req := wm.ConfigureRequest{
		Win:         wm.WindowID(ev.Window),
		X:           int(ev.X),
		Y:           int(ev.Y),
		W:           int(ev.Width),
		H:           int(ev.Height),
		BorderWidth: int(ev.BorderWidth),
		HasX:        ev.ValueMask&xproto.ConfigWindowX != 0,
		HasY:        ev.ValueMask&xproto.ConfigWindowY != 0,
		HasW:        ev.ValueMask&xproto.ConfigWindowWidth != 0,
		HasH:        ev.ValueMask&xproto.ConfigWindowHeight != 0,
		HasBW:       ev.ValueMask&xproto.ConfigWindowBorderWidth != 0,
	}
	if m.HandleConfigureRequest(req) {
		return
	}
	// Not ours; apply the request exactly as asked.
	mask, values := uint16(0), []uint32(nil)
	if req.HasX {
		mask |= xproto.ConfigWindowX
		values = append(values, uint32(ev.X))
	}
	if req.HasY {
		mask |= xproto.ConfigWindowY
		values = append(values, uint32(ev.Y))
	}
	if req.HasW {
		mask |= xproto.ConfigWindowWidth
		values = append(values, uint32(ev.Width))
	}
	if req.HasH {
		mask |= xproto.ConfigWindowHeight
		values = append(values, uint32(ev.Height))
	}
	if req.HasBW {
		mask |= xproto.ConfigWindowBorderWidth
		values = append(values, uint32(ev.BorderWidth))
	}
	if ev.ValueMask&xproto.ConfigWindowSibling != 0 {
		mask |= xproto.ConfigWindowSibling
		values = append(values, uint32(ev.Sibling))
	}
	if ev.ValueMask&xproto.ConfigWindowStackMode != 0 {
		mask |= xproto.ConfigWindowStackMode
		values = append(values, uint32(ev.StackMode))
	}
	xproto.ConfigureWindow(c.Conn(), ev.Window, mask, values)
}

func handlePropertyNotify(c *Connection, m *wm.Manager, ev xproto.PropertyNotifyEvent) {
	if ev.Window == c.Root {
		if ev.Atom == xproto.AtomWmName {
			m.HandleStatusChanged()
		}
		return
	}
	if ev.State == xproto.PropertyDelete {
		return
	}
	var kind wm.PropKind
	switch ev.Atom {
	case xproto.AtomWmTransientFor:
		kind = wm.PropTransient
	case xproto.AtomWmNormalHints:
		kind = wm.PropNormalHints
	case xproto.AtomWmHints:
		kind = wm.PropHints
	case xproto.AtomWmName, c.atomNetWMName:
		kind = wm.PropName
	case c.atomNetWindowType:
		kind = wm.PropWindowType
	default:
		return
	}
	m.HandleProperty(wm.WindowID(ev.Window), kind, uint32(ev.Time))
}

func handleClientMessage(c *Connection, m *wm.Manager, ev xproto.ClientMessageEvent) {
	if ev.Format != 32 {
		return
	}
	data := ev.Data.Data32
	switch ev.Type {
	case c.atomNetWMState:
		if xproto.Atom(data[1]) == c.atomNetFullscreen ||
			xproto.Atom(data[2]) == c.atomNetFullscreen {
			m.HandleFullscreenMessage(wm.WindowID(ev.Window), int(data[0]))
		}
	case c.atomNetActiveWin:
		m.HandleActivateMessage(wm.WindowID(ev.Window))
	}
}

// Core protocol request opcodes for the requests whose failures are
// routine races rather than bugs.
const (
	opConfigureWindow   = 12
	opGrabButton        = 28
	opGrabKey           = 33
	opSetInputFocus     = 42
	opPolyFillRectangle = 70
	opImageText8        = 76
)

// triageError drops the asynchronous protocol errors that are routine for
// a window manager: windows vanish between the event that named them and
// our follow-up requests. BadWindow is harmless from any request; the
// other error kinds are only excused for the specific requests that race
// against client lifetimes. Anything else signals a bug, and limping on
// with a desynchronized view of the session is worse than dying.
func triageError(err error) {
	if benignError(err) {
		return
	}
	log.Fatalf("x11: %v", err)
}

func benignError(err error) bool {
	switch e := err.(type) {
	case xproto.WindowError:
		return true
	case xproto.MatchError:
		return e.MajorOpcode == opSetInputFocus || e.MajorOpcode == opConfigureWindow
	case xproto.DrawableError:
		return e.MajorOpcode == opPolyFillRectangle || e.MajorOpcode == opImageText8
	case xproto.AccessError:
		return e.MajorOpcode == opGrabButton || e.MajorOpcode == opGrabKey
	}
	return false
}
