package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/BurntSushi/xgbutil/xprop"
)

// rootEventMask is everything a window manager must see on the root window:
// redirected map and configure requests, child lifecycle notifications,
// clicks, pointer motion and root property changes.
const rootEventMask = xproto.EventMaskSubstructureRedirect |
	xproto.EventMaskSubstructureNotify |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskPropertyChange

// Connection owns the X server connection and the resources every other
// part of the manager shares: interned atoms, cursors and the root window.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	atomWMProtocols    xproto.Atom
	atomWMDeleteWindow xproto.Atom
	atomWMTakeFocus    xproto.Atom
	atomWMState        xproto.Atom
	atomNetWMName      xproto.Atom
	atomNetWMState     xproto.Atom
	atomNetFullscreen  xproto.Atom
	atomNetActiveWin   xproto.Atom
	atomNetWindowType  xproto.Atom

	cursorNormal xproto.Cursor
	cursorSizing xproto.Cursor

	randrActive bool
}

// NewConnection connects to the X server and interns the atoms and cursors
// the manager needs.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	// Required for resolving keysym names to keycodes.
	keybind.Initialize(xu)

	c := &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}

	for _, a := range []struct {
		name string
		dst  *xproto.Atom
	}{
		{"WM_PROTOCOLS", &c.atomWMProtocols},
		{"WM_DELETE_WINDOW", &c.atomWMDeleteWindow},
		{"WM_TAKE_FOCUS", &c.atomWMTakeFocus},
		{"WM_STATE", &c.atomWMState},
		{"_NET_WM_NAME", &c.atomNetWMName},
		{"_NET_WM_STATE", &c.atomNetWMState},
		{"_NET_WM_STATE_FULLSCREEN", &c.atomNetFullscreen},
		{"_NET_ACTIVE_WINDOW", &c.atomNetActiveWin},
		{"_NET_WM_WINDOW_TYPE", &c.atomNetWindowType},
	} {
		atom, err := xprop.Atm(xu, a.name)
		if err != nil {
			xu.Conn().Close()
			return nil, fmt.Errorf("intern %s: %w", a.name, err)
		}
		*a.dst = atom
	}

	if c.cursorNormal, err = xcursor.CreateCursor(xu, xcursor.LeftPtr); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("create cursor: %w", err)
	}
	if c.cursorSizing, err = xcursor.CreateCursor(xu, xcursor.Sizing); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("create cursor: %w", err)
	}

	if err := randr.Init(xu.Conn()); err == nil {
		c.randrActive = true
		randr.SelectInput(xu.Conn(), c.Root, randr.NotifyMaskScreenChange)
	}

	return c, nil
}

// BecomeWM claims window management of the display by selecting the
// redirect masks on the root window. Exactly one client may hold them, so
// a BadAccess here means another window manager is already running.
func (c *Connection) BecomeWM() error {
	err := xproto.ChangeWindowAttributesChecked(
		c.XUtil.Conn(),
		c.Root,
		xproto.CwEventMask|xproto.CwCursor,
		// Value list order follows the bit positions of the mask:
		// CwEventMask comes before CwCursor.
		[]uint32{uint32(rootEventMask), uint32(c.cursorNormal)},
	).Check()
	if err != nil {
		if _, ok := err.(xproto.AccessError); ok {
			return errors.New("another window manager is already running")
		}
		return err
	}
	return nil
}

func (c *Connection) Conn() *xgb.Conn { return c.XUtil.Conn() }

// Close disconnects from the X server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
