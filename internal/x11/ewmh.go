package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

var supportedAtoms = []string{
	"_NET_SUPPORTED",
	"_NET_SUPPORTING_WM_CHECK",
	"_NET_WM_NAME",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_ACTIVE_WINDOW",
	"_NET_CLIENT_LIST",
	"_NET_CLIENT_LIST_STACKING",
	"_NET_WM_WINDOW_TYPE",
}

// AnnounceWM publishes the EWMH identity properties: a supporting check
// window pointing at itself, the manager's name, and the supported atom
// list. Returns the check window so it can be destroyed on shutdown.
func (c *Connection) AnnounceWM(name string) (xproto.Window, error) {
	check, err := xproto.NewWindowId(c.Conn())
	if err != nil {
		return 0, err
	}
	// InputOnly windows require depth 0 and the parent's visual.
	err = xproto.CreateWindowChecked(
		c.Conn(),
		0,
		check,
		c.Root,
		-1, -1, // offscreen
		1, 1,
		0,
		xproto.WindowClassInputOnly,
		xproto.Visualid(xproto.WindowClassCopyFromParent),
		0, nil,
	).Check()
	if err != nil {
		return 0, err
	}
	if err := ewmh.SupportingWmCheckSet(c.XUtil, c.Root, check); err != nil {
		return 0, err
	}
	if err := ewmh.SupportingWmCheckSet(c.XUtil, check, check); err != nil {
		return 0, err
	}
	if err := ewmh.WmNameSet(c.XUtil, check, name); err != nil {
		return 0, err
	}
	if err := ewmh.SupportedSet(c.XUtil, supportedAtoms); err != nil {
		return 0, err
	}
	return check, nil
}

// RetireWM removes the EWMH identity on shutdown.
func (c *Connection) RetireWM(check xproto.Window) {
	xproto.DeleteProperty(c.Conn(), c.Root, c.atomNetActiveWin)
	xproto.DestroyWindow(c.Conn(), check)
	// Hand input focus back to whatever is under the pointer.
	xproto.SetInputFocus(c.Conn(), xproto.InputFocusPointerRoot,
		xproto.Window(xproto.InputFocusPointerRoot), xproto.TimeCurrentTime)
}
