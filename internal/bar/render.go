package bar

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/tilewm/internal/config"
	"github.com/1broseidon/tilewm/internal/wm"
	"github.com/1broseidon/tilewm/internal/x11"
)

// Bar owns the bar window and its drawing resources.
type Bar struct {
	c    *x11.Connection
	win  xproto.Window
	gc   xproto.Gcontext
	font xproto.Font

	height int
	fg     uint32
	bg     uint32
	mark   uint32
}

// New creates the bar window mapped above everything else. The window is
// override-redirect: the manager positions it itself and must never
// manage it as a client.
func New(c *x11.Connection, cfg *config.Config) (*Bar, error) {
	fg, err := config.ParseColor(cfg.Colors.BarFG)
	if err != nil {
		return nil, err
	}
	bg, err := config.ParseColor(cfg.Colors.BarBG)
	if err != nil {
		return nil, err
	}
	mark, err := config.ParseColor(cfg.Colors.Mark)
	if err != nil {
		return nil, err
	}

	conn := c.Conn()
	screen := c.XUtil.Screen()

	win, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, err
	}
	err = xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		win,
		c.Root,
		0, 0,
		1, uint16(cfg.BarHeight),
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwOverrideRedirect|xproto.CwEventMask,
		// Value list order follows the bit positions of the mask:
		// back_pixel, override_redirect, event_mask.
		[]uint32{bg, 1, xproto.EventMaskButtonPress | xproto.EventMaskExposure},
	).Check()
	if err != nil {
		return nil, fmt.Errorf("create bar window: %w", err)
	}

	font, err := xproto.NewFontId(conn)
	if err != nil {
		xproto.DestroyWindow(conn, win)
		return nil, err
	}
	opened := false
	for _, name := range []string{cfg.BarFont, "fixed", "9x15", "8x13", "6x13"} {
		if name == "" {
			continue
		}
		if xproto.OpenFontChecked(conn, font, uint16(len(name)), name).Check() == nil {
			opened = true
			break
		}
	}
	if !opened {
		xproto.DestroyWindow(conn, win)
		return nil, fmt.Errorf("no usable core font")
	}

	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		xproto.CloseFont(conn, font)
		xproto.DestroyWindow(conn, win)
		return nil, err
	}
	err = xproto.CreateGCChecked(
		conn,
		gc,
		xproto.Drawable(win),
		xproto.GcForeground|xproto.GcBackground|xproto.GcFont|xproto.GcGraphicsExposures,
		[]uint32{fg, bg, uint32(font), 0},
	).Check()
	if err != nil {
		xproto.FreeGC(conn, gc)
		xproto.CloseFont(conn, font)
		xproto.DestroyWindow(conn, win)
		return nil, err
	}

	xproto.MapWindow(conn, win)
	xproto.ConfigureWindow(conn, win,
		xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove})

	return &Bar{
		c:      c,
		win:    win,
		gc:     gc,
		font:   font,
		height: cfg.BarHeight,
		fg:     fg,
		bg:     bg,
		mark:   mark,
	}, nil
}

func (b *Bar) Window() wm.WindowID { return wm.WindowID(b.win) }

// Reposition moves the bar onto the primary monitor's bar row.
func (b *Bar) Reposition(x, y, w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	b.height = h
	xproto.ConfigureWindow(b.c.Conn(), b.win,
		xproto.ConfigWindowX|xproto.ConfigWindowY|
			xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(x), uint32(y), uint32(w), uint32(h)})
}

// Draw repaints the whole bar from the snapshot.
func (b *Bar) Draw(s wm.BarSnapshot) {
	conn := b.c.Conn()
	l := computeLayout(s)
	xproto.ClearArea(conn, false, b.win, 0, 0, 0, 0)

	// Launcher glyph, highlighted.
	b.text(s.Launcher, 0, b.bg, b.mark)

	// Focused window title fills the gap up to the status text.
	title := s.Title
	maxChars := (l.statusX - l.launcherW - 2*padX) / charWidth
	if maxChars < 0 {
		maxChars = 0
	}
	if len(title) > maxChars {
		title = title[:maxChars]
	}
	b.text(title, l.launcherW, b.fg, b.bg)

	b.text(s.Status, l.statusX, b.fg, b.bg)

	for i, tag := range s.Tags {
		bit := uint32(1) << i
		fg, bg := b.fg, b.bg
		switch {
		case s.Urgent&bit != 0:
			fg, bg = b.bg, b.fg
		case s.View&bit != 0:
			fg, bg = b.bg, b.mark
		}
		b.text(tag, l.tagX[i], fg, bg)
		if s.Occupied&bit != 0 {
			xproto.ChangeGC(conn, b.gc, xproto.GcForeground, []uint32{fg})
			xproto.PolyFillRectangle(conn, xproto.Drawable(b.win), b.gc,
				[]xproto.Rectangle{{
					X:      int16(l.tagX[i] + 2),
					Y:      2,
					Width:  3,
					Height: 3,
				}})
		}
	}
}

// text draws one opaque segment: the background pad rectangle, then the
// string with ImageText8, which fills the character cells itself.
func (b *Bar) text(s string, x int, fg, bg uint32) {
	if s == "" {
		return
	}
	conn := b.c.Conn()
	xproto.ChangeGC(conn, b.gc, xproto.GcForeground, []uint32{bg})
	xproto.PolyFillRectangle(conn, xproto.Drawable(b.win), b.gc,
		[]xproto.Rectangle{{
			X:      int16(x),
			Y:      0,
			Width:  uint16(textWidth(s)),
			Height: uint16(b.height),
		}})
	xproto.ChangeGC(conn, b.gc,
		xproto.GcForeground|xproto.GcBackground, []uint32{fg, bg})
	if len(s) > 255 {
		s = s[:255]
	}
	baseline := b.height - padX + 1
	xproto.ImageText8(conn, byte(len(s)), xproto.Drawable(b.win), b.gc,
		int16(x+padX), int16(baseline), s)
}

// Destroy releases the bar's window and drawing resources.
func (b *Bar) Destroy() {
	conn := b.c.Conn()
	xproto.FreeGC(conn, b.gc)
	xproto.CloseFont(conn, b.font)
	xproto.DestroyWindow(conn, b.win)
}
