package x11

import (
	"sort"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/tilewm/internal/config"
	"github.com/1broseidon/tilewm/internal/wm"
)

// EffectiveMonitors returns the monitor split to manage. Configured monitor
// rules take precedence over RandR detection; the first rule is the primary
// monitor.
func (c *Connection) EffectiveMonitors(cfg *config.Config) (int, int, []wm.Monitor, error) {
	if len(cfg.Monitors) == 0 {
		return c.Monitors()
	}
	geom, err := xproto.GetGeometry(c.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return 0, 0, nil, err
	}
	mons := make([]wm.Monitor, len(cfg.Monitors))
	for i, rule := range cfg.Monitors {
		mons[i] = wm.Monitor{X: rule.X, Y: rule.Y, W: rule.Width, H: rule.Height}
	}
	return int(geom.Width), int(geom.Height), mons, nil
}

// Monitors returns the root window size and the active monitor
// rectangles, primary first. Without RandR the whole root window is
// reported as a single monitor.
func (c *Connection) Monitors() (int, int, []wm.Monitor, error) {
	geom, err := xproto.GetGeometry(c.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return 0, 0, nil, err
	}
	w, h := int(geom.Width), int(geom.Height)

	if !c.randrActive {
		return w, h, []wm.Monitor{{X: 0, Y: 0, W: w, H: h}}, nil
	}

	resources, err := randr.GetScreenResources(c.Conn(), c.Root).Reply()
	if err != nil {
		return w, h, []wm.Monitor{{X: 0, Y: 0, W: w, H: h}}, nil
	}

	var primaryOutput randr.Output
	if reply, err := randr.GetOutputPrimary(c.Conn(), c.Root).Reply(); err == nil {
		primaryOutput = reply.Output
	}

	type crtcMon struct {
		mon     wm.Monitor
		primary bool
	}
	var found []crtcMon
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}
		cm := crtcMon{mon: wm.Monitor{
			X: int(info.X),
			Y: int(info.Y),
			W: int(info.Width),
			H: int(info.Height),
		}}
		for _, out := range info.Outputs {
			if out == primaryOutput {
				cm.primary = true
			}
		}
		found = append(found, cm)
	}
	if len(found) == 0 {
		return w, h, []wm.Monitor{{X: 0, Y: 0, W: w, H: h}}, nil
	}

	// Primary monitor first, the rest in left-to-right order.
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].primary != found[j].primary {
			return found[i].primary
		}
		return found[i].mon.X < found[j].mon.X
	})
	mons := make([]wm.Monitor, len(found))
	for i, cm := range found {
		mons[i] = cm.mon
	}
	return w, h, mons, nil
}
