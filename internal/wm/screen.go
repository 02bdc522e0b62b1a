package wm

// Geom is a window geometry, border excluded.
type Geom struct {
	X, Y, W, H int
}

// Monitor is one output's pixel rectangle in root coordinates.
type Monitor struct {
	X, Y, W, H int
}

func (m Monitor) contains(x, y int) bool {
	return x >= m.X && x < m.X+m.W && y >= m.Y && y < m.Y+m.H
}

// Screen is the full root window area and its monitor split. Mons[0] is the
// primary monitor and the only one that carries the bar.
type Screen struct {
	W, H   int
	Mons   []Monitor
	TopBar bool
	BarH   int
}

// WinY returns the top of the usable area on monitor m: the bar shrinks the
// primary monitor when placed on top.
func (s *Screen) WinY(m int) int {
	if m == 0 && s.TopBar {
		return s.Mons[0].Y + s.BarH
	}
	return s.Mons[m].Y
}

// WinH returns the usable height on monitor m, excluding the bar on the
// primary.
func (s *Screen) WinH(m int) int {
	if m == 0 {
		return s.Mons[0].H - s.BarH
	}
	return s.Mons[m].H
}

// BarY returns the root y coordinate of the bar.
func (s *Screen) BarY() int {
	if s.TopBar {
		return s.Mons[0].Y
	}
	return s.Mons[0].Y + s.WinH(0)
}

// InBarZone reports whether the pointer is pressed against the screen edge
// the bar lives on.
func (s *Screen) InBarZone(x, y int) bool {
	if s.TopBar {
		return y <= s.Mons[0].Y
	}
	return y >= s.Mons[0].Y+s.Mons[0].H-1 && x >= s.Mons[0].X && x <= s.Mons[0].X+s.Mons[0].W
}

// MonAsc returns the index of the first monitor containing (x, y), scanning
// from the primary up. Falls back to the last monitor.
func (s *Screen) MonAsc(x, y int) int {
	m := 0
	for ; m < len(s.Mons)-1 && !s.Mons[m].contains(x, y); m++ {
	}
	return m
}

// MonDesc returns the index of the last monitor containing (x, y), scanning
// down toward the primary. Falls back to the primary.
func (s *Screen) MonDesc(x, y int) int {
	m := len(s.Mons) - 1
	for ; m > 0 && !s.Mons[m].contains(x, y); m-- {
	}
	return m
}

// MonOf returns the monitor a client belongs to, judged by its center point.
func (s *Screen) MonOf(c *Client) int {
	return s.MonDesc(c.X+c.TotalW()/2, c.Y+c.TotalH()/2)
}

// Resolve computes the geometry a client actually receives for a requested
// move or resize. It clamps to keep at least a sliver of the window
// reachable, snaps floating windows to monitor edges, honors ICCCM base,
// aspect, min and max size hints, and never returns a size below 1x1.
//
// For floating non-fullscreen clients the pre-snap geometry is recorded as
// the new floating snapshot.
func (s *Screen) Resolve(c *Client, x, y, w, h, snap int) Geom {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	// Remain in the visible area.
	topPad, botPad := 0, s.BarH
	if s.TopBar {
		topPad, botPad = s.BarH, 0
	}
	x = max(1-w-2*c.BW, min(s.W-1, x))
	y = max(1+topPad-h-2*c.BW, min(s.H-1-botPad, y))

	if c.Floating && !c.Fullscreen {
		c.FX, c.FY, c.FW, c.FH = x, y, w, h
		// Snap position and size to nearby monitor edges. The position
		// snaps against the monitor under the top-left corner, the size
		// against the one under the bottom-right.
		m1 := s.MonAsc(x+snap, y+snap)
		m2 := s.MonAsc(x+w-snap, y+h-snap)
		if abs(s.Mons[m1].X-x) < snap {
			x = s.Mons[m1].X
		}
		if abs(s.WinY(m1)-y) < snap {
			y = s.WinY(m1)
		}
		if abs(s.Mons[m2].X+s.Mons[m2].W-(x+w+2*c.BW)) < snap {
			w = s.Mons[m2].X + s.Mons[m2].W - x - 2*c.BW
		}
		if abs(s.WinY(m2)+s.WinH(m2)-(y+h+2*c.BW)) < snap {
			h = s.WinY(m2) + s.WinH(m2) - y - 2*c.BW
		}
	}

	// Aspect limits apply to the size above the base increment; see the
	// last two sentences of ICCCM 4.1.2.3.
	w -= c.BaseW
	h -= c.BaseH
	if c.MinA > 0 && c.MaxA > 0 && !c.Fullscreen {
		if c.MaxA < float64(w)/float64(h) {
			w = int(float64(h)*c.MaxA + 0.5)
		} else if c.MinA < float64(h)/float64(w) {
			h = int(float64(w)*c.MinA + 0.5)
		}
	}

	// Restore base dimensions, then clamp. Max hints are ignored while
	// fullscreen so spanning always works.
	w = max(w+c.BaseW, c.MinW)
	h = max(h+c.BaseH, c.MinH)
	if c.MaxW != 0 && !c.Fullscreen {
		w = min(w, c.MaxW)
	}
	if c.MaxH != 0 && !c.Fullscreen {
		h = min(h, c.MaxH)
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	return Geom{X: x, Y: y, W: w, H: h}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
