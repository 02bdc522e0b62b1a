package wm

// tile lays out the tiled clients visible on tagset, per monitor.
//
// Each monitor gets a main column holding up to nmain[m] windows stacked
// vertically, sized to mfact[m] of the monitor width while any windows
// overflow into the stack column on the right. With no overflow the main
// column takes the whole width. Heights divide the remaining usable space
// evenly among the windows left in the column, so the layout is identical
// no matter how many times it runs.
//
// The resize callback receives border-exclusive geometry for each tiled
// client, in registry order.
func tile(s *Screen, first *Client, tagset uint32, mfact []float64, nmain []int, resize func(c *Client, x, y, w, h int)) {
	nm := make([]int, len(s.Mons))
	idx := make([]int, len(s.Mons))
	mainY := make([]int, len(s.Mons))
	stackY := make([]int, len(s.Mons))

	for c := first; c != nil; c = c.Next() {
		if !c.Floating && c.VisibleIn(tagset) {
			nm[s.MonOf(c)]++
		}
	}

	for c := first; c != nil; c = c.Next() {
		if c.Floating || !c.VisibleIn(tagset) {
			continue
		}
		m := s.MonOf(c)
		mw := s.Mons[m].W
		if nm[m] > nmain[m] {
			mw = int(float64(s.Mons[m].W) * mfact[m])
		}
		if idx[m] < nmain[m] {
			h := (s.WinH(m) - mainY[m]) / (min(nm[m], nmain[m]) - idx[m])
			resize(c, s.Mons[m].X, s.WinY(m)+mainY[m], mw-2*c.BW, h-2*c.BW)
			if mainY[m]+c.TotalH() < s.WinH(m) {
				mainY[m] += c.TotalH()
			}
		} else {
			h := (s.WinH(m) - stackY[m]) / (nm[m] - idx[m])
			resize(c, s.Mons[m].X+mw, s.WinY(m)+stackY[m], s.Mons[m].W-mw-2*c.BW, h-2*c.BW)
			if stackY[m]+c.TotalH() < s.WinH(m) {
				stackY[m] += c.TotalH()
			}
		}
		idx[m]++
	}
}
