// Package bar renders the status bar: a launcher glyph, the focused
// window's title, status text, and the tag indicators, drawn with core
// protocol text so no font or render extension is required.
package bar

import (
	"github.com/1broseidon/tilewm/internal/config"
	"github.com/1broseidon/tilewm/internal/wm"
)

// Fixed fonts are close enough to monospace that a constant advance per
// character gives usable hit targets.
const (
	charWidth = 7
	padX      = 6
)

func textWidth(s string) int {
	return len(s)*charWidth + 2*padX
}

// layout is the horizontal split of the bar for one snapshot. Tags are
// right-aligned, status sits to their left, the title takes what remains.
type layout struct {
	launcherW int
	tagsX     int
	statusX   int
	tagX      []int
}

func computeLayout(s wm.BarSnapshot) layout {
	l := layout{
		launcherW: textWidth(s.Launcher),
		tagX:      make([]int, len(s.Tags)),
	}
	x := s.Width
	for i := len(s.Tags) - 1; i >= 0; i-- {
		x -= textWidth(s.Tags[i])
		l.tagX[i] = x
	}
	l.tagsX = x
	l.statusX = l.tagsX - textWidth(s.Status)
	if s.Status == "" {
		l.statusX = l.tagsX
	}
	return l
}

// HitTest maps a bar-relative x coordinate to the clicked region and, for
// the tags region, the index of the tag hit.
func (b *Bar) HitTest(x int, s wm.BarSnapshot) (config.BarRegion, int) {
	l := computeLayout(s)
	if x < l.launcherW {
		return config.RegionLauncher, -1
	}
	if x >= l.tagsX {
		for i := len(l.tagX) - 1; i >= 0; i-- {
			if x >= l.tagX[i] {
				return config.RegionTags, i
			}
		}
	}
	if x >= l.statusX {
		return config.RegionStatus, -1
	}
	return config.RegionTitle, -1
}
