package wm

// RestackMode selects what a restack pass does beyond recomputing order.
type RestackMode int

const (
	// Refresh recomputes stacking without changing pin or raise state.
	Refresh RestackMode = iota
	// Raise lifts the client to the top of its view.
	Raise
	// Zoom raises the client and moves it to the front of the registry,
	// making it the primary window of the layout.
	Zoom
	// Pin toggles whether the client stays above everything else.
	Pin
	// Remove drops the client from the registry and from any pin or
	// raise slot it holds.
	Remove
)

// Stacker tracks the two privileged stacking slots. A pinned client stays
// on top across restacks until unpinned; the raised client is whichever
// window was lifted most recently.
type Stacker struct {
	Pinned *Client
	Raised *Client
}

// layer buckets clients below the privileged slots: floating windows stack
// above tiled ones, and fullscreen windows sink to the bottom so chrome
// like the bar and pinned windows stay reachable.
func layer(c *Client) int {
	switch {
	case c.Fullscreen:
		return 2
	case !c.Floating:
		return 1
	default:
		return 0
	}
}

// Restack applies mode for c and returns the desired front-to-back window
// order of everything the manager owns, bar included.
//
// Order is: bar first when it holds focus, then the pinned client, then the
// raised client, then the bar (when unfocused), then every other client
// grouped by layer.
func (st *Stacker) Restack(reg *Registry, c *Client, mode RestackMode, bar WindowID, barFocus bool) []WindowID {
	switch mode {
	case Pin:
		if st.Pinned != c {
			st.Pinned = c
		} else {
			st.Pinned = nil
		}
	case Remove:
		reg.Detach(c)
		if st.Pinned == c {
			st.Pinned = nil
		}
		if st.Raised == c {
			st.Raised = nil
		}
	case Zoom:
		if c != nil {
			reg.MoveToFront(c)
		}
		st.Raised = c
	case Raise:
		st.Raised = c
	}
	// Anything pinned and floating also leads the registry, so zooming
	// other windows cannot shuffle it out of the layout's front.
	if st.Pinned != nil && st.Pinned.Floating {
		reg.MoveToFront(st.Pinned)
	}

	order := make([]WindowID, 0, reg.Len()+1)
	if barFocus {
		order = append(order, bar)
	}
	if st.Pinned != nil {
		order = append(order, st.Pinned.Win)
	}
	if st.Raised != nil && st.Raised != st.Pinned {
		order = append(order, st.Raised.Win)
	}
	if !barFocus {
		order = append(order, bar)
	}
	for l := 0; l < 3; l++ {
		for c := reg.First(); c != nil; c = c.Next() {
			if c != st.Pinned && c != st.Raised && layer(c) == l {
				order = append(order, c.Win)
			}
		}
	}
	return order
}

// ClientOrder strips the bar from a Restack result, for publishing the
// stacking list.
func ClientOrder(order []WindowID, bar WindowID) []WindowID {
	out := make([]WindowID, 0, len(order))
	for _, w := range order {
		if w != bar {
			out = append(out, w)
		}
	}
	return out
}
