package wm

// DragMode is the state of the interactive input machine. Exactly one mode
// is active at a time; every pointer and key event is interpreted against
// it before anything else.
type DragMode int

const (
	// DragNone means normal event dispatch.
	DragNone DragMode = iota
	// DragMove repositions the selected floating window with the pointer.
	DragMove
	// DragSize resizes the selected floating window with the pointer.
	DragSize
	// DragTile resizes the selected tiled window; the monitor's layout
	// parameters are back-solved from the result on release.
	DragTile
	// DragCheck is the armed hover state over a floating window's edge:
	// a button press promotes it to DragMove or DragSize, moving off the
	// edge disarms it.
	DragCheck
	// DragStack is keyboard window cycling: focus advances through the
	// view until the cycle modifier is released, which commits the
	// focused window by zooming it.
	DragStack
)

func (m DragMode) String() string {
	switch m {
	case DragNone:
		return "none"
	case DragMove:
		return "move"
	case DragSize:
		return "size"
	case DragTile:
		return "tile"
	case DragCheck:
		return "check"
	case DragStack:
		return "stack"
	default:
		return "unknown"
	}
}

// pointerDrag reports whether the mode holds a pointer grab.
func (m DragMode) pointerDrag() bool {
	return m == DragMove || m == DragSize || m == DragTile || m == DragCheck
}

func (c *Client) inZone(x, y int) bool {
	return x >= c.X-c.BW && y >= c.Y-c.BW &&
		x <= c.X+c.TotalW()+c.BW && y <= c.Y+c.TotalH()+c.BW
}

// InMoveZone reports whether (x, y) rests on the left or top border edge.
func (c *Client) InMoveZone(x, y int) bool {
	return c.inZone(x, y) && (abs(c.X-x) <= c.BW || abs(c.Y-y) <= c.BW)
}

// InResizeZone reports whether (x, y) rests on the right or bottom border
// edge.
func (c *Client) InResizeZone(x, y int) bool {
	return c.inZone(x, y) &&
		(abs(c.X+c.TotalW()-x) <= c.BW || abs(c.Y+c.TotalH()-y) <= c.BW)
}
