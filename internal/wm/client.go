package wm

// WindowID identifies an X window without tying the package to a live
// connection.
type WindowID uint32

// Client holds the managed state of one window.
//
// X, Y, W, H is the current geometry. FX, FY, FW, FH is the floating
// snapshot: the geometry a window returns to when it stops being tiled or
// fullscreen. The snapshot is captured before edge snapping, so a window
// dragged near a monitor edge snaps on screen but remembers where the user
// actually put it.
type Client struct {
	Win     WindowID
	Name    string
	ZenName string
	ZenPing uint32

	Tags uint32

	X, Y, W, H     int
	FX, FY, FW, FH int

	BaseW, BaseH int
	MinW, MinH   int
	MaxW, MaxH   int
	MinA, MaxA   float64

	BW    int // current border width
	FBW   int // border width to restore after fullscreen
	OldBW int // border width the window had before being managed

	Floating   bool
	Fullscreen bool
	Urgent     bool
	FloatSaved bool // floating flag to restore when leaving fullscreen

	prev, next *Client
}

// TotalW is the width including both borders.
func (c *Client) TotalW() int { return c.W + 2*c.BW }

// TotalH is the height including both borders.
func (c *Client) TotalH() int { return c.H + 2*c.BW }

// VisibleIn reports whether the client shows on the given view mask.
func (c *Client) VisibleIn(tagset uint32) bool { return c.Tags&tagset != 0 }

// Next returns the following client in stacking-recency order.
func (c *Client) Next() *Client { return c.next }

// Registry keeps all managed clients in most-recently-raised order: the
// front of the list is the top of the recency stack. It is an intrusive
// doubly-linked list so moving a client to the front is O(1).
type Registry struct {
	head *Client
	tail *Client
	n    int
}

// First returns the most recently raised client, or nil when empty.
func (r *Registry) First() *Client { return r.head }

// Len returns the number of managed clients.
func (r *Registry) Len() int { return r.n }

// Attach inserts c at the front. c must not already be attached.
func (r *Registry) Attach(c *Client) {
	c.prev = nil
	c.next = r.head
	if r.head != nil {
		r.head.prev = c
	}
	r.head = c
	if r.tail == nil {
		r.tail = c
	}
	r.n++
}

// Detach removes c. Detaching a client that is not attached is a no-op.
func (r *Registry) Detach(c *Client) {
	if c.prev == nil && c.next == nil && r.head != c {
		return
	}
	if c.prev != nil {
		c.prev.next = c.next
	} else {
		r.head = c.next
	}
	if c.next != nil {
		c.next.prev = c.prev
	} else {
		r.tail = c.prev
	}
	c.prev = nil
	c.next = nil
	r.n--
}

// MoveToFront detaches c and reattaches it at the front.
func (r *Registry) MoveToFront(c *Client) {
	if r.head == c {
		return
	}
	r.Detach(c)
	r.Attach(c)
}

// Find returns the client managing win, or nil. Lookup is a linear scan;
// the list is short enough that this beats maintaining a side index.
func (r *Registry) Find(win WindowID) *Client {
	for c := r.head; c != nil; c = c.next {
		if c.Win == win {
			return c
		}
	}
	return nil
}

// FirstVisible returns the frontmost client visible on tagset, or nil.
func (r *Registry) FirstVisible(tagset uint32) *Client {
	for c := r.head; c != nil; c = c.next {
		if c.VisibleIn(tagset) {
			return c
		}
	}
	return nil
}
