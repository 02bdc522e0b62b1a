package wm

import "github.com/1broseidon/tilewm/internal/config"

// fakeWindow is the server-side state a fakeDisplay serves for one window.
type fakeWindow struct {
	geom       Geom
	borderW    int
	override   bool
	title      string
	hints      SizeHints
	transient  WindowID
	fullscreen bool
	urgent     bool
}

// fakeDisplay records every command the manager issues and answers queries
// from a window table populated by each test.
type fakeDisplay struct {
	windows map[WindowID]*fakeWindow

	applied      map[WindowID]Geom
	moved        map[WindowID][2]int
	mapped       []WindowID
	order        []WindowID
	stackingList []WindowID
	clientList   []WindowID
	borders      map[WindowID]uint32
	focused      WindowID
	rootFocused  bool
	deleted      []WindowID
	killed       []WindowID
	released     []WindowID
	withdrawn    []WindowID
	fsProps      map[WindowID]bool
	urgencies    map[WindowID]bool
	watched      []WindowID

	pointerGrabs     int
	keyboardGrabs    int
	pointerGrabFail  bool
	keyboardGrabFail bool
	keyDown       bool
	pointerX      int
	pointerY      int
	supportsDel   bool
	status        string
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{
		windows:     make(map[WindowID]*fakeWindow),
		applied:     make(map[WindowID]Geom),
		moved:       make(map[WindowID][2]int),
		borders:     make(map[WindowID]uint32),
		fsProps:     make(map[WindowID]bool),
		urgencies:   make(map[WindowID]bool),
		supportsDel: true,
	}
}

func (d *fakeDisplay) addWindow(win WindowID, g Geom) *fakeWindow {
	w := &fakeWindow{geom: g}
	d.windows[win] = w
	return w
}

func (d *fakeDisplay) ApplyGeometry(win WindowID, g Geom, borderWidth int) {
	d.applied[win] = g
}

func (d *fakeDisplay) MoveWindow(win WindowID, x, y int) {
	d.moved[win] = [2]int{x, y}
}

func (d *fakeDisplay) MoveResizeWindow(win WindowID, x, y, w, h int)       {}
func (d *fakeDisplay) SendConfigureNotify(win WindowID, g Geom, bw int)   {}
func (d *fakeDisplay) MapWindow(win WindowID)                             { d.mapped = append(d.mapped, win) }
func (d *fakeDisplay) Restack(order []WindowID)                           { d.order = order }
func (d *fakeDisplay) SetBorder(win WindowID, pixel uint32)               { d.borders[win] = pixel }
func (d *fakeDisplay) FocusWindow(win WindowID)                           { d.focused, d.rootFocused = win, false }
func (d *fakeDisplay) FocusRoot()                                         { d.focused, d.rootFocused = 0, true }
func (d *fakeDisplay) GrabClickToRaise(win WindowID)                      {}
func (d *fakeDisplay) UngrabClickToRaise(win WindowID)                    {}
func (d *fakeDisplay) ReplayPointer()                                     {}
func (d *fakeDisplay) GrabPointer() bool {
	if d.pointerGrabFail {
		return false
	}
	d.pointerGrabs++
	return true
}
func (d *fakeDisplay) UngrabPointer() { d.pointerGrabs-- }
func (d *fakeDisplay) GrabKeyboard() bool {
	if d.keyboardGrabFail {
		return false
	}
	d.keyboardGrabs++
	return true
}
func (d *fakeDisplay) UngrabKeyboard()                                    { d.keyboardGrabs = 0 }
func (d *fakeDisplay) AnyKeyDown() bool                                   { return d.keyDown }
func (d *fakeDisplay) PointerAt() (int, int, bool)                        { return d.pointerX, d.pointerY, true }
func (d *fakeDisplay) SendTakeFocus(win WindowID)                         {}
func (d *fakeDisplay) SendDelete(win WindowID) bool {
	if !d.supportsDel {
		return false
	}
	d.deleted = append(d.deleted, win)
	return true
}
func (d *fakeDisplay) ForceKill(win WindowID)              { d.killed = append(d.killed, win) }
func (d *fakeDisplay) SetActiveWindow(win WindowID)        {}
func (d *fakeDisplay) ClearActiveWindow()                  {}
func (d *fakeDisplay) SetClientList(wins []WindowID)       { d.clientList = wins }
func (d *fakeDisplay) SetStackingList(wins []WindowID)     { d.stackingList = wins }
func (d *fakeDisplay) SetFullscreenProp(w WindowID, on bool) { d.fsProps[w] = on }
func (d *fakeDisplay) SetNormalState(win WindowID)         {}
func (d *fakeDisplay) SetWithdrawn(win WindowID)           { d.withdrawn = append(d.withdrawn, win) }
func (d *fakeDisplay) ReleaseWindow(win WindowID, bw int)  { d.released = append(d.released, win) }
func (d *fakeDisplay) SetUrgency(win WindowID, urgent bool) { d.urgencies[win] = urgent }

func (d *fakeDisplay) WindowAttributes(win WindowID) (Geom, int, bool, bool) {
	w, ok := d.windows[win]
	if !ok {
		return Geom{}, 0, false, false
	}
	return w.geom, w.borderW, w.override, true
}

func (d *fakeDisplay) WindowTitle(win WindowID) string {
	if w, ok := d.windows[win]; ok {
		return w.title
	}
	return ""
}

func (d *fakeDisplay) SizeHints(win WindowID) SizeHints {
	if w, ok := d.windows[win]; ok {
		return w.hints
	}
	return SizeHints{}
}

func (d *fakeDisplay) TransientFor(win WindowID) (WindowID, bool) {
	if w, ok := d.windows[win]; ok && w.transient != 0 {
		return w.transient, true
	}
	return 0, false
}

func (d *fakeDisplay) FullscreenRequested(win WindowID) bool {
	if w, ok := d.windows[win]; ok {
		return w.fullscreen
	}
	return false
}

func (d *fakeDisplay) UrgencyHint(win WindowID) bool {
	if w, ok := d.windows[win]; ok {
		return w.urgent
	}
	return false
}

func (d *fakeDisplay) StatusText() string      { return d.status }
func (d *fakeDisplay) WatchClient(win WindowID) { d.watched = append(d.watched, win) }

const fakeBarWin WindowID = 9000

type fakeBar struct {
	draws    []BarSnapshot
	region   config.BarRegion
	tag      int
	repos    [4]int
}

func (b *fakeBar) Window() WindowID  { return fakeBarWin }
func (b *fakeBar) Draw(s BarSnapshot) { b.draws = append(b.draws, s) }
func (b *fakeBar) HitTest(x int, s BarSnapshot) (config.BarRegion, int) {
	return b.region, b.tag
}
func (b *fakeBar) Reposition(x, y, w, h int) { b.repos = [4]int{x, y, w, h} }

type fakeSpawner struct {
	spawned [][]string
}

func (s *fakeSpawner) Spawn(argv []string) { s.spawned = append(s.spawned, argv) }
