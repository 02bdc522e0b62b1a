package wm

import "github.com/1broseidon/tilewm/internal/config"

// SizeHints carries the ICCCM WM_NORMAL_HINTS fields the resolver honors.
// Zero values mean the hint is absent.
type SizeHints struct {
	BaseW, BaseH int
	MinW, MinH   int
	MaxW, MaxH   int
	MinA, MaxA   float64
}

// Display is everything the manager needs from the X server. The live
// implementation wraps a connection; tests substitute a recording fake.
//
// Calls never return protocol errors: the X server reports errors
// asynchronously and the event loop triages them, so command-style methods
// are fire-and-forget just like the protocol itself. Query methods return
// zero values when the window vanished mid-call.
type Display interface {
	// ApplyGeometry configures a window's position, size and border
	// width, and follows up with the synthetic ConfigureNotify clients
	// are owed when the outcome differs from what they asked for.
	ApplyGeometry(win WindowID, g Geom, borderWidth int)
	// MoveWindow repositions without resizing; used to park hidden
	// windows offscreen.
	MoveWindow(win WindowID, x, y int)
	// MoveResizeWindow applies geometry directly, without a synthetic
	// ConfigureNotify.
	MoveResizeWindow(win WindowID, x, y, w, h int)
	// SendConfigureNotify tells a client where its window is without
	// moving anything.
	SendConfigureNotify(win WindowID, g Geom, borderWidth int)
	MapWindow(win WindowID)
	// Restack applies a full front-to-back window order.
	Restack(order []WindowID)
	SetBorder(win WindowID, pixel uint32)

	FocusWindow(win WindowID)
	FocusRoot()
	// GrabClickToRaise arms a synchronous button grab on an unfocused
	// window so the next click can be replayed after the manager raises
	// it.
	GrabClickToRaise(win WindowID)
	UngrabClickToRaise(win WindowID)
	ReplayPointer()
	GrabPointer() bool
	UngrabPointer()
	GrabKeyboard() bool
	UngrabKeyboard()
	AnyKeyDown() bool
	PointerAt() (x, y int, ok bool)

	SendTakeFocus(win WindowID)
	// SendDelete asks the window to close via WM_DELETE_WINDOW and
	// reports whether the window supports the protocol.
	SendDelete(win WindowID) bool
	ForceKill(win WindowID)

	SetActiveWindow(win WindowID)
	ClearActiveWindow()
	SetClientList(wins []WindowID)
	SetStackingList(bottomToTop []WindowID)
	SetFullscreenProp(win WindowID, on bool)
	SetNormalState(win WindowID)
	// SetWithdrawn records the ICCCM withdrawn state after a synthetic
	// unmap.
	SetWithdrawn(win WindowID)
	// ReleaseWindow undoes management of a still-existing window:
	// restores its original border, drops grabs and wm state.
	ReleaseWindow(win WindowID, borderWidth int)
	SetUrgency(win WindowID, urgent bool)

	WindowAttributes(win WindowID) (g Geom, borderWidth int, overrideRedirect bool, ok bool)
	WindowTitle(win WindowID) string
	SizeHints(win WindowID) SizeHints
	TransientFor(win WindowID) (WindowID, bool)
	// FullscreenRequested reports whether the window asked to start
	// fullscreen via its net wm state property.
	FullscreenRequested(win WindowID) bool
	// UrgencyHint reads the urgency flag from the window's wm hints.
	UrgencyHint(win WindowID) bool
	StatusText() string

	// WatchClient subscribes to the events a managed window must report.
	WatchClient(win WindowID)
}

// BarSnapshot is everything the bar needs to draw itself or route a click.
type BarSnapshot struct {
	Launcher string
	Title    string
	Status   string
	Tags     []string
	View     uint32
	Occupied uint32
	Urgent   uint32
	Width    int
}

// Bar abstracts the top bar window: the manager decides when it changes,
// the implementation owns pixels and text metrics.
type Bar interface {
	Window() WindowID
	Draw(s BarSnapshot)
	// HitTest maps a bar-relative x coordinate to the click region and,
	// for the tags region, the tag index hit.
	HitTest(x int, s BarSnapshot) (config.BarRegion, int)
	Reposition(x, y, w, h int)
}

// Spawner starts configured commands detached from the manager.
type Spawner interface {
	Spawn(argv []string)
}
