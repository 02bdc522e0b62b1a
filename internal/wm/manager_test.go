package wm

import (
	"testing"

	"github.com/1broseidon/tilewm/internal/config"
)

func newTestManager(t *testing.T) (*Manager, *fakeDisplay, *fakeBar, *fakeSpawner) {
	t.Helper()
	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	dpy := newFakeDisplay()
	bar := &fakeBar{}
	sp := &fakeSpawner{}
	m := New(cfg, dpy, bar, sp)
	m.SetMonitors(1920, 1080, []Monitor{{X: 0, Y: 0, W: 1920, H: 1080}})
	return m, dpy, bar, sp
}

func mapWindow(t *testing.T, m *Manager, dpy *fakeDisplay, win WindowID) *Client {
	t.Helper()
	dpy.addWindow(win, Geom{X: 100, Y: 100, W: 400, H: 300})
	m.HandleMapRequest(win)
	c := m.reg.Find(win)
	if c == nil {
		t.Fatalf("window %d not managed after map request", win)
	}
	return c
}

func TestHandleMapRequest(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	c := mapWindow(t, m, dpy, 1)

	if !c.Floating {
		t.Fatalf("new windows must start floating")
	}
	if c.Tags != m.View() {
		t.Fatalf("tags = %b, want current view %b", c.Tags, m.View())
	}
	if m.Selected() != c {
		t.Fatalf("new window did not take focus")
	}
	if c.X != 100 || c.Y != 100 || c.W != 400 || c.H != 300 {
		t.Fatalf("geometry = (%d,%d) %dx%d, want requested (100,100) 400x300", c.X, c.Y, c.W, c.H)
	}
	if len(dpy.mapped) != 1 || dpy.mapped[0] != 1 {
		t.Fatalf("mapped = %v, want [1]", dpy.mapped)
	}
	if len(dpy.watched) != 1 {
		t.Fatalf("client not subscribed to events")
	}
	if len(dpy.clientList) != 1 {
		t.Fatalf("client list = %v, want one entry", dpy.clientList)
	}
}

func TestHandleMapRequest_SkipsOverrideRedirect(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	dpy.addWindow(1, Geom{W: 100, H: 100}).override = true
	m.HandleMapRequest(1)
	if m.reg.Len() != 0 {
		t.Fatalf("override-redirect window was managed")
	}
}

func TestHandleMapRequest_TransientInheritsTags(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	parent := mapWindow(t, m, dpy, 1)
	parent.Tags = 0b100
	m.tagset = 0b100

	dpy.addWindow(2, Geom{X: 10, Y: 50, W: 200, H: 100}).transient = 1
	m.HandleMapRequest(2)
	c := m.reg.Find(2)
	if c.Tags != 0b100 {
		t.Fatalf("transient tags = %b, want parent's %b", c.Tags, parent.Tags)
	}
}

func TestHandleMapRequest_AvoidsBar(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	dpy.addWindow(1, Geom{X: 200, Y: 0, W: 400, H: 300})
	m.HandleMapRequest(1)
	c := m.reg.Find(1)
	if c.Y != m.cfg.BarHeight {
		t.Fatalf("y = %d, want pushed below bar to %d", c.Y, m.cfg.BarHeight)
	}
}

func TestViewShiftRoundTrip(t *testing.T) {
	m, _, _, _ := newTestManager(t)
	m.tagset = 0b000000101
	m.Do(config.KeyBinding{Action: config.ActionViewShift, Amount: 1})
	if m.View() != 0b000001010 {
		t.Fatalf("shifted view = %09b, want 000001010", m.View())
	}
	m.Do(config.KeyBinding{Action: config.ActionViewShift, Amount: -1})
	if m.View() != 0b000000101 {
		t.Fatalf("view did not round-trip: %09b", m.View())
	}
}

func TestViewActions(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	c := mapWindow(t, m, dpy, 1)

	m.Do(config.KeyBinding{Action: config.ActionView, Tag: 3})
	if m.View() != 0b100 {
		t.Fatalf("view = %b, want tag 3 only", m.View())
	}
	if m.Selected() != nil {
		t.Fatalf("selection kept after its window left the view")
	}
	// The last view cannot be toggled away: the result would be empty.
	m.Do(config.KeyBinding{Action: config.ActionToggleView, Tag: 3})
	if m.View() != 0b100 {
		t.Fatalf("view = %b, toggling the last tag must be refused", m.View())
	}
	m.Do(config.KeyBinding{Action: config.ActionToggleView, Tag: 1})
	if m.View() != 0b101 {
		t.Fatalf("view = %b, want tags 1 and 3", m.View())
	}
	if m.Selected() != c {
		t.Fatalf("window not refocused when its tag returned to view")
	}
}

func TestTagActions(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	c := mapWindow(t, m, dpy, 1)

	m.Do(config.KeyBinding{Action: config.ActionTag, Tag: 2})
	if c.Tags != 0b10 {
		t.Fatalf("tags = %b, want tag 2 only", c.Tags)
	}
	m.Do(config.KeyBinding{Action: config.ActionView, Tag: 2})
	if m.Selected() != c {
		t.Fatalf("window lost after retagging")
	}
	// A window must keep at least one tag.
	m.Do(config.KeyBinding{Action: config.ActionToggleTag, Tag: 2})
	if c.Tags != 0b10 {
		t.Fatalf("tags = %b, removing the last tag must be refused", c.Tags)
	}
	m.Do(config.KeyBinding{Action: config.ActionToggleTag, Tag: 5})
	if c.Tags != 0b10010 {
		t.Fatalf("tags = %b, want tags 2 and 5", c.Tags)
	}
}

func TestHiddenWindowsParkOffscreen(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	c := mapWindow(t, m, dpy, 1)
	m.Do(config.KeyBinding{Action: config.ActionView, Tag: 2})
	pos, ok := dpy.moved[1]
	if !ok {
		t.Fatalf("hidden window never moved")
	}
	if pos[0] != c.TotalW()*-2 {
		t.Fatalf("hidden window at x=%d, want parked at %d", pos[0], c.TotalW()*-2)
	}
	m.Do(config.KeyBinding{Action: config.ActionView, Tag: 1})
	if pos := dpy.moved[1]; pos[0] != c.X {
		t.Fatalf("window restored to x=%d, want %d", pos[0], c.X)
	}
}

func TestToggleFloatingKeepsSnapshot(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	c := mapWindow(t, m, dpy, 1)

	m.Do(config.KeyBinding{Action: config.ActionToggleFloating})
	if c.Floating {
		t.Fatalf("window still floating after toggle")
	}
	// Tiled over the whole usable area now.
	if c.X == 100 || c.W == 400 {
		t.Fatalf("tiled geometry unchanged: (%d,%d) %dx%d", c.X, c.Y, c.W, c.H)
	}
	m.Do(config.KeyBinding{Action: config.ActionToggleFloating})
	if !c.Floating {
		t.Fatalf("window not floating after second toggle")
	}
	if c.X != 100 || c.Y != 100 || c.W != 400 || c.H != 300 {
		t.Fatalf("restored = (%d,%d) %dx%d, want the old floating geometry (100,100) 400x300",
			c.X, c.Y, c.W, c.H)
	}
}

func TestFullscreenRoundTrip(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	c := mapWindow(t, m, dpy, 1)

	m.Do(config.KeyBinding{Action: config.ActionToggleFullscreen})
	if !c.Fullscreen {
		t.Fatalf("window not fullscreen")
	}
	if c.W != 1920 || c.H != 1080 || c.X != 0 || c.Y != 0 {
		t.Fatalf("fullscreen geometry = (%d,%d) %dx%d, want the whole monitor", c.X, c.Y, c.W, c.H)
	}
	if c.BW != 0 {
		t.Fatalf("fullscreen window kept its border")
	}
	if !dpy.fsProps[1] {
		t.Fatalf("fullscreen state property not set")
	}

	m.Do(config.KeyBinding{Action: config.ActionToggleFullscreen})
	if c.Fullscreen {
		t.Fatalf("window still fullscreen")
	}
	if c.X != 100 || c.Y != 100 || c.W != 400 || c.H != 300 {
		t.Fatalf("restored = (%d,%d) %dx%d, want (100,100) 400x300", c.X, c.Y, c.W, c.H)
	}
	if c.BW != m.cfg.BorderWidth || !c.Floating {
		t.Fatalf("border or floating state not restored: bw=%d floating=%v", c.BW, c.Floating)
	}
	if dpy.fsProps[1] {
		t.Fatalf("fullscreen state property not cleared")
	}
}

func TestFullscreenMessage(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	c := mapWindow(t, m, dpy, 1)

	m.HandleFullscreenMessage(1, 1)
	if !c.Fullscreen {
		t.Fatalf("add message ignored")
	}
	m.HandleFullscreenMessage(1, 2)
	if c.Fullscreen {
		t.Fatalf("toggle message ignored")
	}
	m.HandleFullscreenMessage(1, 2)
	m.HandleFullscreenMessage(1, 0)
	if c.Fullscreen {
		t.Fatalf("remove message ignored")
	}
}

func TestStackCycleCommitsOnRelease(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	mapWindow(t, m, dpy, 1)
	mapWindow(t, m, dpy, 2)
	mapWindow(t, m, dpy, 3)
	m.SetKeymap(nil, 42)

	// Most recent map leads the registry and holds focus.
	if m.Selected().Win != 3 {
		t.Fatalf("selected = %d, want 3", m.Selected().Win)
	}
	m.grabStack(1)
	m.grabStack(1)
	if m.Drag() != DragStack {
		t.Fatalf("drag = %v, want stack cycling", m.Drag())
	}
	if m.Selected().Win != 1 {
		t.Fatalf("selected = %d after two steps, want 1", m.Selected().Win)
	}
	// Cycling alone must not reorder the registry.
	if m.reg.First().Win != 3 {
		t.Fatalf("registry front = %d during cycle, want 3", m.reg.First().Win)
	}

	m.HandleKeyRelease(42, 0)
	if m.Drag() != DragNone {
		t.Fatalf("drag = %v after release, want none", m.Drag())
	}
	if m.reg.First().Win != 1 {
		t.Fatalf("registry front = %d, want committed window 1", m.reg.First().Win)
	}
	if dpy.keyboardGrabs != 0 {
		t.Fatalf("keyboard still grabbed after commit")
	}
}

func TestStackCycleWraps(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	mapWindow(t, m, dpy, 1)
	mapWindow(t, m, dpy, 2)

	m.grabStack(1)
	m.grabStack(1)
	if m.Selected().Win != 2 {
		t.Fatalf("selected = %d, want wrap back to 2", m.Selected().Win)
	}
	m.grabStack(-1)
	if m.Selected().Win != 1 {
		t.Fatalf("selected = %d after backward step, want 1", m.Selected().Win)
	}
}

func TestFailedKeyboardGrabCancelsStackCycle(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	mapWindow(t, m, dpy, 1)
	mapWindow(t, m, dpy, 2)

	dpy.keyboardGrabFail = true
	m.grabStack(1)
	if m.Drag() != DragNone {
		t.Fatalf("drag = %v after failed keyboard grab, want none", m.Drag())
	}
	if m.Selected().Win != 2 {
		t.Fatalf("selected = %d, want focus untouched on 2", m.Selected().Win)
	}
}

func TestFailedGrabCancelsPointerDrag(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	mapWindow(t, m, dpy, 1)

	dpy.pointerGrabFail = true
	m.Do(config.KeyBinding{Action: config.ActionGrabMove})
	if m.Drag() != DragNone {
		t.Fatalf("drag = %v after failed pointer grab, want none", m.Drag())
	}

	// A keyboard grab failure must release the pointer grab it rode in on.
	dpy.pointerGrabFail = false
	dpy.keyboardGrabFail = true
	m.Do(config.KeyBinding{Action: config.ActionGrabMove})
	if m.Drag() != DragNone {
		t.Fatalf("drag = %v after failed keyboard grab, want none", m.Drag())
	}
	if dpy.pointerGrabs != 0 {
		t.Fatalf("pointer grab held after cancelled drag")
	}
}

func TestPointerDrag(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	c := mapWindow(t, m, dpy, 1)

	m.HandleMotion(1, 300, 200, 0) // baseline, inside the window
	m.Do(config.KeyBinding{Action: config.ActionGrabMove})
	if m.Drag() != DragMove {
		t.Fatalf("drag = %v, want move", m.Drag())
	}
	m.HandleMotion(1, 310, 205, 0)
	if c.X != 110 || c.Y != 105 {
		t.Fatalf("dragged to (%d,%d), want (110,105)", c.X, c.Y)
	}
	m.HandleMotion(1, 320, 215, 0)
	if c.X != 120 || c.Y != 115 {
		t.Fatalf("dragged to (%d,%d), want (120,115)", c.X, c.Y)
	}

	m.HandleButtonRelease()
	if m.Drag() != DragNone {
		t.Fatalf("drag = %v after release, want none", m.Drag())
	}
	if dpy.pointerGrabs != 0 {
		t.Fatalf("pointer still grabbed after release")
	}
}

func TestPointerDragHoldsWhileKeyDown(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	mapWindow(t, m, dpy, 1)

	m.Do(config.KeyBinding{Action: config.ActionGrabMove})
	dpy.keyDown = true
	m.HandleButtonRelease()
	if m.Drag() != DragMove {
		t.Fatalf("drag ended while a key was still held")
	}
	dpy.keyDown = false
	m.HandleButtonRelease()
	if m.Drag() != DragNone {
		t.Fatalf("drag = %v, want none once keys are up", m.Drag())
	}
}

func TestEdgeHoverArmsDrag(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	c := mapWindow(t, m, dpy, 1)

	// Pointer resting on the left border arms the check state.
	m.HandleMotion(1, c.X, 250, 0)
	if m.Drag() != DragCheck {
		t.Fatalf("drag = %v, want armed check state", m.Drag())
	}
	// A press on the move edge promotes to a move drag.
	m.HandleButtonPress(1, 1, 0, 0, c.X, 250)
	if m.Drag() != DragMove {
		t.Fatalf("drag = %v, want move after press on the edge", m.Drag())
	}
	m.HandleButtonRelease()

	// Hovering the bottom-right corner and pressing resizes instead.
	m.HandleMotion(1, c.X+c.TotalW(), c.Y+c.TotalH(), 0)
	if m.Drag() != DragCheck {
		t.Fatalf("drag = %v, want armed check state on resize edge", m.Drag())
	}
	m.HandleButtonPress(1, 1, 0, 0, c.X+c.TotalW(), c.Y+c.TotalH())
	if m.Drag() != DragSize {
		t.Fatalf("drag = %v, want size after press on the corner", m.Drag())
	}
}

func TestEdgeHoverDisarmsOffEdge(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	c := mapWindow(t, m, dpy, 1)

	m.HandleMotion(1, c.X, 250, 0)
	if m.Drag() != DragCheck {
		t.Fatalf("drag = %v, want armed check state", m.Drag())
	}
	m.HandleMotion(1, c.X+50, 250, 0)
	if m.Drag() != DragNone {
		t.Fatalf("drag = %v, want disarmed off the edge", m.Drag())
	}
}

func TestTiledDragAdjustsLayout(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	mapWindow(t, m, dpy, 1)
	c := mapWindow(t, m, dpy, 2)
	m.Do(config.KeyBinding{Action: config.ActionToggleFloating})
	m.Focus(m.reg.Find(1))
	m.Do(config.KeyBinding{Action: config.ActionToggleFloating})
	m.Focus(c)
	if c.Floating {
		t.Fatalf("setup: client still floating")
	}

	m.HandleMotion(2, 500, 500, 0)
	m.Do(config.KeyBinding{Action: config.ActionGrabMove})
	if m.Drag() != DragTile {
		t.Fatalf("drag = %v, dragging a tiled window must adjust the layout", m.Drag())
	}
	m.HandleMotion(2, 560, 500, 0)
	m.HandleButtonRelease()

	if m.Drag() != DragNone {
		t.Fatalf("drag = %v after release, want none", m.Drag())
	}
	// Widening the main window by 60px moves mfact off its default.
	if m.mfact[0] <= 0.6 || m.mfact[0] > 0.65 {
		t.Fatalf("mfact = %v, want back-solved near 0.63", m.mfact[0])
	}
	if m.nmain[0] != 1 {
		t.Fatalf("nmain = %d, want 1", m.nmain[0])
	}
}

func TestBarZoneTogglesBarFocus(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	mapWindow(t, m, dpy, 1)

	m.HandleMotion(0, 500, 0, 0)
	if !m.barFocus {
		t.Fatalf("pointer at the top edge did not focus the bar")
	}
	if !dpy.rootFocused {
		t.Fatalf("input focus not moved off the client")
	}
	if dpy.order[0] != fakeBarWin {
		t.Fatalf("stacking order = %v, want bar on top", dpy.order)
	}

	m.HandleMotion(1, 500, 300, 0)
	if m.barFocus {
		t.Fatalf("bar focus not released when the pointer left the edge")
	}
	if dpy.focused != 1 {
		t.Fatalf("focus = %d, want client 1 restored", dpy.focused)
	}
}

func TestFocusFollowsMouse(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	mapWindow(t, m, dpy, 1)
	c2 := mapWindow(t, m, dpy, 2)
	if m.Selected() != c2 {
		t.Fatalf("setup: selected = %v", m.Selected())
	}
	m.HandleMotion(1, 300, 200, 0)
	if m.Selected().Win != 1 {
		t.Fatalf("selected = %d, want hover focus on 1", m.Selected().Win)
	}
}

func TestKillClient(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	mapWindow(t, m, dpy, 1)

	m.Do(config.KeyBinding{Action: config.ActionKillClient})
	if len(dpy.deleted) != 1 || len(dpy.killed) != 0 {
		t.Fatalf("deleted=%v killed=%v, want a delete request only", dpy.deleted, dpy.killed)
	}

	dpy.supportsDel = false
	m.Do(config.KeyBinding{Action: config.ActionKillClient})
	if len(dpy.killed) != 1 {
		t.Fatalf("killed=%v, want a forced kill when delete is unsupported", dpy.killed)
	}
}

func TestUnmanageOnDestroy(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	mapWindow(t, m, dpy, 1)
	c2 := mapWindow(t, m, dpy, 2)

	m.HandleDestroyNotify(2)
	if m.reg.Find(2) != nil {
		t.Fatalf("destroyed window still managed")
	}
	if m.Selected() == c2 {
		t.Fatalf("selection still points at the destroyed window")
	}
	if m.Selected() == nil || m.Selected().Win != 1 {
		t.Fatalf("focus did not fall back to the survivor")
	}
	if len(dpy.released) != 0 {
		t.Fatalf("released a destroyed window's server state")
	}
	if len(dpy.clientList) != 1 {
		t.Fatalf("client list = %v, want one entry", dpy.clientList)
	}
}

func TestUnmapWithdrawsOrUnmanages(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	mapWindow(t, m, dpy, 1)

	m.HandleUnmapNotify(1, true)
	if m.reg.Find(1) == nil {
		t.Fatalf("synthetic unmap must only withdraw, not unmanage")
	}
	if len(dpy.withdrawn) != 1 {
		t.Fatalf("withdrawn state not recorded")
	}

	m.HandleUnmapNotify(1, false)
	if m.reg.Find(1) != nil {
		t.Fatalf("real unmap left the window managed")
	}
	if len(dpy.released) != 1 {
		t.Fatalf("surviving window's server state not released")
	}
}

func TestConfigureRequest(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	c := mapWindow(t, m, dpy, 1)

	if m.HandleConfigureRequest(ConfigureRequest{Win: 77}) {
		t.Fatalf("unmanaged request must be reported for forwarding")
	}

	handled := m.HandleConfigureRequest(ConfigureRequest{
		Win: 1, X: 50, Y: 60, HasX: true, HasY: true,
	})
	if !handled {
		t.Fatalf("managed request not handled")
	}
	if c.X != 50 || c.Y != 60 || c.FX != 50 || c.FY != 60 {
		t.Fatalf("geometry = (%d,%d) snapshot (%d,%d), want 50,60 in both", c.X, c.Y, c.FX, c.FY)
	}

	// Tiled clients keep their imposed geometry.
	c.Floating = false
	x, y := c.X, c.Y
	m.HandleConfigureRequest(ConfigureRequest{Win: 1, X: 5, Y: 5, HasX: true, HasY: true})
	if c.X != x || c.Y != y {
		t.Fatalf("tiled geometry moved to (%d,%d)", c.X, c.Y)
	}
}

func TestActivateMarksUrgent(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	mapWindow(t, m, dpy, 1)
	c2 := mapWindow(t, m, dpy, 2)

	m.HandleActivateMessage(1)
	if !m.reg.Find(1).Urgent {
		t.Fatalf("unfocused window not marked urgent on activation request")
	}
	if !dpy.urgencies[1] {
		t.Fatalf("urgency hint not pushed to the window")
	}
	m.Focus(m.reg.Find(1))
	if m.reg.Find(1).Urgent {
		t.Fatalf("urgency not cleared by focusing")
	}
	_ = c2
}

func TestBarButtonBindings(t *testing.T) {
	m, dpy, bar, sp := newTestManager(t)
	c := mapWindow(t, m, dpy, 1)

	bar.region = config.RegionLauncher
	m.HandleButtonPress(fakeBarWin, 1, 0, 3, 3, 3)
	if len(sp.spawned) != 1 {
		t.Fatalf("launcher click did not spawn: %v", sp.spawned)
	}

	bar.region, bar.tag = config.RegionTags, 2
	m.HandleButtonPress(fakeBarWin, 1, 0, 1900, 1900, 3)
	if m.View() != 0b100 {
		t.Fatalf("view = %b after tag click, want tag 3", m.View())
	}
	_ = c
}

func TestSpawnAction(t *testing.T) {
	m, _, _, sp := newTestManager(t)
	m.Do(config.KeyBinding{Action: config.ActionSpawn, Command: []string{"st"}})
	if len(sp.spawned) != 1 || sp.spawned[0][0] != "st" {
		t.Fatalf("spawned = %v, want [st]", sp.spawned)
	}
}

func TestQuitAction(t *testing.T) {
	m, _, _, _ := newTestManager(t)
	m.Do(config.KeyBinding{Action: config.ActionQuit})
	if !m.Done() {
		t.Fatalf("quit not requested")
	}
}

func TestCleanupReleasesEverything(t *testing.T) {
	m, dpy, _, _ := newTestManager(t)
	mapWindow(t, m, dpy, 1)
	mapWindow(t, m, dpy, 2)

	m.Cleanup()
	if m.reg.Len() != 0 {
		t.Fatalf("%d clients still managed after cleanup", m.reg.Len())
	}
	if len(dpy.released) != 2 {
		t.Fatalf("released %d windows, want 2", len(dpy.released))
	}
	if !dpy.rootFocused {
		t.Fatalf("input focus not returned to the root")
	}
}

func TestMonitorChangePreservesLayoutParams(t *testing.T) {
	m, _, _, _ := newTestManager(t)
	m.mfact[0] = 0.7
	m.SetMonitors(3840, 1080, []Monitor{
		{X: 0, Y: 0, W: 1920, H: 1080},
		{X: 1920, Y: 0, W: 1920, H: 1080},
	})
	if m.mfact[0] != 0.7 {
		t.Fatalf("mfact[0] = %v, want preserved 0.7", m.mfact[0])
	}
	if m.mfact[1] != m.cfg.MFact {
		t.Fatalf("mfact[1] = %v, want default %v", m.mfact[1], m.cfg.MFact)
	}
}
