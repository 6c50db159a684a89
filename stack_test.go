package menu_test

import (
	"errors"
	"testing"

	"github.com/go-arcade/menu"
)

func newSubMenu(t *testing.T, title string, opts ...menu.MenuOption) *menu.Menu {
	t.Helper()
	m, err := menu.NewMenu(title, 400, 300, opts...)
	if err != nil {
		t.Fatalf("NewMenu(%q): %v", title, err)
	}
	return m
}

// link attaches sub to root through a menu button and opens it by applying
// the button with the enter key.
func link(t *testing.T, root, sub *menu.Menu) *menu.Button {
	t.Helper()
	b, err := root.AddMenuButton("open "+sub.Title(), sub)
	if err != nil {
		t.Fatalf("AddMenuButton: %v", err)
	}
	return b
}

func open(t *testing.T, root, sub *menu.Menu, btn *menu.Button) {
	t.Helper()
	if err := root.Current().SelectWidget(btn); err != nil {
		t.Fatalf("SelectWidget: %v", err)
	}
	mustUpdate(t, root, keyEvents(menu.KeyEnter))
	if root.Current() != sub {
		t.Fatalf("expected %q displayed, got %q", sub.Title(), root.Current().Title())
	}
}

func TestOpenSubmenuAndBack(t *testing.T) {
	root := newSubMenu(t, "root")
	sub := newSubMenu(t, "sub")
	btn := link(t, root, sub)
	if _, err := sub.AddButton("child", nil); err != nil {
		t.Fatalf("AddButton: %v", err)
	}

	if root.InSubmenu() {
		t.Fatal("fresh menu should not report an open submenu")
	}

	open(t, root, sub, btn)
	if !root.InSubmenu() {
		t.Error("InSubmenu should be true after opening")
	}
	if root.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", root.Depth())
	}

	// The back key returns to the root. Updates are addressed to the stack,
	// so driving the root menu reaches the displayed submenu.
	mustUpdate(t, root, keyEvents(menu.KeyBackspace))
	if root.Current() != root {
		t.Errorf("expected root displayed after back, got %q", root.Current().Title())
	}
	if root.InSubmenu() {
		t.Error("InSubmenu should be false at the root")
	}
}

func TestBackAtRootIsNoop(t *testing.T) {
	root := newSubMenu(t, "root")
	if _, err := root.AddButton("a", nil); err != nil {
		t.Fatalf("AddButton: %v", err)
	}
	if root.Back() {
		t.Error("Back at the root must report no change")
	}
}

func TestBeforeOpenHookFiresBeforePointerMoves(t *testing.T) {
	root := newSubMenu(t, "root")

	var sawFrom, sawTo, displayedAtHook string
	sub := newSubMenu(t, "sub", menu.WithOnBeforeOpen(func(from, to *menu.Menu) {
		sawFrom = from.Title()
		sawTo = to.Title()
		displayedAtHook = root.Current().Title()
	}))
	btn := link(t, root, sub)

	open(t, root, sub, btn)
	if sawFrom != "root" || sawTo != "sub" {
		t.Errorf("hook saw %q -> %q, want root -> sub", sawFrom, sawTo)
	}
	if displayedAtHook != "root" {
		t.Errorf("displayed menu during hook = %q, want root (pointer must not have moved yet)", displayedAtHook)
	}
}

func TestResetRewindsMultipleLevels(t *testing.T) {
	root := newSubMenu(t, "root")
	mid := newSubMenu(t, "mid")
	leaf := newSubMenu(t, "leaf")

	rootBtn := link(t, root, mid)
	midBtn := link(t, mid, leaf)

	open(t, root, mid, rootBtn)
	open(t, root, leaf, midBtn)
	if root.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", root.Depth())
	}

	if !root.Reset(1) {
		t.Fatal("Reset(1) should report a change")
	}
	if root.Current() != mid {
		t.Errorf("displayed = %q, want mid", root.Current().Title())
	}

	open(t, root, leaf, midBtn)
	if !root.FullReset() {
		t.Fatal("FullReset should report a change")
	}
	if root.Current() != root {
		t.Errorf("displayed = %q, want root", root.Current().Title())
	}
}

func TestOnResetFiresOnlyOnChange(t *testing.T) {
	resets := 0
	root := newSubMenu(t, "root", menu.WithOnReset(func(*menu.Menu) { resets++ }))
	sub := newSubMenu(t, "sub")
	btn := link(t, root, sub)

	if root.Reset(3) {
		t.Error("Reset at the root must report no change")
	}
	if resets != 0 {
		t.Errorf("reset hook fired %d times with no navigation", resets)
	}

	open(t, root, sub, btn)
	root.Reset(1)
	if resets != 1 {
		t.Errorf("reset hook fired %d times, want 1", resets)
	}
}

func TestCloseDisable(t *testing.T) {
	root := newSubMenu(t, "root", menu.WithCloseAction(menu.CloseDisable))
	if _, err := root.AddButton("a", nil); err != nil {
		t.Fatalf("AddButton: %v", err)
	}

	mustUpdate(t, root, keyEvents(menu.KeyEscape))
	if root.Enabled() {
		t.Error("CloseDisable should disable the stack")
	}
}

func TestCloseReset(t *testing.T) {
	root := newSubMenu(t, "root")
	sub := newSubMenu(t, "sub", menu.WithCloseAction(menu.CloseReset))
	btn := link(t, root, sub)
	if _, err := sub.AddButton("child", nil); err != nil {
		t.Fatalf("AddButton: %v", err)
	}

	open(t, root, sub, btn)
	mustUpdate(t, root, keyEvents(menu.KeyEscape))

	if root.Enabled() {
		t.Error("CloseReset should disable the stack")
	}
	if root.Current() != root {
		t.Errorf("CloseReset should rewind to the root, displayed = %q", root.Current().Title())
	}
}

func TestCloseBackKeepsStackEnabled(t *testing.T) {
	root := newSubMenu(t, "root")
	sub := newSubMenu(t, "sub", menu.WithCloseAction(menu.CloseBack))
	btn := link(t, root, sub)
	if _, err := sub.AddButton("child", nil); err != nil {
		t.Fatalf("AddButton: %v", err)
	}

	open(t, root, sub, btn)
	mustUpdate(t, root, keyEvents(menu.KeyEscape))

	if !root.Enabled() {
		t.Error("CloseBack below the root must keep the stack enabled")
	}
	if root.Current() != root {
		t.Errorf("CloseBack should go back one level, displayed = %q", root.Current().Title())
	}
}

func TestCloseFuncControlsDisable(t *testing.T) {
	calls := 0
	root := newSubMenu(t, "root", menu.WithCloseFunc(func(m *menu.Menu) bool {
		calls++
		return calls > 1
	}))
	if _, err := root.AddButton("a", nil); err != nil {
		t.Fatalf("AddButton: %v", err)
	}

	mustUpdate(t, root, keyEvents(menu.KeyEscape))
	if !root.Enabled() {
		t.Fatal("handler returned false, stack must stay enabled")
	}

	mustUpdate(t, root, keyEvents(menu.KeyEscape))
	if root.Enabled() {
		t.Fatal("handler returned true, stack must be disabled")
	}
	if calls != 2 {
		t.Errorf("close handler fired %d times, want 2", calls)
	}
}

func TestSubmenuCycleRejected(t *testing.T) {
	a := newSubMenu(t, "a")
	b := newSubMenu(t, "b")
	link(t, a, b)

	if _, err := b.AddMenuButton("back to a", a); !errors.Is(err, menu.ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
	if _, err := a.AddMenuButton("self", a); !errors.Is(err, menu.ErrCycle) {
		t.Fatalf("self link: expected ErrCycle, got %v", err)
	}
}

func TestSetOnReturnSeversSubmenuLink(t *testing.T) {
	root := newSubMenu(t, "root")
	sub := newSubMenu(t, "sub")
	btn := link(t, root, sub)

	fired := false
	btn.SetOnReturn(func(args ...any) { fired = true })
	if btn.TargetMenu() != nil {
		t.Error("SetOnReturn should clear the submenu target")
	}

	// The former target no longer counts as a submenu edge, so linking the
	// other way around is allowed now.
	if _, err := sub.AddMenuButton("root", root); err != nil {
		t.Fatalf("reverse link after severing: %v", err)
	}

	if err := root.SelectWidget(btn); err != nil {
		t.Fatalf("SelectWidget: %v", err)
	}
	mustUpdate(t, root, keyEvents(menu.KeyEnter))
	if !fired {
		t.Error("applying the button should run the replacement callback")
	}
	if root.InSubmenu() {
		t.Error("the button must no longer open the submenu")
	}
}

func TestQuitEventTriggersClose(t *testing.T) {
	root := newSubMenu(t, "root", menu.WithCloseAction(menu.CloseDisable))
	if _, err := root.AddButton("a", nil); err != nil {
		t.Fatalf("AddButton: %v", err)
	}

	mustUpdate(t, root, []menu.Event{{Type: menu.EventQuit}})
	if root.Enabled() {
		t.Error("quit event should apply the close policy")
	}
}

func TestRemoveWidgetDropsSubmenuEdge(t *testing.T) {
	root := newSubMenu(t, "root")
	sub := newSubMenu(t, "sub")
	btn := link(t, root, sub)

	if err := root.RemoveWidget(btn.ID()); err != nil {
		t.Fatalf("RemoveWidget: %v", err)
	}
	// With the edge gone the reverse direction is acyclic again.
	if _, err := sub.AddMenuButton("root", root); err != nil {
		t.Fatalf("reverse link after removal: %v", err)
	}
}

func TestClearDropsSubmenuEdges(t *testing.T) {
	root := newSubMenu(t, "root")
	sub := newSubMenu(t, "sub")
	link(t, root, sub)

	root.Clear()
	if _, err := sub.AddMenuButton("root", root); err != nil {
		t.Fatalf("reverse link after clear: %v", err)
	}
}
