package menu_test

import (
	"errors"
	"testing"

	"github.com/go-arcade/menu"
)

func keyEvents(keys ...menu.Key) []menu.Event {
	events := make([]menu.Event, len(keys))
	for i, k := range keys {
		events[i] = menu.NewKeyEvent(k)
	}
	return events
}

func mustUpdate(t *testing.T, m *menu.Menu, events []menu.Event) bool {
	t.Helper()
	updated, err := m.Update(events)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	return updated
}

func TestFirstSelectableAutoSelected(t *testing.T) {
	m := newTestMenu(t)
	if _, err := m.AddLabel("header"); err != nil {
		t.Fatalf("AddLabel: %v", err)
	}
	b := addButton(t, m, "first")

	if !b.Selected() {
		t.Error("expected first selectable widget selected")
	}
	if sel := m.SelectedWidget(); sel == nil || sel.ID() != b.ID() {
		t.Errorf("SelectedWidget = %v, want %q", sel, b.ID())
	}
}

func TestMoveSelectionSkipsAndWraps(t *testing.T) {
	m := newTestMenu(t)
	a := addButton(t, m, "a")
	if _, err := m.AddLabel("unselectable"); err != nil {
		t.Fatalf("AddLabel: %v", err)
	}
	b := addButton(t, m, "b")

	mustUpdate(t, m, keyEvents(menu.KeyDown))
	if !b.Selected() {
		t.Fatal("down from a should skip the label and select b")
	}

	mustUpdate(t, m, keyEvents(menu.KeyDown))
	if !a.Selected() {
		t.Fatal("down from the last widget should wrap to a")
	}

	mustUpdate(t, m, keyEvents(menu.KeyUp))
	if !b.Selected() {
		t.Fatal("up from a should wrap backwards to b")
	}
}

func TestMoveSelectionNoSelectableTerminates(t *testing.T) {
	m := newTestMenu(t)
	if _, err := m.AddLabel("one"); err != nil {
		t.Fatalf("AddLabel: %v", err)
	}
	if _, err := m.AddLabel("two"); err != nil {
		t.Fatalf("AddLabel: %v", err)
	}

	if mustUpdate(t, m, keyEvents(menu.KeyDown)) {
		t.Error("navigation in a menu with nothing selectable must be a no-op")
	}
	if m.SelectedWidget() != nil {
		t.Error("no widget should be selected")
	}
}

func TestMoveLeftRightColumns(t *testing.T) {
	m := newTestMenu(t, menu.WithColumns(3, 2, 1, 2))
	w := []*menu.Button{
		addButton(t, m, "w0"), // (0,0)
		addButton(t, m, "w1"), // (0,1)
		addButton(t, m, "w2"), // (1,0)
		addButton(t, m, "w3"), // (2,0)
		addButton(t, m, "w4"), // (2,1)
	}
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// From (0,1): column 1 has no row 1, so its first widget is selected.
	mustUpdate(t, m, keyEvents(menu.KeyDown)) // w1
	mustUpdate(t, m, keyEvents(menu.KeyRight))
	if !w[2].Selected() {
		t.Fatal("right from (0,1) should select the first widget of column 1")
	}

	// From (1,0): same row exists in column 2.
	mustUpdate(t, m, keyEvents(menu.KeyRight))
	if !w[3].Selected() {
		t.Fatal("right from (1,0) should select (2,0)")
	}

	// Right from the last column wraps to column 0.
	mustUpdate(t, m, keyEvents(menu.KeyRight))
	if !w[0].Selected() {
		t.Fatal("right from column 2 should wrap to column 0")
	}

	mustUpdate(t, m, keyEvents(menu.KeyLeft))
	if !w[3].Selected() {
		t.Fatal("left from column 0 should wrap to column 2")
	}
}

func TestJoystickAxisEdgeTriggered(t *testing.T) {
	m := newTestMenu(t)
	a := addButton(t, m, "a")
	b := addButton(t, m, "b")
	c := addButton(t, m, "c")
	_ = c

	push := []menu.Event{{Type: menu.EventJoyAxisMotion, Axis: 1, AxisValue: 0.9}}
	center := []menu.Event{{Type: menu.EventJoyAxisMotion, Axis: 1, AxisValue: 0.0}}

	mustUpdate(t, m, push)
	if !b.Selected() {
		t.Fatal("axis push past deadzone should move once")
	}

	// Holding the stick must not repeat.
	mustUpdate(t, m, push)
	if !b.Selected() {
		t.Fatal("held axis must not move again")
	}

	mustUpdate(t, m, center)
	mustUpdate(t, m, push)
	if !c.Selected() {
		t.Fatal("after returning to center the axis should move again")
	}
	_ = a
}

func TestJoystickHatNavigation(t *testing.T) {
	m := newTestMenu(t)
	addButton(t, m, "a")
	b := addButton(t, m, "b")

	mustUpdate(t, m, []menu.Event{{Type: menu.EventJoyHatMotion, Hat: menu.JoyDown}})
	if !b.Selected() {
		t.Fatal("hat down should move selection down")
	}
}

func TestMouseClickSelectsAndApplies(t *testing.T) {
	m := newTestMenu(t)
	addButton(t, m, "a")

	fired := false
	b, err := m.AddButton("b", func(args ...any) { fired = true })
	if err != nil {
		t.Fatalf("AddButton: %v", err)
	}
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	center := b.Rect().Center()
	mustUpdate(t, m, []menu.Event{
		menu.NewMouseDownEvent(menu.MouseButtonLeft, center.X, center.Y),
		menu.NewMouseUpEvent(menu.MouseButtonLeft, center.X, center.Y),
	})

	if !b.Selected() {
		t.Error("click should select the widget under the cursor")
	}
	if !fired {
		t.Error("releasing over the clicked widget should apply it")
	}
}

func TestTouchSelectsWithNormalizedCoordinates(t *testing.T) {
	m := newTestMenu(t)
	m.SetWindowSize(800, 600)
	addButton(t, m, "a")
	b := addButton(t, m, "b")
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	center := b.Rect().Center()
	mustUpdate(t, m, []menu.Event{
		{Type: menu.EventFingerDown, Pos: menu.Vec2{X: center.X / 800, Y: center.Y / 600}},
	})
	if !b.Selected() {
		t.Error("touch down should select the widget under the finger")
	}
}

func TestTouchMotionWinsOverMouseMotion(t *testing.T) {
	m := newTestMenu(t, menu.WithMotionSelection())
	a := addButton(t, m, "a")
	b := addButton(t, m, "b")
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	aCenter := a.Rect().Center()
	bCenter := b.Rect().Center()
	win := m.WindowSize()

	// Mouse hovers a while touch drags over b: touch wins.
	mustUpdate(t, m, []menu.Event{
		{Type: menu.EventMouseMotion, Pos: aCenter},
		{Type: menu.EventFingerMotion, Pos: menu.Vec2{X: bCenter.X / win.X, Y: bCenter.Y / win.Y}},
	})
	if !b.Selected() {
		t.Error("touch motion should win over mouse motion in the same batch")
	}
}

func TestHideSelectedRepairsSelection(t *testing.T) {
	m := newTestMenu(t)
	a := addButton(t, m, "a")
	b := addButton(t, m, "b")

	if !a.Selected() {
		t.Fatal("a should start selected")
	}
	a.Hide()
	if a.Selected() {
		t.Error("hidden widget must deselect")
	}
	if !b.Selected() {
		t.Error("selection should move to the next selectable widget")
	}
}

func TestRemoveSelectedRepairsSelection(t *testing.T) {
	m := newTestMenu(t)
	a := addButton(t, m, "a")
	b := addButton(t, m, "b")

	if err := m.RemoveWidget(a.ID()); err != nil {
		t.Fatalf("RemoveWidget: %v", err)
	}
	if a.Menu() != nil {
		t.Error("removed widget should detach from the menu")
	}
	if col, row, idx := a.ColRowIndex(); col != -1 || row != -1 || idx != -1 {
		t.Errorf("detached widget coordinates = (%d,%d,%d), want (-1,-1,-1)", col, row, idx)
	}
	if !b.Selected() {
		t.Error("selection should move to the remaining widget")
	}
}

func TestUpdateDisabledMenu(t *testing.T) {
	m := newTestMenu(t)
	addButton(t, m, "a")

	m.Disable()
	if _, err := m.Update(keyEvents(menu.KeyDown)); !errors.Is(err, menu.ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}

	m.Enable()
	if _, err := m.Update(keyEvents(menu.KeyDown)); err != nil {
		t.Fatalf("Update after Enable: %v", err)
	}
}

func TestSelectorConsumesHorizontalKeys(t *testing.T) {
	m := newTestMenu(t)
	s, err := m.AddSelector("mode", []menu.SelectorItem{
		{Label: "one", Value: 1},
		{Label: "two", Value: 2},
	}, nil)
	if err != nil {
		t.Fatalf("AddSelector: %v", err)
	}

	mustUpdate(t, m, keyEvents(menu.KeyRight))
	if s.Index() != 1 {
		t.Errorf("selector index = %d, want 1", s.Index())
	}
	mustUpdate(t, m, keyEvents(menu.KeyRight))
	if s.Index() != 0 {
		t.Errorf("selector index = %d, want 0 (wraparound)", s.Index())
	}
	mustUpdate(t, m, keyEvents(menu.KeyLeft))
	if s.Index() != 1 {
		t.Errorf("selector index = %d, want 1 (backward wrap)", s.Index())
	}
}
