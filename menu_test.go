package menu_test

import (
	"errors"
	"testing"

	"github.com/go-arcade/menu"
)

func TestNewMenuValidation(t *testing.T) {
	if _, err := menu.NewMenu("bad", 0, 100); !errors.Is(err, menu.ErrInvalidState) {
		t.Fatalf("zero width: expected ErrInvalidState, got %v", err)
	}
	if _, err := menu.NewMenu("bad", 100, 100, menu.WithColumns(3)); !errors.Is(err, menu.ErrInvalidState) {
		t.Fatalf("columns without rows: expected ErrInvalidState, got %v", err)
	}
	if _, err := menu.NewMenu("bad", 100, 100, menu.WithColumns(2, 1, 1, 1)); !errors.Is(err, menu.ErrInvalidState) {
		t.Fatalf("row count mismatch: expected ErrInvalidState, got %v", err)
	}
	if _, err := menu.NewMenu("ok", 100, 100, menu.WithColumns(2, 3)); err != nil {
		t.Fatalf("single row count for all columns should be accepted: %v", err)
	}
}

func TestDuplicateWidgetIDRejected(t *testing.T) {
	m := newTestMenu(t)
	addButton(t, m, "a", menu.WithID("dup"))

	if _, err := m.AddButton("b", nil, menu.WithID("dup")); !errors.Is(err, menu.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	m := newTestMenu(t)
	a := addButton(t, m, "same title")
	b := addButton(t, m, "same title")

	if a.ID() == b.ID() {
		t.Errorf("widgets with equal titles got equal ids: %q", a.ID())
	}
}

func TestGetWidget(t *testing.T) {
	m := newTestMenu(t)
	b := addButton(t, m, "a", menu.WithID("target"))

	got, err := m.GetWidget("target")
	if err != nil {
		t.Fatalf("GetWidget: %v", err)
	}
	if got.ID() != b.ID() {
		t.Errorf("GetWidget returned %q, want %q", got.ID(), b.ID())
	}

	if _, err := m.GetWidget("missing"); !errors.Is(err, menu.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveWidgetNotFound(t *testing.T) {
	m := newTestMenu(t)
	if err := m.RemoveWidget("nope"); !errors.Is(err, menu.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCapacityLimit(t *testing.T) {
	m := newTestMenu(t, menu.WithColumns(2, 1, 1))
	addButton(t, m, "a")
	addButton(t, m, "b")

	if _, err := m.AddButton("c", nil); !errors.Is(err, menu.ErrCapacity) {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}

	// Removing a widget frees the slot again.
	if err := m.RemoveWidget(m.Widgets()[0].ID()); err != nil {
		t.Fatalf("RemoveWidget: %v", err)
	}
	if _, err := m.AddButton("c", nil); err != nil {
		t.Fatalf("add after remove: %v", err)
	}
}

func TestDrawDisabledMenu(t *testing.T) {
	m := newTestMenu(t)
	addButton(t, m, "a")
	m.Disable()

	dl := menu.AcquireDrawList()
	defer menu.ReleaseDrawList(dl)
	if err := m.Draw(dl); !errors.Is(err, menu.ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestDrawEmitsCommands(t *testing.T) {
	m := newTestMenu(t)
	addButton(t, m, "PLAY")

	dl := menu.AcquireDrawList()
	defer menu.ReleaseDrawList(dl)
	if err := m.Draw(dl); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(dl.VtxBuffer) == 0 {
		t.Error("drawing a menu with widgets should emit vertices")
	}
}

func TestClearDetachesEverything(t *testing.T) {
	m := newTestMenu(t)
	a := addButton(t, m, "a")
	addButton(t, m, "b")

	m.Clear()
	if len(m.Widgets()) != 0 {
		t.Errorf("widgets after Clear = %d, want 0", len(m.Widgets()))
	}
	if m.SelectedWidget() != nil {
		t.Error("selection should be empty after Clear")
	}
	if a.Menu() != nil {
		t.Error("cleared widgets should be detached")
	}
}

func TestMenuAttributeBag(t *testing.T) {
	m := newTestMenu(t)

	m.SetAttribute("score", 99)
	if !m.HasAttribute("score") {
		t.Error("attribute should exist after set")
	}
	if got := m.GetAttribute("score", 0); got != 99 {
		t.Errorf("GetAttribute = %v, want 99", got)
	}
	if err := m.RemoveAttribute("score"); err != nil {
		t.Fatalf("RemoveAttribute: %v", err)
	}
	if err := m.RemoveAttribute("score"); !errors.Is(err, menu.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSelectWidgetValidation(t *testing.T) {
	m := newTestMenu(t)
	other := newTestMenu(t)
	a := addButton(t, m, "a")
	b := addButton(t, m, "b")
	foreign := addButton(t, other, "foreign")

	if err := m.SelectWidget(foreign); !errors.Is(err, menu.ErrNotFound) {
		t.Fatalf("foreign widget: expected ErrNotFound, got %v", err)
	}

	l, err := m.AddLabel("header")
	if err != nil {
		t.Fatalf("AddLabel: %v", err)
	}
	if err := m.SelectWidget(l); !errors.Is(err, menu.ErrInvalidState) {
		t.Fatalf("unselectable: expected ErrInvalidState, got %v", err)
	}

	if err := m.SelectWidget(b); err != nil {
		t.Fatalf("SelectWidget: %v", err)
	}
	if !b.Selected() || a.Selected() {
		t.Error("selection should have moved from a to b")
	}
}

func TestSetThemeRevalidates(t *testing.T) {
	m := newTestMenu(t)

	bad := menu.DefaultTheme()
	bad.FontScale = 0
	if err := m.SetTheme(bad); !errors.Is(err, menu.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}

	if err := m.SetTheme(menu.LightTheme()); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
}

func TestOnUpdateHook(t *testing.T) {
	m := newTestMenu(t)
	addButton(t, m, "a")

	var seen int
	m.SetOnUpdate(func(events []menu.Event, mm *menu.Menu) { seen = len(events) })

	mustUpdate(t, m, keyEvents(menu.KeyDown, menu.KeyDown))
	if seen != 2 {
		t.Errorf("update hook saw %d events, want 2", seen)
	}
}
