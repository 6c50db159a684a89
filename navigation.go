package menu

import "fmt"

// selectIndexDirect moves the selection cursor to a widget position without
// any search. i == -1 clears the selection.
func (m *Menu) selectIndexDirect(i int) {
	if old := m.SelectedWidget(); old != nil {
		old.base().Select(false)
	}
	m.index = i
	if i >= 0 && i < len(m.widgets) {
		m.widgets[i].base().Select(true)
	}
	m.forceSurfaceCacheUpdate()
}

// SelectWidget moves the selection to an attached widget. The widget must
// belong to this menu and be selectable and visible.
func (m *Menu) SelectWidget(w Widget) error {
	b := w.base()
	if b.menu != m {
		return fmt.Errorf("widget %q not attached to menu %q: %w", b.id, m.title, ErrNotFound)
	}
	if !b.selectable || !b.visible {
		return fmt.Errorf("widget %q is not selectable: %w", b.id, ErrInvalidState)
	}
	for i, cand := range m.widgets {
		if cand == w {
			if i != m.index {
				m.selectIndexDirect(i)
			}
			return nil
		}
	}
	return fmt.Errorf("widget %q not attached to menu %q: %w", b.id, m.title, ErrNotFound)
}

// moveSelection advances the cursor by delta with wraparound, skipping
// unselectable and hidden widgets. The search is bounded by the widget
// count, so a menu with nothing selectable terminates with no change.
func (m *Menu) moveSelection(delta int) bool {
	n := len(m.widgets)
	if n == 0 {
		return false
	}
	i := m.index
	for probes := 0; probes < n; probes++ {
		i = ((i+delta)%n + n) % n
		b := m.widgets[i].base()
		if b.selectable && b.visible {
			if i == m.index {
				return false
			}
			m.selectIndexDirect(i)
			m.sound.PlaySelection()
			return true
		}
	}
	return false
}

// moveLeftRight moves the cursor to the adjacent column, preferring the same
// row and falling back to the column's first selectable widget. Single
// column menus leave horizontal keys to the selected widget.
func (m *Menu) moveLeftRight(delta int) bool {
	sel := m.SelectedWidget()
	if sel == nil || m.usedColumns <= 1 {
		return false
	}
	b := sel.base()
	n := m.usedColumns

	col := ((b.col+delta)%n + n) % n
	for probes := 0; probes < n-1; probes++ {
		if i := m.selectableAt(col, b.row); i >= 0 {
			m.selectIndexDirect(i)
			m.sound.PlaySelection()
			return true
		}
		if i := m.firstSelectableInColumn(col); i >= 0 {
			m.selectIndexDirect(i)
			m.sound.PlaySelection()
			return true
		}
		col = ((col+delta)%n + n) % n
	}
	return false
}

// selectableAt finds a selectable visible non-floating widget at a grid
// position, or -1.
func (m *Menu) selectableAt(col, row int) int {
	for i, w := range m.widgets {
		b := w.base()
		if b.col == col && b.row == row && !b.floatState && b.selectable && b.visible {
			return i
		}
	}
	return -1
}

// firstSelectableInColumn finds the topmost selectable widget of a column,
// or -1.
func (m *Menu) firstSelectableInColumn(col int) int {
	best, bestRow := -1, -1
	for i, w := range m.widgets {
		b := w.base()
		if b.col != col || !b.selectable || !b.visible {
			continue
		}
		if best == -1 || b.row < bestRow {
			best, bestRow = i, b.row
		}
	}
	return best
}

// selectNearest selects the first selectable visible widget scanning forward
// from a position with wraparound. Leaves the selection empty when nothing
// qualifies.
func (m *Menu) selectNearest(from int) {
	n := len(m.widgets)
	for probes := 0; probes < n; probes++ {
		i := (from + probes) % n
		b := m.widgets[i].base()
		if b.selectable && b.visible {
			m.selectIndexDirect(i)
			return
		}
	}
}

// updateSelectionIfHidden repairs the selection after a widget was hidden,
// made unselectable or removed.
func (m *Menu) updateSelectionIfHidden() {
	if sel := m.SelectedWidget(); sel != nil {
		b := sel.base()
		if b.visible && b.selectable {
			return
		}
		if b.selected {
			b.Select(false)
		}
	}
	from := m.index
	if from < 0 {
		from = 0
	}
	m.index = -1
	m.selectNearest(from)
	m.forceSurfaceUpdate()
}

// widgetHit finds the selectable visible widget whose padded rect contains a
// point, or -1.
func (m *Menu) widgetHit(p Vec2) int {
	for i, w := range m.widgets {
		b := w.base()
		if b.visible && b.selectable && b.Rect().Contains(p) {
			return i
		}
	}
	return -1
}

// Update feeds a batch of normalized events to the displayed menu of this
// stack. It reports whether any event changed menu or widget state. Updating
// a disabled menu fails with ErrDisabled.
func (m *Menu) Update(events []Event) (bool, error) {
	root := m.stackRoot()
	if !root.enabled {
		return false, fmt.Errorf("menu %q: %w", m.title, ErrDisabled)
	}
	return root.displayed().updateSelf(events)
}

func (m *Menu) updateSelf(events []Event) (bool, error) {
	if err := m.Render(); err != nil {
		return false, err
	}
	if m.onUpdate != nil {
		m.onUpdate(events, m)
	}

	// The selected widget gets the batch first; a consuming widget
	// suppresses menu-level handling for this frame.
	if sel := m.SelectedWidget(); sel != nil {
		if sel.Update(events) {
			return true, nil
		}
	}

	hasTouchMotion := false
	for _, e := range events {
		if e.Type == EventFingerMotion {
			hasTouchMotion = true
			break
		}
	}

	updated := false
	for _, e := range events {
		switch e.Type {
		case EventQuit:
			if m.triggerClose() {
				updated = true
			}

		case EventKeyDown:
			if m.handleKey(e.Key) {
				updated = true
			}

		case EventJoyHatMotion:
			if m.handleHat(e.Hat) {
				updated = true
			}

		case EventJoyAxisMotion:
			if m.handleAxis(e.Axis, e.AxisValue) {
				updated = true
			}

		case EventJoyButtonDown:
			if e.Button == JoyButtonBack && m.Back() {
				updated = true
			}

		case EventMouseButtonDown:
			if e.Button != int(MouseButtonLeft) {
				break
			}
			if i := m.widgetHit(e.Pos); i >= 0 && i != m.index {
				m.sound.PlayClick()
				m.selectIndexDirect(i)
				updated = true
			}

		case EventMouseButtonUp:
			// The selection may have moved earlier in this batch (click
			// press); forward the release so a single click activates.
			if sel := m.SelectedWidget(); sel != nil &&
				sel.base().Rect().Contains(e.Pos) && sel.Update([]Event{e}) {
				updated = true
			}

		case EventMouseMotion:
			// Touch motion in the same batch takes precedence.
			if m.motionSelection && !hasTouchMotion {
				if i := m.widgetHit(e.Pos); i >= 0 && i != m.index {
					m.selectIndexDirect(i)
					updated = true
				}
			}

		case EventFingerDown:
			p := m.touchToPixels(e.Pos)
			if i := m.widgetHit(p); i >= 0 && i != m.index {
				m.sound.PlayClick()
				m.selectIndexDirect(i)
				updated = true
			}

		case EventFingerUp:
			p := m.touchToPixels(e.Pos)
			if sel := m.SelectedWidget(); sel != nil &&
				sel.base().Rect().Contains(p) && sel.Update([]Event{e}) {
				updated = true
			}

		case EventFingerMotion:
			if m.motionSelection {
				p := m.touchToPixels(e.Pos)
				if i := m.widgetHit(p); i >= 0 && i != m.index {
					m.selectIndexDirect(i)
					updated = true
				}
			}
		}
	}
	return updated, nil
}

func (m *Menu) handleKey(k Key) bool {
	switch k {
	case m.controls.MoveUp:
		m.sound.PlayKey()
		return m.moveSelection(-1)
	case m.controls.MoveDown:
		m.sound.PlayKey()
		return m.moveSelection(1)
	case m.controls.MoveLeft:
		m.sound.PlayKey()
		return m.moveLeftRight(-1)
	case m.controls.MoveRight:
		m.sound.PlayKey()
		return m.moveLeftRight(1)
	case m.controls.Back:
		return m.Back()
	case m.controls.Close:
		return m.triggerClose()
	}
	return false
}

func (m *Menu) handleHat(hat JoyDirection) bool {
	updated := false
	if hat&JoyUp != 0 && m.moveSelection(-1) {
		updated = true
	}
	if hat&JoyDown != 0 && m.moveSelection(1) {
		updated = true
	}
	if hat&JoyLeft != 0 && m.moveLeftRight(-1) {
		updated = true
	}
	if hat&JoyRight != 0 && m.moveLeftRight(1) {
		updated = true
	}
	return updated
}

// handleAxis converts analog stick motion into discrete moves. A move fires
// once when the axis crosses the deadzone and cannot repeat until the axis
// returns to center.
func (m *Menu) handleAxis(axis int, value float32) bool {
	dir := 0
	if value > JoyDeadzone {
		dir = 1
	} else if value < -JoyDeadzone {
		dir = -1
	}

	switch axis {
	case JoyAxisX:
		if dir == m.joyPushedX {
			return false
		}
		m.joyPushedX = dir
		if dir != 0 {
			return m.moveLeftRight(dir)
		}
	case JoyAxisY:
		if dir == m.joyPushedY {
			return false
		}
		m.joyPushedY = dir
		if dir != 0 {
			return m.moveSelection(dir)
		}
	}
	return false
}

// touchToPixels converts normalized 0..1 touch coordinates to pixels.
func (m *Menu) touchToPixels(p Vec2) Vec2 {
	return Vec2{X: p.X * m.windowW, Y: p.Y * m.windowH}
}
