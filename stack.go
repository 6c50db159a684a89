package menu

// stackRoot resolves the root of the menu stack this menu belongs to. The
// root holds the shared enabled flag and the displayed-menu pointer.
func (m *Menu) stackRoot() *Menu {
	root := m
	for root.top != root {
		root = root.top
	}
	return root
}

// displayed returns the menu currently shown for this stack.
func (m *Menu) displayed() *Menu {
	root := m.stackRoot()
	if root.current == nil {
		return root
	}
	return root.current
}

// Current returns the menu currently displayed on this menu's stack.
func (m *Menu) Current() *Menu { return m.displayed() }

// InSubmenu reports whether a submenu is open, i.e. the displayed menu is
// not the stack root.
func (m *Menu) InSubmenu() bool {
	root := m.stackRoot()
	return root.displayed() != root
}

// Depth returns how many submenu levels are open below the root.
func (m *Menu) Depth() int {
	d := 0
	for cur := m.displayed(); cur.prev != nil; cur = cur.prev {
		d++
	}
	return d
}

// openSubmenu makes target the displayed menu. The before-open hook fires
// while the current menu is still displayed, so it can inspect both sides of
// the transition.
func (m *Menu) openSubmenu(target *Menu) {
	root := m.stackRoot()
	cur := root.displayed()
	if target == nil || target == cur {
		return
	}

	if target.onBeforeOpen != nil {
		target.onBeforeOpen(cur, target)
	}

	target.prev = cur
	target.top = root
	root.current = target
	target.forceSurfaceUpdate()
}

// Back closes the displayed submenu and returns to its parent. Reports
// whether the display changed; at the stack root there is nothing to close.
func (m *Menu) Back() bool {
	if !m.InSubmenu() {
		return false
	}
	m.sound.PlayClose()
	return m.Reset(1)
}

// Reset rewinds the stack by up to n levels. The on-reset hook of the newly
// displayed menu fires only when the display actually changed.
func (m *Menu) Reset(n int) bool {
	root := m.stackRoot()
	cur := root.displayed()

	moved := false
	for i := 0; i < n && cur.prev != nil; i++ {
		parent := cur.prev
		cur.prev = nil
		cur.top = cur
		cur.current = cur
		cur = parent
		moved = true
	}
	if !moved {
		return false
	}

	root.current = cur
	cur.forceSurfaceUpdate()
	if cur.onReset != nil {
		cur.onReset(cur)
	}
	return true
}

// FullReset rewinds the stack to the root menu.
func (m *Menu) FullReset() bool {
	return m.Reset(m.Depth())
}

// triggerClose applies the close policy to the displayed menu. A custom
// close handler overrides the declarative action and its return value
// decides whether the stack is disabled.
func (m *Menu) triggerClose() bool {
	root := m.stackRoot()
	cur := root.displayed()
	cur.sound.PlayClose()

	if cur.closeFunc != nil {
		if cur.closeFunc(cur) {
			root.enabled = false
		}
		return true
	}

	switch cur.closeAction {
	case CloseDisable:
		root.enabled = false
		return true
	case CloseReset:
		m.FullReset()
		root.enabled = false
		return true
	case CloseBack:
		if m.InSubmenu() {
			return m.Reset(1)
		}
		root.enabled = false
		return true
	default:
		return false
	}
}

// Close requests the menu to close according to its close policy, as if the
// close key had been pressed.
func (m *Menu) Close() bool {
	return m.triggerClose()
}
