package menu

// Button is a selectable widget that fires a callback or opens a submenu
// when applied with the apply key, the joystick select button, or a
// click/tap inside its rect.
type Button struct {
	Base

	// targetMenu is set for menu-opening buttons. It is mutually exclusive
	// with a plain on-return callback.
	targetMenu *Menu
}

// newButton builds a Button attached to nothing; Menu Add* factories attach
// it afterwards.
func newButton(title, id string, cb EventCallback, o options, th Theme) *Button {
	w := &Button{}
	w.Base = initBase(w, "Button", id, title)
	w.onReturn = cb
	w.configure(o, th)
	return w
}

// TargetMenu returns the submenu this button opens, or nil for callback
// buttons.
func (w *Button) TargetMenu() *Menu { return w.targetMenu }

// SetOnReturn replaces the button's apply callback. On a menu-opening button
// this severs the submenu relation: the button stops opening the target and
// the owning menu drops the submenu edge.
func (w *Button) SetOnReturn(cb EventCallback) {
	if target := w.targetMenu; target != nil {
		menuLogger.Warn("button callback replaces submenu target",
			"button", w.id, "target", target.Title())
		// Clear the target first so the edge scan does not find this
		// button still pointing at it.
		w.targetMenu = nil
		if w.menu != nil {
			w.menu.removeSubmenuEdge(target)
		}
	}
	w.onReturn = cb
}

// activate performs the button action: open the target submenu, or fire the
// apply callback.
func (w *Button) activate() {
	if w.readonly {
		return
	}
	if w.targetMenu != nil && w.menu != nil {
		w.sound.PlayOpen()
		w.menu.openSubmenu(w.targetMenu)
		return
	}
	w.sound.PlayOpen()
	w.Apply()
}

func (w *Button) render() bool {
	if !w.renderHashChanged(w.title, w.selected, w.visible, w.readonly,
		w.stateFontColor(), w.theme().FontScale) {
		return false
	}
	w.contentSz = w.measureText(w.title)
	w.applyTransforms()
	return true
}

// Draw implements Widget.
func (w *Button) Draw(dl *DrawList) {
	if !w.visible {
		return
	}
	w.render()
	p := w.Position()
	w.drawText(dl, p.X+w.padTrans.Left, p.Y+w.padTrans.Top, w.title, w.stateFontColor())
	w.applyDrawCallbacks()
}

// Update implements Widget. Readonly buttons never process events.
func (w *Button) Update(events []Event) bool {
	events = w.mergeBuffered(events)
	if w.readonly || !w.visible {
		return false
	}

	controls := DefaultControls()
	if w.menu != nil {
		controls = w.menu.controls
	}

	updated := false
	for _, e := range events {
		switch e.Type {
		case EventKeyDown:
			if e.Key == controls.Apply {
				w.activate()
				updated = true
			}
		case EventJoyButtonDown:
			if w.joystickEnabled && e.Button == JoyButtonSelect {
				w.activate()
				updated = true
			}
		case EventMouseButtonUp:
			if w.mouseEnabled && e.Button == int(MouseButtonLeft) &&
				w.Rect().Contains(e.Pos) {
				w.sound.PlayClick()
				w.activate()
				updated = true
			}
		case EventFingerUp:
			if w.touchEnabled {
				win := w.windowSize()
				px := Vec2{X: e.Pos.X * win.X, Y: e.Pos.Y * win.Y}
				if w.Rect().Contains(px) {
					w.sound.PlayClick()
					w.activate()
					updated = true
				}
			}
		}
	}

	if updated {
		w.applyUpdateCallbacks()
	}
	return updated
}
