package menu

import "fmt"

// SelectorItem is one entry of a Selector.
type SelectorItem struct {
	Label string
	Value any
}

// Selector is a value-bearing widget cycling through a fixed list of items
// with the left/right keys or by clicking its left/right half. The current
// item is rendered after the title.
type Selector struct {
	Base

	items []SelectorItem
	index int
}

func newSelector(title, id string, items []SelectorItem, cb EventCallback, o options, th Theme) *Selector {
	w := &Selector{items: items}
	w.Base = initBase(w, "Selector", id, title)
	w.onReturn = cb
	w.configure(o, th)
	return w
}

// Items returns the selector's items.
func (w *Selector) Items() []SelectorItem { return w.items }

// SetItems replaces the item list. The current index is clamped.
func (w *Selector) SetItems(items []SelectorItem) {
	w.items = items
	if w.index >= len(items) {
		w.index = 0
	}
	w.forceRender()
	w.forceMenuSurfaceUpdate()
}

// Index returns the current item index.
func (w *Selector) Index() int { return w.index }

// SetIndex jumps to an item by index.
func (w *Selector) SetIndex(i int) error {
	if i < 0 || i >= len(w.items) {
		return fmt.Errorf("selector index %d out of %d items: %w", i, len(w.items), ErrInvalidState)
	}
	if i != w.index {
		w.index = i
		w.forceRender()
		w.forceMenuSurfaceUpdate()
	}
	return nil
}

// CurrentItem returns the current item. The second result is false when the
// selector is empty.
func (w *Selector) CurrentItem() (SelectorItem, bool) {
	if len(w.items) == 0 {
		return SelectorItem{}, false
	}
	return w.items[w.index], true
}

// GetValue implements Widget. It returns the current SelectorItem, or an
// error wrapping ErrNoValue when the selector is empty.
func (w *Selector) GetValue() (any, error) {
	item, ok := w.CurrentItem()
	if !ok {
		return nil, noValueError(w.kind, w.id)
	}
	return item, nil
}

// step moves the current index by delta with wraparound and fires the
// on-change callback with the new item and index.
func (w *Selector) step(delta int) {
	n := len(w.items)
	if n == 0 || w.readonly {
		return
	}
	w.index = ((w.index+delta)%n + n) % n
	w.sound.PlayKey()
	w.forceRender()
	w.forceMenuSurfaceUpdate()
	w.Change(w.index)
}

func (w *Selector) display() string {
	if item, ok := w.CurrentItem(); ok {
		if w.title != "" {
			return w.title + " < " + item.Label + " >"
		}
		return "< " + item.Label + " >"
	}
	return w.title
}

func (w *Selector) render() bool {
	if !w.renderHashChanged(w.display(), w.selected, w.visible, w.readonly,
		w.stateFontColor(), w.theme().FontScale) {
		return false
	}
	w.contentSz = w.measureText(w.display())
	w.applyTransforms()
	return true
}

// Draw implements Widget.
func (w *Selector) Draw(dl *DrawList) {
	if !w.visible {
		return
	}
	w.render()
	p := w.Position()
	w.drawText(dl, p.X+w.padTrans.Left, p.Y+w.padTrans.Top, w.display(), w.stateFontColor())
	w.applyDrawCallbacks()
}

// Update implements Widget. Left/right keys cycle items; the apply key fires
// the on-return callback with the current item; a click or tap on the left
// half steps back, on the right half steps forward.
func (w *Selector) Update(events []Event) bool {
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
			switch e.Key {
			case controls.MoveLeft:
				w.step(-1)
				updated = true
			case controls.MoveRight:
				w.step(1)
				updated = true
			case controls.Apply:
				w.sound.PlayOpen()
				w.Apply(w.index)
				updated = true
			}
		case EventJoyHatMotion:
			if w.joystickEnabled {
				if e.Hat&JoyLeft != 0 {
					w.step(-1)
					updated = true
				}
				if e.Hat&JoyRight != 0 {
					w.step(1)
					updated = true
				}
			}
		case EventJoyButtonDown:
			if w.joystickEnabled && e.Button == JoyButtonSelect {
				w.sound.PlayOpen()
				w.Apply(w.index)
				updated = true
			}
		case EventMouseButtonUp:
			if w.mouseEnabled && e.Button == int(MouseButtonLeft) && w.stepFromPoint(e.Pos) {
				updated = true
			}
		case EventFingerUp:
			if w.touchEnabled {
				win := w.windowSize()
				px := Vec2{X: e.Pos.X * win.X, Y: e.Pos.Y * win.Y}
				if w.stepFromPoint(px) {
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

// stepFromPoint steps backward for a hit on the left half of the widget rect
// and forward for the right half.
func (w *Selector) stepFromPoint(p Vec2) bool {
	r := w.Rect()
	if !r.Contains(p) {
		return false
	}
	w.sound.PlayClick()
	if p.X < r.X+r.W/2 {
		w.step(-1)
	} else {
		w.step(1)
	}
	return true
}
