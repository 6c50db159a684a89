package menu

// VSpacer is an invisible vertical gap between widgets. It occupies a grid
// slot but cannot be selected and draws nothing.
type VSpacer struct {
	Base

	gap float32
}

func newVSpacer(gap float32, id string, o options, th Theme) *VSpacer {
	w := &VSpacer{gap: gap}
	w.Base = initBase(w, "VSpacer", id, "")
	w.configure(o, th)
	w.selectable = false
	w.padding = Padding{}
	w.padTrans = Padding{}
	return w
}

func (w *VSpacer) render() bool {
	if !w.renderHashChanged(w.gap, w.visible) {
		return false
	}
	w.contentSz = Vec2{X: 1, Y: w.gap}
	w.applyTransforms()
	return true
}

// Draw implements Widget. Spacers draw nothing.
func (w *VSpacer) Draw(dl *DrawList) {
	if !w.visible {
		return
	}
	w.render()
	w.applyDrawCallbacks()
}

// Update implements Widget.
func (w *VSpacer) Update(events []Event) bool {
	w.mergeBuffered(nil)
	return false
}
