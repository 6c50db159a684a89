package menu

// Label is a non-selectable text widget. It carries no value and ignores
// all input.
type Label struct {
	Base
}

func newLabel(title, id string, o options, th Theme) *Label {
	w := &Label{}
	w.Base = initBase(w, "Label", id, title)
	w.configure(o, th)
	w.selectable = false
	return w
}

func (w *Label) render() bool {
	if !w.renderHashChanged(w.title, w.visible, w.stateFontColor(), w.theme().FontScale) {
		return false
	}
	w.contentSz = w.measureText(w.title)
	w.applyTransforms()
	return true
}

// Draw implements Widget.
func (w *Label) Draw(dl *DrawList) {
	if !w.visible {
		return
	}
	w.render()
	p := w.Position()
	w.drawText(dl, p.X+w.padTrans.Left, p.Y+w.padTrans.Top, w.title, w.stateFontColor())
	w.applyDrawCallbacks()
}

// Update implements Widget. Labels never react to input.
func (w *Label) Update(events []Event) bool {
	w.mergeBuffered(nil)
	return false
}
