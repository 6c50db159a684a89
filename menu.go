package menu

import (
	"fmt"
)

// CloseAction selects what happens when the close key (or EventQuit) reaches
// an open menu.
type CloseAction int

const (
	// CloseNone ignores the close request.
	CloseNone CloseAction = iota

	// CloseDisable disables the menu stack.
	CloseDisable

	// CloseReset rewinds to the root menu, then disables the stack.
	CloseReset

	// CloseBack goes back one level without disabling; at the root it
	// behaves like CloseDisable.
	CloseBack
)

// CloseFunc is a custom close handler. Its return value decides whether the
// menu stack is disabled after the handler runs.
type CloseFunc func(m *Menu) bool

// Menu is a retained-mode widget container with grid layout, a selection
// cursor and submenu navigation. Menus are single-threaded: all methods must
// be called from the same goroutine that drives Update and Draw.
//
// A Menu must not be copied after first use.
type Menu struct {
	noCopy noCopy

	id    string
	title string

	width, height    float32
	windowW, windowH float32

	theme        Theme
	controls     Controls
	sound        Sound
	fontProvider FontProvider

	widgets []Widget
	index   int // selected widget position in widgets, -1 when none

	columns    int
	rowsPerCol []int // capacity of each column
	colMinW    []float32
	colMaxW    []float32

	usedColumns  int
	columnWidths []float32
	columnPosX   []float32

	widgetOffset    Vec2
	centerContent   bool
	motionSelection bool

	enabled     bool
	needsLayout bool
	needsCache  bool
	renderCount int

	attributes map[string]any

	// Joystick axis edge state, -1/0/1 per axis.
	joyPushedX, joyPushedY int

	// Stack pointers. top is the stack root the application drives; its
	// current field names the displayed menu. prev is the parent in the
	// open chain.
	top     *Menu
	current *Menu
	prev    *Menu

	submenus map[*Menu]struct{}

	closeAction  CloseAction
	closeFunc    CloseFunc
	onReset      func(m *Menu)
	onBeforeOpen func(from, to *Menu)
	onUpdate     func(events []Event, m *Menu)
}

// MenuOption configures a Menu at construction.
type MenuOption func(*Menu)

// WithTheme sets the menu theme. It must validate.
func WithTheme(t Theme) MenuOption { return func(m *Menu) { m.theme = t } }

// WithMenuID overrides the generated menu id.
func WithMenuID(id string) MenuOption { return func(m *Menu) { m.id = id } }

// WithColumns lays widgets out over n columns, each holding rows[i] widgets.
// A single row count applies to every column. Column capacities bound the
// number of non-floating widgets the menu accepts.
func WithColumns(n int, rows ...int) MenuOption {
	return func(m *Menu) {
		m.columns = n
		m.rowsPerCol = rows
	}
}

// WithColumnMinWidth sets per-column minimum widths.
func WithColumnMinWidth(widths ...float32) MenuOption {
	return func(m *Menu) { m.colMinW = widths }
}

// WithColumnMaxWidth sets per-column maximum widths. A column wider than its
// maximum is capped and the surplus is redistributed to the others. A zero
// entry leaves that column unconstrained, which amounts to capping it at the
// full menu width: column widths always sum to the menu width, so no single
// column can grow past it.
func WithColumnMaxWidth(widths ...float32) MenuOption {
	return func(m *Menu) { m.colMaxW = widths }
}

// WithControls replaces the default key bindings.
func WithControls(c Controls) MenuOption { return func(m *Menu) { m.controls = c } }

// WithSound sets the sound engine shared with the menu's widgets.
func WithSound(s Sound) MenuOption { return func(m *Menu) { m.sound = s } }

// WithFontProvider sets the proportional font source. Without one, text uses
// the builtin fixed-cell bitmap font.
func WithFontProvider(p FontProvider) MenuOption { return func(m *Menu) { m.fontProvider = p } }

// WithCloseAction sets the policy applied when the close key fires.
func WithCloseAction(a CloseAction) MenuOption { return func(m *Menu) { m.closeAction = a } }

// WithCloseFunc sets a custom close handler; it overrides WithCloseAction.
func WithCloseFunc(f CloseFunc) MenuOption { return func(m *Menu) { m.closeFunc = f } }

// WithOnReset sets a hook fired when the displayed menu changes during a
// reset or back navigation.
func WithOnReset(f func(m *Menu)) MenuOption { return func(m *Menu) { m.onReset = f } }

// WithOnBeforeOpen sets a hook fired when a submenu is about to be shown,
// before the display pointer moves.
func WithOnBeforeOpen(f func(from, to *Menu)) MenuOption {
	return func(m *Menu) { m.onBeforeOpen = f }
}

// WithMotionSelection selects widgets as the pointer hovers over them,
// for mouse and touch motion alike. Off by default; clicks and taps always
// select.
func WithMotionSelection() MenuOption { return func(m *Menu) { m.motionSelection = true } }

// WithCenterContent vertically centers the widget column block when it is
// shorter than the menu body.
func WithCenterContent() MenuOption { return func(m *Menu) { m.centerContent = true } }

// WithWidgetOffset shifts the whole widget block from the body origin.
func WithWidgetOffset(x, y float32) MenuOption {
	return func(m *Menu) { m.widgetOffset = Vec2{X: x, Y: y} }
}

// NewMenu creates an empty enabled menu of the given surface size.
func NewMenu(title string, width, height float32, opts ...MenuOption) (*Menu, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("menu size must be positive, got %vx%v: %w", width, height, ErrInvalidState)
	}

	m := &Menu{
		title:      title,
		width:      width,
		height:     height,
		windowW:    width,
		windowH:    height,
		theme:      DefaultTheme(),
		controls:   DefaultControls(),
		sound:      NopSound{},
		index:      -1,
		columns:    1,
		enabled:    true,
		attributes: make(map[string]any),
		submenus:   make(map[*Menu]struct{}),
	}
	m.top = m
	m.current = m
	m.forceSurfaceUpdate()

	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	if m.id == "" {
		m.id = generateID(title)
	}
	if m.sound == nil {
		m.sound = NopSound{}
	}

	if err := m.theme.Validate(); err != nil {
		return nil, fmt.Errorf("menu %q theme: %w", title, err)
	}
	if err := m.validateGrid(); err != nil {
		return nil, fmt.Errorf("menu %q: %w", title, err)
	}
	return m, nil
}

// validateGrid checks the column/row configuration.
func (m *Menu) validateGrid() error {
	if m.columns < 1 {
		return fmt.Errorf("columns must be >= 1, got %d: %w", m.columns, ErrInvalidState)
	}
	if m.columns > 1 && len(m.rowsPerCol) == 0 {
		return fmt.Errorf("row counts are required for %d columns: %w", m.columns, ErrInvalidState)
	}
	switch len(m.rowsPerCol) {
	case 0, 1:
		// Unbounded single column, or one count for all columns.
	case m.columns:
	default:
		return fmt.Errorf("got %d row counts for %d columns: %w", len(m.rowsPerCol), m.columns, ErrInvalidState)
	}
	for _, r := range m.rowsPerCol {
		if r < 1 {
			return fmt.Errorf("rows must be >= 1, got %d: %w", r, ErrInvalidState)
		}
	}
	if len(m.colMinW) > m.columns || len(m.colMaxW) > m.columns {
		return fmt.Errorf("column width lists longer than %d columns: %w", m.columns, ErrInvalidState)
	}
	for i, w := range m.colMinW {
		if w < 0 {
			return fmt.Errorf("negative min width for column %d: %w", i, ErrInvalidState)
		}
	}
	for i, w := range m.colMaxW {
		if w < 0 {
			return fmt.Errorf("negative max width for column %d: %w", i, ErrInvalidState)
		}
	}
	return nil
}

// capacity returns the grid slot capacity, or -1 when unbounded.
func (m *Menu) capacity() int {
	if len(m.rowsPerCol) == 0 {
		return -1
	}
	if len(m.rowsPerCol) == 1 {
		return m.columns * m.rowsPerCol[0]
	}
	total := 0
	for _, r := range m.rowsPerCol {
		total += r
	}
	return total
}

// rowsInColumn returns the slot capacity of one column.
func (m *Menu) rowsInColumn(col int) int {
	if len(m.rowsPerCol) == 0 {
		return -1
	}
	if len(m.rowsPerCol) == 1 {
		return m.rowsPerCol[0]
	}
	return m.rowsPerCol[col]
}

// ID returns the menu id.
func (m *Menu) ID() string { return m.id }

// Title returns the menu title.
func (m *Menu) Title() string { return m.title }

// Size returns the menu surface size.
func (m *Menu) Size() Vec2 { return Vec2{X: m.width, Y: m.height} }

// WindowSize returns the window size touch coordinates are scaled by.
func (m *Menu) WindowSize() Vec2 { return Vec2{X: m.windowW, Y: m.windowH} }

// SetWindowSize declares the enclosing window size. Defaults to the menu
// surface size.
func (m *Menu) SetWindowSize(w, h float32) {
	m.windowW, m.windowH = w, h
}

// Theme returns a copy of the menu theme.
func (m *Menu) Theme() Theme { return m.theme }

// SetTheme restyles the menu. The theme must validate.
func (m *Menu) SetTheme(t Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}
	m.theme = t
	for _, w := range m.widgets {
		w.base().forceRender()
	}
	m.forceSurfaceUpdate()
	return nil
}

// Controls returns the menu key bindings.
func (m *Menu) Controls() Controls { return m.controls }

// SetOnUpdate sets a hook fired at the start of every Update call with the
// raw event batch.
func (m *Menu) SetOnUpdate(f func(events []Event, m *Menu)) {
	m.onUpdate = f
}

// Enabled reports whether the menu stack accepts updates and draws.
func (m *Menu) Enabled() bool { return m.stackRoot().enabled }

// Enable turns the menu stack back on.
func (m *Menu) Enable() {
	root := m.stackRoot()
	root.enabled = true
	root.displayed().forceSurfaceCacheUpdate()
}

// Disable turns the menu stack off. Update and Draw become no-ops until
// Enable is called.
func (m *Menu) Disable() {
	m.stackRoot().enabled = false
}

// ---------------------------------------------------------------------------
// Widget management

// addWidget attaches a constructed widget: duplicate-id and capacity checks,
// back-reference wiring, initial selection.
func (m *Menu) addWidget(w Widget) error {
	b := w.base()
	for _, existing := range m.widgets {
		if existing.base().id == b.id {
			return fmt.Errorf("widget id %q already in menu %q: %w", b.id, m.title, ErrInvalidState)
		}
	}
	if slots := m.capacity(); slots >= 0 && !b.floatState {
		if m.slotCount() >= slots {
			return fmt.Errorf("menu %q is full (%d slots): %w", m.title, slots, ErrCapacity)
		}
	}

	b.setMenu(m)
	b.SetSound(m.sound)
	m.widgets = append(m.widgets, w)

	if m.index < 0 && b.selectable && b.visible {
		m.selectIndexDirect(len(m.widgets) - 1)
	}
	m.forceSurfaceUpdate()
	return nil
}

// slotCount counts attached widgets that consume a grid slot.
func (m *Menu) slotCount() int {
	n := 0
	for _, w := range m.widgets {
		if !w.base().floatState {
			n++
		}
	}
	return n
}

// resolveWidgetID picks the explicit option id or generates one.
func resolveWidgetID(o options, title string) string {
	if id := GetOpt(o, OptID); id != "" {
		return id
	}
	return generateID(title)
}

// AddButton appends a button firing cb when applied.
func (m *Menu) AddButton(title string, cb EventCallback, opts ...Option) (*Button, error) {
	o := applyOptions(opts)
	w := newButton(title, resolveWidgetID(o, title), cb, o, m.theme)
	if err := m.addWidget(w); err != nil {
		return nil, err
	}
	return w, nil
}

// AddMenuButton appends a button that opens target as a submenu. The new
// submenu edge must keep the menu graph acyclic; a link that would make the
// target reach back to this menu fails with ErrCycle.
func (m *Menu) AddMenuButton(title string, target *Menu, opts ...Option) (*Button, error) {
	if target == nil {
		return nil, fmt.Errorf("nil submenu for button %q: %w", title, ErrInvalidState)
	}
	if target == m || target.reaches(m) {
		return nil, fmt.Errorf("submenu %q would cycle back to %q: %w", target.title, m.title, ErrCycle)
	}

	o := applyOptions(opts)
	w := newButton(title, resolveWidgetID(o, title), nil, o, m.theme)
	w.targetMenu = target
	if err := m.addWidget(w); err != nil {
		return nil, err
	}
	m.submenus[target] = struct{}{}
	return w, nil
}

// AddLabel appends a non-selectable text line.
func (m *Menu) AddLabel(title string, opts ...Option) (*Label, error) {
	o := applyOptions(opts)
	w := newLabel(title, resolveWidgetID(o, title), o, m.theme)
	if err := m.addWidget(w); err != nil {
		return nil, err
	}
	return w, nil
}

// AddSelector appends a horizontal item chooser. cb fires on apply with the
// current item and index.
func (m *Menu) AddSelector(title string, items []SelectorItem, cb EventCallback, opts ...Option) (*Selector, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("selector %q needs at least one item: %w", title, ErrInvalidState)
	}
	o := applyOptions(opts)
	w := newSelector(title, resolveWidgetID(o, title), items, cb, o, m.theme)
	if err := m.addWidget(w); err != nil {
		return nil, err
	}
	return w, nil
}

// AddVSpacer appends an invisible vertical gap of the given height.
func (m *Menu) AddVSpacer(gap float32, opts ...Option) (*VSpacer, error) {
	if gap < 0 {
		return nil, fmt.Errorf("negative spacer gap: %w", ErrInvalidState)
	}
	o := applyOptions(opts)
	w := newVSpacer(gap, resolveWidgetID(o, "vspacer"), o, m.theme)
	if err := m.addWidget(w); err != nil {
		return nil, err
	}
	return w, nil
}

// GetWidget finds an attached widget by id.
func (m *Menu) GetWidget(id string) (Widget, error) {
	for _, w := range m.widgets {
		if w.base().id == id {
			return w, nil
		}
	}
	return nil, fmt.Errorf("widget %q in menu %q: %w", id, m.title, ErrNotFound)
}

// Widgets returns the attached widgets in insertion order. The slice is
// shared; do not mutate it.
func (m *Menu) Widgets() []Widget { return m.widgets }

// SelectedWidget returns the selected widget, or nil.
func (m *Menu) SelectedWidget() Widget {
	if m.index < 0 || m.index >= len(m.widgets) {
		return nil
	}
	return m.widgets[m.index]
}

// RemoveWidget detaches a widget by id. The widget's grid coordinates reset
// and selection moves to the nearest selectable widget.
func (m *Menu) RemoveWidget(id string) error {
	for i, w := range m.widgets {
		if w.base().id != id {
			continue
		}
		b := w.base()
		wasSelected := b.selected
		if wasSelected {
			b.Select(false)
		}
		b.setMenu(nil)
		m.widgets = append(m.widgets[:i], m.widgets[i+1:]...)
		// The edge scan must not see the removed button, so this runs
		// after the splice.
		if btn, ok := w.(*Button); ok && btn.targetMenu != nil {
			m.removeSubmenuEdge(btn.targetMenu)
		}

		switch {
		case m.index == i:
			m.index = -1
			if wasSelected {
				m.selectNearest(i)
			}
		case m.index > i:
			m.index--
		}
		m.forceSurfaceUpdate()
		return nil
	}
	return fmt.Errorf("widget %q in menu %q: %w", id, m.title, ErrNotFound)
}

// Clear detaches every widget and clears the selection.
func (m *Menu) Clear() {
	for _, w := range m.widgets {
		b := w.base()
		if b.selected {
			b.Select(false)
		}
		// Every button goes away with the clear, so drop its edge outright.
		if btn, ok := w.(*Button); ok && btn.targetMenu != nil {
			delete(m.submenus, btn.targetMenu)
		}
		b.setMenu(nil)
	}
	m.widgets = nil
	m.index = -1
	m.forceSurfaceUpdate()
}

// removeSubmenuEdge drops the submenu relation when no remaining button
// targets it.
func (m *Menu) removeSubmenuEdge(target *Menu) {
	for _, w := range m.widgets {
		if btn, ok := w.(*Button); ok && btn.targetMenu == target {
			return
		}
	}
	delete(m.submenus, target)
}

// reaches reports whether other is reachable from m through submenu edges.
func (m *Menu) reaches(other *Menu) bool {
	for sub := range m.submenus {
		if sub == other || sub.reaches(other) {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Menu attributes

// SetAttribute stores an arbitrary key/value pair on the menu.
func (m *Menu) SetAttribute(key string, value any) {
	m.attributes[key] = value
}

// GetAttribute retrieves a menu attribute, or def when absent.
func (m *Menu) GetAttribute(key string, def any) any {
	if v, ok := m.attributes[key]; ok {
		return v
	}
	return def
}

// HasAttribute reports whether the menu attribute exists.
func (m *Menu) HasAttribute(key string) bool {
	_, ok := m.attributes[key]
	return ok
}

// RemoveAttribute deletes a menu attribute; missing keys fail with
// ErrNotFound.
func (m *Menu) RemoveAttribute(key string) error {
	if _, ok := m.attributes[key]; !ok {
		return fmt.Errorf("menu attribute %q: %w", key, ErrNotFound)
	}
	delete(m.attributes, key)
	return nil
}

// ---------------------------------------------------------------------------
// Render plumbing

// forceSurfaceUpdate schedules a full layout pass for the next render.
func (m *Menu) forceSurfaceUpdate() {
	m.needsLayout = true
	m.needsCache = true
}

// forceSurfaceCacheUpdate schedules a surface refresh without re-layout.
func (m *Menu) forceSurfaceCacheUpdate() {
	m.needsCache = true
}

// Render performs any pending layout work. It is idempotent: rendering twice
// without intervening mutation does not recompute positions. Draw calls it
// implicitly; calling it early is useful to query widget positions before
// the first frame.
func (m *Menu) Render() error {
	if m.needsLayout {
		if err := m.positionWidgets(); err != nil {
			return err
		}
		m.needsLayout = false
		m.renderCount++
	}
	m.needsCache = false
	return nil
}

// RenderCount returns how many layout passes have run.
func (m *Menu) RenderCount() int { return m.renderCount }

// Draw renders the displayed menu of this stack into a draw list. Drawing a
// disabled menu fails with ErrDisabled.
func (m *Menu) Draw(dl *DrawList) error {
	root := m.stackRoot()
	if !root.enabled {
		return fmt.Errorf("menu %q: %w", m.title, ErrDisabled)
	}
	cur := root.displayed()
	if err := cur.Render(); err != nil {
		return err
	}
	cur.drawSurface(dl)
	return nil
}

// drawSurface emits background, title bar, selection decoration and widgets.
func (m *Menu) drawSurface(dl *DrawList) {
	th := m.theme

	dl.AddRect(0, 0, m.width, m.height, th.BackgroundColor)
	if th.TitleHeight > 0 {
		dl.AddRect(0, 0, m.width, th.TitleHeight, th.TitleBackgroundColor)
		tw := float32(len(m.title)) * th.CharWidth * th.FontScale
		tx := (m.width - tw) / 2
		ty := (th.TitleHeight - th.CharHeight*th.FontScale) / 2
		dl.AddText(tx, ty, m.title, th.TitleFontColor, th.FontScale, th.CharWidth, th.CharHeight)
	}
	if th.BorderSize > 0 {
		dl.AddRectOutline(0, 0, m.width, m.height, th.BorderColor, th.BorderSize)
	}

	if sel := m.SelectedWidget(); sel != nil && sel.base().visible {
		b := sel.base()
		dl.AddQuad(b.transformQuad(b.Rect()), th.SelectionColor)
	}

	for _, w := range m.widgets {
		w.Draw(dl)
	}
}
