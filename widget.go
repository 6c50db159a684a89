package menu

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"time"
	"unicode/utf8"
)

// Widget is the contract implemented by all menu widgets. Concrete widgets
// embed Base, which provides geometry, state, transforms, selection and the
// callback registries; they implement the rendering/input subset themselves.
//
// Widgets are not value types: they are uniquely owned by at most one Menu
// and must never be copied. Detach with Menu.RemoveWidget before attaching
// elsewhere.
type Widget interface {
	// ID returns the widget's unique id.
	ID() string

	// Title returns the widget title.
	Title() string

	// Selected reports whether the widget holds the selection cursor.
	Selected() bool

	// Visible reports whether the widget participates in layout.
	Visible() bool

	// ColRowIndex returns the widget's grid coordinates, all -1 while
	// hidden or detached.
	ColRowIndex() (col, row, index int)

	// Draw emits the widget's draw commands. Called by the owning Menu.
	Draw(dl *DrawList)

	// Update processes a batch of normalized input events and reports
	// whether any of them changed the widget's state.
	Update(events []Event) bool

	// GetValue returns the widget's current value. Widget kinds that do
	// not carry a value fail with an error wrapping ErrNoValue.
	GetValue() (any, error)

	// base returns the embedded Base. Keeping it unexported closes the
	// widget set to this package's variants.
	base() *Base
	// render recomputes cached visual output if the render hash changed.
	render() bool
}

// Callback signatures used throughout the package.
type (
	// SelectCallback fires on selection transitions with the new status.
	SelectCallback func(selected bool, w Widget, m *Menu)

	// EventCallback fires on apply/change. When the widget carries a
	// value it is passed first, followed by call-site and stored args.
	EventCallback func(args ...any)

	// DrawCallback fires after the widget draws.
	DrawCallback func(w Widget, m *Menu)

	// UpdateCallback fires after the widget processed an updating event.
	UpdateCallback func(w Widget, m *Menu)
)

// Base holds the state shared by every widget kind. It is exported so its
// methods promote through embedding, but Base values are only created by the
// Menu Add* factories.
type Base struct {
	noCopy noCopy

	self Widget // concrete widget, set once at construction
	kind string
	id   string

	title string
	menu  *Menu // non-owning back-reference; nil when detached

	// Geometry
	pos        Vec2 // top-left, assigned by the layout engine
	contentSz  Vec2 // untransformed content size, set by render()
	transSz    Vec2 // content size after transforms
	padding    Padding
	padTrans   Padding // padding scaled by the active transform
	margin     Vec2
	translate  Vec2
	alignment  Alignment
	hasAlign   bool // explicit alignment set, otherwise theme applies
	fontColor  uint32
	floatState bool

	// Transform state. scale and max-width/height are mutually exclusive.
	angle          float32 // degrees
	flipX, flipY   bool
	scaleActive    bool
	scaleX, scaleY float32
	maxWidth       float32 // 0 = unconstrained
	maxWidthScaleH bool
	maxHeight      float32
	maxHeightScaleW bool

	// State
	selectable    bool
	selected      bool
	visible       bool
	readonly      bool
	active        bool
	selectionTime time.Time

	// Grid coordinates; (-1,-1,-1) while hidden or detached.
	col, row, index int

	// Input routing
	joystickEnabled bool
	mouseEnabled    bool
	touchEnabled    bool
	buffered        []Event

	attributes map[string]any

	// Callbacks
	onReturn EventCallback
	onChange EventCallback
	onSelect SelectCallback
	args     []any // stored args appended to apply/change deliveries

	drawCallbacks   map[string]DrawCallback
	updateCallbacks map[string]UpdateCallback

	// Render cache. 0 means "never rendered".
	lastRenderHash uint64

	sound Sound
}

// initBase wires the shared state for a concrete widget.
func initBase(self Widget, kind, id, title string) Base {
	return Base{
		self:            self,
		kind:            kind,
		id:              id,
		title:           title,
		scaleX:          1,
		scaleY:          1,
		selectable:      true,
		visible:         true,
		joystickEnabled: true,
		mouseEnabled:    true,
		touchEnabled:    true,
		col:             -1,
		row:             -1,
		index:           -1,
		attributes:      make(map[string]any),
		drawCallbacks:   make(map[string]DrawCallback),
		updateCallbacks: make(map[string]UpdateCallback),
		sound:           NopSound{},
	}
}

func (b *Base) base() *Base { return b }

// ID returns the widget's unique id.
func (b *Base) ID() string { return b.id }

// Kind returns the widget kind name (e.g. "Button").
func (b *Base) Kind() string { return b.kind }

// Title returns the widget title.
func (b *Base) Title() string { return b.title }

// SetTitle updates the widget title and forces a re-render.
func (b *Base) SetTitle(title string) {
	if b.title == title {
		return
	}
	b.title = title
	b.forceRender()
	b.forceMenuSurfaceUpdate()
}

// Menu returns the owning Menu, or nil if the widget is detached.
func (b *Base) Menu() *Menu { return b.menu }

// setMenu attaches or detaches the owning menu reference.
func (b *Base) setMenu(m *Menu) {
	b.menu = m
	if m == nil {
		b.col, b.row, b.index = -1, -1, -1
	}
}

// theme resolves the effective theme: the owning menu's, or the default for
// detached widgets.
func (b *Base) theme() Theme {
	if b.menu != nil {
		return b.menu.theme
	}
	return DefaultTheme()
}

// font resolves the active proportional font, or nil for the builtin one.
func (b *Base) font() Font {
	if b.menu != nil && b.menu.fontProvider != nil {
		return b.menu.fontProvider.ActiveFont()
	}
	return nil
}

// measureText returns the pixel size of a string with the effective font.
func (b *Base) measureText(s string) Vec2 {
	th := b.theme()
	if f := b.font(); f != nil {
		return f.MeasureText(s, th.FontScale)
	}
	return Vec2{
		X: float32(utf8.RuneCountInString(s)) * th.CharWidth * th.FontScale,
		Y: th.CharHeight * th.FontScale,
	}
}

// ---------------------------------------------------------------------------
// Render cache

// hashVariables computes a change-detection hash from a series of variables.
// A result of zero would collide with the "never rendered" sentinel, so it is
// remapped to a random nonzero value.
func hashVariables(vals ...any) uint64 {
	h := fnv.New64a()
	fmt.Fprint(h, vals...)
	v := h.Sum64()
	if v == 0 {
		v = rand.Uint64() | 1
	}
	return v
}

// renderHashChanged reports whether the widget must re-render because the
// given variables changed since the last render. Callers pass every variable
// their render output depends on (selected, title, visibility, readonly...).
func (b *Base) renderHashChanged(vals ...any) bool {
	h := hashVariables(vals...)
	if h != b.lastRenderHash || b.lastRenderHash == 0 {
		b.lastRenderHash = h
		return true
	}
	return false
}

// forceRender discards the widget's render cache.
func (b *Base) forceRender() {
	b.lastRenderHash = 0
}

// forceMenuSurfaceUpdate marks the owning menu for a full re-layout on its
// next render. Geometry mutators call this.
func (b *Base) forceMenuSurfaceUpdate() {
	if b.menu != nil {
		b.menu.forceSurfaceUpdate()
	}
}

// forceMenuSurfaceCacheUpdate marks only the owning menu's composite surface
// for refresh, without re-running layout. Pure-visual mutators call this.
func (b *Base) forceMenuSurfaceCacheUpdate() {
	if b.menu != nil {
		b.menu.forceSurfaceCacheUpdate()
	}
}

// ---------------------------------------------------------------------------
// Geometry

// Position returns the widget's assigned top-left position.
func (b *Base) Position() Vec2 {
	return b.pos.Add(b.translate)
}

// setPosition is called by the layout engine.
func (b *Base) setPosition(x, y float32) {
	b.pos = Vec2{X: x, Y: y}
}

// Translate applies a constant offset on top of the layout position.
func (b *Base) Translate(x, y float32) {
	b.translate = Vec2{X: x, Y: y}
	b.forceMenuSurfaceUpdate()
}

// Size returns the transformed widget size including scaled padding.
func (b *Base) Size() Vec2 {
	return Vec2{
		X: b.transSz.X + b.padTrans.Horizontal(),
		Y: b.transSz.Y + b.padTrans.Vertical(),
	}
}

// ContentSize returns the untransformed content size, without padding.
func (b *Base) ContentSize() Vec2 { return b.contentSz }

// Width returns the transformed width including padding.
func (b *Base) Width() float32 { return b.Size().X }

// Height returns the transformed height including padding.
func (b *Base) Height() float32 { return b.Size().Y }

// Rect returns the widget's padded rect at its current position.
// This is the rect used for mouse/touch hit-testing.
func (b *Base) Rect() Rect {
	p := b.Position()
	s := b.Size()
	return Rect{X: p.X, Y: p.Y, W: s.X, H: s.Y}
}

// Padding returns the configured (untransformed) padding.
func (b *Base) Padding() Padding { return b.padding }

// SetPadding updates the widget padding. Negative values are rejected.
func (b *Base) SetPadding(p Padding) error {
	if p.Top < 0 || p.Right < 0 || p.Bottom < 0 || p.Left < 0 {
		return fmt.Errorf("negative padding: %w", ErrInvalidState)
	}
	b.padding = p
	b.padTrans = p
	b.forceRender()
	b.forceMenuSurfaceUpdate()
	return nil
}

// Margin returns the widget margin (X horizontal offset, Y gap below).
func (b *Base) Margin() Vec2 { return b.margin }

// SetMargin updates the widget margin.
func (b *Base) SetMargin(x, y float32) {
	b.margin = Vec2{X: x, Y: y}
	b.forceMenuSurfaceUpdate()
}

// Alignment returns the effective horizontal alignment within the column.
func (b *Base) Alignment() Alignment {
	if b.hasAlign {
		return b.alignment
	}
	return b.theme().Alignment
}

// SetAlignment overrides the theme alignment for this widget.
func (b *Base) SetAlignment(a Alignment) {
	b.alignment = a
	b.hasAlign = true
	b.forceMenuSurfaceUpdate()
}

// ---------------------------------------------------------------------------
// Transforms

// Rotate sets the widget rotation angle in degrees.
func (b *Base) Rotate(angle float32) {
	b.angle = angle
	b.forceRender()
	b.forceMenuSurfaceCacheUpdate()
}

// Flip mirrors the widget surface along the X and/or Y axis.
func (b *Base) Flip(x, y bool) {
	b.flipX, b.flipY = x, y
	b.forceRender()
	b.forceMenuSurfaceCacheUpdate()
}

// Scale sets explicit width/height scale factors. Scale and max-width/height
// are mutually exclusive: setting a scale disables any max constraint with a
// warning, not an error.
func (b *Base) Scale(sx, sy float32) error {
	if sx <= 0 || sy <= 0 {
		return fmt.Errorf("scale factors must be positive: %w", ErrInvalidState)
	}
	if b.maxWidth > 0 || b.maxHeight > 0 {
		menuLogger.Warn("widget scale disables max width/height", "widget", b.id)
		b.maxWidth = 0
		b.maxHeight = 0
	}
	b.scaleActive = sx != 1 || sy != 1
	b.scaleX, b.scaleY = sx, sy
	b.forceRender()
	b.forceMenuSurfaceUpdate()
	return nil
}

// SetMaxWidth clamps the transformed widget width. Content wider than max is
// downscaled; scaleHeight also scales the height to keep the aspect ratio.
// Pass 0 to remove the constraint. Disables any active Scale with a warning.
func (b *Base) SetMaxWidth(width float32, scaleHeight bool) error {
	if width < 0 {
		return fmt.Errorf("max width cannot be negative: %w", ErrInvalidState)
	}
	if b.scaleActive {
		menuLogger.Warn("widget max width disables scale", "widget", b.id)
		b.disableScale()
	}
	if b.maxHeight > 0 {
		menuLogger.Warn("widget max width disables max height", "widget", b.id)
		b.maxHeight = 0
	}
	b.maxWidth = width
	b.maxWidthScaleH = scaleHeight
	b.forceRender()
	b.forceMenuSurfaceUpdate()
	return nil
}

// SetMaxHeight clamps the transformed widget height, mirroring SetMaxWidth.
func (b *Base) SetMaxHeight(height float32, scaleWidth bool) error {
	if height < 0 {
		return fmt.Errorf("max height cannot be negative: %w", ErrInvalidState)
	}
	if b.scaleActive {
		menuLogger.Warn("widget max height disables scale", "widget", b.id)
		b.disableScale()
	}
	if b.maxWidth > 0 {
		menuLogger.Warn("widget max height disables max width", "widget", b.id)
		b.maxWidth = 0
	}
	b.maxHeight = height
	b.maxHeightScaleW = scaleWidth
	b.forceRender()
	b.forceMenuSurfaceUpdate()
	return nil
}

func (b *Base) disableScale() {
	b.scaleActive = false
	b.scaleX, b.scaleY = 1, 1
}

// applyTransforms recomputes the transformed size and scaled padding from the
// untransformed content size. Rotation and flips do not alter the layout box;
// they only affect the emitted quads. Transform order is fixed:
// rotate, flip, then scale-or-clamp.
func (b *Base) applyTransforms() {
	w, h := b.contentSz.X, b.contentSz.Y
	b.transSz = b.contentSz
	b.padTrans = b.padding
	if w <= 0 || h <= 0 {
		return
	}

	switch {
	case b.scaleActive:
		b.transSz = Vec2{X: w * b.scaleX, Y: h * b.scaleY}
	case b.maxWidth > 0:
		padded := w + b.padding.Horizontal()
		if padded > b.maxWidth {
			f := b.maxWidth / padded
			nh := h
			if b.maxWidthScaleH {
				nh = h * f
			}
			b.transSz = Vec2{X: w * f, Y: nh}
		}
	case b.maxHeight > 0:
		padded := h + b.padding.Vertical()
		if padded > b.maxHeight {
			f := b.maxHeight / padded
			nw := w
			if b.maxHeightScaleW {
				nw = w * f
			}
			b.transSz = Vec2{X: nw, Y: h * f}
		}
	}

	b.padTrans = b.padding.scaled(b.transSz.X/w, b.transSz.Y/h)
}

// transformQuad maps an axis-aligned rect through the widget's rotation and
// flip about the rect center, returning the four corners clockwise.
func (b *Base) transformQuad(r Rect) [4]Vec2 {
	corners := [4]Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
	if b.angle == 0 && !b.flipX && !b.flipY {
		return corners
	}

	c := r.Center()
	sin, cos := sincosDeg(b.angle)
	for i, p := range corners {
		corners[i] = rotateFlipAbout(p, c, sin, cos, b.flipX, b.flipY)
	}
	return corners
}

// rotateFlipAbout rotates a point about a center, then mirrors it.
func rotateFlipAbout(p, c Vec2, sin, cos float32, flipX, flipY bool) Vec2 {
	dx, dy := p.X-c.X, p.Y-c.Y
	rx := dx*cos - dy*sin
	ry := dx*sin + dy*cos
	if flipX {
		rx = -rx
	}
	if flipY {
		ry = -ry
	}
	return Vec2{X: c.X + rx, Y: c.Y + ry}
}

// sincosDeg returns sin/cos of an angle in degrees.
func sincosDeg(deg float32) (sin, cos float32) {
	s, c := math.Sincos(float64(deg) * math.Pi / 180)
	return float32(s), float32(c)
}

// ---------------------------------------------------------------------------
// Visibility / float / readonly

// Visible reports whether the widget participates in layout and drawing.
func (b *Base) Visible() bool { return b.visible }

// Show makes the widget visible again.
func (b *Base) Show() {
	if b.visible {
		return
	}
	b.visible = true
	b.forceRender()
	if b.menu != nil {
		b.menu.updateSelectionIfHidden()
	}
	b.forceMenuSurfaceUpdate()
}

// Hide removes the widget from layout and drawing without detaching it.
// Its grid coordinates become (-1,-1,-1) until shown again.
func (b *Base) Hide() {
	if !b.visible {
		return
	}
	b.visible = false
	if b.selected {
		b.Select(false)
	}
	b.forceRender()
	if b.menu != nil {
		b.menu.updateSelectionIfHidden()
	}
	b.forceMenuSurfaceUpdate()
}

// Floating reports whether the widget is excluded from grid slot allocation.
func (b *Base) Floating() bool { return b.floatState }

// SetFloat marks the widget as floating. A floating widget occupies the same
// column and row as the preceding non-floating widget and does not count
// toward grid capacity or column widths.
func (b *Base) SetFloat(floating bool) {
	if b.floatState == floating {
		return
	}
	b.floatState = floating
	b.forceMenuSurfaceUpdate()
}

// ReadOnly reports whether the widget ignores events and callbacks.
func (b *Base) ReadOnly() bool { return b.readonly }

// SetReadOnly toggles readonly mode.
func (b *Base) SetReadOnly(readonly bool) {
	if b.readonly == readonly {
		return
	}
	b.readonly = readonly
	b.forceRender()
	b.forceMenuSurfaceCacheUpdate()
}

// ---------------------------------------------------------------------------
// Selection

// Selectable reports whether the widget can receive selection.
func (b *Base) Selectable() bool { return b.selectable }

// SetSelectable changes the widget's selection capability.
func (b *Base) SetSelectable(selectable bool) {
	b.selectable = selectable
	if !selectable && b.selected {
		b.Select(false)
		if b.menu != nil {
			b.menu.updateSelectionIfHidden()
		}
	}
}

// Selected reports whether the widget is currently selected.
func (b *Base) Selected() bool { return b.selected }

// Select transitions the widget's selection state. Non-selectable widgets
// silently ignore the request. On selection the focus hook runs, the
// selection time is stamped and the on-select callback fires with the new
// status; on deselection the blur hook runs and buffered events are dropped.
func (b *Base) Select(status bool) {
	if !b.selectable {
		return
	}
	b.selected = status
	b.active = false
	if status {
		b.selectionTime = time.Now()
	} else {
		b.buffered = nil
	}
	b.forceRender()
	if b.onSelect != nil {
		b.onSelect(status, b.self, b.menu)
	}
}

// SelectedTime returns how long the widget has been selected.
// Zero if the widget is not selected.
func (b *Base) SelectedTime() time.Duration {
	if !b.selected {
		return 0
	}
	return time.Since(b.selectionTime)
}

// ColRowIndex returns the widget's grid column, row and dense sequence index
// among visible widgets. All three are -1 while the widget is hidden or
// detached from a Menu.
func (b *Base) ColRowIndex() (col, row, index int) {
	return b.col, b.row, b.index
}

func (b *Base) setColRowIndex(col, row, index int) {
	b.col, b.row, b.index = col, row, index
}

// ---------------------------------------------------------------------------
// Attributes

// SetAttribute stores an arbitrary key/value pair on the widget.
func (b *Base) SetAttribute(key string, value any) {
	b.attributes[key] = value
}

// GetAttribute retrieves an attribute, or def when absent.
func (b *Base) GetAttribute(key string, def any) any {
	if v, ok := b.attributes[key]; ok {
		return v
	}
	return def
}

// HasAttribute reports whether the attribute exists.
func (b *Base) HasAttribute(key string) bool {
	_, ok := b.attributes[key]
	return ok
}

// RemoveAttribute deletes an attribute. Removing a nonexistent attribute
// fails with ErrNotFound.
func (b *Base) RemoveAttribute(key string) error {
	if _, ok := b.attributes[key]; !ok {
		return fmt.Errorf("attribute %q: %w", key, ErrNotFound)
	}
	delete(b.attributes, key)
	return nil
}

// ---------------------------------------------------------------------------
// Callbacks

// SetOnSelect sets the selection-transition callback.
func (b *Base) SetOnSelect(cb SelectCallback) {
	b.onSelect = cb
}

// SetOnChange sets the on-change callback fired by Change.
func (b *Base) SetOnChange(cb EventCallback) {
	b.onChange = cb
}

// Apply runs the on-return callback. The delivered arguments are the
// widget's value (when GetValue succeeds), then the call-site args, then the
// stored args. No-op while readonly or without a callback.
func (b *Base) Apply(args ...any) {
	if b.readonly || b.onReturn == nil {
		return
	}
	b.onReturn(b.callbackArgs(args)...)
}

// Change runs the on-change callback with the same argument contract as
// Apply. No-op while readonly or without a callback.
func (b *Base) Change(args ...any) {
	if b.readonly || b.onChange == nil {
		return
	}
	b.onChange(b.callbackArgs(args)...)
}

func (b *Base) callbackArgs(args []any) []any {
	all := make([]any, 0, len(args)+len(b.args)+1)
	if v, err := b.self.GetValue(); err == nil {
		all = append(all, v)
	}
	all = append(all, args...)
	all = append(all, b.args...)
	return all
}

// AddDrawCallback registers a callback invoked after the widget draws and
// returns its generated id.
func (b *Base) AddDrawCallback(cb DrawCallback) string {
	id := generateCallbackID()
	b.drawCallbacks[id] = cb
	return id
}

// RemoveDrawCallback removes a draw callback by id.
func (b *Base) RemoveDrawCallback(id string) error {
	if _, ok := b.drawCallbacks[id]; !ok {
		return fmt.Errorf("draw callback %q: %w", id, ErrNotFound)
	}
	delete(b.drawCallbacks, id)
	return nil
}

// applyDrawCallbacks fires the registered draw callbacks.
func (b *Base) applyDrawCallbacks() {
	for _, cb := range b.drawCallbacks {
		cb(b.self, b.menu)
	}
}

// AddUpdateCallback registers a callback invoked after the widget processed
// an updating event and returns its generated id.
func (b *Base) AddUpdateCallback(cb UpdateCallback) string {
	id := generateCallbackID()
	b.updateCallbacks[id] = cb
	return id
}

// RemoveUpdateCallback removes an update callback by id.
func (b *Base) RemoveUpdateCallback(id string) error {
	if _, ok := b.updateCallbacks[id]; !ok {
		return fmt.Errorf("update callback %q: %w", id, ErrNotFound)
	}
	delete(b.updateCallbacks, id)
	return nil
}

// applyUpdateCallbacks fires the registered update callbacks.
func (b *Base) applyUpdateCallbacks() {
	for _, cb := range b.updateCallbacks {
		cb(b.self, b.menu)
	}
}

// ---------------------------------------------------------------------------
// Input plumbing

// SetControls enables or disables input sources for this widget.
func (b *Base) SetControls(joystick, mouse, touch bool) {
	b.joystickEnabled = joystick
	b.mouseEnabled = mouse
	b.touchEnabled = touch
}

// SetSound replaces the widget's sound engine.
func (b *Base) SetSound(s Sound) {
	if s == nil {
		s = NopSound{}
	}
	b.sound = s
}

// bufferEvent stores an event for the widget's next Update call.
func (b *Base) bufferEvent(e Event) {
	b.buffered = append(b.buffered, e)
}

// mergeBuffered prepends buffered events to a batch and clears the buffer.
func (b *Base) mergeBuffered(events []Event) []Event {
	if len(b.buffered) == 0 {
		return events
	}
	merged := append(b.buffered, events...)
	b.buffered = nil
	return merged
}

// windowSize resolves the window size used to de-normalize touch positions.
func (b *Base) windowSize() Vec2 {
	if b.menu != nil {
		return b.menu.WindowSize()
	}
	return Vec2{}
}

// stateFontColor resolves the font color for the widget's current state.
func (b *Base) stateFontColor() uint32 {
	th := b.theme()
	switch {
	case b.readonly && b.selected:
		return th.ReadonlySelectedColor
	case b.readonly:
		return th.ReadonlyColor
	case b.selected:
		return th.SelectedFontColor
	case b.fontColor != 0:
		return b.fontColor
	default:
		return th.FontColor
	}
}

// drawText emits a string with the effective font: the provider's active
// atlas font when one is set, otherwise the builtin fixed-cell bitmap font.
// The widget's scale factor stretches the glyph geometry; rotation and flips
// remap atlas glyph quads about the widget center. The builtin bitmap font
// scales through the cell size but does not rotate.
func (b *Base) drawText(dl *DrawList, x, y float32, s string, color uint32) {
	th := b.theme()
	sx, sy := float32(1), float32(1)
	if b.contentSz.X > 0 {
		sx = b.transSz.X / b.contentSz.X
	}
	if b.contentSz.Y > 0 {
		sy = b.transSz.Y / b.contentSz.Y
	}

	f := b.font()
	if f == nil {
		dl.AddText(x, y, s, color, th.FontScale, th.CharWidth*sx, th.CharHeight*sy)
		return
	}

	quads := f.GlyphQuads(s, x, y, th.FontScale)
	if sx != 1 || sy != 1 {
		for i := range quads {
			q := &quads[i]
			q.X0 = x + (q.X0-x)*sx
			q.X1 = x + (q.X1-x)*sx
			q.Y0 = y + (q.Y0-y)*sy
			q.Y1 = y + (q.Y1-y)*sy
		}
	}
	dl.SetTexture(f.TextureID())

	if b.angle == 0 && !b.flipX && !b.flipY {
		dl.AddGlyphQuads(quads, color)
		return
	}

	c := b.Rect().Center()
	sin, cos := sincosDeg(b.angle)
	for _, q := range quads {
		p := [4]Vec2{
			{X: q.X0, Y: q.Y0}, {X: q.X1, Y: q.Y0},
			{X: q.X1, Y: q.Y1}, {X: q.X0, Y: q.Y1},
		}
		for i := range p {
			p[i] = rotateFlipAbout(p[i], c, sin, cos, b.flipX, b.flipY)
		}
		uv := [4]Vec2{
			{X: q.U0, Y: q.V0}, {X: q.U1, Y: q.V0},
			{X: q.U1, Y: q.V1}, {X: q.U0, Y: q.V1},
		}
		dl.AddQuadUV(p, uv, color)
	}
}

// GetValue fails for widget kinds that do not carry a value. Value-bearing
// widgets (e.g. Selector) override this.
func (b *Base) GetValue() (any, error) {
	return nil, noValueError(b.kind, b.id)
}

// configure applies factory options shared by all widget kinds.
func (b *Base) configure(o options, th Theme) {
	b.padding = th.WidgetPadding
	b.padTrans = b.padding
	b.margin = th.WidgetMargin
	if HasOpt(o, OptPadding) {
		b.padding = GetOpt(o, OptPadding)
		b.padTrans = b.padding
	}
	if HasOpt(o, OptMargin) {
		b.margin = GetOpt(o, OptMargin)
	}
	if HasOpt(o, OptAlign) {
		b.alignment = GetOpt(o, OptAlign)
		b.hasAlign = true
	}
	b.floatState = GetOpt(o, OptFloat)
	b.selectable = GetOpt(o, OptSelectable)
	b.readonly = GetOpt(o, OptReadOnly)
	b.fontColor = GetOpt(o, OptFontColor)
	b.args = GetOpt(o, OptArgs)
}
