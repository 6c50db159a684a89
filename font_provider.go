package menu

import "fmt"

// FontProvider is the interface for font management in the menu system.
// It abstracts font loading, caching, and selection, allowing different
// implementations to be injected (system fonts, game fonts, mocks for tests).
//
// The core package does not depend on any concrete font implementation.
// When no provider is set, menus fall back to the renderer's built-in
// fixed-cell bitmap font, sized by Theme.CharWidth/CharHeight.
type FontProvider interface {
	// ActiveFont returns the currently active font for rendering.
	// Returns nil if no font is loaded or active.
	ActiveFont() Font

	// SetActiveFont sets the active font by name.
	// Returns an error if the font is not found.
	SetActiveFont(name string) error
}

// Font is the interface for a single font that can render text.
// Implementations should be GPU-oriented, using pre-generated texture
// atlases rather than CPU rasterization at render time.
type Font interface {
	// TextureID returns the texture id for the font atlas.
	TextureID() uint32

	// HasGlyph returns true if the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// MeasureText returns the pixel dimensions of the text at the given scale.
	MeasureText(text string, scale float32) Vec2

	// GlyphQuads generates quads for rendering the given text at (x, y).
	// The returned slice should be used immediately and not stored.
	GlyphQuads(text string, x, y, scale float32) []GlyphQuad

	// LineHeight returns the line height at the specified scale.
	LineHeight(scale float32) float32
}

// FontMap is a simple in-memory FontProvider keyed by name.
type FontMap struct {
	fonts  map[string]Font
	active string
}

// NewFontMap creates an empty FontMap.
func NewFontMap() *FontMap {
	return &FontMap{fonts: make(map[string]Font)}
}

// Add registers a font under a name. The first font added becomes active.
func (m *FontMap) Add(name string, f Font) {
	m.fonts[name] = f
	if m.active == "" {
		m.active = name
	}
}

// ActiveFont implements FontProvider.
func (m *FontMap) ActiveFont() Font {
	if m.active == "" {
		return nil
	}
	return m.fonts[m.active]
}

// SetActiveFont implements FontProvider.
func (m *FontMap) SetActiveFont(name string) error {
	if _, ok := m.fonts[name]; !ok {
		return fmt.Errorf("font %q: %w", name, ErrNotFound)
	}
	m.active = name
	return nil
}
