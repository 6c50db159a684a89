package menu

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// atlasGlyph holds the packed metrics of one rune in the atlas texture.
type atlasGlyph struct {
	advance  float32
	bearingX float32
	bearingY float32 // baseline to glyph top
	w, h     int
	u0, v0   float32
	u1, v1   float32
}

// FontAtlas is a Font backed by a pre-rasterized OpenType glyph atlas.
// LoadFontAtlas builds the RGBA pixel data on the CPU; the rendering backend
// uploads it and hands back a texture id through SetTextureID.
type FontAtlas struct {
	sizePx   float32
	ascent   float32
	descent  float32
	lineGap  float32
	glyphs   map[rune]atlasGlyph
	kerning  map[[2]rune]float32
	atlasW   int
	atlasH   int
	pixels   []byte
	texture  uint32
	fallback rune
}

const maxAtlasSize = 4096

// LoadFontAtlas reads an OpenType font file and rasterizes the Latin-1 rune
// range into a shelf-packed white-on-transparent atlas at the given pixel
// size.
func LoadFontAtlas(path string, sizePx float32) (*FontAtlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return ParseFontAtlas(data, sizePx)
}

// ParseFontAtlas builds an atlas from in-memory OpenType font data.
func ParseFontAtlas(data []byte, sizePx float32) (*FontAtlas, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v: %w", sizePx, ErrInvalidState)
	}

	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	ascent := float32(metrics.Ascent.Round())
	descent := float32(-metrics.Descent.Round())
	lineGap := float32(metrics.Height.Round()) - ascent + descent

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	var measure []meas
	for r := rune(32); r <= rune(255); r++ {
		bounds, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r: r,
			w: (bounds.Max.X - bounds.Min.X).Round(),
			h: (bounds.Max.Y - bounds.Min.Y).Round(),
			adv: float32(adv.Round()),
			bx:  float32(bounds.Min.X.Round()),
			by:  float32(-bounds.Min.Y.Round()),
		})
	}
	if len(measure) == 0 {
		return nil, fmt.Errorf("font has no usable glyphs: %w", ErrInvalidState)
	}

	// Shelf packing: grow the atlas until every glyph fits.
	const padding = 2
	atlasSize := 256
	var pos map[rune]image.Point
	for {
		x, y, rowH := padding, padding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))

		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+padding*2 > atlasSize || g.h+padding*2 > atlasSize {
				fits = false
				break
			}
			if x+g.w+padding > atlasSize {
				x = padding
				y += rowH + padding
				rowH = 0
			}
			if y+g.h+padding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + padding
			if g.h > rowH {
				rowH = g.h
			}
		}

		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > maxAtlasSize {
			return nil, fmt.Errorf("font atlas exceeds %dpx: %w", maxAtlasSize, ErrCapacity)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.RGBA{}}, image.Point{}, draw.Src)
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]atlasGlyph, len(measure))
	for _, g := range measure {
		ag := atlasGlyph{
			advance:  g.adv,
			bearingX: g.bx,
			bearingY: g.by,
			w:        g.w,
			h:        g.h,
		}
		if g.w > 0 && g.h > 0 {
			p := pos[g.r]
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			ag.u0 = float32(p.X) / float32(atlasSize)
			ag.v0 = float32(p.Y) / float32(atlasSize)
			ag.u1 = float32(p.X+g.w) / float32(atlasSize)
			ag.v1 = float32(p.Y+g.h) / float32(atlasSize)
		}
		glyphs[g.r] = ag
	}

	kerning := make(map[[2]rune]float32)
	for _, a := range measure {
		for _, b := range measure {
			if k := face.Kern(a.r, b.r); k != 0 {
				kerning[[2]rune{a.r, b.r}] = float32(k.Round())
			}
		}
	}

	return &FontAtlas{
		sizePx:   sizePx,
		ascent:   ascent,
		descent:  descent,
		lineGap:  lineGap,
		glyphs:   glyphs,
		kerning:  kerning,
		atlasW:   atlasSize,
		atlasH:   atlasSize,
		pixels:   dst.Pix,
		fallback: '?',
	}, nil
}

// Pixels returns the RGBA atlas pixels for texture upload.
func (fa *FontAtlas) Pixels() []byte { return fa.pixels }

// AtlasSize returns the atlas texture dimensions.
func (fa *FontAtlas) AtlasSize() (w, h int) { return fa.atlasW, fa.atlasH }

// SetTextureID records the GPU texture id after the backend uploaded the
// atlas pixels.
func (fa *FontAtlas) SetTextureID(id uint32) { fa.texture = id }

// TextureID implements Font.
func (fa *FontAtlas) TextureID() uint32 { return fa.texture }

// HasGlyph implements Font.
func (fa *FontAtlas) HasGlyph(r rune) bool {
	_, ok := fa.glyphs[r]
	return ok
}

// LineHeight implements Font.
func (fa *FontAtlas) LineHeight(scale float32) float32 {
	return (fa.ascent - fa.descent + fa.lineGap) * scale
}

func (fa *FontAtlas) glyph(r rune) (atlasGlyph, bool) {
	if g, ok := fa.glyphs[r]; ok {
		return g, true
	}
	g, ok := fa.glyphs[fa.fallback]
	return g, ok
}

// MeasureText implements Font.
func (fa *FontAtlas) MeasureText(text string, scale float32) Vec2 {
	var width float32
	prev := rune(-1)
	for _, r := range text {
		g, ok := fa.glyph(r)
		if !ok {
			continue
		}
		if prev >= 0 {
			width += fa.kerning[[2]rune{prev, r}]
		}
		width += g.advance
		prev = r
	}
	return Vec2{X: width * scale, Y: (fa.ascent - fa.descent) * scale}
}

// GlyphQuads implements Font. Quads are positioned with (x, y) as the top
// left of the text box; the baseline sits at y plus the scaled ascent.
func (fa *FontAtlas) GlyphQuads(text string, x, y, scale float32) []GlyphQuad {
	quads := make([]GlyphQuad, 0, len(text))
	baseline := y + fa.ascent*scale
	penX := x
	prev := rune(-1)

	for _, r := range text {
		g, ok := fa.glyph(r)
		if !ok {
			continue
		}
		if prev >= 0 {
			penX += fa.kerning[[2]rune{prev, r}] * scale
		}
		if g.w > 0 && g.h > 0 {
			gx := penX + g.bearingX*scale
			gy := baseline - g.bearingY*scale
			quads = append(quads, GlyphQuad{
				X0: gx, Y0: gy,
				X1: gx + float32(g.w)*scale, Y1: gy + float32(g.h)*scale,
				U0: g.u0, V0: g.v0,
				U1: g.u1, V1: g.v1,
			})
		}
		penX += g.advance * scale
		prev = r
	}
	return quads
}
