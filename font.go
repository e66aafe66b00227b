package rtui

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/nanolsn/rtui/atlas"
	"github.com/nanolsn/rtui/glapi"
)

const (
	defaultPageSize = 256
	glyphPadding    = 1
)

// Glyph is a rasterized character. Bounds is relative to the pen position
// on the baseline, Y up. ST is the texture rectangle inside the page, with
// the top row of the bitmap at ST.Bot().
type Glyph struct {
	Page    int
	Bounds  Rect[int]
	ST      Rect[float32]
	Advance int
}

// Visible reports whether the glyph has pixels to draw.
func (g Glyph) Visible() bool { return g.Bounds.Width > 0 && g.Bounds.Height > 0 }

type FontOptions struct {
	// PageSize is the side of a square atlas page. Zero means 256.
	PageSize int
	// Runes are rasterized up front. Nil means printable ASCII.
	Runes []rune
	// Fallback replaces runes the font doesn't have. Zero means '?'.
	Fallback rune
}

// Font is a set of glyphs rasterized into single channel atlas pages.
type Font struct {
	pages      *Pages[*Texture]
	glyphs     map[rune]Glyph
	fallback   rune
	ascent     int
	lineHeight int
	maxAdvance int
}

// DefaultFont rasterizes the 7x13 fixed font.
func DefaultFont(f glapi.Functions) (*Font, error) {
	return NewFont(f, basicfont.Face7x13, FontOptions{})
}

// NewFontFromTTF parses a TrueType or OpenType font and rasterizes it at
// size points.
func NewFontFromTTF(f glapi.Functions, data []byte, size float64, opts FontOptions) (*Font, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rtui: parse font: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("rtui: font face: %w", err)
	}
	defer face.Close()
	return NewFont(f, face, opts)
}

func printableASCII() []rune {
	runes := make([]rune, 0, 0x7f-0x20)
	for r := rune(0x20); r < 0x7f; r++ {
		runes = append(runes, r)
	}
	return runes
}

// NewFont rasterizes opts.Runes from face and uploads the atlas pages as R
// textures.
func NewFont(f glapi.Functions, face font.Face, opts FontOptions) (*Font, error) {
	size := opts.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	runes := opts.Runes
	if runes == nil {
		runes = printableASCII()
	}
	fallback := opts.Fallback
	if fallback == 0 {
		fallback = '?'
	}

	m := face.Metrics()
	fnt := &Font{
		glyphs:     make(map[rune]Glyph, len(runes)),
		fallback:   fallback,
		ascent:     m.Ascent.Ceil(),
		lineHeight: m.Height.Ceil(),
	}

	packer := atlas.New(size, size)
	page := image.NewAlpha(image.Rect(0, 0, size, size))
	pageIdx := 0
	var textures []*Texture

	flush := func() error {
		tex, err := NewTextureFromRaw(f, page.Pix, V2(size, size), FormatR)
		if err != nil {
			return err
		}
		textures = append(textures, tex)
		return nil
	}
	fail := func(err error) (*Font, error) {
		for _, t := range textures {
			t.Delete()
		}
		return nil, err
	}

	scale := V2(1/float32(size), 1/float32(size))
	for _, r := range runes {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}
		g := Glyph{
			Page:    pageIdx,
			Bounds:  Rect[int]{X: dr.Min.X, Y: -dr.Max.Y, Width: dr.Dx(), Height: dr.Dy()},
			Advance: advance.Ceil(),
		}
		fnt.maxAdvance = max(fnt.maxAdvance, g.Advance)

		if g.Visible() {
			x, y, err := packer.Add(dr.Dx()+glyphPadding, dr.Dy()+glyphPadding)
			if err != nil {
				if err := flush(); err != nil {
					return fail(err)
				}
				pageIdx++
				packer.Reset(size, size)
				page = image.NewAlpha(page.Rect)
				x, y, err = packer.Add(dr.Dx()+glyphPadding, dr.Dy()+glyphPadding)
				if err != nil {
					return fail(fmt.Errorf("rtui: glyph %q does not fit a %d x %d page: %w", r, size, size, err))
				}
				g.Page = pageIdx
			}
			dst := image.Rect(x, y, x+dr.Dx(), y+dr.Dy())
			draw.Draw(page, dst, mask, maskp, draw.Src)
			g.ST = Rect[float32]{
				X:      float32(x) * scale.X,
				Y:      float32(y) * scale.Y,
				Width:  float32(dr.Dx()) * scale.X,
				Height: float32(dr.Dy()) * scale.Y,
			}
		}
		fnt.glyphs[r] = g
	}
	if err := flush(); err != nil {
		return fail(err)
	}

	fnt.pages = NewPages(textures[0])
	for i, t := range textures[1:] {
		fnt.pages.Add(t, i+1)
	}
	dumpLog(levelDebug, "Font rasterized: %d glyphs on %d pages", len(fnt.glyphs), len(textures))
	return fnt, nil
}

// Glyph returns the glyph for r, or the fallback glyph.
func (fnt *Font) Glyph(r rune) (Glyph, bool) {
	if g, ok := fnt.glyphs[r]; ok {
		return g, true
	}
	g, ok := fnt.glyphs[fnt.fallback]
	return g, ok
}

// Page returns the atlas texture holding page idx.
func (fnt *Font) Page(idx int) *Texture { return fnt.pages.GetOrFirst(idx) }

func (fnt *Font) Pages() int      { return fnt.pages.Len() }
func (fnt *Font) LineHeight() int { return fnt.lineHeight }
func (fnt *Font) Ascent() int     { return fnt.ascent }

// Delete releases every atlas page.
func (fnt *Font) Delete() {
	fnt.pages.Each(func(_ int, t *Texture) { t.Delete() })
}
