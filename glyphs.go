package rtui

// CharKind tells a printable character from a line break.
type CharKind int

const (
	CharPrint CharKind = iota
	CharNewLine
)

// Char is one laid out character. Pos is the pen position on the baseline
// relative to the first line's origin, Y up.
type Char struct {
	Kind  CharKind
	Rune  rune
	Glyph Glyph
	Pos   Vec2[int]
}

// Glyphs is laid out text.
type Glyphs struct {
	Chars []Char
	Size  Vec2[int]
}

// Glyphs lays text out in lines. A monospaced layout advances every
// character by the widest advance of the font and centers it in its cell.
func (fnt *Font) Glyphs(text string, monospaced bool) Glyphs {
	var (
		res   Glyphs
		pen   Vec2[int]
		width int
		lines = 1
	)
	for _, r := range text {
		if r == '\n' {
			res.Chars = append(res.Chars, Char{Kind: CharNewLine, Rune: r, Pos: pen})
			width = max(width, pen.X)
			pen = V2(0, pen.Y-fnt.lineHeight)
			lines++
			continue
		}
		g, ok := fnt.Glyph(r)
		if !ok {
			continue
		}
		advance := g.Advance
		pos := pen
		if monospaced {
			advance = fnt.maxAdvance
			pos.X += (advance - g.Advance) / 2
		}
		if g.Visible() {
			res.Chars = append(res.Chars, Char{Kind: CharPrint, Rune: r, Glyph: g, Pos: pos})
		}
		pen.X += advance
	}
	width = max(width, pen.X)
	res.Size = V2(width, lines*fnt.lineHeight)
	return res
}

// Shadow is drawn under text, shifted by Offset.
type Shadow struct {
	Offset Vec2[int]
	Color  Color
}

// FontRender prints laid out text with the Font role.
type FontRender struct {
	font *Font
}

func NewFontRender(font *Font) *FontRender {
	return &FontRender{font: font}
}

func (fr *FontRender) Font() *Font { return fr.font }

func (fr *FontRender) Glyphs(text string, monospaced bool) Glyphs {
	return fr.font.Glyphs(text, monospaced)
}

// Print draws g with its first line at the top of rect. A non-nil shadow is
// drawn first.
func (fr *FontRender) Print(r *Render, g Glyphs, rect Rect[int], color Color, shadow *Shadow) {
	if shadow != nil {
		fr.print(r, g, rect.Translate(shadow.Offset), shadow.Color)
	}
	fr.print(r, g, rect, color)
}

func (fr *FontRender) print(r *Render, g Glyphs, rect Rect[int], color Color) {
	r.SetColor(color)
	origin := V2(rect.Left(), rect.Top()-fr.font.ascent)
	for _, ch := range g.Chars {
		if ch.Kind != CharPrint {
			continue
		}
		r.SetTexture(fr.font.Page(ch.Glyph.Page))
		placing := CastRect[float32](ch.Glyph.Bounds.Translate(origin.Add(ch.Pos)))
		st := ch.Glyph.ST
		r.DrawRectAccept(RoleFont, placing, &st, true)
	}
	r.UnsetTexture()
}
