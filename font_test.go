package rtui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/nanolsn/rtui/atlas"
	"github.com/nanolsn/rtui/glapi"
	"github.com/nanolsn/rtui/glapi/gltest"
)

func TestDefaultFont(t *testing.T) {
	f := gltest.New(glapi.ProfileES2)
	fnt, err := DefaultFont(f)
	require.NoError(t, err)

	assert.Equal(t, 1, fnt.Pages())
	assert.Equal(t, 13, fnt.LineHeight())
	assert.Equal(t, 11, fnt.Ascent())

	page := f.Textures[fnt.Page(0).ID()]
	assert.Equal(t, defaultPageSize, page.Width)
	assert.Equal(t, glapi.Enum(glapi.RED), page.Format)

	g, ok := fnt.Glyph('A')
	require.True(t, ok)
	assert.Equal(t, Rect[int]{X: 0, Y: -2, Width: 6, Height: 13}, g.Bounds)
	assert.Equal(t, 7, g.Advance)
	assert.InDelta(t, 6.0/defaultPageSize, g.ST.Width, 1e-6)

	fnt.Delete()
	assert.Equal(t, 0, f.Live())
}

func TestFontPages(t *testing.T) {
	f := gltest.New(glapi.ProfileGL3)
	fnt, err := NewFont(f, basicfont.Face7x13, FontOptions{
		PageSize: 32,
		Runes:    []rune("ABCDEFGHIJ"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, fnt.Pages())

	a, _ := fnt.Glyph('A')
	j, _ := fnt.Glyph('J')
	assert.Equal(t, 0, a.Page)
	assert.Equal(t, 1, j.Page)
	assert.NotEqual(t, fnt.Page(0).ID(), fnt.Page(1).ID())

	fnt.Delete()
	assert.Equal(t, 0, f.Live())
}

func TestFontGlyphTooLarge(t *testing.T) {
	f := gltest.New(glapi.ProfileGL3)
	_, err := NewFont(f, basicfont.Face7x13, FontOptions{PageSize: 8})
	assert.ErrorIs(t, err, atlas.ErrNoSpace)
	assert.Equal(t, 0, f.Live())
}

func TestFontFromTTF(t *testing.T) {
	f := gltest.New(glapi.ProfileGL3)
	fnt, err := NewFontFromTTF(f, goregular.TTF, 16, FontOptions{})
	require.NoError(t, err)
	assert.Greater(t, fnt.LineHeight(), 0)

	_, err = NewFontFromTTF(f, []byte("not a font"), 16, FontOptions{})
	assert.Error(t, err)
}

func TestGlyphsLayout(t *testing.T) {
	f := gltest.New(glapi.ProfileGL3)
	fnt, err := DefaultFont(f)
	require.NoError(t, err)

	g := fnt.Glyphs("ab\nc", false)
	assert.Equal(t, V2(14, 26), g.Size)
	require.Len(t, g.Chars, 4)

	assert.Equal(t, CharPrint, g.Chars[0].Kind)
	assert.Equal(t, V2(0, 0), g.Chars[0].Pos)
	assert.Equal(t, V2(7, 0), g.Chars[1].Pos)
	assert.Equal(t, CharNewLine, g.Chars[2].Kind)
	assert.Equal(t, 'c', g.Chars[3].Rune)
	assert.Equal(t, V2(0, -13), g.Chars[3].Pos)

	// Runes outside the font fall back to '?'.
	g = fnt.Glyphs("世", false)
	require.Len(t, g.Chars, 1)
	want, _ := fnt.Glyph('?')
	assert.Equal(t, want, g.Chars[0].Glyph)

	assert.Equal(t, V2(0, 13), fnt.Glyphs("", false).Size)
}
