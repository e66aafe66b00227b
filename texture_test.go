package rtui

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanolsn/rtui/glapi"
	"github.com/nanolsn/rtui/glapi/gltest"
)

func TestNewTextureFromRaw(t *testing.T) {
	f := gltest.New(glapi.ProfileGL3)
	tex, err := NewTextureFromRaw(f, make([]byte, 3*2*3), V2(3, 2), FormatRGB)
	require.NoError(t, err)

	obj := f.Textures[tex.ID()]
	assert.Equal(t, 3, obj.Width)
	assert.Equal(t, 2, obj.Height)
	assert.Equal(t, glapi.Enum(glapi.RGB), obj.Format)
	assert.Equal(t, glapi.REPEAT, obj.Params[glapi.TEXTURE_WRAP_S])
	assert.Equal(t, glapi.NEAREST, obj.Params[glapi.TEXTURE_MIN_FILTER])
}

func TestTextureErrors(t *testing.T) {
	f := gltest.New(glapi.ProfileGL3)
	cases := []struct {
		name   string
		raw    []byte
		size   Vec2[int]
		format TextureFormat
		want   error
	}{
		{"negative", nil, V2(-1, 1), FormatR, ErrNegativeSize},
		{"raw size", make([]byte, 5), V2(2, 2), FormatR, ErrWrongRawSize},
		{"format", nil, V2(2, 2), TextureFormat(9), ErrUnsupportedFormat},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewTextureFromRaw(f, c.raw, c.size, c.format)
			var texErr *TextureError
			require.True(t, errors.As(err, &texErr))
			assert.ErrorIs(t, err, c.want)
		})
	}
	assert.Equal(t, 0, f.Live())
}

func TestTextureNPOTOnES2(t *testing.T) {
	f := gltest.New(glapi.ProfileES2)
	tex, err := NewTexture(f, V2(3, 4), FormatRGBA)
	require.NoError(t, err)
	assert.Equal(t, glapi.CLAMP_TO_EDGE, f.Textures[tex.ID()].Params[glapi.TEXTURE_WRAP_T])

	tex, err = NewTexture(f, V2(4, 4), FormatRGBA)
	require.NoError(t, err)
	assert.Equal(t, glapi.REPEAT, f.Textures[tex.ID()].Params[glapi.TEXTURE_WRAP_T])
}

func TestNewTextureFromImage(t *testing.T) {
	f := gltest.New(glapi.ProfileGL3)

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	tex, err := NewTextureFromImage(f, gray)
	require.NoError(t, err)
	assert.Equal(t, FormatR, tex.Format())

	sub := image.NewRGBA(image.Rect(0, 0, 4, 4)).SubImage(image.Rect(1, 1, 3, 4))
	tex, err = NewTextureFromImage(f, sub)
	require.NoError(t, err)
	assert.Equal(t, FormatRGBA, tex.Format())
	assert.Equal(t, V2(2, 3), tex.Size())
}

func TestLoadTexture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dot.png")
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(file, img))
	require.NoError(t, file.Close())

	f := gltest.New(glapi.ProfileGL3)
	tex, err := LoadTexture(f, path)
	require.NoError(t, err)
	assert.Equal(t, V2(2, 1), tex.Size())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.png"), []byte("junk"), 0o644))
	_, err = LoadTexture(f, filepath.Join(dir, "junk.png"))
	var texErr *TextureError
	require.True(t, errors.As(err, &texErr))
	assert.Equal(t, filepath.Join(dir, "junk.png"), texErr.Path)

	_, err = LoadTexture(f, filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTextureDelete(t *testing.T) {
	f := gltest.New(glapi.ProfileGL3)
	tex, err := NewTexture(f, V2(1, 1), FormatR)
	require.NoError(t, err)
	tex.Bind(2)
	assert.Equal(t, tex.ID(), f.Units[2])

	tex.Delete()
	assert.Equal(t, 0, f.Live())
	assert.PanicsWithValue(t, "rtui: texture already deleted", tex.Delete)

	rb, err := NewRenderbuffer(f, V2(1, 1), Stencil8)
	require.NoError(t, err)
	assert.Equal(t, glapi.Enum(glapi.STENCIL_ATTACHMENT), rb.Attachment())
	rb.Delete()
	assert.PanicsWithValue(t, "rtui: renderbuffer already deleted", rb.Delete)

	_, err = NewRenderbuffer(f, V2(1, -1), Depth16)
	assert.ErrorIs(t, err, ErrNegativeSize)
}

func TestFormatText(t *testing.T) {
	var tf TextureFormat
	require.NoError(t, tf.UnmarshalText([]byte("RG")))
	assert.Equal(t, FormatRG, tf)
	assert.Error(t, tf.UnmarshalText([]byte("bgra")))
	assert.Equal(t, 3, FormatRGB.BytesPerPixel())

	var df DepthFormat
	require.NoError(t, df.UnmarshalText([]byte("depthf32stencil8")))
	assert.Equal(t, DepthF32Stencil8, df)
	assert.Equal(t, glapi.Enum(glapi.DEPTH_STENCIL_ATTACHMENT), df.Attachment())
	assert.Equal(t, "DepthFormat(42)", DepthFormat(42).String())
	_, err := DepthFormat(42).MarshalText()
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
