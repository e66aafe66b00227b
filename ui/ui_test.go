package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanolsn/rtui"
	"github.com/nanolsn/rtui/glapi"
	"github.com/nanolsn/rtui/glapi/gltest"
)

func newRender(t *testing.T) (*gltest.Functions, *rtui.Render) {
	t.Helper()
	f := gltest.New(glapi.ProfileGL3)
	r, err := rtui.NewRender(f, rtui.V2(64, 64), rtui.DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(r.Delete)
	f.Reset()
	return f, r
}

func TestDecorators(t *testing.T) {
	_, r := newRender(t)

	var got rtui.DrawParameters
	leaf := rtui.DrawerFunc(func(_ *rtui.Render, p rtui.DrawParameters) { got = p })

	r.Draw(Red(AtTop(2, NewFont(leaf).Shadow(rtui.V2(1, -1), rtui.Black()).Monospaced())))
	assert.Equal(t, rtui.Red(), got.Color)
	assert.Equal(t, rtui.Position{Anchor: rtui.Top, Pad: 2}, got.Position)
	assert.True(t, got.Font.Monospaced)
	require.NotNil(t, got.Font.Shadow)
	assert.Equal(t, rtui.V2(1, -1), got.Font.Shadow.Offset)
	assert.Equal(t, rtui.V2(64, 64), got.Frame.Size())

	// The innermost decorator wins.
	r.Draw(Blue(Green(leaf)))
	assert.Equal(t, rtui.Green(), got.Color)
	// Decorators of other fields pass the color through.
	r.Draw(Blue(AtLeft(1, NewFont(leaf))))
	assert.Equal(t, rtui.Blue(), got.Color)
	r.Draw(Blue(Green(leaf)))
	assert.Equal(t, rtui.Position{Anchor: rtui.Center}, got.Position)
	assert.False(t, got.Font.Monospaced)
}

func TestFill(t *testing.T) {
	f, r := newRender(t)

	r.BeginDrawFrame()
	r.Draw(AtLeft(3, Fill{Size: rtui.V2(4, 2)}))
	r.EndDrawFrame()

	require.Len(t, f.Draws, 2)
	assert.Equal(t, []float32{3, 33, 0, 1, 3, 31, 0, 0}, f.Draws[0].Vertices[:8])
}

func TestRoot(t *testing.T) {
	f, r := newRender(t)
	root := NewRoot(rtui.Blue())
	root.Add(Fill{})

	r.BeginDrawFrame()
	r.Draw(root)
	assert.Len(t, f.Clears, 2)
	assert.Equal(t, [4]float32{0, 0, 1, 1}, f.ClearColorValue)
	r.EndDrawFrame()

	require.Len(t, f.Draws, 2)
	assert.Equal(t, []float32{0, 64, 0, 1}, f.Draws[0].Vertices[:4])
}

func TestImage(t *testing.T) {
	f, r := newRender(t)
	tex, err := rtui.NewTexture(f, rtui.V2(4, 4), rtui.FormatRGBA)
	require.NoError(t, err)
	img := &Image{Texture: tex}
	defer img.Delete()

	r.BeginDrawFrame()
	r.Draw(img)
	r.EndDrawFrame()

	require.Len(t, f.Draws, 2)
	assert.Equal(t, tex.ID(), f.Draws[0].Textures[0])
	assert.Equal(t, []float32{30, 34, 0, 1}, f.Draws[0].Vertices[:4])

	_, err = LoadImage(r, "testdata/missing.png")
	assert.Error(t, err)
}

func TestText(t *testing.T) {
	f, r := newRender(t)

	r.BeginDrawFrame()
	r.Draw(NewFont(Text("ok")).Shadow(rtui.V2(1, -1), rtui.Black()))
	assert.Equal(t, 4, r.Stats().Draws[rtui.RoleFont])
	r.EndDrawFrame()

	assert.Len(t, f.Draws, 5)
}
