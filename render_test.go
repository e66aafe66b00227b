package rtui

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanolsn/rtui/glapi"
	"github.com/nanolsn/rtui/glapi/gltest"
)

func newTestRender(t *testing.T, profile glapi.Profile, windowSize Vec2[int], scale float32) (*gltest.Functions, *Render) {
	t.Helper()
	f := gltest.New(profile)
	cfg := DefaultConfig()
	cfg.PixelScale = scale
	r, err := NewRender(f, windowSize, cfg)
	require.NoError(t, err)
	require.NoError(t, glapi.CheckError(f))
	return f, r
}

func (r *Render) program(role Role) glapi.Program {
	return r.shaders.Program(int(role)).ID()
}

func TestNewRender(t *testing.T) {
	for _, profile := range []glapi.Profile{glapi.ProfileES2, glapi.ProfileGL3} {
		t.Run(profile.String(), func(t *testing.T) {
			f, r := newTestRender(t, profile, V2(600, 400), 2)

			assert.Equal(t, V2(300, 200), r.Size())
			assert.Equal(t, V2(600, 400), r.WindowSize())
			assert.Equal(t, 3, r.shaders.Len())
			assert.True(t, f.Enabled[glapi.BLEND])
			assert.False(t, f.Enabled[glapi.DEPTH_TEST])
			assert.Equal(t, glapi.Framebuffer(0), f.CurrentFramebuffer)

			_, bound := r.framebuffers.Bound()
			assert.False(t, bound)
			fb := r.framebuffers.Framebuffer(r.offscreen)
			assert.Equal(t, V2(300, 200), fb.Size())
			require.Len(t, fb.Textures(), 1)
			assert.Equal(t, FormatRGBA, fb.Textures()[0].Format())
			assert.Equal(t, Depth24, fb.Renderbuffer().Format())

			src := f.Shaders[f.Programs[r.program(RolePost)].Shaders[0]].Source
			if profile == glapi.ProfileGL3 {
				assert.Contains(t, src, "#version 330 core")
			} else {
				assert.NotContains(t, src, "#version")
			}

			r.Delete()
			assert.Equal(t, 0, f.Live())
		})
	}
}

func TestNewRenderErrors(t *testing.T) {
	f := gltest.New(glapi.ProfileES2)
	cfg := DefaultConfig()
	cfg.PixelScale = 0
	_, err := NewRender(f, V2(100, 100), cfg)
	assert.ErrorIs(t, err, ErrInvalidPixelScale)

	f = gltest.New(glapi.ProfileES2)
	f.FailCompile = "texture0, fst).r"
	_, err = NewRender(f, V2(100, 100), DefaultConfig())
	var shaderErr *ShaderError
	require.True(t, errors.As(err, &shaderErr))
	assert.Equal(t, CompileError, shaderErr.Kind)
	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, "compile font shader", renderErr.Op)
	assert.Equal(t, 0, f.Live())

	f = gltest.New(glapi.ProfileGL3)
	f.Incomplete = true
	_, err = NewRender(f, V2(100, 100), DefaultConfig())
	assert.ErrorIs(t, err, ErrFramebufferIncomplete)
	assert.Equal(t, 0, f.Live())

	f = gltest.New(glapi.ProfileGL3)
	_, err = NewRender(f, V2(-1, 100), DefaultConfig())
	assert.ErrorIs(t, err, ErrNegativeSize)
}

func TestRenderFrame(t *testing.T) {
	f, r := newTestRender(t, glapi.ProfileGL3, V2(64, 64), 1)
	f.Reset()
	offscreen := r.framebuffers.Framebuffer(r.offscreen)

	r.BeginDrawFrame()
	r.SetColor(Red())
	r.DrawRect(Rect[float32]{X: 31, Y: 31, Width: 2, Height: 2})
	r.EndDrawFrame()

	require.Len(t, f.Draws, 2)

	base := f.Draws[0]
	assert.Equal(t, r.program(RoleBase), base.Program)
	assert.Equal(t, offscreen.ID(), base.Framebuffer)
	assert.Equal(t, glapi.Enum(glapi.TRIANGLE_FAN), base.Mode)
	assert.Equal(t, 4, base.Count)
	assert.Equal(t, []float32{
		31, 33, 0, 1,
		31, 31, 0, 0,
		33, 31, 1, 0,
		33, 33, 1, 1,
	}, base.Vertices)

	post := f.Draws[1]
	assert.Equal(t, r.program(RolePost), post.Program)
	assert.Equal(t, glapi.Framebuffer(0), post.Framebuffer)
	assert.Equal(t, []float32{
		-1, 1, 0, 1,
		-1, -1, 0, 0,
		1, -1, 1, 0,
		1, 1, 1, 1,
	}, post.Vertices)
	assert.Equal(t, offscreen.Textures()[0].ID(), post.Textures[0])

	col := r.col.Locations()[int(RoleBase)]
	uploads := f.UploadsTo(r.program(RoleBase), col)
	require.Len(t, uploads, 1)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, uploads[0].Value)

	assert.Equal(t, 1, r.Stats().Draws[RoleBase])
	assert.Equal(t, 1, r.Stats().Draws[RolePost])
	assert.Equal(t, 2, r.Stats().Total())
	assert.Equal(t, [4]int{0, 0, 64, 64}, f.ViewportSize)
}

func TestRenderUniformsUploadOnce(t *testing.T) {
	f, r := newTestRender(t, glapi.ProfileGL3, V2(64, 64), 1)
	f.Reset()
	for i := 0; i < 3; i++ {
		r.BeginDrawFrame()
		r.SetColor(Red())
		r.DrawRect(Rect[float32]{Width: 1, Height: 1})
		r.EndDrawFrame()
	}

	base := r.program(RoleBase)
	assert.Len(t, f.UploadsTo(base, r.projection.Locations()[int(RoleBase)]), 1)
	assert.Len(t, f.UploadsTo(base, r.col.Locations()[int(RoleBase)]), 1)
	assert.Len(t, f.UploadsTo(base, r.drawTexture.Location()), 1)
	assert.Len(t, f.UploadsTo(r.program(RolePost), r.frame.Location()), 1)
	assert.Equal(t, 6, f.UseProgramCalls)
}

func TestRenderResize(t *testing.T) {
	f, r := newTestRender(t, glapi.ProfileES2, V2(600, 400), 2)
	require.NoError(t, r.Resize(V2(300, 200)))

	assert.Equal(t, V2(150, 100), r.Size())
	assert.Equal(t, V2(300, 200), r.WindowSize())
	assert.Equal(t, mgl32.Ortho(0, 150, 0, 100, 0, 10), r.Projection())
	assert.Equal(t, V2(150, 100), r.framebuffers.Active().Size())
	assert.Equal(t, 150, f.Textures[r.framebuffers.Active().Textures()[0].ID()].Width)

	f.Reset()
	r.BeginDrawFrame()
	r.DrawRect(Rect[float32]{Width: 1, Height: 1})
	assert.Equal(t, [4]int{0, 0, 150, 100}, f.ViewportSize)
	r.EndDrawFrame()
	assert.Equal(t, [4]int{0, 0, 300, 200}, f.ViewportSize)

	proj := f.UploadsTo(r.program(RoleBase), r.projection.Locations()[int(RoleBase)])
	require.Len(t, proj, 1)
	want := mgl32.Ortho(0, 150, 0, 100, 0, 10)
	assert.Equal(t, want[:], proj[0].Value)
}

func TestRenderTexture(t *testing.T) {
	f, r := newTestRender(t, glapi.ProfileES2, V2(64, 64), 1)
	tex, err := NewTextureFromRaw(f, make([]byte, 4*4*4), V2(4, 4), FormatRGBA)
	require.NoError(t, err)
	f.Reset()

	r.BeginDrawFrame()
	r.SetTexture(tex)
	r.DrawRectST(Rect[float32]{Width: 4, Height: 4}, Rect[float32]{X: 0.5, Width: 0.5, Height: 0.5})
	r.UnsetTexture()
	r.DrawRect(Rect[float32]{Width: 4, Height: 4})
	r.EndDrawFrame()

	require.Len(t, f.Draws, 3)
	assert.Equal(t, tex.ID(), f.Draws[0].Textures[0])
	assert.Equal(t, []float32{0, 4, 0.5, 0.5}, f.Draws[0].Vertices[:4])

	flags := f.UploadsTo(r.program(RoleBase), r.drawTexture.Location())
	require.Len(t, flags, 2)
	assert.Equal(t, int32(1), flags[0].Value)
	assert.Equal(t, int32(0), flags[1].Value)
}

func TestRenderPrint(t *testing.T) {
	f, r := newTestRender(t, glapi.ProfileGL3, V2(150, 100), 1)
	f.Reset()

	r.BeginDrawFrame()
	p := r.DefaultParameters()
	p.Color = Green()
	r.Print("Hi", p)
	r.EndDrawFrame()

	require.Len(t, f.Draws, 3)
	for _, d := range f.Draws[:2] {
		assert.Equal(t, r.program(RoleFont), d.Program)
	}
	// 14 x 13 text centered in 150 x 100, baseline 11 pixels below the top.
	h := f.Draws[0].Vertices
	assert.Equal(t, float32(68), h[0])
	assert.Equal(t, float32(57), h[1])
	assert.Equal(t, float32(44), h[5])
	// Flipped: the top edge samples the lower texture coordinate.
	assert.Less(t, h[3], h[7])
	assert.Equal(t, float32(75), f.Draws[1].Vertices[0])

	f.Reset()
	r.BeginDrawFrame()
	p.Font.Shadow = &Shadow{Offset: V2(1, -1), Color: Black()}
	r.Print("Hi", p)
	assert.Equal(t, 4, r.Stats().Draws[RoleFont])
	assert.Equal(t, float32(69), f.Draws[0].Vertices[0])
	r.EndDrawFrame()

	assert.Equal(t, V2(14, 13), r.TextSize("Hi", false))
	assert.Equal(t, V2(7, 26), r.TextSize("H\ni", true))
}

func TestRenderDraw(t *testing.T) {
	f, r := newTestRender(t, glapi.ProfileGL3, V2(64, 64), 1)
	f.Reset()

	r.BeginDrawFrame()
	r.Draw(Rect[int]{X: 1, Y: 2, Width: 3, Height: 4})
	r.EndDrawFrame()

	require.Len(t, f.Draws, 2)
	assert.Equal(t, []float32{1, 6, 0, 1}, f.Draws[0].Vertices[:4])
}

func TestRenderCheckError(t *testing.T) {
	f, r := newTestRender(t, glapi.ProfileGL3, V2(64, 64), 1)
	assert.NoError(t, r.CheckError())
	f.PushError(glapi.OUT_OF_MEMORY)
	assert.Equal(t, glapi.OutOfMemory, r.CheckError())

	// In debug mode EndDrawFrame drains the pending error.
	cfg := DefaultConfig()
	cfg.Debug = true
	r, err := NewRender(f, V2(64, 64), cfg)
	require.NoError(t, err)
	defer r.Delete()
	r.BeginDrawFrame()
	f.PushError(glapi.INVALID_VALUE)
	r.EndDrawFrame()
	assert.NoError(t, glapi.CheckError(f))
}

func TestRenderPrintResetsTexture(t *testing.T) {
	f, r := newTestRender(t, glapi.ProfileGL3, V2(64, 64), 1)
	f.Reset()

	r.BeginDrawFrame()
	r.Print("Hi", r.DefaultParameters())
	r.DrawRect(Rect[float32]{Width: 1, Height: 1})
	r.EndDrawFrame()

	flags := f.UploadsTo(r.program(RoleBase), r.drawTexture.Location())
	require.Len(t, flags, 1)
	assert.Equal(t, int32(0), flags[0].Value)
}
