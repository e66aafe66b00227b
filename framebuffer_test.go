package rtui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanolsn/rtui/glapi"
	"github.com/nanolsn/rtui/glapi/gltest"
)

func newTestFramebuffer(t *testing.T, size Vec2[int]) (*gltest.Functions, *FramebufferSet) {
	t.Helper()
	f := gltest.New(glapi.ProfileGL3)
	s := NewFramebufferSet(f)
	idx, err := s.AddFramebuffer(size)
	require.NoError(t, err)
	require.Equal(t, 0, idx)
	require.NoError(t, s.AddRenderbuffer(Depth24))
	require.NoError(t, s.AddTexture(FormatRGB))
	return f, s
}

func TestFramebufferAttachments(t *testing.T) {
	f, s := newTestFramebuffer(t, V2(100, 100))
	fb := s.Active()
	require.True(t, s.IsComplete())

	obj := f.Framebuffers[fb.ID()]
	assert.Equal(t, fb.Renderbuffer().ID(), obj.Attachments[glapi.DEPTH_ATTACHMENT].Renderbuffer)
	assert.Equal(t, fb.Textures()[0].ID(), obj.Attachments[glapi.COLOR_ATTACHMENT0].Texture)

	require.NoError(t, s.AddTexture(FormatRGBA))
	assert.Equal(t, fb.Textures()[1].ID(), obj.Attachments[glapi.COLOR_ATTACHMENT0+1].Texture)
}

func TestFramebufferResizeKeepsFormats(t *testing.T) {
	f, s := newTestFramebuffer(t, V2(100, 100))
	old := s.Active().ID()
	oldTex := s.Active().Textures()[0].ID()
	oldRB := s.Active().Renderbuffer().ID()

	require.NoError(t, s.Resize(V2(50, 50)))

	fb := s.Active()
	assert.Equal(t, V2(50, 50), fb.Size())
	assert.NotEqual(t, old, fb.ID())
	assert.Equal(t, fb.ID(), f.CurrentFramebuffer)
	assert.True(t, f.Framebuffers[old].Deleted)
	assert.True(t, f.Textures[oldTex].Deleted)
	assert.True(t, f.Renderbuffers[oldRB].Deleted)

	require.Len(t, fb.Textures(), 1)
	tex := fb.Textures()[0]
	assert.Equal(t, FormatRGB, tex.Format())
	assert.Equal(t, V2(50, 50), tex.Size())
	assert.Equal(t, 50, f.Textures[tex.ID()].Width)
	assert.Equal(t, glapi.Enum(glapi.RGB), f.Textures[tex.ID()].Format)

	rb := fb.Renderbuffer()
	require.NotNil(t, rb)
	assert.Equal(t, Depth24, rb.Format())
	assert.Equal(t, V2(50, 50), rb.Size())
	assert.Equal(t, glapi.Enum(glapi.DEPTH_COMPONENT24), f.Renderbuffers[rb.ID()].InternalFormat)

	obj := f.Framebuffers[fb.ID()]
	assert.Equal(t, rb.ID(), obj.Attachments[glapi.DEPTH_ATTACHMENT].Renderbuffer)
	assert.Equal(t, tex.ID(), obj.Attachments[glapi.COLOR_ATTACHMENT0].Texture)
}

func TestFramebufferResizeSameSize(t *testing.T) {
	f, s := newTestFramebuffer(t, V2(100, 100))
	id := s.Active().ID()
	live := f.Live()
	f.Reset()

	require.NoError(t, s.Resize(V2(100, 100)))
	assert.Equal(t, id, s.Active().ID())
	assert.Equal(t, live, f.Live())
	assert.Zero(t, f.BindFramebufferCalls)
}

func TestFramebufferSecondRenderbufferPanics(t *testing.T) {
	_, s := newTestFramebuffer(t, V2(100, 100))
	assert.Panics(t, func() { _ = s.AddRenderbuffer(Depth16) })

	require.NoError(t, s.Resize(V2(20, 20)))
	assert.Panics(t, func() { _ = s.AddRenderbuffer(Stencil8) })
}

func TestFramebufferNegativeSize(t *testing.T) {
	f := gltest.New(glapi.ProfileGL3)
	s := NewFramebufferSet(f)

	_, err := s.AddFramebuffer(V2(-1, 10))
	assert.ErrorIs(t, err, ErrNegativeSize)
	assert.Equal(t, 0, s.Len())

	_, s = newTestFramebuffer(t, V2(10, 10))
	err = s.Resize(V2(10, -10))
	var fbErr *FramebufferError
	require.True(t, errors.As(err, &fbErr))
	assert.Equal(t, "resize", fbErr.Op)
	assert.ErrorIs(t, err, ErrNegativeSize)
}

func TestFramebufferBind(t *testing.T) {
	f, s := newTestFramebuffer(t, V2(10, 10))
	_, err := s.AddFramebuffer(V2(5, 5))
	require.NoError(t, err)
	f.Reset()

	i, ok := s.Bound()
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	s.Bind(1)
	s.Bind(0)
	s.Bind(0)
	assert.Equal(t, 1, f.BindFramebufferCalls)

	s.BindDefault()
	s.BindDefault()
	assert.Equal(t, 2, f.BindFramebufferCalls)
	assert.Equal(t, glapi.Framebuffer(0), f.CurrentFramebuffer)

	_, ok = s.Bound()
	assert.False(t, ok)
	assert.PanicsWithValue(t, "rtui: framebuffer not bound", func() { s.Active() })
	assert.PanicsWithValue(t, "rtui: framebuffer not bound", func() { s.IsComplete() })
	assert.Panics(t, func() { s.Bind(2) })

	assert.True(t, s.BindByID(s.Framebuffer(1).ID()))
	i, _ = s.Bound()
	assert.Equal(t, 1, i)
	assert.False(t, s.BindByID(12345))
}

func TestFramebufferIncomplete(t *testing.T) {
	f, s := newTestFramebuffer(t, V2(10, 10))
	f.Incomplete = true
	assert.False(t, s.IsComplete())

	f.Incomplete = false
	_, err := s.AddFramebuffer(V2(10, 10))
	require.NoError(t, err)
	assert.False(t, s.IsComplete())
}

func TestFramebufferSetDelete(t *testing.T) {
	f, s := newTestFramebuffer(t, V2(10, 10))
	_, err := s.AddFramebuffer(V2(10, 10))
	require.NoError(t, err)
	require.NoError(t, s.AddTexture(FormatRGBA))

	s.Delete()
	assert.Equal(t, 0, f.Live())
	assert.Equal(t, glapi.Framebuffer(0), f.CurrentFramebuffer)
	assert.Equal(t, 0, s.Len())
}

func TestViewport(t *testing.T) {
	f := gltest.New(glapi.ProfileES2)
	v := NewViewport(f, V2(640, 480))
	assert.Equal(t, [][4]int{{0, 0, 640, 480}}, f.Viewports)

	v.Resize(V2(640, 480))
	assert.Len(t, f.Viewports, 1)

	v.Resize(V2(-1, 480))
	assert.Len(t, f.Viewports, 1)
	assert.Equal(t, V2(-1, 480), v.Size())

	v.Resize(V2(320, 240))
	assert.Equal(t, [4]int{0, 0, 320, 240}, f.ViewportSize)
	assert.Len(t, f.Viewports, 2)
}
