package rtui

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/nanolsn/rtui/glapi"
)

// Role selects the program a quad is drawn with.
type Role int

const (
	// RoleBase draws solid or textured quads.
	RoleBase Role = iota
	// RoleFont draws glyphs from a single channel atlas.
	RoleFont
	// RolePost copies the off-screen frame to the window.
	RolePost
	roleCount
)

func (r Role) String() string {
	switch r {
	case RoleBase:
		return "base"
	case RoleFont:
		return "font"
	case RolePost:
		return "post"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// RenderError is returned when a Render can't be created or resized.
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string { return "rtui: " + e.Op + ": " + e.Err.Error() }
func (e *RenderError) Unwrap() error { return e.Err }

// Stats counts the draw calls of the current frame by role.
type Stats struct {
	Draws [roleCount]int
}

func (s Stats) Total() int {
	n := 0
	for _, d := range s.Draws {
		n += d
	}
	return n
}

const (
	projectionNear = 0
	projectionFar  = 10
	frameUnit      = 0
)

// Render draws quads and text into an off-screen framebuffer and composites
// it into the window at the end of every frame. It must be used from the
// goroutine that owns the GL context.
type Render struct {
	f   glapi.Functions
	cfg Config

	shaders      *ShaderSet
	framebuffers *FramebufferSet
	viewport     *Viewport
	rect         *rectRender
	fontRender   *FontRender
	offscreen    int

	windowSize Vec2[int]
	size       Vec2[int]

	projection  *SharedUniform[mgl32.Mat4]
	texture0    *SharedUniform[int32]
	col         *SharedUniform[Color]
	drawTexture *Uniform[bool]
	frame       *Uniform[int32]

	stats Stats
}

// NewRender compiles the programs and creates the off-screen target for a
// window of windowSize pixels. Nothing is left allocated on error.
func NewRender(f glapi.Functions, windowSize Vec2[int], cfg Config) (*Render, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &RenderError{Op: "config", Err: err}
	}
	if windowSize.Negative() {
		return nil, &RenderError{Op: "window size", Err: ErrNegativeSize}
	}

	r := &Render{
		f:            f,
		cfg:          cfg,
		shaders:      NewShaderSet(f),
		framebuffers: NewFramebufferSet(f),
		windowSize:   windowSize,
		size:         logicalSize(windowSize, cfg.PixelScale),
	}
	r.setDefaults()
	if err := r.init(); err != nil {
		r.release()
		return nil, err
	}
	dumpLog(levelDebug, "Render created: window %d x %d, logical %d x %d, %s", windowSize.X, windowSize.Y, r.size.X, r.size.Y, f.Profile())
	return r, nil
}

func (r *Render) setDefaults() {
	r.f.Enable(glapi.BLEND)
	r.f.BlendFunc(glapi.SRC_ALPHA, glapi.ONE_MINUS_SRC_ALPHA)
	r.f.Disable(glapi.DEPTH_TEST)
	r.f.Disable(glapi.CULL_FACE)
}

func (r *Render) init() error {
	header := shaderHeader(r.f.Profile())
	sources := [roleCount][2]string{
		RoleBase: {rectVertexShader, baseFragmentShader},
		RoleFont: {rectVertexShader, fontFragmentShader},
		RolePost: {postVertexShader, postFragmentShader},
	}
	for role, src := range sources {
		if err := r.shaders.Add(header+src[0], header+src[1]); err != nil {
			return &RenderError{Op: "compile " + Role(role).String() + " shader", Err: err}
		}
	}

	var err error
	wrap := func(err error) error { return &RenderError{Op: "uniforms", Err: err} }
	if r.projection, err = MakeShared(r.shaders, makeProjection(r.size), "projection", int(RoleBase), int(RoleFont)); err != nil {
		return wrap(err)
	}
	if r.texture0, err = MakeShared(r.shaders, int32(0), "texture0", int(RoleBase), int(RoleFont)); err != nil {
		return wrap(err)
	}
	if r.col, err = MakeShared(r.shaders, White(), "col", int(RoleFont), int(RoleBase)); err != nil {
		return wrap(err)
	}
	r.shaders.Use(int(RoleBase))
	if r.drawTexture, err = MakeUniform(r.shaders, false, "draw_texture"); err != nil {
		return wrap(err)
	}
	r.shaders.Use(int(RolePost))
	if r.frame, err = MakeUniform(r.shaders, int32(frameUnit), "frame"); err != nil {
		return wrap(err)
	}

	if r.offscreen, err = r.framebuffers.AddFramebuffer(r.size); err != nil {
		return &RenderError{Op: "framebuffer", Err: err}
	}
	if err := r.framebuffers.AddTexture(r.cfg.ColorFormat); err != nil {
		return &RenderError{Op: "framebuffer", Err: err}
	}
	if err := r.framebuffers.AddRenderbuffer(r.cfg.DepthFormat); err != nil {
		return &RenderError{Op: "framebuffer", Err: err}
	}
	if !r.framebuffers.IsComplete() {
		return &RenderError{Op: "framebuffer", Err: &FramebufferError{Op: "check", Index: r.offscreen, Err: ErrFramebufferIncomplete}}
	}
	r.framebuffers.BindDefault()

	r.viewport = NewViewport(r.f, r.windowSize)
	r.rect = newRectRender(r.f)

	fnt, err := DefaultFont(r.f)
	if err != nil {
		return &RenderError{Op: "font", Err: err}
	}
	r.fontRender = NewFontRender(fnt)
	return nil
}

func logicalSize(windowSize Vec2[int], scale float32) Vec2[int] {
	return V2(int(float32(windowSize.X)/scale), int(float32(windowSize.Y)/scale))
}

func makeProjection(size Vec2[int]) mgl32.Mat4 {
	return mgl32.Ortho(0, float32(size.X), 0, float32(size.Y), projectionNear, projectionFar)
}

// Size returns the logical size of the frame.
func (r *Render) Size() Vec2[int] { return r.size }

// WindowSize returns the window size in pixels.
func (r *Render) WindowSize() Vec2[int] { return r.windowSize }

func (r *Render) Config() Config { return r.cfg }

// Functions returns the driver the Render issues calls to.
func (r *Render) Functions() glapi.Functions { return r.f }

// Projection returns the current projection matrix.
func (r *Render) Projection() mgl32.Mat4 { return r.projection.Value() }

// Stats returns the draw calls issued since BeginDrawFrame.
func (r *Render) Stats() Stats { return r.stats }

// Resize adapts the projection and the off-screen target to a new window
// size. The off-screen framebuffer stays bound.
func (r *Render) Resize(windowSize Vec2[int]) error {
	size := logicalSize(windowSize, r.cfg.PixelScale)
	r.framebuffers.Bind(r.offscreen)
	if err := r.framebuffers.Resize(size); err != nil {
		return &RenderError{Op: "resize", Err: err}
	}
	r.windowSize = windowSize
	r.size = size
	r.projection.SetValue(makeProjection(size))
	dumpLog(levelDebug, "Render resized: window %d x %d, logical %d x %d", windowSize.X, windowSize.Y, size.X, size.Y)
	return nil
}

// BeginDrawFrame redirects drawing to the off-screen target.
func (r *Render) BeginDrawFrame() {
	r.stats = Stats{}
	r.framebuffers.Bind(r.offscreen)
	r.viewport.Resize(r.framebuffers.Active().Size())

	// The frame texture is still bound from the last composite.
	r.f.ActiveTexture(glapi.TEXTURE0 + frameUnit)
	r.f.BindTexture(glapi.TEXTURE_2D, 0)
	r.Clear(r.cfg.Background)
}

// EndDrawFrame composites the off-screen frame into the window.
func (r *Render) EndDrawFrame() {
	r.framebuffers.Framebuffer(r.offscreen).BindTextures()
	r.frame.SetValue(frameUnit)
	r.framebuffers.BindDefault()
	r.viewport.Resize(r.windowSize)
	r.Clear(r.cfg.Background)
	r.DrawRectAccept(RolePost, Rect[float32]{X: -1, Y: -1, Width: 2, Height: 2}, nil, false)

	if r.cfg.Debug {
		r.CheckError()
	}
}

// DrawRectAccept draws rect with the program of role after uploading the
// uniforms that changed. st selects a texture rectangle, nil means the whole
// texture.
func (r *Render) DrawRectAccept(role Role, rect Rect[float32], st *Rect[float32], flipV bool) {
	r.shaders.Use(int(role))
	r.projection.Accept(r.shaders)
	r.texture0.Accept(r.shaders)
	r.col.Accept(r.shaders)

	switch role {
	case RoleBase:
		r.drawTexture.Accept(r.shaders)
	case RolePost:
		r.frame.Accept(r.shaders)
	}

	r.rect.draw(rect, st, flipV)
	r.stats.Draws[role]++
}

// DrawRect draws rect with the current color and texture.
func (r *Render) DrawRect(rect Rect[float32]) {
	r.DrawRectAccept(RoleBase, rect, nil, false)
}

// DrawRectST draws the st part of the current texture into rect.
func (r *Render) DrawRectST(rect, st Rect[float32]) {
	r.DrawRectAccept(RoleBase, rect, &st, false)
}

func (r *Render) SetColor(c Color) { r.col.SetValue(c) }

// SetTexture binds t to unit 0 and enables texturing for RoleBase.
func (r *Render) SetTexture(t *Texture) {
	r.texture0.SetValue(0)
	t.Bind(int(r.texture0.Value()))
	r.drawTexture.SetValue(true)
}

func (r *Render) UnsetTexture() { r.drawTexture.SetValue(false) }

// Clear clears the bound framebuffer.
func (r *Render) Clear(c Color) {
	r.f.ClearColor(c.R, c.G, c.B, c.A)
	r.f.Clear(glapi.COLOR_BUFFER_BIT | glapi.DEPTH_BUFFER_BIT)
}

// DefaultParameters returns the parameters a top level Drawer receives:
// white, centered in the whole frame.
func (r *Render) DefaultParameters() DrawParameters {
	return DrawParameters{
		Color:    White(),
		Position: Position{Anchor: Center},
		Frame:    r.size.Rect(),
	}
}

func (r *Render) Draw(d Drawer) { d.Draw(r, r.DefaultParameters()) }

// Print lays out text and places it inside p.Frame.
func (r *Render) Print(text string, p DrawParameters) {
	g := r.fontRender.Glyphs(text, p.Font.Monospaced)
	rect := p.Position.Rect(p.Frame, g.Size)
	r.fontRender.Print(r, g, rect, p.Color, p.Font.Shadow)
}

// TextSize returns the size text would take when printed.
func (r *Render) TextSize(text string, monospaced bool) Vec2[int] {
	return r.fontRender.Glyphs(text, monospaced).Size
}

// SetFont replaces the font used by Print. The previous font is deleted.
func (r *Render) SetFont(fnt *Font) {
	r.fontRender.Font().Delete()
	r.fontRender = NewFontRender(fnt)
}

// CheckError returns the first pending driver error. In debug mode the
// error is logged too.
func (r *Render) CheckError() error {
	err := glapi.CheckError(r.f)
	if err != nil && r.cfg.Debug {
		dumpLog(levelError, "Render: %v", err)
	}
	return err
}

// Delete releases every GPU object the Render owns.
func (r *Render) Delete() {
	r.release()
}

func (r *Render) release() {
	if r.fontRender != nil {
		r.fontRender.Font().Delete()
		r.fontRender = nil
	}
	if r.rect != nil {
		r.rect.delete()
		r.rect = nil
	}
	r.framebuffers.Delete()
	r.shaders.Delete()
}
