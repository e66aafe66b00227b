// Package gltest provides an in-memory glapi.Functions that records every
// state change and draw call. It needs no GL context and is meant for tests.
package gltest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nanolsn/rtui/glapi"
)

// Status values returned by CheckFramebufferStatus besides
// glapi.FRAMEBUFFER_COMPLETE.
const (
	FramebufferIncompleteAttachment        glapi.Enum = 0x8CD6
	FramebufferIncompleteMissingAttachment glapi.Enum = 0x8CD7
)

var uniformDecl = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*(?:\[[^\]]*\])?\s*;`)

type Shader struct {
	Type     glapi.Enum
	Source   string
	Compiled bool
	Deleted  bool
}

type Program struct {
	Shaders  []glapi.Shader
	Attribs  map[string]glapi.Attrib
	Uniforms map[string]glapi.UniformLocation
	Linked   bool
	Deleted  bool
}

type Texture struct {
	Width, Height  int
	InternalFormat glapi.Enum
	Format         glapi.Enum
	Params         map[glapi.Enum]int
	Deleted        bool
}

type Renderbuffer struct {
	Width, Height  int
	InternalFormat glapi.Enum
	Deleted        bool
}

// Attachment is either a texture or a renderbuffer attached to a framebuffer.
type Attachment struct {
	Texture      glapi.Texture
	Renderbuffer glapi.Renderbuffer
}

type Framebuffer struct {
	Attachments map[glapi.Enum]Attachment
	Deleted     bool
}

// Upload is one uniform upload. Value holds float32, int32, uint32,
// [2]float32, [3]float32, [4]float32 or []float32 for matrices.
type Upload struct {
	Program  glapi.Program
	Location glapi.UniformLocation
	Value    any
}

// Draw is one DrawArrays call with the state it was issued in.
type Draw struct {
	Program     glapi.Program
	Framebuffer glapi.Framebuffer
	Mode        glapi.Enum
	First       int
	Count       int
	Vertices    []float32
	Textures    map[int]glapi.Texture
}

// Functions is a recording glapi.Functions.
type Functions struct {
	// FailCompile makes every shader whose source contains it fail to compile.
	FailCompile string
	// FailLink makes every program fail to link.
	FailLink bool
	// Incomplete makes CheckFramebufferStatus report an incomplete attachment.
	Incomplete bool

	Shaders       map[glapi.Shader]*Shader
	Programs      map[glapi.Program]*Program
	Textures      map[glapi.Texture]*Texture
	Renderbuffers map[glapi.Renderbuffer]*Renderbuffer
	Framebuffers  map[glapi.Framebuffer]*Framebuffer
	Buffers       map[glapi.Buffer][]float32

	CurrentProgram      glapi.Program
	CurrentFramebuffer  glapi.Framebuffer
	CurrentRenderbuffer glapi.Renderbuffer
	CurrentBuffer       glapi.Buffer
	ActiveUnit          int
	Units               map[int]glapi.Texture
	Enabled             map[glapi.Enum]bool
	ViewportSize        [4]int
	ClearColorValue     [4]float32
	UnpackAlignment     int

	UseProgramCalls      int
	BindFramebufferCalls int
	Viewports            [][4]int
	Clears               []glapi.Enum
	Uploads              []Upload
	Draws                []Draw

	profile glapi.Profile
	nextID  uint32
	errors  []glapi.Enum
}

var _ glapi.Functions = (*Functions)(nil)

// New returns an empty recorder that reports the given profile.
func New(profile glapi.Profile) *Functions {
	return &Functions{
		Shaders:         map[glapi.Shader]*Shader{},
		Programs:        map[glapi.Program]*Program{},
		Textures:        map[glapi.Texture]*Texture{},
		Renderbuffers:   map[glapi.Renderbuffer]*Renderbuffer{},
		Framebuffers:    map[glapi.Framebuffer]*Framebuffer{},
		Buffers:         map[glapi.Buffer][]float32{},
		Units:           map[int]glapi.Texture{},
		Enabled:         map[glapi.Enum]bool{},
		UnpackAlignment: 4,
		profile:         profile,
	}
}

// PushError queues an error for GetError.
func (f *Functions) PushError(code glapi.Enum) {
	f.errors = append(f.errors, code)
}

// Reset forgets recorded calls but keeps objects and bindings.
func (f *Functions) Reset() {
	f.UseProgramCalls = 0
	f.BindFramebufferCalls = 0
	f.Viewports = nil
	f.Clears = nil
	f.Uploads = nil
	f.Draws = nil
}

// UploadsTo returns the uploads made to location loc of program p.
func (f *Functions) UploadsTo(p glapi.Program, loc glapi.UniformLocation) []Upload {
	var res []Upload
	for _, u := range f.Uploads {
		if u.Program == p && u.Location == loc {
			res = append(res, u)
		}
	}
	return res
}

// Live returns the number of objects that were created and not yet deleted.
func (f *Functions) Live() int {
	n := 0
	for _, s := range f.Shaders {
		if !s.Deleted {
			n++
		}
	}
	for _, p := range f.Programs {
		if !p.Deleted {
			n++
		}
	}
	for _, t := range f.Textures {
		if !t.Deleted {
			n++
		}
	}
	for _, rb := range f.Renderbuffers {
		if !rb.Deleted {
			n++
		}
	}
	for _, fb := range f.Framebuffers {
		if !fb.Deleted {
			n++
		}
	}
	return n + len(f.Buffers)
}

func (f *Functions) id() uint32 {
	f.nextID++
	return f.nextID
}

func (f *Functions) fail(code glapi.Enum) {
	f.errors = append(f.errors, code)
}

func (f *Functions) Profile() glapi.Profile { return f.profile }

func (f *Functions) ActiveTexture(texture glapi.Enum) {
	f.ActiveUnit = int(texture - glapi.TEXTURE0)
}

func (f *Functions) AttachShader(p glapi.Program, s glapi.Shader) {
	prog := f.Programs[p]
	prog.Shaders = append(prog.Shaders, s)
}

func (f *Functions) BindAttribLocation(p glapi.Program, a glapi.Attrib, name string) {
	f.Programs[p].Attribs[name] = a
}

func (f *Functions) BindBuffer(target glapi.Enum, b glapi.Buffer) {
	f.CurrentBuffer = b
}

func (f *Functions) BindFramebuffer(target glapi.Enum, fb glapi.Framebuffer) {
	if fb != 0 {
		if obj, ok := f.Framebuffers[fb]; !ok || obj.Deleted {
			panic(fmt.Sprintf("gltest: bind of unknown framebuffer %d", fb))
		}
	}
	f.BindFramebufferCalls++
	f.CurrentFramebuffer = fb
}

func (f *Functions) BindRenderbuffer(target glapi.Enum, rb glapi.Renderbuffer) {
	f.CurrentRenderbuffer = rb
}

func (f *Functions) BindTexture(target glapi.Enum, t glapi.Texture) {
	if t == 0 {
		delete(f.Units, f.ActiveUnit)
		return
	}
	f.Units[f.ActiveUnit] = t
}

func (f *Functions) BlendFunc(sfactor, dfactor glapi.Enum) {}

func (f *Functions) BufferData(target glapi.Enum, size int, usage glapi.Enum) {
	f.Buffers[f.CurrentBuffer] = make([]float32, size/4)
}

func (f *Functions) BufferSubData(target glapi.Enum, offset int, data []float32) {
	buf := f.Buffers[f.CurrentBuffer]
	if offset/4+len(data) > len(buf) {
		f.fail(glapi.INVALID_VALUE)
		return
	}
	copy(buf[offset/4:], data)
}

func (f *Functions) CheckFramebufferStatus(target glapi.Enum) glapi.Enum {
	if f.CurrentFramebuffer == 0 {
		return glapi.FRAMEBUFFER_COMPLETE
	}
	if f.Incomplete {
		return FramebufferIncompleteAttachment
	}
	if len(f.Framebuffers[f.CurrentFramebuffer].Attachments) == 0 {
		return FramebufferIncompleteMissingAttachment
	}
	return glapi.FRAMEBUFFER_COMPLETE
}

func (f *Functions) Clear(mask glapi.Enum) {
	f.Clears = append(f.Clears, mask)
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	f.ClearColorValue = [4]float32{red, green, blue, alpha}
}

func (f *Functions) CompileShader(s glapi.Shader) {
	sh := f.Shaders[s]
	sh.Compiled = f.FailCompile == "" || !strings.Contains(sh.Source, f.FailCompile)
}

func (f *Functions) CreateBuffer() glapi.Buffer {
	b := glapi.Buffer(f.id())
	f.Buffers[b] = nil
	return b
}

func (f *Functions) CreateFramebuffer() glapi.Framebuffer {
	fb := glapi.Framebuffer(f.id())
	f.Framebuffers[fb] = &Framebuffer{Attachments: map[glapi.Enum]Attachment{}}
	return fb
}

func (f *Functions) CreateProgram() glapi.Program {
	p := glapi.Program(f.id())
	f.Programs[p] = &Program{
		Attribs:  map[string]glapi.Attrib{},
		Uniforms: map[string]glapi.UniformLocation{},
	}
	return p
}

func (f *Functions) CreateRenderbuffer() glapi.Renderbuffer {
	rb := glapi.Renderbuffer(f.id())
	f.Renderbuffers[rb] = &Renderbuffer{}
	return rb
}

func (f *Functions) CreateShader(ty glapi.Enum) glapi.Shader {
	s := glapi.Shader(f.id())
	f.Shaders[s] = &Shader{Type: ty}
	return s
}

func (f *Functions) CreateTexture() glapi.Texture {
	t := glapi.Texture(f.id())
	f.Textures[t] = &Texture{Params: map[glapi.Enum]int{}}
	return t
}

func (f *Functions) DeleteBuffer(b glapi.Buffer) {
	if _, ok := f.Buffers[b]; !ok {
		panic(fmt.Sprintf("gltest: double delete of buffer %d", b))
	}
	delete(f.Buffers, b)
}

func (f *Functions) DeleteFramebuffer(fb glapi.Framebuffer) {
	obj, ok := f.Framebuffers[fb]
	if !ok || obj.Deleted {
		panic(fmt.Sprintf("gltest: double delete of framebuffer %d", fb))
	}
	obj.Deleted = true
	if f.CurrentFramebuffer == fb {
		f.CurrentFramebuffer = 0
	}
}

func (f *Functions) DeleteProgram(p glapi.Program) {
	obj, ok := f.Programs[p]
	if !ok || obj.Deleted {
		panic(fmt.Sprintf("gltest: double delete of program %d", p))
	}
	obj.Deleted = true
}

func (f *Functions) DeleteRenderbuffer(rb glapi.Renderbuffer) {
	obj, ok := f.Renderbuffers[rb]
	if !ok || obj.Deleted {
		panic(fmt.Sprintf("gltest: double delete of renderbuffer %d", rb))
	}
	obj.Deleted = true
}

func (f *Functions) DeleteShader(s glapi.Shader) {
	obj, ok := f.Shaders[s]
	if !ok || obj.Deleted {
		panic(fmt.Sprintf("gltest: double delete of shader %d", s))
	}
	obj.Deleted = true
}

func (f *Functions) DeleteTexture(t glapi.Texture) {
	obj, ok := f.Textures[t]
	if !ok || obj.Deleted {
		panic(fmt.Sprintf("gltest: double delete of texture %d", t))
	}
	obj.Deleted = true
	for unit, bound := range f.Units {
		if bound == t {
			delete(f.Units, unit)
		}
	}
}

func (f *Functions) Disable(cap glapi.Enum) { f.Enabled[cap] = false }

func (f *Functions) DrawArrays(mode glapi.Enum, first, count int) {
	units := make(map[int]glapi.Texture, len(f.Units))
	for unit, t := range f.Units {
		units[unit] = t
	}
	f.Draws = append(f.Draws, Draw{
		Program:     f.CurrentProgram,
		Framebuffer: f.CurrentFramebuffer,
		Mode:        mode,
		First:       first,
		Count:       count,
		Vertices:    append([]float32(nil), f.Buffers[f.CurrentBuffer]...),
		Textures:    units,
	})
}

func (f *Functions) Enable(cap glapi.Enum) { f.Enabled[cap] = true }

func (f *Functions) EnableVertexAttribArray(a glapi.Attrib) {}

func (f *Functions) FramebufferRenderbuffer(target, attachment, renderbufferTarget glapi.Enum, rb glapi.Renderbuffer) {
	if f.CurrentFramebuffer == 0 {
		f.fail(glapi.INVALID_OPERATION)
		return
	}
	f.Framebuffers[f.CurrentFramebuffer].Attachments[attachment] = Attachment{Renderbuffer: rb}
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget glapi.Enum, t glapi.Texture, level int) {
	if f.CurrentFramebuffer == 0 {
		f.fail(glapi.INVALID_OPERATION)
		return
	}
	f.Framebuffers[f.CurrentFramebuffer].Attachments[attachment] = Attachment{Texture: t}
}

func (f *Functions) GetError() glapi.Enum {
	if len(f.errors) == 0 {
		return glapi.NO_ERROR
	}
	code := f.errors[0]
	f.errors = f.errors[1:]
	return code
}

func (f *Functions) GetProgrami(p glapi.Program, pname glapi.Enum) int {
	if pname == glapi.LINK_STATUS && f.Programs[p].Linked {
		return glapi.TRUE
	}
	return glapi.FALSE
}

func (f *Functions) GetProgramInfoLog(p glapi.Program) string {
	if f.Programs[p].Linked {
		return ""
	}
	return "error: link failed"
}

func (f *Functions) GetShaderi(s glapi.Shader, pname glapi.Enum) int {
	if pname == glapi.COMPILE_STATUS && f.Shaders[s].Compiled {
		return glapi.TRUE
	}
	return glapi.FALSE
}

func (f *Functions) GetShaderInfoLog(s glapi.Shader) string {
	if f.Shaders[s].Compiled {
		return ""
	}
	return "0:1(1): error: syntax error"
}

func (f *Functions) GetUniformLocation(p glapi.Program, name string) glapi.UniformLocation {
	prog := f.Programs[p]
	if !prog.Linked {
		f.fail(glapi.INVALID_OPERATION)
		return -1
	}
	if loc, ok := prog.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (f *Functions) LinkProgram(p glapi.Program) {
	prog := f.Programs[p]
	if f.FailLink {
		prog.Linked = false
		return
	}
	for _, s := range prog.Shaders {
		if !f.Shaders[s].Compiled {
			prog.Linked = false
			return
		}
	}
	next := glapi.UniformLocation(0)
	for _, s := range prog.Shaders {
		for _, m := range uniformDecl.FindAllStringSubmatch(f.Shaders[s].Source, -1) {
			if _, ok := prog.Uniforms[m[1]]; !ok {
				prog.Uniforms[m[1]] = next
				next++
			}
		}
	}
	prog.Linked = true
}

func (f *Functions) PixelStorei(pname glapi.Enum, param int32) {
	if pname == glapi.UNPACK_ALIGNMENT {
		f.UnpackAlignment = int(param)
	}
}

func (f *Functions) RenderbufferStorage(target, internalFormat glapi.Enum, width, height int) {
	if width < 0 || height < 0 {
		f.fail(glapi.INVALID_VALUE)
		return
	}
	rb := f.Renderbuffers[f.CurrentRenderbuffer]
	rb.Width, rb.Height, rb.InternalFormat = width, height, internalFormat
}

func (f *Functions) ShaderSource(s glapi.Shader, src string) {
	f.Shaders[s].Source = src
}

func (f *Functions) TexImage2D(target glapi.Enum, level int, internalFormat glapi.Enum, width, height int, format, ty glapi.Enum, data []byte) {
	if width < 0 || height < 0 {
		f.fail(glapi.INVALID_VALUE)
		return
	}
	t := f.Textures[f.Units[f.ActiveUnit]]
	t.Width, t.Height = width, height
	t.InternalFormat, t.Format = internalFormat, format
}

func (f *Functions) TexParameteri(target, pname glapi.Enum, param int) {
	f.Textures[f.Units[f.ActiveUnit]].Params[pname] = param
}

func (f *Functions) upload(dst glapi.UniformLocation, v any) {
	if f.CurrentProgram == 0 {
		f.fail(glapi.INVALID_OPERATION)
		return
	}
	f.Uploads = append(f.Uploads, Upload{Program: f.CurrentProgram, Location: dst, Value: v})
}

func (f *Functions) Uniform1f(dst glapi.UniformLocation, v float32) { f.upload(dst, v) }

func (f *Functions) Uniform1i(dst glapi.UniformLocation, v int32) { f.upload(dst, v) }

func (f *Functions) Uniform1ui(dst glapi.UniformLocation, v uint32) { f.upload(dst, v) }

func (f *Functions) Uniform2f(dst glapi.UniformLocation, v0, v1 float32) {
	f.upload(dst, [2]float32{v0, v1})
}

func (f *Functions) Uniform3f(dst glapi.UniformLocation, v0, v1, v2 float32) {
	f.upload(dst, [3]float32{v0, v1, v2})
}

func (f *Functions) Uniform4f(dst glapi.UniformLocation, v0, v1, v2, v3 float32) {
	f.upload(dst, [4]float32{v0, v1, v2, v3})
}

func (f *Functions) UniformMatrix2fv(dst glapi.UniformLocation, src []float32) {
	f.upload(dst, append([]float32(nil), src...))
}

func (f *Functions) UniformMatrix3fv(dst glapi.UniformLocation, src []float32) {
	f.upload(dst, append([]float32(nil), src...))
}

func (f *Functions) UniformMatrix4fv(dst glapi.UniformLocation, src []float32) {
	f.upload(dst, append([]float32(nil), src...))
}

func (f *Functions) UseProgram(p glapi.Program) {
	f.UseProgramCalls++
	f.CurrentProgram = p
}

func (f *Functions) VertexAttribPointer(dst glapi.Attrib, size int, ty glapi.Enum, normalized bool, stride, offset int) {
}

func (f *Functions) Viewport(x, y, width, height int) {
	f.ViewportSize = [4]int{x, y, width, height}
	f.Viewports = append(f.Viewports, f.ViewportSize)
}
