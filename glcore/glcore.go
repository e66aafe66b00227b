// Package glcore implements glapi.Functions on the OpenGL 3.3 core profile
// through github.com/go-gl/gl.
package glcore

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/nanolsn/rtui/glapi"
)

// Functions owns the single vertex array object the core profile requires.
type Functions struct {
	vao uint32
}

var _ glapi.Functions = (*Functions)(nil)

// New loads the GL function pointers. The context must be current.
func New() (*Functions, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glcore: init: %w", err)
	}
	f := &Functions{}
	gl.GenVertexArrays(1, &f.vao)
	gl.BindVertexArray(f.vao)
	return f, nil
}

// Delete releases the vertex array object.
func (f *Functions) Delete() {
	if f.vao == 0 {
		return
	}
	gl.BindVertexArray(0)
	gl.DeleteVertexArrays(1, &f.vao)
	f.vao = 0
}

// Version reports the driver's GL_VERSION string.
func (*Functions) Version() string { return gl.GoStr(gl.GetString(gl.VERSION)) }

func (*Functions) Profile() glapi.Profile { return glapi.ProfileGL3 }

func (*Functions) ActiveTexture(texture glapi.Enum) { gl.ActiveTexture(uint32(texture)) }

func (*Functions) AttachShader(p glapi.Program, s glapi.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (*Functions) BindAttribLocation(p glapi.Program, a glapi.Attrib, name string) {
	gl.BindAttribLocation(uint32(p), uint32(a), gl.Str(name+"\x00"))
}

func (*Functions) BindBuffer(target glapi.Enum, b glapi.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b))
}

func (*Functions) BindFramebuffer(target glapi.Enum, fb glapi.Framebuffer) {
	gl.BindFramebuffer(uint32(target), uint32(fb))
}

func (*Functions) BindRenderbuffer(target glapi.Enum, rb glapi.Renderbuffer) {
	gl.BindRenderbuffer(uint32(target), uint32(rb))
}

func (*Functions) BindTexture(target glapi.Enum, t glapi.Texture) {
	gl.BindTexture(uint32(target), uint32(t))
}

func (*Functions) BlendFunc(sfactor, dfactor glapi.Enum) {
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
}

func (*Functions) BufferData(target glapi.Enum, size int, usage glapi.Enum) {
	gl.BufferData(uint32(target), size, nil, uint32(usage))
}

func (*Functions) BufferSubData(target glapi.Enum, offset int, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(uint32(target), offset, len(data)*4, gl.Ptr(data))
}

func (*Functions) CheckFramebufferStatus(target glapi.Enum) glapi.Enum {
	return glapi.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (*Functions) Clear(mask glapi.Enum) { gl.Clear(uint32(mask)) }

func (*Functions) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (*Functions) CompileShader(s glapi.Shader) { gl.CompileShader(uint32(s)) }

func (*Functions) CreateBuffer() glapi.Buffer {
	var id uint32
	gl.GenBuffers(1, &id)
	return glapi.Buffer(id)
}

func (*Functions) CreateFramebuffer() glapi.Framebuffer {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return glapi.Framebuffer(id)
}

func (*Functions) CreateProgram() glapi.Program { return glapi.Program(gl.CreateProgram()) }

func (*Functions) CreateRenderbuffer() glapi.Renderbuffer {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	return glapi.Renderbuffer(id)
}

func (*Functions) CreateShader(ty glapi.Enum) glapi.Shader {
	return glapi.Shader(gl.CreateShader(uint32(ty)))
}

func (*Functions) CreateTexture() glapi.Texture {
	var id uint32
	gl.GenTextures(1, &id)
	return glapi.Texture(id)
}

func (*Functions) DeleteBuffer(b glapi.Buffer) {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}

func (*Functions) DeleteFramebuffer(fb glapi.Framebuffer) {
	id := uint32(fb)
	gl.DeleteFramebuffers(1, &id)
}

func (*Functions) DeleteProgram(p glapi.Program) { gl.DeleteProgram(uint32(p)) }

func (*Functions) DeleteRenderbuffer(rb glapi.Renderbuffer) {
	id := uint32(rb)
	gl.DeleteRenderbuffers(1, &id)
}

func (*Functions) DeleteShader(s glapi.Shader) { gl.DeleteShader(uint32(s)) }

func (*Functions) DeleteTexture(t glapi.Texture) {
	id := uint32(t)
	gl.DeleteTextures(1, &id)
}

func (*Functions) Disable(cap glapi.Enum) { gl.Disable(uint32(cap)) }

func (*Functions) DrawArrays(mode glapi.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (*Functions) Enable(cap glapi.Enum) { gl.Enable(uint32(cap)) }

func (*Functions) EnableVertexAttribArray(a glapi.Attrib) { gl.EnableVertexAttribArray(uint32(a)) }

func (*Functions) FramebufferRenderbuffer(target, attachment, renderbufferTarget glapi.Enum, rb glapi.Renderbuffer) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbufferTarget), uint32(rb))
}

func (*Functions) FramebufferTexture2D(target, attachment, texTarget glapi.Enum, t glapi.Texture, level int) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), uint32(t), int32(level))
}

func (*Functions) GetError() glapi.Enum { return glapi.Enum(gl.GetError()) }

func (*Functions) GetProgrami(p glapi.Program, pname glapi.Enum) int {
	var v int32
	gl.GetProgramiv(uint32(p), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetProgramInfoLog(p glapi.Program) string {
	n := f.GetProgrami(p, glapi.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	log := strings.Repeat("\x00", n+1)
	gl.GetProgramInfoLog(uint32(p), int32(n), nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*Functions) GetShaderi(s glapi.Shader, pname glapi.Enum) int {
	var v int32
	gl.GetShaderiv(uint32(s), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetShaderInfoLog(s glapi.Shader) string {
	n := f.GetShaderi(s, glapi.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	log := strings.Repeat("\x00", n+1)
	gl.GetShaderInfoLog(uint32(s), int32(n), nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*Functions) GetUniformLocation(p glapi.Program, name string) glapi.UniformLocation {
	return glapi.UniformLocation(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

func (*Functions) LinkProgram(p glapi.Program) { gl.LinkProgram(uint32(p)) }

func (*Functions) PixelStorei(pname glapi.Enum, param int32) { gl.PixelStorei(uint32(pname), param) }

func (*Functions) RenderbufferStorage(target, internalFormat glapi.Enum, width, height int) {
	gl.RenderbufferStorage(uint32(target), uint32(internalFormat), int32(width), int32(height))
}

func (*Functions) ShaderSource(s glapi.Shader, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s), 1, csrc, nil)
	free()
}

func (*Functions) TexImage2D(target glapi.Enum, level int, internalFormat glapi.Enum, width, height int, format, ty glapi.Enum, data []byte) {
	var pixels unsafe.Pointer
	if len(data) > 0 {
		pixels = gl.Ptr(data)
	}
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), pixels)
}

func (*Functions) TexParameteri(target, pname glapi.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (*Functions) Uniform1f(dst glapi.UniformLocation, v float32) { gl.Uniform1f(int32(dst), v) }

func (*Functions) Uniform1i(dst glapi.UniformLocation, v int32) { gl.Uniform1i(int32(dst), v) }

func (*Functions) Uniform1ui(dst glapi.UniformLocation, v uint32) { gl.Uniform1ui(int32(dst), v) }

func (*Functions) Uniform2f(dst glapi.UniformLocation, v0, v1 float32) {
	gl.Uniform2f(int32(dst), v0, v1)
}

func (*Functions) Uniform3f(dst glapi.UniformLocation, v0, v1, v2 float32) {
	gl.Uniform3f(int32(dst), v0, v1, v2)
}

func (*Functions) Uniform4f(dst glapi.UniformLocation, v0, v1, v2, v3 float32) {
	gl.Uniform4f(int32(dst), v0, v1, v2, v3)
}

func (*Functions) UniformMatrix2fv(dst glapi.UniformLocation, src []float32) {
	gl.UniformMatrix2fv(int32(dst), int32(len(src)/4), false, &src[0])
}

func (*Functions) UniformMatrix3fv(dst glapi.UniformLocation, src []float32) {
	gl.UniformMatrix3fv(int32(dst), int32(len(src)/9), false, &src[0])
}

func (*Functions) UniformMatrix4fv(dst glapi.UniformLocation, src []float32) {
	gl.UniformMatrix4fv(int32(dst), int32(len(src)/16), false, &src[0])
}

func (*Functions) UseProgram(p glapi.Program) { gl.UseProgram(uint32(p)) }

func (*Functions) VertexAttribPointer(dst glapi.Attrib, size int, ty glapi.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func (*Functions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}
