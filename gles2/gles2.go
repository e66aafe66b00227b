//go:build !js

// Package gles2 implements glapi.Functions with github.com/goxjs/gl, which
// speaks OpenGL 2.1 on desktops and OpenGL ES 2 on mobiles.
//
// The GL context must be current (see gl.ContextWatcher) before New is
// called.
package gles2

import (
	"encoding/binary"
	"math"

	"github.com/goxjs/gl"

	"github.com/nanolsn/rtui/glapi"
)

// Functions forwards every call to the goxjs binding.
type Functions struct{}

var _ glapi.Functions = (*Functions)(nil)

func New() *Functions { return &Functions{} }

func (*Functions) Profile() glapi.Profile { return glapi.ProfileES2 }

func castFloat32ToByte(vertexes []float32) []byte {
	b := make([]byte, len(vertexes)*4)
	for i, v := range vertexes {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(v))
	}
	return b
}

// ES2 has no one and two channel color formats.
func format(f glapi.Enum) gl.Enum {
	switch f {
	case glapi.RED:
		return gl.LUMINANCE
	case glapi.RG:
		return gl.LUMINANCE_ALPHA
	}
	return gl.Enum(f)
}

func (*Functions) ActiveTexture(texture glapi.Enum) { gl.ActiveTexture(gl.Enum(texture)) }

func (*Functions) AttachShader(p glapi.Program, s glapi.Shader) {
	gl.AttachShader(gl.Program{Value: uint32(p)}, gl.Shader{Value: uint32(s)})
}

func (*Functions) BindAttribLocation(p glapi.Program, a glapi.Attrib, name string) {
	gl.BindAttribLocation(gl.Program{Value: uint32(p)}, gl.Attrib{Value: uint(a)}, name)
}

func (*Functions) BindBuffer(target glapi.Enum, b glapi.Buffer) {
	gl.BindBuffer(gl.Enum(target), gl.Buffer{Value: uint32(b)})
}

func (*Functions) BindFramebuffer(target glapi.Enum, fb glapi.Framebuffer) {
	gl.BindFramebuffer(gl.Enum(target), gl.Framebuffer{Value: uint32(fb)})
}

func (*Functions) BindRenderbuffer(target glapi.Enum, rb glapi.Renderbuffer) {
	gl.BindRenderbuffer(gl.Enum(target), gl.Renderbuffer{Value: uint32(rb)})
}

func (*Functions) BindTexture(target glapi.Enum, t glapi.Texture) {
	gl.BindTexture(gl.Enum(target), gl.Texture{Value: uint32(t)})
}

func (*Functions) BlendFunc(sfactor, dfactor glapi.Enum) {
	gl.BlendFunc(gl.Enum(sfactor), gl.Enum(dfactor))
}

func (*Functions) BufferData(target glapi.Enum, size int, usage glapi.Enum) {
	gl.BufferData(gl.Enum(target), make([]byte, size), gl.Enum(usage))
}

func (*Functions) BufferSubData(target glapi.Enum, offset int, data []float32) {
	gl.BufferSubData(gl.Enum(target), offset, castFloat32ToByte(data))
}

func (*Functions) CheckFramebufferStatus(target glapi.Enum) glapi.Enum {
	return glapi.Enum(gl.CheckFramebufferStatus(gl.Enum(target)))
}

func (*Functions) Clear(mask glapi.Enum) { gl.Clear(gl.Enum(mask)) }

func (*Functions) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (*Functions) CompileShader(s glapi.Shader) { gl.CompileShader(gl.Shader{Value: uint32(s)}) }

func (*Functions) CreateBuffer() glapi.Buffer { return glapi.Buffer(gl.CreateBuffer().Value) }

func (*Functions) CreateFramebuffer() glapi.Framebuffer {
	return glapi.Framebuffer(gl.CreateFramebuffer().Value)
}

func (*Functions) CreateProgram() glapi.Program { return glapi.Program(gl.CreateProgram().Value) }

func (*Functions) CreateRenderbuffer() glapi.Renderbuffer {
	return glapi.Renderbuffer(gl.CreateRenderbuffer().Value)
}

func (*Functions) CreateShader(ty glapi.Enum) glapi.Shader {
	return glapi.Shader(gl.CreateShader(gl.Enum(ty)).Value)
}

func (*Functions) CreateTexture() glapi.Texture { return glapi.Texture(gl.CreateTexture().Value) }

func (*Functions) DeleteBuffer(b glapi.Buffer) { gl.DeleteBuffer(gl.Buffer{Value: uint32(b)}) }

func (*Functions) DeleteFramebuffer(fb glapi.Framebuffer) {
	gl.DeleteFramebuffer(gl.Framebuffer{Value: uint32(fb)})
}

func (*Functions) DeleteProgram(p glapi.Program) { gl.DeleteProgram(gl.Program{Value: uint32(p)}) }

func (*Functions) DeleteRenderbuffer(rb glapi.Renderbuffer) {
	gl.DeleteRenderbuffer(gl.Renderbuffer{Value: uint32(rb)})
}

func (*Functions) DeleteShader(s glapi.Shader) { gl.DeleteShader(gl.Shader{Value: uint32(s)}) }

func (*Functions) DeleteTexture(t glapi.Texture) { gl.DeleteTexture(gl.Texture{Value: uint32(t)}) }

func (*Functions) Disable(cap glapi.Enum) { gl.Disable(gl.Enum(cap)) }

func (*Functions) DrawArrays(mode glapi.Enum, first, count int) {
	gl.DrawArrays(gl.Enum(mode), first, count)
}

func (*Functions) Enable(cap glapi.Enum) { gl.Enable(gl.Enum(cap)) }

func (*Functions) EnableVertexAttribArray(a glapi.Attrib) {
	gl.EnableVertexAttribArray(gl.Attrib{Value: uint(a)})
}

func (*Functions) FramebufferRenderbuffer(target, attachment, renderbufferTarget glapi.Enum, rb glapi.Renderbuffer) {
	gl.FramebufferRenderbuffer(gl.Enum(target), gl.Enum(attachment), gl.Enum(renderbufferTarget), gl.Renderbuffer{Value: uint32(rb)})
}

func (*Functions) FramebufferTexture2D(target, attachment, texTarget glapi.Enum, t glapi.Texture, level int) {
	gl.FramebufferTexture2D(gl.Enum(target), gl.Enum(attachment), gl.Enum(texTarget), gl.Texture{Value: uint32(t)}, level)
}

func (*Functions) GetError() glapi.Enum { return glapi.Enum(gl.GetError()) }

func (*Functions) GetProgrami(p glapi.Program, pname glapi.Enum) int {
	return gl.GetProgrami(gl.Program{Value: uint32(p)}, gl.Enum(pname))
}

func (*Functions) GetProgramInfoLog(p glapi.Program) string {
	return gl.GetProgramInfoLog(gl.Program{Value: uint32(p)})
}

func (*Functions) GetShaderi(s glapi.Shader, pname glapi.Enum) int {
	return gl.GetShaderi(gl.Shader{Value: uint32(s)}, gl.Enum(pname))
}

func (*Functions) GetShaderInfoLog(s glapi.Shader) string {
	return gl.GetShaderInfoLog(gl.Shader{Value: uint32(s)})
}

func (*Functions) GetUniformLocation(p glapi.Program, name string) glapi.UniformLocation {
	return glapi.UniformLocation(gl.GetUniformLocation(gl.Program{Value: uint32(p)}, name).Value)
}

func (*Functions) LinkProgram(p glapi.Program) { gl.LinkProgram(gl.Program{Value: uint32(p)}) }

func (*Functions) PixelStorei(pname glapi.Enum, param int32) { gl.PixelStorei(gl.Enum(pname), param) }

func (*Functions) RenderbufferStorage(target, internalFormat glapi.Enum, width, height int) {
	gl.RenderbufferStorage(gl.Enum(target), gl.Enum(internalFormat), width, height)
}

func (*Functions) ShaderSource(s glapi.Shader, src string) {
	gl.ShaderSource(gl.Shader{Value: uint32(s)}, src)
}

// TexImage2D ignores internalFormat: ES2 derives it from format.
func (*Functions) TexImage2D(target glapi.Enum, level int, internalFormat glapi.Enum, width, height int, f, ty glapi.Enum, data []byte) {
	gl.TexImage2D(gl.Enum(target), level, width, height, format(f), gl.Enum(ty), data)
}

func (*Functions) TexParameteri(target, pname glapi.Enum, param int) {
	gl.TexParameteri(gl.Enum(target), gl.Enum(pname), param)
}

func uniform(dst glapi.UniformLocation) gl.Uniform { return gl.Uniform{Value: int32(dst)} }

func (*Functions) Uniform1f(dst glapi.UniformLocation, v float32) { gl.Uniform1f(uniform(dst), v) }

func (*Functions) Uniform1i(dst glapi.UniformLocation, v int32) { gl.Uniform1i(uniform(dst), int(v)) }

// Uniform1ui uploads v as a signed int; ES2 has no unsigned uniforms.
func (*Functions) Uniform1ui(dst glapi.UniformLocation, v uint32) {
	gl.Uniform1i(uniform(dst), int(v))
}

func (*Functions) Uniform2f(dst glapi.UniformLocation, v0, v1 float32) {
	gl.Uniform2f(uniform(dst), v0, v1)
}

func (*Functions) Uniform3f(dst glapi.UniformLocation, v0, v1, v2 float32) {
	gl.Uniform3f(uniform(dst), v0, v1, v2)
}

func (*Functions) Uniform4f(dst glapi.UniformLocation, v0, v1, v2, v3 float32) {
	gl.Uniform4f(uniform(dst), v0, v1, v2, v3)
}

func (*Functions) UniformMatrix2fv(dst glapi.UniformLocation, src []float32) {
	gl.UniformMatrix2fv(uniform(dst), src)
}

func (*Functions) UniformMatrix3fv(dst glapi.UniformLocation, src []float32) {
	gl.UniformMatrix3fv(uniform(dst), src)
}

func (*Functions) UniformMatrix4fv(dst glapi.UniformLocation, src []float32) {
	gl.UniformMatrix4fv(uniform(dst), src)
}

func (*Functions) UseProgram(p glapi.Program) { gl.UseProgram(gl.Program{Value: uint32(p)}) }

func (*Functions) VertexAttribPointer(dst glapi.Attrib, size int, ty glapi.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(gl.Attrib{Value: uint(dst)}, size, gl.Enum(ty), normalized, stride, offset)
}

func (*Functions) Viewport(x, y, width, height int) { gl.Viewport(x, y, width, height) }
