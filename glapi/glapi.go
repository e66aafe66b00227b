// Package glapi is the boundary between rtui and an OpenGL driver.
//
// The call set follows the OpenGL ES 2 style API (one object per call,
// slices instead of pointers) so that both the goxjs binding and the
// go-gl core profile binding can implement it.
package glapi

// Enum is an OpenGL enumerant.
type Enum uint32

// Object handles. The zero value means "no object".
type (
	Program      uint32
	Shader       uint32
	Texture      uint32
	Framebuffer  uint32
	Renderbuffer uint32
	Buffer       uint32
	Attrib       uint32
)

// UniformLocation is a uniform location inside a linked program.
// Negative values mean the name was not found.
type UniformLocation int32

// Profile selects the shading language dialect accepted by a backend.
type Profile int

const (
	// ProfileES2 is GLSL 1.00 / 1.20 with attribute/varying.
	ProfileES2 Profile = iota
	// ProfileGL3 is GLSL 3.30 core with in/out.
	ProfileGL3
)

func (p Profile) String() string {
	switch p {
	case ProfileES2:
		return "es2"
	case ProfileGL3:
		return "gl3"
	}
	return "unknown"
}

// Functions is the set of driver calls rtui issues. All calls must be made
// from the goroutine owning the GL context.
type Functions interface {
	Profile() Profile

	ActiveTexture(texture Enum)
	AttachShader(p Program, s Shader)
	BindAttribLocation(p Program, a Attrib, name string)
	BindBuffer(target Enum, b Buffer)
	BindFramebuffer(target Enum, fb Framebuffer)
	BindRenderbuffer(target Enum, rb Renderbuffer)
	BindTexture(target Enum, t Texture)
	BlendFunc(sfactor, dfactor Enum)
	BufferData(target Enum, size int, usage Enum)
	BufferSubData(target Enum, offset int, data []float32)
	CheckFramebufferStatus(target Enum) Enum
	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	CompileShader(s Shader)
	CreateBuffer() Buffer
	CreateFramebuffer() Framebuffer
	CreateProgram() Program
	CreateRenderbuffer() Renderbuffer
	CreateShader(ty Enum) Shader
	CreateTexture() Texture
	DeleteBuffer(b Buffer)
	DeleteFramebuffer(fb Framebuffer)
	DeleteProgram(p Program)
	DeleteRenderbuffer(rb Renderbuffer)
	DeleteShader(s Shader)
	DeleteTexture(t Texture)
	Disable(cap Enum)
	DrawArrays(mode Enum, first, count int)
	Enable(cap Enum)
	EnableVertexAttribArray(a Attrib)
	FramebufferRenderbuffer(target, attachment, renderbufferTarget Enum, rb Renderbuffer)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	GetError() Enum
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	GetUniformLocation(p Program, name string) UniformLocation
	LinkProgram(p Program)
	PixelStorei(pname Enum, param int32)
	RenderbufferStorage(target, internalFormat Enum, width, height int)
	ShaderSource(s Shader, src string)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte)
	TexParameteri(target, pname Enum, param int)
	Uniform1f(dst UniformLocation, v float32)
	Uniform1i(dst UniformLocation, v int32)
	Uniform1ui(dst UniformLocation, v uint32)
	Uniform2f(dst UniformLocation, v0, v1 float32)
	Uniform3f(dst UniformLocation, v0, v1, v2 float32)
	Uniform4f(dst UniformLocation, v0, v1, v2, v3 float32)
	UniformMatrix2fv(dst UniformLocation, src []float32)
	UniformMatrix3fv(dst UniformLocation, src []float32)
	UniformMatrix4fv(dst UniformLocation, src []float32)
	UseProgram(p Program)
	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int)
	Viewport(x, y, width, height int)
}
