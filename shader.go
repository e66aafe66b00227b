package rtui

import (
	"fmt"

	"github.com/nanolsn/rtui/glapi"
)

// Vertex attribute locations shared by every program.
const (
	attribPos glapi.Attrib = 0
	attribST  glapi.Attrib = 1
)

// ShaderErrorKind classifies a ShaderError.
type ShaderErrorKind int

const (
	CompileError ShaderErrorKind = iota
	LinkError
	IOError
)

func (k ShaderErrorKind) String() string {
	switch k {
	case CompileError:
		return "compile"
	case LinkError:
		return "link"
	case IOError:
		return "io"
	}
	return fmt.Sprintf("ShaderErrorKind(%d)", int(k))
}

// ShaderError is returned when a program can't be built. Log carries the
// driver diagnostic for compile and link errors.
type ShaderError struct {
	Kind  ShaderErrorKind
	Stage string
	Log   string
	Err   error
}

func (e *ShaderError) Error() string {
	switch e.Kind {
	case CompileError:
		return fmt.Sprintf("rtui: shader %s compile error:\n%s", e.Stage, e.Log)
	case LinkError:
		return fmt.Sprintf("rtui: program link error:\n%s", e.Log)
	}
	return fmt.Sprintf("rtui: shader source: %v", e.Err)
}

func (e *ShaderError) Unwrap() error { return e.Err }

// ShaderProgram owns one linked GL program.
type ShaderProgram struct {
	f  glapi.Functions
	id glapi.Program
}

// NewShaderProgram compiles vs and fs and links them into a program.
// The intermediate shader objects are released before returning.
func NewShaderProgram(f glapi.Functions, vs, fs string) (*ShaderProgram, error) {
	vertexShader, err := compileShader(f, glapi.VERTEX_SHADER, "vert", vs)
	if err != nil {
		return nil, err
	}
	defer f.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(f, glapi.FRAGMENT_SHADER, "frag", fs)
	if err != nil {
		return nil, err
	}
	defer f.DeleteShader(fragmentShader)

	program := f.CreateProgram()
	f.AttachShader(program, vertexShader)
	f.AttachShader(program, fragmentShader)
	f.BindAttribLocation(program, attribPos, "pos")
	f.BindAttribLocation(program, attribST, "st")
	f.LinkProgram(program)

	if glapi.Enum(f.GetProgrami(program, glapi.LINK_STATUS)) != glapi.TRUE {
		log := f.GetProgramInfoLog(program)
		f.DeleteProgram(program)
		dumpLog(levelWarn, "Program error:\n%s", log)
		return nil, &ShaderError{Kind: LinkError, Log: log}
	}
	return &ShaderProgram{f: f, id: program}, nil
}

func compileShader(f glapi.Functions, ty glapi.Enum, stage, src string) (glapi.Shader, error) {
	shader := f.CreateShader(ty)
	f.ShaderSource(shader, src)
	f.CompileShader(shader)
	if glapi.Enum(f.GetShaderi(shader, glapi.COMPILE_STATUS)) != glapi.TRUE {
		log := f.GetShaderInfoLog(shader)
		f.DeleteShader(shader)
		dumpLog(levelWarn, "Shader %s error:\n%s", stage, log)
		return 0, &ShaderError{Kind: CompileError, Stage: stage, Log: log}
	}
	return shader, nil
}

func (p *ShaderProgram) ID() glapi.Program { return p.id }

// GetUniform returns the location of name, or a negative value if the
// program has no such active uniform.
func (p *ShaderProgram) GetUniform(name string) glapi.UniformLocation {
	return p.f.GetUniformLocation(p.id, name)
}

func (p *ShaderProgram) delete() {
	if p.id == 0 {
		panic("rtui: program already deleted")
	}
	p.f.DeleteProgram(p.id)
	p.id = 0
}
