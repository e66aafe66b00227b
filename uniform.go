package rtui

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/nanolsn/rtui/glapi"
)

// Value is the set of types a uniform can hold.
type Value interface {
	float32 | int32 | uint32 | bool |
		mgl32.Vec2 | mgl32.Vec3 | mgl32.Vec4 |
		mgl32.Mat2 | mgl32.Mat3 | mgl32.Mat4 |
		Color
}

func upload[T Value](f glapi.Functions, loc glapi.UniformLocation, value T) {
	switch v := any(value).(type) {
	case float32:
		f.Uniform1f(loc, v)
	case int32:
		f.Uniform1i(loc, v)
	case uint32:
		f.Uniform1ui(loc, v)
	case bool:
		var i int32
		if v {
			i = 1
		}
		f.Uniform1i(loc, i)
	case mgl32.Vec2:
		f.Uniform2f(loc, v[0], v[1])
	case mgl32.Vec3:
		f.Uniform3f(loc, v[0], v[1], v[2])
	case mgl32.Vec4:
		f.Uniform4f(loc, v[0], v[1], v[2], v[3])
	case mgl32.Mat2:
		f.UniformMatrix2fv(loc, v[:])
	case mgl32.Mat3:
		f.UniformMatrix3fv(loc, v[:])
	case mgl32.Mat4:
		f.UniformMatrix4fv(loc, v[:])
	case Color:
		f.Uniform4f(loc, v.R, v.G, v.B, v.A)
	}
}

var ErrIncorrectLocation = errors.New("incorrect uniform location")

// UniformError reports a uniform name that the program does not declare.
type UniformError struct {
	Name    string
	Program int
}

func (e *UniformError) Error() string {
	return fmt.Sprintf("rtui: uniform %q of shader %d: %v", e.Name, e.Program, ErrIncorrectLocation)
}

func (e *UniformError) Unwrap() error { return ErrIncorrectLocation }

// Uniform is a value bound to one location of one program. It is uploaded
// only when it changed since the last upload.
type Uniform[T Value] struct {
	value    T
	location glapi.UniformLocation
	program  glapi.Program
	accepted bool
}

// SetValue replaces the value. Setting an equal value keeps the uniform
// synchronized.
func (u *Uniform[T]) SetValue(v T) {
	if v == u.value {
		return
	}
	u.value = v
	u.accepted = false
}

func (u *Uniform[T]) Value() T { return u.value }

// Update lets fn modify the value in place and always marks it changed.
func (u *Uniform[T]) Update(fn func(*T)) {
	fn(&u.value)
	u.accepted = false
}

func (u *Uniform[T]) Location() glapi.UniformLocation { return u.location }
func (u *Uniform[T]) Synchronized() bool              { return u.accepted }

// Accept uploads the value if it changed. The owning program must be the
// current program of s.
func (u *Uniform[T]) Accept(s *ShaderSet) {
	if u.accepted {
		return
	}
	active := s.Active()
	if active == nil || active.id != u.program {
		used, _ := s.Used()
		panic(fmt.Sprintf("rtui: shader %d is not used (used: %d)", u.program, used))
	}
	upload(s.f, u.location, u.value)
	u.accepted = true
}

type sharedLocation struct {
	location glapi.UniformLocation
	program  int
	accepted bool
}

// SharedUniform is one value used by several programs, each at its own
// location and each synchronized independently.
type SharedUniform[T Value] struct {
	value T
	data  []sharedLocation
}

// SetValue replaces the value and invalidates every program's copy unless
// the value is unchanged.
func (u *SharedUniform[T]) SetValue(v T) {
	if v == u.value {
		return
	}
	u.value = v
	u.invalidate()
}

func (u *SharedUniform[T]) Value() T { return u.value }

// Update lets fn modify the value in place and always marks it changed.
func (u *SharedUniform[T]) Update(fn func(*T)) {
	fn(&u.value)
	u.invalidate()
}

func (u *SharedUniform[T]) invalidate() {
	for i := range u.data {
		u.data[i].accepted = false
	}
}

// Locations returns the location of the uniform in each listed program,
// keyed by program index.
func (u *SharedUniform[T]) Locations() map[int]glapi.UniformLocation {
	res := make(map[int]glapi.UniformLocation, len(u.data))
	for _, d := range u.data {
		res[d.program] = d.location
	}
	return res
}

// Synchronized reports whether program holds the current value. Programs
// that don't use the uniform are never synchronized.
func (u *SharedUniform[T]) Synchronized(program int) bool {
	for _, d := range u.data {
		if d.program == program {
			return d.accepted
		}
	}
	return false
}

// Accept uploads the value to the current program of s if that program
// uses the uniform and its copy is stale.
func (u *SharedUniform[T]) Accept(s *ShaderSet) {
	used, ok := s.Used()
	if !ok {
		panic("rtui: shader is not used")
	}
	for i := range u.data {
		d := &u.data[i]
		if d.program != used {
			continue
		}
		if !d.accepted {
			upload(s.f, d.location, u.value)
			d.accepted = true
		}
		return
	}
}
