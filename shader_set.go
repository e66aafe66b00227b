package rtui

import (
	"fmt"
	"io/fs"

	"github.com/nanolsn/rtui/glapi"
)

// ShaderSet owns an ordered list of programs and is the only place that
// changes the current program.
type ShaderSet struct {
	f        glapi.Functions
	programs []*ShaderProgram
	used     int
}

func NewShaderSet(f glapi.Functions) *ShaderSet {
	return &ShaderSet{f: f, used: -1}
}

// Add compiles and links a program and appends it. The current program
// does not change.
func (s *ShaderSet) Add(vs, fs string) error {
	p, err := NewShaderProgram(s.f, vs, fs)
	if err != nil {
		return err
	}
	s.programs = append(s.programs, p)
	return nil
}

// AddFS is Add with the sources read from fsys.
func (s *ShaderSet) AddFS(fsys fs.FS, vsName, fsName string) error {
	vs, err := fs.ReadFile(fsys, vsName)
	if err != nil {
		return &ShaderError{Kind: IOError, Stage: "vert", Err: err}
	}
	fragment, err := fs.ReadFile(fsys, fsName)
	if err != nil {
		return &ShaderError{Kind: IOError, Stage: "frag", Err: err}
	}
	return s.Add(string(vs), string(fragment))
}

func (s *ShaderSet) Len() int { return len(s.programs) }

// Program returns the i-th program.
func (s *ShaderSet) Program(i int) *ShaderProgram { return s.programs[i] }

// Use makes the i-th program current. Nothing is sent to the driver if it
// already is.
func (s *ShaderSet) Use(i int) {
	if i < 0 || i >= len(s.programs) {
		panic(fmt.Sprintf("rtui: shader index %d out of range [0:%d]", i, len(s.programs)))
	}
	if s.used == i {
		return
	}
	s.f.UseProgram(s.programs[i].id)
	s.used = i
}

// Unuse leaves no program current.
func (s *ShaderSet) Unuse() {
	if s.used < 0 {
		return
	}
	s.f.UseProgram(0)
	s.used = -1
}

// Used returns the index of the current program.
func (s *ShaderSet) Used() (int, bool) {
	return s.used, s.used >= 0
}

// Active returns the current program or nil.
func (s *ShaderSet) Active() *ShaderProgram {
	if s.used < 0 {
		return nil
	}
	return s.programs[s.used]
}

// GetUniform resolves name in the current program.
func (s *ShaderSet) GetUniform(name string) glapi.UniformLocation {
	p := s.Active()
	if p == nil {
		panic("rtui: shader is not used")
	}
	return p.GetUniform(name)
}

// Delete unbinds and deletes every program.
func (s *ShaderSet) Delete() {
	s.Unuse()
	for _, p := range s.programs {
		p.delete()
	}
	s.programs = nil
}

// MakeUniform binds name of the current program to a cached value.
func MakeUniform[T Value](s *ShaderSet, value T, name string) (*Uniform[T], error) {
	loc := s.GetUniform(name)
	if loc < 0 {
		used, _ := s.Used()
		return nil, &UniformError{Name: name, Program: used}
	}
	return &Uniform[T]{
		value:    value,
		location: loc,
		program:  s.Active().id,
	}, nil
}

// MakeShared binds name of every listed program to one cached value. The
// listed programs are made current in turn.
func MakeShared[T Value](s *ShaderSet, value T, name string, programs ...int) (*SharedUniform[T], error) {
	u := &SharedUniform[T]{value: value}
	for _, i := range programs {
		s.Use(i)
		loc := s.GetUniform(name)
		if loc < 0 {
			return nil, &UniformError{Name: name, Program: i}
		}
		u.data = append(u.data, sharedLocation{location: loc, program: i})
	}
	return u, nil
}
