package rtui

import (
	"errors"
	"fmt"

	"github.com/nanolsn/rtui/glapi"
)

var ErrFramebufferIncomplete = errors.New("framebuffer incomplete")

// FramebufferError is returned when a framebuffer or one of its attachments
// can't be created.
type FramebufferError struct {
	Op    string
	Index int
	Err   error
}

func (e *FramebufferError) Error() string {
	return fmt.Sprintf("rtui: framebuffer %d: %s: %v", e.Index, e.Op, e.Err)
}

func (e *FramebufferError) Unwrap() error { return e.Err }

// Framebuffer is an off-screen render target with color textures and at most
// one depth or stencil renderbuffer. Color texture i is attached at
// COLOR_ATTACHMENT0+i.
type Framebuffer struct {
	id           glapi.Framebuffer
	renderbuffer *Renderbuffer
	textures     []*Texture
	size         Vec2[int]
}

func (fb *Framebuffer) ID() glapi.Framebuffer       { return fb.id }
func (fb *Framebuffer) Size() Vec2[int]             { return fb.size }
func (fb *Framebuffer) Renderbuffer() *Renderbuffer { return fb.renderbuffer }
func (fb *Framebuffer) Textures() []*Texture        { return fb.textures }

// BindTextures binds the color textures to consecutive units starting at
// unit 0.
func (fb *Framebuffer) BindTextures() {
	for i, t := range fb.textures {
		t.Bind(i)
	}
}

func (fb *Framebuffer) delete(f glapi.Functions) {
	if fb.renderbuffer != nil {
		fb.renderbuffer.Delete()
		fb.renderbuffer = nil
	}
	for _, t := range fb.textures {
		t.Delete()
	}
	fb.textures = nil
	f.DeleteFramebuffer(fb.id)
	fb.id = 0
}

// FramebufferSet owns framebuffers and is the only place that changes the
// bound framebuffer. The default framebuffer is bound initially.
type FramebufferSet struct {
	f            glapi.Functions
	framebuffers []*Framebuffer
	bound        int
}

func NewFramebufferSet(f glapi.Functions) *FramebufferSet {
	return &FramebufferSet{f: f, bound: -1}
}

func (s *FramebufferSet) Len() int { return len(s.framebuffers) }

// AddFramebuffer creates a framebuffer without attachments and binds it.
func (s *FramebufferSet) AddFramebuffer(size Vec2[int]) (int, error) {
	idx := len(s.framebuffers)
	if size.Negative() {
		return 0, &FramebufferError{Op: "add", Index: idx, Err: ErrNegativeSize}
	}
	s.framebuffers = append(s.framebuffers, &Framebuffer{
		id:   s.f.CreateFramebuffer(),
		size: size,
	})
	s.Bind(idx)
	return idx, nil
}

// AddRenderbuffer attaches a renderbuffer of the bound framebuffer's size.
// A framebuffer holds at most one renderbuffer.
func (s *FramebufferSet) AddRenderbuffer(format DepthFormat) error {
	fb := s.Active()
	if fb.renderbuffer != nil {
		panic(fmt.Sprintf("rtui: framebuffer %d already has a renderbuffer", s.bound))
	}
	rb, err := NewRenderbuffer(s.f, fb.size, format)
	if err != nil {
		return &FramebufferError{Op: "add renderbuffer", Index: s.bound, Err: err}
	}
	s.f.FramebufferRenderbuffer(glapi.FRAMEBUFFER, rb.Attachment(), glapi.RENDERBUFFER, rb.id)
	fb.renderbuffer = rb
	return nil
}

// AddTexture attaches a color texture of the bound framebuffer's size at
// the next color attachment slot.
func (s *FramebufferSet) AddTexture(format TextureFormat) error {
	fb := s.Active()
	tex, err := NewTexture(s.f, fb.size, format)
	if err != nil {
		return &FramebufferError{Op: "add texture", Index: s.bound, Err: err}
	}
	attachment := glapi.COLOR_ATTACHMENT0 + glapi.Enum(len(fb.textures))
	s.f.FramebufferTexture2D(glapi.FRAMEBUFFER, attachment, glapi.TEXTURE_2D, tex.id, 0)
	fb.textures = append(fb.textures, tex)
	return nil
}

// Resize recreates the bound framebuffer at the new size. The attachment
// formats and their order are kept, the contents are not.
func (s *FramebufferSet) Resize(size Vec2[int]) error {
	fb := s.Active()
	if fb.size == size {
		return nil
	}
	if size.Negative() {
		return &FramebufferError{Op: "resize", Index: s.bound, Err: ErrNegativeSize}
	}

	var depth *DepthFormat
	if fb.renderbuffer != nil {
		format := fb.renderbuffer.format
		depth = &format
	}
	formats := make([]TextureFormat, len(fb.textures))
	for i, t := range fb.textures {
		formats[i] = t.format
	}

	dumpLog(levelDebug, "Recreating framebuffer %d: %d x %d -> %d x %d", s.bound, fb.size.X, fb.size.Y, size.X, size.Y)
	fb.delete(s.f)
	fb.id = s.f.CreateFramebuffer()
	fb.size = size
	s.f.BindFramebuffer(glapi.FRAMEBUFFER, fb.id)

	if depth != nil {
		if err := s.AddRenderbuffer(*depth); err != nil {
			return err
		}
	}
	for _, format := range formats {
		if err := s.AddTexture(format); err != nil {
			return err
		}
	}
	return nil
}

// Bind binds the i-th framebuffer unless it is already bound.
func (s *FramebufferSet) Bind(i int) {
	if i < 0 || i >= len(s.framebuffers) {
		panic(fmt.Sprintf("rtui: framebuffer index %d out of range [0:%d]", i, len(s.framebuffers)))
	}
	if s.bound == i {
		return
	}
	s.f.BindFramebuffer(glapi.FRAMEBUFFER, s.framebuffers[i].id)
	s.bound = i
}

// BindByID binds the framebuffer with the given handle. It reports false if
// the set doesn't own it.
func (s *FramebufferSet) BindByID(id glapi.Framebuffer) bool {
	for i, fb := range s.framebuffers {
		if fb.id == id {
			s.Bind(i)
			return true
		}
	}
	return false
}

// BindDefault binds the window framebuffer unless it is already bound.
func (s *FramebufferSet) BindDefault() {
	if s.bound < 0 {
		return
	}
	s.f.BindFramebuffer(glapi.FRAMEBUFFER, 0)
	s.bound = -1
}

// Bound returns the index of the bound framebuffer. ok is false while the
// default framebuffer is bound.
func (s *FramebufferSet) Bound() (i int, ok bool) {
	return s.bound, s.bound >= 0
}

// Framebuffer returns the i-th framebuffer.
func (s *FramebufferSet) Framebuffer(i int) *Framebuffer { return s.framebuffers[i] }

// Active returns the bound framebuffer.
func (s *FramebufferSet) Active() *Framebuffer {
	if s.bound < 0 {
		panic("rtui: framebuffer not bound")
	}
	return s.framebuffers[s.bound]
}

// IsComplete reports whether the bound framebuffer can be rendered to.
func (s *FramebufferSet) IsComplete() bool {
	if s.bound < 0 {
		panic("rtui: framebuffer not bound")
	}
	status := s.f.CheckFramebufferStatus(glapi.FRAMEBUFFER)
	if status != glapi.FRAMEBUFFER_COMPLETE {
		dumpLog(levelError, "Framebuffer %d is incomplete: status %#04x", s.bound, uint32(status))
		return false
	}
	return true
}

// Delete binds the window framebuffer and deletes every framebuffer with its
// attachments.
func (s *FramebufferSet) Delete() {
	s.f.BindFramebuffer(glapi.FRAMEBUFFER, 0)
	s.bound = -1
	for _, fb := range s.framebuffers {
		fb.delete(s.f)
	}
	s.framebuffers = nil
}
