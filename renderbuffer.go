package rtui

import (
	"fmt"
	"strings"

	"github.com/nanolsn/rtui/glapi"
)

// DepthFormat is the storage format of a depth and/or stencil renderbuffer.
type DepthFormat int

const (
	Depth16 DepthFormat = iota
	Depth24
	DepthF32
	Depth24Stencil8
	DepthF32Stencil8
	Stencil8
)

var depthFormatNames = [...]string{"depth16", "depth24", "depthf32", "depth24stencil8", "depthf32stencil8", "stencil8"}

func (f DepthFormat) valid() bool {
	return f >= Depth16 && f <= Stencil8
}

func (f DepthFormat) String() string {
	if !f.valid() {
		return fmt.Sprintf("DepthFormat(%d)", int(f))
	}
	return depthFormatNames[f]
}

// MarshalText implements encoding.TextMarshaler.
func (f DepthFormat) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, ErrUnsupportedFormat
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *DepthFormat) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, n := range depthFormatNames {
		if n == name {
			*f = DepthFormat(i)
			return nil
		}
	}
	return fmt.Errorf("rtui: unknown depth format %q", text)
}

func (f DepthFormat) internalFormat() glapi.Enum {
	switch f {
	case Depth16:
		return glapi.DEPTH_COMPONENT16
	case Depth24:
		return glapi.DEPTH_COMPONENT24
	case DepthF32:
		return glapi.DEPTH_COMPONENT32F
	case Depth24Stencil8:
		return glapi.DEPTH24_STENCIL8
	case DepthF32Stencil8:
		return glapi.DEPTH32F_STENCIL8
	}
	return glapi.STENCIL_INDEX8
}

// Attachment returns the framebuffer attachment point the format binds to.
func (f DepthFormat) Attachment() glapi.Enum {
	switch f {
	case Depth16, Depth24, DepthF32:
		return glapi.DEPTH_ATTACHMENT
	case Depth24Stencil8, DepthF32Stencil8:
		return glapi.DEPTH_STENCIL_ATTACHMENT
	}
	return glapi.STENCIL_ATTACHMENT
}

// Renderbuffer owns one GL renderbuffer object. It can only be used as a
// framebuffer attachment.
type Renderbuffer struct {
	f      glapi.Functions
	id     glapi.Renderbuffer
	size   Vec2[int]
	format DepthFormat
}

// NewRenderbuffer allocates renderbuffer storage of the given size.
func NewRenderbuffer(f glapi.Functions, size Vec2[int], format DepthFormat) (*Renderbuffer, error) {
	if size.Negative() {
		return nil, ErrNegativeSize
	}
	if !format.valid() {
		return nil, ErrUnsupportedFormat
	}

	rb := &Renderbuffer{
		f:      f,
		id:     f.CreateRenderbuffer(),
		size:   size,
		format: format,
	}
	f.BindRenderbuffer(glapi.RENDERBUFFER, rb.id)
	f.RenderbufferStorage(glapi.RENDERBUFFER, format.internalFormat(), size.X, size.Y)
	return rb, nil
}

func (rb *Renderbuffer) ID() glapi.Renderbuffer { return rb.id }
func (rb *Renderbuffer) Size() Vec2[int]        { return rb.size }
func (rb *Renderbuffer) Format() DepthFormat    { return rb.format }

// Attachment returns the attachment point implied by the format.
func (rb *Renderbuffer) Attachment() glapi.Enum { return rb.format.Attachment() }

// Delete releases the renderbuffer. A renderbuffer must be deleted exactly once.
func (rb *Renderbuffer) Delete() {
	if rb.id == 0 {
		panic("rtui: renderbuffer already deleted")
	}
	rb.f.BindRenderbuffer(glapi.RENDERBUFFER, 0)
	rb.f.DeleteRenderbuffer(rb.id)
	rb.id = 0
}
