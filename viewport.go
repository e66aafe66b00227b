package rtui

import "github.com/nanolsn/rtui/glapi"

// Viewport mirrors the driver viewport.
type Viewport struct {
	f    glapi.Functions
	size Vec2[int]
}

// NewViewport sets the driver viewport to size.
func NewViewport(f glapi.Functions, size Vec2[int]) *Viewport {
	v := &Viewport{f: f, size: size}
	v.apply()
	return v
}

func (v *Viewport) Size() Vec2[int] { return v.size }

// Resize changes the viewport. Same size calls are ignored.
func (v *Viewport) Resize(size Vec2[int]) {
	if v.size == size {
		return
	}
	v.size = size
	v.apply()
}

func (v *Viewport) apply() {
	if v.size.Negative() {
		return
	}
	v.f.Viewport(0, 0, v.size.X, v.size.Y)
}
