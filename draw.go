package rtui

// Drawer is anything that can draw itself with inherited parameters.
type Drawer interface {
	Draw(r *Render, p DrawParameters)
}

// DrawerFunc adapts a function to Drawer.
type DrawerFunc func(r *Render, p DrawParameters)

func (fn DrawerFunc) Draw(r *Render, p DrawParameters) { fn(r, p) }

type FontParameters struct {
	Monospaced bool
	Shadow     *Shadow
}

// DrawParameters are passed down from a parent to its children.
type DrawParameters struct {
	Color    Color
	Position Position
	// Frame is the area the drawer is placed in, in logical pixels.
	Frame Rect[int]
	Font  FontParameters
}

// Draw fills r with the inherited color.
func (r Rect[T]) Draw(render *Render, p DrawParameters) {
	render.SetColor(p.Color)
	render.UnsetTexture()
	render.DrawRect(CastRect[float32](r))
}
