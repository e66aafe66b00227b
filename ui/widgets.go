package ui

import (
	"github.com/nanolsn/rtui"
)

// Text prints a string.
type Text string

func (t Text) Draw(r *rtui.Render, p rtui.DrawParameters) {
	r.Print(string(t), p)
}

// Fill is a solid rectangle placed inside the frame. A zero size fills the
// whole frame.
type Fill struct {
	Size rtui.Vec2[int]
}

func (f Fill) Draw(r *rtui.Render, p rtui.DrawParameters) {
	if f.Size == (rtui.Vec2[int]{}) {
		p.Frame.Draw(r, p)
		return
	}
	f.rect(p).Draw(r, p)
}

func (f Fill) rect(p rtui.DrawParameters) rtui.Rect[int] {
	return p.Position.Rect(p.Frame, f.Size)
}

// Image draws a texture at its natural size, tinted by the inherited color.
type Image struct {
	Texture *rtui.Texture
}

// LoadImage decodes the file at path into a texture.
func LoadImage(r *rtui.Render, path string) (*Image, error) {
	tex, err := rtui.LoadTexture(r.Functions(), path)
	if err != nil {
		return nil, err
	}
	return &Image{Texture: tex}, nil
}

func (img *Image) Draw(r *rtui.Render, p rtui.DrawParameters) {
	rect := p.Position.Rect(p.Frame, img.Texture.Size())
	r.SetColor(p.Color)
	r.SetTexture(img.Texture)
	r.DrawRect(rtui.CastRect[float32](rect))
	r.UnsetTexture()
}

// Delete releases the texture.
func (img *Image) Delete() { img.Texture.Delete() }

// Root paints the background and then its children over the whole render
// area.
type Root struct {
	Background rtui.Color
	Children   Group
}

func NewRoot(bg rtui.Color, children ...rtui.Drawer) *Root {
	return &Root{Background: bg, Children: children}
}

// Add appends a child drawn after the existing ones.
func (root *Root) Add(d rtui.Drawer) { root.Children = append(root.Children, d) }

func (root *Root) Draw(r *rtui.Render, p rtui.DrawParameters) {
	r.Clear(root.Background)
	root.Children.Draw(r, p)
}
