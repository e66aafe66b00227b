package scene

import (
	"image"
	"image/color"

	"github.com/nanolsn/rtui"
	"github.com/nanolsn/rtui/perfgraph"
	"github.com/nanolsn/rtui/ui"
)

const checkerSize = 16

// Scene is a static UI tree plus a frame time graph.
type Scene struct {
	root  *ui.Root
	graph *perfgraph.PerfGraph
	image *ui.Image
}

func New(r *rtui.Render, bg rtui.Color) (*Scene, error) {
	tex, err := rtui.NewTextureFromImage(r.Functions(), checker(checkerSize))
	if err != nil {
		return nil, err
	}
	s := &Scene{
		graph: perfgraph.NewPerfGraph(perfgraph.RenderMS, "Frame Time"),
		image: &ui.Image{Texture: tex},
	}
	s.graph.SetSize(rtui.V2(100, 20))
	s.root = ui.NewRoot(bg,
		ui.NewCol(rtui.LerpRGBA(bg, rtui.White(), 0.2), ui.Fill{Size: rtui.V2(160, 90)}),
		s.image,
		ui.AtTop(8, ui.NewFont(ui.Text("rtui")).Shadow(rtui.V2(1, -1), rtui.Black())),
		ui.AtBot(8, ui.NewCol(rtui.RGB(255, 192, 0), ui.NewFont(ui.Text("0123456789")).Monospaced())),
		ui.AtLeft(4, s.graph),
	)
	return s, nil
}

// Frame records the frame time and draws one frame.
func (s *Scene) Frame(r *rtui.Render) {
	s.graph.UpdateGraph()
	r.BeginDrawFrame()
	r.Draw(s.root)
	r.EndDrawFrame()
}

func (s *Scene) Delete() { s.image.Delete() }

func checker(n int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if (x/4+y/4)%2 == 1 {
				c = color.RGBA{R: 200, G: 80, B: 60, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
