package rtui

import "github.com/nanolsn/rtui/glapi"

const (
	vertexFloats = 4
	vertexStride = vertexFloats * 4
	quadVertices = 4
)

// rectRender draws textured quads from one dynamic vertex buffer holding
// four (x, y, s, t) vertices.
type rectRender struct {
	f        glapi.Functions
	buffer   glapi.Buffer
	vertexes [quadVertices * vertexFloats]float32
}

func newRectRender(f glapi.Functions) *rectRender {
	r := &rectRender{f: f, buffer: f.CreateBuffer()}
	f.BindBuffer(glapi.ARRAY_BUFFER, r.buffer)
	f.BufferData(glapi.ARRAY_BUFFER, len(r.vertexes)*4, glapi.DYNAMIC_DRAW)
	f.BindBuffer(glapi.ARRAY_BUFFER, 0)
	return r
}

var fullST = Rect[float32]{Width: 1, Height: 1}

// draw draws rect in device coordinates. A nil st samples the whole texture.
// flipV swaps the top and bottom texture coordinates.
func (r *rectRender) draw(rect Rect[float32], st *Rect[float32], flipV bool) {
	uv := fullST
	if st != nil {
		uv = *st
	}
	top, bot := uv.Top(), uv.Bot()
	if flipV {
		top, bot = bot, top
	}

	v := r.vertexes[:0]
	v = append(v, rect.Left(), rect.Top(), uv.Left(), top)
	v = append(v, rect.Left(), rect.Bot(), uv.Left(), bot)
	v = append(v, rect.Right(), rect.Bot(), uv.Right(), bot)
	v = append(v, rect.Right(), rect.Top(), uv.Right(), top)

	f := r.f
	f.BindBuffer(glapi.ARRAY_BUFFER, r.buffer)
	f.EnableVertexAttribArray(attribPos)
	f.EnableVertexAttribArray(attribST)
	f.VertexAttribPointer(attribPos, 2, glapi.FLOAT, false, vertexStride, 0)
	f.VertexAttribPointer(attribST, 2, glapi.FLOAT, false, vertexStride, 8)
	f.BufferSubData(glapi.ARRAY_BUFFER, 0, v)
	f.DrawArrays(glapi.TRIANGLE_FAN, 0, quadVertices)
}

func (r *rectRender) delete() {
	if r.buffer == 0 {
		panic("rtui: vertex buffer already deleted")
	}
	r.f.BindBuffer(glapi.ARRAY_BUFFER, 0)
	r.f.DeleteBuffer(r.buffer)
	r.buffer = 0
}
