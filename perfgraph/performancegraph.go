// Package perfgraph keeps a short history of frame times and draws it as a
// bar graph with rtui.
package perfgraph

import (
	"fmt"
	"time"

	"github.com/nanolsn/rtui"
)

const historyCount = 100

type GraphRenderStyle int

const (
	RenderFPS GraphRenderStyle = iota
	RenderMS
	RenderPercent
)

var (
	backgroundColor = rtui.Black().TransRGBA(128)
	graphColor      = rtui.RGBA(255, 192, 0, 128)
	titleTextColor  = rtui.RGBA(255, 192, 0, 128)
	valueTextColor  = rtui.MONO(240, 255)
)

// PerfGraph is a ring of the last frame times, in seconds.
type PerfGraph struct {
	style  GraphRenderStyle
	name   string
	values [historyCount]float32
	head   int
	size   rtui.Vec2[int]

	now            func() time.Time
	startTime      time.Time
	lastUpdateTime time.Time
}

func NewPerfGraph(style GraphRenderStyle, name string) *PerfGraph {
	return newPerfGraph(style, name, time.Now)
}

func newPerfGraph(style GraphRenderStyle, name string, now func() time.Time) *PerfGraph {
	t := now()
	return &PerfGraph{
		style:          style,
		name:           name,
		size:           rtui.V2(200, 35),
		now:            now,
		startTime:      t,
		lastUpdateTime: t,
	}
}

// SetSize sets the graph size in logical pixels.
func (pg *PerfGraph) SetSize(size rtui.Vec2[int]) { pg.size = size }

func (pg *PerfGraph) Size() rtui.Vec2[int] { return pg.size }

// UpdateGraph records the time since the previous call as a frame time.
func (pg *PerfGraph) UpdateGraph() (timeFromStart, frameTime float32) {
	timeNow := pg.now()
	timeFromStart = float32(timeNow.Sub(pg.startTime).Seconds())
	frameTime = float32(timeNow.Sub(pg.lastUpdateTime).Seconds())
	pg.lastUpdateTime = timeNow
	pg.Add(frameTime)
	return
}

// Add pushes a sample, dropping the oldest one.
func (pg *PerfGraph) Add(value float32) {
	pg.head = (pg.head + 1) % historyCount
	pg.values[pg.head] = value
}

func (pg *PerfGraph) GetGraphAverage() float32 {
	var average float32
	for _, value := range pg.values {
		average += value
	}
	return average / float32(historyCount)
}

// sample returns the i-th oldest value scaled into [0..1] for the style.
func (pg *PerfGraph) sample(i int) float32 {
	v := pg.values[(pg.head+1+i)%historyCount]
	var limit float32
	switch pg.style {
	case RenderFPS:
		v = 1.0 / (0.00001 + v)
		limit = 80
	case RenderPercent:
		limit = 100
	case RenderMS:
		v *= 1000
		limit = 20
	}
	if v > limit {
		v = limit
	}
	return v / limit
}

func (pg *PerfGraph) label() string {
	avg := pg.GetGraphAverage()
	switch pg.style {
	case RenderFPS:
		return fmt.Sprintf("%.2f FPS", 1.0/avg)
	case RenderPercent:
		return fmt.Sprintf("%.1f %%", avg)
	}
	return fmt.Sprintf("%.2f ms", avg*1000.0)
}

// Draw paints the background, one bar per non-empty sample and the labels,
// placed in the frame by the inherited position.
func (pg *PerfGraph) Draw(r *rtui.Render, p rtui.DrawParameters) {
	frame := p.Position.Rect(p.Frame, pg.size)

	r.UnsetTexture()
	r.SetColor(backgroundColor)
	r.DrawRect(rtui.CastRect[float32](frame))

	r.SetColor(graphColor)
	w := float32(frame.Width) / historyCount
	h := float32(frame.Height)
	for i := 0; i < historyCount; i++ {
		vh := pg.sample(i) * h
		if vh <= 0 {
			continue
		}
		r.DrawRect(rtui.Rect[float32]{
			X:      float32(frame.X) + float32(i)*w,
			Y:      float32(frame.Y),
			Width:  w,
			Height: vh,
		})
	}

	text := p
	text.Frame = frame
	if len(pg.name) > 0 {
		text.Color = titleTextColor
		text.Position = rtui.Position{Anchor: rtui.Left, Pad: 3}
		r.Print(pg.name, text)
	}
	text.Color = valueTextColor
	text.Position = rtui.Position{Anchor: rtui.Right, Pad: 3}
	r.Print(pg.label(), text)
}
