// Package ui provides small composable drawers. Decorators override one
// field of the inherited rtui.DrawParameters and pass them to the wrapped
// drawer; leaves draw with whatever they receive.
package ui

import (
	"github.com/nanolsn/rtui"
)

// Col draws UI with its color replaced.
type Col struct {
	Color rtui.Color
	UI    rtui.Drawer
}

func NewCol(color rtui.Color, ui rtui.Drawer) *Col { return &Col{Color: color, UI: ui} }

func Black(ui rtui.Drawer) *Col { return NewCol(rtui.Black(), ui) }
func White(ui rtui.Drawer) *Col { return NewCol(rtui.White(), ui) }
func Red(ui rtui.Drawer) *Col   { return NewCol(rtui.Red(), ui) }
func Green(ui rtui.Drawer) *Col { return NewCol(rtui.Green(), ui) }
func Blue(ui rtui.Drawer) *Col  { return NewCol(rtui.Blue(), ui) }

func (c *Col) Draw(r *rtui.Render, p rtui.DrawParameters) {
	p.Color = c.Color
	c.UI.Draw(r, p)
}

// Pos draws UI with its position replaced.
type Pos struct {
	Position rtui.Position
	UI       rtui.Drawer
}

func NewPos(position rtui.Position, ui rtui.Drawer) *Pos {
	return &Pos{Position: position, UI: ui}
}

func Center(ui rtui.Drawer) *Pos { return NewPos(rtui.Position{Anchor: rtui.Center}, ui) }

func AtLeft(pad int, ui rtui.Drawer) *Pos {
	return NewPos(rtui.Position{Anchor: rtui.Left, Pad: pad}, ui)
}

func AtRight(pad int, ui rtui.Drawer) *Pos {
	return NewPos(rtui.Position{Anchor: rtui.Right, Pad: pad}, ui)
}

func AtBot(pad int, ui rtui.Drawer) *Pos {
	return NewPos(rtui.Position{Anchor: rtui.Bot, Pad: pad}, ui)
}

func AtTop(pad int, ui rtui.Drawer) *Pos {
	return NewPos(rtui.Position{Anchor: rtui.Top, Pad: pad}, ui)
}

func (d *Pos) Draw(r *rtui.Render, p rtui.DrawParameters) {
	p.Position = d.Position
	d.UI.Draw(r, p)
}

// Font draws UI with its font parameters replaced.
type Font struct {
	Params rtui.FontParameters
	UI     rtui.Drawer
}

func NewFont(ui rtui.Drawer) *Font { return &Font{UI: ui} }

// Monospaced returns a copy of f laying text out on a fixed grid.
func (f Font) Monospaced() *Font {
	f.Params.Monospaced = true
	return &f
}

// Shadow returns a copy of f drawing a shadow under the text.
func (f Font) Shadow(offset rtui.Vec2[int], color rtui.Color) *Font {
	f.Params.Shadow = &rtui.Shadow{Offset: offset, Color: color}
	return &f
}

func (f *Font) Draw(r *rtui.Render, p rtui.DrawParameters) {
	p.Font = f.Params
	f.UI.Draw(r, p)
}

// Group draws its drawers in order with the same parameters.
type Group []rtui.Drawer

func (g Group) Draw(r *rtui.Render, p rtui.DrawParameters) {
	for _, d := range g {
		d.Draw(r, p)
	}
}
