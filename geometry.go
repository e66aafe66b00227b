package rtui

// Number is the set of scalar types geometry can be expressed in.
type Number interface {
	~int | ~int32 | ~uint32 | ~float32 | ~float64
}

// Vec2 is a 2D vector or size.
type Vec2[T Number] struct {
	X, Y T
}

// V2 makes a Vec2.
func V2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// CastVec2 converts the components of v to U.
func CastVec2[U, T Number](v Vec2[T]) Vec2[U] {
	return Vec2[U]{U(v.X), U(v.Y)}
}

func (v Vec2[T]) Width() T  { return v.X }
func (v Vec2[T]) Height() T { return v.Y }

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }
func (v Vec2[T]) Mul(s T) Vec2[T]       { return Vec2[T]{v.X * s, v.Y * s} }
func (v Vec2[T]) Div(s T) Vec2[T]       { return Vec2[T]{v.X / s, v.Y / s} }
func (v Vec2[T]) Half() Vec2[T]         { return v.Div(2) }

// Negative reports whether either component is below zero.
func (v Vec2[T]) Negative() bool {
	return v.X < 0 || v.Y < 0
}

// Rect returns the rectangle of size v at the origin.
func (v Vec2[T]) Rect() Rect[T] {
	return Rect[T]{Width: v.X, Height: v.Y}
}

// Rect is an axis aligned rectangle. Y grows upwards: Bot is Y and Top is Y+Height.
type Rect[T Number] struct {
	X, Y          T
	Width, Height T
}

// NewRect makes a Rect from a position and a size.
func NewRect[T Number](pos, size Vec2[T]) Rect[T] {
	return Rect[T]{pos.X, pos.Y, size.X, size.Y}
}

// CastRect converts the components of r to U.
func CastRect[U, T Number](r Rect[T]) Rect[U] {
	return Rect[U]{U(r.X), U(r.Y), U(r.Width), U(r.Height)}
}

func (r Rect[T]) Pos() Vec2[T]  { return Vec2[T]{r.X, r.Y} }
func (r Rect[T]) Size() Vec2[T] { return Vec2[T]{r.Width, r.Height} }
func (r Rect[T]) Left() T       { return r.X }
func (r Rect[T]) Right() T      { return r.X + r.Width }
func (r Rect[T]) Bot() T        { return r.Y }
func (r Rect[T]) Top() T        { return r.Y + r.Height }

// Translate moves the rectangle by d.
func (r Rect[T]) Translate(d Vec2[T]) Rect[T] {
	r.X += d.X
	r.Y += d.Y
	return r
}

// ContainsPoint reports whether p lies inside r, right and top edges excluded.
func (r Rect[T]) ContainsPoint(p Vec2[T]) bool {
	return r.Left() <= p.X && p.X < r.Right() &&
		r.Bot() <= p.Y && p.Y < r.Top()
}

// Intersects reports whether r and o overlap.
func (r Rect[T]) Intersects(o Rect[T]) bool {
	return r.Left() < o.Right() && o.Left() <= r.Right() &&
		r.Bot() < o.Top() && o.Bot() <= r.Top()
}

// Anchor selects where a Position places an element inside its frame.
type Anchor int

const (
	Center Anchor = iota
	Left
	Right
	Bot
	Top
)

// Position is an anchor with padding from the anchored edge.
type Position struct {
	Anchor Anchor
	Pad    int
}

// Rect places an element of the given size inside frame.
func (p Position) Rect(frame Rect[int], size Vec2[int]) Rect[int] {
	var pos Vec2[int]
	switch p.Anchor {
	case Left:
		pos = V2(p.Pad, frame.Height/2-size.Y/2)
	case Right:
		pos = V2(frame.Width-size.X-p.Pad, frame.Height/2-size.Y/2)
	case Bot:
		pos = V2(frame.Width/2-size.X/2, p.Pad)
	case Top:
		pos = V2(frame.Width/2-size.X/2, frame.Height-size.Y-p.Pad)
	default:
		pos = frame.Size().Half().Sub(size.Half())
	}
	return NewRect(pos.Add(frame.Pos()), size)
}
