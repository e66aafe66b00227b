package rtui

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a straight (not premultiplied) RGBA color with components in [0..1].
type Color struct {
	R, G, B, A float32
}

// RGB returns a color value from red, green, blue values. Alpha will be set to 255 (1.0f).
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// RGBA returns a color value from red, green, blue and alpha values.
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGBAf returns a color value from red, green, blue and alpha values.
func RGBAf(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// MONO returns color value specified by intensity value.
func MONO(i, alpha uint8) Color {
	return RGBA(i, i, i, alpha)
}

func Black() Color { return RGB(0, 0, 0) }
func White() Color { return RGB(255, 255, 255) }
func Red() Color   { return RGB(255, 0, 0) }
func Green() Color { return RGB(0, 255, 0) }
func Blue() Color  { return RGB(0, 0, 255) }

// TransRGBA sets transparency of a color value.
func (c Color) TransRGBA(a uint8) Color {
	c.A = float32(a) / 255.0
	return c
}

// Bytes returns the color quantized to 8 bits per channel.
func (c Color) Bytes() (r, g, b, a uint8) {
	q := func(v float32) uint8 {
		return uint8(clampF(v, 0, 1)*255 + 0.5)
	}
	return q(c.R), q(c.G), q(c.B), q(c.A)
}

// LerpRGBA linearly interpolates from color c0 to c1, and returns resulting color value.
func LerpRGBA(c0, c1 Color, u float32) Color {
	u = clampF(u, 0.0, 1.0)
	oneMinus := 1 - u
	return Color{
		R: c0.R*oneMinus + c1.R*u,
		G: c0.G*oneMinus + c1.G*u,
		B: c0.B*oneMinus + c1.B*u,
		A: c0.A*oneMinus + c1.A*u,
	}
}

// MarshalText encodes the color as "#rrggbbaa".
func (c Color) MarshalText() ([]byte, error) {
	r, g, b, a := c.Bytes()
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)), nil
}

// UnmarshalText accepts "#rgb", "#rrggbb" and "#rrggbbaa".
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return fmt.Errorf("rtui: invalid color %q", text)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("rtui: invalid color %q: %w", text, err)
	}
	*c = RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
	return nil
}
