package rtui

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/nanolsn/rtui/glapi"
)

// TextureFormat is the pixel layout of a color texture.
type TextureFormat int

const (
	FormatR TextureFormat = iota
	FormatRG
	FormatRGB
	FormatRGBA
)

var textureFormatNames = [...]string{"r", "rg", "rgb", "rgba"}

func (f TextureFormat) valid() bool {
	return f >= FormatR && f <= FormatRGBA
}

func (f TextureFormat) String() string {
	if !f.valid() {
		return fmt.Sprintf("TextureFormat(%d)", int(f))
	}
	return textureFormatNames[f]
}

// MarshalText implements encoding.TextMarshaler.
func (f TextureFormat) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, ErrUnsupportedFormat
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *TextureFormat) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, n := range textureFormatNames {
		if n == name {
			*f = TextureFormat(i)
			return nil
		}
	}
	return fmt.Errorf("rtui: unknown texture format %q", text)
}

func (f TextureFormat) glFormat() glapi.Enum {
	switch f {
	case FormatR:
		return glapi.RED
	case FormatRG:
		return glapi.RG
	case FormatRGB:
		return glapi.RGB
	}
	return glapi.RGBA
}

// BytesPerPixel returns the size of one pixel in raw data.
func (f TextureFormat) BytesPerPixel() int {
	return int(f) + 1
}

var (
	ErrNegativeSize      = errors.New("negative size")
	ErrWrongRawSize      = errors.New("raw data size does not match texture size")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// TextureError is returned when a texture can't be created.
type TextureError struct {
	Path string
	Err  error
}

func (e *TextureError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("rtui: texture %s: %v", e.Path, e.Err)
	}
	return "rtui: texture: " + e.Err.Error()
}

func (e *TextureError) Unwrap() error { return e.Err }

// Texture owns one GL texture object.
type Texture struct {
	f      glapi.Functions
	id     glapi.Texture
	size   Vec2[int]
	format TextureFormat
}

// NewTexture creates a texture with undefined contents.
func NewTexture(f glapi.Functions, size Vec2[int], format TextureFormat) (*Texture, error) {
	return NewTextureFromRaw(f, nil, size, format)
}

// NewTextureFromRaw creates a texture from tightly packed rows of pixels.
// A nil raw leaves the contents undefined.
func NewTextureFromRaw(f glapi.Functions, raw []byte, size Vec2[int], format TextureFormat) (*Texture, error) {
	if size.Negative() {
		return nil, &TextureError{Err: ErrNegativeSize}
	}
	if !format.valid() {
		return nil, &TextureError{Err: ErrUnsupportedFormat}
	}
	if raw != nil && len(raw) != size.X*size.Y*format.BytesPerPixel() {
		return nil, &TextureError{Err: ErrWrongRawSize}
	}

	tex := &Texture{
		f:      f,
		id:     f.CreateTexture(),
		size:   size,
		format: format,
	}
	f.BindTexture(glapi.TEXTURE_2D, tex.id)
	f.PixelStorei(glapi.UNPACK_ALIGNMENT, 1)
	f.TexImage2D(glapi.TEXTURE_2D, 0, format.glFormat(), size.X, size.Y, format.glFormat(), glapi.UNSIGNED_BYTE, raw)
	tex.setParameters()
	return tex, nil
}

// NewTextureFromImage uploads img. Gray and alpha images become R textures,
// everything else is converted to non-premultiplied RGBA.
func NewTextureFromImage(f glapi.Functions, img image.Image) (*Texture, error) {
	b := img.Bounds()
	size := V2(b.Dx(), b.Dy())

	switch m := img.(type) {
	case *image.Gray:
		return NewTextureFromRaw(f, packRows(m.Pix, m.Stride, size.X, size.Y), size, FormatR)
	case *image.Alpha:
		return NewTextureFromRaw(f, packRows(m.Pix, m.Stride, size.X, size.Y), size, FormatR)
	}

	rgba, ok := img.(*image.NRGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	return NewTextureFromRaw(f, packRows(rgba.Pix, rgba.Stride, size.X*4, size.Y), size, FormatRGBA)
}

// LoadTexture decodes an image file (png, jpeg, gif, bmp, tiff, webp) and uploads it.
func LoadTexture(f glapi.Functions, path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &TextureError{Path: path, Err: err}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, &TextureError{Path: path, Err: err}
	}
	tex, err := NewTextureFromImage(f, img)
	if err != nil {
		var texErr *TextureError
		if errors.As(err, &texErr) {
			texErr.Path = path
		}
		return nil, err
	}
	return tex, nil
}

func packRows(pix []byte, stride, rowBytes, rows int) []byte {
	if stride == rowBytes {
		return pix[:rowBytes*rows]
	}
	out := make([]byte, 0, rowBytes*rows)
	for y := 0; y < rows; y++ {
		out = append(out, pix[y*stride:y*stride+rowBytes]...)
	}
	return out
}

func (t *Texture) setParameters() {
	wrap := glapi.REPEAT
	if t.f.Profile() == glapi.ProfileES2 && (nearestPow2(t.size.X) != t.size.X || nearestPow2(t.size.Y) != t.size.Y) {
		dumpLog(levelDebug, "Repeat X/Y is not supported for non power-of-two textures (%d x %d)", t.size.X, t.size.Y)
		wrap = glapi.CLAMP_TO_EDGE
	}
	t.f.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_WRAP_S, wrap)
	t.f.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_WRAP_T, wrap)
	t.f.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_MIN_FILTER, glapi.NEAREST)
	t.f.TexParameteri(glapi.TEXTURE_2D, glapi.TEXTURE_MAG_FILTER, glapi.NEAREST)
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit int) {
	t.f.ActiveTexture(glapi.TEXTURE0 + glapi.Enum(unit))
	t.f.BindTexture(glapi.TEXTURE_2D, t.id)
}

func (t *Texture) ID() glapi.Texture     { return t.id }
func (t *Texture) Size() Vec2[int]       { return t.size }
func (t *Texture) Width() int            { return t.size.X }
func (t *Texture) Height() int           { return t.size.Y }
func (t *Texture) Format() TextureFormat { return t.format }

// Delete releases the texture. A texture must be deleted exactly once.
func (t *Texture) Delete() {
	if t.id == 0 {
		panic("rtui: texture already deleted")
	}
	t.f.BindTexture(glapi.TEXTURE_2D, 0)
	t.f.DeleteTexture(t.id)
	t.id = 0
}
