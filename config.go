package rtui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

var ErrInvalidPixelScale = errors.New("pixel scale must be positive")

// Config holds the settings of a Render.
type Config struct {
	// PixelScale is the number of window pixels per logical pixel.
	PixelScale float32 `toml:"pixel_scale"`
	// Background is the color the window is cleared to around the frame.
	Background  Color         `toml:"background"`
	ColorFormat TextureFormat `toml:"color_format"`
	DepthFormat DepthFormat   `toml:"depth_format"`
	// Debug checks for driver errors after every frame and logs them.
	Debug bool `toml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		PixelScale:  1,
		Background:  Black(),
		ColorFormat: FormatRGBA,
		DepthFormat: Depth24,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.PixelScale <= 0 {
		return fmt.Errorf("rtui: config: %w (got %v)", ErrInvalidPixelScale, c.PixelScale)
	}
	if !c.ColorFormat.valid() {
		return fmt.Errorf("rtui: config: color format: %w", ErrUnsupportedFormat)
	}
	if !c.DepthFormat.valid() {
		return fmt.Errorf("rtui: config: depth format: %w", ErrUnsupportedFormat)
	}
	return nil
}

// LoadConfig decodes TOML on top of DefaultConfig and validates the result.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("rtui: config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfigFile(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("rtui: config: %w", err)
	}
	defer file.Close()
	return LoadConfig(file)
}
