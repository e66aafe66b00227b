// Package scene is the demo shared by the sample binaries.
package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/nanolsn/rtui"
)

//go:embed sample.toml
var defaultConfig []byte

var ErrInvalidWindow = errors.New("window size must be positive")

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	VSync  bool   `toml:"vsync"`
}

// Config is the sample configuration file.
type Config struct {
	Window WindowConfig `toml:"window"`
	Render rtui.Config  `toml:"render"`
}

// DefaultConfig returns the embedded sample.toml.
func DefaultConfig() Config {
	cfg, err := LoadConfig(bytes.NewReader(defaultConfig))
	if err != nil {
		panic(err)
	}
	return cfg
}

func LoadConfig(r io.Reader) (Config, error) {
	cfg := Config{
		Window: WindowConfig{Title: "rtui", Width: 640, Height: 480},
		Render: rtui.DefaultConfig(),
	}
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("scene: config: %w", err)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return Config{}, fmt.Errorf("scene: config: %w (got %d x %d)", ErrInvalidWindow, cfg.Window.Width, cfg.Window.Height)
	}
	if err := cfg.Render.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads path, or the embedded defaults when path is empty.
func LoadConfigFile(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("scene: config: %w", err)
	}
	defer file.Close()
	return LoadConfig(file)
}
