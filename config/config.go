// Package config holds the demo application settings. Values start from
// Default, are overlaid by an optional TOML file and finally by G3D_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/g3d/backend"
)

// EnvPrefix prefixes every environment override, e.g. G3D_WIDTH.
const EnvPrefix = "G3D"

// Errors returned by Validate.
var (
	ErrInvalidSize     = errors.New("config: window size must be positive")
	ErrInvalidBackends = errors.New("config: exactly four quadrant backends are required")
	ErrInvalidCamera   = errors.New("config: move step and sensitivity must be positive")
	ErrInvalidFontSize = errors.New("config: font size must be positive")
)

// Config is the application configuration.
type Config struct {
	Title  string `toml:"title" envconfig:"TITLE"`
	Width  int    `toml:"width" envconfig:"WIDTH"`
	Height int    `toml:"height" envconfig:"HEIGHT"`

	// Backends assigns a backend to each quadrant: top-left, top-right,
	// bottom-left, bottom-right.
	Backends []backend.Backend `toml:"backends" envconfig:"BACKENDS"`

	Camera Camera `toml:"camera" envconfig:"CAMERA"`

	FontSize       int        `toml:"font_size" envconfig:"FONT_SIZE"`
	LogLevel       slog.Level `toml:"log_level" envconfig:"LOG_LEVEL"`
	ReportInterval Duration   `toml:"report_interval" envconfig:"REPORT_INTERVAL"`
	ShowStats      bool       `toml:"show_stats" envconfig:"SHOW_STATS"`
}

// Duration is a time.Duration written as a string such as "5s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("config: duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Camera holds the initial camera state.
type Camera struct {
	Position    [3]float32 `toml:"position" envconfig:"-"`
	LookAt      [3]float32 `toml:"look_at" envconfig:"-"`
	MoveStep    float32    `toml:"move_step" envconfig:"MOVE_STEP"`
	Sensitivity float32    `toml:"sensitivity" envconfig:"SENSITIVITY"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title:  "g3d",
		Width:  1280,
		Height: 720,
		Backends: []backend.Backend{
			backend.OpenGL, backend.Vulkan, backend.DirectX11, backend.DirectX12,
		},
		Camera: Camera{
			Position:    [3]float32{0, -5, 1},
			LookAt:      [3]float32{0, 0, 0},
			MoveStep:    0.1,
			Sensitivity: 0.0025,
		},
		FontSize:       16,
		LogLevel:       slog.LevelInfo,
		ReportInterval: Duration(5 * time.Second),
		ShowStats:      true,
	}
}

// Load returns Default overlaid with the TOML file at path, when path is
// not empty, and with the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := Decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("config: environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// Decode overlays TOML data onto cfg.
func Decode(data []byte, cfg *Config) error {
	return toml.Unmarshal(data, cfg)
}

// Encode writes cfg as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if len(c.Backends) != 4 {
		return fmt.Errorf("%w: got %d", ErrInvalidBackends, len(c.Backends))
	}
	for _, b := range c.Backends {
		if b.String() == "Unknown" {
			return fmt.Errorf("%w: %d", backend.ErrUnknownBackend, b)
		}
	}
	if c.Camera.MoveStep <= 0 || c.Camera.Sensitivity <= 0 {
		return ErrInvalidCamera
	}
	if c.ReportInterval <= 0 {
		return fmt.Errorf("config: report interval must be positive: %v", time.Duration(c.ReportInterval))
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFontSize, c.FontSize)
	}
	return nil
}
