// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all viewer settings.
type Config struct {
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Camera      CameraConfig      `yaml:"camera"`
	Interaction InteractionConfig `yaml:"interaction"`
	Content     ContentConfig     `yaml:"content"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds the initial orbit camera framing.
type CameraConfig struct {
	FOVDegrees float32 `yaml:"fov_deg"`
	Distance   float32 `yaml:"distance"` // 0 fits the scene bounds
	Pitch      float32 `yaml:"pitch"`
	Yaw        float32 `yaml:"yaw"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// InteractionConfig tunes the hover/reveal behaviour.
type InteractionConfig struct {
	Debounce       time.Duration `yaml:"debounce"`
	RiseRate       float64       `yaml:"rise_rate"`
	FallRate       float64       `yaml:"fall_rate"`
	FadeDuration   time.Duration `yaml:"fade_duration"`
	HighlightColor [3]uint8      `yaml:"highlight_color"`
}

// ContentConfig points at scene and region data. Empty paths use the data
// embedded in the binary. Watch reloads the region content file on change.
type ContentConfig struct {
	ScenePath   string `yaml:"scene_path"`
	BundlesPath string `yaml:"bundles_path"`
	Watch       bool   `yaml:"watch"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FOVDegrees: 45,
			Pitch:      0.2,
			Near:       0.1,
			Far:        100,
		},
		Interaction: InteractionConfig{
			Debounce:       5 * time.Millisecond,
			RiseRate:       7,
			FallRate:       8,
			FadeDuration:   250 * time.Millisecond,
			HighlightColor: [3]uint8{255, 128, 128},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks values the viewer cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	case c.Interaction.RiseRate <= 0:
		return fmt.Errorf("%w: rise_rate must be positive, got %v", ErrInvalid, c.Interaction.RiseRate)
	case c.Interaction.FallRate <= 0:
		return fmt.Errorf("%w: fall_rate must be positive, got %v", ErrInvalid, c.Interaction.FallRate)
	case c.Interaction.Debounce <= 0:
		return fmt.Errorf("%w: debounce must be positive, got %v", ErrInvalid, c.Interaction.Debounce)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera clip range %v..%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180:
		return fmt.Errorf("%w: fov_deg %v", ErrInvalid, c.Camera.FOVDegrees)
	}
	return nil
}
