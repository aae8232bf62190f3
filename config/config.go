// Package config loads editor settings from YAML, layered over the embedded
// defaults.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Brush   BrushConfig   `yaml:"brush"`
	Pen     PenConfig     `yaml:"pen"`
	History HistoryConfig `yaml:"history"`
	Colors  ColorsConfig  `yaml:"colors"`
	Intro   IntroConfig   `yaml:"intro"`
	Export  ExportConfig  `yaml:"export"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

type CameraConfig struct {
	MinScale float64 `yaml:"min_scale"`
	MaxScale float64 `yaml:"max_scale"`
	ZoomStep float64 `yaml:"zoom_step"`
}

type BrushConfig struct {
	InitialRadius float64 `yaml:"initial_radius"`
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	// Spacing is the world distance between interpolated stamps.
	Spacing float64 `yaml:"spacing"`
}

type PenConfig struct {
	// CloseDistance is in screen pixels.
	CloseDistance float64 `yaml:"close_distance"`
}

type HistoryConfig struct {
	MaxDepth int `yaml:"max_depth"`
}

type ColorsConfig struct {
	Canvas       Color `yaml:"canvas"`
	Rect         Color `yaml:"rect"`
	Stroke       Color `yaml:"stroke"`
	Selection    Color `yaml:"selection"`
	DragFill     Color `yaml:"drag_fill"`
	DragBorder   Color `yaml:"drag_border"`
	Pen          Color `yaml:"pen"`
	BrushPreview Color `yaml:"brush_preview"`
}

// IntroConfig times the startup fade of the canvas and the sidebar slide-in.
// Zero disables the step.
type IntroConfig struct {
	FadeSeconds  float64 `yaml:"fade_seconds"`
	SlideSeconds float64 `yaml:"slide_seconds"`
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Parse decodes data over the embedded defaults, so a file only needs the
// keys it changes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal defaults: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads path and parses it over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.Window.TPS))
	}
	if c.Camera.MinScale <= 0 || c.Camera.MaxScale < c.Camera.MinScale {
		errs = append(errs, fmt.Errorf("camera scale range [%v, %v] is invalid", c.Camera.MinScale, c.Camera.MaxScale))
	}
	if c.Camera.ZoomStep <= 0 {
		errs = append(errs, fmt.Errorf("zoom_step %v must be positive", c.Camera.ZoomStep))
	}
	if c.Brush.MinRadius <= 0 || c.Brush.MaxRadius < c.Brush.MinRadius {
		errs = append(errs, fmt.Errorf("brush radius range [%v, %v] is invalid", c.Brush.MinRadius, c.Brush.MaxRadius))
	}
	if c.Brush.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("brush spacing %v must be positive", c.Brush.Spacing))
	}
	if c.Pen.CloseDistance < 0 {
		errs = append(errs, fmt.Errorf("pen close_distance %v must not be negative", c.Pen.CloseDistance))
	}
	return errors.Join(errs...)
}
