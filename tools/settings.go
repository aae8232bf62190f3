package tools

import (
	"image/color"

	"github.com/milk9111/paintbox/config"
)

// Settings are the tunables the session reads while handling input.
type Settings struct {
	InitialRadius float64
	MinRadius     float64
	MaxRadius     float64
	Spacing       float64

	ZoomStep float64
	MinScale float64
	MaxScale float64

	PenCloseDistance float64

	RectColor   color.NRGBA
	StrokeColor color.NRGBA
}

// SettingsFromConfig picks the session settings out of cfg.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		InitialRadius:    cfg.Brush.InitialRadius,
		MinRadius:        cfg.Brush.MinRadius,
		MaxRadius:        cfg.Brush.MaxRadius,
		Spacing:          cfg.Brush.Spacing,
		ZoomStep:         cfg.Camera.ZoomStep,
		MinScale:         cfg.Camera.MinScale,
		MaxScale:         cfg.Camera.MaxScale,
		PenCloseDistance: cfg.Pen.CloseDistance,
		RectColor:        cfg.Colors.Rect.NRGBA,
		StrokeColor:      cfg.Colors.Stroke.NRGBA,
	}
}

// DefaultSettings mirrors the embedded config defaults.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.Default())
}
