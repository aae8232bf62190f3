package camera

import (
	"math"

	"github.com/milk9111/paintbox/geom"
)

const (
	DefaultMinScale = 0.1
	DefaultMaxScale = 10.0
	DefaultStep     = 0.1
)

// Transform maps between screen pixels and world units.
//
//	world  = (screen - Offset) / Scale
//	screen = world*Scale + Offset
//
// Offset is kept in screen units so panning adds raw pointer deltas.
type Transform struct {
	Scale    float64
	Offset   geom.Point
	MinScale float64
	MaxScale float64
}

// New returns an identity transform limited to [minScale, maxScale].
func New(minScale, maxScale float64) *Transform {
	if minScale <= 0 {
		minScale = DefaultMinScale
	}
	if maxScale < minScale {
		maxScale = minScale
	}
	return &Transform{Scale: 1, MinScale: minScale, MaxScale: maxScale}
}

func (t *Transform) ScreenToWorld(p geom.Point) geom.Point {
	return geom.Point{
		X: (p.X - t.Offset.X) / t.Scale,
		Y: (p.Y - t.Offset.Y) / t.Scale,
	}
}

func (t *Transform) WorldToScreen(p geom.Point) geom.Point {
	return geom.Point{
		X: p.X*t.Scale + t.Offset.X,
		Y: p.Y*t.Scale + t.Offset.Y,
	}
}

// ScreenRectToWorld converts a screen-space rect. The result is normalized.
func (t *Transform) ScreenRectToWorld(r geom.Rect) geom.Rect {
	return geom.RectFromCorners(t.ScreenToWorld(r.Min()), t.ScreenToWorld(r.Max()))
}

// WorldRectToScreen converts a world-space rect. The result is normalized.
func (t *Transform) WorldRectToScreen(r geom.Rect) geom.Rect {
	return geom.RectFromCorners(t.WorldToScreen(r.Min()), t.WorldToScreen(r.Max()))
}

// Clamp limits s to the configured scale range.
func (t *Transform) Clamp(s float64) float64 {
	return math.Max(t.MinScale, math.Min(t.MaxScale, s))
}

// ZoomAt sets the scale while keeping the world point under cursor fixed on
// screen.
func (t *Transform) ZoomAt(cursor geom.Point, scale float64) {
	scale = t.Clamp(scale)
	if scale == t.Scale {
		return
	}
	world := t.ScreenToWorld(cursor)
	t.Scale = scale
	t.Offset = geom.Point{
		X: cursor.X - world.X*scale,
		Y: cursor.Y - world.Y*scale,
	}
}

// ZoomBy applies notches*step to the scale around cursor. Positive notches
// zoom in.
func (t *Transform) ZoomBy(cursor geom.Point, notches, step float64) {
	if notches == 0 {
		return
	}
	// round away the float drift from repeated 0.1 steps
	next := math.Round((t.Scale+notches*step)*1e6) / 1e6
	t.ZoomAt(cursor, next)
}

// Pan shifts the view by a screen-space delta.
func (t *Transform) Pan(dx, dy float64) {
	t.Offset.X += dx
	t.Offset.Y += dy
}

// Reset restores scale 1 and zero offset, keeping the limits.
func (t *Transform) Reset() {
	t.Scale = 1
	t.Offset = geom.Point{}
}

// SetLimits updates the scale range and re-clamps the current scale around
// the origin.
func (t *Transform) SetLimits(minScale, maxScale float64) {
	if minScale <= 0 || maxScale < minScale {
		return
	}
	t.MinScale = minScale
	t.MaxScale = maxScale
	if c := t.Clamp(t.Scale); c != t.Scale {
		t.ZoomAt(geom.Point{}, c)
	}
}
