package canvas

import (
	"image"
	"image/color"

	"github.com/google/uuid"

	"github.com/milk9111/paintbox/geom"
)

// ShapeID identifies a shape for as long as it exists, across moves and
// container reallocation.
type ShapeID string

// LayerID identifies a layer independent of its position in the stack.
type LayerID string

func NewShapeID() ShapeID { return ShapeID(uuid.NewString()) }
func NewLayerID() LayerID { return LayerID(uuid.NewString()) }

// Shape is implemented by *Rect, *Stroke and *Background only. Callers
// dispatch with a type switch.
type Shape interface {
	shape()
	Bounds() geom.Rect
}

// Rect is a filled axis-aligned rectangle in world units.
type Rect struct {
	ID    ShapeID
	Box   geom.Rect
	Color color.NRGBA
}

// NewRect returns a rect with a fresh ID and a normalized box.
func NewRect(box geom.Rect, c color.NRGBA) *Rect {
	return &Rect{ID: NewShapeID(), Box: box.Normalize(), Color: c}
}

func (*Rect) shape()              {}
func (r *Rect) Bounds() geom.Rect { return r.Box }

// Contains is inclusive on every edge.
func (r *Rect) Contains(p geom.Point) bool { return r.Box.Contains(p) }

// Stamp is one circle of a brush stroke.
type Stamp struct {
	X      float64
	Y      float64
	Radius float64
}

func (s Stamp) Center() geom.Point { return geom.Point{X: s.X, Y: s.Y} }

// Stroke is a committed brush path. It is not mutated after it is added to a
// layer.
type Stroke struct {
	ID     ShapeID
	Stamps []Stamp
	Color  color.NRGBA
}

// NewStroke copies stamps into a new stroke with a fresh ID.
func NewStroke(stamps []Stamp, c color.NRGBA) *Stroke {
	cp := make([]Stamp, len(stamps))
	copy(cp, stamps)
	return &Stroke{ID: NewShapeID(), Stamps: cp, Color: c}
}

func (*Stroke) shape() {}

func (s *Stroke) Bounds() geom.Rect {
	if len(s.Stamps) == 0 {
		return geom.Rect{}
	}
	pts := make([]geom.Point, 0, len(s.Stamps)*2)
	for _, st := range s.Stamps {
		pts = append(pts,
			geom.Point{X: st.X - st.Radius, Y: st.Y - st.Radius},
			geom.Point{X: st.X + st.Radius, Y: st.Y + st.Radius},
		)
	}
	b, _ := geom.Bounds(pts)
	return b
}

// Background is a raster image placed with its top-left pixel at Origin in
// world units. One image pixel covers one world unit.
type Background struct {
	Image  *image.NRGBA
	Origin geom.Point
	// Source is the file the image was decoded from, empty for extracted
	// selections.
	Source string
}

func (*Background) shape() {}

func (b *Background) Bounds() geom.Rect {
	if b.Image == nil {
		return geom.Rect{X: b.Origin.X, Y: b.Origin.Y}
	}
	sz := b.Image.Bounds().Size()
	return geom.Rect{X: b.Origin.X, Y: b.Origin.Y, W: float64(sz.X), H: float64(sz.Y)}
}

// WorldToPixel converts a world point to image pixel space.
func (b *Background) WorldToPixel(p geom.Point) geom.Point {
	pm := b.Image.Bounds().Min
	return geom.Point{X: p.X - b.Origin.X + float64(pm.X), Y: p.Y - b.Origin.Y + float64(pm.Y)}
}

// PixelToWorld converts an image pixel coordinate to world space.
func (b *Background) PixelToWorld(p image.Point) geom.Point {
	pm := b.Image.Bounds().Min
	return geom.Point{X: float64(p.X-pm.X) + b.Origin.X, Y: float64(p.Y-pm.Y) + b.Origin.Y}
}
