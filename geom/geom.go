package geom

import "math"

// Point is a 2D coordinate. Which space it lives in (screen or world) is up
// to the caller.
type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) Dist(q Point) float64  { return math.Hypot(q.X-p.X, q.Y-p.Y) }
func (p Point) Eq(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Rect is an axis-aligned rectangle. A normalized rect has W >= 0 and H >= 0.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// RectFromCorners returns the normalized rect spanned by two corners in any
// order.
func RectFromCorners(a, b Point) Rect {
	return Rect{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		W: math.Abs(b.X - a.X),
		H: math.Abs(b.Y - a.Y),
	}
}

// Normalize flips negative extents so the rect has W, H >= 0.
func (r Rect) Normalize() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies in r. All four edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

func (r Rect) Min() Point { return Point{r.X, r.Y} }
func (r Rect) Max() Point { return Point{r.X + r.W, r.Y + r.H} }

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Bounds returns the axis-aligned bounding box of pts. It returns the zero
// rect and false when pts is empty.
func Bounds(pts []Point) (Rect, bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, true
}

// InPolygon tests p against a closed polygon using crossing-number parity.
// The edge from the last vertex back to the first is implied.
func InPolygon(p Point, poly []Point) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
