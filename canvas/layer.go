package canvas

import (
	"slices"

	"github.com/milk9111/paintbox/geom"
)

// Layer is an independently drawable collection. Draw order inside a layer
// is background, then rects, then strokes.
type Layer struct {
	ID         LayerID
	Name       string
	Visible    bool
	Rects      []*Rect
	Strokes    []*Stroke
	Background *Background
}

// NewLayer returns a visible empty layer.
func NewLayer(name string) *Layer {
	return &Layer{ID: NewLayerID(), Name: name, Visible: true}
}

// Shapes returns every shape in draw order.
func (l *Layer) Shapes() []Shape {
	out := make([]Shape, 0, len(l.Rects)+len(l.Strokes)+1)
	if l.Background != nil {
		out = append(out, l.Background)
	}
	for _, r := range l.Rects {
		out = append(out, r)
	}
	for _, s := range l.Strokes {
		out = append(out, s)
	}
	return out
}

func (l *Layer) AppendRect(r *Rect) {
	l.Rects = append(l.Rects, r)
}

// InsertRect places r at idx, clamped to the valid range.
func (l *Layer) InsertRect(idx int, r *Rect) {
	idx = max(0, min(idx, len(l.Rects)))
	l.Rects = slices.Insert(l.Rects, idx, r)
}

// RectIndex returns the position of the rect with id, or -1.
func (l *Layer) RectIndex(id ShapeID) int {
	return slices.IndexFunc(l.Rects, func(r *Rect) bool { return r.ID == id })
}

func (l *Layer) Rect(id ShapeID) *Rect {
	if i := l.RectIndex(id); i >= 0 {
		return l.Rects[i]
	}
	return nil
}

// RemoveRect deletes the rect with id and reports the index it had. A layer
// left without rects holds a nil slice, as a fresh one does.
func (l *Layer) RemoveRect(id ShapeID) (*Rect, int, bool) {
	i := l.RectIndex(id)
	if i < 0 {
		return nil, -1, false
	}
	r := l.Rects[i]
	l.Rects = slices.Delete(l.Rects, i, i+1)
	if len(l.Rects) == 0 {
		l.Rects = nil
	}
	return r, i, true
}

// HitFirst returns the first rect in layer order containing p.
func (l *Layer) HitFirst(p geom.Point) *Rect {
	for _, r := range l.Rects {
		if r.Contains(p) {
			return r
		}
	}
	return nil
}

// HitLast returns the last rect in layer order containing p, which is the one
// painted on top.
func (l *Layer) HitLast(p geom.Point) *Rect {
	for i := len(l.Rects) - 1; i >= 0; i-- {
		if l.Rects[i].Contains(p) {
			return l.Rects[i]
		}
	}
	return nil
}

// HitAll returns every rect containing p, in layer order.
func (l *Layer) HitAll(p geom.Point) []*Rect {
	var out []*Rect
	for _, r := range l.Rects {
		if r.Contains(p) {
			out = append(out, r)
		}
	}
	return out
}

// MoveRect sets the top-left of rect id to pos.
func (l *Layer) MoveRect(id ShapeID, pos geom.Point) bool {
	r := l.Rect(id)
	if r == nil {
		return false
	}
	r.Box.X = pos.X
	r.Box.Y = pos.Y
	return true
}

func (l *Layer) AppendStroke(s *Stroke) {
	l.Strokes = append(l.Strokes, s)
}

func (l *Layer) StrokeIndex(id ShapeID) int {
	return slices.IndexFunc(l.Strokes, func(s *Stroke) bool { return s.ID == id })
}

// RemoveStroke deletes the stroke with id. Like RemoveRect it leaves a nil
// slice once the last stroke is gone.
func (l *Layer) RemoveStroke(id ShapeID) (*Stroke, bool) {
	i := l.StrokeIndex(id)
	if i < 0 {
		return nil, false
	}
	s := l.Strokes[i]
	l.Strokes = slices.Delete(l.Strokes, i, i+1)
	if len(l.Strokes) == 0 {
		l.Strokes = nil
	}
	return s, true
}

// Clone returns a copy that shares no slices with l. Background pixels are
// shared since they are never edited in place.
func (l *Layer) Clone() *Layer {
	c := &Layer{ID: l.ID, Name: l.Name, Visible: l.Visible}
	for _, r := range l.Rects {
		rc := *r
		c.Rects = append(c.Rects, &rc)
	}
	for _, s := range l.Strokes {
		sc := *s
		sc.Stamps = slices.Clone(s.Stamps)
		c.Strokes = append(c.Strokes, &sc)
	}
	if l.Background != nil {
		bg := *l.Background
		c.Background = &bg
	}
	return c
}
