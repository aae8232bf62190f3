package canvas

// Handle refers to a rect without holding it. It stays valid across
// insertions and removals elsewhere in the layer and is resolved on every use.
type Handle struct {
	Layer LayerID
	Shape ShapeID
}

func (h Handle) IsZero() bool { return h.Layer == "" && h.Shape == "" }

// ResolveRect looks up the rect h refers to. It returns nil when the layer or
// rect no longer exists.
func (s *Stack) ResolveRect(h Handle) (*Layer, *Rect) {
	if h.IsZero() {
		return nil, nil
	}
	l := s.ByID(h.Layer)
	if l == nil {
		return nil, nil
	}
	r := l.Rect(h.Shape)
	if r == nil {
		return nil, nil
	}
	return l, r
}

// HandleOf returns the handle for r in layer l.
func HandleOf(l *Layer, r *Rect) Handle {
	return Handle{Layer: l.ID, Shape: r.ID}
}
