package history

import (
	"fmt"

	"github.com/milk9111/paintbox/canvas"
	"github.com/milk9111/paintbox/geom"
)

// Action is one invertible layer mutation. The concrete types below are the
// only implementations.
type Action interface {
	action()
	String() string
}

// AddRect records a rect appended to a layer.
type AddRect struct {
	Layer canvas.LayerID
	Rect  *canvas.Rect
}

// Removed is a rect together with the index it occupied.
type Removed struct {
	Index int
	Rect  *canvas.Rect
}

// RemoveRect records rects deleted from one layer in a single gesture.
// Entries are in ascending index order.
type RemoveRect struct {
	Layer   canvas.LayerID
	Removed []Removed
}

// MoveRect records a rect dragged from one position to another.
type MoveRect struct {
	Layer canvas.LayerID
	Rect  canvas.ShapeID
	From  geom.Point
	To    geom.Point
}

// ToggleVisibility records a visibility flip. Prev is the value before it.
type ToggleVisibility struct {
	Layer canvas.LayerID
	Prev  bool
}

// ChangeActiveLayer records a change of the active index.
type ChangeActiveLayer struct {
	Prev int
	Next int
}

// MoveLayer records a layer swapped with its neighbour. From is the index
// the layer had before the move.
type MoveLayer struct {
	Layer canvas.LayerID
	From  int
	Dir   canvas.Direction
}

// DrawStroke records a committed brush stroke.
type DrawStroke struct {
	Layer  canvas.LayerID
	Stroke *canvas.Stroke
}

// AddLayer records a layer inserted at Index.
type AddLayer struct {
	Index      int
	Layer      *canvas.Layer
	PrevActive int
}

// RemoveLayer records a layer deleted from Index.
type RemoveLayer struct {
	Index      int
	Layer      *canvas.Layer
	PrevActive int
}

func (AddRect) action()           {}
func (RemoveRect) action()        {}
func (MoveRect) action()          {}
func (ToggleVisibility) action()  {}
func (ChangeActiveLayer) action() {}
func (MoveLayer) action()         {}
func (DrawStroke) action()        {}
func (AddLayer) action()          {}
func (RemoveLayer) action()       {}

func (a AddRect) String() string { return fmt.Sprintf("add rect %s", a.Rect.ID) }
func (a RemoveRect) String() string {
	return fmt.Sprintf("remove %d rect(s)", len(a.Removed))
}
func (a MoveRect) String() string { return fmt.Sprintf("move rect %s", a.Rect) }
func (a ToggleVisibility) String() string {
	return fmt.Sprintf("toggle visibility (was %v)", a.Prev)
}
func (a ChangeActiveLayer) String() string {
	return fmt.Sprintf("active layer %d -> %d", a.Prev, a.Next)
}
func (a MoveLayer) String() string { return fmt.Sprintf("move layer %d %s", a.From, a.Dir) }
func (a DrawStroke) String() string {
	return fmt.Sprintf("draw stroke (%d stamps)", len(a.Stroke.Stamps))
}
func (a AddLayer) String() string    { return fmt.Sprintf("add layer %q", a.Layer.Name) }
func (a RemoveLayer) String() string { return fmt.Sprintf("remove layer %q", a.Layer.Name) }
