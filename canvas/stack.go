package canvas

import (
	"fmt"
	"slices"
)

// Direction is the way a layer moves in the stack. Up is toward index 0.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

func (d Direction) delta() int {
	if d == Up {
		return -1
	}
	return 1
}

// Stack is the ordered layer list plus the active index. It always holds at
// least one layer and the active index is always in range.
type Stack struct {
	layers []*Layer
	active int
}

// NewStack returns a stack holding one layer named name.
func NewStack(name string) *Stack {
	return &Stack{layers: []*Layer{NewLayer(name)}}
}

// NewStackFrom adopts layers. It returns an error when layers is empty.
func NewStackFrom(layers []*Layer, active int) (*Stack, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("canvas: stack needs at least one layer")
	}
	if active < 0 || active >= len(layers) {
		active = 0
	}
	return &Stack{layers: layers, active: active}, nil
}

func (s *Stack) Len() int { return len(s.layers) }

// ActiveIndex returns the index new content goes to.
func (s *Stack) ActiveIndex() int { return s.active }

// Active returns the active layer.
func (s *Stack) Active() *Layer { return s.layers[s.active] }

// Layer returns the layer at i, or nil when i is out of range.
func (s *Stack) Layer(i int) *Layer {
	if i < 0 || i >= len(s.layers) {
		return nil
	}
	return s.layers[i]
}

// Layers returns the layers bottom to top. The slice must not be modified.
func (s *Stack) Layers() []*Layer { return s.layers }

// Index returns the position of the layer with id, or -1.
func (s *Stack) Index(id LayerID) int {
	return slices.IndexFunc(s.layers, func(l *Layer) bool { return l.ID == id })
}

// ByID returns the layer with id, or nil.
func (s *Stack) ByID(id LayerID) *Layer {
	if i := s.Index(id); i >= 0 {
		return s.layers[i]
	}
	return nil
}

// Names lists the layer names in stack order.
func (s *Stack) Names() []string {
	out := make([]string, len(s.layers))
	for i, l := range s.layers {
		out[i] = l.Name
	}
	return out
}

// NextName is the default name for a layer appended now.
func (s *Stack) NextName() string {
	return fmt.Sprintf("Layer %d", len(s.layers)+1)
}

// AddLayer appends a new layer and makes it active.
func (s *Stack) AddLayer(name string) int {
	return s.InsertLayer(len(s.layers), NewLayer(name))
}

// InsertLayer places l at i, clamped to the valid range, and makes it active.
func (s *Stack) InsertLayer(i int, l *Layer) int {
	i = max(0, min(i, len(s.layers)))
	s.layers = slices.Insert(s.layers, i, l)
	s.active = i
	return i
}

// RemoveLayer deletes the layer at i. Removing the sole layer or an index out
// of range does nothing. The active index resets to 0.
func (s *Stack) RemoveLayer(i int) (*Layer, bool) {
	if len(s.layers) <= 1 || i < 0 || i >= len(s.layers) {
		return nil, false
	}
	l := s.layers[i]
	s.layers = slices.Delete(s.layers, i, i+1)
	s.active = 0
	return l, true
}

// MoveLayer swaps the layer at i with its neighbour in direction d. The active
// index follows the moved layer.
func (s *Stack) MoveLayer(i int, d Direction) bool {
	j := i + d.delta()
	if i < 0 || i >= len(s.layers) || j < 0 || j >= len(s.layers) {
		return false
	}
	s.layers[i], s.layers[j] = s.layers[j], s.layers[i]
	s.active = j
	return true
}

func (s *Stack) SetActive(i int) bool {
	if i < 0 || i >= len(s.layers) {
		return false
	}
	s.active = i
	return true
}

// CycleActive advances the active index, wrapping at the end.
func (s *Stack) CycleActive() int {
	s.active = (s.active + 1) % len(s.layers)
	return s.active
}

// ToggleVisibility flips the visible flag of layer i and returns the value it
// had before.
func (s *Stack) ToggleVisibility(i int) (prev bool, ok bool) {
	l := s.Layer(i)
	if l == nil {
		return false, false
	}
	prev = l.Visible
	l.Visible = !prev
	return prev, true
}

func (s *Stack) SetVisible(i int, v bool) bool {
	l := s.Layer(i)
	if l == nil {
		return false
	}
	l.Visible = v
	return true
}

// Clone deep-copies the stack for snapshot comparison and saving.
func (s *Stack) Clone() *Stack {
	c := &Stack{active: s.active, layers: make([]*Layer, len(s.layers))}
	for i, l := range s.layers {
		c.layers[i] = l.Clone()
	}
	return c
}
