package tools

import (
	"log"

	"github.com/milk9111/paintbox/canvas"
	"github.com/milk9111/paintbox/history"
	"github.com/milk9111/paintbox/input"
)

var toolKeys = map[input.Key]Tool{
	input.KeyS: Select,
	input.KeyM: Move,
	input.KeyE: Erase,
	input.KeyB: Brush,
	input.KeyP: Pen,
	input.KeyR: Rectangle,
}

func (s *Session) keyDown(ev input.KeyDown) {
	if ev.Mods.Ctrl() {
		s.ctrlKey(ev.Key)
		return
	}
	switch ev.Key {
	case input.KeyEscape:
		s.quit = true
	case input.Key1:
		s.ToggleRectMode()
	case input.KeyN:
		s.AddLayer()
	case input.KeyTab:
		s.CycleLayer()
	case input.KeyDelete:
		s.RemoveActiveLayer()
	case input.KeyArrowUp:
		s.MoveActiveLayer(canvas.Up)
	case input.KeyArrowDown:
		s.MoveActiveLayer(canvas.Down)
	case input.KeyHome:
		s.cam.Reset()
	default:
		if t, ok := toolKeys[ev.Key]; ok {
			s.SelectTool(t)
		}
	}
}

func (s *Session) ctrlKey(k input.Key) {
	switch k {
	case input.KeyZ:
		s.Undo()
	case input.KeyY:
		s.Redo()
	case input.KeyJ:
		s.CommitPen()
	case input.KeyC:
		s.request("Export", func(h Host) error { return h.ExportFrame() })
	case input.KeyS:
		s.request("Save", func(h Host) error { return h.SaveDocument() })
	case input.KeyP:
		s.request("PDF export", func(h Host) error { return h.ExportPDF() })
	case input.KeyO:
		s.OpenImage()
	}
}

func (s *Session) request(what string, fn func(Host) error) {
	if s.host == nil {
		log.Printf("%s unavailable", what)
		return
	}
	if err := fn(s.host); err != nil {
		log.Printf("%s failed: %v", what, err)
	}
}

// AddLayer appends a layer named after the new count and makes it active.
func (s *Session) AddLayer() {
	prev := s.stack.ActiveIndex()
	idx := s.stack.AddLayer(s.stack.NextName())
	s.record(history.AddLayer{Index: idx, Layer: s.stack.Layer(idx), PrevActive: prev})
	log.Printf("New layer added. Total: %d", s.stack.Len())
}

// RemoveActiveLayer deletes the active layer. The bottom layer is never
// removed.
func (s *Session) RemoveActiveLayer() {
	idx := s.stack.ActiveIndex()
	if idx == 0 {
		return
	}
	l, ok := s.stack.RemoveLayer(idx)
	if !ok {
		return
	}
	s.record(history.RemoveLayer{Index: idx, Layer: l, PrevActive: idx})
}

// CycleLayer advances the active layer, wrapping at the top.
func (s *Session) CycleLayer() {
	if s.stack.Len() < 2 {
		return
	}
	prev := s.stack.ActiveIndex()
	next := s.stack.CycleActive()
	s.record(history.ChangeActiveLayer{Prev: prev, Next: next})
	l := s.stack.Active()
	log.Printf("Active layer: %d (%s)", next, l.Name)
}

// ActivateLayer makes layer i active.
func (s *Session) ActivateLayer(i int) {
	prev := s.stack.ActiveIndex()
	if i == prev || !s.stack.SetActive(i) {
		return
	}
	s.record(history.ChangeActiveLayer{Prev: prev, Next: i})
}

// ToggleLayerVisibility flips the visible flag of layer i.
func (s *Session) ToggleLayerVisibility(i int) {
	prev, ok := s.stack.ToggleVisibility(i)
	if !ok {
		return
	}
	s.record(history.ToggleVisibility{Layer: s.stack.Layer(i).ID, Prev: prev})
}

// MoveActiveLayer swaps the active layer with its neighbour.
func (s *Session) MoveActiveLayer(d canvas.Direction) {
	idx := s.stack.ActiveIndex()
	l := s.stack.Active()
	if !s.stack.MoveLayer(idx, d) {
		return
	}
	s.record(history.MoveLayer{Layer: l.ID, From: idx, Dir: d})
}

// OpenImage asks the host for an image and places it on the active layer.
func (s *Session) OpenImage() {
	if s.host == nil {
		log.Printf("Open image unavailable")
		return
	}
	path, err := s.host.PickImage()
	if err != nil {
		log.Printf("Open image failed: %v", err)
		return
	}
	if err := s.LoadBackground(path); err != nil {
		log.Printf("Open image failed: %v", err)
	}
}
