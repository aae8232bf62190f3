// Package tools turns input events into layer mutations. A Session owns the
// whole editing state; every handler is a method on it.
package tools

import (
	"log"

	"github.com/milk9111/paintbox/camera"
	"github.com/milk9111/paintbox/canvas"
	"github.com/milk9111/paintbox/geom"
	"github.com/milk9111/paintbox/history"
	"github.com/milk9111/paintbox/input"
)

// Session is the state of one editing session.
type Session struct {
	stack    *canvas.Stack
	history  *history.Log
	cam      *camera.Transform
	settings Settings
	chrome   Chrome
	host     Host

	tool     Tool
	rectMode bool
	quit     bool
	pointer  geom.Point

	// rectangle drag, screen space
	dragging  bool
	dragStart geom.Point
	dragRect  geom.Rect

	// move drag, world space
	moving     bool
	moveOffset geom.Point
	moveFrom   geom.Point

	selection canvas.Handle

	brushRadius float64
	brushing    bool
	stamps      []canvas.Stamp
	lastStamp   geom.Point

	// pen polyline, world space
	pen       []geom.Point
	penClosed bool

	panning   bool
	panButton input.Button
}

// Option configures a Session.
type Option func(*Session)

func WithChrome(c Chrome) Option { return func(s *Session) { s.chrome = c } }
func WithHost(h Host) Option     { return func(s *Session) { s.host = h } }
func WithHistoryDepth(n int) Option {
	return func(s *Session) { s.history = history.NewLog(n) }
}

// NewSession starts a session with one layer named "Layer 1".
func NewSession(settings Settings, opts ...Option) *Session {
	s := &Session{
		stack:       canvas.NewStack("Layer 1"),
		history:     history.NewLog(history.DefaultMaxDepth),
		cam:         camera.New(settings.MinScale, settings.MaxScale),
		settings:    settings,
		brushRadius: settings.InitialRadius,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Stack() *canvas.Stack      { return s.stack }
func (s *Session) History() *history.Log     { return s.history }
func (s *Session) Camera() *camera.Transform { return s.cam }
func (s *Session) Settings() Settings        { return s.settings }
func (s *Session) Tool() Tool                { return s.tool }
func (s *Session) RectMode() bool            { return s.rectMode }
func (s *Session) Quit() bool                { return s.quit }
func (s *Session) Pointer() geom.Point       { return s.pointer }
func (s *Session) BrushRadius() float64      { return s.brushRadius }
func (s *Session) Stamps() []canvas.Stamp    { return s.stamps }
func (s *Session) Brushing() bool            { return s.brushing }
func (s *Session) Pen() ([]geom.Point, bool) { return s.pen, s.penClosed }
func (s *Session) SetChrome(c Chrome)        { s.chrome = c }
func (s *Session) SetHost(h Host)            { s.host = h }

// DragRect returns the in-progress rectangle in screen space.
func (s *Session) DragRect() (geom.Rect, bool) {
	return s.dragRect, s.dragging
}

// Selected resolves the selection. It returns nil when nothing is selected
// or the rect is gone.
func (s *Session) Selected() *canvas.Rect {
	_, r := s.stack.ResolveRect(s.selection)
	return r
}

// SelectedLayer is the layer holding the selection, nil when Selected is.
func (s *Session) SelectedLayer() *canvas.Layer {
	l, _ := s.stack.ResolveRect(s.selection)
	return l
}

// SetSettings applies new tunables without touching the document.
func (s *Session) SetSettings(settings Settings) {
	s.settings = settings
	s.cam.SetLimits(settings.MinScale, settings.MaxScale)
	s.brushRadius = clamp(s.brushRadius, settings.MinRadius, settings.MaxRadius)
}

// ReplaceStack swaps in a loaded document. History and transient tool state
// are discarded.
func (s *Session) ReplaceStack(stack *canvas.Stack) {
	s.stack = stack
	s.history.Clear()
	s.selection = canvas.Handle{}
	s.resetTransient()
}

// Handle processes one event. Events must be fed in arrival order.
func (s *Session) Handle(ev input.Event) {
	switch ev := ev.(type) {
	case input.Quit:
		s.quit = true
	case input.KeyDown:
		s.keyDown(ev)
	case input.KeyUp:
	case input.ButtonDown:
		s.pointer = ev.Pos
		s.buttonDown(ev)
	case input.Motion:
		s.pointer = ev.Pos
		s.motion(ev)
	case input.ButtonUp:
		s.pointer = ev.Pos
		s.buttonUp(ev)
	case input.Wheel:
		s.pointer = ev.Pos
		s.wheel(ev)
	}
}

// SelectTool toggles t: selecting the active tool returns to None.
func (s *Session) SelectTool(t Tool) {
	next := t
	if s.tool == t {
		next = None
	}
	if next == s.tool {
		return
	}
	s.resetTransient()
	s.tool = next
	log.Printf("Switched to %s tool", s.tool)
}

// ToggleRectMode flips the persistent rectangle drawing flag.
func (s *Session) ToggleRectMode() {
	s.rectMode = !s.rectMode
	if !s.rectMode {
		s.dragging = false
	}
}

// resetTransient abandons any in-progress gesture. A move in progress is
// finished so its effect is logged.
func (s *Session) resetTransient() {
	s.finishMove()
	s.dragging = false
	s.brushing = false
	s.stamps = nil
	s.pen = nil
	s.penClosed = false
	s.panning = false
}

func (s *Session) record(a history.Action) {
	s.history.Record(a)
}

// Undo reverts the last action. Any stroke being drawn is discarded first.
func (s *Session) Undo() {
	s.brushing = false
	s.stamps = nil
	s.finishMove()
	a, err := s.history.Undo(s.stack)
	if err != nil {
		log.Printf("Undo failed: %v", err)
		return
	}
	if a != nil {
		log.Printf("Undo: %s", a)
	}
}

// Redo re-applies the next action.
func (s *Session) Redo() {
	s.finishMove()
	a, err := s.history.Redo(s.stack)
	if err != nil {
		log.Printf("Redo failed: %v", err)
		return
	}
	if a != nil {
		log.Printf("Redo: %s", a)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
