package tools

import (
	"math"

	"github.com/milk9111/paintbox/canvas"
	"github.com/milk9111/paintbox/geom"
	"github.com/milk9111/paintbox/history"
	"github.com/milk9111/paintbox/input"
)

func (s *Session) buttonDown(ev input.ButtonDown) {
	if s.chrome != nil && s.chrome.Contains(ev.Pos) {
		return
	}
	switch {
	case ev.Button == input.ButtonMiddle,
		ev.Button == input.ButtonLeft && ev.Mods.Alt():
		s.panning = true
		s.panButton = ev.Button
		return
	case ev.Button != input.ButtonLeft:
		return
	}

	world := s.cam.ScreenToWorld(ev.Pos)
	switch s.tool {
	case Move:
		s.beginMove(world)
	case Select:
		s.selectAt(world)
	case Erase:
		s.eraseAt(world)
	case Brush:
		s.beginStroke(world)
	case Pen:
		s.penClick(ev.Pos)
	}

	if s.rectDrawing() {
		s.dragging = true
		s.dragStart = ev.Pos
		s.dragRect = geom.Rect{X: ev.Pos.X, Y: ev.Pos.Y}
	}
}

func (s *Session) motion(ev input.Motion) {
	if s.panning {
		s.cam.Pan(ev.Delta.X, ev.Delta.Y)
		return
	}
	world := s.cam.ScreenToWorld(ev.Pos)
	if s.moving {
		if l, r := s.stack.ResolveRect(s.selection); r != nil {
			l.MoveRect(r.ID, world.Sub(s.moveOffset))
		} else {
			s.moving = false
		}
	}
	if s.brushing {
		s.extendStroke(world)
	}
	if s.dragging {
		s.dragRect = geom.RectFromCorners(s.dragStart, ev.Pos)
	}
}

func (s *Session) buttonUp(ev input.ButtonUp) {
	if s.panning {
		if ev.Button == s.panButton {
			s.panning = false
		}
		return
	}
	if ev.Button != input.ButtonLeft {
		return
	}
	s.finishMove()
	if s.brushing {
		s.endStroke()
	}
	if s.dragging {
		s.dragging = false
		s.commitDragRect()
	}
}

func (s *Session) wheel(ev input.Wheel) {
	if ev.Mods.Ctrl() {
		s.SetBrushRadius(s.brushRadius + ev.DY)
		return
	}
	s.cam.ZoomBy(ev.Pos, ev.DY, s.settings.ZoomStep)
}

// SetBrushRadius sets the radius used for new stamps, clamped to the
// configured range.
func (s *Session) SetBrushRadius(r float64) {
	s.brushRadius = clamp(r, s.settings.MinRadius, s.settings.MaxRadius)
}

// rectDrawing reports whether a left press starts a rectangle drag. The
// Rectangle tool always does; the persistent rect mode does unless the
// current tool consumes the drag itself.
func (s *Session) rectDrawing() bool {
	if s.tool == Rectangle {
		return true
	}
	if !s.rectMode || s.moving {
		return false
	}
	return s.tool != Brush && s.tool != Pen
}

func (s *Session) commitDragRect() {
	if s.dragRect.Empty() {
		return
	}
	box := s.cam.ScreenRectToWorld(s.dragRect)
	l := s.stack.Active()
	r := canvas.NewRect(box, s.settings.RectColor)
	l.AppendRect(r)
	s.record(history.AddRect{Layer: l.ID, Rect: r})
}

func (s *Session) beginMove(world geom.Point) {
	l := s.stack.Active()
	r := l.HitFirst(world)
	if r == nil {
		return
	}
	s.selection = canvas.HandleOf(l, r)
	s.moveFrom = r.Box.Min()
	s.moveOffset = world.Sub(s.moveFrom)
	s.moving = true
}

// finishMove ends a move drag and logs it when the rect actually moved.
func (s *Session) finishMove() {
	if !s.moving {
		return
	}
	s.moving = false
	l, r := s.stack.ResolveRect(s.selection)
	if r == nil {
		return
	}
	to := r.Box.Min()
	if to == s.moveFrom {
		return
	}
	s.record(history.MoveRect{Layer: l.ID, Rect: r.ID, From: s.moveFrom, To: to})
}

// selectAt selects the topmost rect under world, or clears the selection.
func (s *Session) selectAt(world geom.Point) {
	l := s.stack.Active()
	if r := l.HitLast(world); r != nil {
		s.selection = canvas.HandleOf(l, r)
		return
	}
	s.selection = canvas.Handle{}
}

// eraseAt removes every rect under world as one action.
func (s *Session) eraseAt(world geom.Point) {
	l := s.stack.Active()
	hits := l.HitAll(world)
	if len(hits) == 0 {
		return
	}
	removed := make([]history.Removed, 0, len(hits))
	for _, r := range hits {
		_, idx, ok := l.RemoveRect(r.ID)
		if !ok {
			continue
		}
		// earlier removals shifted this rect down by one each
		removed = append(removed, history.Removed{Index: idx + len(removed), Rect: r})
	}
	s.record(history.RemoveRect{Layer: l.ID, Removed: removed})
}

func (s *Session) beginStroke(world geom.Point) {
	s.brushing = true
	s.stamps = []canvas.Stamp{{X: world.X, Y: world.Y, Radius: s.settings.InitialRadius}}
	s.lastStamp = world
}

// extendStroke stamps from the last stamp to world at the configured
// spacing, using the current radius.
func (s *Session) extendStroke(world geom.Point) {
	d := world.Sub(s.lastStamp)
	dist := math.Hypot(d.X, d.Y)
	if dist == 0 {
		return
	}
	steps := max(int(dist/s.settings.Spacing), 1)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := s.lastStamp.Add(d.Scale(t))
		s.stamps = append(s.stamps, canvas.Stamp{X: p.X, Y: p.Y, Radius: s.brushRadius})
	}
	s.lastStamp = world
}

func (s *Session) endStroke() {
	s.brushing = false
	if len(s.stamps) == 0 {
		return
	}
	l := s.stack.Active()
	st := canvas.NewStroke(s.stamps, s.settings.StrokeColor)
	l.AppendStroke(st)
	s.record(history.DrawStroke{Layer: l.ID, Stroke: st})
	s.stamps = nil
}
