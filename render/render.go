// Package render paints a session onto an ebiten image.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/paintbox/camera"
	"github.com/milk9111/paintbox/canvas"
	"github.com/milk9111/paintbox/config"
	"github.com/milk9111/paintbox/geom"
	"github.com/milk9111/paintbox/tools"
)

type Colors struct {
	Canvas       color.NRGBA
	Selection    color.NRGBA
	DragFill     color.NRGBA
	DragBorder   color.NRGBA
	Pen          color.NRGBA
	BrushPreview color.NRGBA
}

func ColorsFromConfig(cfg *config.Config) Colors {
	c := cfg.Colors
	return Colors{
		Canvas:       c.Canvas.NRGBA,
		Selection:    c.Selection.NRGBA,
		DragFill:     c.DragFill.NRGBA,
		DragBorder:   c.DragBorder.NRGBA,
		Pen:          c.Pen.NRGBA,
		BrushPreview: c.BrushPreview.NRGBA,
	}
}

// Renderer draws layers bottom to top, then the transient tool state on top.
// Background rasters are uploaded once and cached by identity.
type Renderer struct {
	colors   Colors
	textures map[*image.NRGBA]*ebiten.Image
	used     map[*image.NRGBA]bool
}

func New(colors Colors) *Renderer {
	return &Renderer{
		colors:   colors,
		textures: make(map[*image.NRGBA]*ebiten.Image),
		used:     make(map[*image.NRGBA]bool),
	}
}

func (r *Renderer) SetColors(c Colors) { r.colors = c }

// Draw paints s. fade in [0,1] scales the canvas color up from black.
func (r *Renderer) Draw(screen *ebiten.Image, s *tools.Session, fade float64) {
	bg := r.colors.Canvas
	screen.Fill(color.NRGBA{
		R: uint8(float64(bg.R) * fade),
		G: uint8(float64(bg.G) * fade),
		B: uint8(float64(bg.B) * fade),
		A: 255,
	})

	cam := s.Camera()
	clear(r.used)
	for _, l := range s.Stack().Layers() {
		if !l.Visible {
			continue
		}
		r.drawLayer(screen, cam, l)
	}
	r.evict()

	if b, ok := selectionOutline(s); ok {
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, r.colors.Selection, false)
	}
	if dr, ok := s.DragRect(); ok && !dr.Empty() {
		vector.FillRect(screen, float32(dr.X), float32(dr.Y), float32(dr.W), float32(dr.H), r.colors.DragFill, false)
		vector.StrokeRect(screen, float32(dr.X), float32(dr.Y), float32(dr.W), float32(dr.H), 1, r.colors.DragBorder, false)
	}
	if s.Brushing() {
		for _, st := range s.Stamps() {
			p := cam.WorldToScreen(st.Center())
			vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(st.Radius*cam.Scale), 1, r.colors.BrushPreview, true)
		}
	}
	r.drawPen(screen, s)
	if s.Tool() == tools.Brush {
		p := s.Pointer()
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(s.BrushRadius()*cam.Scale), 1, r.colors.BrushPreview, true)
	}
}

func (r *Renderer) drawLayer(screen *ebiten.Image, cam *camera.Transform, l *canvas.Layer) {
	for _, sh := range l.Shapes() {
		switch sh := sh.(type) {
		case *canvas.Background:
			if sh.Image == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(sh.Origin.X, sh.Origin.Y)
			op.GeoM.Scale(cam.Scale, cam.Scale)
			op.GeoM.Translate(cam.Offset.X, cam.Offset.Y)
			screen.DrawImage(r.texture(sh.Image), op)
		case *canvas.Rect:
			b := cam.WorldRectToScreen(sh.Box)
			vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), sh.Color, false)
		case *canvas.Stroke:
			for _, st := range sh.Stamps {
				p := cam.WorldToScreen(st.Center())
				vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(st.Radius*cam.Scale), sh.Color, true)
			}
		}
	}
}

func (r *Renderer) drawPen(screen *ebiten.Image, s *tools.Session) {
	pen, closed := s.Pen()
	if len(pen) == 0 {
		return
	}
	cam := s.Camera()
	pts := make([]geom.Point, len(pen))
	for i, p := range pen {
		pts[i] = cam.WorldToScreen(p)
	}
	for _, seg := range PenSegments(pts, closed, s.Pointer()) {
		vector.StrokeLine(screen, float32(seg[0].X), float32(seg[0].Y), float32(seg[1].X), float32(seg[1].Y), 1.5, r.colors.Pen, true)
	}
	for _, p := range pts {
		vector.FillRect(screen, float32(p.X-2), float32(p.Y-2), 4, 4, r.colors.Pen, false)
	}
}

// PenSegments returns the line segments of a pen polyline in screen space.
// An open polyline gets a rubber band to the pointer; a closed one is joined
// back to its first vertex.
func PenSegments(pts []geom.Point, closed bool, pointer geom.Point) [][2]geom.Point {
	if len(pts) == 0 {
		return nil
	}
	segs := make([][2]geom.Point, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		segs = append(segs, [2]geom.Point{pts[i-1], pts[i]})
	}
	last := pts[len(pts)-1]
	if closed {
		segs = append(segs, [2]geom.Point{last, pts[0]})
	} else {
		segs = append(segs, [2]geom.Point{last, pointer})
	}
	return segs
}

func (r *Renderer) texture(img *image.NRGBA) *ebiten.Image {
	r.used[img] = true
	if t, ok := r.textures[img]; ok {
		return t
	}
	t := ebiten.NewImageFromImage(img)
	r.textures[img] = t
	return t
}

// evict frees textures not drawn this frame.
func (r *Renderer) evict() {
	for img, t := range r.textures {
		if !r.used[img] {
			t.Deallocate()
			delete(r.textures, img)
		}
	}
}

// selectionOutline is the selected rect in screen space. A selection on a
// hidden layer has no outline.
func selectionOutline(s *tools.Session) (geom.Rect, bool) {
	sel, l := s.Selected(), s.SelectedLayer()
	if sel == nil || l == nil || !l.Visible {
		return geom.Rect{}, false
	}
	return s.Camera().WorldRectToScreen(sel.Box), true
}
