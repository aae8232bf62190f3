package tools

import (
	"fmt"
	"log"

	"github.com/milk9111/paintbox/canvas"
	"github.com/milk9111/paintbox/geom"
	"github.com/milk9111/paintbox/history"
	"github.com/milk9111/paintbox/raster"
)

// penClick adds a vertex at the screen point, or closes the polyline when the
// point lands on the first vertex and there are at least three.
func (s *Session) penClick(screen geom.Point) {
	if s.penClosed {
		s.pen = nil
		s.penClosed = false
	}
	if len(s.pen) >= 3 {
		first := s.cam.WorldToScreen(s.pen[0])
		if first.Dist(screen) <= s.settings.PenCloseDistance {
			s.penClosed = true
			return
		}
	}
	s.pen = append(s.pen, s.cam.ScreenToWorld(screen))
}

// CommitPen cuts the closed pen polygon out of the active layer's background
// into a new layer. The polyline is kept when there is nothing to cut.
func (s *Session) CommitPen() {
	if !s.penClosed {
		return
	}
	src := s.stack.Active()
	bg := src.Background
	if bg == nil || bg.Image == nil {
		log.Printf("Selection skipped: layer %q has no image", src.Name)
		return
	}

	poly := make([]geom.Point, len(s.pen))
	for i, p := range s.pen {
		poly[i] = bg.WorldToPixel(p)
	}
	img, clip, err := raster.ExtractPolygon(bg.Image, poly)
	if err != nil {
		log.Printf("Selection failed: %v", err)
		s.pen = nil
		s.penClosed = false
		return
	}

	l := canvas.NewLayer(fmt.Sprintf("Selection %d", s.stack.Len()+1))
	l.Background = &canvas.Background{Image: img, Origin: bg.PixelToWorld(clip.Min)}
	prev := s.stack.ActiveIndex()
	idx := s.stack.InsertLayer(s.stack.Len(), l)
	s.record(history.AddLayer{Index: idx, Layer: l, PrevActive: prev})

	s.pen = nil
	s.penClosed = false
	log.Printf("Selection extracted to %q (%dx%d)", l.Name, clip.Dx(), clip.Dy())
}

// LoadBackground decodes the image at path onto the active layer, placed at
// the world origin. On failure the document is unchanged; if nothing has been
// drawn yet the view is reset to its default.
func (s *Session) LoadBackground(path string) error {
	img, err := raster.Open(path)
	if err != nil {
		if s.empty() {
			s.cam.Reset()
		}
		return err
	}
	s.stack.Active().Background = &canvas.Background{Image: img, Source: path}
	log.Printf("Loaded %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

func (s *Session) empty() bool {
	for _, l := range s.stack.Layers() {
		if l.Background != nil || len(l.Rects) > 0 || len(l.Strokes) > 0 {
			return false
		}
	}
	return true
}
