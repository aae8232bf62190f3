package raster

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/milk9111/paintbox/canvas"
	"github.com/milk9111/paintbox/geom"
)

const (
	pageW      = 210.0
	pageH      = 297.0
	pageMargin = 10.0
)

// ExportPDF writes the visible layers of s to an A4 page at path. Content is
// scaled uniformly to fit inside the page margins. Rects and strokes stay
// vector; backgrounds are embedded as PNG.
func ExportPDF(path string, s *canvas.Stack) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	bounds, ok := contentBounds(s)
	if !ok {
		return p.OutputFileAndClose(path)
	}
	scale := min((pageW-2*pageMargin)/bounds.W, (pageH-2*pageMargin)/bounds.H)
	tx := func(pt geom.Point) (float64, float64) {
		return pageMargin + (pt.X-bounds.X)*scale, pageMargin + (pt.Y-bounds.Y)*scale
	}

	for li, l := range s.Layers() {
		if !l.Visible {
			continue
		}
		for _, sh := range l.Shapes() {
			switch sh := sh.(type) {
			case *canvas.Background:
				if sh.Image == nil {
					continue
				}
				data, err := EncodePNG(sh.Image)
				if err != nil {
					return fmt.Errorf("raster: pdf %s: %w", path, err)
				}
				name := fmt.Sprintf("layer-%d-%s", li, l.ID)
				opts := gofpdf.ImageOptions{ImageType: "PNG"}
				p.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
				b := sh.Bounds()
				x, y := tx(b.Min())
				p.ImageOptions(name, x, y, b.W*scale, b.H*scale, false, opts, 0, "")
			case *canvas.Rect:
				p.SetFillColor(int(sh.Color.R), int(sh.Color.G), int(sh.Color.B))
				x, y := tx(sh.Box.Min())
				p.Rect(x, y, sh.Box.W*scale, sh.Box.H*scale, "F")
			case *canvas.Stroke:
				p.SetFillColor(int(sh.Color.R), int(sh.Color.G), int(sh.Color.B))
				for _, st := range sh.Stamps {
					x, y := tx(st.Center())
					p.Circle(x, y, st.Radius*scale, "F")
				}
			}
		}
	}
	if err := p.Error(); err != nil {
		return fmt.Errorf("raster: pdf %s: %w", path, err)
	}
	return p.OutputFileAndClose(path)
}

func contentBounds(s *canvas.Stack) (geom.Rect, bool) {
	var pts []geom.Point
	for _, l := range s.Layers() {
		if !l.Visible {
			continue
		}
		for _, sh := range l.Shapes() {
			b := sh.Bounds()
			if b.Empty() {
				continue
			}
			pts = append(pts, b.Min(), b.Max())
		}
	}
	b, ok := geom.Bounds(pts)
	if !ok || b.Empty() {
		return geom.Rect{}, false
	}
	return b, true
}
