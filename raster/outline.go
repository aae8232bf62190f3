package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Outline returns a copy of src with every transparent pixel within
// thickness of an opaque one set to c. The neighbourhood is square, so
// corners get a square outline.
func Outline(src *image.NRGBA, thickness int, c color.NRGBA) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(b)
	draw.Draw(out, b, src, b.Min, draw.Src)
	if thickness <= 0 {
		return out
	}

	opaque := func(x, y int) bool {
		return src.NRGBAAt(x, y).A != 0
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if opaque(x, y) {
				continue
			}
			ymin := max(y-thickness, b.Min.Y)
			ymax := min(y+thickness, b.Max.Y-1)
			xmin := max(x-thickness, b.Min.X)
			xmax := min(x+thickness, b.Max.X-1)
			found := false
			for yy := ymin; yy <= ymax && !found; yy++ {
				for xx := xmin; xx <= xmax; xx++ {
					if opaque(xx, yy) {
						found = true
						break
					}
				}
			}
			if found {
				out.SetNRGBA(x, y, c)
			}
		}
	}
	return out
}
