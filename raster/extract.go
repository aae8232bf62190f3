// Package raster holds the pixel-level operations of the editor: polygon
// cut-outs, image decoding and encoding, and document export.
package raster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/milk9111/paintbox/geom"
)

var (
	ErrTooFewVertices = errors.New("raster: polygon needs at least 3 vertices")
	ErrEmptySelection = errors.New("raster: selection does not overlap the image")
)

// ExtractPolygon copies the pixels of src inside poly into a new image sized
// to the polygon's bounding box clipped to src. Pixels outside the polygon
// are transparent. poly is in src pixel coordinates and a pixel is inside
// when its centre is. The returned rectangle is the clipped box in src
// coordinates; the image itself is based at (0,0).
func ExtractPolygon(src image.Image, poly []geom.Point) (*image.NRGBA, image.Rectangle, error) {
	if len(poly) < 3 {
		return nil, image.Rectangle{}, ErrTooFewVertices
	}
	box, _ := geom.Bounds(poly)
	if box.W*box.H <= 0 {
		return nil, image.Rectangle{}, ErrEmptySelection
	}
	clip := image.Rect(
		int(math.Floor(box.X)),
		int(math.Floor(box.Y)),
		int(math.Ceil(box.X+box.W)),
		int(math.Ceil(box.Y+box.H)),
	).Intersect(src.Bounds())
	if clip.Empty() {
		return nil, image.Rectangle{}, ErrEmptySelection
	}

	dst := image.NewNRGBA(image.Rect(0, 0, clip.Dx(), clip.Dy()))
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			if !geom.InPolygon(geom.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}, poly) {
				continue
			}
			dst.Set(x-clip.Min.X, y-clip.Min.Y, src.At(x, y))
		}
	}
	return dst, clip, nil
}

// Fill returns a w x h image filled with c.
func Fill(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}
