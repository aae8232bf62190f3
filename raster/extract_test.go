package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/milk9111/paintbox/geom"
)

var red = color.NRGBA{R: 255, A: 255}

func TestExtractPolygonTriangle(t *testing.T) {
	src := Fill(20, 20, red)
	poly := []geom.Point{geom.Pt(2, 2), geom.Pt(12, 2), geom.Pt(2, 12)}

	dst, clip, err := ExtractPolygon(src, poly)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if clip != image.Rect(2, 2, 12, 12) {
		t.Fatalf("clip %v", clip)
	}
	if dst.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Fatalf("dst bounds %v", dst.Bounds())
	}
	if got := dst.NRGBAAt(0, 0); got != red {
		t.Fatalf("corner inside triangle should be copied, got %v", got)
	}
	if got := dst.NRGBAAt(9, 9); got.A != 0 {
		t.Fatalf("far corner outside triangle should be transparent, got %v", got)
	}
}

func TestExtractPolygonClipsToSource(t *testing.T) {
	src := Fill(10, 10, red)
	poly := []geom.Point{geom.Pt(-5, -5), geom.Pt(5, -5), geom.Pt(5, 5), geom.Pt(-5, 5)}

	dst, clip, err := ExtractPolygon(src, poly)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if clip != image.Rect(0, 0, 5, 5) {
		t.Fatalf("clip %v", clip)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if dst.NRGBAAt(x, y) != red {
				t.Fatalf("pixel %d,%d not copied", x, y)
			}
		}
	}
}

func TestExtractPolygonErrors(t *testing.T) {
	src := Fill(10, 10, red)
	cases := []struct {
		name string
		poly []geom.Point
		want error
	}{
		{"two vertices", []geom.Point{geom.Pt(0, 0), geom.Pt(5, 5)}, ErrTooFewVertices},
		{"outside image", []geom.Point{geom.Pt(50, 50), geom.Pt(60, 50), geom.Pt(55, 60)}, ErrEmptySelection},
		{"collinear", []geom.Point{geom.Pt(1, 1), geom.Pt(5, 1), geom.Pt(9, 1)}, ErrEmptySelection},
		{"collinear off grid", []geom.Point{geom.Pt(2, 5.5), geom.Pt(5, 5.5), geom.Pt(8, 5.5)}, ErrEmptySelection},
		{"vertical off grid", []geom.Point{geom.Pt(3.5, 1), geom.Pt(3.5, 4), geom.Pt(3.5, 9)}, ErrEmptySelection},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, _, err := ExtractPolygon(src, c.poly); !errors.Is(err, c.want) {
				t.Fatalf("got %v want %v", err, c.want)
			}
		})
	}
}

func TestIsImagePath(t *testing.T) {
	for path, want := range map[string]bool{
		"a.png":        true,
		"dir/B.JPEG":   true,
		"x.webp":       true,
		"notes.txt":    false,
		"no-extension": false,
	} {
		if got := IsImagePath(path); got != want {
			t.Fatalf("%s: got %v want %v", path, got, want)
		}
	}
}
