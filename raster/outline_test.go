package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestOutline(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 7, 7))
	src.SetNRGBA(3, 3, color.NRGBA{255, 255, 255, 255})
	red := color.NRGBA{255, 0, 0, 255}

	tests := []struct {
		name      string
		thickness int
		x, y      int
		want      color.NRGBA
	}{
		{"source kept", 1, 3, 3, color.NRGBA{255, 255, 255, 255}},
		{"adjacent", 1, 2, 3, red},
		{"diagonal", 1, 4, 4, red},
		{"beyond thickness", 1, 1, 3, color.NRGBA{}},
		{"thicker reaches", 2, 1, 3, red},
		{"zero thickness", 0, 2, 3, color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Outline(src, tt.thickness, red)
			if got := out.NRGBAAt(tt.x, tt.y); got != tt.want {
				t.Fatalf("pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.want, got)
			}
		})
	}
}

func TestOutlineLeavesSourceAlone(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	src.SetNRGBA(1, 1, color.NRGBA{0, 0, 0, 255})
	Outline(src, 1, color.NRGBA{255, 0, 0, 255})
	if src.NRGBAAt(0, 0).A != 0 {
		t.Fatalf("source image was modified")
	}
}
