// Command cutout copies a polygon out of an image into a new, tightly
// cropped image, as the editor's pen tool does for layers.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/milk9111/paintbox/config"
	"github.com/milk9111/paintbox/geom"
	"github.com/milk9111/paintbox/raster"
)

func main() {
	in := flag.String("in", "", "Source image")
	out := flag.String("out", "cutout.png", "Output image; the extension picks the format")
	poly := flag.String("poly", "", "Polygon in source pixels, as x,y;x,y;x,y")
	outline := flag.Int("outline", 0, "Outline thickness in pixels around the cut-out, 0 for none")
	outlineColor := flag.String("outline-color", "#ff0000", "Outline color as #rrggbb or #rrggbbaa")
	flag.Parse()

	if *in == "" || *poly == "" {
		flag.Usage()
		log.Fatal("cutout: -in and -poly are required")
	}
	pts, err := parsePolygon(*poly)
	if err != nil {
		log.Fatalf("cutout: %v", err)
	}
	src, err := raster.Open(*in)
	if err != nil {
		log.Fatalf("cutout: %v", err)
	}
	img, clip, err := raster.ExtractPolygon(src, pts)
	if err != nil {
		log.Fatalf("cutout: %v", err)
	}
	if *outline > 0 {
		c, err := config.ParseHex(*outlineColor)
		if err != nil {
			log.Fatalf("cutout: %v", err)
		}
		img = raster.Outline(img, *outline, c)
	}
	if err := raster.Save(*out, img); err != nil {
		log.Fatalf("cutout: %v", err)
	}
	log.Printf("cutout: wrote %s (%dx%d from %v)", *out, clip.Dx(), clip.Dy(), clip.Min)
}

// parsePolygon reads "x,y;x,y;..." into points. Whitespace around numbers
// and a trailing separator are allowed.
func parsePolygon(s string) ([]geom.Point, error) {
	var pts []geom.Point
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("vertex %q: want x,y", pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("vertex %q: %w", pair, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("vertex %q: %w", pair, err)
		}
		pts = append(pts, geom.Pt(x, y))
	}
	return pts, nil
}
