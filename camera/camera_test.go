package camera

import (
	"testing"

	"github.com/milk9111/paintbox/geom"
)

const eps = 1e-9

func TestRoundTrip(t *testing.T) {
	transforms := []Transform{
		{Scale: 1},
		{Scale: 2.5, Offset: geom.Pt(-40, 17)},
		{Scale: 0.1, Offset: geom.Pt(300, 300)},
		{Scale: 7.3, Offset: geom.Pt(0.25, -1000)},
	}
	points := []geom.Point{geom.Pt(0, 0), geom.Pt(400, 300), geom.Pt(-12.5, 9999), geom.Pt(1280, 720)}
	for _, tr := range transforms {
		for _, p := range points {
			got := tr.WorldToScreen(tr.ScreenToWorld(p))
			if !got.Eq(p, eps) {
				t.Fatalf("scale %v offset %+v: round trip %+v -> %+v", tr.Scale, tr.Offset, p, got)
			}
		}
	}
}

func TestZoomAtCursor(t *testing.T) {
	tr := New(DefaultMinScale, DefaultMaxScale)
	cursor := geom.Pt(400, 300)
	tr.ZoomBy(cursor, 1, DefaultStep)

	if tr.Scale != 1.1 {
		t.Fatalf("expected scale 1.1, got %v", tr.Scale)
	}
	if got := tr.WorldToScreen(geom.Pt(400, 300)); !got.Eq(cursor, eps) {
		t.Fatalf("world point drifted to %+v", got)
	}
}

func TestZoomClamp(t *testing.T) {
	tr := New(0.5, 2)
	tr.ZoomAt(geom.Pt(10, 10), 100)
	if tr.Scale != 2 {
		t.Fatalf("expected clamp to 2, got %v", tr.Scale)
	}
	tr.ZoomBy(geom.Pt(10, 10), -50, DefaultStep)
	if tr.Scale != 0.5 {
		t.Fatalf("expected clamp to 0.5, got %v", tr.Scale)
	}
}

func TestPanUsesScreenUnits(t *testing.T) {
	tr := New(DefaultMinScale, DefaultMaxScale)
	tr.ZoomAt(geom.Pt(0, 0), 2)
	before := tr.ScreenToWorld(geom.Pt(100, 100))
	tr.Pan(20, -10)
	if tr.Offset != geom.Pt(20, -10) {
		t.Fatalf("offset %+v", tr.Offset)
	}
	after := tr.ScreenToWorld(geom.Pt(120, 90))
	if !after.Eq(before, eps) {
		t.Fatalf("pan should move content with the pointer: %+v vs %+v", before, after)
	}
}

func TestScreenRectToWorld(t *testing.T) {
	tr := &Transform{Scale: 2, Offset: geom.Pt(10, 20), MinScale: 0.1, MaxScale: 10}
	got := tr.ScreenRectToWorld(geom.Rect{X: 10, Y: 20, W: 100, H: 40})
	want := geom.Rect{X: 0, Y: 0, W: 50, H: 20}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}
