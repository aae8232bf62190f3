package geom

import "testing"

func TestRectFromCorners(t *testing.T) {
	cases := []struct {
		name string
		a, b Point
		want Rect
	}{
		{"down-right", Pt(50, 50), Pt(150, 120), Rect{50, 50, 100, 70}},
		{"up-left", Pt(150, 120), Pt(50, 50), Rect{50, 50, 100, 70}},
		{"mixed", Pt(10, 90), Pt(40, 30), Rect{10, 30, 30, 60}},
		{"zero", Pt(5, 5), Pt(5, 5), Rect{5, 5, 0, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := RectFromCorners(c.a, c.b)
			if got != c.want {
				t.Fatalf("got %+v want %+v", got, c.want)
			}
			if got.W < 0 || got.H < 0 {
				t.Fatalf("not normalized: %+v", got)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	got := Rect{X: 100, Y: 100, W: -40, H: -10}.Normalize()
	want := Rect{X: 60, Y: 90, W: 40, H: 10}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestContainsInclusive(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	for _, p := range []Point{Pt(0, 0), Pt(10, 10), Pt(10, 0), Pt(5, 5)} {
		if !r.Contains(p) {
			t.Fatalf("expected %+v inside", p)
		}
	}
	for _, p := range []Point{Pt(-0.01, 5), Pt(10.01, 5), Pt(5, 11)} {
		if r.Contains(p) {
			t.Fatalf("expected %+v outside", p)
		}
	}
}

func TestBounds(t *testing.T) {
	if _, ok := Bounds(nil); ok {
		t.Fatalf("expected no bounds for empty input")
	}
	got, ok := Bounds([]Point{Pt(3, 8), Pt(-2, 4), Pt(7, 1)})
	if !ok {
		t.Fatalf("expected bounds")
	}
	want := Rect{X: -2, Y: 1, W: 9, H: 7}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestInPolygon(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	// concave "L"
	ell := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 4), Pt(4, 4), Pt(4, 10), Pt(0, 10)}

	cases := []struct {
		name string
		poly []Point
		p    Point
		want bool
	}{
		{"square centre", square, Pt(5, 5), true},
		{"square outside", square, Pt(15, 5), false},
		{"ell arm", ell, Pt(2, 8), true},
		{"ell notch", ell, Pt(8, 8), false},
		{"degenerate", square[:2], Pt(1, 0), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := InPolygon(c.p, c.poly); got != c.want {
				t.Fatalf("InPolygon(%+v) = %v want %v", c.p, got, c.want)
			}
		})
	}
}
