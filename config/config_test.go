package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Fatalf("window %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Brush.InitialRadius != 4 || cfg.Brush.MinRadius != 1 || cfg.Brush.MaxRadius != 50 {
		t.Fatalf("brush %+v", cfg.Brush)
	}
	if cfg.Brush.Spacing != 1.5 {
		t.Fatalf("spacing %v", cfg.Brush.Spacing)
	}
	if cfg.Camera.ZoomStep != 0.1 {
		t.Fatalf("zoom step %v", cfg.Camera.ZoomStep)
	}
	if cfg.Colors.Rect.NRGBA != (color.NRGBA{R: 160, G: 160, B: 160, A: 255}) {
		t.Fatalf("rect color %+v", cfg.Colors.Rect)
	}
	if cfg.Colors.DragFill.A != 0x80 {
		t.Fatalf("drag fill alpha %d", cfg.Colors.DragFill.A)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("brush:\n  max_radius: 80\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Brush.MaxRadius != 80 {
		t.Fatalf("max radius %v", cfg.Brush.MaxRadius)
	}
	if cfg.Brush.MinRadius != 1 || cfg.Window.TPS != 60 {
		t.Fatalf("defaults lost: %+v %+v", cfg.Brush, cfg.Window)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"scale range", "camera:\n  min_scale: 2\n  max_scale: 1\n", "scale range"},
		{"brush range", "brush:\n  min_radius: 0\n", "brush radius"},
		{"bad color", "colors:\n  rect: \"#12\"\n", "invalid color"},
		{"color not scalar", "colors:\n  rect: [1, 2]\n", "must be a string"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("expected error containing %q, got %v", c.want, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.yaml")
	if err := os.WriteFile(path, []byte("window:\n  title: test\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Window.Title != "test" {
		t.Fatalf("title %q", cfg.Window.Title)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestColorHex(t *testing.T) {
	cases := map[string]string{
		"#a0a0a0":   "#a0a0a0",
		"00ff0080":  "#00ff0080",
		"#FFFFFFFF": "#ffffff",
	}
	for in, want := range cases {
		c, err := ParseHex(in)
		if err != nil {
			t.Fatalf("parse %s: %v", in, err)
		}
		if got := (Color{c}).Hex(); got != want {
			t.Fatalf("%s: got %s want %s", in, got, want)
		}
	}
}
