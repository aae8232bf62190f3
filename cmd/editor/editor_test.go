package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/paintbox/canvas"
	"github.com/milk9111/paintbox/geom"
	"github.com/milk9111/paintbox/input"
	"github.com/milk9111/paintbox/tools"
)

func TestLayerEntries(t *testing.T) {
	s := canvas.NewStack("Layer 1")
	s.AddLayer("Layer 2")
	s.ToggleVisibility(0)

	got := layerEntries(s)
	want := []string{"1. Layer 1 (hidden)", "2. Layer 2"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i, e := range got {
		if e.Index != i {
			t.Fatalf("entry %d has index %d", i, e.Index)
		}
		if e.label() != want[i] {
			t.Fatalf("entry %d: expected %q, got %q", i, want[i], e.label())
		}
	}
}

func TestKeyMapCoversBindings(t *testing.T) {
	bound := make(map[input.Key]bool)
	for _, k := range keyMap {
		bound[k] = true
	}
	for k := input.KeyEscape; k <= input.KeyHome; k++ {
		if !bound[k] {
			t.Fatalf("no ebiten key maps to %s", k)
		}
	}
}

func TestToolButtonClickToggles(t *testing.T) {
	s := tools.NewSession(tools.DefaultSettings())
	tb := &ToolBar{onTool: s.SelectTool}

	tb.click(tools.Pen)
	if s.Tool() != tools.Pen {
		t.Fatalf("expected pen after first click, got %s", s.Tool())
	}
	tb.click(tools.Brush)
	if s.Tool() != tools.Brush {
		t.Fatalf("expected brush after switching, got %s", s.Tool())
	}
	tb.click(tools.Brush)
	if s.Tool() != tools.None {
		t.Fatalf("expected no tool after clicking the active one, got %s", s.Tool())
	}
	if i := toolButtonIndex(s.Tool()); i != -1 {
		t.Fatalf("no tool should leave every button unchecked, got index %d", i)
	}
}

func TestToolButtonIndex(t *testing.T) {
	for i, tool := range toolBarTools {
		if got := toolButtonIndex(tool); got != i {
			t.Fatalf("%s: expected index %d, got %d", tool, i, got)
		}
	}
	if got := toolButtonIndex(tools.None); got != -1 {
		t.Fatalf("none: expected -1, got %d", got)
	}
}

func TestUIContainsIgnoresSlidingPanels(t *testing.T) {
	tests := []struct {
		name  string
		slide float64
	}{
		{"hidden", 0},
		{"half way", 0.5},
		{"almost", 0.99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &editorUI{slide: tt.slide}
			if e.Contains(geom.Pt(1, 1)) {
				t.Fatalf("panels at slide %v should not take clicks", tt.slide)
			}
			if e.Hovered() {
				t.Fatalf("panels at slide %v should not report hover", tt.slide)
			}
		})
	}
}

func TestRectModeLabel(t *testing.T) {
	if rectModeLabel(true) == rectModeLabel(false) {
		t.Fatalf("labels should differ")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	if fileExists(path) {
		t.Fatalf("missing file reported as existing")
	}
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !fileExists(path) {
		t.Fatalf("existing file reported as missing")
	}
}
