package raster

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/paintbox/canvas"
	"github.com/milk9111/paintbox/geom"
)

func TestSaveOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fill.png")
	if err := Save(path, Fill(6, 4, red)); err != nil {
		t.Fatalf("save: %v", err)
	}
	img, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if sz := img.Bounds().Size(); sz.X != 6 || sz.Y != 4 {
		t.Fatalf("size %v", sz)
	}
	if img.NRGBAAt(3, 2) != red {
		t.Fatalf("pixel %v", img.NRGBAAt(3, 2))
	}
}

func TestOpenRejectsUnknownExtension(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "doc.txt")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodePNG(Fill(2, 2, red))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Fatalf("not a png header: %x", data[:8])
	}
}

func TestExportPDF(t *testing.T) {
	s := canvas.NewStack("Layer 1")
	l := s.Active()
	l.AppendRect(canvas.NewRect(geom.Rect{X: 10, Y: 10, W: 100, H: 50}, color.NRGBA{R: 160, G: 160, B: 160, A: 255}))
	l.AppendStroke(canvas.NewStroke([]canvas.Stamp{{X: 20, Y: 20, Radius: 4}}, color.NRGBA{A: 255}))
	l.Background = &canvas.Background{Image: Fill(8, 8, red), Origin: geom.Pt(0, 0)}

	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := ExportPDF(path, s); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) < 5 || string(data[:5]) != "%PDF-" {
		t.Fatalf("missing pdf header")
	}
}

func TestExportPDFEmptyStack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := ExportPDF(path, canvas.NewStack("Layer 1")); err != nil {
		t.Fatalf("export: %v", err)
	}
}
