package tools

import "github.com/milk9111/paintbox/geom"

// Chrome reports whether a screen point is over UI that owns the click.
// It is asked before any canvas tool on every button-down.
type Chrome interface {
	Contains(p geom.Point) bool
}

// Regions is a fixed set of screen rects acting as chrome.
type Regions []geom.Rect

func (r Regions) Contains(p geom.Point) bool {
	for _, rect := range r {
		if rect.Contains(p) {
			return true
		}
	}
	return false
}

// ChromeFunc adapts a function to Chrome.
type ChromeFunc func(p geom.Point) bool

func (f ChromeFunc) Contains(p geom.Point) bool { return f(p) }

// Host performs the side effects the session requests but cannot carry out
// itself. Errors are logged by the session and never change editor state.
type Host interface {
	// PickImage returns the path of an image to place on the active layer.
	PickImage() (string, error)
	// ExportFrame writes the current frame out.
	ExportFrame() error
	// SaveDocument persists the layer stack.
	SaveDocument() error
	// ExportPDF writes a vector rendition of the visible layers.
	ExportPDF() error
}
