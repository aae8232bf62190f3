// Package document saves and loads a layer stack as JSON.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/milk9111/paintbox/canvas"
	"github.com/milk9111/paintbox/geom"
	"github.com/milk9111/paintbox/raster"
)

// Version is written into every saved document.
const Version = 1

type Document struct {
	Version int     `json:"version"`
	Active  int     `json:"active"`
	Layers  []Layer `json:"layers"`
}

type Layer struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Visible    bool        `json:"visible"`
	Rects      []Rect      `json:"rects,omitempty"`
	Strokes    []Stroke    `json:"strokes,omitempty"`
	Background *Background `json:"background,omitempty"`
}

type Rect struct {
	ID    string   `json:"id"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	W     float64  `json:"w"`
	H     float64  `json:"h"`
	Color [4]uint8 `json:"color"`
}

type Stroke struct {
	ID     string   `json:"id"`
	Color  [4]uint8 `json:"color"`
	Stamps []Stamp  `json:"stamps"`
}

type Stamp struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
}

// Background refers to its image file by Source. Images without a source,
// such as extracted selections, are stored inline as PNG.
type Background struct {
	Source  string  `json:"source,omitempty"`
	OriginX float64 `json:"origin_x"`
	OriginY float64 `json:"origin_y"`
	PNG     []byte  `json:"png,omitempty"`
}

// FromStack converts s into its saved form.
func FromStack(s *canvas.Stack) (*Document, error) {
	doc := &Document{Version: Version, Active: s.ActiveIndex()}
	for _, l := range s.Layers() {
		dl := Layer{ID: string(l.ID), Name: l.Name, Visible: l.Visible}
		for _, r := range l.Rects {
			dl.Rects = append(dl.Rects, Rect{
				ID: string(r.ID), X: r.Box.X, Y: r.Box.Y, W: r.Box.W, H: r.Box.H,
				Color: rgba(r.Color),
			})
		}
		for _, st := range l.Strokes {
			ds := Stroke{ID: string(st.ID), Color: rgba(st.Color), Stamps: make([]Stamp, len(st.Stamps))}
			for i, p := range st.Stamps {
				ds.Stamps[i] = Stamp{X: p.X, Y: p.Y, R: p.Radius}
			}
			dl.Strokes = append(dl.Strokes, ds)
		}
		if bg := l.Background; bg != nil && bg.Image != nil {
			db := &Background{Source: bg.Source, OriginX: bg.Origin.X, OriginY: bg.Origin.Y}
			if bg.Source == "" {
				data, err := raster.EncodePNG(bg.Image)
				if err != nil {
					return nil, fmt.Errorf("document: layer %q: %w", l.Name, err)
				}
				db.PNG = data
			}
			dl.Background = db
		}
		doc.Layers = append(doc.Layers, dl)
	}
	return doc, nil
}

// Stack rebuilds a layer stack. A background whose source file cannot be
// decoded is dropped with a log line so the rest of the document still opens.
func (d *Document) Stack() (*canvas.Stack, error) {
	if d.Version > Version {
		return nil, fmt.Errorf("document: version %d is newer than %d", d.Version, Version)
	}
	layers := make([]*canvas.Layer, 0, len(d.Layers))
	for _, dl := range d.Layers {
		l := &canvas.Layer{ID: canvas.LayerID(dl.ID), Name: dl.Name, Visible: dl.Visible}
		if l.ID == "" {
			l.ID = canvas.NewLayerID()
		}
		for _, r := range dl.Rects {
			id := canvas.ShapeID(r.ID)
			if id == "" {
				id = canvas.NewShapeID()
			}
			box := geom.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}.Normalize()
			l.Rects = append(l.Rects, &canvas.Rect{ID: id, Box: box, Color: nrgba(r.Color)})
		}
		for _, st := range dl.Strokes {
			id := canvas.ShapeID(st.ID)
			if id == "" {
				id = canvas.NewShapeID()
			}
			stamps := make([]canvas.Stamp, len(st.Stamps))
			for i, p := range st.Stamps {
				stamps[i] = canvas.Stamp{X: p.X, Y: p.Y, Radius: p.R}
			}
			l.Strokes = append(l.Strokes, &canvas.Stroke{ID: id, Stamps: stamps, Color: nrgba(st.Color)})
		}
		if dl.Background != nil {
			bg, err := dl.Background.decode()
			if err != nil {
				log.Printf("Background of layer %q skipped: %v", dl.Name, err)
			} else {
				l.Background = bg
			}
		}
		layers = append(layers, l)
	}
	if len(layers) == 0 {
		return canvas.NewStack("Layer 1"), nil
	}
	return canvas.NewStackFrom(layers, d.Active)
}

func (b *Background) decode() (*canvas.Background, error) {
	origin := geom.Point{X: b.OriginX, Y: b.OriginY}
	if len(b.PNG) > 0 {
		img, err := raster.Decode(bytes.NewReader(b.PNG))
		if err != nil {
			return nil, err
		}
		return &canvas.Background{Image: img, Origin: origin}, nil
	}
	img, err := raster.Open(b.Source)
	if err != nil {
		return nil, err
	}
	return &canvas.Background{Image: img, Origin: origin, Source: b.Source}, nil
}

// Save writes s to path as indented JSON.
func Save(path string, s *canvas.Stack) error {
	doc, err := FromStack(s)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("document: save %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("document: save %s: %w", path, err)
	}
	return nil
}

// Load reads a document saved by Save.
func Load(path string) (*canvas.Stack, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: load %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("document: unmarshal %s: %w", path, err)
	}
	return doc.Stack()
}

func rgba(c color.NRGBA) [4]uint8 { return [4]uint8{c.R, c.G, c.B, c.A} }

func nrgba(v [4]uint8) color.NRGBA {
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}
}
