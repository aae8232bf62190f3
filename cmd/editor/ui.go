package main

import (
	"bytes"
	"image"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/paintbox/canvas"
	"github.com/milk9111/paintbox/geom"
	"github.com/milk9111/paintbox/tools"
)

const sidebarWidth = 220

// editorUI is the toolbar and layer sidebar drawn over the canvas. It stays
// hidden during the intro fade, then slides in from the left.
type editorUI struct {
	ui      *ebitenui.UI
	sidebar *widget.Container
	toolbar *widget.Container
	toolBar *ToolBar
	layers  *LayerPanel

	slide     float64
	offscreen *ebiten.Image
}

func buildEditorUI(s *tools.Session) *editorUI {
	ui := &ebitenui.UI{}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: src, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolbar, toolBar := buildToolBar(ui.PrimaryTheme, &fontFace, s.SelectTool, s.ToggleRectMode)

	sidebar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(sidebarWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
			),
		),
	)
	layers := buildLayerPanel(sidebar, ui.PrimaryTheme, &fontFace, LayerActions{
		Select:     s.ActivateLayer,
		New:        s.AddLayer,
		Delete:     s.RemoveActiveLayer,
		MoveUp:     func() { s.MoveActiveLayer(canvas.Up) },
		MoveDown:   func() { s.MoveActiveLayer(canvas.Down) },
		ToggleShow: s.ToggleLayerVisibility,
	})

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	sidebar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	toolbar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(sidebar)
	root.AddChild(toolbar)
	ui.Container = root

	e := &editorUI{
		ui:      ui,
		sidebar: sidebar,
		toolbar: toolbar,
		toolBar: toolBar,
		layers:  layers,
	}
	e.Sync(s)
	return e
}

func (e *editorUI) shown() bool { return e.slide > 0 }

// settled reports whether the panels have finished sliding in and sit at
// their layout rects.
func (e *editorUI) settled() bool { return e.slide >= 1 }

// Update runs the widgets. slide is the intro progress in [0,1].
func (e *editorUI) Update(slide float64) {
	e.slide = slide
	if e.shown() {
		e.ui.Update()
	}
}

// Sync mirrors session state changed by the keyboard into the widgets.
func (e *editorUI) Sync(s *tools.Session) {
	e.toolBar.Sync(s.Tool(), s.RectMode())
	e.layers.Sync(s.Stack())
}

// Contains reports whether p is over a panel, so the canvas leaves the click
// to the widgets. Panels still sliding in are not hit.
func (e *editorUI) Contains(p geom.Point) bool {
	if !e.settled() {
		return false
	}
	pt := image.Pt(int(p.X), int(p.Y))
	return pt.In(e.sidebar.GetWidget().Rect) || pt.In(e.toolbar.GetWidget().Rect)
}

// Hovered reports whether the pointer is over any widget as of the last
// Update.
func (e *editorUI) Hovered() bool {
	return e.settled() && ebuiinput.UIHovered
}

func (e *editorUI) Draw(screen *ebiten.Image) {
	if !e.shown() {
		return
	}
	if e.settled() {
		e.ui.Draw(screen)
		return
	}

	size := screen.Bounds().Size()
	if e.offscreen == nil || e.offscreen.Bounds().Size() != size {
		if e.offscreen != nil {
			e.offscreen.Deallocate()
		}
		e.offscreen = ebiten.NewImage(size.X, size.Y)
	}
	e.offscreen.Clear()
	e.ui.Draw(e.offscreen)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-(1-e.slide)*sidebarWidth, 0)
	screen.DrawImage(e.offscreen, op)
}
