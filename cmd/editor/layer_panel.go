package main

import (
	"fmt"
	"slices"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/paintbox/canvas"
)

// LayerEntry is one row of the layer list.
type LayerEntry struct {
	Index   int
	Name    string
	Visible bool
}

func (e LayerEntry) label() string {
	if e.Visible {
		return fmt.Sprintf("%d. %s", e.Index+1, e.Name)
	}
	return fmt.Sprintf("%d. %s (hidden)", e.Index+1, e.Name)
}

// LayerActions are the layer operations the panel buttons trigger.
type LayerActions struct {
	Select     func(idx int)
	New        func()
	Delete     func()
	MoveUp     func()
	MoveDown   func()
	ToggleShow func(idx int)
}

// LayerPanel holds the list widget and the rows last pushed into it.
type LayerPanel struct {
	list    *widget.List
	entries []any
	shown   []LayerEntry
	active  int

	// suppressEvents keeps programmatic selection from being treated as a
	// user click.
	suppressEvents bool
}

func buildLayerPanel(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, actions LayerActions) *LayerPanel {
	lp := &LayerPanel{active: -1}

	parent.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Layers", fontFace, labelTextColor),
	))

	lp.list = widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if entry, ok := e.(LayerEntry); ok {
				return entry.label()
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			entry, ok := args.Entry.(LayerEntry)
			if !ok || lp.suppressEvents {
				return
			}
			if actions.Select != nil {
				actions.Select(entry.Index)
			}
		}),
	)
	parent.AddChild(lp.list)

	row := func(buttons ...*widget.Button) {
		c := widget.NewContainer(
			widget.ContainerOpts.Layout(
				widget.NewRowLayout(
					widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
					widget.RowLayoutOpts.Spacing(6),
				),
			),
		)
		for _, b := range buttons {
			c.AddChild(b)
		}
		parent.AddChild(c)
	}
	button := func(label string, fn func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(44, 28)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if fn != nil {
					fn()
				}
			}),
		)
	}

	row(
		button("New", actions.New),
		button("Delete", actions.Delete),
		button("Show/Hide", func() {
			if actions.ToggleShow == nil {
				return
			}
			if sel, ok := lp.list.SelectedEntry().(LayerEntry); ok {
				actions.ToggleShow(sel.Index)
			}
		}),
	)
	row(
		button("Up", actions.MoveUp),
		button("Down", actions.MoveDown),
	)
	return lp
}

// Sync pushes the stack into the list when it differs from what is shown.
func (lp *LayerPanel) Sync(s *canvas.Stack) {
	if lp == nil || lp.list == nil {
		return
	}
	rows := layerEntries(s)
	if !slices.Equal(rows, lp.shown) {
		lp.SetLayers(rows)
		lp.active = -1
	}
	if s.ActiveIndex() != lp.active {
		lp.SetSelected(s.ActiveIndex())
	}
}

func (lp *LayerPanel) SetLayers(rows []LayerEntry) {
	lp.suppressEvents = true
	entries := make([]any, len(rows))
	for i, r := range rows {
		entries[i] = r
	}
	lp.entries = entries
	lp.shown = rows
	lp.list.SetEntries(entries)
	lp.suppressEvents = false
}

func (lp *LayerPanel) SetSelected(idx int) {
	if idx < 0 || idx >= len(lp.entries) {
		return
	}
	lp.suppressEvents = true
	lp.list.SetSelectedEntry(lp.entries[idx])
	lp.active = idx
	lp.suppressEvents = false
}

func layerEntries(s *canvas.Stack) []LayerEntry {
	rows := make([]LayerEntry, 0, s.Len())
	for i, l := range s.Layers() {
		rows = append(rows, LayerEntry{Index: i, Name: l.Name, Visible: l.Visible})
	}
	return rows
}
