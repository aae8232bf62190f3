package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/paintbox/tools"
)

// toolBarTools are the tools with a toolbar button, in button order.
var toolBarTools = []tools.Tool{
	tools.Select,
	tools.Move,
	tools.Erase,
	tools.Brush,
	tools.Pen,
	tools.Rectangle,
}

// ToolBar mirrors the session's tool and rect mode onto the floating buttons.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	rectBtn *widget.Button
	onTool  func(tools.Tool)

	rectMode bool
}

func buildToolBar(theme *widget.Theme, fontFace *text.Face, onToolSelected func(tools.Tool), onRectMode func()) (*widget.Container, *ToolBar) {
	tb := &ToolBar{onTool: onToolSelected}

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(420, 48),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(toolbarColor)),
	)

	for _, t := range toolBarTools {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(t.String(), fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(56, 40),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				tb.click(t)
			}),
		)
		tb.buttons = append(tb.buttons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(tb.buttons))
	for _, b := range tb.buttons {
		elements = append(elements, b)
	}
	// the group only keeps the buttons exclusive; clicks go through click
	// and the checked button follows the session in Sync
	tb.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
	)

	tb.rectBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(rectModeLabel(false), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(72, 40),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onRectMode != nil {
				onRectMode()
			}
		}),
	)
	toolbar.AddChild(tb.rectBtn)

	tb.group.SetActive(nil)
	return toolbar, tb
}

// click selects t with toggle semantics, so clicking the checked tool
// returns to no tool.
func (tb *ToolBar) click(t tools.Tool) {
	if tb.onTool != nil {
		tb.onTool(t)
	}
}

// Sync checks the button of the session's tool, or none for tools.None, and
// relabels the rect mode toggle.
func (tb *ToolBar) Sync(t tools.Tool, rectMode bool) {
	var want widget.RadioGroupElement
	if i := toolButtonIndex(t); i >= 0 {
		want = tb.buttons[i]
	}
	if tb.group.Active() != want {
		tb.group.SetActive(want)
	}
	if rectMode != tb.rectMode {
		tb.rectMode = rectMode
		tb.rectBtn.Text().Label = rectModeLabel(rectMode)
	}
}

// toolButtonIndex is the button position of t, -1 when t has no button.
func toolButtonIndex(t tools.Tool) int {
	for i, bt := range toolBarTools {
		if bt == t {
			return i
		}
	}
	return -1
}

func rectModeLabel(on bool) string {
	if on {
		return "Rect: On"
	}
	return "Rect: Off"
}
