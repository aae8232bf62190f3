package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
)

var (
	panelColor     = color.RGBA{40, 40, 40, 255}
	toolbarColor   = color.RGBA{220, 220, 240, 255}
	labelTextColor = &widget.LabelColor{Idle: colornames.White, Disabled: colornames.Gray}
)

func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          colornames.Black,
				Selected:            colornames.Navy,
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: color.RGBA{200, 220, 255, 255},
				SelectedBackground:  colornames.Lightsteelblue,
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(colornames.Gainsboro),
				Mask: solidNineSlice(colornames.Gainsboro),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover:   solidNineSlice(color.RGBA{200, 200, 200, 255}),
				Pressed: solidNineSlice(color.RGBA{160, 160, 160, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:     colornames.Black,
				Hover:    colornames.Black,
				Pressed:  colornames.Mediumblue,
				Disabled: colornames.Gray,
			},
		},
	}
}
