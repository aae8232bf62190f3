package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/paintbox/geom"
	"github.com/milk9111/paintbox/input"
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyEscape:    input.KeyEscape,
	ebiten.KeyDigit1:    input.Key1,
	ebiten.KeyNumpad1:   input.Key1,
	ebiten.KeyN:         input.KeyN,
	ebiten.KeyTab:       input.KeyTab,
	ebiten.KeyDelete:    input.KeyDelete,
	ebiten.KeyBackspace: input.KeyDelete,
	ebiten.KeyArrowUp:   input.KeyArrowUp,
	ebiten.KeyArrowDown: input.KeyArrowDown,
	ebiten.KeyZ:         input.KeyZ,
	ebiten.KeyY:         input.KeyY,
	ebiten.KeyS:         input.KeyS,
	ebiten.KeyM:         input.KeyM,
	ebiten.KeyE:         input.KeyE,
	ebiten.KeyB:         input.KeyB,
	ebiten.KeyP:         input.KeyP,
	ebiten.KeyR:         input.KeyR,
	ebiten.KeyC:         input.KeyC,
	ebiten.KeyJ:         input.KeyJ,
	ebiten.KeyO:         input.KeyO,
	ebiten.KeyHome:      input.KeyHome,
}

var buttonMap = []struct {
	ebiten ebiten.MouseButton
	input  input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonLeft},
	{ebiten.MouseButtonMiddle, input.ButtonMiddle},
	{ebiten.MouseButtonRight, input.ButtonRight},
}

// poller turns one tick of ebiten input state into session events.
type poller struct {
	last    geom.Point
	started bool
	keys    []ebiten.Key
}

func currentMods() input.Mods {
	var m input.Mods
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= input.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= input.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= input.ModAlt
	}
	return m
}

// Poll returns this tick's events in the order the session expects: close,
// motion, button presses, releases, wheel, then keys. Wheel input over the
// UI is dropped so list scrolling does not zoom the canvas.
func (p *poller) Poll(overUI bool) []input.Event {
	var events []input.Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, input.Quit{})
	}

	mods := currentMods()
	cx, cy := ebiten.CursorPosition()
	pos := geom.Pt(float64(cx), float64(cy))
	if !p.started {
		p.last = pos
		p.started = true
	}
	if pos != p.last {
		events = append(events, input.Motion{Pos: pos, Delta: pos.Sub(p.last), Mods: mods})
		p.last = pos
	}

	for _, b := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			events = append(events, input.ButtonDown{Button: b.input, Pos: pos, Mods: mods})
		}
	}
	for _, b := range buttonMap {
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			events = append(events, input.ButtonUp{Button: b.input, Pos: pos, Mods: mods})
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 && !overUI {
		events = append(events, input.Wheel{DY: dy, Pos: pos, Mods: mods})
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	events = appendKeys(events, p.keys, mods, func(k input.Key, m input.Mods) input.Event {
		return input.KeyDown{Key: k, Mods: m}
	})
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	events = appendKeys(events, p.keys, mods, func(k input.Key, m input.Mods) input.Event {
		return input.KeyUp{Key: k, Mods: m}
	})
	return events
}

func appendKeys(events []input.Event, keys []ebiten.Key, mods input.Mods, mk func(input.Key, input.Mods) input.Event) []input.Event {
	for _, k := range keys {
		if ik, ok := keyMap[k]; ok {
			events = append(events, mk(ik, mods))
		}
	}
	return events
}
