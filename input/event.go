// Package input defines the window-system independent events the editor
// session consumes.
package input

import "github.com/milk9111/paintbox/geom"

// Mods is a bitmask of held modifier keys.
type Mods uint8

const (
	ModCtrl Mods = 1 << iota
	ModShift
	ModAlt
)

func (m Mods) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Mods) Shift() bool { return m&ModShift != 0 }
func (m Mods) Alt() bool   { return m&ModAlt != 0 }

// Key is a keyboard key the editor binds.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	Key1
	KeyN
	KeyTab
	KeyDelete
	KeyArrowUp
	KeyArrowDown
	KeyZ
	KeyY
	KeyS
	KeyM
	KeyE
	KeyB
	KeyP
	KeyR
	KeyC
	KeyJ
	KeyO
	KeyHome
)

var keyNames = map[Key]string{
	KeyEscape:    "Esc",
	Key1:         "1",
	KeyN:         "N",
	KeyTab:       "Tab",
	KeyDelete:    "Delete",
	KeyArrowUp:   "Up",
	KeyArrowDown: "Down",
	KeyZ:         "Z",
	KeyY:         "Y",
	KeyS:         "S",
	KeyM:         "M",
	KeyE:         "E",
	KeyB:         "B",
	KeyP:         "P",
	KeyR:         "R",
	KeyC:         "C",
	KeyJ:         "J",
	KeyO:         "O",
	KeyHome:      "Home",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Button is a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Event is one of the event structs below.
type Event interface {
	event()
}

// Quit asks the session to stop, e.g. the window was closed.
type Quit struct{}

type KeyDown struct {
	Key  Key
	Mods Mods
}

type KeyUp struct {
	Key  Key
	Mods Mods
}

type ButtonDown struct {
	Button Button
	Pos    geom.Point
	Mods   Mods
}

type ButtonUp struct {
	Button Button
	Pos    geom.Point
	Mods   Mods
}

// Motion is a pointer move. Delta is relative to the previous position.
type Motion struct {
	Pos   geom.Point
	Delta geom.Point
	Mods  Mods
}

// Wheel is a scroll. DY > 0 scrolls up.
type Wheel struct {
	DY   float64
	Pos  geom.Point
	Mods Mods
}

func (Quit) event()       {}
func (KeyDown) event()    {}
func (KeyUp) event()      {}
func (ButtonDown) event() {}
func (ButtonUp) event()   {}
func (Motion) event()     {}
func (Wheel) event()      {}
