package tools

// Tool is the active canvas tool. Selecting the active tool again returns to
// None.
type Tool int

const (
	None Tool = iota
	Select
	Move
	Erase
	Brush
	Pen
	Rectangle
)

// All lists the selectable tools in toolbar order.
var All = []Tool{Select, Move, Erase, Brush, Pen, Rectangle}

func (t Tool) String() string {
	switch t {
	case Select:
		return "Select"
	case Move:
		return "Move"
	case Erase:
		return "Erase"
	case Brush:
		return "Brush"
	case Pen:
		return "Pen"
	case Rectangle:
		return "Rectangle"
	default:
		return "None"
	}
}
