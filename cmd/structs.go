package cmd

import "fmt"

type Role int

const (
	Painter Role = 0x00 + iota
	Worker
)

type ViewMode int

const (
	View_Window ViewMode = 0x00 + iota
	View_Terminal
	View_Script
)

// Opcode is the first element of every wire command.
type Opcode int

const (
	Op_ClearPixel Opcode = 0x00 + iota
	Op_SetPixel
	Op_ClearAll
)

// PaintAction pins what a drag gesture does once its first cell fired.
type PaintAction int

const (
	Action_None PaintAction = 0x00 + iota
	Action_Drawing
	Action_Erasing
)

func (a PaintAction) String() string {
	switch a {
	case Action_Drawing:
		return "drawing"
	case Action_Erasing:
		return "erasing"
	default:
		return "none"
	}
}

type EventKind int

const (
	Event_PointerDown EventKind = 0x00 + iota
	Event_PointerMove
	Event_PointerUp
	Event_PointerCancel
	Event_KeyConfirm
	Event_ClearAll
	Event_ColorChange
)

type Settings struct {
	Role       Role
	View       ViewMode
	SideLength int
	Transport  string
	Baud       int
	Color      string
	LogLevel   string
	LogFile    string
	QueueSize  int
}

// Coordinate is a grid cell. It is comparable and used directly as a map key.
type Coordinate struct {
	X, Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Cell returns a pointer to a fresh Coordinate, for building events inline.
func Cell(x, y int) *Coordinate {
	return &Coordinate{X: x, Y: y}
}

// Command is one edit for the LED controller.
type Command struct {
	Op    Opcode
	Index int
	R     uint8
	G     uint8
	B     uint8
}

// Interaction is a resolved cell event as seen by the state machine.
// A nil Cell means the raw event did not land on any cell.
type Interaction struct {
	Cell     *Coordinate
	Dragging bool
	Color    string
}

// Event is a raw input event as produced by a view.
type Event struct {
	Kind    EventKind
	Cell    *Coordinate
	Primary bool   // primary pointer button held (PointerMove only)
	Color   string // Event_ColorChange only
}

const (
	DefaultSideLength = 16
	DefaultBaud       = 115200
	DefaultColor      = "#ff0000"
	DefaultQueueSize  = 64
)
