//go:build !tinygo

package cmd

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Each grid cell is two terminal columns wide so it renders roughly square.
const terminalCellW = 2

var terminalEmptyCell = tcell.NewRGBColor(0x38, 0x38, 0x38)

// TerminalView draws the grid into a tcell screen and turns terminal mouse and
// key events into session events.
type TerminalView struct {
	screen  tcell.Screen
	side    int
	cells   map[Coordinate]tcell.Color
	focus   *Focus
	palette *Palette
	session *Session

	pressed bool
	lastHit *Coordinate

	log *logrus.Entry
}

func NewTerminalView(screen tcell.Screen, palette *Palette) *TerminalView {
	return &TerminalView{
		screen:  screen,
		cells:   make(map[Coordinate]tcell.Color),
		palette: palette,
		log:     log.WithField("component", "terminal"),
	}
}

func (v *TerminalView) PaintCell(c Coordinate, hex string) {
	v.cells[c] = tcellColor(hex)
	v.drawCell(c)
	v.screen.Show()
}

func (v *TerminalView) ClearCell(c Coordinate) {
	delete(v.cells, c)
	v.drawCell(c)
	v.screen.Show()
}

func (v *TerminalView) RegenerateGrid(sideLength int, drawing *Drawing) {
	v.side = sideLength
	if v.focus == nil || v.focus.side != sideLength {
		v.focus = NewFocus(sideLength)
	}
	v.cells = make(map[Coordinate]tcell.Color, drawing.Len())
	for _, c := range drawing.Cells() {
		hex, _ := drawing.Get(c)
		v.cells[c] = tcellColor(hex)
	}
	v.redraw()
}

// Attach connects the view to the session it feeds.
func (v *TerminalView) Attach(s *Session) {
	v.session = s
	if v.focus == nil {
		v.focus = NewFocus(s.SideLength())
	}
	v.redraw()
}

// RunTerminal blocks until the user quits with q, Escape or Ctrl-C.
func RunTerminal(v *TerminalView) error {
	if v.session == nil {
		return fmt.Errorf("terminal view has no session attached")
	}
	v.screen.EnableMouse()
	defer v.screen.Fini()

	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if quit := v.HandleEvent(ev); quit {
			return nil
		}
	}
}

// Stop makes RunTerminal return. It is safe to call from any goroutine.
func (v *TerminalView) Stop() {
	if err := v.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		v.log.WithError(err).Warn("Stop request lost")
	}
}

// HandleEvent processes one terminal event and reports whether to quit.
func (v *TerminalView) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		return true

	case *tcell.EventResize:
		v.screen.Sync()
		v.redraw()

	case *tcell.EventMouse:
		v.handleMouse(ev)

	case *tcell.EventKey:
		return v.handleKey(ev)
	}
	return false
}

func (v *TerminalView) handleMouse(ev *tcell.EventMouse) {
	mx, my := ev.Position()
	cell := CellFromPoint(mx, my, 0, 0, terminalCellW, 1, v.side)
	held := ev.Buttons()&tcell.Button1 != 0

	switch {
	case held && !v.pressed:
		if swatch := v.swatchAt(mx, my); swatch != "" {
			v.dispatch(Event{Kind: Event_ColorChange, Color: swatch})
			v.drawStatus()
			v.screen.Show()
			return
		}
		v.pressed = true
		v.lastHit = cell
		if cell != nil {
			v.moveFocusTo(*cell)
		}
		v.dispatch(Event{Kind: Event_PointerDown, Cell: cell})

	case held && v.pressed:
		if sameTarget(v.lastHit, cell) {
			return
		}
		v.lastHit = cell
		v.dispatch(Event{Kind: Event_PointerMove, Cell: cell, Primary: true})

	case !held && v.pressed:
		v.pressed = false
		v.lastHit = nil
		v.dispatch(Event{Kind: Event_PointerUp})
	}
}

func (v *TerminalView) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.shiftFocus(0, -1)
	case tcell.KeyDown:
		v.shiftFocus(0, 1)
	case tcell.KeyLeft:
		v.shiftFocus(-1, 0)
	case tcell.KeyRight:
		v.shiftFocus(1, 0)
	case tcell.KeyEnter:
		v.dispatch(Event{Kind: Event_KeyConfirm, Cell: v.focus.Cell()})
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return true
		case r == ' ':
			v.dispatch(Event{Kind: Event_KeyConfirm, Cell: v.focus.Cell()})
		case r == 'c':
			v.dispatch(Event{Kind: Event_ClearAll})
		case r >= '1' && r <= '9':
			if swatch := v.palette.Swatch(int(r - '1')); swatch != "" {
				v.dispatch(Event{Kind: Event_ColorChange, Color: swatch})
				v.drawStatus()
				v.screen.Show()
			}
		}
	}
	return false
}

func (v *TerminalView) dispatch(ev Event) {
	if err := v.session.Dispatch(ev); err != nil {
		v.log.WithError(err).Error("Interaction rejected")
	}
}

func (v *TerminalView) shiftFocus(dx, dy int) {
	prev := v.focus.Coordinate
	v.focus.Move(dx, dy)
	v.drawCell(prev)
	v.drawCell(v.focus.Coordinate)
	v.screen.Show()
}

func (v *TerminalView) moveFocusTo(c Coordinate) {
	prev := v.focus.Coordinate
	v.focus.Coordinate = c
	v.drawCell(prev)
	v.drawCell(c)
}

func (v *TerminalView) redraw() {
	v.screen.Clear()
	for x := 0; x < v.side; x++ {
		for y := 0; y < v.side; y++ {
			v.drawCell(Coordinate{X: x, Y: y})
		}
	}
	v.drawStatus()
	v.screen.Show()
}

func (v *TerminalView) drawCell(c Coordinate) {
	bg, ok := v.cells[c]
	if !ok {
		bg = terminalEmptyCell
	}
	style := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite)
	left, right := ' ', ' '
	if v.focus != nil && v.focus.Coordinate == c {
		left, right = '[', ']'
	}
	v.screen.SetContent(c.X*terminalCellW, c.Y, left, nil, style)
	v.screen.SetContent(c.X*terminalCellW+1, c.Y, right, nil, style)
}

// The status row sits one line below the grid: swatches, then help text.
func (v *TerminalView) drawStatus() {
	row := v.side + 1
	selected := v.palette.SelectedColor()
	for i, hex := range v.palette.Swatches {
		style := tcell.StyleDefault.Background(tcellColor(hex)).Foreground(tcell.ColorBlack)
		mark := ' '
		if hex == selected {
			mark = '*'
		}
		v.screen.SetContent(i*terminalCellW, row, mark, nil, style)
		v.screen.SetContent(i*terminalCellW+1, row, ' ', nil, style)
	}

	help := fmt.Sprintf(" %s  arrows move  space/enter paint  1-%d color  c clear  q quit", selected, len(v.palette.Swatches))
	col := len(v.palette.Swatches) * terminalCellW
	for i, r := range help {
		v.screen.SetContent(col+i, row, r, nil, tcell.StyleDefault)
	}
}

func (v *TerminalView) swatchAt(mx, my int) string {
	if my != v.side+1 || mx < 0 {
		return ""
	}
	return v.palette.Swatch(mx / terminalCellW)
}

func sameTarget(a, b *Coordinate) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func tcellColor(hex string) tcell.Color {
	r, g, b, err := HexToRGB(hex)
	if err != nil {
		return terminalEmptyCell
	}
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
