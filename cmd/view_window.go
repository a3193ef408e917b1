//go:build !tinygo && cgo

package cmd

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
)

const (
	windowCellPx   = 24
	windowBarPx    = 32
	windowGapPx    = 1
	windowSwatchPx = 24
)

var swatchKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

var (
	windowBackground = color.RGBA{0x20, 0x20, 0x20, 0xFF}
	windowEmptyCell  = color.RGBA{0x38, 0x38, 0x38, 0xFF}
	windowFocus      = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

// WindowView keeps the rendered cell colors for the desktop window.
type WindowView struct {
	cells map[Coordinate]color.RGBA
}

func NewWindowView() *WindowView {
	return &WindowView{cells: make(map[Coordinate]color.RGBA)}
}

func (v *WindowView) PaintCell(c Coordinate, hex string) {
	v.cells[c] = rgbaOf(hex)
}

func (v *WindowView) ClearCell(c Coordinate) {
	delete(v.cells, c)
}

func (v *WindowView) RegenerateGrid(sideLength int, drawing *Drawing) {
	v.cells = make(map[Coordinate]color.RGBA, drawing.Len())
	for _, c := range drawing.Cells() {
		hex, _ := drawing.Get(c)
		v.cells[c] = rgbaOf(hex)
	}
}

// RunWindow opens the painter window and blocks until it closes.
func RunWindow(view *WindowView, s *Session, palette *Palette) error {
	g := &windowGame{
		view:    view,
		session: s,
		palette: palette,
		focus:   NewFocus(s.SideLength()),
		log:     log.WithField("component", "window"),
	}

	side := s.SideLength() * windowCellPx
	ebiten.SetWindowTitle("pixel-dispatch")
	ebiten.SetWindowSize(side*2, (side+windowBarPx)*2)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type windowGame struct {
	view    *WindowView
	session *Session
	palette *Palette
	focus   *Focus

	pressed bool
	lastX   int
	lastY   int

	log *logrus.Entry
}

func (g *windowGame) Update() error {
	g.pollPointer()
	return g.pollKeys()
}

func (g *windowGame) pollPointer() {
	mx, my := ebiten.CursorPosition()
	side := g.session.SideLength()
	cell := CellFromPoint(mx, my, 0, 0, windowCellPx, windowCellPx, side)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if swatch := g.swatchAt(mx, my); swatch != "" {
			g.dispatch(Event{Kind: Event_ColorChange, Color: swatch})
			return
		}
		g.pressed = true
		g.lastX, g.lastY = mx, my
		if cell != nil {
			g.focus.Coordinate = *cell
		}
		g.dispatch(Event{Kind: Event_PointerDown, Cell: cell})
		return
	}

	if g.pressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pressed = false
		g.dispatch(Event{Kind: Event_PointerUp})
		return
	}

	if mx == g.lastX && my == g.lastY {
		return
	}
	g.lastX, g.lastY = mx, my
	if g.pressed {
		g.dispatch(Event{Kind: Event_PointerMove, Cell: cell, Primary: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)})
	}
}

func (g *windowGame) pollKeys() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.focus.Move(0, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.focus.Move(0, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.focus.Move(-1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.focus.Move(1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.dispatch(Event{Kind: Event_KeyConfirm, Cell: g.focus.Cell()})
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.dispatch(Event{Kind: Event_ClearAll})
	}

	for i, key := range swatchKeys {
		if inpututil.IsKeyJustPressed(key) {
			if swatch := g.palette.Swatch(i); swatch != "" {
				g.dispatch(Event{Kind: Event_ColorChange, Color: swatch})
			}
		}
	}
	return nil
}

func (g *windowGame) dispatch(ev Event) {
	if err := g.session.Dispatch(ev); err != nil {
		g.log.WithError(err).Error("Interaction rejected")
	}
}

// swatchAt returns the swatch under the palette bar position, or "".
func (g *windowGame) swatchAt(mx, my int) string {
	top := g.session.SideLength() * windowCellPx
	if my < top+(windowBarPx-windowSwatchPx)/2 || my >= top+(windowBarPx+windowSwatchPx)/2 {
		return ""
	}
	if mx < 0 {
		return ""
	}
	return g.palette.Swatch(mx / windowSwatchPx)
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	screen.Fill(windowBackground)
	side := g.session.SideLength()

	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			clr, ok := g.view.cells[Coordinate{X: x, Y: y}]
			if !ok {
				clr = windowEmptyCell
			}
			vector.DrawFilledRect(screen,
				float32(x*windowCellPx+windowGapPx), float32(y*windowCellPx+windowGapPx),
				float32(windowCellPx-2*windowGapPx), float32(windowCellPx-2*windowGapPx),
				clr, false)
		}
	}

	f := g.focus.Coordinate
	vector.StrokeRect(screen,
		float32(f.X*windowCellPx), float32(f.Y*windowCellPx),
		float32(windowCellPx), float32(windowCellPx),
		2, windowFocus, false)

	top := float32(side*windowCellPx + (windowBarPx-windowSwatchPx)/2)
	selected := g.palette.SelectedColor()
	for i, hex := range g.palette.Swatches {
		x := float32(i * windowSwatchPx)
		vector.DrawFilledRect(screen, x+2, top+2, windowSwatchPx-4, windowSwatchPx-4, rgbaOf(hex), false)
		if hex == selected {
			vector.StrokeRect(screen, x+1, top+1, windowSwatchPx-2, windowSwatchPx-2, 2, windowFocus, false)
		}
	}
}

func (g *windowGame) Layout(_, _ int) (int, int) {
	side := g.session.SideLength() * windowCellPx
	return side, side + windowBarPx
}

func rgbaOf(hex string) color.RGBA {
	r, g, b, err := HexToRGB(hex)
	if err != nil {
		return windowEmptyCell
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
