package cmd

import "fmt"

// Focus is the keyboard cursor. It clamps to the grid.
type Focus struct {
	Coordinate
	side int
}

func NewFocus(sideLength int) *Focus {
	return &Focus{side: sideLength}
}

func (f *Focus) Move(dx, dy int) {
	f.X = clamp(f.X+dx, 0, f.side-1)
	f.Y = clamp(f.Y+dy, 0, f.side-1)
}

// Cell returns a copy of the focused cell for a KeyConfirm event.
func (f *Focus) Cell() *Coordinate {
	c := f.Coordinate
	return &c
}

// ResolvePoint maps a position inside a grid drawn at (originX, originY)
// with cells of cellW x cellH onto a cell.
func ResolvePoint(px, py, originX, originY, cellW, cellH, sideLength int) (Coordinate, error) {
	if cellW <= 0 || cellH <= 0 {
		return Coordinate{}, fmt.Errorf("%w: cell size %dx%d", ErrUnresolvableTarget, cellW, cellH)
	}
	dx, dy := px-originX, py-originY
	if dx < 0 || dy < 0 || dx/cellW >= sideLength || dy/cellH >= sideLength {
		return Coordinate{}, fmt.Errorf("%w: point %d,%d", ErrUnresolvableTarget, px, py)
	}
	return Coordinate{X: dx / cellW, Y: dy / cellH}, nil
}

// CellFromPoint is ResolvePoint for event plumbing: a miss becomes a nil cell.
func CellFromPoint(px, py, originX, originY, cellW, cellH, sideLength int) *Coordinate {
	c, err := ResolvePoint(px, py, originX, originY, cellW, cellH, sideLength)
	if err != nil {
		return nil
	}
	return &c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
