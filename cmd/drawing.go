package cmd

import "sort"

// Drawing holds the painted cells. A cell is present iff it is painted.
type Drawing struct {
	cells map[Coordinate]string
}

func NewDrawing() *Drawing {
	return &Drawing{cells: make(map[Coordinate]string)}
}

func (d *Drawing) Get(c Coordinate) (string, bool) {
	color, ok := d.cells[c]
	return color, ok
}

func (d *Drawing) Set(c Coordinate, color string) {
	d.cells[c] = color
}

func (d *Drawing) Remove(c Coordinate) {
	delete(d.cells, c)
}

func (d *Drawing) Has(c Coordinate) bool {
	_, ok := d.cells[c]
	return ok
}

func (d *Drawing) Clear() {
	d.cells = make(map[Coordinate]string)
}

func (d *Drawing) Len() int {
	return len(d.cells)
}

// Cells returns the painted cells ordered by column, then row.
func (d *Drawing) Cells() []Coordinate {
	out := make([]Coordinate, 0, len(d.cells))
	for c := range d.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}
