//go:build !tinygo

package cmd

import (
	"fmt"

	"github.com/stretchr/testify/mock"
)

// mockView is a testify mock of GridView.
type mockView struct {
	mock.Mock
}

func (m *mockView) PaintCell(c Coordinate, color string) {
	m.Called(c, color)
}

func (m *mockView) ClearCell(c Coordinate) {
	m.Called(c)
}

func (m *mockView) RegenerateGrid(sideLength int, drawing *Drawing) {
	m.Called(sideLength, drawing)
}

// fakeView records view calls as text.
type fakeView struct {
	calls []string
}

func (v *fakeView) PaintCell(c Coordinate, color string) {
	v.calls = append(v.calls, fmt.Sprintf("paint %s %s", c, color))
}

func (v *fakeView) ClearCell(c Coordinate) {
	v.calls = append(v.calls, fmt.Sprintf("erase %s", c))
}

func (v *fakeView) RegenerateGrid(sideLength int, drawing *Drawing) {
	v.calls = append(v.calls, fmt.Sprintf("grid %d %d", sideLength, drawing.Len()))
}

// recordingEmitter keeps every emitted command in order.
type recordingEmitter struct {
	cmds []Command
}

func (r *recordingEmitter) Emit(cmd Command) {
	r.cmds = append(r.cmds, cmd)
}

func (r *recordingEmitter) wires() [][]int {
	out := make([][]int, 0, len(r.cmds))
	for _, c := range r.cmds {
		out = append(out, c.Wire())
	}
	return out
}

// fixedColor is a read-only ColorSource.
type fixedColor string

func (c fixedColor) SelectedColor() string { return string(c) }
