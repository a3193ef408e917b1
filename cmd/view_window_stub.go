//go:build !tinygo && !cgo

package cmd

import "errors"

// WindowView is unavailable without cgo; RunWindow reports it.
type WindowView struct{}

func NewWindowView() *WindowView { return &WindowView{} }

func (v *WindowView) PaintCell(Coordinate, string) {}
func (v *WindowView) ClearCell(Coordinate)         {}
func (v *WindowView) RegenerateGrid(int, *Drawing) {}

func RunWindow(_ *WindowView, _ *Session, _ *Palette) error {
	return errors.New("window mode requires cgo (build with CGO_ENABLED=1 or set PIXEL_VIEW=terminal)")
}
