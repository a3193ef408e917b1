//go:build !tinygo

package cmd

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GridView renders cells. It never decides anything.
type GridView interface {
	PaintCell(c Coordinate, color string)
	ClearCell(c Coordinate)
	RegenerateGrid(sideLength int, drawing *Drawing)
}

// ColorSource yields the color selected at interaction time.
type ColorSource interface {
	SelectedColor() string
}

// Emitter accepts commands for the controller without waiting for delivery.
type Emitter interface {
	Emit(cmd Command)
}

// Session is the interaction state machine for one painting surface.
// It is not safe for concurrent use; events are handled one at a time.
type Session struct {
	sideLength int
	drawing    *Drawing
	view       GridView
	colors     ColorSource
	out        Emitter

	initiating   PaintAction
	dragging     bool
	lastDrawnOn  *Coordinate
	lastErasedOn *Coordinate
	gesture      uuid.UUID

	log *logrus.Entry
}

func NewSession(sideLength int, view GridView, colors ColorSource, out Emitter) (*Session, error) {
	if sideLength <= 0 {
		return nil, fmt.Errorf("%w: side length %d", ErrOutOfRange, sideLength)
	}
	s := &Session{
		sideLength: sideLength,
		drawing:    NewDrawing(),
		view:       view,
		colors:     colors,
		out:        out,
		log:        log.WithField("component", "session"),
	}
	s.view.RegenerateGrid(s.sideLength, s.drawing)
	return s, nil
}

func (s *Session) SideLength() int         { return s.sideLength }
func (s *Session) Drawing() *Drawing       { return s.drawing }
func (s *Session) Initiating() PaintAction { return s.initiating }
func (s *Session) Dragging() bool          { return s.dragging }
func (s *Session) SelectedColor() string   { return s.colors.SelectedColor() }

// Dispatch maps a raw view event onto the state machine.
func (s *Session) Dispatch(ev Event) error {
	switch ev.Kind {
	case Event_PointerDown:
		s.beginGesture()
		return s.HandleInteraction(Interaction{Cell: ev.Cell, Color: s.colors.SelectedColor()})

	case Event_PointerMove:
		if !ev.Primary {
			return nil
		}
		s.dragging = true
		return s.HandleInteraction(Interaction{Cell: ev.Cell, Dragging: true, Color: s.colors.SelectedColor()})

	case Event_PointerUp, Event_PointerCancel:
		s.endGesture()
		return nil

	case Event_KeyConfirm:
		return s.HandleInteraction(Interaction{Cell: ev.Cell, Color: s.colors.SelectedColor()})

	case Event_ClearAll:
		s.ClearAll()
		return nil

	case Event_ColorChange:
		return s.selectColor(ev.Color)

	default:
		return fmt.Errorf("unknown event kind %d", ev.Kind)
	}
}

// HandleInteraction decides draw, erase or nothing for one cell event.
// Contract violations (bad color, cell outside the grid) return an error and
// leave the drawing untouched.
func (s *Session) HandleInteraction(in Interaction) error {
	if in.Cell == nil {
		return nil
	}
	target := *in.Cell
	prior, painted := s.drawing.Get(target)

	if in.Dragging {
		if sameCell(s.lastDrawnOn, target) || sameCell(s.lastErasedOn, target) {
			return nil
		}
		switch {
		case s.initiating == Action_Erasing && painted:
			return s.erase(target)
		case s.initiating == Action_Drawing:
			return s.draw(target, in.Color)
		}
		return nil
	}

	if painted && prior == in.Color {
		return s.erase(target)
	}
	return s.draw(target, in.Color)
}

// ClearAll empties the drawing, repaints the grid and blanks the controller.
func (s *Session) ClearAll() {
	s.drawing.Clear()
	s.view.RegenerateGrid(s.sideLength, s.drawing)
	s.out.Emit(EncodeClearAll())
	s.log.Info("Cleared matrix")
}

func (s *Session) draw(c Coordinate, color string) error {
	cmd, err := EncodeDraw(c, color, s.sideLength)
	if err != nil {
		s.log.WithField("cell", c.String()).WithError(err).Error("Draw rejected")
		return err
	}

	s.initiating = Action_Drawing
	s.drawing.Set(c, color)
	s.lastDrawnOn = &c
	s.view.PaintCell(c, color)
	s.out.Emit(cmd)

	s.log.WithFields(logrus.Fields{
		"gesture": s.gesture,
		"cell":    c.String(),
		"index":   cmd.Index,
		"color":   color,
	}).Debug("Draw")
	return nil
}

func (s *Session) erase(c Coordinate) error {
	cmd, err := EncodeErase(c, s.sideLength)
	if err != nil {
		s.log.WithField("cell", c.String()).WithError(err).Error("Erase rejected")
		return err
	}

	s.initiating = Action_Erasing
	s.drawing.Remove(c)
	s.lastErasedOn = &c
	s.view.ClearCell(c)
	s.out.Emit(cmd)

	s.log.WithFields(logrus.Fields{
		"gesture": s.gesture,
		"cell":    c.String(),
		"index":   cmd.Index,
	}).Debug("Erase")
	return nil
}

// beginGesture forgets the previous gesture's touched cells so they cannot
// suppress the first cell of this one.
func (s *Session) beginGesture() {
	s.gesture = uuid.New()
	s.dragging = false
	s.lastDrawnOn = nil
	s.lastErasedOn = nil
}

func (s *Session) endGesture() {
	s.initiating = Action_None
	s.dragging = false
}

type colorSelector interface {
	Select(color string)
}

func (s *Session) selectColor(color string) error {
	color, err := NormalizeColor(color)
	if err != nil {
		return err
	}
	sel, ok := s.colors.(colorSelector)
	if !ok {
		return errors.New("color source is read-only")
	}
	sel.Select(color)
	s.log.WithField("color", color).Info("Selected color")
	return nil
}

func sameCell(last *Coordinate, c Coordinate) bool {
	return last != nil && *last == c
}
