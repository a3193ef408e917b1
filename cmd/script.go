//go:build !tinygo

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// Script commands, one per line:
//
//	down [x y]    pointer pressed (no coordinates: pressed off-grid)
//	move [x y]    pointer moved with the primary button held
//	hover [x y]   pointer moved with no button held
//	up            pointer released
//	cancel        pointer cancelled
//	key [x y]     Space/Enter on the focused cell
//	clear         clear button
//	color C       color picker change; quote it ("#00ff00") or drop the '#'
//	dump          print the painted cells
//
// Everything after an unquoted '#' is a comment.

// ScriptView is a GridView that prints every view call as a text line.
type ScriptView struct {
	w io.Writer
}

func NewScriptView(w io.Writer) *ScriptView {
	return &ScriptView{w: w}
}

func (v *ScriptView) PaintCell(c Coordinate, color string) {
	fmt.Fprintf(v.w, "paint %s %s\n", c, color)
}

func (v *ScriptView) ClearCell(c Coordinate) {
	fmt.Fprintf(v.w, "erase %s\n", c)
}

func (v *ScriptView) RegenerateGrid(sideLength int, drawing *Drawing) {
	fmt.Fprintf(v.w, "grid %dx%d painted=%d\n", sideLength, sideLength, drawing.Len())
}

// RunScript feeds every line of r to the session. Syntax errors stop the run;
// rejected interactions are logged and the script continues.
func RunScript(r io.Reader, w io.Writer, s *Session) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		args, err := shlex.Split(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(args) == 0 {
			continue
		}

		ev, err := parseScriptEvent(args)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if ev == nil {
			dumpDrawing(w, s.Drawing())
			continue
		}

		if err := s.Dispatch(*ev); err != nil {
			log.WithField("line", lineNo).WithError(err).Error("Interaction rejected")
		}
	}
	return scanner.Err()
}

// parseScriptEvent returns a nil event for "dump".
func parseScriptEvent(args []string) (*Event, error) {
	verb := strings.ToLower(args[0])
	switch verb {
	case "down", "move", "hover", "key":
		cell, err := parseScriptCell(args[1:])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", verb, err)
		}
		switch verb {
		case "down":
			return &Event{Kind: Event_PointerDown, Cell: cell}, nil
		case "move":
			return &Event{Kind: Event_PointerMove, Cell: cell, Primary: true}, nil
		case "hover":
			return &Event{Kind: Event_PointerMove, Cell: cell}, nil
		default:
			return &Event{Kind: Event_KeyConfirm, Cell: cell}, nil
		}
	case "up":
		return &Event{Kind: Event_PointerUp}, nil
	case "cancel":
		return &Event{Kind: Event_PointerCancel}, nil
	case "clear":
		return &Event{Kind: Event_ClearAll}, nil
	case "color":
		if len(args) != 2 {
			return nil, fmt.Errorf("color: want 1 argument, got %d", len(args)-1)
		}
		return &Event{Kind: Event_ColorChange, Color: args[1]}, nil
	case "dump":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown command %q", args[0])
	}
}

func parseScriptCell(args []string) (*Coordinate, error) {
	switch len(args) {
	case 0:
		return nil, nil
	case 2:
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("bad x %q", args[0])
		}
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("bad y %q", args[1])
		}
		return Cell(x, y), nil
	default:
		return nil, fmt.Errorf("want x y, got %d arguments", len(args))
	}
}

func dumpDrawing(w io.Writer, d *Drawing) {
	cells := d.Cells()
	if len(cells) == 0 {
		fmt.Fprintln(w, "drawing empty")
		return
	}
	for _, c := range cells {
		color, _ := d.Get(c)
		fmt.Fprintf(w, "cell %s %s\n", c, color)
	}
}
