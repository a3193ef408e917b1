package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodeDraw builds a SetPixel command for painting c with color.
func EncodeDraw(c Coordinate, color string, sideLength int) (Command, error) {
	index, err := LinearIndex(c.X, c.Y, sideLength)
	if err != nil {
		return Command{}, err
	}
	r, g, b, err := HexToRGB(color)
	if err != nil {
		return Command{}, err
	}
	return Command{Op: Op_SetPixel, Index: index, R: r, G: g, B: b}, nil
}

// EncodeErase builds a ClearPixel command. The color channels stay zero.
func EncodeErase(c Coordinate, sideLength int) (Command, error) {
	index, err := LinearIndex(c.X, c.Y, sideLength)
	if err != nil {
		return Command{}, err
	}
	return Command{Op: Op_ClearPixel, Index: index}, nil
}

func EncodeClearAll() Command {
	return Command{Op: Op_ClearAll}
}

// Wire returns the integer array sent to the controller, or nil for an
// unknown opcode:
//
//	SetPixel   [1, index, r, g, b]
//	ClearPixel [0, index, 0, 0, 0]
//	ClearAll   [2, 0, 0, 0]
func (c Command) Wire() []int {
	switch c.Op {
	case Op_SetPixel:
		return []int{int(Op_SetPixel), c.Index, int(c.R), int(c.G), int(c.B)}
	case Op_ClearPixel:
		return []int{int(Op_ClearPixel), c.Index, 0, 0, 0}
	case Op_ClearAll:
		return []int{int(Op_ClearAll), 0, 0, 0}
	default:
		return nil
	}
}

// Encode renders the wire array as JSON text, without a line terminator.
// Unknown opcodes are rejected so they never reach the controller.
func (c Command) Encode() ([]byte, error) {
	wire := c.Wire()
	if wire == nil {
		return nil, fmt.Errorf("%w: opcode %d", ErrInvalidCommand, c.Op)
	}
	return json.Marshal(wire)
}

func (c Command) String() string {
	b, err := c.Encode()
	if err != nil {
		return fmt.Sprintf("invalid(op=%d index=%d)", c.Op, c.Index)
	}
	return string(b)
}

// DecodeCommand parses one wire line back into a Command.
func DecodeCommand(line []byte) (Command, error) {
	line = bytes.TrimSpace(line)
	var wire []int
	if err := json.Unmarshal(line, &wire); err != nil {
		return Command{}, fmt.Errorf("%w: %q: %v", ErrInvalidCommand, line, err)
	}
	if len(wire) == 0 {
		return Command{}, fmt.Errorf("%w: empty", ErrInvalidCommand)
	}

	switch Opcode(wire[0]) {
	case Op_SetPixel, Op_ClearPixel:
		if len(wire) != 5 {
			return Command{}, fmt.Errorf("%w: %q: want 5 values, got %d", ErrInvalidCommand, line, len(wire))
		}
		if wire[1] < 0 {
			return Command{}, fmt.Errorf("%w: %q: negative index", ErrInvalidCommand, line)
		}
		for _, v := range wire[2:] {
			if v < 0 || v > 255 {
				return Command{}, fmt.Errorf("%w: %q: channel %d out of byte range", ErrInvalidCommand, line, v)
			}
		}
		if Opcode(wire[0]) == Op_ClearPixel {
			return Command{Op: Op_ClearPixel, Index: wire[1]}, nil
		}
		return Command{Op: Op_SetPixel, Index: wire[1], R: uint8(wire[2]), G: uint8(wire[3]), B: uint8(wire[4])}, nil
	case Op_ClearAll:
		if len(wire) != 4 {
			return Command{}, fmt.Errorf("%w: %q: want 4 values, got %d", ErrInvalidCommand, line, len(wire))
		}
		return EncodeClearAll(), nil
	default:
		return Command{}, fmt.Errorf("%w: %q: unknown opcode %d", ErrInvalidCommand, line, wire[0])
	}
}
