package cmd

import (
	"fmt"
	"image/color"
)

// MaxLineLength bounds one wire line; "[1,65535,255,255,255]" fits easily.
const MaxLineLength = 64

// Frame is the receiver's copy of the strip, indexed in strip order.
type Frame struct {
	side   int
	pixels []color.RGBA
}

func NewFrame(sideLength int) *Frame {
	return &Frame{side: sideLength, pixels: make([]color.RGBA, sideLength*sideLength)}
}

// Apply executes one decoded command against the frame.
func (f *Frame) Apply(cmd Command) error {
	switch cmd.Op {
	case Op_ClearAll:
		for i := range f.pixels {
			f.pixels[i] = color.RGBA{}
		}
		return nil
	case Op_SetPixel, Op_ClearPixel:
		if cmd.Index < 0 || cmd.Index >= len(f.pixels) {
			return fmt.Errorf("%w: index %d on a %d pixel strip", ErrOutOfRange, cmd.Index, len(f.pixels))
		}
		if cmd.Op == Op_ClearPixel {
			f.pixels[cmd.Index] = color.RGBA{}
		} else {
			f.pixels[cmd.Index] = color.RGBA{R: cmd.R, G: cmd.G, B: cmd.B, A: 0xFF}
		}
		return nil
	default:
		return fmt.Errorf("%w: opcode %d", ErrInvalidCommand, cmd.Op)
	}
}

// ApplyBatch applies first, then every command already waiting on pending,
// without blocking. Rejected commands are skipped and their errors returned.
func (f *Frame) ApplyBatch(first Command, pending <-chan Command) []error {
	var errs []error
	if err := f.Apply(first); err != nil {
		errs = append(errs, err)
	}
	for {
		select {
		case cmd, ok := <-pending:
			if !ok {
				return errs
			}
			if err := f.Apply(cmd); err != nil {
				errs = append(errs, err)
			}
		default:
			return errs
		}
	}
}

func (f *Frame) Pixels() []color.RGBA {
	return f.pixels
}

// At returns the color shown at grid cell c.
func (f *Frame) At(c Coordinate) (color.RGBA, error) {
	i, err := LinearIndex(c.X, c.Y, f.side)
	if err != nil {
		return color.RGBA{}, err
	}
	return f.pixels[i], nil
}

// LineBuffer collects serial bytes into newline-terminated lines.
type LineBuffer struct {
	buf      [MaxLineLength]byte
	n        int
	overflow bool
}

// Feed adds one byte. It returns a complete line (without the terminator)
// when b ends one. Lines longer than MaxLineLength are discarded whole.
func (l *LineBuffer) Feed(b byte) ([]byte, bool) {
	if b == '\r' {
		return nil, false
	}
	if b == '\n' {
		line := l.buf[:l.n]
		overflow := l.overflow
		l.n = 0
		l.overflow = false
		if overflow || len(line) == 0 {
			return nil, false
		}
		return line, true
	}
	if l.n == len(l.buf) {
		l.overflow = true
		return nil, false
	}
	l.buf[l.n] = b
	l.n++
	return nil, false
}
