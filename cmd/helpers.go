package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// HexToRGB parses "#rrggbb" or "rrggbb".
func HexToRGB(hex string) (r, g, b uint8, err error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
		}
	}

	v, err := strconv.ParseUint(digits, 16, 24)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// NormalizeColor returns the color as lowercase "#rrggbb", the form a color
// picker reports.
func NormalizeColor(hex string) (string, error) {
	r, g, b, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b), nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// LinearIndex maps a grid cell to the strip position on a serpentine matrix.
// The strip folds at every column, so the scan direction alternates:
//
//	x even: sideLength*x + (sideLength-1-y)
//	x odd:  sideLength*x + y
func LinearIndex(x, y, sideLength int) (int, error) {
	if sideLength <= 0 {
		return 0, fmt.Errorf("%w: side length %d", ErrOutOfRange, sideLength)
	}
	if x < 0 || x >= sideLength || y < 0 || y >= sideLength {
		return 0, fmt.Errorf("%w: cell %d,%d on a %dx%d grid", ErrOutOfRange, x, y, sideLength, sideLength)
	}

	if x%2 == 0 {
		return sideLength*x + (sideLength - 1 - y), nil
	}
	return sideLength*x + y, nil
}

// CellAt is the inverse of LinearIndex.
func CellAt(index, sideLength int) (Coordinate, error) {
	if sideLength <= 0 || index < 0 || index >= sideLength*sideLength {
		return Coordinate{}, fmt.Errorf("%w: index %d on a %dx%d grid", ErrOutOfRange, index, sideLength, sideLength)
	}

	x := index / sideLength
	off := index % sideLength
	if x%2 == 0 {
		return Coordinate{X: x, Y: sideLength - 1 - off}, nil
	}
	return Coordinate{X: x, Y: off}, nil
}

func ParseRole(r string) Role {
	switch r {
	case "worker":
		return Worker
	default:
		return Painter
	}
}

func ParseView(v string) ViewMode {
	switch strings.ToLower(v) {
	case "terminal", "tty":
		return View_Terminal
	case "script":
		return View_Script
	default:
		return View_Window
	}
}

func ParseSideLength(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return DefaultSideLength
	}
	return n
}
