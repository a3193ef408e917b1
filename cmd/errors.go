package cmd

import "errors"

var (
	// ErrInvalidColorFormat is returned for anything that is not six hex digits
	// with an optional leading '#'.
	ErrInvalidColorFormat = errors.New("invalid color format")
	// ErrOutOfRange is returned for coordinates outside the grid or a bad side length.
	ErrOutOfRange = errors.New("out of range")
	// ErrUnresolvableTarget marks a point that did not land on a cell. Views
	// turn it into a nil cell, which the state machine ignores.
	ErrUnresolvableTarget = errors.New("event does not resolve to a cell")
	ErrInvalidCommand     = errors.New("invalid command")
	ErrUnknownTransport   = errors.New("unknown transport")
)
