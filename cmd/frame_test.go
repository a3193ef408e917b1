package cmd

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_Apply(t *testing.T) {
	f := NewFrame(16)

	require.NoError(t, f.Apply(Command{Op: Op_SetPixel, Index: 16, G: 255}))
	got, err := f.At(Coordinate{X: 1, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 255, A: 0xFF}, got)

	require.NoError(t, f.Apply(Command{Op: Op_SetPixel, Index: 15, R: 9}))
	got, _ = f.At(Coordinate{X: 0, Y: 0})
	assert.Equal(t, color.RGBA{R: 9, A: 0xFF}, got)

	require.NoError(t, f.Apply(Command{Op: Op_ClearPixel, Index: 16}))
	got, _ = f.At(Coordinate{X: 1, Y: 0})
	assert.Equal(t, color.RGBA{}, got)

	require.NoError(t, f.Apply(EncodeClearAll()))
	for _, px := range f.Pixels() {
		assert.Equal(t, color.RGBA{}, px)
	}
}

func TestFrame_ApplyRejectsBadIndex(t *testing.T) {
	f := NewFrame(4)
	assert.ErrorIs(t, f.Apply(Command{Op: Op_SetPixel, Index: 16}), ErrOutOfRange)
	assert.ErrorIs(t, f.Apply(Command{Op: Op_ClearPixel, Index: -1}), ErrOutOfRange)
	assert.ErrorIs(t, f.Apply(Command{Op: Opcode(9)}), ErrInvalidCommand)
}

func TestLineBuffer(t *testing.T) {
	var lb LineBuffer
	var lines []string
	for _, b := range []byte("[2,0,0,0]\r\n\n[0,3,0,0,0]\n[1,") {
		if line, ok := lb.Feed(b); ok {
			lines = append(lines, string(line))
		}
	}
	assert.Equal(t, []string{"[2,0,0,0]", "[0,3,0,0,0]"}, lines)
}

func TestLineBuffer_DropsOverlongLines(t *testing.T) {
	var lb LineBuffer
	for i := 0; i < MaxLineLength+10; i++ {
		_, ok := lb.Feed('9')
		require.False(t, ok)
	}
	_, ok := lb.Feed('\n')
	assert.False(t, ok)

	var got string
	for _, b := range []byte("[2,0,0,0]\n") {
		if line, ok := lb.Feed(b); ok {
			got = string(line)
		}
	}
	assert.Equal(t, "[2,0,0,0]", got)
}

// The receiver shows exactly what the painter drew.
func TestFrame_MirrorsPainterWire(t *testing.T) {
	f := NewFrame(16)
	var lb LineBuffer
	for _, b := range []byte("[1,16,0,255,0]\n[1,0,1,2,3]\n[0,16,0,0,0]\n") {
		line, ok := lb.Feed(b)
		if !ok {
			continue
		}
		cmd, err := DecodeCommand(line)
		require.NoError(t, err)
		require.NoError(t, f.Apply(cmd))
	}

	got, _ := f.At(Coordinate{X: 0, Y: 15})
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 0xFF}, got)
	got, _ = f.At(Coordinate{X: 1, Y: 0})
	assert.Equal(t, color.RGBA{}, got)
}

func TestFrame_ApplyBatchDrainsQueuedCommands(t *testing.T) {
	f := NewFrame(4)
	pending := make(chan Command, 4)
	pending <- Command{Op: Op_SetPixel, Index: 1, R: 7}
	pending <- Command{Op: Op_SetPixel, Index: 99}
	pending <- Command{Op: Op_ClearPixel, Index: 0}

	errs := f.ApplyBatch(Command{Op: Op_SetPixel, Index: 0, B: 5}, pending)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrOutOfRange)
	assert.Empty(t, pending)

	assert.Equal(t, color.RGBA{}, f.Pixels()[0])
	assert.Equal(t, color.RGBA{R: 7, A: 0xFF}, f.Pixels()[1])
}

func TestFrame_ApplyBatchStopsOnClosedQueue(t *testing.T) {
	f := NewFrame(4)
	pending := make(chan Command)
	close(pending)

	assert.Empty(t, f.ApplyBatch(EncodeClearAll(), pending))
}
