package chessmg

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds   = errors.New("position out of bounds")
	ErrInvalidLayout = errors.New("invalid layout")
	ErrIllegalUndo   = errors.New("illegal undo")
)

// OutOfBoundsError reports a coordinate outside the 8x8 board.
type OutOfBoundsError struct {
	Pos Position
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position (%d,%d) out of bounds", e.Pos.File, e.Pos.Rank)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// ConfigurationError is returned when a layout or FEN cannot be turned into a board.
// Line is 1-based; zero means the error is not tied to a line.
type ConfigurationError struct {
	Line   int
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid layout: line %d: %s", e.Line, e.Reason)
	}
	return "invalid layout: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return ErrInvalidLayout }

// IllegalUndoError is the panic value raised when UndoMove is handed a state
// that does not belong to the most recent PerformMove on the board.
type IllegalUndoError struct {
	Reason string
}

func (e *IllegalUndoError) Error() string { return "illegal undo: " + e.Reason }

func (e *IllegalUndoError) Unwrap() error { return ErrIllegalUndo }
