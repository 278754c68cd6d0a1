package spiral

import (
	"errors"
	"fmt"
)

// MaxSize is the largest n accepted for an n×n grid. It keeps n*n well inside
// int range and the backing storage of a generated grid allocatable.
const MaxSize = 4096

// ErrInvalidSize is matched by every error returned when a grid cannot hold
// an n×n traversal.
var ErrInvalidSize = errors.New("invalid grid size")

// SizeError describes why a grid failed validation. Use errors.Is with
// ErrInvalidSize to test for it.
type SizeError struct {
	N    int // requested size
	Rows int // number of rows the grid has
	Row  int // index of the first row that is too short, -1 if none
	Cols int // number of columns in Row
}

// Error implements the error interface for SizeError.
func (e *SizeError) Error() string {
	switch {
	case e.N < 0:
		return fmt.Sprintf("%s: size must not be negative, got %d", ErrInvalidSize, e.N)
	case e.N > MaxSize:
		return fmt.Sprintf("%s: size %d exceeds the maximum of %d", ErrInvalidSize, e.N, MaxSize)
	case e.Row >= 0:
		return fmt.Sprintf("%s: row %d has %d columns, need at least %d", ErrInvalidSize, e.Row, e.Cols, e.N)
	default:
		return fmt.Sprintf("%s: grid has %d rows, need at least %d", ErrInvalidSize, e.Rows, e.N)
	}
}

// Is reports whether target is ErrInvalidSize.
func (e *SizeError) Is(target error) bool {
	return target == ErrInvalidSize
}

// CheckSize reports whether n is usable as a grid size on its own, before any
// grid exists: 0 ≤ n ≤ MaxSize.
func CheckSize(n int) error {
	if n < 0 || n > MaxSize {
		return &SizeError{N: n, Row: -1}
	}
	return nil
}
