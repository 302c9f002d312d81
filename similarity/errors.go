package similarity

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel for caller contract violations.
var ErrInvalidInput = errors.New("invalid input")

// ErrLengthMismatch indicates the two bit arrays have different lengths.
//
// Index is the candidate position for one-against-many operations and -1
// for pair operations. errors.Is(err, ErrInvalidInput) holds.
type ErrLengthMismatch struct {
	Left  int
	Right int
	Index int
}

func (e *ErrLengthMismatch) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("bit length mismatch at candidate %d: %d != %d", e.Index, e.Left, e.Right)
	}
	return fmt.Sprintf("bit length mismatch: %d != %d", e.Left, e.Right)
}

func (e *ErrLengthMismatch) Unwrap() error { return ErrInvalidInput }
