package bitarray

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBitString is returned when a bit string contains a character
	// other than '0' or '1'.
	ErrInvalidBitString = errors.New("invalid bit string")

	// ErrIndexOutOfRange is returned when a bit index is outside [0, length).
	ErrIndexOutOfRange = errors.New("bit index out of range")
)

// ErrInvalidChar reports the offending position in a bit string.
type ErrInvalidChar struct {
	Pos  int
	Char rune
}

func (e *ErrInvalidChar) Error() string {
	return fmt.Sprintf("invalid bit string: unexpected %q at position %d", e.Char, e.Pos)
}

func (e *ErrInvalidChar) Unwrap() error { return ErrInvalidBitString }
