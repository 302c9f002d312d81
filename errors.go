package bloomscore

import (
	"errors"

	"github.com/hupe1980/bloomscore/similarity"
)

var (
	// ErrInvalidInput is returned for caller contract violations such as
	// bit arrays of different lengths.
	ErrInvalidInput = similarity.ErrInvalidInput

	// ErrInvalidOption is returned by New for an unusable configuration.
	ErrInvalidOption = errors.New("invalid option")
)

// ErrLengthMismatch indicates the compared bit arrays have different lengths.
type ErrLengthMismatch = similarity.ErrLengthMismatch
