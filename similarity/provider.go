package similarity

import (
	"fmt"

	"github.com/hupe1980/bloomscore/bitarray"
)

// Metric represents the similarity coefficient.
type Metric int

const (
	MetricDice Metric = iota
	MetricTanimoto
)

func (m Metric) String() string {
	switch m {
	case MetricDice:
		return "Dice"
	case MetricTanimoto:
		return "Tanimoto"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Implementation selects between the bit-by-bit oracle and the word-level
// hot path of a metric.
type Implementation int

const (
	Optimized Implementation = iota
	Reference
)

func (i Implementation) String() string {
	switch i {
	case Optimized:
		return "Optimized"
	case Reference:
		return "Reference"
	default:
		return fmt.Sprintf("Unknown(%d)", i)
	}
}

// Func scores a pair of bit arrays.
type Func func(a, b bitarray.BitArray) (float64, error)

// PrecountFunc scores a pair of bit arrays given Popcount(a) + Popcount(b).
type PrecountFunc func(a, b bitarray.BitArray, countSum float64) (float64, error)

// Provider returns the scoring function for the given metric and
// implementation. Tanimoto has no separate reference implementation.
func Provider(m Metric, impl Implementation) (Func, error) {
	switch {
	case m == MetricDice && impl == Optimized:
		return Dice, nil
	case m == MetricDice && impl == Reference:
		return DiceReference, nil
	case m == MetricTanimoto && impl == Optimized:
		return Tanimoto, nil
	default:
		return nil, fmt.Errorf("unsupported combination: %v/%v", m, impl)
	}
}

// PrecountProvider returns the precount scoring function for the given metric.
func PrecountProvider(m Metric) (PrecountFunc, error) {
	switch m {
	case MetricDice:
		return DicePrecount, nil
	case MetricTanimoto:
		return TanimotoPrecount, nil
	default:
		return nil, fmt.Errorf("unsupported metric for precount: %v", m)
	}
}
