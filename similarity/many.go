package similarity

import (
	"fmt"

	"github.com/hupe1980/bloomscore/bitarray"
	"github.com/hupe1980/bloomscore/internal/simd"
)

// PopcountMany writes Popcount(arrays[i]) to out[i].
// The counts are meant to be computed once and reused with
// DiceOneAgainstMany across many queries.
func PopcountMany(arrays []bitarray.BitArray, out []int) error {
	if len(out) < len(arrays) {
		return fmt.Errorf("%w: out has %d slots for %d arrays", ErrInvalidInput, len(out), len(arrays))
	}
	for i, a := range arrays {
		out[i] = Popcount(a)
	}
	return nil
}

// DiceOneAgainstMany writes Dice(query, many[i]) to out[i].
//
// The query popcount is computed once. If counts is non-nil, counts[i] is
// used as Popcount(many[i]) without verification (see DicePrecount);
// otherwise each candidate is counted. Every candidate is scored; no
// threshold or ranking is applied.
func DiceOneAgainstMany(query bitarray.BitArray, many []bitarray.BitArray, counts []int, out []float64) error {
	if len(out) < len(many) {
		return fmt.Errorf("%w: out has %d slots for %d candidates", ErrInvalidInput, len(out), len(many))
	}
	if counts != nil && len(counts) < len(many) {
		return fmt.Errorf("%w: counts has %d entries for %d candidates", ErrInvalidInput, len(counts), len(many))
	}

	n := query.Len()
	for i, c := range many {
		if c.Len() != n {
			return &ErrLengthMismatch{Left: n, Right: c.Len(), Index: i}
		}
	}

	q := query.UnsafeWords()
	countQuery := simd.PopcountWords(q)

	for i, c := range many {
		var countC int
		if counts != nil {
			countC = counts[i]
		} else {
			countC = simd.PopcountWords(c.UnsafeWords())
		}
		sum := countQuery + countC
		if sum == 0 {
			out[i] = 0.0
			continue
		}
		out[i] = dice(simd.PopcountAndWords(q, c.UnsafeWords()), sum)
	}
	return nil
}
