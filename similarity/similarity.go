package similarity

import (
	"github.com/hupe1980/bloomscore/bitarray"
	"github.com/hupe1980/bloomscore/internal/simd"
)

// Popcount returns the number of set bits in a.
func Popcount(a bitarray.BitArray) int {
	return simd.PopcountWords(a.UnsafeWords())
}

func checkLen(a, b bitarray.BitArray) error {
	if a.Len() != b.Len() {
		return &ErrLengthMismatch{Left: a.Len(), Right: b.Len(), Index: -1}
	}
	return nil
}

func intersect(a, b bitarray.BitArray) int {
	return simd.PopcountAndWords(a.UnsafeWords(), b.UnsafeWords())
}

// dice and tanimoto keep counts integral until the final division, so every
// variant that feeds them the same counts returns the same float64.

func dice(both, sum int) float64 {
	if sum == 0 {
		return 0.0
	}
	return float64(2*both) / float64(sum)
}

func tanimoto(both, sum int) float64 {
	denom := sum - both
	if denom == 0 {
		return 0.0
	}
	return float64(both) / float64(denom)
}

// DiceReference computes the Dice coefficient one bit at a time.
//
// It is the oracle Dice is tested against, not a hot path.
func DiceReference(a, b bitarray.BitArray) (float64, error) {
	if err := checkLen(a, b); err != nil {
		return 0, err
	}
	var countA, countB, both int
	for i := 0; i < a.Len(); i++ {
		x, y := a.Bit(i), b.Bit(i)
		if x {
			countA++
		}
		if y {
			countB++
		}
		if x && y {
			both++
		}
	}
	return dice(both, countA+countB), nil
}

// Dice computes 2·|A∩B| / (|A| + |B|) from whole words.
// It returns 0.0 when both a and b are all-zero.
func Dice(a, b bitarray.BitArray) (float64, error) {
	if err := checkLen(a, b); err != nil {
		return 0, err
	}
	sum := Popcount(a) + Popcount(b)
	if sum == 0 {
		return 0.0, nil
	}
	return dice(intersect(a, b), sum), nil
}

// DicePrecount computes 2·|A∩B| / countSum.
//
// PRECONDITION: countSum == Popcount(a) + Popcount(b). It is not verified;
// a wrong sum returns a wrong score. A countSum <= 0 returns 0.0.
func DicePrecount(a, b bitarray.BitArray, countSum float64) (float64, error) {
	if err := checkLen(a, b); err != nil {
		return 0, err
	}
	if countSum <= 0 {
		return 0.0, nil
	}
	return 2 * float64(intersect(a, b)) / countSum, nil
}

// Tanimoto computes |A∩B| / (|A| + |B| − |A∩B|).
// It returns 0.0 when both a and b are all-zero.
func Tanimoto(a, b bitarray.BitArray) (float64, error) {
	if err := checkLen(a, b); err != nil {
		return 0, err
	}
	return tanimoto(intersect(a, b), Popcount(a)+Popcount(b)), nil
}

// TanimotoPrecount computes |A∩B| / (countSum − |A∩B|).
//
// PRECONDITION: countSum == Popcount(a) + Popcount(b), not |A∪B|. It is not
// verified; a wrong sum returns a wrong score. A non-positive denominator
// returns 0.0.
func TanimotoPrecount(a, b bitarray.BitArray, countSum float64) (float64, error) {
	if err := checkLen(a, b); err != nil {
		return 0, err
	}
	both := float64(intersect(a, b))
	denom := countSum - both
	if denom <= 0 {
		return 0.0, nil
	}
	return both / denom, nil
}
