// Package similarity scores pairs of equal-length bit arrays with set-overlap
// coefficients.
//
// All functions use the popcount kernels from internal/simd, which select a
// hardware implementation at init when the CPU has one (POPCNT on x86-64,
// NEON on ARM64).
//
// # Supported Metrics
//
//   - MetricDice: 2·|A∩B| / (|A| + |B|)
//   - MetricTanimoto: |A∩B| / (|A| + |B| − |A∩B|)
//
// A zero denominator (both operands all-zero) scores 0.0.
//
// # Implementations
//
// DiceReference counts bit by bit and exists as a correctness oracle. Dice is
// the word-level hot path and returns exactly the same value. Callers pick one
// explicitly, or through Provider.
//
// # Precount Variants
//
// DicePrecount and TanimotoPrecount take countSum = Popcount(a) + Popcount(b)
// from the caller and only count the intersection. The sum is NOT checked:
// an inconsistent sum yields a silently wrong score, possibly above 1.0.
//
// # Usage
//
//	a := bitarray.MustParse("1000001")
//	b := bitarray.MustParse("1111011")
//	score, _ := similarity.Dice(a, b) // 0.5
//
//	sum := float64(similarity.Popcount(a) + similarity.Popcount(b))
//	score, _ = similarity.DicePrecount(a, b, sum)
//
// Every function is pure and safe for concurrent use.
package similarity
