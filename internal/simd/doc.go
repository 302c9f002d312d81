// Package simd provides population-count kernels over []uint64 bit words.
//
// # Supported Platforms
//
//   - x86-64: POPCNT
//   - ARM64: NEON (CNT)
//
// Runtime CPU feature detection selects the optimal implementation.
// Build with -tags noasm to force the generic Go fallback, or set
// BLOOMSCORE_SIMD=generic at process start.
//
// # Operations
//
//   - PopcountWords: set bits across words
//   - PopcountAndWords: set bits of a AND b, without materializing the AND
//
// The generic kernels are a portable SWAR bit count that never touches a
// hardware popcount instruction. Accelerated kernels must return results
// identical to the generic ones for every input.
package simd
