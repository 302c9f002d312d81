package simd

import "math/bits"

// Kernel function pointers - set once at init, zero runtime overhead.
// Generic implementations are the default; platform-specific init()
// functions override with hardware versions when available.
var (
	kernelPopcountWords    = popcountWordsGeneric
	kernelPopcountAndWords = popcountAndWordsGeneric
)

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	return kernelPopcountWords(words)
}

// PopcountAndWords counts the set bits of a[i] & b[i] over all words.
//
// SAFETY: Assumes len(a) == len(b). Caller MUST ensure lengths match.
func PopcountAndWords(a, b []uint64) int {
	return kernelPopcountAndWords(a, b)
}

// GenericPopcountWords is the portable fallback behind PopcountWords.
// It is the oracle the hardware kernels are validated against.
func GenericPopcountWords(words []uint64) int {
	return popcountWordsGeneric(words)
}

// GenericPopcountAndWords is the portable fallback behind PopcountAndWords.
func GenericPopcountAndWords(a, b []uint64) int {
	return popcountAndWordsGeneric(a, b)
}

func setHardwareKernels() {
	kernelPopcountWords = popcountWordsHardware
	kernelPopcountAndWords = popcountAndWordsHardware
}

// ==============================================================================
// Generic implementations
// ==============================================================================

const (
	m1  = 0x5555555555555555
	m2  = 0x3333333333333333
	m4  = 0x0f0f0f0f0f0f0f0f
	h01 = 0x0101010101010101
)

// swar64 counts bits with the "Hacker's Delight" parallel reduction.
func swar64(x uint64) int {
	x -= (x >> 1) & m1
	x = (x & m2) + ((x >> 2) & m2)
	x = (x + (x >> 4)) & m4
	return int((x * h01) >> 56)
}

func popcountWordsGeneric(words []uint64) int {
	count := 0
	for _, w := range words {
		count += swar64(w)
	}
	return count
}

func popcountAndWordsGeneric(a, b []uint64) int {
	if len(a) == 0 {
		return 0
	}
	_ = b[len(a)-1] // BCE
	count := 0
	for i := range a {
		count += swar64(a[i] & b[i])
	}
	return count
}

// ==============================================================================
// Hardware implementations
// ==============================================================================
//
// bits.OnesCount64 is a compiler intrinsic (POPCNT on x86-64, VCNT on ARM64).
// Four independent accumulators break the add dependency chain.

func popcountWordsHardware(words []uint64) int {
	var c0, c1, c2, c3 int
	i := 0
	for ; i+4 <= len(words); i += 4 {
		c0 += bits.OnesCount64(words[i])
		c1 += bits.OnesCount64(words[i+1])
		c2 += bits.OnesCount64(words[i+2])
		c3 += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		c0 += bits.OnesCount64(words[i])
	}
	return c0 + c1 + c2 + c3
}

func popcountAndWordsHardware(a, b []uint64) int {
	if len(a) == 0 {
		return 0
	}
	_ = b[len(a)-1] // BCE
	var c0, c1, c2, c3 int
	i := 0
	for ; i+4 <= len(a); i += 4 {
		c0 += bits.OnesCount64(a[i] & b[i])
		c1 += bits.OnesCount64(a[i+1] & b[i+1])
		c2 += bits.OnesCount64(a[i+2] & b[i+2])
		c3 += bits.OnesCount64(a[i+3] & b[i+3])
	}
	for ; i < len(a); i++ {
		c0 += bits.OnesCount64(a[i] & b[i])
	}
	return c0 + c1 + c2 + c3
}
