package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/bloomscore/bitarray"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// BitArray returns an n-bit array where each bit is set with probability 0.5.
func (r *RNG) BitArray(n int) bitarray.BitArray {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uniformLocked(n)
}

func (r *RNG) uniformLocked(n int) bitarray.BitArray {
	words := make([]uint64, (n+63)/64)
	for i := range words {
		words[i] = r.rand.Uint64()
	}
	return bitarray.FromWords(words, n)
}

// BitArrayDensity returns an n-bit array where each bit is set with
// probability p.
func (r *RNG) BitArrayDensity(n int, p float64) bitarray.BitArray {
	r.mu.Lock()
	defer r.mu.Unlock()

	indices := make([]int, 0, int(float64(n)*p)+1)
	for i := 0; i < n; i++ {
		if r.rand.Float64() < p {
			indices = append(indices, i)
		}
	}
	b, err := bitarray.FromIndices(n, indices...)
	if err != nil {
		panic(err) // every index is in range by construction
	}
	return b
}

// BitArrays generates num independent uniform n-bit arrays.
// Locks only once per call.
func (r *RNG) BitArrays(num, n int) []bitarray.BitArray {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bitarray.BitArray, num)
	for i := range out {
		out[i] = r.uniformLocked(n)
	}
	return out
}
