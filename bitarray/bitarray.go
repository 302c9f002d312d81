package bitarray

import (
	"fmt"
	"slices"
	"strings"
)

const wordBits = 64

// BitArray is an immutable fixed-length sequence of bits.
//
// The zero value is an empty (zero-length) array.
type BitArray struct {
	words []uint64
	n     int
}

func wordsFor(n int) int {
	return (n + wordBits - 1) / wordBits
}

// tailMask returns the mask of valid bits in the last word of an n-bit array.
func tailMask(n int) uint64 {
	if r := n % wordBits; r != 0 {
		return (uint64(1) << r) - 1
	}
	return ^uint64(0)
}

// Zeros returns an all-zero array of n bits.
func Zeros(n int) BitArray {
	if n < 0 {
		n = 0
	}
	return BitArray{words: make([]uint64, wordsFor(n)), n: n}
}

// Ones returns an array of n bits with every bit set.
func Ones(n int) BitArray {
	return Zeros(n).Complement()
}

// FromWords builds an n-bit array from little-endian-within-word words.
// Words are copied; bits past n are cleared. Missing words read as zero.
func FromWords(words []uint64, n int) BitArray {
	b := Zeros(n)
	copy(b.words, words)
	b.clearTail()
	return b
}

// FromBytes builds an array of len(data)*8 bits. The most significant bit of
// data[0] is bit 0, matching the usual serialized CLK layout.
func FromBytes(data []byte) BitArray {
	b := Zeros(len(data) * 8)
	for i, by := range data {
		for j := 0; j < 8; j++ {
			if by&(0x80>>j) != 0 {
				b.set(i*8 + j)
			}
		}
	}
	return b
}

// FromIndices builds an n-bit array with the given bits set.
func FromIndices(n int, indices ...int) (BitArray, error) {
	b := Zeros(n)
	for _, i := range indices {
		if i < 0 || i >= b.n {
			return BitArray{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, b.n)
		}
		b.set(i)
	}
	return b, nil
}

// Parse builds an array from a string of '0' and '1' characters.
// The leftmost character is bit 0.
func Parse(s string) (BitArray, error) {
	b := Zeros(len(s))
	for i, c := range s {
		switch c {
		case '0':
		case '1':
			b.set(i)
		default:
			return BitArray{}, &ErrInvalidChar{Pos: i, Char: c}
		}
	}
	return b, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) BitArray {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *BitArray) set(i int) {
	b.words[i/wordBits] |= 1 << (uint(i) % wordBits)
}

func (b *BitArray) clearTail() {
	if len(b.words) > 0 {
		b.words[len(b.words)-1] &= tailMask(b.n)
	}
}

// Len returns the number of bits.
func (b BitArray) Len() int {
	return b.n
}

// Bit reports whether bit i is set. It panics if i is out of range,
// like a slice index.
func (b BitArray) Bit(i int) bool {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("bitarray: index %d out of range [0, %d)", i, b.n))
	}
	return b.words[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// Words returns a copy of the backing words.
func (b BitArray) Words() []uint64 {
	return slices.Clone(b.words)
}

// UnsafeWords returns the backing words without copying.
// The caller MUST NOT modify the returned slice.
func (b BitArray) UnsafeWords() []uint64 {
	return b.words
}

// Bytes returns the array as bytes in the FromBytes layout. A trailing
// partial byte is zero-padded.
func (b BitArray) Bytes() []byte {
	out := make([]byte, (b.n+7)/8)
	for i := 0; i < b.n; i++ {
		if b.Bit(i) {
			out[i/8] |= 0x80 >> (i % 8)
		}
	}
	return out
}

// Complement returns a new array with every bit inverted.
func (b BitArray) Complement() BitArray {
	c := BitArray{words: make([]uint64, len(b.words)), n: b.n}
	for i, w := range b.words {
		c.words[i] = ^w
	}
	c.clearTail()
	return c
}

// Equal reports whether a and b have the same length and bits.
func (b BitArray) Equal(other BitArray) bool {
	return b.n == other.n && slices.Equal(b.words, other.words)
}

// String renders the array as a bit string, bit 0 first.
func (b BitArray) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		if b.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
