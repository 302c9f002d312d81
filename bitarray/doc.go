// Package bitarray provides an immutable, fixed-length bit array backed by
// []uint64 words.
//
// Bit i lives in word i/64 at position i%64 (LSB-first within a word). Index
// 0 is the leftmost character of a bit string, so Parse("1000") sets bit 0.
// Bits past Len() in the last word are always zero, which lets callers count
// and combine whole words without masking.
//
// # Construction
//
//	a, _ := bitarray.Parse("1111011")
//	b := bitarray.FromBytes(clk)             // MSB of byte 0 is bit 0
//	c, _ := bitarray.FromIndices(1024, 3, 17)
//	d := bitarray.FromBitSet(bs)              // github.com/bits-and-blooms/bitset
//	e, _ := bitarray.FromRoaring(rb, 1024)    // github.com/RoaringBitmap/roaring/v2
//
// A BitArray is safe for concurrent readers; no method mutates it.
package bitarray
