package bitarray

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// FromBitSet copies a bits-and-blooms bitset. The length is bs.Len().
func FromBitSet(bs *bitset.BitSet) BitArray {
	if bs == nil {
		return BitArray{}
	}
	b := Zeros(int(bs.Len()))
	for i, ok := bs.NextSet(0); ok && i < bs.Len(); i, ok = bs.NextSet(i + 1) {
		b.set(int(i))
	}
	return b
}

// ToBitSet copies the array into a new bits-and-blooms bitset of Len() bits.
func (b BitArray) ToBitSet() *bitset.BitSet {
	bs := bitset.New(uint(b.n))
	for i := 0; i < b.n; i++ {
		if b.Bit(i) {
			bs.Set(uint(i))
		}
	}
	return bs
}

// FromRoaring builds an n-bit array from a roaring bitmap of set indices.
// Every member must be below n.
func FromRoaring(rb *roaring.Bitmap, n int) (BitArray, error) {
	b := Zeros(n)
	if rb == nil || rb.IsEmpty() {
		return b, nil
	}
	if maxIdx := rb.Maximum(); uint64(maxIdx) >= uint64(b.n) {
		return BitArray{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, maxIdx, b.n)
	}
	it := rb.Iterator()
	for it.HasNext() {
		b.set(int(it.Next()))
	}
	return b, nil
}

// ToRoaring returns the set indices as a roaring bitmap.
func (b BitArray) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	for i := 0; i < b.n; i++ {
		if b.Bit(i) {
			rb.Add(uint32(i))
		}
	}
	return rb
}
