// SPDX-License-Identifier: MIT

// Package gf2 - fixed-capacity bit-vector.
//
// Bitset packs up to Capacity() bits into 64-bit words so that XOR and
// population count run in O(width/64). The capacity is fixed at
// construction; any attempt to load more bits than fit is ErrCapacity.
// Bitsets of different capacity never mix (ErrDimensionMismatch).

package gf2

import "math/bits"

const (
	wordBits    = 64
	log2WordLen = 6
)

// Bitset is a fixed-capacity vector of bits.
type Bitset struct {
	capacity int
	words    []uint64
}

// NewBitset allocates an all-zero bitset holding exactly capacity bits.
// Errors: ErrCapacity if capacity <= 0.
func NewBitset(capacity int) (Bitset, error) {
	if capacity <= 0 {
		return Bitset{}, gf2Errorf(opBitset, "capacity %d: %w", capacity, ErrCapacity)
	}

	return Bitset{
		capacity: capacity,
		words:    make([]uint64, (capacity+wordBits-1)>>log2WordLen),
	}, nil
}

// BitsetFromBools packs src into a new bitset of the given capacity.
// Errors: ErrCapacity if len(src) > capacity or capacity <= 0.
// Complexity: O(capacity).
func BitsetFromBools(src []bool, capacity int) (Bitset, error) {
	if len(src) > capacity {
		return Bitset{}, gf2Errorf(opBitset, "%d bits do not fit capacity %d: %w",
			len(src), capacity, ErrCapacity)
	}
	b, err := NewBitset(capacity)
	if err != nil {
		return Bitset{}, err
	}
	for i, v := range src {
		if v {
			b.words[i>>log2WordLen] |= 1 << uint(i&(wordBits-1))
		}
	}

	return b, nil
}

// Capacity returns the fixed number of addressable bits.
func (b Bitset) Capacity() int { return b.capacity }

// Count returns the number of set bits.
func (b Bitset) Count() int {
	c := 0
	for _, w := range b.words {
		c += bits.OnesCount64(w)
	}

	return c
}

// XorWith sets b ^= o in place.
// Errors: ErrDimensionMismatch on capacity mismatch.
func (b Bitset) XorWith(o Bitset) error {
	if b.capacity != o.capacity {
		return gf2Errorf(opBitset, "XorWith %d vs %d: %w", b.capacity, o.capacity, ErrDimensionMismatch)
	}
	for k := range b.words {
		b.words[k] ^= o.words[k]
	}

	return nil
}

// XorCount returns the weight of b ^ o1 ^ ... ^ ok without allocating.
// All operands must share b's capacity; the caller guarantees it.
func (b Bitset) XorCount(others ...Bitset) int {
	c := 0
	for k, w := range b.words {
		for _, o := range others {
			w ^= o.words[k]
		}
		c += bits.OnesCount64(w)
	}

	return c
}

// Bools unpacks the first len(dst) bits into dst.
// Errors: ErrCapacity if len(dst) > Capacity().
func (b Bitset) Bools(dst []bool) error {
	if len(dst) > b.capacity {
		return gf2Errorf(opBitset, "Bools(%d) with capacity %d: %w", len(dst), b.capacity, ErrCapacity)
	}
	for i := range dst {
		dst[i] = b.words[i>>log2WordLen]&(1<<uint(i&(wordBits-1))) != 0
	}

	return nil
}
