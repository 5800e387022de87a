// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package classify

import "github.com/bits-and-blooms/bitset"

// Vector is the ordered bit vector spec.md §4.11 describes: one bit per
// predicate in Predicates, in that fixed order. We back it with
// bits-and-blooms/bitset instead of a []bool, the way gaissmai/bart
// represents its fixed-width prefix bitmaps — the classifier's output is
// exactly the "fixed-size bit vector of classifying predicates" the engine
// binds truth table keys to, and a bitset is the natural representation
// for that shape of data, not just a borrowed convenience.
type Vector struct {
	bits *bitset.BitSet
	n    uint
}

// NewVector allocates a zeroed vector of n bits.
func NewVector(n int) *Vector {
	return &Vector{bits: bitset.New(uint(n)), n: uint(n)}
}

// Set assigns bit i.
func (v *Vector) Set(i int, value bool) {
	if value {
		v.bits.Set(uint(i))
	} else {
		v.bits.Clear(uint(i))
	}
}

// Get returns bit i.
func (v *Vector) Get(i int) bool {
	return v.bits.Test(uint(i))
}

// Len returns the number of bits (predicates) in the vector.
func (v *Vector) Len() int { return int(v.n) }

// Key renders the vector to the '0'/'1' string that indexes an
// obdd.TruthTable, bit 0 first.
func (v *Vector) Key() string {
	b := make([]byte, v.n)
	for i := uint(0); i < v.n; i++ {
		if v.bits.Test(i) {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}
