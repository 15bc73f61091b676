// SPDX-License-Identifier: MIT
// Package ring - Z/pZ element arithmetic.
//
// Purpose:
//   - Provide pure value operations (Add/Sub/Mul/Neg/Reduce) normalized into [0,p).
//   - Keep subtraction free of negative representatives.
//   - Keep multiplication exact for every admissible modulus via a 128-bit product.
//
// Complexity: every operation is O(1) and allocation-free.

package ring

import (
	"fmt"
	"math/bits"
)

// MaxModulus is the largest admissible modulus. With p ≤ 2^63-1 the sum of two
// reduced elements stays below 2^64, so Add never needs a carry check.
const MaxModulus uint64 = 1<<63 - 1

// Element is a ring element. Values produced by Ring methods lie in [0, p).
type Element uint64

// Ring is Z/pZ for a fixed modulus p. The zero value is not usable; build one
// with New or MustNew. Arithmetic on the zero Ring panics; check Valid when a
// Ring may not have come from New.
type Ring struct {
	p uint64 // modulus, 1 ≤ p ≤ MaxModulus
}

// New returns the ring of integers modulo p.
// Errors: ErrBadModulus when p == 0 or p > MaxModulus.
func New(p uint64) (Ring, error) {
	if p == 0 || p > MaxModulus {
		return Ring{}, fmt.Errorf("New(%d): %w", p, ErrBadModulus)
	}

	return Ring{p: p}, nil
}

// MustNew is New for moduli known to be valid at compile time.
// It panics on ErrBadModulus.
func MustNew(p uint64) Ring {
	r, err := New(p)
	if err != nil {
		panic(err)
	}

	return r
}

// Modulus returns p.
func (r Ring) Modulus() uint64 { return r.p }

// Valid reports whether r was built by New (the zero Ring is invalid).
func (r Ring) Valid() bool { return r.p != 0 }

// mod returns p, panicking on the zero Ring so misuse names itself instead
// of surfacing as an integer divide by zero.
func (r Ring) mod() uint64 {
	if r.p == 0 {
		panic("ring: arithmetic on the zero Ring; build one with New")
	}

	return r.p
}

// Equal reports whether r and o are the same ring.
func (r Ring) Equal(o Ring) bool { return r.p == o.p }

// Check returns nil when r and o share the modulus, or a wrapped
// ErrRingMismatch naming both moduli otherwise.
func (r Ring) Check(o Ring) error {
	if r.p != o.p {
		return fmt.Errorf("Check(%d vs %d): %w", r.p, o.p, ErrRingMismatch)
	}

	return nil
}

// Contains reports whether a is a canonical representative, i.e. a < p.
func (r Ring) Contains(a Element) bool { return uint64(a) < r.p }

// Reduce maps an arbitrary unsigned value into [0,p).
func (r Ring) Reduce(v uint64) Element { return Element(v % r.mod()) }

// FromInt maps a signed value into [0,p); negative inputs map to their
// non-negative representative (FromInt(-1) == p-1).
func (r Ring) FromInt(v int64) Element {
	p := r.mod()
	if v >= 0 {
		return Element(uint64(v) % p)
	}
	// -v may overflow for MinInt64; uint64(-(v+1))+1 does not.
	m := (uint64(-(v + 1)) + 1) % p
	if m == 0 {
		return 0
	}

	return Element(p - m)
}

// Add returns (a + b) mod p.
func (r Ring) Add(a, b Element) Element {
	// Reduce first so out-of-range inputs still yield canonical output.
	p := r.mod()
	x, y := uint64(a)%p, uint64(b)%p
	s := x + y // < 2p ≤ 2^64-2, no overflow

	if s >= p {
		s -= p
	}

	return Element(s)
}

// Sub returns (a - b) mod p, never a negative representative.
func (r Ring) Sub(a, b Element) Element {
	p := r.mod()
	x, y := uint64(a)%p, uint64(b)%p
	if x >= y {
		return Element(x - y)
	}

	return Element(p - (y - x))
}

// Neg returns (-a) mod p.
func (r Ring) Neg(a Element) Element { return r.Sub(0, a) }

// Mul returns (a * b) mod p using a full 128-bit product.
func (r Ring) Mul(a, b Element) Element {
	p := r.mod()
	x, y := uint64(a)%p, uint64(b)%p
	hi, lo := bits.Mul64(x, y)

	return Element(bits.Rem64(hi, lo, p))
}

// String implements fmt.Stringer.
func (r Ring) String() string { return fmt.Sprintf("Z/%dZ", r.p) }
