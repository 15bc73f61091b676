// SPDX-License-Identifier: MIT

// Package ring implements arithmetic over the finite ring Z/pZ.
//
// A Ring is identified by its modulus p. Elements are fixed-width unsigned
// integers and every value produced by a Ring operation lies in [0, p).
// Only addition, subtraction and multiplication are provided; no operation
// relies on p being prime, so inverses are intentionally absent.
//
// Ring is a small comparable value. Two rings are the same ring exactly when
// their moduli are equal, which makes it cheap to carry a Ring inside every
// matrix and to reject cross-ring operations with ErrRingMismatch.
//
// Quick example:
//
//	r, _ := ring.New(13)
//	r.Sub(2, 5)  // 10
//	r.Mul(7, 9)  // 11
//	r.FromInt(-1) // 12
package ring
