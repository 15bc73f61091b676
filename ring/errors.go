// SPDX-License-Identifier: MIT
// Package ring: sentinel error set.
// Callers match these with errors.Is; call sites wrap them with context.

package ring

import "errors"

var (
	// ErrBadModulus is returned when a modulus is zero or too large to keep
	// a+b within 64 bits.
	ErrBadModulus = errors.New("ring: invalid modulus")

	// ErrRingMismatch indicates an operation across rings with different moduli.
	// It usually means the modulus was not distributed identically to every process.
	ErrRingMismatch = errors.New("ring: modulus mismatch")
)
