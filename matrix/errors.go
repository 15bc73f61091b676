// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strassen/ring"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("Tag: %w", ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> ring mismatch -> order mismatch -> structural (odd order, unit order).

var (
	// ErrInvalidDimensions indicates a negative order was requested.
	ErrInvalidDimensions = errors.New("matrix: order must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSizeMismatch indicates operands of different order (Add/Sub/Join/Mul),
	// or a value slice whose length is not order².
	ErrSizeMismatch = errors.New("matrix: size mismatch")

	// ErrOddOrder signals an attempt to split a matrix of odd order.
	ErrOddOrder = errors.New("matrix: odd order cannot be split")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotUnitOrder is returned by Mul for anything but the order-1 base case.
	ErrNotUnitOrder = errors.New("matrix: element product requires order 1")

	// ErrCorruptPayload marks a wire payload that does not describe a valid Dense.
	ErrCorruptPayload = errors.New("matrix: corrupt payload")
)

// ErrRingMismatch is ring.ErrRingMismatch, re-exported so matrix callers need
// not import ring just to match it.
var ErrRingMismatch = ring.ErrRingMismatch

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
