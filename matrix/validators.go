// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/ring/order checks here.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     wrap uniformly and callers still match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Each composite validator follows a fixed sequence: NotNil → Ring → Order.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameRing ensures a and b share a modulus.
// Assumes a and b are not nil (caller must ensure).
// Returns wrapped ErrRingMismatch. Complexity: O(1).
func ValidateSameRing(a, b *Dense) error {
	if err := a.r.Check(b.r); err != nil {
		return validatorErrorf("ValidateSameRing", err)
	}

	return nil
}

// ValidateSameOrder ensures a and b have equal order.
// Assumes a and b are not nil (caller must ensure).
// Returns wrapped ErrSizeMismatch. Complexity: O(1).
func ValidateSameOrder(a, b *Dense) error {
	if a.n != b.n {
		return validatorErrorf(fmt.Sprintf("ValidateSameOrder(%d vs %d)", a.n, b.n), ErrSizeMismatch)
	}

	return nil
}

// ValidateBinary – Composite: NotNil(a) → NotNil(b) → SameRing → SameOrder.
// Use before every two-operand kernel (Add/Sub/Mul/Product).
func ValidateBinary(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateSameRing(a, b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateSameOrder(a, b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}

	return nil
}

// ValidateEvenOrder ensures m can be split into quadrants.
// Returns ErrNilMatrix or ErrOddOrder. Complexity: O(1).
func ValidateEvenOrder(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateEvenOrder", err)
	}
	if m.n%2 != 0 {
		return validatorErrorf(fmt.Sprintf("ValidateEvenOrder(%d)", m.n), ErrOddOrder)
	}

	return nil
}

// ValidatePowerOfTwo ensures the order is a positive power of two, which is
// what the distributed decomposition requires at its boundary. Orders that
// are not powers of two report ErrOddOrder, since recursive splitting would
// eventually hit an odd order. Order 0 is rejected as well.
// Complexity: O(1).
func ValidatePowerOfTwo(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidatePowerOfTwo", err)
	}
	if !IsPowerOfTwo(m.n) {
		return validatorErrorf(fmt.Sprintf("ValidatePowerOfTwo(%d)", m.n), ErrOddOrder)
	}

	return nil
}

// IsPowerOfTwo reports whether n is 1, 2, 4, 8, ...
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
