// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise Add/Sub over the operands' ring, plus the order-1 Mul base case.
//   - Keep all loops deterministic and flat over the row-major buffer.
//
// Design:
//   - Public kernels validate via ValidateBinary, then delegate to the private
//     ewApply micro-kernel to avoid duplicating the tight loop.
//   - Results are always freshly allocated; operands are never written.

package matrix

import "github.com/katalvlaran/strassen/ring"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opMul     = "Mul"
	opProduct = "Product"
	opSplit   = "Split"
	opJoin    = "Join"
)

// ewApply computes out[k] = f(a[k], b[k]) over the flat buffers.
// Assumes ValidateBinary already passed. Time: O(n²). Space: O(n²).
func ewApply(a, b *Dense, f func(x, y ring.Element) ring.Element) *Dense {
	out := newDense(a.r, a.n)
	for k := range a.data { // single flat pass, fixed order
		out.data[k] = f(a.data[k], b.data[k])
	}

	return out
}

// Add returns a new matrix containing the element-wise ring sum a + b.
// Errors: ErrNilMatrix, ErrRingMismatch, ErrSizeMismatch.
// Complexity: O(n²) time and memory.
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return ewApply(a, b, a.r.Add), nil
}

// Sub returns a new matrix containing the element-wise ring difference a − b.
// Every element of the result is normalized into [0,p).
// Errors: ErrNilMatrix, ErrRingMismatch, ErrSizeMismatch.
// Complexity: O(n²) time and memory.
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return ewApply(a, b, a.r.Sub), nil
}

// Mul is the recursion's terminal case: the product of two order-1 matrices,
// a single ring multiplication. Larger products go through the Strassen
// engine (or Product, for reference checks).
// Errors: ErrNilMatrix, ErrRingMismatch, ErrSizeMismatch, ErrNotUnitOrder.
// Complexity: O(1).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.n != 1 {
		return nil, matrixErrorf(opMul, ErrNotUnitOrder)
	}

	out := newDense(a.r, 1)
	out.data[0] = a.r.Mul(a.data[0], b.data[0])

	return out, nil
}
