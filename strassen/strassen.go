// SPDX-License-Identifier: MIT
// Package strassen - sequential recursion.
//
// MultiplySeq is purely local: it never crosses a process boundary and never
// spawns goroutines. It is invoked once per process on whatever block that
// process was assigned.

package strassen

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/ring"
)

const opMultiplySeq = "MultiplySeq"

// MultiplySeq returns a × b over r using Strassen's seven-product recursion.
//
// Implementation:
//   - Stage 1 (Validate): non-nil operands, both over r, equal order.
//   - Stage 2 (Base): order 0 → empty result; order 1 → matrix.Mul.
//   - Stage 3 (Recurse): split both operands, evaluate the seven operand pairs
//     from DefaultTable, recurse on each, combine with Outputs and join.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrRingMismatch, matrix.ErrSizeMismatch.
//   - matrix.ErrOddOrder when a non-power-of-two order reaches a split.
//
// Complexity:
//   - Time O(n^log2(7)) ring operations, depth log2(n).
func MultiplySeq(a, b *matrix.Dense, r ring.Ring) (*matrix.Dense, error) {
	if err := matrix.ValidateBinary(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiplySeq, err)
	}
	if err := r.Check(a.Ring()); err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiplySeq, err)
	}

	return multiplySeq(a, b)
}

// multiplySeq is the recursion proper; operands are already validated.
func multiplySeq(a, b *matrix.Dense) (*matrix.Dense, error) {
	switch a.Order() {
	case 0:
		return matrix.NewDense(a.Ring(), 0)
	case 1:
		return matrix.Mul(a, b)
	}

	aq, err := matrix.Split(a)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opMultiplySeq, a.Order(), err)
	}
	bq, err := matrix.Split(b)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opMultiplySeq, b.Order(), err)
	}

	var products [Products]*matrix.Dense
	for _, task := range DefaultTable {
		left, right, err := task.Operands(aq, bq)
		if err != nil {
			return nil, fmt.Errorf("%s(%d): %w", opMultiplySeq, a.Order(), err)
		}
		if products[task.Index], err = multiplySeq(left, right); err != nil {
			return nil, err // already tagged by the deeper level
		}
	}

	return Combine(products)
}

// Depth returns the recursion depth MultiplySeq reaches for order n:
// log2(n) for powers of two, 0 for n ≤ 1, and -1 when n is not a power of two.
func Depth(n int) int {
	switch {
	case n <= 1:
		return 0
	case !matrix.IsPowerOfTwo(n):
		return -1
	}

	return bits.TrailingZeros(uint(n))
}
