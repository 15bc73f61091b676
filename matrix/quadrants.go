// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Split an order-n matrix into four order-n/2 quadrants and Join them back.
//   - Quadrant order is fixed: 0=top-left, 1=top-right, 2=bottom-left, 3=bottom-right.
//
// Determinism & Performance:
//   - Row-wise copy() of contiguous runs; O(n²) time, O(n²) space overall.
//   - Join(Split(M)) == M for every even-order M.

package matrix

import "fmt"

// Quadrant indices in Split output / Join input.
const (
	TopLeft     = 0
	TopRight    = 1
	BottomLeft  = 2
	BottomRight = 3
)

// quadrantOrigin returns the (row, col) offset of quadrant q inside a matrix
// whose quadrants have order h.
func quadrantOrigin(q, h int) (int, int) {
	return (q / 2) * h, (q % 2) * h
}

// Split partitions m into four quadrants by contiguous row/column ranges:
// TopLeft = rows [0,n/2) × cols [0,n/2), TopRight = rows [0,n/2) × cols [n/2,n), etc.
//
// Errors: ErrNilMatrix, ErrOddOrder.
// Complexity: O(n²).
func Split(m *Dense) ([4]*Dense, error) {
	var out [4]*Dense
	if err := ValidateEvenOrder(m); err != nil {
		return out, matrixErrorf(opSplit, err)
	}

	h := m.n / 2 // quadrant order
	for q := 0; q < 4; q++ {
		r0, c0 := quadrantOrigin(q, h)
		part := newDense(m.r, h)
		for i := 0; i < h; i++ {
			src := (r0+i)*m.n + c0 // start of the run in the parent
			copy(part.data[i*h:(i+1)*h], m.data[src:src+h])
		}
		out[q] = part
	}

	return out, nil
}

// Join composes four order-k quadrants into one order-2k matrix; the inverse of Split.
//
// Errors: ErrNilMatrix (any nil quadrant), ErrRingMismatch, ErrSizeMismatch.
// Complexity: O(k²).
func Join(q [4]*Dense) (*Dense, error) {
	for i, part := range q {
		if err := ValidateNotNil(part); err != nil {
			return nil, fmt.Errorf("%s: quadrant %d: %w", opJoin, i, err)
		}
	}
	for i := 1; i < 4; i++ {
		if err := ValidateSameRing(q[0], q[i]); err != nil {
			return nil, fmt.Errorf("%s: quadrant %d: %w", opJoin, i, err)
		}
		if err := ValidateSameOrder(q[0], q[i]); err != nil {
			return nil, fmt.Errorf("%s: quadrant %d: %w", opJoin, i, err)
		}
	}

	h := q[0].n
	n := 2 * h
	out := newDense(q[0].r, n)
	for k, part := range q {
		r0, c0 := quadrantOrigin(k, h)
		for i := 0; i < h; i++ {
			dst := (r0+i)*n + c0
			copy(out.data[dst:dst+h], part.data[i*h:(i+1)*h])
		}
	}

	return out, nil
}
