// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Carry the ring.Ring with the data, so every element is created and combined
//     exclusively through ring operations.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone/Equal/Values: O(n²).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/strassen/ring"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"            // method tag used in error wrappers
	ctxSet        = "Set"           // method tag used in error wrappers
	ctxNewDense   = "NewDense"      // ctor tag
	ctxFromValues = "NewFromValues" // ctor tag
	ctxFromRows   = "NewFromRows"   // ctor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square row-major matrix over a finite ring.
//   - n is the order (rows == cols == n).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//   - r is the ring every element belongs to; all elements lie in [0, r.Modulus()).
type Dense struct {
	n    int            // order (>= 0)
	r    ring.Ring      // element ring
	data []ring.Element // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an n×n zero matrix over r.
// MAIN DESCRIPTION:
//   - Public constructor with strict order validation.
//
// Implementation:
//   - Stage 1: validate n>=0 and that r is a constructed ring.
//   - Stage 2: allocate zero-filled buffer (zero is canonical in every ring).
//
// Errors:
//   - ErrInvalidDimensions (negative order), ring.ErrBadModulus (zero Ring).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDense(r ring.Ring, n int) (*Dense, error) {
	if n < 0 {
		return nil, matrixErrorf(ctxNewDense, ErrInvalidDimensions)
	}
	if !r.Valid() {
		return nil, matrixErrorf(ctxNewDense, ring.ErrBadModulus)
	}

	return newDense(r, n), nil
}

// newDense is the unchecked internal constructor used once shape is known-good.
func newDense(r ring.Ring, n int) *Dense {
	return &Dense{n: n, r: r, data: make([]ring.Element, n*n)}
}

// NewFromValues builds an n×n matrix from row-major signed values, reducing
// each one into r (negative values map to their non-negative representative).
//
// Errors: ErrInvalidDimensions, ErrSizeMismatch when len(values) != n*n.
// Complexity: O(n²).
func NewFromValues(r ring.Ring, n int, values []int64) (*Dense, error) {
	m, err := NewDense(r, n)
	if err != nil {
		return nil, matrixErrorf(ctxFromValues, err)
	}
	if len(values) != n*n {
		return nil, matrixErrorf(ctxFromValues, ErrSizeMismatch)
	}
	for i, v := range values {
		m.data[i] = r.FromInt(v) // normalize into [0,p)
	}

	return m, nil
}

// NewFromRows builds a matrix from a square slice of rows.
// An empty rows slice yields the order-0 matrix.
//
// Errors: ErrSizeMismatch when any row length differs from len(rows).
func NewFromRows(r ring.Ring, rows [][]int64) (*Dense, error) {
	n := len(rows)
	flat := make([]int64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, i, len(row), n, ErrSizeMismatch)
		}
		flat = append(flat, row...)
	}

	return NewFromValues(r, n, flat)
}

// Order returns n. Complexity: O(1).
func (m *Dense) Order() int { return m.n }

// Ring returns the ring the elements belong to. Complexity: O(1).
func (m *Dense) Ring() ring.Ring { return m.r }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The sentinel is returned bare; At/Set wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns the element at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (ring.Element, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v (reduced into the ring) at (row, col).
//
// Set is the one mutating method. It exists for builders that fill a matrix
// they just allocated; it is never called on a matrix after it has been handed
// to another component.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v ring.Element) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = m.r.Reduce(uint64(v)) // keep the [0,p) invariant

	return nil
}

// Values returns a copy of the row-major element buffer.
// Complexity: O(n²).
func (m *Dense) Values() []ring.Element {
	cp := make([]ring.Element, len(m.data))
	copy(cp, m.data)

	return cp
}

// Clone returns a deep copy (new buffer, same ring).
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	cp := newDense(m.r, m.n)
	copy(cp.data, m.data)

	return cp
}

// Equal reports whether m and o have the same ring, order and elements.
// Two nil matrices are equal; a nil and a non-nil one are not.
// Complexity: O(n²).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !m.r.Equal(o.r) || m.n != o.n {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Not for hot paths; intended for logs, debugging and the CLI printer.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString(_fmtRowOpen)
		base := i * m.n // row offset
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%d", m.data[base+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
