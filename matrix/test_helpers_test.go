// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep every fixture inside a named ring so cross-ring cases are explicit.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/ring"
	"github.com/stretchr/testify/require"
)

// z13 is the ring used by the original mod-13 scenarios.
var z13 = ring.MustNew(13)

// MustRows builds a matrix from literal rows or fails the test.
func MustRows(t testing.TB, r ring.Ring, rows ...[]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(r, rows)
	require.NoError(t, err)

	return m
}

// MustRandom builds a seeded random matrix or fails the test.
func MustRandom(t testing.TB, r ring.Ring, n int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.Random(r, n, seed)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) ring.Element {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireEqualDense compares two matrices and prints both on mismatch.
func RequireEqualDense(t testing.TB, want, got *matrix.Dense) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want:\n%v\ngot:\n%v", want, got)
}
