// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/ring"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative orders and zero rings.
func TestNewDenseInvalidDimensions(t *testing.T) {
	// negative order
	_, err := matrix.NewDense(z13, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	// unconstructed ring
	_, err = matrix.NewDense(ring.Ring{}, 2)
	require.ErrorIs(t, err, ring.ErrBadModulus)

	// order 0 is legal
	m, err := matrix.NewDense(z13, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Order())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(z13, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

// TestSetReducesIntoRing checks the [0,p) invariant on writes.
func TestSetReducesIntoRing(t *testing.T) {
	m, err := matrix.NewDense(z13, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 40)) // 40 mod 13 = 1
	require.Equal(t, ring.Element(1), MustAt(t, m, 1, 0))
}

// TestNewFromValuesNormalizes verifies negative and large inputs are reduced.
func TestNewFromValuesNormalizes(t *testing.T) {
	m, err := matrix.NewFromValues(z13, 2, []int64{-1, 13, 27, -14})
	require.NoError(t, err)
	require.Equal(t, []ring.Element{12, 0, 1, 12}, m.Values())

	_, err = matrix.NewFromValues(z13, 2, []int64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)
}

// TestNewFromRowsRejectsRagged ensures non-square row sets are refused.
func TestNewFromRowsRejectsRagged(t *testing.T) {
	_, err := matrix.NewFromRows(z13, [][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)

	m, err := matrix.NewFromRows(z13, nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Order())
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustRows(t, z13, []int64{1, 2}, []int64{3, 4})
	c := m.Clone()
	require.True(t, m.Equal(c))

	require.NoError(t, c.Set(0, 0, 9))
	require.Equal(t, ring.Element(1), MustAt(t, m, 0, 0)) // original untouched
	require.False(t, m.Equal(c))

	vals := m.Values()
	vals[0] = 7
	require.Equal(t, ring.Element(1), MustAt(t, m, 0, 0)) // Values is a copy too
}

// TestEqualRespectsRing checks that equal digits over different rings differ.
func TestEqualRespectsRing(t *testing.T) {
	a := MustRows(t, z13, []int64{1})
	b := MustRows(t, ring.MustNew(17), []int64{1})
	require.False(t, a.Equal(b))

	var nilA, nilB *matrix.Dense
	require.True(t, nilA.Equal(nilB))
	require.False(t, a.Equal(nil))
}

func TestString(t *testing.T) {
	m := MustRows(t, z13, []int64{1, 2}, []int64{3, -1})
	require.Equal(t, "[1, 2]\n[3, 12]\n", m.String())
}
