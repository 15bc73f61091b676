// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/ring"
	"pgregory.net/rapid"
)

// drawDense draws an order-n matrix over r.
func drawDense(t *rapid.T, r ring.Ring, n int, label string) *matrix.Dense {
	vals := rapid.SliceOfN(rapid.Int64(), n*n, n*n).Draw(t, label)
	m, err := matrix.NewFromValues(r, n, vals)
	if err != nil {
		t.Fatalf("NewFromValues: %v", err)
	}

	return m
}

// TestSplitJoinRoundTripProperty: Join(Split(M)) == M for every even order.
func TestSplitJoinRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := ring.MustNew(rapid.Uint64Range(1, 1<<20).Draw(t, "p"))
		n := 2 * rapid.IntRange(0, 8).Draw(t, "half")
		m := drawDense(t, r, n, "m")

		q, err := matrix.Split(m)
		if err != nil {
			t.Fatalf("Split: %v", err)
		}
		back, err := matrix.Join(q)
		if err != nil {
			t.Fatalf("Join: %v", err)
		}
		if !m.Equal(back) {
			t.Fatalf("round trip changed matrix:\n%v\n%v", m, back)
		}
	})
}

// TestCodecRoundTripProperty: UnmarshalBinary(MarshalBinary(M)) == M.
func TestCodecRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := ring.MustNew(rapid.Uint64Range(1, ring.MaxModulus).Draw(t, "p"))
		n := rapid.IntRange(0, 6).Draw(t, "n")
		m := drawDense(t, r, n, "m")

		raw, err := m.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary: %v", err)
		}
		var back matrix.Dense
		if err := back.UnmarshalBinary(raw); err != nil {
			t.Fatalf("UnmarshalBinary: %v", err)
		}
		if !m.Equal(&back) {
			t.Fatalf("codec changed matrix")
		}
	})
}

// TestAddSubInverseProperty: (A - B) + B == A and every element stays in [0,p).
func TestAddSubInverseProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := ring.MustNew(rapid.Uint64Range(1, 1<<31).Draw(t, "p"))
		n := rapid.IntRange(1, 6).Draw(t, "n")
		a := drawDense(t, r, n, "a")
		b := drawDense(t, r, n, "b")

		d, err := matrix.Sub(a, b)
		if err != nil {
			t.Fatalf("Sub: %v", err)
		}
		for _, v := range d.Values() {
			if !r.Contains(v) {
				t.Fatalf("element %d outside ring %v", v, r)
			}
		}
		s, err := matrix.Add(d, b)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if !s.Equal(a) {
			t.Fatalf("(a-b)+b != a")
		}
	})
}
