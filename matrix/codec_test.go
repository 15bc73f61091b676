// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/ring"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	m := MustRandom(t, ring.MustNew(ring.MaxModulus), 4, 9)

	raw, err := m.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, raw, 16+8*16)

	var back matrix.Dense
	require.NoError(t, back.UnmarshalBinary(raw))
	RequireEqualDense(t, m, &back)
}

// TestCodecThroughGob checks gob picks up the binary marshaler for a nested *Dense.
func TestCodecThroughGob(t *testing.T) {
	type wrapper struct {
		Tag int
		M   *matrix.Dense
	}
	in := wrapper{Tag: 3, M: MustRows(t, z13, []int64{1, -1}, []int64{0, 7})}

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(in))

	var out wrapper
	require.NoError(t, gob.NewDecoder(&buf).Decode(&out))
	require.Equal(t, 3, out.Tag)
	RequireEqualDense(t, in.M, out.M)
	require.Equal(t, uint64(13), out.M.Ring().Modulus())
}

func TestCodecRejectsCorruptPayload(t *testing.T) {
	good, err := MustRows(t, z13, []int64{1, 2}, []int64{3, 4}).MarshalBinary()
	require.NoError(t, err)

	cases := map[string][]byte{
		"short header": good[:10],
		"truncated":    good[:len(good)-1],
		"zero modulus": func() []byte {
			b := bytes.Clone(good)
			binary.BigEndian.PutUint64(b[8:16], 0)
			return b
		}(),
		"element out of ring": func() []byte {
			b := bytes.Clone(good)
			binary.BigEndian.PutUint64(b[16:24], 13)
			return b
		}(),
		"huge order": func() []byte {
			b := bytes.Clone(good)
			binary.BigEndian.PutUint64(b[0:8], 1<<40)
			return b
		}(),
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var m matrix.Dense
			require.ErrorIs(t, m.UnmarshalBinary(raw), matrix.ErrCorruptPayload)
		})
	}
}

func TestMarshalNil(t *testing.T) {
	var m *matrix.Dense
	_, err := m.MarshalBinary()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
