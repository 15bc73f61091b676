// SPDX-License-Identifier: MIT
// Package matrix - binary wire codec.
//
// Purpose:
//   - Give Dense a self-contained encoding (order + modulus + flat elements) so a
//     matrix sent between processes round-trips exactly, ring included.
//   - Implement encoding.BinaryMarshaler / BinaryUnmarshaler, which encoding/gob
//     picks up automatically for the unexported fields.
//
// Layout (big-endian):
//
//	[0:8)    order n
//	[8:16)   modulus p
//	[16:...) n*n elements, 8 bytes each, row-major
//
// Decoding validates the modulus, the payload length and that every element
// lies in [0,p); violations report ErrCorruptPayload.

package matrix

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/katalvlaran/strassen/ring"
)

const (
	headerLen  = 16 // order + modulus
	elementLen = 8  // one uint64 per element
)

var (
	_ encoding.BinaryMarshaler   = (*Dense)(nil)
	_ encoding.BinaryUnmarshaler = (*Dense)(nil)
)

// MarshalBinary encodes m into the layout above.
// Complexity: O(n²).
func (m *Dense) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, matrixErrorf("MarshalBinary", ErrNilMatrix)
	}
	buf := make([]byte, headerLen+elementLen*len(m.data))
	binary.BigEndian.PutUint64(buf[0:8], uint64(m.n))
	binary.BigEndian.PutUint64(buf[8:16], m.r.Modulus())
	off := headerLen
	for _, v := range m.data {
		binary.BigEndian.PutUint64(buf[off:off+elementLen], uint64(v))
		off += elementLen
	}

	return buf, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary into m, replacing its contents.
// Errors: ErrCorruptPayload (wrapping the specific violation).
func (m *Dense) UnmarshalBinary(data []byte) error {
	if len(data) < headerLen {
		return corruptf("short header (%d bytes)", len(data))
	}
	order := binary.BigEndian.Uint64(data[0:8])
	r, err := ring.New(binary.BigEndian.Uint64(data[8:16]))
	if err != nil {
		return fmt.Errorf("UnmarshalBinary: %w: %w", ErrCorruptPayload, err)
	}

	body := uint64(len(data) - headerLen)
	// order ≤ MaxUint32 keeps order² within 64 bits.
	if order > math.MaxUint32 || body%elementLen != 0 || body/elementLen != order*order {
		return corruptf("order %d does not match %d payload bytes", order, body)
	}

	n := int(order)
	out := make([]ring.Element, n*n)
	off := headerLen
	for k := range out {
		v := ring.Element(binary.BigEndian.Uint64(data[off : off+elementLen]))
		if !r.Contains(v) {
			return corruptf("element %d = %d outside %s", k, v, r)
		}
		out[k] = v
		off += elementLen
	}

	m.n, m.r, m.data = n, r, out

	return nil
}

func corruptf(format string, args ...any) error {
	return fmt.Errorf("UnmarshalBinary: "+format+": %w", append(args, ErrCorruptPayload)...)
}
