// SPDX-License-Identifier: MIT

package matrix

// Product returns the definitional matrix product a × b, every sum reduced
// into the operands' ring. It is the reference the Strassen kernels are
// checked against; it is not on the hot path.
//
// Errors: ErrNilMatrix, ErrRingMismatch, ErrSizeMismatch.
// Complexity: O(n³) time, O(n²) space.
func Product(a, b *Dense) (*Dense, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}

	var (
		n   = a.n
		r   = a.r
		out = newDense(r, n)
	)
	// i→k→j order: walk b and out row-wise for locality.
	for i := 0; i < n; i++ {
		rowOut := out.data[i*n : (i+1)*n]
		for k := 0; k < n; k++ {
			aik := a.data[i*n+k]
			if aik == 0 {
				continue // zero contributes nothing
			}
			rowB := b.data[k*n : (k+1)*n]
			for j := 0; j < n; j++ {
				rowOut[j] = r.Add(rowOut[j], r.Mul(aik, rowB[j]))
			}
		}
	}

	return out, nil
}
