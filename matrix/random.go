// SPDX-License-Identifier: MIT
// Package matrix - deterministic operand generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; each call builds its own stream.

package matrix

import (
	"math/rand"

	"github.com/katalvlaran/strassen/ring"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// (SplitMix64 finalizer), so sibling streams are decorrelated.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Random returns an n×n matrix over r with elements drawn uniformly from [0,p).
//
// Errors: ErrInvalidDimensions, ring.ErrBadModulus.
// Complexity: O(n²).
func Random(r ring.Ring, n int, seed int64) (*Dense, error) {
	m, err := NewDense(r, n)
	if err != nil {
		return nil, matrixErrorf("Random", err)
	}
	fillRandom(m, rngFromSeed(seed))

	return m, nil
}

// RandomPair returns two independent n×n operands derived from one seed.
func RandomPair(r ring.Ring, n int, seed int64) (*Dense, *Dense, error) {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	a, err := Random(r, n, deriveSeed(seed, 1))
	if err != nil {
		return nil, nil, err
	}
	b, err := Random(r, n, deriveSeed(seed, 2))
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// fillRandom writes uniform elements of m's ring into m.
func fillRandom(m *Dense, rng *rand.Rand) {
	p := m.r.Modulus()
	for k := range m.data {
		// p ≤ MaxModulus < 2^63, so Int63n covers the whole ring.
		m.data[k] = ring.Element(rng.Int63n(int64(p)))
	}
}
