// Package matrix provides dense square matrices over a finite ring.
//
// The matrix package provides:
//
//   - Dense, a row-major square matrix of ring.Element values that carries
//     its ring.Ring, so cross-ring arithmetic is rejected instead of silently
//     producing wrong numbers.
//   - Quadrant operations (Split, Join) used by divide-and-conquer kernels.
//   - Element-wise Add/Sub, the order-1 Mul base case, and the definitional
//     Product used as a reference for verification.
//   - A binary wire codec so a Dense round-trips exactly across processes.
//   - Deterministic operand generation (Random, RandomPair).
//
// Every public operation returns a new matrix; operands are never mutated.
//
// See the examples in this package for usage patterns.
package matrix
