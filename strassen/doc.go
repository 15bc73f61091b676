// Package strassen provides Strassen's matrix multiplication over a finite ring.
//
// It contains two pieces:
//
//   - MultiplySeq: the sequential, single-process recursion. It performs
//     O(n^log2(7)) ring operations at depth log2(n); the base case is order 1.
//   - Table: the static assignment of the seven sub-products of one
//     decomposition level to process ranks, together with the fixed operand
//     formulas and the output combinations. The sequential recursion and the
//     distributed protocol read the same table, so both compute the same
//     seven products.
//
// All functions accept matrices of any power-of-two order. An odd order met
// during recursion reports matrix.ErrOddOrder; operands over different rings
// report matrix.ErrRingMismatch.
package strassen
