// SPDX-License-Identifier: MIT

package cluster

import (
	"errors"

	"github.com/katalvlaran/strassen/matrix"
)

var (
	// ErrTopology indicates the group does not have the shape the caller
	// requires: wrong size, duplicate or out-of-range rank.
	ErrTopology = errors.New("cluster: invalid topology")

	// ErrClosed is returned by operations on a closed transport.
	ErrClosed = errors.New("cluster: transport closed")

	// ErrUnknownPeer indicates a send to a rank this participant has no link to.
	ErrUnknownPeer = errors.New("cluster: unknown peer")

	// ErrInternal is the sentinel for remote failures that map to no other code.
	ErrInternal = errors.New("cluster: internal failure")
)

// ErrorCode is the wire form of a failure carried by a KindFailure envelope.
type ErrorCode int

const (
	CodeNone ErrorCode = iota
	CodeSizeMismatch
	CodeOddOrder
	CodeRingMismatch
	CodeTopology
	CodeInternal
)

// String implements fmt.Stringer.
func (c ErrorCode) String() string {
	switch c {
	case CodeNone:
		return "none"
	case CodeSizeMismatch:
		return "size-mismatch"
	case CodeOddOrder:
		return "odd-order"
	case CodeRingMismatch:
		return "ring-mismatch"
	case CodeTopology:
		return "topology"
	default:
		return "internal"
	}
}

// CodeOf classifies err. nil maps to CodeNone; anything unrecognized to CodeInternal.
func CodeOf(err error) ErrorCode {
	switch {
	case err == nil:
		return CodeNone
	case errors.Is(err, matrix.ErrRingMismatch):
		return CodeRingMismatch
	case errors.Is(err, matrix.ErrSizeMismatch):
		return CodeSizeMismatch
	case errors.Is(err, matrix.ErrOddOrder):
		return CodeOddOrder
	case errors.Is(err, ErrTopology):
		return CodeTopology
	default:
		return CodeInternal
	}
}

// Sentinel returns the error value c stands for, nil for CodeNone.
func (c ErrorCode) Sentinel() error {
	switch c {
	case CodeNone:
		return nil
	case CodeSizeMismatch:
		return matrix.ErrSizeMismatch
	case CodeOddOrder:
		return matrix.ErrOddOrder
	case CodeRingMismatch:
		return matrix.ErrRingMismatch
	case CodeTopology:
		return ErrTopology
	default:
		return ErrInternal
	}
}
