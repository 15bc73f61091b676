// SPDX-License-Identifier: MIT

package protocol

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strassen/cluster"
)

var (
	// ErrUnexpectedEnvelope marks an envelope of the wrong kind or without its payload.
	ErrUnexpectedEnvelope = errors.New("protocol: unexpected envelope")

	// ErrCollectTimeout is returned when WithCollectTimeout elapses before every result arrived.
	ErrCollectTimeout = errors.New("protocol: collect timed out")
)

// RemoteError is a failure reported by a worker.
// It unwraps to the sentinel of its Code, so errors.Is(err, matrix.ErrRingMismatch)
// holds for a worker that rejected operands from a different ring.
type RemoteError struct {
	Rank    int
	Tag     int
	Code    cluster.ErrorCode
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("protocol: worker %d failed product %d (%s): %s", e.Rank, e.Tag, e.Code, e.Message)
}

func (e *RemoteError) Unwrap() error {
	if s := e.Code.Sentinel(); s != nil {
		return s
	}

	return cluster.ErrInternal
}

// remoteErrorFrom converts a KindFailure envelope.
func remoteErrorFrom(env *cluster.Envelope) *RemoteError {
	return &RemoteError{Rank: env.From, Tag: env.Tag, Code: env.Code, Message: env.Message}
}
