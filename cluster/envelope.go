// SPDX-License-Identifier: MIT

package cluster

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// Kind is the type of an envelope.
type Kind int

const (
	KindOperands Kind = iota // coordinator → worker: Left and Right
	KindResult               // worker → coordinator: Result
	KindFailure              // worker → coordinator: Code and Message
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindOperands:
		return "operands"
	case KindResult:
		return "result"
	case KindFailure:
		return "failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Envelope is the unit of communication between participants.
//
// Matrices travel through their binary codec, so an envelope round-trips
// exactly through gob including the ring of every matrix.
type Envelope struct {
	Run  string // computation id
	Tag  int    // sub-product index
	From int    // sender rank, stamped by the transport
	Kind Kind

	Left   *matrix.Dense
	Right  *matrix.Dense
	Result *matrix.Dense

	Code    ErrorCode
	Message string
}

// Err returns the failure carried by a KindFailure envelope, nil otherwise.
func (e *Envelope) Err() error {
	if e.Kind != KindFailure {
		return nil
	}
	sentinel := e.Code.Sentinel()
	if sentinel == nil {
		sentinel = ErrInternal
	}

	return fmt.Errorf("rank %d tag %d: %s: %w", e.From, e.Tag, e.Message, sentinel)
}

// Transport is a ranked member of a process group.
//
// Send must not retain env after it returns. Recv blocks until an envelope
// from `from` tagged `tag` is available, ctx ends, or the transport closes.
type Transport interface {
	Rank() int
	Size() int
	Send(ctx context.Context, to int, env *Envelope) error
	Recv(ctx context.Context, from, tag int) (*Envelope, error)
	Close() error
}

// encodeEnvelope serializes env into a self-contained byte slice.
func encodeEnvelope(env *Envelope) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(env); err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}

	return buf.Bytes(), nil
}

// decodeEnvelope is the inverse of encodeEnvelope.
func decodeEnvelope(data []byte) (*Envelope, error) {
	env := new(Envelope)
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	return env, nil
}
