// SPDX-License-Identifier: MIT

package cluster

import (
	"context"
	"fmt"
	"sync/atomic"
)

// LocalNetwork is an in-memory process group of fixed size.
type LocalNetwork struct {
	boxes     []*mailbox
	endpoints []*localEndpoint
}

// NewLocalNetwork creates a group of size participants with ranks 0..size-1.
// Errors: ErrTopology when size < 1.
func NewLocalNetwork(size int) (*LocalNetwork, error) {
	if size < 1 {
		return nil, fmt.Errorf("NewLocalNetwork(%d): %w", size, ErrTopology)
	}
	n := &LocalNetwork{
		boxes:     make([]*mailbox, size),
		endpoints: make([]*localEndpoint, size),
	}
	for rank := range n.boxes {
		n.boxes[rank] = newMailbox()
		n.endpoints[rank] = &localEndpoint{net: n, rank: rank}
	}

	return n, nil
}

// Size returns the number of participants.
func (n *LocalNetwork) Size() int { return len(n.boxes) }

// Endpoint returns the transport of the participant with the given rank.
func (n *LocalNetwork) Endpoint(rank int) (Transport, error) {
	if rank < 0 || rank >= len(n.endpoints) {
		return nil, fmt.Errorf("Endpoint(%d): %w", rank, ErrUnknownPeer)
	}

	return n.endpoints[rank], nil
}

// Close closes every endpoint; blocked receives return ErrClosed.
func (n *LocalNetwork) Close() error {
	for _, ep := range n.endpoints {
		_ = ep.Close()
	}

	return nil
}

type localEndpoint struct {
	net    *LocalNetwork
	rank   int
	closed atomic.Bool
}

func (e *localEndpoint) Rank() int { return e.rank }
func (e *localEndpoint) Size() int { return len(e.net.boxes) }

// Send copies env through its wire form into the receiver's mailbox.
func (e *localEndpoint) Send(ctx context.Context, to int, env *Envelope) error {
	if e.closed.Load() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if to < 0 || to >= len(e.net.boxes) {
		return fmt.Errorf("send to %d: %w", to, ErrUnknownPeer)
	}

	stamped := *env
	stamped.From = e.rank
	data, err := encodeEnvelope(&stamped)
	if err != nil {
		return fmt.Errorf("send to %d: %w", to, err)
	}
	cp, err := decodeEnvelope(data)
	if err != nil {
		return fmt.Errorf("send to %d: %w", to, err)
	}
	if err = e.net.boxes[to].put(cp); err != nil {
		return fmt.Errorf("send to %d: %w", to, err)
	}

	return nil
}

func (e *localEndpoint) Recv(ctx context.Context, from, tag int) (*Envelope, error) {
	if from < 0 || from >= len(e.net.boxes) {
		return nil, fmt.Errorf("recv from %d: %w", from, ErrUnknownPeer)
	}

	return e.net.boxes[e.rank].take(ctx, from, tag)
}

func (e *localEndpoint) Close() error {
	if e.closed.CompareAndSwap(false, true) {
		e.net.boxes[e.rank].close()
	}

	return nil
}
