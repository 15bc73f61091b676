// SPDX-License-Identifier: MIT

package cluster

import (
	"context"
	"fmt"
	"sync"
)

// mailbox buffers incoming envelopes per sender until a matching Recv takes them.
type mailbox struct {
	mu      sync.Mutex
	pending map[int][]*Envelope // by sender, arrival order
	dead    map[int]error       // senders whose link failed
	wake    chan struct{}       // closed and replaced on every state change
	closed  bool
}

func newMailbox() *mailbox {
	return &mailbox{
		pending: make(map[int][]*Envelope),
		dead:    make(map[int]error),
		wake:    make(chan struct{}),
	}
}

// signal wakes every waiter. Caller holds mu.
func (m *mailbox) signal() {
	close(m.wake)
	m.wake = make(chan struct{})
}

func (m *mailbox) put(env *Envelope) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.pending[env.From] = append(m.pending[env.From], env)
	m.signal()

	return nil
}

// fail marks the link from sender as broken; pending envelopes stay takeable.
func (m *mailbox) fail(from int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dead[from]; !ok {
		m.dead[from] = err
		m.signal()
	}
}

func (m *mailbox) close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		m.signal()
	}
}

// take removes and returns the first envelope from `from` tagged `tag`.
func (m *mailbox) take(ctx context.Context, from, tag int) (*Envelope, error) {
	for {
		m.mu.Lock()
		queue := m.pending[from]
		for i, env := range queue {
			if env.Tag == tag {
				m.pending[from] = append(queue[:i:i], queue[i+1:]...)
				m.mu.Unlock()

				return env, nil
			}
		}
		if err, ok := m.dead[from]; ok {
			m.mu.Unlock()
			return nil, fmt.Errorf("recv from %d: %w", from, err)
		}
		if m.closed {
			m.mu.Unlock()
			return nil, ErrClosed
		}
		wake := m.wake
		m.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-wake:
		}
	}
}
