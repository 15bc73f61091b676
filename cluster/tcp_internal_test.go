// SPDX-License-Identifier: MIT

package cluster

import (
	"context"
	"encoding/gob"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// TestTCPCorruptLinkSurfacesFromClose: a peer that completes the handshake
// and then writes bytes that are not an envelope fails the link, and Close
// reports that failure instead of swallowing it.
func TestTCPCorruptLinkSurfacesFromClose(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ln, err := Listen(ctx, "127.0.0.1:0", 2, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	accepted := make(chan *TCPTransport, 1)
	acceptErr := make(chan error, 1)
	go func() {
		tr, err := ln.Accept(ctx)
		acceptErr <- err
		accepted <- tr
	}()

	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, gob.NewEncoder(conn).Encode(hello{Rank: 1, Size: 2}))
	var w welcome
	require.NoError(t, gob.NewDecoder(conn).Decode(&w))
	require.Empty(t, w.Reject)

	require.NoError(t, <-acceptErr)
	coord := <-accepted

	// A three-byte message announcing a type definition it never finishes.
	_, err = conn.Write([]byte{0x03, 0xff, 0xff, 0xff})
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	_, err = coord.Recv(ctx, 1, 0)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrClosed)

	err = coord.Close()
	require.Error(t, err)
	require.Contains(t, err.Error(), "link to 1")
	require.Equal(t, err, coord.Close())
}

// TestTCPOrderlyHangupClosesClean: a peer that simply hangs up is not a
// link failure.
func TestTCPOrderlyHangupClosesClean(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ln, err := Listen(ctx, "127.0.0.1:0", 2, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	accepted := make(chan *TCPTransport, 1)
	go func() {
		tr, _ := ln.Accept(ctx)
		accepted <- tr
	}()

	w, err := Dial(ctx, ln.Addr().String(), 1, 2)
	require.NoError(t, err)
	coord := <-accepted
	require.NotNil(t, coord)

	require.NoError(t, w.Close())
	_, err = coord.Recv(ctx, 1, 0)
	require.ErrorIs(t, err, ErrClosed)
	require.NoError(t, coord.Close())
}
