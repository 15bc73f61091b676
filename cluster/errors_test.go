// SPDX-License-Identifier: MIT

package cluster_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/strassen/cluster"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
)

func TestCodeOfSentinelRoundTrip(t *testing.T) {
	for _, sentinel := range []error{
		matrix.ErrSizeMismatch,
		matrix.ErrOddOrder,
		matrix.ErrRingMismatch,
		cluster.ErrTopology,
		cluster.ErrInternal,
	} {
		wrapped := fmt.Errorf("Worker.Serve: %w", sentinel)
		code := cluster.CodeOf(wrapped)
		require.NotEqual(t, cluster.CodeNone, code)
		require.ErrorIs(t, code.Sentinel(), sentinel, code.String())
	}

	require.Equal(t, cluster.CodeNone, cluster.CodeOf(nil))
	require.NoError(t, cluster.CodeNone.Sentinel())
	require.Equal(t, cluster.CodeInternal, cluster.CodeOf(errors.New("boom")))
}

func TestEnvelopeErr(t *testing.T) {
	ok := &cluster.Envelope{Kind: cluster.KindResult}
	require.NoError(t, ok.Err())

	failed := &cluster.Envelope{Kind: cluster.KindFailure, From: 3, Tag: 2, Code: cluster.CodeRingMismatch, Message: "Z/17Z vs Z/13Z"}
	require.ErrorIs(t, failed.Err(), matrix.ErrRingMismatch)
	require.Contains(t, failed.Err().Error(), "rank 3 tag 2")

	uncoded := &cluster.Envelope{Kind: cluster.KindFailure}
	require.ErrorIs(t, uncoded.Err(), cluster.ErrInternal)
}
