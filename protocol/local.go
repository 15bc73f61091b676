// SPDX-License-Identifier: MIT

package protocol

import (
	"context"
	"fmt"

	"github.com/katalvlaran/strassen/cluster"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
	"golang.org/x/sync/errgroup"
)

// RunLocal multiplies a × b on an in-process group of strassen.GroupSize
// members: six worker goroutines and the coordinator on the caller's
// goroutine, all over a's ring.
//
// The coordinator's error wins; once it fails the group is closed so that
// workers still waiting for operands return.
func RunLocal(ctx context.Context, a, b *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("RunLocal: %w", err)
	}
	r := a.Ring()

	group, err := cluster.NewLocalNetwork(strassen.GroupSize)
	if err != nil {
		return nil, fmt.Errorf("RunLocal: %w", err)
	}
	defer group.Close()

	root, err := group.Endpoint(strassen.CoordinatorRank)
	if err != nil {
		return nil, fmt.Errorf("RunLocal: %w", err)
	}
	coord, err := NewCoordinator(root, r, opts...)
	if err != nil {
		return nil, fmt.Errorf("RunLocal: %w", err)
	}

	var g errgroup.Group
	for rank := 1; rank < strassen.GroupSize; rank++ {
		ep, err := group.Endpoint(rank)
		if err != nil {
			return nil, fmt.Errorf("RunLocal: %w", err)
		}
		w, err := NewWorker(ep, r, opts...)
		if err != nil {
			return nil, fmt.Errorf("RunLocal: %w", err)
		}
		g.Go(func() error { return w.Serve(ctx) })
	}

	out, cerr := coord.Multiply(ctx, a, b)
	if cerr != nil {
		_ = group.Close()
	}
	werr := g.Wait()
	if cerr != nil {
		return nil, fmt.Errorf("RunLocal: %w", cerr)
	}
	if werr != nil {
		return nil, fmt.Errorf("RunLocal: %w", werr)
	}

	return out, nil
}
