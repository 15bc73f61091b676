// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/strassen/cluster"
	"github.com/katalvlaran/strassen/protocol"
	"github.com/katalvlaran/strassen/strassen"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// dialRetry is the pause between attempts while the coordinator is not up yet.
const dialRetry = 100 * time.Millisecond

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
}

func newSeqCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "seq",
		Short:   "Multiply sequentially in this process",
		Example: "  strassen seq --order 64 --modulus 1000000007 --verify",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			x, y, err := a.operands()
			if err != nil {
				return err
			}
			started := time.Now()
			product, err := strassen.MultiplySeq(x, y, a.ring())
			if err != nil {
				return err
			}

			return a.report(cmd.OutOrStdout(), x, y, product, time.Since(started))
		},
	}
}

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Multiply on an in-process group of one coordinator and six workers",
		Example: "  strassen run --order 4 --modulus 13 --print --verify",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signalContext(cmd)
			defer cancel()

			x, y, err := a.operands()
			if err != nil {
				return err
			}
			started := time.Now()
			product, err := protocol.RunLocal(ctx, x, y,
				protocol.WithLogger(a.log),
				protocol.WithCollectTimeout(a.cfg.Protocol.CollectTimeout),
			)
			if err != nil {
				return err
			}

			return a.report(cmd.OutOrStdout(), x, y, product, time.Since(started))
		},
	}
	cmd.Flags().Duration("collect-timeout", 0, "bound on waiting for worker results (0 waits forever)")

	return cmd
}

func newCoordinatorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coordinator",
		Short: "Run rank 0 of a TCP group: wait for six workers, then multiply",
		Example: `  strassen coordinator --address :7070 --order 256 --verify
  strassen worker --address host:7070 --rank 1   # ... through --rank 6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signalContext(cmd)
			defer cancel()

			ln, err := cluster.Listen(ctx, a.cfg.Cluster.Address, a.cfg.Cluster.Size, cluster.WithLogger(a.log))
			if err != nil {
				return err
			}
			a.log.Info("waiting for workers",
				zap.String("address", ln.Addr().String()),
				zap.Int("size", a.cfg.Cluster.Size),
			)
			tr, err := ln.Accept(ctx)
			if err != nil {
				return err
			}
			defer closeTransport(a.log, tr)

			coord, err := protocol.NewCoordinator(tr, a.ring(),
				protocol.WithLogger(a.log),
				protocol.WithCollectTimeout(a.cfg.Protocol.CollectTimeout),
			)
			if err != nil {
				return err
			}
			x, y, err := a.operands()
			if err != nil {
				return err
			}
			started := time.Now()
			product, err := coord.Multiply(ctx, x, y)
			if err != nil {
				return err
			}

			return a.report(cmd.OutOrStdout(), x, y, product, time.Since(started))
		},
	}
	cmd.Flags().String("address", "", "listen address (overrides cluster.address)")
	cmd.Flags().Duration("collect-timeout", 0, "bound on waiting for worker results (0 waits forever)")

	return cmd
}

func newWorkerCmd(a *app) *cobra.Command {
	var rank int
	cmd := &cobra.Command{
		Use:     "worker",
		Short:   "Run one worker of a TCP group",
		Example: "  strassen worker --address coordinator:7070 --rank 3",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signalContext(cmd)
			defer cancel()

			tr, err := dialCoordinator(ctx, a, rank)
			if err != nil {
				return err
			}
			defer closeTransport(a.log, tr)

			w, err := protocol.NewWorker(tr, a.ring(), protocol.WithLogger(a.log))
			if err != nil {
				return err
			}
			if err = w.Serve(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "worker %d done\n", rank)

			return nil
		},
	}
	cmd.Flags().IntVar(&rank, "rank", 1, "worker rank, 1..size-1")
	cmd.Flags().String("address", "", "coordinator address (overrides cluster.address)")

	return cmd
}

// closeTransport shuts tr and logs a link failure its readers reported.
func closeTransport(log *zap.Logger, tr *cluster.TCPTransport) {
	if err := tr.Close(); err != nil {
		log.Warn("transport closed with error", zap.Int("rank", tr.Rank()), zap.Error(err))
	}
}

// dialCoordinator retries until the coordinator accepts, rejects the rank,
// or cluster.dial_timeout elapses.
func dialCoordinator(ctx context.Context, a *app, rank int) (*cluster.TCPTransport, error) {
	if a.cfg.Cluster.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Cluster.DialTimeout)
		defer cancel()
	}
	for {
		tr, err := cluster.Dial(ctx, a.cfg.Cluster.Address, rank, a.cfg.Cluster.Size, cluster.WithLogger(a.log))
		if err == nil {
			return tr, nil
		}
		if errors.Is(err, cluster.ErrTopology) || ctx.Err() != nil {
			return nil, err
		}
		a.log.Debug("coordinator not reachable yet", zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("dial %s: %w", a.cfg.Cluster.Address, ctx.Err())
		case <-time.After(dialRetry):
		}
	}
}
