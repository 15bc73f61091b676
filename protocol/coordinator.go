// SPDX-License-Identifier: MIT

package protocol

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/strassen/cluster"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/ring"
	"github.com/katalvlaran/strassen/strassen"
	"go.uber.org/zap"
)

// Coordinator drives one distributed multiplication from rank 0.
type Coordinator struct {
	tr   cluster.Transport
	r    ring.Ring
	opts options

	mu    sync.Mutex
	state CoordinatorState
}

// NewCoordinator binds a coordinator to tr, the rank-0 member of the group.
// Errors: cluster.ErrTopology when tr is not rank 0, strassen.ErrBadTable,
// ring.ErrBadModulus for a zero Ring.
func NewCoordinator(tr cluster.Transport, r ring.Ring, opts ...Option) (*Coordinator, error) {
	if tr == nil || tr.Rank() != strassen.CoordinatorRank {
		return nil, fmt.Errorf("NewCoordinator: transport is not rank %d: %w", strassen.CoordinatorRank, cluster.ErrTopology)
	}
	if !r.Valid() {
		return nil, fmt.Errorf("NewCoordinator: %w", ring.ErrBadModulus)
	}
	o := buildOptions(opts)
	if err := o.table.Validate(); err != nil {
		return nil, fmt.Errorf("NewCoordinator: %w", err)
	}

	return &Coordinator{tr: tr, r: r, opts: o}, nil
}

// State returns the current phase.
func (c *Coordinator) State() CoordinatorState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

func (c *Coordinator) enter(next CoordinatorState, log *zap.Logger) {
	c.mu.Lock()
	prev := c.state
	c.state = next
	c.mu.Unlock()

	log.Debug("coordinator transition", zap.Stringer("from", prev), zap.Stringer("to", next))
	if c.opts.onTransition != nil {
		c.opts.onTransition(Transition{Rank: c.tr.Rank(), From: prev.String(), To: next.String()})
	}
}

// Multiply computes a × b over the coordinator's ring using the whole group.
//
// Implementation:
//   - Splitting: group size must be strassen.GroupSize; operands must be over
//     the coordinator's ring, of equal order, a power of two ≥ 2.
//   - Dispatching: one KindOperands envelope per remote task, tagged with the
//     product index. No acknowledgement is awaited.
//   - LocalCompute: the coordinator's own product via strassen.MultiplySeq.
//   - Collecting: one matched receive per worker, in ascending rank.
//   - Combining: strassen.Combine.
//
// Errors:
//   - cluster.ErrTopology before anything is sent.
//   - matrix.ErrNilMatrix, ErrRingMismatch, ErrSizeMismatch, ErrOddOrder.
//   - *RemoteError for a worker failure; ErrCollectTimeout; transport errors.
func (c *Coordinator) Multiply(ctx context.Context, a, b *matrix.Dense) (*matrix.Dense, error) {
	run := c.opts.runID
	if run == "" {
		run = uuid.NewString()
	}
	log := c.opts.log.With(zap.String("run", run))
	started := time.Now()

	out, err := c.multiply(ctx, run, a, b, log)
	if err != nil {
		c.enter(CoordinatorFailed, log)
		log.Error("multiplication failed", zap.Error(err))

		return nil, err
	}
	c.enter(CoordinatorDone, log)
	log.Info("multiplication done",
		zap.Int("order", out.Order()),
		zap.Stringer("ring", c.r),
		zap.Duration("elapsed", time.Since(started)),
	)

	return out, nil
}

func (c *Coordinator) multiply(ctx context.Context, run string, a, b *matrix.Dense, log *zap.Logger) (*matrix.Dense, error) {
	table := c.opts.table

	// Splitting
	c.enter(Splitting, log)
	if size := c.tr.Size(); size != strassen.GroupSize {
		return nil, fmt.Errorf("Multiply: group size %d, need %d: %w", size, strassen.GroupSize, cluster.ErrTopology)
	}
	if err := c.validate(a, b); err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}
	aq, err := matrix.Split(a)
	if err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}
	bq, err := matrix.Split(b)
	if err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}

	// Dispatching
	c.enter(Dispatching, log)
	remote := table.Remote()
	for _, task := range remote {
		left, right, err := task.Operands(aq, bq)
		if err != nil {
			return nil, fmt.Errorf("Multiply: %w", err)
		}
		env := &cluster.Envelope{Run: run, Tag: task.Index, Kind: cluster.KindOperands, Left: left, Right: right}
		if err = c.tr.Send(ctx, task.Rank, env); err != nil {
			return nil, fmt.Errorf("Multiply: dispatch product %d: %w", task.Index, err)
		}
		log.Debug("dispatched", zap.Int("product", task.Index), zap.Int("rank", task.Rank))
	}

	// LocalCompute
	c.enter(LocalCompute, log)
	var products [strassen.Products]*matrix.Dense
	local := table.Local()
	left, right, err := local.Operands(aq, bq)
	if err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}
	if products[local.Index], err = strassen.MultiplySeq(left, right, c.r); err != nil {
		return nil, fmt.Errorf("Multiply: local product %d: %w", local.Index, err)
	}

	// Collecting
	c.enter(Collecting, log)
	cctx := ctx
	if c.opts.collectTimeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, c.opts.collectTimeout)
		defer cancel()
	}
	half := a.Order() / 2
	for _, task := range remote {
		res, err := c.collect(cctx, run, task, half, log)
		if err != nil {
			if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
				err = fmt.Errorf("%w: %w", ErrCollectTimeout, err)
			}
			return nil, fmt.Errorf("Multiply: collect product %d from rank %d: %w", task.Index, task.Rank, err)
		}
		products[task.Index] = res
	}

	// Combining
	c.enter(Combining, log)
	out, err := strassen.Combine(products)
	if err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}

	return out, nil
}

// validate checks the operands against the coordinator's ring and the
// decomposition's shape requirements.
func (c *Coordinator) validate(a, b *matrix.Dense) error {
	if err := matrix.ValidateBinary(a, b); err != nil {
		return err
	}
	if err := c.r.Check(a.Ring()); err != nil {
		return err
	}
	if err := matrix.ValidatePowerOfTwo(a); err != nil {
		return err
	}

	return matrix.ValidateEvenOrder(a) // rules out order 1
}

// collect receives the result of task, skipping envelopes from other runs.
func (c *Coordinator) collect(ctx context.Context, run string, task strassen.Task, half int, log *zap.Logger) (*matrix.Dense, error) {
	for {
		env, err := c.tr.Recv(ctx, task.Rank, task.Index)
		if err != nil {
			return nil, err
		}
		if env.Run != run {
			log.Warn("discarding envelope from another run",
				zap.String("stale", env.Run),
				zap.Int("rank", env.From),
				zap.Int("product", env.Tag),
			)
			continue
		}

		switch env.Kind {
		case cluster.KindFailure:
			return nil, remoteErrorFrom(env)
		case cluster.KindResult:
		default:
			return nil, fmt.Errorf("%s envelope: %w", env.Kind, ErrUnexpectedEnvelope)
		}
		if env.Result == nil {
			return nil, fmt.Errorf("result without payload: %w", ErrUnexpectedEnvelope)
		}
		if err = c.r.Check(env.Result.Ring()); err != nil {
			return nil, err
		}
		if env.Result.Order() != half {
			return nil, fmt.Errorf("result order %d, want %d: %w", env.Result.Order(), half, matrix.ErrSizeMismatch)
		}
		log.Debug("collected", zap.Int("product", task.Index), zap.Int("rank", task.Rank))

		return env.Result, nil
	}
}
