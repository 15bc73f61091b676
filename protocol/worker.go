// SPDX-License-Identifier: MIT

package protocol

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/strassen/cluster"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/ring"
	"github.com/katalvlaran/strassen/strassen"
	"go.uber.org/zap"
)

// Worker computes the single product its rank is assigned.
type Worker struct {
	tr   cluster.Transport
	r    ring.Ring
	opts options
	log  *zap.Logger

	mu    sync.Mutex
	state WorkerState
}

// NewWorker binds a worker to tr. The worker's ring is the one it expects
// its operands to be over.
// Errors: cluster.ErrTopology for rank 0, strassen.ErrBadTable, ring.ErrBadModulus.
func NewWorker(tr cluster.Transport, r ring.Ring, opts ...Option) (*Worker, error) {
	if tr == nil || tr.Rank() == strassen.CoordinatorRank {
		return nil, fmt.Errorf("NewWorker: transport must not be the coordinator: %w", cluster.ErrTopology)
	}
	if !r.Valid() {
		return nil, fmt.Errorf("NewWorker: %w", ring.ErrBadModulus)
	}
	o := buildOptions(opts)
	if err := o.table.Validate(); err != nil {
		return nil, fmt.Errorf("NewWorker: %w", err)
	}

	return &Worker{tr: tr, r: r, opts: o, log: o.log.With(zap.Int("rank", tr.Rank()))}, nil
}

// State returns the current phase.
func (w *Worker) State() WorkerState {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

func (w *Worker) enter(next WorkerState) {
	w.mu.Lock()
	prev := w.state
	w.state = next
	w.mu.Unlock()

	w.log.Debug("worker transition", zap.Stringer("from", prev), zap.Stringer("to", next))
	if w.opts.onTransition != nil {
		w.opts.onTransition(Transition{Rank: w.tr.Rank(), From: prev.String(), To: next.String()})
	}
}

// Serve waits for the worker's operands, multiplies them and reports the
// product to the coordinator. A failure after the operands arrived is
// reported to the coordinator before Serve returns it.
//
// Errors: cluster.ErrTopology (wrong group size or no task for this rank),
// matrix.ErrRingMismatch / ErrSizeMismatch / ErrOddOrder for bad operands,
// transport and context errors.
func (w *Worker) Serve(ctx context.Context) error {
	if err := w.serve(ctx); err != nil {
		w.enter(WorkerFailed)
		w.log.Error("worker failed", zap.Error(err))

		return err
	}
	w.enter(WorkerDone)

	return nil
}

func (w *Worker) serve(ctx context.Context) error {
	if size := w.tr.Size(); size != strassen.GroupSize {
		return fmt.Errorf("Worker.Serve: group size %d, need %d: %w", size, strassen.GroupSize, cluster.ErrTopology)
	}
	task, ok := w.opts.table.ForRank(w.tr.Rank())
	if !ok {
		return fmt.Errorf("Worker.Serve: no task for rank %d: %w", w.tr.Rank(), cluster.ErrTopology)
	}

	// Waiting
	w.enter(Waiting)
	env, err := w.tr.Recv(ctx, strassen.CoordinatorRank, task.Index)
	if err != nil {
		return fmt.Errorf("Worker.Serve: %w", err)
	}
	log := w.log.With(zap.String("run", env.Run), zap.Int("product", task.Index))

	// Computing
	w.enter(Computing)
	product, cerr := w.compute(env)

	// Reporting
	w.enter(Reporting)
	reply := &cluster.Envelope{Run: env.Run, Tag: task.Index}
	if cerr != nil {
		reply.Kind = cluster.KindFailure
		reply.Code = cluster.CodeOf(cerr)
		reply.Message = cerr.Error()
	} else {
		reply.Kind = cluster.KindResult
		reply.Result = product
	}
	if err = w.tr.Send(ctx, strassen.CoordinatorRank, reply); err != nil {
		return fmt.Errorf("Worker.Serve: report: %w", errors.Join(err, cerr))
	}
	if cerr != nil {
		return fmt.Errorf("Worker.Serve: %w", cerr)
	}
	log.Debug("reported product", zap.Int("order", product.Order()))

	return nil
}

// compute validates the operand envelope and runs the sequential engine.
// Ring mismatches are caught here, at receive time, before any arithmetic.
func (w *Worker) compute(env *cluster.Envelope) (*matrix.Dense, error) {
	if env.Kind != cluster.KindOperands {
		return nil, fmt.Errorf("%s envelope: %w", env.Kind, ErrUnexpectedEnvelope)
	}
	if err := matrix.ValidateBinary(env.Left, env.Right); err != nil {
		return nil, err
	}
	if err := w.r.Check(env.Left.Ring()); err != nil {
		return nil, err
	}

	return strassen.MultiplySeq(env.Left, env.Right, w.r)
}
