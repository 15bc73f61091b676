// SPDX-License-Identifier: MIT

package protocol

import (
	"time"

	"github.com/katalvlaran/strassen/strassen"
	"go.uber.org/zap"
)

// Option configures a Coordinator, a Worker, or RunLocal.
type Option func(*options)

type options struct {
	log            *zap.Logger
	table          strassen.Table
	collectTimeout time.Duration // 0: block until every result arrives
	runID          string        // empty: a fresh uuid per Multiply
	onTransition   func(Transition)
}

func defaultOptions() options {
	return options{
		log:   zap.NewNop(),
		table: strassen.DefaultTable,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the structured logger. nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithTable replaces strassen.DefaultTable. The table is validated by the constructors.
func WithTable(t strassen.Table) Option {
	return func(o *options) { o.table = t }
}

// WithCollectTimeout bounds the Collecting phase. Zero or negative disables the bound.
func WithCollectTimeout(d time.Duration) Option {
	return func(o *options) { o.collectTimeout = d }
}

// WithRunID pins the computation id stamped on every envelope.
func WithRunID(id string) Option {
	return func(o *options) { o.runID = id }
}

// OnTransition registers a hook called after every state change.
// The hook runs on the role's goroutine and must not block.
func OnTransition(fn func(Transition)) Option {
	return func(o *options) { o.onTransition = fn }
}
