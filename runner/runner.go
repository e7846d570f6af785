// Package runner executes several search algorithms over one field,
// optionally in parallel, and collects their timed results in input order.
//
// Workers share the field read-only. The first failure cancels the
// remaining searches through their expansion hook, so a long search stops
// at its next expansion rather than running to completion.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rinkpath/ctxlog"
	"github.com/katalvlaran/rinkpath/grid"
	"github.com/katalvlaran/rinkpath/search"
)

// Outcome is the result of one algorithm with its wall-clock duration.
type Outcome struct {
	Result  *search.Result
	Elapsed time.Duration
}

// Option configures Run.
type Option func(*Options)

// Options controls parallelism and diagnostics.
type Options struct {
	// Workers is the maximum number of concurrent searches; values below 1
	// mean sequential execution.
	Workers int
	// Logger overrides the context logger.
	Logger *slog.Logger
}

// DefaultOptions runs sequentially and logs through the context logger.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers sets the worker limit.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Run searches f with every algorithm in algs. Outcomes follow the order of
// algs. Every found path is replayed with search.Validate before it is
// returned. The first error, including cancellation of ctx, aborts the
// batch and is returned annotated with the failing algorithm.
func Run(ctx context.Context, f search.Field, algs []search.Algorithm, opts ...Option) ([]Outcome, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	logger := o.Logger
	if logger == nil {
		logger = ctxlog.FromContext(ctx)
	}

	out := make([]Outcome, len(algs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	logger.Debug("runner started", "algorithms", len(algs), "workers", o.Workers)

	for i, alg := range algs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("runner: %v: %w", alg, err)
			}
			algLogger := logger.With("algorithm", alg.String())
			begin := time.Now()
			res, err := search.Run(f, alg,
				search.WithLogger(algLogger),
				search.WithOnExpand(func(grid.Position, int64) error { return gctx.Err() }),
			)
			if err != nil {
				return fmt.Errorf("runner: %v: %w", alg, err)
			}
			if err := search.Validate(f, res); err != nil {
				return fmt.Errorf("runner: %v: %w", alg, err)
			}
			out[i] = Outcome{Result: res, Elapsed: time.Since(begin)}
			algLogger.Debug("algorithm finished", "found", res.Found, "elapsed", out[i].Elapsed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("runner failed", "error", err)
		return nil, err
	}
	return out, nil
}

// Results extracts the search results from outcomes.
func Results(outcomes []Outcome) []*search.Result {
	out := make([]*search.Result, len(outcomes))
	for i, oc := range outcomes {
		out[i] = oc.Result
	}
	return out
}
