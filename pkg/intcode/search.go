package intcode

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SearchOptions configures Search.
type SearchOptions struct {
	// Max is the largest noun and verb tried (inclusive). Default 99.
	Max int
	// Workers limits concurrent nouns. Default 8.
	Workers int
	// MaxSteps bounds each candidate run. 0 = unlimited.
	MaxSteps int
	Logger   *zap.Logger
}

func (o *SearchOptions) defaults() {
	if o.Max <= 0 {
		o.Max = 99
	}
	if o.Workers <= 0 {
		o.Workers = 8
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// errFound stops the group once a match is recorded.
var errFound = errors.New("found")

// Search finds noun and verb such that running tape with Patch{1: noun, 2: verb}
// leaves target at address 0. Candidates that fault are skipped. The first
// match cancels the remaining nouns, so with several solutions any one of
// them may be returned.
func Search(ctx context.Context, tape Tape, target int, opts SearchOptions) (noun, verb int, err error) {
	opts.defaults()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	var (
		mu    sync.Mutex
		found bool
		best  [2]int
	)
	better := func(n, v int) bool {
		return !found || n < best[0] || (n == best[0] && v < best[1])
	}

	for n := 0; n <= opts.Max; n++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			for v := 0; v <= opts.Max; v++ {
				if err := gctx.Err(); err != nil {
					return nil
				}
				vm := New(tape.Clone(), WithMaxSteps(opts.MaxSteps))
				if err := vm.Patch(Patch{1: n, 2: v}); err != nil {
					return err
				}
				if err := vm.RunContext(gctx); err != nil {
					if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
						return nil
					}
					opts.Logger.Debug("candidate faulted", zap.Int("noun", n), zap.Int("verb", v), zap.Error(err))
					continue
				}
				if vm.Result() != target {
					continue
				}
				mu.Lock()
				// two nouns can match before cancellation lands
				if better(n, v) {
					found = true
					best = [2]int{n, v}
				}
				mu.Unlock()
				return errFound
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, errFound) {
		return 0, 0, err
	}
	if err := ctx.Err(); err != nil && !found {
		return 0, 0, err
	}
	if !found {
		return 0, 0, ErrNoSolution
	}
	opts.Logger.Info("search solved", zap.Int("noun", best[0]), zap.Int("verb", best[1]))
	return best[0], best[1], nil
}
