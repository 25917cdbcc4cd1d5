// Package effects runs post-commit side effects (notifications, email) in the
// background, detached from the request that triggered them.
package effects

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Runner executes side effects on their own goroutines. Failures and panics
// are logged and never reach the caller.
type Runner struct {
	log     *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewRunner(logger *slog.Logger, timeout time.Duration) *Runner {
	return &Runner{
		log:     logger.With("service", "effects"),
		timeout: timeout,
	}
}

// Go schedules fn. The context handed to fn keeps ctx's values but not its
// cancellation, and is bounded by the runner's timeout.
func (r *Runner) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		effectCtx := context.WithoutCancel(ctx)
		if r.timeout > 0 {
			var cancel context.CancelFunc
			effectCtx, cancel = context.WithTimeout(effectCtx, r.timeout)
			defer cancel()
		}

		if err := r.run(effectCtx, fn); err != nil {
			r.log.ErrorContext(effectCtx, "side effect failed",
				slog.String("effect", name),
				slog.String("error", err.Error()),
			)
		}
	}()
}

func (r *Runner) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return fn(ctx)
}

// Wait blocks until every scheduled effect finished or ctx is done.
func (r *Runner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
