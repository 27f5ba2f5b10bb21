// Package timing provides the delay and race primitives used around
// blocking work: a cancellable sleep and a first-to-finish race with a
// deadline.
package timing

import (
	"context"
	"errors"
	"time"
)

// ErrDeadline is returned by Race when the deadline elapses before any
// operation completes.
var ErrDeadline = errors.New("timing: deadline elapsed")

// Sleep waits for d, returning early with the context error if ctx is done
// first.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Race runs the operations concurrently and resolves with whichever
// completes first; the rest are cancelled. If deadline elapses before any
// operation finishes, Race fails with ErrDeadline. A deadline of zero or
// less means no deadline.
func Race(ctx context.Context, deadline time.Duration, ops ...func(context.Context) error) error {
	raceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan error, len(ops))
	for _, op := range ops {
		op := op
		go func() {
			results <- op(raceCtx)
		}()
	}

	var expired <-chan time.Time
	if deadline > 0 {
		timer := time.NewTimer(deadline)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case err := <-results:
		return err
	case <-expired:
		return ErrDeadline
	case <-ctx.Done():
		return ctx.Err()
	}
}
