// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// WaitOrSignal waits for the duration, returning early without error when signal fires and
// with the context error when ctx is canceled. A nil signal never fires.
func WaitOrSignal(ctx context.Context, d time.Duration, signal <-chan struct{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-signal:
		return nil
	case <-timer.C:
		return nil
	}
}
