package llmnr

import (
	"context"
	"time"
)

// sleep sleeps for a duration of d, or until ctx is canceled.
// It returns nil if the sleep duration passes before ctx is canceled.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
