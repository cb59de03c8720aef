// Package simulate provides the suspension point used by every simulated
// backend call. The delay stands in for network latency; cancellation of the
// context discards the call instead of letting it complete.
package simulate

import (
	"context"
	"time"
)

// Sleep suspends for d, or returns the context error if the caller goes away
// first. A non-positive d returns immediately.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
