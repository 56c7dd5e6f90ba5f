package usecase

import (
	"context"
	"time"
)

// Clock paces the tick loop with real time.
type Clock struct{}

// Sleep - waits for d or until ctx is done.
func (Clock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
