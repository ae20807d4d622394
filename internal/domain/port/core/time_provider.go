package core

import (
	"context"
	"time"
)

// TimeProvider abstracts the clock for the domain
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the latter case
	Sleep(ctx context.Context, d time.Duration) error
}
