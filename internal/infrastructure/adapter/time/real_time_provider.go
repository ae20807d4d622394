package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
)

var _ core.TimeProvider = (*RealTimeProvider)(nil)

// RealTimeProvider reads the wall clock. Tests substitute MockTimeProvider.
type RealTimeProvider struct{}

// NewRealTimeProvider returns the wall clock provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

func (p *RealTimeProvider) Now() time.Time { return time.Now() }

func (p *RealTimeProvider) Since(t time.Time) time.Duration { return time.Since(t) }

// Sleep blocks for d. It returns ctx.Err() if ctx ends first, so retry loops
// stop as soon as the callback request is abandoned.
func (p *RealTimeProvider) Sleep(ctx context.Context, d time.Duration) error {
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
