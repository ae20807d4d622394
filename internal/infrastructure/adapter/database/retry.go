package database

import (
	"context"
	"math/rand/v2"
	"time"

	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
)

// RetryConfig controls how often a store operation is attempted
type RetryConfig struct {
	// MaxRetries is the total number of attempts, including the first one
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// RetryOnTransientError runs fn until it succeeds, returns an error the mapper
// does not consider retryable, or the attempts run out. The last error is
// returned unmapped.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation string,
	fn func() error,
	errorMapper *ErrorMapper,
	logger coreport.Logger,
) error {
	attempts := max(config.MaxRetries, 1)

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if !errorMapper.Retryable(err) || attempt == attempts {
			break
		}

		backoff := config.backoff(attempt)
		logger.Warn("Transient database error, retrying", map[string]any{
			"operation":   operation,
			"attempt":     attempt,
			"max_retries": attempts,
			"retry_after": backoff.String(),
			"error":       err.Error(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}

	if errorMapper.Retryable(err) {
		logger.Error("All retry attempts failed", map[string]any{
			"operation": operation,
			"attempts":  attempts,
			"error":     err.Error(),
		})
	}
	return err
}

// backoff doubles the interval per attempt up to MaxInterval and adds up to
// JitterFactor of random extra delay
func (c RetryConfig) backoff(attempt int) time.Duration {
	d := c.RetryInterval << (attempt - 1)
	if d <= 0 || (c.MaxInterval > 0 && d > c.MaxInterval) {
		d = c.MaxInterval
	}
	if c.JitterFactor > 0 && d > 0 {
		d += time.Duration(rand.Float64() * c.JitterFactor * float64(d))
	}
	return d
}
