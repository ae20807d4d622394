package resilience

import (
	"errors"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
)

// ErrOpenCircuit is returned while a breaker refuses calls
var ErrOpenCircuit = errors.New("resilience: circuit breaker open")

// circuit values double as the webpay_breaker_state gauge value
type circuit uint8

const (
	circuitClosed circuit = iota
	circuitOpen
	circuitHalfOpen
)

var circuitNames = [...]string{"closed", "open", "half_open"}

func (c circuit) String() string { return circuitNames[c] }

// BreakerSettings configures a Breaker. Zero values fall back to defaults.
type BreakerSettings struct {
	Target       string
	MinRequests  int
	FailureRatio float64
	Cooldown     time.Duration
}

// Breaker stops calls to one dependency once failed calls reach FailureRatio
// of a window of at least MinRequests. After Cooldown a single trial call is
// let through and its result closes or reopens the circuit.
type Breaker struct {
	settings BreakerSettings
	logger   coreport.Logger

	mu       sync.Mutex
	circuit  circuit
	ok, bad  int
	openedAt time.Time
}

// NewBreaker creates a closed breaker
func NewBreaker(settings BreakerSettings, logger coreport.Logger) *Breaker {
	if settings.Target == "" {
		settings.Target = "default"
	}
	settings.MinRequests = max(settings.MinRequests, 1)
	if settings.FailureRatio <= 0 {
		settings.FailureRatio = 0.5
	}
	settings.FailureRatio = min(settings.FailureRatio, 1)
	if settings.Cooldown <= 0 {
		settings.Cooldown = 30 * time.Second
	}

	BreakerState.WithLabelValues(settings.Target).Set(float64(circuitClosed))
	return &Breaker{settings: settings, logger: logger}
}

// Allow reports whether a call may go out. A nil breaker allows everything.
func (b *Breaker) Allow() bool {
	if b == nil {
		return true
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.circuit {
	case circuitClosed:
		return true
	case circuitOpen:
		if time.Since(b.openedAt) < b.settings.Cooldown {
			return false
		}
		b.moveTo(circuitHalfOpen)
		return true
	default:
		// the trial call is still in flight
		return false
	}
}

// Record feeds the result of an allowed call back into the breaker
func (b *Breaker) Record(success bool) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.circuit {
	case circuitOpen:
		return
	case circuitHalfOpen:
		if success {
			b.moveTo(circuitClosed)
		} else {
			b.moveTo(circuitOpen)
		}
		return
	}

	if success {
		b.ok++
	} else {
		b.bad++
	}
	total := b.ok + b.bad
	switch {
	case total < b.settings.MinRequests:
	case float64(b.bad) >= b.settings.FailureRatio*float64(total):
		b.moveTo(circuitOpen)
	case total >= 2*b.settings.MinRequests:
		b.ok, b.bad = 0, 0
	}
}

func (b *Breaker) moveTo(next circuit) {
	prev := b.circuit
	b.circuit, b.ok, b.bad = next, 0, 0
	if next == circuitOpen {
		b.openedAt = time.Now()
	}

	target := b.settings.Target
	BreakerState.WithLabelValues(target).Set(float64(next))
	BreakerTransitions.WithLabelValues(target, prev.String(), next.String()).Inc()

	fields := map[string]any{
		"target":     target,
		"from_state": prev.String(),
		"to_state":   next.String(),
	}
	if next == circuitOpen {
		BreakerOpenedTotal.WithLabelValues(target).Inc()
		b.logger.Warn("Circuit breaker opened", fields)
		return
	}
	b.logger.Info("Circuit breaker state changed", fields)
}
