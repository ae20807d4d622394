package reconciliation

import (
	"context"
	"sync"

	errs "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
)

// DeliveryFunc reconciles one callback delivery
type DeliveryFunc func(ctx context.Context) error

// lane serializes deliveries that share a lookup key
type lane struct {
	sem  chan struct{}
	refs int
}

// DeliverySequencer runs deliveries for the same token or buy order one at a
// time inside this process. Cross-process races are settled by the
// optimistic version check on save.
type DeliverySequencer struct {
	logger coreport.Logger

	mu       sync.Mutex
	lanes    map[string]*lane
	inFlight sync.WaitGroup
	closed   bool
}

// NewDeliverySequencer creates a new delivery sequencer
func NewDeliverySequencer(logger coreport.Logger) *DeliverySequencer {
	return &DeliverySequencer{
		logger: logger,
		lanes:  make(map[string]*lane),
	}
}

// Run waits for the lane of key and then executes fn. Waiting stops when ctx is done.
func (s *DeliverySequencer) Run(ctx context.Context, key string, fn DeliveryFunc) error {
	l, err := s.acquireLane(key)
	if err != nil {
		return err
	}
	defer s.releaseLane(key, l)

	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		s.logger.Warn("Context canceled while waiting for delivery lane", map[string]any{
			"key":   key,
			"error": ctx.Err().Error(),
		})
		return ctx.Err()
	}
	defer func() { <-l.sem }()

	return fn(ctx)
}

func (s *DeliverySequencer) acquireLane(key string) (*lane, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errs.ErrInternalServer
	}

	l, ok := s.lanes[key]
	if !ok {
		l = &lane{sem: make(chan struct{}, 1)}
		s.lanes[key] = l
	} else {
		s.logger.Debug("Delivery queued behind in-flight delivery", map[string]any{
			"key": key,
		})
	}
	l.refs++
	s.inFlight.Add(1)
	return l, nil
}

func (s *DeliverySequencer) releaseLane(key string, l *lane) {
	s.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(s.lanes, key)
	}
	s.mu.Unlock()
	s.inFlight.Done()
}

// Pending returns the number of keys with queued or running deliveries
func (s *DeliverySequencer) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lanes)
}

// Shutdown rejects new deliveries and waits for in-flight ones to finish
func (s *DeliverySequencer) Shutdown() {
	s.logger.Info("Shutting down delivery sequencer", nil)

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.inFlight.Wait()
	s.logger.Info("Delivery sequencer shut down successfully", nil)
}
