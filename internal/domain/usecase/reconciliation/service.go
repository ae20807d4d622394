package reconciliation

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/commerce"
	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/presenter"
)

// Config holds the switches of the callback service
type Config struct {
	// ModuleActive disables callback processing entirely when false
	ModuleActive bool
	// SerializeDeliveries runs deliveries for the same key one at a time
	SerializeDeliveries bool
	// StatusAfterPayment is the order state requested on fulfillment
	StatusAfterPayment string
}

// Service is the callback entry point. It ties together the engine, the
// delivery sequencer and the outcome presenter.
type Service struct {
	engine    *Engine
	sequencer *DeliverySequencer
	config    Config
	logger    coreport.Logger
	metrics   coreport.MetricsRecorder
}

// NewService creates a new reconciliation service
func NewService(
	transactionRepo persistence.TransactionRepository,
	gw gateway.PaymentGateway,
	store commerce.Store,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.MetricsRecorder,
	config Config,
) *Service {
	return &Service{
		engine:    NewEngine(transactionRepo, gw, store, timeProvider, logger, metrics, config.StatusAfterPayment),
		sequencer: NewDeliverySequencer(logger),
		config:    config,
		logger:    logger,
		metrics:   metrics,
	}
}

// HandleCallback reconciles one delivery and presents the outcome.
// The presenter is always called exactly once.
func (s *Service) HandleCallback(
	ctx context.Context,
	payload entity.CallbackPayload,
	p presenter.OutcomePresenter,
) (*entity.Outcome, error) {
	flow := entity.ClassifyFlow(payload)
	key, _, _ := payload.LookupKey(flow)
	log := s.logger.With(map[string]any{
		"flow": flow.String(),
		"key":  key,
	})

	if !s.config.ModuleActive {
		log.Warn("Callback received while payment module is inactive", nil)
		p.PresentError(ctx, MessageException, nil)
		return nil, errs.ErrModuleInactive
	}

	log.Info("Processing payment callback", nil)

	var outcome *entity.Outcome
	run := func(ctx context.Context) error {
		var err error
		outcome, err = s.engine.Reconcile(ctx, payload)
		return err
	}

	var err error
	if s.config.SerializeDeliveries && key != "" {
		err = s.sequencer.Run(ctx, key, run)
	} else {
		err = run(ctx)
	}

	if err != nil {
		fields := errs.FieldsOf(err)
		fields["flow"] = flow.String()
		fields["key"] = key
		log.Error("Payment callback failed", fields)
		s.metrics.RecordOutcome(flow.String(), "EXCEPTION", false)
		p.PresentError(ctx, MessageException, nil)
		return nil, fmt.Errorf("callback %s: %w", flow, err)
	}

	s.metrics.RecordOutcome(flow.String(), string(outcome.Status), outcome.Replayed)
	log.Info("Payment callback processed", map[string]any{
		"status":   string(outcome.Status),
		"replayed": outcome.Replayed,
	})

	if outcome.IsSuccess() {
		p.PresentSuccess(ctx, outcome.Cart)
	} else {
		p.PresentError(ctx, outcome.Message, outcome.ResponseCode)
	}
	return outcome, nil
}

// Shutdown waits for in-flight deliveries
func (s *Service) Shutdown() {
	s.sequencer.Shutdown()
}
