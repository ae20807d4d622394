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
)

// Engine turns a classified callback into a persisted terminal status and an outcome
type Engine struct {
	transactionRepo    persistence.TransactionRepository
	gateway            gateway.PaymentGateway
	store              commerce.Store
	guard              *IdempotencyGuard
	replay             *ReplayResolver
	compensator        *Compensator
	timeProvider       coreport.TimeProvider
	logger             coreport.Logger
	metrics            coreport.MetricsRecorder
	statusAfterPayment string
}

// NewEngine creates a new reconciliation engine
func NewEngine(
	transactionRepo persistence.TransactionRepository,
	gw gateway.PaymentGateway,
	store commerce.Store,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.MetricsRecorder,
	statusAfterPayment string,
) *Engine {
	return &Engine{
		transactionRepo:    transactionRepo,
		gateway:            gw,
		store:              store,
		guard:              NewIdempotencyGuard(transactionRepo),
		replay:             NewReplayResolver(store, logger),
		compensator:        NewCompensator(gw, logger, metrics),
		timeProvider:       timeProvider,
		logger:             logger,
		metrics:            metrics,
		statusAfterPayment: statusAfterPayment,
	}
}

// Reconcile classifies the payload and runs the matching flow
func (e *Engine) Reconcile(ctx context.Context, payload entity.CallbackPayload) (*entity.Outcome, error) {
	flow := entity.ClassifyFlow(payload)
	key, byToken, ok := payload.LookupKey(flow)

	switch flow {
	case entity.FlowNormal:
		return e.reconcileNormal(ctx, key)
	case entity.FlowAborted:
		return e.reconcileUserTerminal(ctx, flow, key, byToken, entity.StatusAbortedByUser, MessageCanceledByUser)
	case entity.FlowError:
		return e.reconcileUserTerminal(ctx, flow, key, byToken, entity.StatusError, MessageFormError)
	case entity.FlowTimeout:
		if !ok {
			e.logger.Warn("Timeout callback without buy order", nil)
			return entity.ErrorOutcome(flow, entity.StatusTimeout, MessageTimeout, nil), nil
		}
		return e.reconcileUserTerminal(ctx, flow, key, byToken, entity.StatusTimeout, MessageTimeout)
	default:
		return nil, fmt.Errorf("%w: unrecognized callback parameters", errs.ErrClassification)
	}
}

// reconcileUserTerminal handles the flows where no charge was attempted
func (e *Engine) reconcileUserTerminal(
	ctx context.Context,
	flow entity.Flow,
	key string,
	byToken bool,
	status entity.TransactionStatus,
	message string,
) (*entity.Outcome, error) {
	txn, terminal, err := e.guard.CheckTerminal(ctx, key, byToken)
	if err != nil {
		if errs.IsNotFoundError(err) && flow == entity.FlowTimeout {
			e.logger.Warn("No transaction recorded for timed out buy order", map[string]any{
				"buy_order": key,
			})
			return entity.ErrorOutcome(flow, status, message, nil), nil
		}
		return nil, err
	}
	if terminal {
		return e.replay.Resolve(ctx, flow, txn)
	}

	if err := txn.TransitionTo(status, e.timeProvider); err != nil {
		return nil, err
	}
	if err := e.transactionRepo.Save(ctx, txn); err != nil {
		if errs.IsConcurrentModificationError(err) {
			return e.replayAfterConflict(ctx, flow, key, byToken, err)
		}
		return nil, fmt.Errorf("failed to save %s status: %w", status, err)
	}

	e.logger.Info("Transaction closed without charge", txn.LogFields())
	return entity.ErrorOutcome(flow, status, message, nil), nil
}

// reconcileNormal handles the return trip after the shopper completed the payment form
func (e *Engine) reconcileNormal(ctx context.Context, token string) (*entity.Outcome, error) {
	flow := entity.FlowNormal

	txn, terminal, err := e.guard.CheckTerminal(ctx, token, true)
	if err != nil {
		return nil, err
	}
	if terminal {
		return e.replay.Resolve(ctx, flow, txn)
	}

	if outcome, handled, err := e.rejectDuplicateCart(ctx, txn); handled || err != nil {
		return outcome, err
	}

	cart, err := e.store.GetCart(ctx, txn.CartID)
	if err != nil {
		return nil, err
	}
	total, err := e.store.ComputeCartTotal(ctx, cart)
	if err != nil {
		return nil, err
	}
	if !total.Total().Equal(txn.Amount()) {
		return e.rejectManipulatedCart(ctx, txn, total)
	}

	result, err := e.gateway.Commit(ctx, txn.Product, token)
	if err != nil {
		return nil, err
	}
	txn.ApplyCommitResult(result)

	if result.IsIntegral() {
		return e.approve(ctx, txn, cart, result)
	}
	return e.decline(ctx, txn, result)
}

// rejectDuplicateCart fails the record when another transaction already paid the same cart
func (e *Engine) rejectDuplicateCart(ctx context.Context, txn *entity.Transaction) (*entity.Outcome, bool, error) {
	approved, err := e.transactionRepo.FindApprovedForCart(ctx, txn.CartID, txn.ID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	e.logger.Warn("Cart already paid by another transaction", map[string]any{
		"token":          txn.Token,
		"cart_id":        txn.CartID,
		"approved_token": approved.Token,
	})

	outcome, err := e.failWithoutCommit(ctx, txn, `{"error":"duplicate cart payment"}`, MessageDuplicateCart)
	return outcome, true, err
}

// rejectManipulatedCart fails the record when the cart total moved after the transaction was created
func (e *Engine) rejectManipulatedCart(
	ctx context.Context,
	txn *entity.Transaction,
	total entity.CartTotal,
) (*entity.Outcome, error) {
	mismatch := &errs.IntegrityMismatchError{
		Token:    txn.Token,
		CartID:   txn.CartID,
		Expected: entity.FormatAmount(txn.Amount()),
		Actual:   entity.FormatAmount(total.Total()),
	}
	e.logger.Warn("Cart total changed during payment, commit skipped", mismatch.LogFields())

	return e.failWithoutCommit(ctx, txn, `{"error":"cart manipulated"}`, MessageCartManipulated)
}

func (e *Engine) failWithoutCommit(
	ctx context.Context,
	txn *entity.Transaction,
	raw string,
	message string,
) (*entity.Outcome, error) {
	flow := entity.FlowNormal
	if err := txn.TransitionTo(entity.StatusFailed, e.timeProvider); err != nil {
		return nil, err
	}
	txn.RawGatewayResponse = []byte(raw)

	if err := e.transactionRepo.Save(ctx, txn); err != nil {
		if errs.IsConcurrentModificationError(err) {
			return e.replayAfterConflict(ctx, flow, txn.Token, true, err)
		}
		return nil, fmt.Errorf("failed to save FAILED status: %w", err)
	}
	return entity.ErrorOutcome(flow, entity.StatusFailed, message, nil), nil
}

// approve records an integral commit and hands the cart to the commerce store
func (e *Engine) approve(
	ctx context.Context,
	txn *entity.Transaction,
	cart *entity.Cart,
	result *entity.CommitResult,
) (*entity.Outcome, error) {
	flow := entity.FlowNormal
	if err := txn.TransitionTo(entity.StatusApproved, e.timeProvider); err != nil {
		return nil, err
	}
	err := e.transactionRepo.Save(ctx, txn)
	if errs.IsDuplicateTransactionError(err) {
		return e.rejectConcurrentApproval(ctx, txn, result)
	}
	if outcome, err := e.afterCommitSave(ctx, flow, txn, "save_approved", err); outcome != nil || err != nil {
		return outcome, err
	}
	e.logger.Info("Payment approved", txn.LogFields())

	orderID, err := e.store.FulfillOrder(ctx, entity.FulfillmentRequest{
		CartID:             txn.CartID,
		StatusAfterPayment: e.statusAfterPayment,
		Amount:             txn.Amount(),
		Metadata: entity.PaymentMetadata{
			ModuleName: PaymentModuleName,
			Message:    PaymentApprovedNotice,
			Token:      txn.Token,
		},
	})
	if err != nil {
		return nil, e.gap(txn, "fulfill_order", err)
	}

	txn.AttachOrder(orderID)
	if err := e.transactionRepo.Save(ctx, txn); err != nil {
		// The order exists and the payment is recorded; only the link is missing.
		e.gap(txn, "save_order_id", err)
	}

	details := entity.OrderPaymentDetails{
		CardNumberMasked: entity.MaskCardNumber(result.CardNumber),
		TransactionID:    txn.Token,
	}
	if first := result.FirstLeg(); first != nil {
		details.AuthorizationCode = first.AuthorizationCode
	}
	if err := e.store.AttachPaymentMetadata(ctx, orderID, details); err != nil {
		e.logger.Warn("Could not attach card details to order", map[string]any{
			"order_id": orderID,
			"token":    txn.Token,
			"error":    err.Error(),
		})
	}

	customer, err := e.store.GetCustomer(ctx, cart.CustomerID)
	if err != nil {
		e.logger.Warn("Could not load customer for confirmation", map[string]any{
			"customer_id": cart.CustomerID,
			"error":       err.Error(),
		})
	} else {
		cart.Customer = customer
	}
	cart.OrderID = &orderID

	return entity.SuccessOutcome(flow, cart), nil
}

// decline records a non-integral commit and refunds any leg that was authorized
func (e *Engine) decline(
	ctx context.Context,
	txn *entity.Transaction,
	result *entity.CommitResult,
) (*entity.Outcome, error) {
	flow := entity.FlowNormal
	if err := txn.TransitionTo(entity.StatusFailed, e.timeProvider); err != nil {
		return nil, err
	}
	err := e.transactionRepo.Save(ctx, txn)
	if outcome, err := e.afterCommitSave(ctx, flow, txn, "save_failed", err); outcome != nil || err != nil {
		return outcome, err
	}

	authorized := result.AuthorizedLegs()
	if len(authorized) > 0 {
		fields := txn.LogFields()
		fields["authorized_legs"] = len(authorized)
		fields["total_legs"] = len(result.Legs)
		fields["error_code"] = errs.CodePartialAuthorization
		e.logger.Warn("Partial authorization, refunding authorized legs", fields)
		e.refund(ctx, txn, authorized)
	} else {
		e.logger.Info("Payment declined", txn.LogFields())
	}

	var code *int
	if declined := result.FirstDeclinedLeg(); declined != nil {
		c := declined.ResponseCode
		code = &c
	}
	return entity.ErrorOutcome(flow, entity.StatusFailed, MessageFailed, code), nil
}

// rejectConcurrentApproval handles a commit that succeeded while another token
// for the same cart was approved first. Storage refused the second APPROVED row,
// so the record is failed and the charge refunded.
func (e *Engine) rejectConcurrentApproval(
	ctx context.Context,
	txn *entity.Transaction,
	result *entity.CommitResult,
) (*entity.Outcome, error) {
	flow := entity.FlowNormal
	e.logger.Warn("Cart approved by a concurrent transaction, refunding this charge", txn.LogFields())

	if err := txn.RevertApproval(e.timeProvider); err != nil {
		return nil, err
	}
	e.refund(ctx, txn, result.AuthorizedLegs())

	err := e.transactionRepo.Save(ctx, txn)
	if outcome, err := e.afterCommitSave(ctx, flow, txn, "save_duplicate_failed", err); outcome != nil || err != nil {
		return outcome, err
	}
	return entity.ErrorOutcome(flow, entity.StatusFailed, MessageDuplicateCart, nil), nil
}

// refund compensates the given legs and logs which buy orders were refunded
func (e *Engine) refund(ctx context.Context, txn *entity.Transaction, legs []entity.Leg) {
	if len(legs) == 0 {
		return
	}
	report := e.compensator.Compensate(ctx, txn, legs)

	fields := txn.LogFields()
	fields["refunded"] = report.Refunded
	fields["refund_failed"] = report.Failed
	if len(report.Failed) > 0 {
		e.logger.Error("Some authorized legs were not refunded, manual follow-up required", fields)
		return
	}
	e.logger.Info("Authorized legs refunded", fields)
}

// afterCommitSave inspects the result of saving a record whose status reflects
// a gateway commit. A non-nil outcome means another delivery already finished
// the record.
func (e *Engine) afterCommitSave(
	ctx context.Context,
	flow entity.Flow,
	txn *entity.Transaction,
	stage string,
	err error,
) (*entity.Outcome, error) {
	if err == nil {
		return nil, nil
	}
	if errs.IsConcurrentModificationError(err) {
		outcome, replayErr := e.replayAfterConflict(ctx, flow, txn.Token, true, err)
		if replayErr == nil {
			return outcome, nil
		}
	}
	return nil, e.gap(txn, stage, err)
}

// replayAfterConflict reloads a record that changed under us and replays it when terminal
func (e *Engine) replayAfterConflict(
	ctx context.Context,
	flow entity.Flow,
	key string,
	byToken bool,
	cause error,
) (*entity.Outcome, error) {
	current, terminal, err := e.guard.CheckTerminal(ctx, key, byToken)
	if err != nil {
		return nil, fmt.Errorf("failed to reload transaction after conflict: %w", err)
	}
	if !terminal {
		return nil, cause
	}
	e.logger.Info("Concurrent delivery finished transaction first", current.LogFields())
	return e.replay.Resolve(ctx, flow, current)
}

func (e *Engine) gap(txn *entity.Transaction, stage string, err error) error {
	gapErr := errs.NewReconciliationGapError(
		txn.Token,
		txn.BuyOrder,
		entity.FormatAmount(txn.Amount()),
		string(txn.Status),
		stage,
		err,
	)
	e.logger.Error("Gateway result not recorded, manual follow-up required", errs.FieldsOf(gapErr))
	e.metrics.RecordReconciliationGap(stage)
	return gapErr
}
