package reconciliation

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/commerce"
)

// ReplayResolver rebuilds the outcome of a delivery whose record is already
// terminal. It never mutates the record or calls the gateway.
type ReplayResolver struct {
	store  commerce.Store
	logger coreport.Logger
}

// NewReplayResolver creates a new ReplayResolver
func NewReplayResolver(store commerce.Store, logger coreport.Logger) *ReplayResolver {
	return &ReplayResolver{
		store:  store,
		logger: logger,
	}
}

// Resolve maps the stored terminal status to the outcome a fresh delivery would have produced
func (r *ReplayResolver) Resolve(ctx context.Context, flow entity.Flow, txn *entity.Transaction) (*entity.Outcome, error) {
	r.logger.Info("Transaction already processed, replaying stored outcome", txn.LogFields())

	var outcome *entity.Outcome
	switch txn.Status {
	case entity.StatusApproved:
		cart, err := r.store.GetCart(ctx, txn.CartID)
		if err != nil {
			return nil, fmt.Errorf("failed to load cart for approved transaction: %w", err)
		}
		cart.OrderID = txn.OrderID
		if customer, err := r.store.GetCustomer(ctx, cart.CustomerID); err == nil {
			cart.Customer = customer
		} else {
			r.logger.Warn("Could not load customer for replayed approval", map[string]any{
				"cart_id": cart.ID,
				"error":   err.Error(),
			})
		}
		outcome = entity.SuccessOutcome(flow, cart)
	case entity.StatusFailed:
		outcome = entity.ErrorOutcome(flow, txn.Status, MessageFailed, txn.ResponseCode)
	case entity.StatusAbortedByUser:
		outcome = entity.ErrorOutcome(flow, txn.Status, MessageCanceledByUser, nil)
	case entity.StatusTimeout:
		outcome = entity.ErrorOutcome(flow, txn.Status, MessageTimeout, nil)
	case entity.StatusError:
		outcome = entity.ErrorOutcome(flow, txn.Status, MessageFormError, nil)
	default:
		return nil, fmt.Errorf("cannot replay transaction %s in status %s", txn.Token, txn.Status)
	}

	outcome.Replayed = true
	return outcome, nil
}
