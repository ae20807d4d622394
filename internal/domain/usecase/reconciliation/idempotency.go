package reconciliation

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/persistence"
)

// IdempotencyGuard decides whether a delivery still has work to do.
// It must run before any commit or refund is issued.
type IdempotencyGuard struct {
	transactionRepo persistence.TransactionRepository
}

// NewIdempotencyGuard creates a new IdempotencyGuard
func NewIdempotencyGuard(transactionRepo persistence.TransactionRepository) *IdempotencyGuard {
	return &IdempotencyGuard{
		transactionRepo: transactionRepo,
	}
}

// Load fetches the record by token, or by buy order when byToken is false
func (g *IdempotencyGuard) Load(ctx context.Context, key string, byToken bool) (*entity.Transaction, error) {
	var (
		txn *entity.Transaction
		err error
	)
	if byToken {
		txn, err = g.transactionRepo.FindByToken(ctx, key)
	} else {
		txn, err = g.transactionRepo.FindByBuyOrder(ctx, key)
	}
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	return txn, nil
}

// CheckTerminal loads the record and reports whether it already left INITIALIZED.
// ErrTransactionNotFound is returned unchanged so callers can apply flow-specific handling.
func (g *IdempotencyGuard) CheckTerminal(
	ctx context.Context,
	key string,
	byToken bool,
) (*entity.Transaction, bool, error) {
	txn, err := g.Load(ctx, key, byToken)
	if err != nil {
		return nil, false, err
	}
	return txn, txn.IsTerminal(), nil
}

// IsAlreadyTerminal reports whether the record for key is in a terminal status
func (g *IdempotencyGuard) IsAlreadyTerminal(ctx context.Context, key string, byToken bool) (bool, error) {
	_, terminal, err := g.CheckTerminal(ctx, key, byToken)
	return terminal, err
}
