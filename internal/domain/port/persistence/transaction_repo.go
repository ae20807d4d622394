package persistence

import (
	"context"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
)

// TransactionRepository stores payment transaction records
type TransactionRepository interface {
	// Create saves a new INITIALIZED record and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If the token or buy order is already stored
	// - ErrStorage: If the database fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByToken retrieves a record by its gateway token
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no record has the token
	// - ErrStorage: If the database fails
	FindByToken(ctx context.Context, token string) (*entity.Transaction, error)

	// FindByBuyOrder retrieves a record by its merchant buy order
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no record has the buy order
	// - ErrStorage: If the database fails
	FindByBuyOrder(ctx context.Context, buyOrder string) (*entity.Transaction, error)

	// FindApprovedForCart returns an APPROVED record for the cart other than excludeID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the cart has no other approved record
	// - ErrStorage: If the database fails
	FindApprovedForCart(ctx context.Context, cartID int64, excludeID uint64) (*entity.Transaction, error)

	// Save persists every mutable field using the record's Version as a
	// compare-and-swap guard and bumps Version on success
	//
	// Possible errors:
	// - ErrConcurrentModification: If the stored version no longer matches
	// - ErrStorage: If the database fails
	Save(ctx context.Context, transaction *entity.Transaction) error
}
