package usecase

import (
	"context"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
)

// StartPaymentResult is returned when a gateway transaction has been created
type StartPaymentResult struct {
	Token       string
	RedirectURL string
	BuyOrder    string
	Product     entity.Product
	Amount      string
}

// CheckoutUseCase starts payments and exposes stored records to operators
type CheckoutUseCase interface {
	// StartPayment creates a gateway transaction for the cart and stores an INITIALIZED record
	StartPayment(ctx context.Context, cartID int64) (*StartPaymentResult, error)
	// GetTransaction returns the stored record for a token
	GetTransaction(ctx context.Context, token string) (*entity.Transaction, error)
}
