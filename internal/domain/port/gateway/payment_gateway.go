package gateway

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
)

// LegRequest is one commerce-code split of a mall transaction
type LegRequest struct {
	CommerceCode string
	BuyOrder     string
	Amount       decimal.Decimal
}

// CreateRequest starts a hosted-redirect transaction
type CreateRequest struct {
	Product   entity.Product
	BuyOrder  string
	SessionID string
	Amount    decimal.Decimal
	ReturnURL string
	Legs      []LegRequest
}

// CreateResponse carries the token and the form URL the shopper is sent to
type CreateResponse struct {
	Token string
	URL   string
}

// RefundRequest reverses one authorized leg
type RefundRequest struct {
	Product      entity.Product
	Token        string
	BuyOrder     string
	CommerceCode string
	Amount       decimal.Decimal
}

// PaymentGateway is the narrow client the reconciliation flow needs from the provider.
// Every failure is returned as a GatewayRequestError.
type PaymentGateway interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResponse, error)
	// Commit confirms the transaction. The result always carries at least one leg.
	Commit(ctx context.Context, product entity.Product, token string) (*entity.CommitResult, error)
	Refund(ctx context.Context, req RefundRequest) (*entity.RefundResult, error)
}
