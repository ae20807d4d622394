package commerce

import (
	"context"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
)

// Store is the part of the host shop the payment flow talks to
type Store interface {
	GetCart(ctx context.Context, cartID int64) (*entity.Cart, error)
	// ComputeCartTotal recomputes the authoritative total from the live cart
	ComputeCartTotal(ctx context.Context, cart *entity.Cart) (entity.CartTotal, error)
	// FulfillOrder validates the cart into an order and returns the order ID
	FulfillOrder(ctx context.Context, req entity.FulfillmentRequest) (int64, error)
	GetCustomer(ctx context.Context, customerID int64) (*entity.Customer, error)
	AttachPaymentMetadata(ctx context.Context, orderID int64, details entity.OrderPaymentDetails) error
}
