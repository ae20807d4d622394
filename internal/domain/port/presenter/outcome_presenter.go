package presenter

import (
	"context"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
)

// OutcomePresenter shows the shopper the result of a callback
type OutcomePresenter interface {
	PresentSuccess(ctx context.Context, cart *entity.Cart)
	PresentError(ctx context.Context, message string, code *int)
}
