package usecase

import (
	"context"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/presenter"
)

// ReconciliationUseCase processes gateway return-trip callbacks
type ReconciliationUseCase interface {
	// HandleCallback reconciles one delivery, persists the terminal status and
	// then presents the outcome. The returned error is for logging only; the
	// presenter has already been given something to show.
	HandleCallback(ctx context.Context, payload entity.CallbackPayload, p presenter.OutcomePresenter) (*entity.Outcome, error)
}
