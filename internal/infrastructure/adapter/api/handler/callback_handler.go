package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	presenterport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/presenter"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/usecase"
)

// PresenterFactory binds an outcome presenter to a request
type PresenterFactory interface {
	For(c *gin.Context) presenterport.OutcomePresenter
}

// CallbackHandler handles the gateway return trip
type CallbackHandler struct {
	reconciler usecase.ReconciliationUseCase
	presenters PresenterFactory
	logger     coreport.Logger
}

// NewCallbackHandler creates a new callback handler instance
func NewCallbackHandler(
	reconciler usecase.ReconciliationUseCase,
	presenters PresenterFactory,
	logger coreport.Logger,
) *CallbackHandler {
	return &CallbackHandler{
		reconciler: reconciler,
		presenters: presenters,
		logger:     logger,
	}
}

// HandleReturn handles GET and POST /webpay/return and /webpay/mall/return.
// A POST is read from its form body only, any other method from the query string.
func (h *CallbackHandler) HandleReturn(c *gin.Context) {
	lookup := c.GetQuery
	if c.Request.Method == http.MethodPost {
		lookup = c.GetPostForm
	}
	payload := entity.NewCallbackPayload(lookup)

	if _, err := h.reconciler.HandleCallback(c.Request.Context(), payload, h.presenters.For(c)); err != nil {
		_ = c.Error(err)
	}
}
