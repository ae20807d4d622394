package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles payment initiation and record lookup
type TransactionHandler struct {
	checkout usecase.CheckoutUseCase
	logger   coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(checkout usecase.CheckoutUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		checkout: checkout,
		logger:   logger,
	}
}

// StartPayment handles the POST /webpay/transactions endpoint
func (h *TransactionHandler) StartPayment(c *gin.Context) {
	var req dto.StartPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid start payment request format", map[string]any{
			"error": err.Error(),
		})
		writeError(c, fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return
	}

	result, err := h.checkout.StartPayment(c.Request.Context(), req.CartID)
	if err != nil {
		h.logger.Error("Failed to start payment", map[string]any{
			"cart_id": req.CartID,
			"error":   err.Error(),
		})
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.StartPaymentResponse{
		Token:    result.Token,
		URL:      result.RedirectURL,
		BuyOrder: result.BuyOrder,
		Product:  string(result.Product),
		Amount:   result.Amount,
	})
}

// GetTransaction handles the GET /webpay/transactions/:token endpoint
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	txn, err := h.checkout.GetTransaction(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTransactionResponse(txn))
}

func toTransactionResponse(txn *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:           txn.ID,
		Token:        txn.Token,
		BuyOrder:     txn.BuyOrder,
		SessionID:    txn.SessionID,
		CartID:       txn.CartID,
		OrderID:      txn.OrderID,
		Amount:       entity.FormatAmount(txn.Amount()),
		Status:       string(txn.Status),
		ResponseCode: txn.ResponseCode,
		CardNumber:   txn.CardNumberMasked,
		VCI:          txn.VCI,
		CommerceCode: txn.CommerceCode,
		Environment:  string(txn.Environment),
		Product:      string(txn.Product),
		CreatedAt:    txn.CreatedAt,
		UpdatedAt:    txn.UpdatedAt,
	}
}
