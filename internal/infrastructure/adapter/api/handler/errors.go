package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/api/middleware"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrInvalidCart),
		errors.Is(err, domainerr.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDuplicateTransaction):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrModuleInactive):
		return http.StatusServiceUnavailable
	case errors.Is(err, domainerr.ErrGatewayRequest),
		errors.Is(err, domainerr.ErrCommerceRequest):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes a JSON error. Server errors hide the underlying message.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		message = http.StatusText(status)
	}
	c.JSON(status, dto.ErrorResponse{
		Code:      domainerr.ErrorCode(err),
		Message:   message,
		RequestID: middleware.GetRequestID(c),
	})
}
