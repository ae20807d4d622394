package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler turns a panic into a response. With a nil fallback the client
// gets a JSON 500; callback routes pass a fallback that renders the shopper page.
func ErrorHandler(logger coreport.Logger, fallback gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			logger.Error("Recovered from panic while handling request", map[string]any{
				"error":      fmt.Sprint(recovered),
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"route":      c.FullPath(),
				"request_id": GetRequestID(c),
				"stack":      string(debug.Stack()),
			})

			switch {
			case c.Writer.Written():
				c.Abort()
			case fallback != nil:
				fallback(c)
				c.Abort()
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:      domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message:   "Internal server error",
					RequestID: GetRequestID(c),
				})
			}
		}()

		c.Next()
	}
}
