package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
)

// quietRoutes are scraped or polled often and only logged at debug level
var quietRoutes = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// callbackKeys are recorded by presence so a log line shows which flow the gateway sent
var callbackKeys = []string{
	entity.KeySuccessToken,
	entity.KeyAbortToken,
	entity.KeySessionID,
	entity.KeyBuyOrder,
}

// Logger writes one access log line per request. Callback handlers always
// answer with a page or a redirect, so their failures only show up in c.Errors
// and are logged as warnings.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		fields := map[string]any{
			"method":     c.Request.Method,
			"route":      route,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"request_id": GetRequestID(c),
		}
		if location := c.Writer.Header().Get("Location"); location != "" {
			fields["redirect"] = location
		}
		if present := presentCallbackKeys(c); len(present) > 0 {
			fields["callback_keys"] = present
		}

		switch {
		case len(c.Errors) > 0:
			fields["errors"] = c.Errors.Errors()
			logger.Warn("Request processed with errors", fields)
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error("Request failed", fields)
		case quietRoutes[route]:
			logger.Debug("Request processed", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}

// presentCallbackKeys lists the gateway keys found in the form or the query string
func presentCallbackKeys(c *gin.Context) []string {
	var present []string
	for _, key := range callbackKeys {
		if _, ok := c.GetPostForm(key); ok {
			present = append(present, key)
			continue
		}
		if _, ok := c.GetQuery(key); ok {
			present = append(present, key)
		}
	}
	return present
}
