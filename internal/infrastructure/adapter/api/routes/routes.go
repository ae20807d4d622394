package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	Callback    *handler.CallbackHandler
	Transaction *handler.TransactionHandler
	Health      *handler.HealthHandler
	// CallbackPanicPage renders the generic error page when a callback panics
	CallbackPanicPage gin.HandlerFunc
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, handlers Handlers, logger coreport.Logger) {
	// Gateway return trip; the form posts back but some flows arrive as GET
	callbacks := router.Group("/webpay")
	callbacks.Use(middleware.ErrorHandler(logger, handlers.CallbackPanicPage))
	{
		callbacks.GET("/return", handlers.Callback.HandleReturn)
		callbacks.POST("/return", handlers.Callback.HandleReturn)
		callbacks.GET("/mall/return", handlers.Callback.HandleReturn)
		callbacks.POST("/mall/return", handlers.Callback.HandleReturn)
	}

	transactions := router.Group("/webpay/transactions")
	{
		// POST /webpay/transactions
		transactions.POST("", handlers.Transaction.StartPayment)

		// GET /webpay/transactions/:token
		transactions.GET("/:token", handlers.Transaction.GetTransaction)
	}

	router.GET("/health", handlers.Health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger, nil))
	router.Use(middleware.Logger(logger))
}
