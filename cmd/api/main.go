package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/usecase/checkout"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/usecase/reconciliation"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/api/presenter"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/commerce"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/gateway/webpay"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/config"
)

const moduleName = "webpay"

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger, err := logger.NewZapLogger(logger.Options{
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
		CallerInfo: cfg.Logger.CallerInfo,
		Level:      core.ParseLogLevel(cfg.Logger.Level),
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database and bring the schema up to date
	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp).WithRegisterer(prometheus.DefaultRegisterer)
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	if _, err := dbManager.Connect(startupCtx); err != nil {
		cancelStartup()
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	if err := dbManager.MigrationManager().MigrateAll(startupCtx); err != nil {
		cancelStartup()
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		_ = dbManager.Close()
		os.Exit(1)
	}
	cancelStartup()

	// Initialize repositories
	retryConfig := database.DefaultRetryConfig()
	if cfg.Reconciliation.SaveRetryAttempts > 0 {
		retryConfig.MaxRetries = cfg.Reconciliation.SaveRetryAttempts
	}
	transactionRepo := repository.NewTransactionRepository(
		dbManager.DB(),
		appLogger,
		database.NewMetricsCollector(tp, nil),
	).WithRetryConfig(retryConfig)

	// Outbound clients
	gatewayClient := webpay.NewClient(webpay.Config{
		BaseURL:          cfg.Webpay.BaseURL,
		CommerceCode:     cfg.Webpay.CommerceCode,
		APIKey:           cfg.Webpay.APIKey,
		MallCommerceCode: cfg.Webpay.MallCommerceCode,
		MallAPIKey:       cfg.Webpay.MallAPIKey,
		Timeout:          cfg.Webpay.Timeout,
		RetryAttempts:    cfg.Webpay.RetryAttempts,
		RetryBaseDelay:   cfg.Webpay.RetryBaseDelay,
		BreakerThreshold: cfg.Webpay.BreakerThreshold,
		BreakerCooldown:  cfg.Webpay.BreakerCooldown,
	}, nil, appLogger)

	storeClient := commerce.NewClient(commerce.Config{
		BaseURL:       cfg.Commerce.BaseURL,
		APIKey:        cfg.Commerce.APIKey,
		Timeout:       cfg.Commerce.Timeout,
		RetryAttempts: cfg.Commerce.RetryAttempts,
	}, nil, appLogger)

	var recorder core.MetricsRecorder = metrics.NewNoopRecorder()
	if cfg.Metrics.Enabled {
		recorder = metrics.NewPrometheusRecorder(moduleName, nil)
	}

	// Initialize use cases
	reconciliationService := reconciliation.NewService(
		transactionRepo,
		gatewayClient,
		storeClient,
		tp,
		appLogger,
		recorder,
		reconciliation.Config{
			ModuleActive:        cfg.Webpay.ModuleActive,
			SerializeDeliveries: cfg.Reconciliation.SerializeDeliveries,
			StatusAfterPayment:  cfg.Commerce.StatusAfterPayment,
		},
	)

	checkoutService := checkout.NewService(
		transactionRepo,
		gatewayClient,
		storeClient,
		tp,
		appLogger,
		checkout.Config{
			ModuleActive:             cfg.Webpay.ModuleActive,
			Environment:              entity.Environment(cfg.Webpay.Environment),
			CommerceCode:             cfg.Webpay.CommerceCode,
			MallCommerceCode:         cfg.Webpay.MallCommerceCode,
			MallProductsCommerceCode: cfg.Webpay.MallProductsCommerceCode,
			MallShippingCommerceCode: cfg.Webpay.MallShippingCommerceCode,
			ReturnURL:                cfg.Routes.ReturnURL(),
			MallReturnURL:            cfg.Routes.MallReturnURL(),
		},
	)

	// Initialize API handlers
	presenters := presenter.NewFactory(presenter.Config{
		ConfirmationURL: cfg.Routes.ConfirmationURL,
		ShopURL:         cfg.Routes.PublicBaseURL,
		ModuleName:      moduleName,
	}, appLogger)

	handlers := routes.Handlers{
		Callback:          handler.NewCallbackHandler(reconciliationService, presenters, appLogger),
		Transaction:       handler.NewTransactionHandler(checkoutService, appLogger),
		Health:            handler.NewHealthHandler(dbManager.HealthChecker(), appLogger),
		CallbackPanicPage: presenters.PresentGenericError(reconciliation.MessageException),
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, handlers, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":          cfg.Server.Port,
			"env":           cfg.Environment,
			"webpay_env":    cfg.Webpay.Environment,
			"module_active": cfg.Webpay.ModuleActive,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting callbacks first so no delivery is cut off mid-reconciliation
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	reconciliationService.Shutdown()

	if err := dbManager.Close(); err != nil {
		appLogger.Error("Failed to close database", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	switch cfg.Database.Driver {
	case database.DriverSQLite:
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database")
		}
	default:
		required := map[string]string{
			"database.host (or WR_DB_HOST)":         cfg.Database.Host,
			"database.username (or WR_DB_USERNAME)": cfg.Database.Username,
			"database.password (or WR_DB_PASSWORD)": cfg.Database.Password,
			"database.database (or WR_DB_NAME)":     cfg.Database.Database,
		}
		for key, value := range required {
			if value == "" {
				missingConfigs = append(missingConfigs, key)
			}
		}
	}

	// Gateway and shop backend
	if cfg.Webpay.BaseURL == "" {
		missingConfigs = append(missingConfigs, "webpay.baseURL")
	}
	if cfg.Webpay.CommerceCode == "" || cfg.Webpay.APIKey == "" {
		missingConfigs = append(missingConfigs, "webpay.commerceCode/webpay.apiKey")
	}
	if cfg.Commerce.BaseURL == "" {
		missingConfigs = append(missingConfigs, "commerce.baseURL (or WR_COMMERCE_BASE_URL)")
	}
	if cfg.Routes.PublicBaseURL == "" {
		missingConfigs = append(missingConfigs, "routes.publicBaseURL (or WR_ROUTES_PUBLIC_BASE_URL)")
	}
	if cfg.Routes.ConfirmationURL == "" {
		missingConfigs = append(missingConfigs, "routes.confirmationURL")
	}

	env := entity.Environment(cfg.Webpay.Environment)
	if env != entity.EnvironmentIntegration && env != entity.EnvironmentProduction {
		return fmt.Errorf("invalid webpay.environment value: %s, must be %s or %s",
			cfg.Webpay.Environment, entity.EnvironmentIntegration, entity.EnvironmentProduction)
	}

	// Environment should be set with a valid value
	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver != database.DriverSQLite &&
			sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if env != entity.EnvironmentProduction {
			warnings = append(warnings, "webpay.environment is not production; payments will not be charged")
		}
		if !strings.HasPrefix(cfg.Routes.PublicBaseURL, "https://") {
			warnings = append(warnings, "routes.publicBaseURL should use https in production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
