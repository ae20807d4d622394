package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "WR"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the given paths and applies env overrides
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 30)      // seconds, commit plus fulfillment
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 15)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)            // seconds
	v.SetDefault("database.slowQueryThreshold", 200) // milliseconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	// Public integration credentials published by the provider
	v.SetDefault("webpay.moduleActive", true)
	v.SetDefault("webpay.environment", "integration")
	v.SetDefault("webpay.baseURL", "https://webpay3gint.transbank.cl")
	v.SetDefault("webpay.commerceCode", "597055555532")
	v.SetDefault("webpay.apiKey", "579B532A7440BB0C9079DED94D31EA1615BACEB56610332264630D42D0A36B1C")
	v.SetDefault("webpay.mallCommerceCode", "597055555535")
	v.SetDefault("webpay.mallApiKey", "579B532A7440BB0C9079DED94D31EA1615BACEB56610332264630D42D0A36B1C")
	v.SetDefault("webpay.mallProductsCommerceCode", "597055555536")
	v.SetDefault("webpay.mallShippingCommerceCode", "597055555537")
	v.SetDefault("webpay.timeout", 20) // seconds
	v.SetDefault("webpay.retryAttempts", 3)
	v.SetDefault("webpay.retryBaseDelay", 200) // milliseconds
	v.SetDefault("webpay.breakerThreshold", 5)
	v.SetDefault("webpay.breakerCooldown", 30) // seconds

	v.SetDefault("commerce.timeout", 10) // seconds
	v.SetDefault("commerce.retryAttempts", 2)
	v.SetDefault("commerce.statusAfterPayment", "PS_OS_PAYMENT")

	v.SetDefault("reconciliation.serializeDeliveries", true)
	v.SetDefault("reconciliation.saveRetryAttempts", 3)

	v.SetDefault("metrics.enabled", true)
}

// getEnvironment determines the environment to use based on WR_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

type envKind int

const (
	envString envKind = iota
	envInt
	envBool
)

// envBinding maps one WR_* variable onto a config key
type envBinding struct {
	env  string
	key  string
	kind envKind
}

// envBindings are the explicit overrides. Secrets are only expected to come from here.
var envBindings = []envBinding{
	{"WR_SERVER_HOST", "server.host", envString},
	{"WR_SERVER_PORT", "server.port", envInt},

	{"WR_DB_DRIVER", "database.driver", envString},
	{"WR_DB_HOST", "database.host", envString},
	{"WR_DB_PORT", "database.port", envString},
	{"WR_DB_USERNAME", "database.username", envString},
	{"WR_DB_PASSWORD", "database.password", envString},
	{"WR_DB_NAME", "database.database", envString},
	{"WR_DB_SSL_MODE", "database.sslMode", envString},
	{"WR_DB_MAX_OPEN_CONNS", "database.maxOpenConns", envInt},
	{"WR_DB_MAX_IDLE_CONNS", "database.maxIdleConns", envInt},
	{"WR_DB_QUERY_TIMEOUT_SECONDS", "database.queryTimeout", envInt},
	{"WR_DB_RETRY_ATTEMPTS", "database.retryAttempts", envInt},

	{"WR_LOGGER_LEVEL", "logger.level", envString},
	{"WR_LOGGER_FORMAT", "logger.format", envString},

	{"WR_WEBPAY_MODULE_ACTIVE", "webpay.moduleActive", envBool},
	{"WR_WEBPAY_ENVIRONMENT", "webpay.environment", envString},
	{"WR_WEBPAY_BASE_URL", "webpay.baseURL", envString},
	{"WR_WEBPAY_COMMERCE_CODE", "webpay.commerceCode", envString},
	{"WR_WEBPAY_API_KEY", "webpay.apiKey", envString},
	{"WR_WEBPAY_MALL_COMMERCE_CODE", "webpay.mallCommerceCode", envString},
	{"WR_WEBPAY_MALL_API_KEY", "webpay.mallApiKey", envString},
	{"WR_WEBPAY_TIMEOUT_SECONDS", "webpay.timeout", envInt},

	{"WR_COMMERCE_BASE_URL", "commerce.baseURL", envString},
	{"WR_COMMERCE_API_KEY", "commerce.apiKey", envString},
	{"WR_COMMERCE_STATUS_AFTER_PAYMENT", "commerce.statusAfterPayment", envString},

	{"WR_ROUTES_PUBLIC_BASE_URL", "routes.publicBaseURL", envString},
	{"WR_ROUTES_CONFIRMATION_URL", "routes.confirmationURL", envString},

	{"WR_METRICS_ENABLED", "metrics.enabled", envBool},
}

// processEnvOverrides applies envBindings. Values that do not parse as the
// binding's kind are ignored and the file value stays.
func processEnvOverrides(v *viper.Viper) {
	for _, b := range envBindings {
		raw, ok := os.LookupEnv(b.env)
		if !ok || raw == "" {
			continue
		}
		switch b.kind {
		case envInt:
			if n, err := strconv.Atoi(raw); err == nil {
				v.Set(b.key, n)
			}
		case envBool:
			if flag, err := strconv.ParseBool(raw); err == nil {
				v.Set(b.key, flag)
			}
		default:
			v.Set(b.key, raw)
		}
	}
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
	config.Database.SlowQueryThreshold = time.Duration(config.Database.SlowQueryThreshold) * time.Millisecond

	config.Webpay.Timeout = time.Duration(config.Webpay.Timeout) * time.Second
	config.Webpay.RetryBaseDelay = time.Duration(config.Webpay.RetryBaseDelay) * time.Millisecond
	config.Webpay.BreakerCooldown = time.Duration(config.Webpay.BreakerCooldown) * time.Second
	config.Commerce.Timeout = time.Duration(config.Commerce.Timeout) * time.Second
}
