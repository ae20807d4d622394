package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment    string               `mapstructure:"environment"`
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Logger         LoggerConfig         `mapstructure:"logger"`
	Webpay         WebpayConfig         `mapstructure:"webpay"`
	Commerce       CommerceConfig       `mapstructure:"commerce"`
	Reconciliation ReconciliationConfig `mapstructure:"reconciliation"`
	Routes         RoutesConfig         `mapstructure:"routes"`
	Metrics        MetricsConfig        `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds

	// SQL statements slower than this are logged at warn level
	SlowQueryThreshold time.Duration `mapstructure:"slowQueryThreshold"` // milliseconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// WebpayConfig contains gateway credentials and client behaviour
type WebpayConfig struct {
	ModuleActive             bool          `mapstructure:"moduleActive"`
	Environment              string        `mapstructure:"environment"`
	BaseURL                  string        `mapstructure:"baseURL"`
	CommerceCode             string        `mapstructure:"commerceCode"`
	APIKey                   string        `mapstructure:"apiKey"`
	MallCommerceCode         string        `mapstructure:"mallCommerceCode"`
	MallAPIKey               string        `mapstructure:"mallApiKey"`
	MallProductsCommerceCode string        `mapstructure:"mallProductsCommerceCode"`
	MallShippingCommerceCode string        `mapstructure:"mallShippingCommerceCode"`
	Timeout                  time.Duration `mapstructure:"timeout"` // seconds
	RetryAttempts            int           `mapstructure:"retryAttempts"`
	RetryBaseDelay           time.Duration `mapstructure:"retryBaseDelay"` // milliseconds
	BreakerThreshold         int           `mapstructure:"breakerThreshold"`
	BreakerCooldown          time.Duration `mapstructure:"breakerCooldown"` // seconds
}

// CommerceConfig contains settings for the shop backend client
type CommerceConfig struct {
	BaseURL            string        `mapstructure:"baseURL"`
	APIKey             string        `mapstructure:"apiKey"`
	Timeout            time.Duration `mapstructure:"timeout"` // seconds
	RetryAttempts      int           `mapstructure:"retryAttempts"`
	StatusAfterPayment string        `mapstructure:"statusAfterPayment"`
}

// ReconciliationConfig contains callback processing settings
type ReconciliationConfig struct {
	SerializeDeliveries bool `mapstructure:"serializeDeliveries"`
	SaveRetryAttempts   int  `mapstructure:"saveRetryAttempts"`
}

// MetricsConfig toggles the prometheus recorder. /metrics stays mounted either way.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// RoutesConfig contains the public URLs the shopper is sent to
type RoutesConfig struct {
	PublicBaseURL   string `mapstructure:"publicBaseURL"`
	ConfirmationURL string `mapstructure:"confirmationURL"`
}

// ReturnURL is where the gateway posts single-commerce callbacks
func (r RoutesConfig) ReturnURL() string {
	return r.PublicBaseURL + "/webpay/return"
}

// MallReturnURL is where the gateway posts mall callbacks
func (r RoutesConfig) MallReturnURL() string {
	return r.PublicBaseURL + "/webpay/mall/return"
}
