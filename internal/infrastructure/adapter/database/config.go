package database

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/config"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration

	// Zero disables slow query warnings
	SlowQueryThreshold time.Duration
}

// DefaultConfig returns a Config with default values.
// Credentials are never defaulted.
func DefaultConfig() *Config {
	return &Config{
		Driver:          DriverPostgres,
		Port:            5432,
		SSLMode:         "disable",
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 15 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "info",
		RetryAttempts:   3,
		RetryDelay:      time.Second,

		SlowQueryThreshold: 200 * time.Millisecond,
	}
}

// FromAppConfig adapts the application configuration to database configuration
func FromAppConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()

	if conf.Database.Driver != "" {
		dbConf.Driver = conf.Database.Driver
	}
	dbConf.Host = conf.Database.Host
	if port := ParsePort(conf.Database.Port); port > 0 {
		dbConf.Port = port
	}
	dbConf.Username = conf.Database.Username
	dbConf.Password = conf.Database.Password
	dbConf.Database = conf.Database.Database

	if conf.Database.SSLMode != "" {
		dbConf.SSLMode = conf.Database.SSLMode
	}
	if conf.Database.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = conf.Database.MaxOpenConns
	}
	if conf.Database.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = conf.Database.MaxIdleConns
	}
	if conf.Database.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = conf.Database.ConnMaxLifetime
	}
	if conf.Database.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = conf.Database.ConnMaxIdleTime
	}
	if conf.Database.QueryTimeout > 0 {
		dbConf.QueryTimeout = conf.Database.QueryTimeout
	}
	if conf.Database.RetryAttempts >= 0 {
		dbConf.RetryAttempts = conf.Database.RetryAttempts
	}
	if conf.Database.RetryDelay > 0 {
		dbConf.RetryDelay = conf.Database.RetryDelay
	}
	if conf.Database.SlowQueryThreshold > 0 {
		dbConf.SlowQueryThreshold = conf.Database.SlowQueryThreshold
	}
	if conf.Logger.Level != "" {
		dbConf.LogLevel = conf.Logger.Level
	}

	return dbConf
}

var (
	validSSLModes  = map[string]bool{"disable": true, "require": true, "verify-ca": true, "verify-full": true, "prefer": true}
	validLogLevels = map[string]bool{"silent": true, "debug": true, "info": true, "warn": true, "error": true}
)

// Validate reports every problem in the configuration at once
func (c *Config) Validate() error {
	var problems []error
	require := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, errors.New(msg))
		}
	}

	switch c.Driver {
	case DriverSQLite:
		require(c.Database != "", "sqlite database path is required")
	case DriverPostgres:
		require(c.Host != "", "database host is required")
		if c.Port <= 0 || c.Port > 65535 {
			problems = append(problems, fmt.Errorf("invalid port number: %d", c.Port))
		}
		require(c.Username != "", "database username is required")
		require(c.Password != "", "database password is required")
		require(c.Database != "", "database name is required")
		if !validSSLModes[c.SSLMode] {
			problems = append(problems, fmt.Errorf("invalid SSL mode: %s", c.SSLMode))
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns <= 0 || c.MaxIdleConns <= 0 {
		problems = append(problems, fmt.Errorf("connection pool sizes must be positive, got open=%d idle=%d",
			c.MaxOpenConns, c.MaxIdleConns))
	}
	require(c.QueryTimeout > 0, "query timeout must be positive")
	if c.RetryAttempts < 0 {
		problems = append(problems, fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts))
	}
	if !validLogLevels[c.LogLevel] {
		problems = append(problems, fmt.Errorf("invalid log level: %s", c.LogLevel))
	}

	return errors.Join(problems...)
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Database
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// ParsePort returns port as an int, or 0 when it is not a valid TCP port
func ParsePort(port string) int {
	p, err := strconv.Atoi(strings.TrimSpace(port))
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
