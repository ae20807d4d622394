package database

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/database/migration"
)

// Manager owns the transaction store connection and the helpers built on it.
// Migrations, health checks and pool metrics are available after Connect.
type Manager struct {
	config       *Config
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	registerer   prometheus.Registerer

	db            *gorm.DB
	migrationMgr  *migration.MigrationManager
	healthChecker *HealthChecker
	poolCollector *PoolCollector
}

// NewManager creates a manager; nothing is opened until Connect
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger.With(map[string]any{"driver": config.Driver}),
		timeProvider: timeProvider,
	}
}

// Connect validates the configuration, opens the database and sizes the pool.
// Opening is retried RetryAttempts times, RetryDelay apart.
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	gormDB, err := m.dial(ctx)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)
	m.healthChecker = NewHealthChecker(gormDB, m.logger, m.config.QueryTimeout)
	m.poolCollector = NewPoolCollector(gormDB, m.logger)
	if m.registerer != nil {
		if err := m.registerer.Register(m.poolCollector); err != nil {
			m.logger.Warn("Failed to register connection pool metrics", map[string]any{"error": err.Error()})
		}
	}

	m.logger.Info("Connected to database", map[string]any{
		"host":           m.config.Host,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})
	return m.db, nil
}

func (m *Manager) dial(ctx context.Context) (*gorm.DB, error) {
	attempts := max(m.config.RetryAttempts, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		gormDB, err := m.open()
		if err == nil {
			return gormDB, nil
		}
		lastErr = err

		m.logger.Warn("Database connection attempt failed", map[string]any{
			"attempt": attempt,
			"of":      attempts,
			"error":   err.Error(),
		})
		if attempt == attempts {
			break
		}
		if err := m.timeProvider.Sleep(ctx, m.config.RetryDelay); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, lastErr)
}

func (m *Manager) open() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowQueryThreshold),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
		TranslateError: true,
	}

	switch m.config.Driver {
	case DriverPostgres:
		gormConfig.PrepareStmt = true
		return gorm.Open(postgres.Open(m.config.DSN()), gormConfig)
	case DriverSQLite:
		return gorm.Open(sqlite.Open(m.config.DSN()), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}
}

// DB returns the connection; nil before Connect
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close unregisters the pool metrics and closes the connection
func (m *Manager) Close() error {
	if m.registerer != nil && m.poolCollector != nil {
		m.registerer.Unregister(m.poolCollector)
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// WithRegisterer exposes pool statistics through reg once connected
func (m *Manager) WithRegisterer(reg prometheus.Registerer) *Manager {
	m.registerer = reg
	return m
}

// MigrationManager returns the migration manager
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return m.migrationMgr
}

// HealthChecker returns the health checker for the open connection
func (m *Manager) HealthChecker() *HealthChecker {
	return m.healthChecker
}

// PoolMetrics returns the latest connection pool snapshot
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.poolCollector == nil {
		return ConnectionPoolMetrics{}
	}
	snap, err := m.poolCollector.Snapshot()
	if err != nil {
		return ConnectionPoolMetrics{}
	}
	return snap
}
