package database

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
)

// poolExhaustionRatio is the in-use share of MaxOpenConns that triggers a warning
const poolExhaustionRatio = 0.8

// ConnectionPoolMetrics is a snapshot of database/sql pool statistics
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
}

// PoolCollector exports the connection pool as prometheus metrics, read on
// every scrape. Callbacks block on a free connection before anything else, so
// wait_count rising is the first sign of a stalled store.
type PoolCollector struct {
	db     *gorm.DB
	logger coreport.Logger

	open      *prometheus.Desc
	inUse     *prometheus.Desc
	idle      *prometheus.Desc
	maxOpen   *prometheus.Desc
	waitCount *prometheus.Desc
	waitTime  *prometheus.Desc
}

var _ prometheus.Collector = (*PoolCollector)(nil)

// NewPoolCollector creates a collector for db's pool
func NewPoolCollector(db *gorm.DB, logger coreport.Logger) *PoolCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName("webpay", "db_pool", name), help, nil, nil)
	}
	return &PoolCollector{
		db:        db,
		logger:    logger,
		open:      desc("open_connections", "Established connections, in use or idle."),
		inUse:     desc("in_use_connections", "Connections currently in use."),
		idle:      desc("idle_connections", "Idle connections."),
		maxOpen:   desc("max_open_connections", "Configured connection limit."),
		waitCount: desc("wait_total", "Connections waited for."),
		waitTime:  desc("wait_seconds_total", "Time blocked waiting for a connection."),
	}
}

// Snapshot reads the current pool statistics
func (c *PoolCollector) Snapshot() (ConnectionPoolMetrics, error) {
	sqlDB, err := c.db.DB()
	if err != nil {
		return ConnectionPoolMetrics{}, fmt.Errorf("failed to get database connection: %w", err)
	}
	stats := sqlDB.Stats()
	return ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
	}, nil
}

// Describe implements prometheus.Collector
func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.open
	ch <- c.inUse
	ch <- c.idle
	ch <- c.maxOpen
	ch <- c.waitCount
	ch <- c.waitTime
}

// Collect implements prometheus.Collector
func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	snap, err := c.Snapshot()
	if err != nil {
		c.logger.Error("Failed to collect connection pool metrics", map[string]any{
			"error": err.Error(),
		})
		return
	}

	ch <- prometheus.MustNewConstMetric(c.open, prometheus.GaugeValue, float64(snap.OpenConnections))
	ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(snap.InUse))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(snap.IdleConnections))
	ch <- prometheus.MustNewConstMetric(c.maxOpen, prometheus.GaugeValue, float64(snap.MaxOpenConnections))
	ch <- prometheus.MustNewConstMetric(c.waitCount, prometheus.CounterValue, float64(snap.WaitCount))
	ch <- prometheus.MustNewConstMetric(c.waitTime, prometheus.CounterValue, snap.WaitDuration.Seconds())

	if snap.MaxOpenConnections > 0 && float64(snap.InUse) > float64(snap.MaxOpenConnections)*poolExhaustionRatio {
		c.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     snap.InUse,
			"max_open":   snap.MaxOpenConnections,
			"idle":       snap.IdleConnections,
			"wait_count": snap.WaitCount,
			"wait_time":  snap.WaitDuration.String(),
		})
	}
}

// HealthChecker checks database connectivity
type HealthChecker struct {
	db      *gorm.DB
	logger  coreport.Logger
	timeout time.Duration
}

// NewHealthChecker creates a health checker whose ping gives up after timeout
func NewHealthChecker(db *gorm.DB, logger coreport.Logger, timeout time.Duration) *HealthChecker {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HealthChecker{
		db:      db,
		logger:  logger,
		timeout: timeout,
	}
}

// Check pings the database and returns an error if it is unreachable
func (h *HealthChecker) Check(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		h.logger.Error("Database ping failed", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	return nil
}
