package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
)

// Result labels of webpay_db_operation_duration_seconds
const (
	resultOK       = "ok"
	resultNotFound = "not_found"
	resultConflict = "conflict"
	resultError    = "error"
)

// MetricsCollector times transaction store operations. Slow statements are
// logged by the GORM logger; this only feeds the histogram.
type MetricsCollector struct {
	timeProvider coreport.TimeProvider
	duration     *prometheus.HistogramVec
}

// NewMetricsCollector registers the operation histogram on reg, or on the
// default registry when reg is nil. Registering twice reuses the first histogram.
func NewMetricsCollector(timeProvider coreport.TimeProvider, reg prometheus.Registerer) *MetricsCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "webpay",
		Subsystem: "db",
		Name:      "operation_duration_seconds",
		Help:      "Transaction store operation latency by operation and result.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"operation", "result"})

	if err := reg.Register(duration); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			panic(fmt.Errorf("register store histogram: %w", err))
		}
		if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
			duration = existing
		}
	}

	return &MetricsCollector{timeProvider: timeProvider, duration: duration}
}

// MeasureQuery runs fn and observes its latency under operation
func (c *MetricsCollector) MeasureQuery(_ context.Context, operation string, fn func() (int64, error)) (int64, error) {
	start := c.timeProvider.Now()
	rows, err := fn()
	c.duration.WithLabelValues(operation, resultLabel(err)).Observe(c.timeProvider.Since(start).Seconds())
	return rows, err
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errs.IsNotFoundError(err), errors.Is(err, gorm.ErrRecordNotFound):
		return resultNotFound
	case errs.IsConcurrentModificationError(err), errs.IsDuplicateTransactionError(err),
		errors.Is(err, gorm.ErrDuplicatedKey):
		return resultConflict
	default:
		return resultError
	}
}
