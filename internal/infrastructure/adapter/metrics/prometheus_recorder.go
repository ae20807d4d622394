package metrics

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
)

// PrometheusRecorder implements core.MetricsRecorder with Prometheus counters
type PrometheusRecorder struct {
	Outcomes *prometheus.CounterVec
	Refunds  *prometheus.CounterVec
	Gaps     *prometheus.CounterVec
}

var _ core.MetricsRecorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder creates and registers the reconciliation counters.
// A nil registerer uses the default Prometheus registry.
func NewPrometheusRecorder(namespace string, reg prometheus.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &PrometheusRecorder{
		Outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "callback_outcomes_total",
			Help:      "Processed payment callbacks by flow, resulting status and replay.",
		}, []string{"flow", "status", "replayed"}),
		Refunds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compensating_refunds_total",
			Help:      "Refunds issued for partially authorized commits by result.",
		}, []string{"result"}),
		Gaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliation_gaps_total",
			Help:      "Gateway effects that could not be recorded locally, by stage.",
		}, []string{"stage"}),
	}
	r.Outcomes = mustRegisterCounter(reg, r.Outcomes)
	r.Refunds = mustRegisterCounter(reg, r.Refunds)
	r.Gaps = mustRegisterCounter(reg, r.Gaps)
	return r
}

// RecordOutcome counts a finished callback
func (r *PrometheusRecorder) RecordOutcome(flow string, status string, replayed bool) {
	r.Outcomes.WithLabelValues(flow, status, strconv.FormatBool(replayed)).Inc()
}

// RecordRefund counts a compensating refund attempt
func (r *PrometheusRecorder) RecordRefund(success bool) {
	result := "failed"
	if success {
		result = "ok"
	}
	r.Refunds.WithLabelValues(result).Inc()
}

// RecordReconciliationGap counts an unrecorded gateway effect
func (r *PrometheusRecorder) RecordReconciliationGap(stage string) {
	r.Gaps.WithLabelValues(stage).Inc()
}

func mustRegisterCounter(reg prometheus.Registerer, counter *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(counter); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(fmt.Errorf("register counter: %w", err))
	}
	return counter
}
