package metrics

import "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"

// NoopRecorder discards every metric
type NoopRecorder struct{}

// NewNoopRecorder creates a recorder for tests and metric-less deployments
func NewNoopRecorder() core.MetricsRecorder {
	return NoopRecorder{}
}

func (NoopRecorder) RecordOutcome(string, string, bool) {}

func (NoopRecorder) RecordRefund(bool) {}

func (NoopRecorder) RecordReconciliationGap(string) {}
