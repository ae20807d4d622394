package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/metrics"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := metrics.NewPrometheusRecorder("webpay", reg)

	recorder.RecordOutcome("normal", "APPROVED", false)
	recorder.RecordOutcome("normal", "APPROVED", true)
	recorder.RecordOutcome("normal", "APPROVED", true)
	recorder.RecordRefund(true)
	recorder.RecordRefund(false)
	recorder.RecordReconciliationGap("save_approved")

	require.Equal(t, 1.0, testutil.ToFloat64(recorder.Outcomes.WithLabelValues("normal", "APPROVED", "false")))
	require.Equal(t, 2.0, testutil.ToFloat64(recorder.Outcomes.WithLabelValues("normal", "APPROVED", "true")))
	require.Equal(t, 1.0, testutil.ToFloat64(recorder.Refunds.WithLabelValues("ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(recorder.Refunds.WithLabelValues("failed")))
	require.Equal(t, 1.0, testutil.ToFloat64(recorder.Gaps.WithLabelValues("save_approved")))
}

func TestPrometheusRecorder_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := metrics.NewPrometheusRecorder("webpay", reg)
	second := metrics.NewPrometheusRecorder("webpay", reg)

	first.RecordReconciliationGap("fulfill_order")
	second.RecordReconciliationGap("fulfill_order")

	require.Equal(t, 2.0, testutil.ToFloat64(first.Gaps.WithLabelValues("fulfill_order")))
}
