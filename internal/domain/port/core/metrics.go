package core

// MetricsRecorder receives reconciliation counters
type MetricsRecorder interface {
	// RecordOutcome counts a finished callback by flow and resulting status
	RecordOutcome(flow string, status string, replayed bool)
	// RecordRefund counts a compensating refund attempt
	RecordRefund(success bool)
	// RecordReconciliationGap counts gateway effects that were not recorded locally
	RecordReconciliationGap(stage string)
}
