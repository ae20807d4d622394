package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrClassification.Error() != "unrecognized callback flow" {
		t.Errorf("ErrClassification has unexpected message: %s", ErrClassification.Error())
	}
	if ErrTransactionNotFound.Error() != "transaction not found" {
		t.Errorf("ErrTransactionNotFound has unexpected message: %s", ErrTransactionNotFound.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Classification", ErrClassification, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"DuplicateTransaction", ErrDuplicateTransaction, 4004},
		{"IntegrityMismatch", ErrIntegrityMismatch, 4005},
		{"TransactionNotFound", ErrTransactionNotFound, 4040},
		{"ConcurrentModification", ErrConcurrentModification, 4090},
		{"Storage", ErrStorage, 5030},
		{"ReconciliationGap", ErrReconciliationGap, 5031},
		{"GatewayRequest", NewGatewayRequestError("commit", "tok", "bo", errors.New("boom")), 5020},
		{"InvalidRequest", fmt.Errorf("%w: cartId is required", ErrInvalidRequest), 4007},
		{"CommerceRequest", ErrCommerceRequest, 5021},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrTransactionNotFound), 4040},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestReconciliationGapError(t *testing.T) {
	storageErr := fmt.Errorf("%w: connection reset", ErrStorage)
	err := NewReconciliationGapError("tok-1", "ps:123:45", "10000", "APPROVED", "save_after_commit", storageErr)

	if !errors.Is(err, ErrReconciliationGap) {
		t.Error("reconciliation gap should match ErrReconciliationGap")
	}
	if !errors.Is(err, ErrStorage) {
		t.Error("reconciliation gap should unwrap to the storage error")
	}
	if ErrorCode(err) != CodeReconciliationGap {
		t.Errorf("ErrorCode = %d, want %d", ErrorCode(err), CodeReconciliationGap)
	}

	var gap *ReconciliationGapError
	if !errors.As(err, &gap) {
		t.Fatal("errors.As should find *ReconciliationGapError")
	}
	fields := gap.LogFields()
	if fields["buy_order"] != "ps:123:45" || fields["stage"] != "save_after_commit" {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestGatewayRequestError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewGatewayRequestError("refund", "tok-2", "ps:1:2-PRD", cause)

	if !errors.Is(err, ErrGatewayRequest) {
		t.Error("gateway error should match ErrGatewayRequest")
	}
	if !errors.Is(err, cause) {
		t.Error("gateway error should unwrap to its cause")
	}
	expected := "gateway refund failed for token tok-2 (buy order: ps:1:2-PRD): connection refused"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
}

func TestFieldsOf(t *testing.T) {
	t.Run("typed error", func(t *testing.T) {
		err := fmt.Errorf("commit: %w", &IntegrityMismatchError{Token: "t", CartID: 45, Expected: "10000", Actual: "12000"})
		fields := FieldsOf(err)
		if fields["error_type"] != "integrity_mismatch" {
			t.Errorf("error_type = %v", fields["error_type"])
		}
		if fields["error"] != err.Error() {
			t.Errorf("error = %v, want %s", fields["error"], err.Error())
		}
	})

	t.Run("plain error", func(t *testing.T) {
		fields := FieldsOf(ErrStorage)
		if fields["error_code"] != CodeStorage {
			t.Errorf("error_code = %v", fields["error_code"])
		}
	})

	t.Run("nil", func(t *testing.T) {
		if len(FieldsOf(nil)) != 0 {
			t.Error("expected empty fields for nil error")
		}
	})
}

func TestErrorPredicates(t *testing.T) {
	if !IsNotFoundError(fmt.Errorf("load: %w", ErrTransactionNotFound)) {
		t.Error("IsNotFoundError should see wrapped not-found")
	}
	if !IsConcurrentModificationError(ErrConcurrentModification) {
		t.Error("IsConcurrentModificationError should match sentinel")
	}
	if IsDuplicateTransactionError(ErrStorage) {
		t.Error("storage error is not a duplicate")
	}
}
