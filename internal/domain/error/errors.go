package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidFlow          = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidCart          = 4003
	CodeDuplicateTransaction = 4004
	CodeIntegrityMismatch    = 4005
	CodeInvalidTransition    = 4006
	CodeInvalidRequest       = 4007
	CodeTransactionNotFound  = 4040
	CodeConcurrentUpdate     = 4090

	// 5xxx - Server errors
	CodeInternalServer       = 5000
	CodeGatewayRequest       = 5020
	CodeCommerceRequest      = 5021
	CodeStorage              = 5030
	CodeReconciliationGap    = 5031
	CodeModuleInactive       = 5032
	CodePartialAuthorization = 5040
)

// Base error types
var (
	// ErrClassification is returned when a callback payload does not match any known flow
	ErrClassification = errors.New("unrecognized callback flow")

	// ErrIntegrityMismatch is returned when the recomputed cart total differs from the stored amount
	ErrIntegrityMismatch = errors.New("cart total does not match transaction amount")

	// ErrPartialAuthorization is returned when only some legs of a commit were authorized
	ErrPartialAuthorization = errors.New("commit was not authorized on every leg")

	// ErrGatewayRequest is returned when a call to the payment gateway fails
	ErrGatewayRequest = errors.New("payment gateway request failed")

	// ErrStorage is returned when the transaction record store fails
	ErrStorage = errors.New("transaction storage failure")

	// ErrConcurrentModification is returned when a record changed between load and save
	ErrConcurrentModification = errors.New("transaction was modified concurrently")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateTransaction is returned when a transaction with the same token or buy order already exists
	ErrDuplicateTransaction = errors.New("transaction with this token or buy order already exists")

	// ErrInvalidTransition is returned when a terminal transaction is asked to change status
	ErrInvalidTransition = errors.New("invalid transaction status transition")

	// ErrInvalidAmount is returned when an amount is missing, negative or malformed
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidCart is returned when a cart cannot be paid (empty, zero total, unknown)
	ErrInvalidCart = errors.New("invalid cart")

	// ErrModuleInactive is returned when payment callbacks are disabled by configuration
	ErrModuleInactive = errors.New("payment module is not active")

	// ErrCommerceRequest is returned when the commerce store cannot be reached or answers with an error
	ErrCommerceRequest = errors.New("commerce store request failed")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrClassification):
		return CodeInvalidFlow
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidCart):
		return CodeInvalidCart
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrIntegrityMismatch):
		return CodeIntegrityMismatch
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrConcurrentModification):
		return CodeConcurrentUpdate
	case errors.Is(err, ErrReconciliationGap):
		return CodeReconciliationGap
	case errors.Is(err, ErrGatewayRequest):
		return CodeGatewayRequest
	case errors.Is(err, ErrStorage), errors.Is(err, ErrDatabaseConnection):
		return CodeStorage
	case errors.Is(err, ErrCommerceRequest):
		return CodeCommerceRequest
	case errors.Is(err, ErrModuleInactive):
		return CodeModuleInactive
	case errors.Is(err, ErrPartialAuthorization):
		return CodePartialAuthorization
	default:
		return CodeInternalServer
	}
}

// GatewayRequestError describes a failed commit, refund or create call
type GatewayRequestError struct {
	Operation string
	Token     string
	BuyOrder  string
	Err       error
}

// Error implements the error interface for GatewayRequestError
func (e *GatewayRequestError) Error() string {
	return fmt.Sprintf("gateway %s failed for token %s (buy order: %s): %v",
		e.Operation, e.Token, e.BuyOrder, e.Err)
}

// Unwrap returns the underlying error
func (e *GatewayRequestError) Unwrap() error {
	return e.Err
}

// Is reports ErrGatewayRequest so callers can match any gateway failure
func (e *GatewayRequestError) Is(target error) bool {
	return target == ErrGatewayRequest
}

// LogFields returns a map of fields for structured logging
func (e *GatewayRequestError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "gateway_request",
		"operation":  e.Operation,
		"token":      e.Token,
		"buy_order":  e.BuyOrder,
		"error_code": CodeGatewayRequest,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewGatewayRequestError wraps a transport or protocol failure from the gateway
func NewGatewayRequestError(operation, token, buyOrder string, err error) error {
	return &GatewayRequestError{
		Operation: operation,
		Token:     token,
		BuyOrder:  buyOrder,
		Err:       err,
	}
}

// IntegrityMismatchError carries both sides of a failed amount comparison
type IntegrityMismatchError struct {
	Token    string
	CartID   int64
	Expected string
	Actual   string
}

// Error implements the error interface
func (e *IntegrityMismatchError) Error() string {
	return fmt.Sprintf("cart %d total %s does not match stored amount %s (token: %s)",
		e.CartID, e.Actual, e.Expected, e.Token)
}

// Is checks if the target error is an ErrIntegrityMismatch
func (e *IntegrityMismatchError) Is(target error) bool {
	return target == ErrIntegrityMismatch
}

// LogFields returns a map of fields for structured logging
func (e *IntegrityMismatchError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "integrity_mismatch",
		"token":           e.Token,
		"cart_id":         e.CartID,
		"expected_amount": e.Expected,
		"actual_amount":   e.Actual,
		"error_code":      CodeIntegrityMismatch,
	}
}

// ErrReconciliationGap marks a gateway-side effect that local storage failed to record
var ErrReconciliationGap = errors.New("reconciliation gap: gateway result not recorded")

// ReconciliationGapError is raised when funds may have moved at the provider but
// the local record does not reflect it. These always need manual follow-up.
type ReconciliationGapError struct {
	Token    string
	BuyOrder string
	Amount   string
	Status   string
	Stage    string
	Err      error
}

// Error implements the error interface
func (e *ReconciliationGapError) Error() string {
	return fmt.Sprintf("reconciliation gap at %s for token %s (buy order: %s, amount: %s, intended status: %s): %v",
		e.Stage, e.Token, e.BuyOrder, e.Amount, e.Status, e.Err)
}

// Unwrap returns the underlying error
func (e *ReconciliationGapError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrReconciliationGap
func (e *ReconciliationGapError) Is(target error) bool {
	return target == ErrReconciliationGap
}

// LogFields returns a map of fields for structured logging
func (e *ReconciliationGapError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":      "reconciliation_gap",
		"token":           e.Token,
		"buy_order":       e.BuyOrder,
		"amount":          e.Amount,
		"intended_status": e.Status,
		"stage":           e.Stage,
		"error_code":      CodeReconciliationGap,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewReconciliationGapError creates a new reconciliation gap error
func NewReconciliationGapError(token, buyOrder, amount, status, stage string, err error) error {
	return &ReconciliationGapError{
		Token:    token,
		BuyOrder: buyOrder,
		Amount:   amount,
		Status:   status,
		Stage:    stage,
		Err:      err,
	}
}

// LogFielder is implemented by errors that carry structured logging context
type LogFielder interface {
	LogFields() map[string]any
}

// FieldsOf returns structured fields for err, merging any LogFields it carries
func FieldsOf(err error) map[string]any {
	if err == nil {
		return map[string]any{}
	}
	var lf LogFielder
	if errors.As(err, &lf) {
		fields := lf.LogFields()
		if _, ok := fields["error"]; !ok {
			fields["error"] = err.Error()
		}
		return fields
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}

// IsNotFoundError checks if the error is a transaction not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound)
}

// IsDuplicateTransactionError checks if the error is a duplicate transaction error
func IsDuplicateTransactionError(err error) bool {
	return errors.Is(err, ErrDuplicateTransaction)
}

// IsConcurrentModificationError checks if the error is an optimistic lock conflict
func IsConcurrentModificationError(err error) bool {
	return errors.Is(err, ErrConcurrentModification)
}

// IsReconciliationGap checks if the error flags a gateway/storage divergence
func IsReconciliationGap(err error) bool {
	return errors.Is(err, ErrReconciliationGap)
}
