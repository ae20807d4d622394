package repository

import (
	"strings"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// Unique keys of the webpay_transactions table
const (
	KeyToken        = "token"
	KeyBuyOrder     = "buy_order"
	KeyApprovedCart = "approved_cart"
)

// ErrorClassifier classifies driver errors by message. Postgres and SQLite
// word the same failure differently, so both spellings are matched.
type ErrorClassifier struct {
	duplicate  []string
	transient  []string
	lock       []string
	connection []string
	constraint []string
}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{
		duplicate:  []string{"duplicate key", "unique constraint", "duplicated key"},
		transient:  []string{"connection reset", "connection refused", "timeout", "eof", "server closed", "broken pipe", "database is locked"},
		lock:       []string{"deadlock", "lock wait timeout", "could not serialize access", "serialization failure"},
		connection: []string{"connection", "dial", "network"},
		constraint: []string{"constraint", "violates", "foreign key", "not null"},
	}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsConstraintError(err):
		return ConstraintError
	default:
		return ""
	}
}

// IsDuplicateKeyError checks if the error is a unique index violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	return matches(err, c.duplicate)
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	return matches(err, c.transient)
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	return matches(err, c.lock)
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	return matches(err, c.connection) || c.IsTransientError(err)
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	return matches(err, c.constraint) || c.IsDuplicateKeyError(err)
}

// ViolatedKey names the unique key a duplicate error hit, or "" when unknown.
// Postgres reports the index name, SQLite the column list.
func (c *ErrorClassifier) ViolatedKey(err error) string {
	if !c.IsDuplicateKeyError(err) {
		return ""
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "approved_cart"),
		strings.Contains(msg, "webpay_transactions.cart_id"):
		return KeyApprovedCart
	case strings.Contains(msg, "buy_order"):
		return KeyBuyOrder
	case strings.Contains(msg, "token"):
		return KeyToken
	default:
		return ""
	}
}

func matches(err error, needles []string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, needle := range needles {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}
