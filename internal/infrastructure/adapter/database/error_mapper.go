package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
)

// ErrorMapper turns driver errors into the store's error taxonomy and decides
// which of them are worth another attempt.
type ErrorMapper struct {
	connection []string
	retryable  []string
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{
		connection: []string{"connection refused", "no connection", "connection reset", "bad connection", "server closed", "broken pipe"},
		retryable: []string{
			"deadlock", "could not serialize access", "serialization failure", "lock timeout",
			"too many connections", "database is locked", "i/o timeout", "eof",
		},
	}
}

// Retryable reports whether the same statement may succeed if run again.
// Context cancellation, not-found and unique violations never are.
func (m *ErrorMapper) Retryable(err error) bool {
	if err == nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, gorm.ErrDuplicatedKey) {
		return false
	}
	return m.isConnectionError(err) || containsAny(err, m.retryable)
}

// MapError maps a database error to a domain error. Unknown failures keep
// their message behind ErrStorage.
func (m *ErrorMapper) MapError(err error, operation string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainErr.ErrTransactionNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), containsAny(err, []string{"duplicate key", "unique constraint"}):
		return domainErr.ErrDuplicateTransaction
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %s: %w", domainErr.ErrStorage, operation, err)
	case m.isConnectionError(err):
		return fmt.Errorf("%w: %s: %w", domainErr.ErrStorage, operation, domainErr.ErrDatabaseConnection)
	default:
		return fmt.Errorf("%w: %s: %s", domainErr.ErrStorage, operation, err.Error())
	}
}

func (m *ErrorMapper) isConnectionError(err error) bool {
	return containsAny(err, m.connection)
}

func containsAny(err error, needles []string) bool {
	msg := strings.ToLower(err.Error())
	for _, needle := range needles {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}
