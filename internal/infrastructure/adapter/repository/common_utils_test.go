package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier_Classify(t *testing.T) {
	classifier := NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ""},
		{"postgres duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "idx_webpay_transactions_token"`), DuplicateKeyError},
		{"sqlite duplicate", errors.New("UNIQUE constraint failed: webpay_transactions.token"), DuplicateKeyError},
		{"deadlock", errors.New("ERROR: deadlock detected"), LockError},
		{"reset", errors.New("read tcp: connection reset by peer"), TransientError},
		{"sqlite busy", errors.New("database is locked"), TransientError},
		{"dial", errors.New("dial tcp 127.0.0.1:5432"), ConnectionError},
		{"not null", errors.New("NOT NULL constraint failed: webpay_transactions.token"), ConstraintError},
		{"other", errors.New("syntax error"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestErrorClassifier_ViolatedKey(t *testing.T) {
	classifier := NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"postgres token", errors.New(`duplicate key value violates unique constraint "idx_webpay_transactions_token"`), KeyToken},
		{"postgres buy order", errors.New(`duplicate key value violates unique constraint "idx_webpay_transactions_buy_order"`), KeyBuyOrder},
		{"postgres approved cart", errors.New(`duplicate key value violates unique constraint "idx_webpay_transactions_approved_cart"`), KeyApprovedCart},
		{"sqlite buy order", errors.New("UNIQUE constraint failed: webpay_transactions.buy_order"), KeyBuyOrder},
		{"sqlite approved cart", errors.New("UNIQUE constraint failed: webpay_transactions.cart_id"), KeyApprovedCart},
		{"not a duplicate", errors.New("connection refused"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.ViolatedKey(tt.err))
		})
	}
}
