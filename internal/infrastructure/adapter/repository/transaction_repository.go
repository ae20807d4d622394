package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/model"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	metrics         *database.MetricsCollector
	errorClassifier *ErrorClassifier
	errorMapper     *database.ErrorMapper
	retryConfig     database.RetryConfig
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger, metrics *database.MetricsCollector) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		metrics:         metrics,
		errorClassifier: NewErrorClassifier(),
		errorMapper:     database.NewErrorMapper(),
		retryConfig:     database.DefaultRetryConfig(),
	}
}

// WithRetryConfig overrides how transient storage errors are retried
func (r *TransactionRepository) WithRetryConfig(config database.RetryConfig) *TransactionRepository {
	r.retryConfig = config
	return r
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	version := transaction.Version
	if version == 0 {
		version = 1
	}
	var raw datatypes.JSON
	if len(transaction.RawGatewayResponse) > 0 {
		raw = datatypes.JSON(transaction.RawGatewayResponse)
	}
	return model.Transaction{
		ID:                 transaction.ID,
		Token:              transaction.Token,
		BuyOrder:           transaction.BuyOrder,
		SessionID:          transaction.SessionID,
		CartID:             transaction.CartID,
		OrderID:            transaction.OrderID,
		Amount:             transaction.Amount(),
		Status:             string(transaction.Status),
		ResponseCode:       transaction.ResponseCode,
		CardNumber:         transaction.CardNumberMasked,
		VCI:                transaction.VCI,
		CommerceCode:       transaction.CommerceCode,
		Environment:        string(transaction.Environment),
		Product:            string(transaction.Product),
		RawGatewayResponse: raw,
		CreatedAt:          transaction.CreatedAt,
		UpdatedAt:          transaction.UpdatedAt,
		Version:            version,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	var raw []byte
	if len(m.RawGatewayResponse) > 0 {
		raw = []byte(m.RawGatewayResponse)
	}
	return entity.RestoreTransaction(entity.Transaction{
		ID:                 m.ID,
		Token:              m.Token,
		BuyOrder:           m.BuyOrder,
		SessionID:          m.SessionID,
		CartID:             m.CartID,
		OrderID:            m.OrderID,
		Status:             entity.TransactionStatus(m.Status),
		ResponseCode:       m.ResponseCode,
		CardNumberMasked:   m.CardNumber,
		VCI:                m.VCI,
		CommerceCode:       m.CommerceCode,
		Environment:        entity.Environment(m.Environment),
		Product:            entity.Product(m.Product),
		RawGatewayResponse: raw,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		Version:            m.Version,
	}, m.Amount)
}

// Create saves a new INITIALIZED record
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"token":     transaction.Token,
		"buy_order": transaction.BuyOrder,
		"cart_id":   transaction.CartID,
	})

	transactionModel := r.entityToModel(transaction)

	err := r.withRetry(ctx, "create", func() (int64, error) {
		result := r.db.WithContext(ctx).Create(&transactionModel)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Warn("Duplicate transaction detected", map[string]any{
				"token":     transaction.Token,
				"buy_order": transaction.BuyOrder,
				"key":       r.errorClassifier.ViolatedKey(err),
			})
			return errs.ErrDuplicateTransaction
		}

		r.logger.Error("Failed to create transaction", map[string]any{
			"token":     transaction.Token,
			"buy_order": transaction.BuyOrder,
			"error":     err.Error(),
		})
		return r.errorMapper.MapError(err, "create")
	}

	transaction.ID = transactionModel.ID
	transaction.Version = transactionModel.Version

	r.logger.Info("Transaction created successfully", map[string]any{
		"id":        transaction.ID,
		"token":     transaction.Token,
		"buy_order": transaction.BuyOrder,
	})
	return nil
}

// FindByToken retrieves a record by its gateway token
func (r *TransactionRepository) FindByToken(ctx context.Context, token string) (*entity.Transaction, error) {
	return r.findOne(ctx, "find_by_token", "token = ?", token)
}

// FindByBuyOrder retrieves a record by its merchant buy order
func (r *TransactionRepository) FindByBuyOrder(ctx context.Context, buyOrder string) (*entity.Transaction, error) {
	return r.findOne(ctx, "find_by_buy_order", "buy_order = ?", buyOrder)
}

// FindApprovedForCart returns the oldest APPROVED record for the cart other than excludeID
func (r *TransactionRepository) FindApprovedForCart(ctx context.Context, cartID int64, excludeID uint64) (*entity.Transaction, error) {
	return r.findOne(ctx, "find_approved_for_cart",
		"cart_id = ? AND status = ? AND id <> ?", cartID, string(entity.StatusApproved), excludeID)
}

func (r *TransactionRepository) findOne(ctx context.Context, operation string, query string, args ...any) (*entity.Transaction, error) {
	var transactionModel model.Transaction

	err := r.withRetry(ctx, operation, func() (int64, error) {
		result := r.db.WithContext(ctx).Where(query, args...).Order("id asc").First(&transactionModel)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debug("Transaction not found", map[string]any{
				"operation": operation,
				"args":      fmt.Sprint(args...),
			})
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
		return nil, r.errorMapper.MapError(err, operation)
	}

	return r.modelToEntity(&transactionModel), nil
}

// Save writes every mutable field when the stored version still matches and
// bumps the version on success
func (r *TransactionRepository) Save(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Saving transaction", map[string]any{
		"id":      transaction.ID,
		"token":   transaction.Token,
		"status":  string(transaction.Status),
		"version": transaction.Version,
	})

	transactionModel := r.entityToModel(transaction)
	updates := map[string]any{
		"order_id":             transactionModel.OrderID,
		"status":               transactionModel.Status,
		"response_code":        transactionModel.ResponseCode,
		"card_number":          transactionModel.CardNumber,
		"vci":                  transactionModel.VCI,
		"raw_gateway_response": transactionModel.RawGatewayResponse,
		"updated_at":           transactionModel.UpdatedAt,
		"version":              gorm.Expr("version + 1"),
	}

	var rowsAffected int64
	err := r.withRetry(ctx, "save", func() (int64, error) {
		result := r.db.WithContext(ctx).Model(&model.Transaction{}).
			Where("id = ? AND version = ?", transaction.ID, transaction.Version).
			Updates(updates)
		rowsAffected = result.RowsAffected
		return result.RowsAffected, result.Error
	})
	if err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
			// Only the approved-cart index can fire on an update
			r.logger.Warn("Second approval for cart rejected by storage", map[string]any{
				"id":      transaction.ID,
				"cart_id": transaction.CartID,
				"key":     r.errorClassifier.ViolatedKey(err),
			})
			return errs.ErrDuplicateTransaction
		}
		r.logger.Error("Failed to save transaction", map[string]any{
			"id":     transaction.ID,
			"token":  transaction.Token,
			"status": string(transaction.Status),
			"error":  err.Error(),
		})
		return r.errorMapper.MapError(err, "save")
	}

	if rowsAffected == 0 {
		return r.saveConflict(ctx, transaction)
	}

	transaction.Version++

	r.logger.Debug("Transaction saved successfully", map[string]any{
		"id":      transaction.ID,
		"status":  string(transaction.Status),
		"version": transaction.Version,
	})
	return nil
}

// saveConflict tells a missing record apart from a stale version
func (r *TransactionRepository) saveConflict(ctx context.Context, transaction *entity.Transaction) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", transaction.ID).
		Count(&count).Error; err != nil {
		return r.errorMapper.MapError(err, "save")
	}

	if count == 0 {
		r.logger.Warn("Transaction not found during save", map[string]any{
			"id":    transaction.ID,
			"token": transaction.Token,
		})
		return errs.ErrTransactionNotFound
	}

	r.logger.Warn("Concurrent transaction modification detected", map[string]any{
		"id":      transaction.ID,
		"token":   transaction.Token,
		"version": transaction.Version,
	})
	return errs.ErrConcurrentModification
}

func (r *TransactionRepository) withRetry(ctx context.Context, operation string, fn func() (int64, error)) error {
	return database.RetryOnTransientError(ctx, r.retryConfig, operation, func() error {
		if r.metrics == nil {
			_, err := fn()
			return err
		}
		_, err := r.metrics.MeasureQuery(ctx, operation, fn)
		return err
	}, r.errorMapper, r.logger)
}
