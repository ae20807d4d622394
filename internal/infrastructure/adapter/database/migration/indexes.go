package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
)

// IndexManager creates the indexes AutoMigrate cannot express
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

func (m *IndexManager) isPostgres() bool {
	return m.db.Dialector.Name() == "postgres"
}

// CreateIndexes creates partial and composite indexes. Partial indexes work on
// both PostgreSQL and SQLite.
func (m *IndexManager) CreateIndexes(ctx context.Context) error {
	m.logger.Info("Creating transaction indexes", nil)
	db := m.db.WithContext(ctx)

	// At most one approved transaction per cart
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_webpay_transactions_approved_cart
		ON webpay_transactions (cart_id)
		WHERE status = 'APPROVED'
	`).Error; err != nil {
		m.logger.Error("Failed to create approved cart index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Operators list stuck INITIALIZED records by age
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_webpay_transactions_pending
		ON webpay_transactions (created_at)
		WHERE status = 'INITIALIZED'
	`).Error; err != nil {
		m.logger.Error("Failed to create pending transactions index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if m.isPostgres() {
		if err := db.Exec(`
			CREATE INDEX IF NOT EXISTS idx_webpay_transactions_created_at_brin
			ON webpay_transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)
		`).Error; err != nil {
			m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Transaction indexes created successfully", nil)
	return nil
}

// ApplyPerformanceTweaks applies PostgreSQL storage settings. Failures are logged only.
func (m *IndexManager) ApplyPerformanceTweaks(ctx context.Context) error {
	if !m.isPostgres() {
		return nil
	}
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Rows are updated in place once or twice after insert
	if err := m.db.WithContext(ctx).Exec(`
		ALTER TABLE webpay_transactions SET (fillfactor = 85)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for webpay_transactions", map[string]any{
			"error": err.Error(),
		})
	}

	return nil
}
