package migration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/model"
)

// CurrentSchemaVersion is the version of the last step in schemaSteps
const CurrentSchemaVersion = "1.1.0"

// schemaStep upgrades the schema to version
type schemaStep struct {
	version     string
	description string
	apply       func(ctx context.Context, m *MigrationManager) error
}

// schemaSteps are applied in order; a database at version X runs every step after X
var schemaSteps = []schemaStep{
	{
		version:     "1.0.0",
		description: "webpay transactions table",
		apply: func(ctx context.Context, m *MigrationManager) error {
			return m.db.WithContext(ctx).AutoMigrate(&model.Transaction{})
		},
	},
	{
		version:     "1.1.0",
		description: "lookup indexes and single approved transaction per cart",
		apply: func(ctx context.Context, m *MigrationManager) error {
			// AutoMigrate is re-run so columns added after 1.0.0 exist before indexing them
			if err := m.db.WithContext(ctx).AutoMigrate(&model.Transaction{}); err != nil {
				return err
			}
			return m.indexMgr.CreateIndexes(ctx)
		},
	},
}

// MigrationManager brings the schema to CurrentSchemaVersion and records each upgrade
// in the webpay_schema_versions table
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	indexMgr     *IndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		indexMgr:     NewIndexManager(db, logger),
	}
}

// MigrateAll applies the pending schema steps. Running it on an up to date
// database only re-applies the dialect tweaks.
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("create schema version table: %w", err)
	}

	current, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	pending, err := pendingSteps(current)
	if err != nil {
		return err
	}
	log := m.logger.With(map[string]any{
		"from_version": current,
		"to_version":   CurrentSchemaVersion,
	})
	if len(pending) == 0 {
		log.Debug("Schema is up to date", nil)
		return m.indexMgr.ApplyPerformanceTweaks(ctx)
	}

	log.Info("Migrating schema", map[string]any{"steps": len(pending)})

	applied := make([]string, 0, len(pending))
	for _, step := range pending {
		if err := step.apply(ctx, m); err != nil {
			log.Error("Schema step failed", map[string]any{
				"step":  step.version,
				"error": err.Error(),
			})
			return fmt.Errorf("schema step %s (%s): %w", step.version, step.description, err)
		}
		applied = append(applied, step.version+" "+step.description)
	}

	if err := m.indexMgr.ApplyPerformanceTweaks(ctx); err != nil {
		return err
	}
	if err := m.recordVersion(ctx, current, strings.Join(applied, "; ")); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	log.Info("Schema migrated", nil)
	return nil
}

// GetCurrentVersion returns the last recorded schema version, or "" for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var latest model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").First(&latest).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", nil
	case err != nil:
		return "", err
	}
	return latest.Version, nil
}

func (m *MigrationManager) recordVersion(ctx context.Context, previous, details string) error {
	var appliedAt time.Time
	if m.timeProvider != nil {
		appliedAt = m.timeProvider.Now()
	} else {
		appliedAt = time.Now()
	}

	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:         CurrentSchemaVersion,
		PreviousVersion: previous,
		Dialect:         m.db.Dialector.Name(),
		AppliedAt:       appliedAt,
		Details:         details,
	}).Error
}

func pendingSteps(current string) ([]schemaStep, error) {
	if current == "" {
		return schemaSteps, nil
	}
	for i, step := range schemaSteps {
		if step.version == current {
			return schemaSteps[i+1:], nil
		}
	}
	return nil, fmt.Errorf("unknown schema version %q", current)
}
