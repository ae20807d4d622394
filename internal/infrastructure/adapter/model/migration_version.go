package model

import "time"

// MigrationVersion is one row per schema upgrade applied to the reconciler database
type MigrationVersion struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	Version         string    `gorm:"type:varchar(20);not null;index"`
	PreviousVersion string    `gorm:"type:varchar(20)"`
	Dialect         string    `gorm:"type:varchar(20);not null"`
	AppliedAt       time.Time `gorm:"not null"`
	Details         string    `gorm:"type:text"`
}

// TableName keeps the version table next to webpay_transactions
func (MigrationVersion) TableName() string {
	return "webpay_schema_versions"
}
