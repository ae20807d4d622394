package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Transaction represents the database model for gateway transactions
type Transaction struct {
	ID                 uint64          `gorm:"primaryKey;autoIncrement"`
	Token              string          `gorm:"uniqueIndex;not null;size:128"`
	BuyOrder           string          `gorm:"uniqueIndex;not null;size:64"`
	SessionID          string          `gorm:"not null;size:64"`
	CartID             int64           `gorm:"not null;index"`
	OrderID            *int64          `gorm:"index"`
	Amount             decimal.Decimal `gorm:"type:numeric(20,0);not null"`
	Status             string          `gorm:"not null;size:32;index"`
	ResponseCode       *int
	CardNumber         *string `gorm:"size:32"`
	VCI                *string `gorm:"size:16"`
	CommerceCode       string  `gorm:"not null;size:32"`
	Environment        string  `gorm:"not null;size:16"`
	Product            string  `gorm:"not null;size:16"`
	RawGatewayResponse datatypes.JSON
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
	Version            int64     `gorm:"not null;default:1"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "webpay_transactions"
}
