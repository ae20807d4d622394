package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places the gateway accepts.
// Amounts are charged in whole pesos.
const MaxDecimalPlaces = 0

// ParseAmount validates a textual amount and returns it as a decimal
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount cannot be negative", errs.ErrInvalidAmount)
	}
	if d.Exponent() < -MaxDecimalPlaces && !d.Equal(d.Truncate(MaxDecimalPlaces)) {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	return d.Truncate(MaxDecimalPlaces), nil
}

// GatewayAmount converts a decimal amount to the integer the gateway expects
func GatewayAmount(amount decimal.Decimal) int64 {
	return amount.Round(MaxDecimalPlaces).IntPart()
}

// FormatAmount renders an amount the way it is stored and logged
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}

// MaskCardNumber formats the last digits the gateway returns as a masked PAN.
// Input may already be masked ("XXXXXXXXXXXX6623") or only the last four digits.
func MaskCardNumber(cardNumber string) string {
	digits := make([]rune, 0, len(cardNumber))
	for _, r := range cardNumber {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return ""
	}
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return "**** **** **** " + string(digits)
}
