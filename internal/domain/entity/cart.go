package entity

import "github.com/shopspring/decimal"

// Cart is the commerce store's cart as seen by the payment flow
type Cart struct {
	ID         int64
	CustomerID int64
	CurrencyID int64
	Customer   *Customer
	OrderID    *int64
}

// CartTotal splits the authoritative order total into product and shipping parts
type CartTotal struct {
	Products decimal.Decimal
	Shipping decimal.Decimal
}

// Total returns products plus shipping
func (t CartTotal) Total() decimal.Decimal {
	return t.Products.Add(t.Shipping)
}

// HasShipping reports whether a separate shipping leg is needed
func (t CartTotal) HasShipping() bool {
	return t.Shipping.IsPositive()
}

// Customer is the cart owner
type Customer struct {
	ID        int64
	SecureKey string
	Email     string
}

// PaymentMetadata is attached to the order when it is created
type PaymentMetadata struct {
	ModuleName string
	Message    string
	Token      string
}

// FulfillmentRequest asks the commerce store to turn a paid cart into an order
type FulfillmentRequest struct {
	CartID             int64
	StatusAfterPayment string
	Amount             decimal.Decimal
	Metadata           PaymentMetadata
}

// OrderPaymentDetails is the card metadata stored on the order payment
type OrderPaymentDetails struct {
	CardNumberMasked  string
	AuthorizationCode string
	TransactionID     string
}
