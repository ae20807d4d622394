package dto

import "time"

// StartPaymentRequest represents the API request for starting a payment
type StartPaymentRequest struct {
	CartID int64 `json:"cartId" binding:"required,gt=0"`
}

// StartPaymentResponse tells the shop where to send the shopper
type StartPaymentResponse struct {
	Token    string `json:"token"`
	URL      string `json:"url"`
	BuyOrder string `json:"buyOrder"`
	Product  string `json:"product"`
	Amount   string `json:"amount"`
}

// TransactionResponse represents a stored transaction record
type TransactionResponse struct {
	ID           uint64    `json:"id"`
	Token        string    `json:"token"`
	BuyOrder     string    `json:"buyOrder"`
	SessionID    string    `json:"sessionId"`
	CartID       int64     `json:"cartId"`
	OrderID      *int64    `json:"orderId,omitempty"`
	Amount       string    `json:"amount"`
	Status       string    `json:"status"`
	ResponseCode *int      `json:"responseCode,omitempty"`
	CardNumber   *string   `json:"cardNumber,omitempty"`
	VCI          *string   `json:"vci,omitempty"`
	CommerceCode string    `json:"commerceCode"`
	Environment  string    `json:"environment"`
	Product      string    `json:"product"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
