package webpay

// Wire types for the Webpay Plus REST API v1.2

type createRequest struct {
	BuyOrder  string          `json:"buy_order"`
	SessionID string          `json:"session_id"`
	Amount    int64           `json:"amount,omitempty"`
	ReturnURL string          `json:"return_url"`
	Details   []createDetails `json:"details,omitempty"`
}

type createDetails struct {
	Amount       int64  `json:"amount"`
	CommerceCode string `json:"commerce_code"`
	BuyOrder     string `json:"buy_order"`
}

type createResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

type cardDetail struct {
	CardNumber string `json:"card_number"`
}

type commitResponse struct {
	VCI               string         `json:"vci"`
	Amount            int64          `json:"amount"`
	Status            string         `json:"status"`
	BuyOrder          string         `json:"buy_order"`
	SessionID         string         `json:"session_id"`
	CardDetail        cardDetail     `json:"card_detail"`
	AccountingDate    string         `json:"accounting_date"`
	TransactionDate   string         `json:"transaction_date"`
	AuthorizationCode string         `json:"authorization_code"`
	PaymentTypeCode   string         `json:"payment_type_code"`
	ResponseCode      *int           `json:"response_code"`
	Details           []commitDetail `json:"details"`
}

type commitDetail struct {
	Amount            int64  `json:"amount"`
	Status            string `json:"status"`
	AuthorizationCode string `json:"authorization_code"`
	PaymentTypeCode   string `json:"payment_type_code"`
	ResponseCode      int    `json:"response_code"`
	CommerceCode      string `json:"commerce_code"`
	BuyOrder          string `json:"buy_order"`
}

type refundRequest struct {
	Amount       int64  `json:"amount"`
	BuyOrder     string `json:"buy_order,omitempty"`
	CommerceCode string `json:"commerce_code,omitempty"`
}

type refundResponse struct {
	Type              string  `json:"type"`
	AuthorizationCode string  `json:"authorization_code"`
	ResponseCode      int     `json:"response_code"`
	Balance           float64 `json:"balance"`
	NullifiedAmount   float64 `json:"nullified_amount"`
}

type errorResponse struct {
	ErrorMessage string `json:"error_message"`
}
