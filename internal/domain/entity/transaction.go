package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
	tport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
)

// TransactionStatus defines possible status values for a transaction record
type TransactionStatus string

// TransactionStatus constants
const (
	StatusInitialized   TransactionStatus = "INITIALIZED"
	StatusApproved      TransactionStatus = "APPROVED"
	StatusFailed        TransactionStatus = "FAILED"
	StatusAbortedByUser TransactionStatus = "ABORTED_BY_USER"
	StatusTimeout       TransactionStatus = "TIMEOUT"
	StatusError         TransactionStatus = "ERROR"
)

// IsTerminal reports whether no further transitions are allowed from s
func (s TransactionStatus) IsTerminal() bool {
	return s != StatusInitialized
}

// IsValid reports whether s is one of the known statuses
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusInitialized, StatusApproved, StatusFailed, StatusAbortedByUser, StatusTimeout, StatusError:
		return true
	}
	return false
}

// Environment is the gateway environment a transaction was created against
type Environment string

// Environment constants
const (
	EnvironmentIntegration Environment = "integration"
	EnvironmentProduction  Environment = "production"
)

// Product identifies single-commerce or multi-leg ("mall") transactions
type Product string

// Product constants
const (
	ProductWebpayPlus Product = "webpay_plus"
	ProductWebpayMall Product = "webpay_mall"
)

// Transaction is the persisted record of one hosted-redirect payment attempt
type Transaction struct {
	ID                 uint64
	Token              string
	BuyOrder           string
	SessionID          string
	CartID             int64
	OrderID            *int64
	amount             decimal.Decimal
	Status             TransactionStatus
	ResponseCode       *int
	CardNumberMasked   *string
	VCI                *string
	CommerceCode       string
	Environment        Environment
	Product            Product
	RawGatewayResponse []byte
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Version            int64
}

// TransactionOption customises a transaction at construction time
type TransactionOption func(*Transaction)

// WithProduct sets the gateway product used for the transaction
func WithProduct(product Product) TransactionOption {
	return func(t *Transaction) {
		t.Product = product
	}
}

// WithEnvironment sets the gateway environment
func WithEnvironment(env Environment) TransactionOption {
	return func(t *Transaction) {
		t.Environment = env
	}
}

// NewTransaction creates an INITIALIZED record for a freshly created gateway transaction
func NewTransaction(
	token string,
	buyOrder string,
	sessionID string,
	cartID int64,
	amount decimal.Decimal,
	commerceCode string,
	timeProvider tport.TimeProvider,
	opts ...TransactionOption,
) (*Transaction, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: token is required", errs.ErrInvalidRequest)
	}
	if buyOrder == "" {
		return nil, fmt.Errorf("%w: buy order is required", errs.ErrInvalidRequest)
	}
	if cartID <= 0 {
		return nil, fmt.Errorf("%w: cart id must be positive", errs.ErrInvalidCart)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount.String())
	}

	now := timeProvider.Now()
	t := &Transaction{
		Token:        token,
		BuyOrder:     buyOrder,
		SessionID:    sessionID,
		CartID:       cartID,
		amount:       amount,
		Status:       StatusInitialized,
		CommerceCode: commerceCode,
		Environment:  EnvironmentIntegration,
		Product:      ProductWebpayPlus,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// RestoreTransaction rebuilds a record loaded from storage, including its amount
func RestoreTransaction(t Transaction, amount decimal.Decimal) *Transaction {
	t.amount = amount
	return &t
}

// Amount returns the expected charge total. It is fixed at creation.
func (t *Transaction) Amount() decimal.Decimal {
	return t.amount
}

// IsTerminal reports whether the record has left INITIALIZED
func (t *Transaction) IsTerminal() bool {
	return t.Status.IsTerminal()
}

// TransitionTo moves the record to status, refusing to leave a terminal status
func (t *Transaction) TransitionTo(status TransactionStatus, timeProvider tport.TimeProvider) error {
	if !status.IsValid() || status == StatusInitialized {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidTransition, t.Status, status)
	}
	if t.IsTerminal() {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidTransition, t.Status, status)
	}
	t.Status = status
	t.UpdatedAt = timeProvider.Now()
	return nil
}

// RevertApproval turns an APPROVED status that storage refused to record into
// FAILED. The stored row is still INITIALIZED when this is called.
func (t *Transaction) RevertApproval(timeProvider tport.TimeProvider) error {
	if t.Status != StatusApproved {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidTransition, t.Status, StatusFailed)
	}
	t.Status = StatusFailed
	t.UpdatedAt = timeProvider.Now()
	return nil
}

// ApplyCommitResult copies the audit fields of a commit response onto the record.
// The first leg carries the response code used for the record.
func (t *Transaction) ApplyCommitResult(result *CommitResult) {
	if result == nil {
		return
	}
	if first := result.FirstLeg(); first != nil {
		code := first.ResponseCode
		t.ResponseCode = &code
	}
	if card := MaskCardNumber(result.CardNumber); card != "" {
		t.CardNumberMasked = &card
	}
	if result.VCI != "" {
		vci := result.VCI
		t.VCI = &vci
	}
	if len(result.Raw) > 0 {
		t.RawGatewayResponse = append([]byte(nil), result.Raw...)
	}
}

// AttachOrder records the order created on the commerce store
func (t *Transaction) AttachOrder(orderID int64) {
	t.OrderID = &orderID
}

// IsMall reports whether the transaction was split across several commerce codes
func (t *Transaction) IsMall() bool {
	return t.Product == ProductWebpayMall
}

// LogFields returns a map of fields for structured logging
func (t *Transaction) LogFields() map[string]any {
	fields := map[string]any{
		"token":     t.Token,
		"buy_order": t.BuyOrder,
		"cart_id":   t.CartID,
		"amount":    t.amount.String(),
		"status":    string(t.Status),
		"product":   string(t.Product),
	}
	if t.OrderID != nil {
		fields["order_id"] = *t.OrderID
	}
	return fields
}
