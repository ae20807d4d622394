package entity

// OutcomeKind tells the presenter which page to show
type OutcomeKind string

// Outcome kinds
const (
	OutcomeSuccess OutcomeKind = "success"
	OutcomeError   OutcomeKind = "error"
)

// Outcome is the result of reconciling one callback delivery. It is built only
// after the terminal status has been persisted.
type Outcome struct {
	Kind         OutcomeKind
	Flow         Flow
	Status       TransactionStatus
	Message      string
	ResponseCode *int
	Cart         *Cart
	Replayed     bool
}

// SuccessOutcome builds an outcome that redirects to the order confirmation
func SuccessOutcome(flow Flow, cart *Cart) *Outcome {
	return &Outcome{
		Kind:   OutcomeSuccess,
		Flow:   flow,
		Status: StatusApproved,
		Cart:   cart,
	}
}

// ErrorOutcome builds an outcome that shows message to the shopper
func ErrorOutcome(flow Flow, status TransactionStatus, message string, code *int) *Outcome {
	return &Outcome{
		Kind:         OutcomeError,
		Flow:         flow,
		Status:       status,
		Message:      message,
		ResponseCode: code,
	}
}

// IsSuccess reports whether the shopper should be sent to the confirmation page
func (o *Outcome) IsSuccess() bool {
	return o != nil && o.Kind == OutcomeSuccess
}
