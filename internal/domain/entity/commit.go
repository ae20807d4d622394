package entity

import "github.com/shopspring/decimal"

// LegStatusAuthorized is the status the gateway reports for an authorized leg
const LegStatusAuthorized = "AUTHORIZED"

// ResponseCodeApproved is the gateway response code for an approved leg
const ResponseCodeApproved = 0

// Leg is one authorization unit of a commit. Single-commerce commits have exactly one.
type Leg struct {
	CommerceCode      string
	BuyOrder          string
	Amount            decimal.Decimal
	ResponseCode      int
	Status            string
	AuthorizationCode string
}

// IsAuthorized reports whether this leg was individually approved
func (l Leg) IsAuthorized() bool {
	return l.ResponseCode == ResponseCodeApproved && l.Status == LegStatusAuthorized
}

// CommitResult is the gateway answer to a commit call
type CommitResult struct {
	Legs       []Leg
	VCI        string
	CardNumber string
	Raw        []byte
}

// IsIntegral reports whether every leg was authorized. An empty result is never integral.
func (r *CommitResult) IsIntegral() bool {
	if r == nil || len(r.Legs) == 0 {
		return false
	}
	for _, leg := range r.Legs {
		if !leg.IsAuthorized() {
			return false
		}
	}
	return true
}

// AuthorizedLegs returns the legs that need compensation when the commit is not integral
func (r *CommitResult) AuthorizedLegs() []Leg {
	if r == nil {
		return nil
	}
	var legs []Leg
	for _, leg := range r.Legs {
		if leg.IsAuthorized() {
			legs = append(legs, leg)
		}
	}
	return legs
}

// FirstLeg returns the first leg or nil
func (r *CommitResult) FirstLeg() *Leg {
	if r == nil || len(r.Legs) == 0 {
		return nil
	}
	return &r.Legs[0]
}

// FirstDeclinedLeg returns the first leg that was not authorized or nil
func (r *CommitResult) FirstDeclinedLeg() *Leg {
	if r == nil {
		return nil
	}
	for i := range r.Legs {
		if !r.Legs[i].IsAuthorized() {
			return &r.Legs[i]
		}
	}
	return nil
}

// RefundResult is the gateway answer to a refund call
type RefundResult struct {
	Type              string
	AuthorizationCode string
	ResponseCode      int
	Balance           decimal.Decimal
	NullifiedAmount   decimal.Decimal
}
