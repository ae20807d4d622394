package entity

// Callback parameter names posted back by the payment form
const (
	KeySuccessToken = "token_ws"
	KeyAbortToken   = "TBK_TOKEN"
	KeySessionID    = "TBK_ID_SESION"
	KeyBuyOrder     = "TBK_ORDEN_COMPRA"
)

// Flow is the kind of return trip the payment form produced
type Flow int

// Flow kinds
const (
	FlowInvalid Flow = iota
	FlowNormal
	FlowAborted
	FlowTimeout
	FlowError
)

func (f Flow) String() string {
	switch f {
	case FlowNormal:
		return "normal"
	case FlowAborted:
		return "aborted"
	case FlowTimeout:
		return "timeout"
	case FlowError:
		return "error"
	default:
		return "invalid"
	}
}

// CallbackPayload records which callback keys were present and their values.
// A nil field means the key was absent; an empty string still counts as present.
type CallbackPayload struct {
	SuccessToken *string
	AbortToken   *string
	SessionID    *string
	BuyOrder     *string
}

// NewCallbackPayload builds a payload from a lookup that reports key presence,
// such as url.Values or gin's GetPostForm.
func NewCallbackPayload(lookup func(key string) (string, bool)) CallbackPayload {
	get := func(key string) *string {
		if v, ok := lookup(key); ok {
			return &v
		}
		return nil
	}
	return CallbackPayload{
		SuccessToken: get(KeySuccessToken),
		AbortToken:   get(KeyAbortToken),
		SessionID:    get(KeySessionID),
		BuyOrder:     get(KeyBuyOrder),
	}
}

// ClassifyFlow maps key presence to a flow. Values are never inspected.
//
//	success  abort  session  -> flow
//	yes      yes    any      -> error
//	no       yes    yes      -> aborted
//	no       no     yes      -> timeout
//	yes      no     no       -> normal
//	anything else            -> invalid
func ClassifyFlow(p CallbackPayload) Flow {
	success := p.SuccessToken != nil
	abort := p.AbortToken != nil
	session := p.SessionID != nil

	switch {
	case success && abort:
		return FlowError
	case !success && abort && session:
		return FlowAborted
	case !success && !abort && session:
		return FlowTimeout
	case success && !abort && !session:
		return FlowNormal
	default:
		return FlowInvalid
	}
}

// LookupKey returns the identifier a flow uses to find its record and whether
// that identifier is a token (true) or a buy order (false). ok is false when
// the flow carries no usable key.
func (p CallbackPayload) LookupKey(flow Flow) (key string, byToken bool, ok bool) {
	switch flow {
	case FlowNormal, FlowError:
		if p.SuccessToken == nil {
			return "", true, false
		}
		return *p.SuccessToken, true, true
	case FlowAborted:
		if p.AbortToken == nil {
			return "", true, false
		}
		return *p.AbortToken, true, true
	case FlowTimeout:
		if p.BuyOrder == nil {
			return "", false, false
		}
		return *p.BuyOrder, false, true
	default:
		return "", false, false
	}
}
