package dto

// ErrorResponse is the JSON error body of the operator endpoints. RequestID
// matches the X-Request-ID header and the request_id field in the logs.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}
