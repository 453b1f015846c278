package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	RequestID string       `json:"request_id,omitempty"`
	Code      string       `json:"code"`
	Message   string       `json:"message"`
	Fields    []FieldError `json:"fields,omitempty"`
}

// FieldError points at one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
