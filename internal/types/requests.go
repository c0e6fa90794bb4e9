package types

// CalculateBMIRequest represents the request body for the BMI endpoint.
// Pointers distinguish a missing field from a zero value.
type CalculateBMIRequest struct {
	Height *float64 `json:"height" binding:"required,gt=0,maxdecimals=2"`
	Weight *float64 `json:"weight" binding:"required,gt=0,maxdecimals=2"`
	Gender *Gender  `json:"gender" binding:"required,oneof=male female,lowercase"`
}

// FieldError describes one invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is returned with 422 when a request body is invalid
type ValidationErrorResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// ErrorResponse is the body of every other error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
