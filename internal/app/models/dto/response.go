package dto

// MessageResponse is the flat success body used by mutation endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the flat error body used for generic failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
