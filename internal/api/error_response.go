// File: internal/api/error_response.go
package api

// ErrorResponse is the uniform failure envelope: ok is always false and
// error carries a human-readable message.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
