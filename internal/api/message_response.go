// File: internal/api/message_response.go
package api

// MessageResponse is the generic success envelope.
// swagger:model api.MessageResponse
type MessageResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// swagger:model api.RegisterResponse
type RegisterResponse struct {
	OK      bool         `json:"ok"`
	Message string       `json:"message"`
	User    RegisterUser `json:"user"`
}

type RegisterUser struct {
	Login string `json:"login"`
}

// swagger:model api.HideResponse
type HideResponse struct {
	OK       bool   `json:"ok"`
	Message  string `json:"message"`
	IsHidden bool   `json:"is_hidden"`
}

// swagger:model api.UpdateAccountResponse
type UpdateAccountResponse struct {
	OK      bool            `json:"ok"`
	Message string          `json:"message"`
	User    AccountResponse `json:"user"`
}

// swagger:model api.HealthResponse
type HealthResponse struct {
	OK       bool   `json:"ok"`
	Database string `json:"database"`
	Sessions string `json:"sessions"`
}
