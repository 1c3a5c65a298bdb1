// File: internal/api/hide_request.go
package api

// swagger:model api.HideRequest
type HideRequest struct {
	IsHidden bool `json:"is_hidden" example:"true"`
}
