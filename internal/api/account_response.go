// File: internal/api/account_response.go
package api

import (
	"time"

	"service-market/internal/model"
)

// AccountResponse is the admin projection: the public fields plus the
// credential and moderation columns.
// swagger:model api.AccountResponse
type AccountResponse struct {
	ProfileResponse
	Login     string    `json:"login"`
	IsHidden  bool      `json:"is_hidden"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAccountResponse(a *model.Account) AccountResponse {
	return AccountResponse{
		ProfileResponse: NewProfileResponse(a),
		Login:           a.Login,
		IsHidden:        a.IsHidden,
		IsAdmin:         a.IsAdmin,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
