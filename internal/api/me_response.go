// File: internal/api/me_response.go
package api

import "service-market/internal/model"

// MeUser is what an authenticated caller sees of their own account.
// swagger:model api.MeUser
type MeUser struct {
	ProfileResponse
	Login    string `json:"login"`
	IsHidden bool   `json:"is_hidden"`
	IsAdmin  bool   `json:"is_admin"`
}

// MeResponse wraps the current caller. User is null for anonymous callers,
// the owner view for regular accounts and the full admin projection for
// admins.
// swagger:model api.MeResponse
type MeResponse struct {
	OK   bool `json:"ok"`
	User any  `json:"user"`
}

func NewMeUser(a *model.Account) MeUser {
	return MeUser{
		ProfileResponse: NewProfileResponse(a),
		Login:           a.Login,
		IsHidden:        a.IsHidden,
		IsAdmin:         a.IsAdmin,
	}
}
