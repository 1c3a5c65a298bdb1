// File: internal/api/login_request.go
package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Login    string `json:"login" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"Passw0rd!"`
}
