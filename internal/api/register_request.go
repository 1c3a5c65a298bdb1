// File: internal/api/register_request.go
package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Login    string `json:"login" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"Passw0rd!"`
}
