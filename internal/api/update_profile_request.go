// File: internal/api/update_profile_request.go
package api

// UpdateProfileRequest carries a full profile candidate. ExperienceYears
// and Price stay untyped: clients send them as numbers or numeric strings
// and the profile validator owns the parsing.
// swagger:model api.UpdateProfileRequest
type UpdateProfileRequest struct {
	Name            string `json:"name" example:"Alice"`
	ServiceType     string `json:"service_type" example:"юрист"`
	ExperienceYears any    `json:"experience_years" swaggertype:"integer" example:"5"`
	Price           any    `json:"price" swaggertype:"integer" example:"1000"`
	About           string `json:"about" example:"Работаю аккуратно и по договорённости."`
}
