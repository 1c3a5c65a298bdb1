// File: internal/api/admin_update_account_request.go
package api

// AdminUpdateAccountRequest is a partial update: nil pointers mean "key
// absent". When any profile key is present the whole profile is re-validated
// against the current values merged with the supplied ones.
// swagger:model api.AdminUpdateAccountRequest
type AdminUpdateAccountRequest struct {
	Name            *string `json:"name"`
	ServiceType     *string `json:"service_type"`
	ExperienceYears any     `json:"experience_years" swaggertype:"integer"`
	Price           any     `json:"price" swaggertype:"integer"`
	About           *string `json:"about"`

	IsHidden *bool `json:"is_hidden"`
	IsAdmin  *bool `json:"is_admin"`
}

// HasProfileFields reports whether any profile key was supplied.
func (r *AdminUpdateAccountRequest) HasProfileFields() bool {
	return r.Name != nil || r.ServiceType != nil || r.ExperienceYears != nil ||
		r.Price != nil || r.About != nil
}
