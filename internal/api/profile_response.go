// File: internal/api/profile_response.go
package api

import "service-market/internal/model"

// ProfileResponse is the public projection: never login, hash, flags or
// timestamps.
// swagger:model api.ProfileResponse
type ProfileResponse struct {
	ID              int     `json:"id"`
	Name            *string `json:"name"`
	ServiceType     *string `json:"service_type"`
	ExperienceYears *int    `json:"experience_years"`
	Price           *int    `json:"price"`
	About           *string `json:"about"`
}

func NewProfileResponse(a *model.Account) ProfileResponse {
	return ProfileResponse{
		ID:              a.ID,
		Name:            a.Name,
		ServiceType:     a.ServiceType,
		ExperienceYears: a.ExperienceYears,
		Price:           a.Price,
		About:           a.About,
	}
}
