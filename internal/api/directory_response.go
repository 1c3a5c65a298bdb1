// File: internal/api/directory_response.go
package api

// DirectoryResponse is one page of the public listing.
// swagger:model api.DirectoryResponse
type DirectoryResponse struct {
	OK      bool              `json:"ok"`
	Items   []ProfileResponse `json:"items"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
	Total   int               `json:"total"`
	HasNext bool              `json:"has_next"`
	HasPrev bool              `json:"has_prev"`
}
