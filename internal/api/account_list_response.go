// File: internal/api/account_list_response.go
package api

// AccountListResponse is one page of the admin panel listing.
// swagger:model api.AccountListResponse
type AccountListResponse struct {
	OK      bool              `json:"ok"`
	Items   []AccountResponse `json:"items"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
	Total   int               `json:"total"`
	HasNext bool              `json:"has_next"`
	HasPrev bool              `json:"has_prev"`
}
