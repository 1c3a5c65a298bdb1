// File: internal/model/account.go
package model

import "time"

// Account is a single row: credentials and the provider profile live
// together. Profile columns are NULL until the first profile save, hence
// the pointer fields.
type Account struct {
	ID           int    `db:"id" json:"id"`
	Login        string `db:"login" json:"login"`
	PasswordHash string `db:"password_hash" json:"-"`

	Name            *string `db:"name" json:"name"`
	ServiceType     *string `db:"service_type" json:"service_type"`
	ExperienceYears *int    `db:"experience_years" json:"experience_years"`
	Price           *int    `db:"price" json:"price"`
	About           *string `db:"about" json:"about"`

	IsHidden bool `db:"is_hidden" json:"is_hidden"`
	IsAdmin  bool `db:"is_admin" json:"is_admin"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ProfileComplete reports whether name, service_type, experience_years and
// price are all set. Only complete profiles appear in the public directory.
func (a *Account) ProfileComplete() bool {
	return a.Name != nil && a.ServiceType != nil && a.ExperienceYears != nil && a.Price != nil
}

// RootAdminLogin is the login of the account that can never be deleted or
// demoted through the admin panel.
const RootAdminLogin = "admin"
