// File: internal/store/account.go
package store

import (
	"context"
	"fmt"
	"strings"

	"service-market/internal/database"
	"service-market/internal/model"
	"service-market/internal/service"
)

const (
	// DirectoryPageSize is the public listing window.
	DirectoryPageSize = 5
	// AdminPageSize is the admin panel listing window.
	AdminPageSize = 10
)

const accountColumns = `id, login, password_hash, name, service_type, experience_years, price, about, is_hidden, is_admin, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (*model.Account, error) {
	a := &model.Account{}
	err := row.Scan(
		&a.ID,
		&a.Login,
		&a.PasswordHash,
		&a.Name,
		&a.ServiceType,
		&a.ExperienceYears,
		&a.Price,
		&a.About,
		&a.IsHidden,
		&a.IsAdmin,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func GetAccountByID(ctx context.Context, db database.DB, accountID int) (*model.Account, error) {
	row := db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`,
		accountID,
	)
	a, err := scanAccount(row)
	if err != nil {
		return nil, fmt.Errorf("GetAccountByID: %w", err)
	}
	return a, nil
}

func GetAccountByLogin(ctx context.Context, db database.DB, login string) (*model.Account, error) {
	row := db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE login = $1`,
		login,
	)
	a, err := scanAccount(row)
	if err != nil {
		return nil, fmt.Errorf("GetAccountByLogin: %w", err)
	}
	return a, nil
}

// CreateAccount inserts a credentials-only row. Login uniqueness rides on
// the unique index, so a duplicate registration surfaces as a unique
// violation here rather than racing a prior existence check.
func CreateAccount(ctx context.Context, db database.DB, a *model.Account) (*model.Account, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO accounts (login, password_hash, is_admin, is_hidden)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		a.Login,
		a.PasswordHash,
		a.IsAdmin,
		a.IsHidden,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateAccount: %w", err)
	}
	return a, nil
}

// UpdateProfile applies a validated profile in one statement, refreshing
// updated_at. All-or-nothing per the single-row UPDATE.
func UpdateProfile(ctx context.Context, db database.DB, accountID int, v service.ProfileValues) error {
	_, err := db.Exec(ctx,
		`UPDATE accounts
		 SET name = $1, service_type = $2, experience_years = $3, price = $4, about = $5, updated_at = now()
		 WHERE id = $6`,
		v.Name,
		v.ServiceType,
		v.Experience,
		v.Price,
		v.About,
		accountID,
	)
	if err != nil {
		return fmt.Errorf("UpdateProfile: %w", err)
	}
	return nil
}

// UpdateAccount writes every mutable column of an already-loaded account
// and reads back the refreshed updated_at. The admin gateway mutates the
// loaded row and saves it through here.
func UpdateAccount(ctx context.Context, db database.DB, a *model.Account) error {
	row := db.QueryRow(ctx,
		`UPDATE accounts
		 SET name = $1, service_type = $2, experience_years = $3, price = $4, about = $5,
		     is_hidden = $6, is_admin = $7, updated_at = now()
		 WHERE id = $8
		 RETURNING updated_at`,
		a.Name,
		a.ServiceType,
		a.ExperienceYears,
		a.Price,
		a.About,
		a.IsHidden,
		a.IsAdmin,
		a.ID,
	)
	if err := row.Scan(&a.UpdatedAt); err != nil {
		return fmt.Errorf("UpdateAccount: %w", err)
	}
	return nil
}

func SetHidden(ctx context.Context, db database.DB, accountID int, hidden bool) error {
	_, err := db.Exec(ctx,
		`UPDATE accounts SET is_hidden = $1, updated_at = now() WHERE id = $2`,
		hidden,
		accountID,
	)
	if err != nil {
		return fmt.Errorf("SetHidden: %w", err)
	}
	return nil
}

func DeleteAccount(ctx context.Context, db database.DB, accountID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM accounts WHERE id = $1`,
		accountID,
	)
	if err != nil {
		return fmt.Errorf("DeleteAccount: %w", err)
	}
	return nil
}

func CountAccounts(ctx context.Context, db database.DB) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountAccounts: %w", err)
	}
	return n, nil
}

// ProfileFilter narrows the public directory. Nil range bounds mean "not
// supplied". IncludeHidden is only ever set for admin callers; ViewerID is
// the authenticated caller's account id (0 for anonymous) and lets owners
// see their own hidden row.
type ProfileFilter struct {
	Name        string
	ServiceType string
	ExpMin      *int
	ExpMax      *int
	PriceMin    *int
	PriceMax    *int

	IncludeHidden bool
	ViewerID      int
	Page          int
}

// ListProfiles runs the directory query: complete profiles only, hidden
// rows scoped out for non-admins, optional filters ANDed together, newest
// update first. Returns one page and the total match count.
func ListProfiles(ctx context.Context, db database.DB, f ProfileFilter) ([]model.Account, int, error) {
	// Completeness is not optional: incomplete rows never list, even for
	// admins.
	where := []string{
		"name IS NOT NULL",
		"service_type IS NOT NULL",
		"experience_years IS NOT NULL",
		"price IS NOT NULL",
	}
	var args []any

	if !f.IncludeHidden {
		if f.ViewerID > 0 {
			// Owners still see their own hidden row.
			args = append(args, f.ViewerID)
			where = append(where, fmt.Sprintf("(is_hidden = FALSE OR id = $%d)", len(args)))
		} else {
			where = append(where, "is_hidden = FALSE")
		}
	}
	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if f.ServiceType != "" {
		args = append(args, f.ServiceType)
		where = append(where, fmt.Sprintf("service_type = $%d", len(args)))
	}
	if f.ExpMin != nil {
		args = append(args, *f.ExpMin)
		where = append(where, fmt.Sprintf("experience_years >= $%d", len(args)))
	}
	if f.ExpMax != nil {
		args = append(args, *f.ExpMax)
		where = append(where, fmt.Sprintf("experience_years <= $%d", len(args)))
	}
	if f.PriceMin != nil {
		args = append(args, *f.PriceMin)
		where = append(where, fmt.Sprintf("price >= $%d", len(args)))
	}
	if f.PriceMax != nil {
		args = append(args, *f.PriceMax)
		where = append(where, fmt.Sprintf("price <= $%d", len(args)))
	}

	clause := " WHERE " + strings.Join(where, " AND ")

	var total int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListProfiles: count: %w", err)
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	args = append(args, DirectoryPageSize, (page-1)*DirectoryPageSize)
	query := `SELECT ` + accountColumns + ` FROM accounts` + clause +
		` ORDER BY updated_at DESC, id DESC` +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ListProfiles: %w", err)
	}
	defer rows.Close()

	var items []model.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ListProfiles: scan: %w", err)
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListProfiles: rows: %w", err)
	}
	return items, total, nil
}

// ListAccounts is the admin panel listing: every account, hidden or not,
// complete or not, newest registration first.
func ListAccounts(ctx context.Context, db database.DB, page int) ([]model.Account, int, error) {
	var total int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListAccounts: count: %w", err)
	}

	if page < 1 {
		page = 1
	}
	rows, err := db.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2`,
		AdminPageSize,
		(page-1)*AdminPageSize,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListAccounts: %w", err)
	}
	defer rows.Close()

	var items []model.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ListAccounts: scan: %w", err)
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListAccounts: rows: %w", err)
	}
	return items, total, nil
}
