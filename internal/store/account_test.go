// File: internal/store/account_test.go
package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"service-market/internal/database"
	"service-market/internal/model"
	"service-market/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- fakes ---------- */

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }

func assignAccount(dest []any, a *model.Account) {
	*dest[0].(*int) = a.ID
	*dest[1].(*string) = a.Login
	*dest[2].(*string) = a.PasswordHash
	*dest[3].(**string) = a.Name
	*dest[4].(**string) = a.ServiceType
	*dest[5].(**int) = a.ExperienceYears
	*dest[6].(**int) = a.Price
	*dest[7].(**string) = a.About
	*dest[8].(*bool) = a.IsHidden
	*dest[9].(*bool) = a.IsAdmin
	*dest[10].(*time.Time) = a.CreatedAt
	*dest[11].(*time.Time) = a.UpdatedAt
}

// fakeAccountRow serves the three QueryRow shapes used by the store:
// 12 dests (full row), 3 dests (insert returning), 1 dest (count or
// returning updated_at).
type fakeAccountRow struct {
	scanErr error
	account *model.Account
	total   int
}

func (r *fakeAccountRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 12:
		assignAccount(dest, r.account)
	case 3:
		*dest[0].(*int) = r.account.ID
		*dest[1].(*time.Time) = r.account.CreatedAt
		*dest[2].(*time.Time) = r.account.UpdatedAt
	case 1:
		switch d := dest[0].(type) {
		case *int:
			*d = r.total
		case *time.Time:
			*d = r.account.UpdatedAt
		default:
			panic("fakeAccountRow.Scan: unexpected dest type")
		}
	default:
		panic("fakeAccountRow.Scan: unexpected dest count")
	}
	return nil
}

type fakeAccountRows struct {
	accounts []model.Account
	idx      int
}

func (r *fakeAccountRows) Close()                                       {}
func (r *fakeAccountRows) Err() error                                   { return nil }
func (r *fakeAccountRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeAccountRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeAccountRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeAccountRows) RawValues() [][]byte                          { return nil }
func (r *fakeAccountRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeAccountRows) Next() bool {
	r.idx++
	return r.idx <= len(r.accounts)
}

func (r *fakeAccountRows) Scan(dest ...any) error {
	assignAccount(dest, &r.accounts[r.idx-1])
	return nil
}

func sampleAccount() *model.Account {
	now := time.Now().UTC()
	return &model.Account{
		ID:              7,
		Login:           "alice",
		PasswordHash:    "hash123",
		Name:            strp("Alice"),
		ServiceType:     strp("юрист"),
		ExperienceYears: intp(5),
		Price:           intp(1000),
		About:           strp("about"),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

/* ---------- CRUD ---------- */

func TestGetAccountByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{7}, args)
				return &fakeAccountRow{account: sampleAccount()}
			},
		}
		a, err := GetAccountByID(context.Background(), db, 7)
		require.NoError(t, err)
		require.Equal(t, "alice", a.Login)
		require.Equal(t, "Alice", *a.Name)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeAccountRow{scanErr: pgx.ErrNoRows}
			},
		}
		a, err := GetAccountByID(context.Background(), db, 999)
		require.ErrorIs(t, err, pgx.ErrNoRows)
		require.Nil(t, a)
	})
}

func TestGetAccountByLogin(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "WHERE login = $1")
			require.Equal(t, []any{"alice"}, args)
			return &fakeAccountRow{account: sampleAccount()}
		},
	}
	a, err := GetAccountByLogin(context.Background(), db, "alice")
	require.NoError(t, err)
	require.Equal(t, 7, a.ID)
}

func TestCreateAccount(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "INSERT INTO accounts")
				require.Equal(t, []any{"bob", "pwdhash", false, false}, args)
				return &fakeAccountRow{account: &model.Account{ID: 42, CreatedAt: now, UpdatedAt: now}}
			},
		}
		created, err := CreateAccount(context.Background(), db, &model.Account{Login: "bob", PasswordHash: "pwdhash"})
		require.NoError(t, err)
		require.Equal(t, 42, created.ID)
		require.WithinDuration(t, now, created.CreatedAt, time.Second)
	})

	t.Run("unique violation surfaces", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505"}
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeAccountRow{scanErr: pgErr}
			},
		}
		_, err := CreateAccount(context.Background(), db, &model.Account{Login: "dup"})
		var got *pgconn.PgError
		require.ErrorAs(t, err, &got)
		require.Equal(t, "23505", got.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	var gotSQL string
	var gotArgs []any
	db := &database.FakeDB{
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			gotSQL, gotArgs = sql, args
			return pgconn.CommandTag{}, nil
		},
	}
	about := "about"
	err := UpdateProfile(context.Background(), db, 7, service.ProfileValues{
		Name:        "Alice",
		ServiceType: "юрист",
		Experience:  5,
		Price:       1000,
		About:       &about,
	})
	require.NoError(t, err)
	require.Contains(t, gotSQL, "updated_at = now()")
	require.Equal(t, []any{"Alice", "юрист", 5, 1000, &about, 7}, gotArgs)
}

func TestUpdateAccount(t *testing.T) {
	a := sampleAccount()
	refreshed := time.Now().UTC().Add(time.Minute)
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "RETURNING updated_at")
			require.Len(t, args, 8)
			require.Equal(t, a.ID, args[7])
			return &fakeAccountRow{account: &model.Account{UpdatedAt: refreshed}}
		},
	}
	require.NoError(t, UpdateAccount(context.Background(), db, a))
	require.Equal(t, refreshed, a.UpdatedAt)
}

func TestSetHidden(t *testing.T) {
	var gotArgs []any
	db := &database.FakeDB{
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Contains(t, sql, "SET is_hidden = $1")
			gotArgs = args
			return pgconn.CommandTag{}, nil
		},
	}
	require.NoError(t, SetHidden(context.Background(), db, 7, true))
	require.Equal(t, []any{true, 7}, gotArgs)
}

func TestDeleteAccount(t *testing.T) {
	var gotArgs []any
	db := &database.FakeDB{
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Contains(t, sql, "DELETE FROM accounts")
			gotArgs = args
			return pgconn.CommandTag{}, nil
		},
	}
	require.NoError(t, DeleteAccount(context.Background(), db, 7))
	require.Equal(t, []any{7}, gotArgs)
}

/* ---------- directory query ---------- */

func TestListProfilesScoping(t *testing.T) {
	t.Run("non-admin scope", func(t *testing.T) {
		var countSQL, listSQL string
		var listArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				countSQL = sql
				return &fakeAccountRow{total: 1}
			},
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				listSQL, listArgs = sql, args
				return &fakeAccountRows{accounts: []model.Account{*sampleAccount()}}, nil
			},
		}

		items, total, err := ListProfiles(context.Background(), db, ProfileFilter{Page: 1})
		require.NoError(t, err)
		require.Equal(t, 1, total)
		require.Len(t, items, 1)

		// completeness is always enforced, hidden rows are scoped out
		for _, sql := range []string{countSQL, listSQL} {
			require.Contains(t, sql, "name IS NOT NULL")
			require.Contains(t, sql, "service_type IS NOT NULL")
			require.Contains(t, sql, "experience_years IS NOT NULL")
			require.Contains(t, sql, "price IS NOT NULL")
			require.Contains(t, sql, "is_hidden = FALSE")
		}
		require.Contains(t, listSQL, "ORDER BY updated_at DESC, id DESC")
		require.Equal(t, []any{DirectoryPageSize, 0}, listArgs)
	})

	t.Run("owner sees own hidden row", func(t *testing.T) {
		var listSQL string
		var listArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				require.Contains(t, sql, "(is_hidden = FALSE OR id = $1)")
				return &fakeAccountRow{total: 0}
			},
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				listSQL, listArgs = sql, args
				return &fakeAccountRows{}, nil
			},
		}
		_, _, err := ListProfiles(context.Background(), db, ProfileFilter{ViewerID: 7, Page: 1})
		require.NoError(t, err)
		require.Contains(t, listSQL, "(is_hidden = FALSE OR id = $1)")
		require.Equal(t, []any{7, DirectoryPageSize, 0}, listArgs)
	})

	t.Run("admin sees hidden", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				require.NotContains(t, sql, "is_hidden")
				require.Contains(t, sql, "name IS NOT NULL", "completeness still applies to admins")
				return &fakeAccountRow{total: 0}
			},
			QueryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
				require.NotContains(t, sql, "is_hidden")
				return &fakeAccountRows{}, nil
			},
		}
		_, _, err := ListProfiles(context.Background(), db, ProfileFilter{IncludeHidden: true, Page: 1})
		require.NoError(t, err)
	})
}

func TestListProfilesFilters(t *testing.T) {
	var listSQL string
	var listArgs []any
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return &fakeAccountRow{total: 0}
		},
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			listSQL, listArgs = sql, args
			return &fakeAccountRows{}, nil
		},
	}

	_, _, err := ListProfiles(context.Background(), db, ProfileFilter{
		Name:        "али",
		ServiceType: "юрист",
		ExpMin:      intp(2),
		ExpMax:      intp(10),
		PriceMin:    intp(500),
		PriceMax:    intp(3000),
		Page:        3,
	})
	require.NoError(t, err)

	require.Contains(t, listSQL, "name ILIKE $1")
	require.Contains(t, listSQL, "service_type = $2")
	require.Contains(t, listSQL, "experience_years >= $3")
	require.Contains(t, listSQL, "experience_years <= $4")
	require.Contains(t, listSQL, "price >= $5")
	require.Contains(t, listSQL, "price <= $6")
	require.Equal(t, []any{"%али%", "юрист", 2, 10, 500, 3000, DirectoryPageSize, 10}, listArgs)
}

func TestListProfilesPageNormalization(t *testing.T) {
	var listArgs []any
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return &fakeAccountRow{total: 0}
		},
		QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
			listArgs = args
			return &fakeAccountRows{}, nil
		},
	}
	_, _, err := ListProfiles(context.Background(), db, ProfileFilter{Page: 0})
	require.NoError(t, err)
	require.Equal(t, []any{DirectoryPageSize, 0}, listArgs, "page below 1 falls back to the first page")
}

func TestListAccounts(t *testing.T) {
	var listSQL string
	var listArgs []any
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
			require.True(t, strings.HasPrefix(sql, "SELECT COUNT(*)"))
			return &fakeAccountRow{total: 23}
		},
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			listSQL, listArgs = sql, args
			return &fakeAccountRows{accounts: []model.Account{*sampleAccount()}}, nil
		},
	}

	items, total, err := ListAccounts(context.Background(), db, 2)
	require.NoError(t, err)
	require.Equal(t, 23, total)
	require.Len(t, items, 1)
	require.Contains(t, listSQL, "ORDER BY created_at DESC, id DESC")
	require.Equal(t, []any{AdminPageSize, 10}, listArgs)
}

func TestCountAccounts(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return &fakeAccountRow{total: 31}
		},
	}
	n, err := CountAccounts(context.Background(), db)
	require.NoError(t, err)
	require.Equal(t, 31, n)
}
