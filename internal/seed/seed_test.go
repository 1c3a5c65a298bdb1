// File: internal/seed/seed_test.go
package seed

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"service-market/internal/database"
	"service-market/internal/model"
	"service-market/internal/service"
	"service-market/internal/store"
	"service-market/internal/worker"

	"github.com/stretchr/testify/require"
)

func restore() {
	hashPassword = service.HashPassword
	countAccounts = store.CountAccounts
	createAccount = store.CreateAccount
	updateAccount = store.UpdateAccount
}

func TestDemoSet(t *testing.T) {
	set := demoSet()
	require.Len(t, set, demoUsers+1)

	root := set[0]
	require.Equal(t, model.RootAdminLogin, root.login)
	require.True(t, root.isAdmin)
	require.Equal(t, "программист", root.profile.ServiceType)

	for i, d := range set[1:] {
		require.Equal(t, fmt.Sprintf("user%02d", i+1), d.login)
		require.False(t, d.isAdmin)
		require.Contains(t, service.ServiceTypes, d.profile.ServiceType)
		require.NotEmpty(t, d.profile.Name)
		require.Positive(t, d.profile.Price)
		require.GreaterOrEqual(t, d.profile.Experience, 0)
		require.NotNil(t, d.profile.About)
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("skips a populated database", func(t *testing.T) {
		t.Cleanup(restore)
		countAccounts = func(context.Context, database.DB) (int, error) { return 3, nil }
		createAccount = func(context.Context, database.DB, *model.Account) (*model.Account, error) {
			t.Fatal("create must not run")
			return nil, nil
		}
		require.NoError(t, Run(ctx, nil, nil))
	})

	t.Run("count failure", func(t *testing.T) {
		t.Cleanup(restore)
		countAccounts = func(context.Context, database.DB) (int, error) { return 0, errors.New("boom") }
		require.Error(t, Run(ctx, nil, nil))
	})

	t.Run("creates every demo account", func(t *testing.T) {
		t.Cleanup(restore)
		countAccounts = func(context.Context, database.DB) (int, error) { return 0, nil }
		hashPassword = func(pwd string) (string, error) { return "hash:" + pwd, nil }

		created := map[string]string{}
		var admins int
		createAccount = func(_ context.Context, _ database.DB, a *model.Account) (*model.Account, error) {
			created[a.Login] = a.PasswordHash
			if a.IsAdmin {
				admins++
			}
			a.ID = len(created)
			return a, nil
		}
		var updated int
		updateAccount = func(_ context.Context, _ database.DB, a *model.Account) error {
			updated++
			require.NotNil(t, a.Name)
			require.NotNil(t, a.ServiceType)
			require.NotNil(t, a.ExperienceYears)
			require.NotNil(t, a.Price)
			return nil
		}

		pool := worker.NewPool(4)
		defer pool.Stop()
		require.NoError(t, Run(ctx, nil, pool))

		require.Len(t, created, demoUsers+1)
		require.Equal(t, 1, admins)
		require.Equal(t, demoUsers+1, updated)
		require.Equal(t, "hash:"+adminPassword, created[model.RootAdminLogin])
		require.Equal(t, "hash:"+demoPassword, created["user01"])
		require.Equal(t, "hash:"+demoPassword, created["user30"])
	})

	t.Run("create failure stops the run", func(t *testing.T) {
		t.Cleanup(restore)
		countAccounts = func(context.Context, database.DB) (int, error) { return 0, nil }
		hashPassword = func(string) (string, error) { return "h", nil }
		createAccount = func(context.Context, database.DB, *model.Account) (*model.Account, error) {
			return nil, errors.New("insert failed")
		}
		pool := worker.NewPool(2)
		defer pool.Stop()
		require.Error(t, Run(ctx, nil, pool))
	})
}
