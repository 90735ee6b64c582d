//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/listkeeper-server/internal/model"
	"github.com/dtroode/listkeeper-server/internal/password"
	repo "github.com/dtroode/listkeeper-server/internal/repository/postgres"
	"github.com/dtroode/listkeeper-server/internal/service"
	"github.com/dtroode/listkeeper-server/internal/testutil"
)

func TestRepositories_LockedReadModifyWrite(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	lg := testutil.MakeNoopLogger()
	userStore := repo.NewUserRepository(conn)
	items := service.NewItem(repo.NewItemRepository(conn), conn, lg)
	users := service.NewUser(userStore, password.NewBcrypt(4), conn, nil, nil, lg)

	const workers = 12

	t.Run("item_updates", func(t *testing.T) {
		owner, err := userStore.Create(ctx, newUser("lock-items@example.com"))
		require.NoError(t, err)
		item, err := items.Create(ctx, model.CreateItemParams{Name: "initial", Quantity: 1}, owner.ID)
		require.NoError(t, err)

		var (
			wg         sync.WaitGroup
			names      []string
			quantities []float64
		)
		for i := range workers {
			params := model.UpdateItemParams{ID: item.ID}
			if i%2 == 0 {
				name := fmt.Sprintf("name-%d", i)
				params.Name = &name
				names = append(names, name)
			} else {
				q := float64(i + 1)
				params.Quantity = &q
				quantities = append(quantities, q)
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := items.Update(ctx, params, owner.ID)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := items.FindOne(ctx, item.ID, owner.ID)
		require.NoError(t, err)
		assert.Contains(t, names, got.Name)
		assert.Contains(t, quantities, got.Quantity)
	})

	t.Run("block_racing_updates", func(t *testing.T) {
		admin, err := userStore.Create(ctx, newUser("lock-admin@example.com", model.RoleAdmin))
		require.NoError(t, err)
		target, err := userStore.Create(ctx, newUser("lock-target@example.com"))
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if i == workers/2 {
					_, err := users.Block(ctx, target.ID, admin)
					assert.NoError(t, err)
					return
				}
				name := fmt.Sprintf("Name %d", i)
				_, err := users.Update(ctx, model.UpdateUserParams{ID: target.ID, FullName: &name}, admin)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := userStore.GetByID(ctx, target.ID)
		require.NoError(t, err)
		require.False(t, got.IsActive)
		require.NotEqual(t, "Test User", got.FullName)
	})
}
