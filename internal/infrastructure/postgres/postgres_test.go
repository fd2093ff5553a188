package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-inventario/internal/domain"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
	"github.com/jhoicas/tienda-inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-inventario/pkg/config"
)

// Requiere TEST_DATABASE_URL apuntando a una base desechable.
func openTestPool(t *testing.T) (*postgres.TxRunner, *postgres.ItemRepo, *postgres.SaleRepo) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE items, sales`)
	require.NoError(t, err)
	return postgres.NewTxRunner(pool), postgres.NewItemRepository(pool), postgres.NewSaleRepository(pool)
}

func TestPostgres_ItemLifecycle(t *testing.T) {
	ctx := context.Background()
	_, items, _ := openTestPool(t)
	now := time.Now().Truncate(time.Second)

	ids := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}
	for i, id := range ids {
		require.NoError(t, items.Create(ctx, &entity.Item{
			ID: id, Name: string(rune('a' + i)), Price: decimal.RequireFromString("19.99"),
			Quantity: i, CreatedAt: now, UpdatedAt: now,
		}))
	}
	assert.ErrorIs(t, items.Create(ctx, &entity.Item{ID: ids[0], CreatedAt: now, UpdatedAt: now}), domain.ErrDuplicate)

	first, err := items.GetByID(ctx, ids[0])
	require.NoError(t, err)
	first.Name = "editado"
	require.NoError(t, items.Update(ctx, first))
	require.NoError(t, items.Delete(ctx, ids[1]))
	require.NoError(t, items.Delete(ctx, "no-existe"))

	list, err := items.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "editado", list[0].Name)
	assert.True(t, list[0].Price.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, ids[2], list[1].ID)

	missing, err := items.GetByID(ctx, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.ErrorIs(t, items.Update(ctx, &entity.Item{ID: "no-existe"}), domain.ErrNotFound)
}

func TestPostgres_TxRollback(t *testing.T) {
	ctx := context.Background()
	tx, items, sales := openTestPool(t)
	now := time.Now().Truncate(time.Second)
	id := uuid.NewString()
	require.NoError(t, items.Create(ctx, &entity.Item{ID: id, Name: "a", Price: decimal.NewFromInt(1), Quantity: 5, CreatedAt: now, UpdatedAt: now}))

	err := tx.Run(ctx, func(ir repository.ItemRepository, sr repository.SaleRepository) error {
		it, err := ir.GetForUpdate(ctx, id)
		require.NoError(t, err)
		it.Quantity = 0
		require.NoError(t, ir.Update(ctx, it))
		require.NoError(t, sr.Create(ctx, &entity.Sale{ID: uuid.NewString(), ItemID: id, ItemName: "a", QuantitySold: 5, SalePrice: decimal.NewFromInt(5), SaleDate: now}))
		return domain.ErrInvalidInput
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	it, err := items.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 5, it.Quantity)
	list, err := sales.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
