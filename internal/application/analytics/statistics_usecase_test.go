package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-inventario/internal/application/analytics"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/infrastructure/filestore"
	"github.com/jhoicas/tienda-inventario/pkg/clock"
)

func TestStatisticsUseCase_GetSummary(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.May, 10, 15, 0, 0, 0, time.Local)
	store := filestore.NewMemory()
	sales := store.Sales()

	add := func(id, itemID, name string, qty int, amount string, at time.Time) {
		require.NoError(t, sales.Create(ctx, &entity.Sale{
			ID: id, ItemID: itemID, ItemName: name, QuantitySold: qty,
			SalePrice: decimal.RequireFromString(amount), SaleDate: at,
		}))
	}
	add("1", "a", "Martillo", 1, "10", now.Add(-2*time.Hour))
	add("2", "b", "Clavo", 2, "20", now.Add(-time.Hour))
	add("3", "a", "Martillo", 1, "10", now.AddDate(0, 0, -3))
	add("4", "c", "Sierra", 9, "90", now.AddDate(0, -1, 0))

	uc := analytics.NewStatisticsUseCase(sales, clock.NewFixed(now))
	got, err := uc.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2024-05-10", got.Today)
	assert.Equal(t, "2024-05", got.ThisMonth)
	assert.True(t, got.DailyRevenue.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 3, got.DailyItemsSold)
	assert.True(t, got.MonthlyRevenue.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, 4, got.MonthlyItemsSold)

	require.Len(t, got.TopItems, 3)
	assert.Equal(t, "c", got.TopItems[0].ItemID)
	assert.Equal(t, "a", got.TopItems[1].ItemID)
	assert.Equal(t, 2, got.TopItems[1].QuantitySold)
	assert.Equal(t, "b", got.TopItems[2].ItemID)
}

func TestStatisticsUseCase_NoSales(t *testing.T) {
	uc := analytics.NewStatisticsUseCase(filestore.NewMemory().Sales(), clock.NewFixed(time.Now()))
	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, got.DailyRevenue.IsZero())
	assert.NotNil(t, got.TopItems)
	assert.Empty(t, got.TopItems)
}
