package inventory_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/inventory"
)

var refNow = time.Date(2024, time.May, 10, 15, 30, 0, 0, time.UTC)

func sale(itemID, name string, qty int, total int64, at time.Time) *entity.Sale {
	return &entity.Sale{
		ID:           fmt.Sprintf("%s-%d", itemID, at.Unix()),
		ItemID:       itemID,
		ItemName:     name,
		QuantitySold: qty,
		SalePrice:    decimal.NewFromInt(total),
		SaleDate:     at,
	}
}

// Escenario: A (1 u, 10) y B (1 u, 20) el mismo día.
func TestSummarize_VentasDelDia(t *testing.T) {
	sales := []*entity.Sale{
		sale("a", "A", 1, 10, refNow.Add(-time.Hour)),
		sale("b", "B", 1, 20, refNow.Add(-2*time.Hour)),
	}

	stats := inventory.Summarize(sales, refNow)

	assert.True(t, stats.DailyRevenue.Equal(decimal.NewFromInt(30)), "daily revenue = %s", stats.DailyRevenue)
	assert.Equal(t, 2, stats.DailyItemsSold)
	assert.True(t, stats.MonthlyRevenue.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 2, stats.MonthlyItemsSold)
	require.Len(t, stats.TopItems, 2)
	assert.Equal(t, "a", stats.TopItems[0].ItemID, "empate: se conserva el orden de aparición")
	assert.Equal(t, "b", stats.TopItems[1].ItemID)
	assert.Equal(t, "2024-05-10", stats.Today)
	assert.Equal(t, "2024-05", stats.ThisMonth)
}

func TestSummarize_MesSinDia(t *testing.T) {
	sales := []*entity.Sale{
		sale("a", "A", 2, 20, refNow.AddDate(0, 0, -3)),
		sale("a", "A", 1, 10, refNow.AddDate(0, -1, 0)),
		sale("b", "B", 4, 40, refNow),
	}

	stats := inventory.Summarize(sales, refNow)

	assert.True(t, stats.DailyRevenue.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, 4, stats.DailyItemsSold)
	assert.True(t, stats.MonthlyRevenue.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, 6, stats.MonthlyItemsSold)
	// El ranking usa todas las ventas, no solo las del mes.
	require.Len(t, stats.TopItems, 2)
	assert.Equal(t, "b", stats.TopItems[0].ItemID)
	assert.Equal(t, 3, stats.TopItems[1].Quantity)
	assert.True(t, stats.TopItems[1].Revenue.Equal(decimal.NewFromInt(30)))
}

func TestSummarize_RankingEstableYTruncado(t *testing.T) {
	var sales []*entity.Sale
	for i, id := range []string{"p", "q", "r", "s", "t", "u", "v"} {
		qty := 1
		if i == 3 {
			qty = 5
		}
		sales = append(sales, sale(id, id, qty, int64(qty), refNow))
	}

	stats := inventory.Summarize(sales, refNow)

	require.Len(t, stats.TopItems, inventory.TopItemsLimit)
	ids := make([]string, 0)
	for _, ti := range stats.TopItems {
		ids = append(ids, ti.ItemID)
	}
	assert.Equal(t, []string{"s", "p", "q", "r", "t"}, ids)
}

func TestSummarize_ConservaPrimerNombre(t *testing.T) {
	sales := []*entity.Sale{
		sale("a", "Nombre viejo", 1, 10, refNow),
		sale("a", "Nombre nuevo", 1, 10, refNow),
	}

	stats := inventory.Summarize(sales, refNow)

	require.Len(t, stats.TopItems, 1)
	assert.Equal(t, "Nombre viejo", stats.TopItems[0].Name)
}

func TestSummarize_SinVentas(t *testing.T) {
	stats := inventory.Summarize(nil, refNow)

	assert.True(t, stats.DailyRevenue.IsZero())
	assert.True(t, stats.MonthlyRevenue.IsZero())
	assert.NotNil(t, stats.TopItems)
	assert.Empty(t, stats.TopItems)
}
