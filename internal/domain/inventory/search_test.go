package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/inventory"
)

func catalog() []*entity.Item {
	return []*entity.Item{
		{ID: "1", Name: "Café de Colombia", Description: "Tostado medio", Price: decimal.NewFromInt(20), Quantity: 10},
		{ID: "2", Name: "Té verde", Description: "", Price: decimal.NewFromInt(8), Quantity: 3},
		{ID: "3", Name: "Azúcar", Description: "Ideal para el CAFÉ", Price: decimal.NewFromInt(4), Quantity: 0},
	}
}

func names(items []*entity.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestFilterItems_NombreODescripcionSinMayusculas(t *testing.T) {
	got := inventory.FilterItems(catalog(), "café")

	assert.Equal(t, []string{"Café de Colombia", "Azúcar"}, names(got))
}

func TestFilterItems_QueryVacioNoFiltra(t *testing.T) {
	assert.Len(t, inventory.FilterItems(catalog(), ""), 3)
}

func TestFilterItems_SinCoincidencias(t *testing.T) {
	got := inventory.FilterItems(catalog(), "harina")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLowStock_EstrictamenteMenorQueUmbral(t *testing.T) {
	got := inventory.LowStock(catalog(), 5)

	assert.Equal(t, []string{"Té verde", "Azúcar"}, names(got))
	assert.Empty(t, inventory.LowStock(catalog(), 0))
	assert.Len(t, inventory.LowStock(catalog(), 11), 3)
}

func TestValidateItem(t *testing.T) {
	assert.NoError(t, inventory.ValidateItem("Pan", decimal.Zero, 0))
	assert.Error(t, inventory.ValidateItem("  ", decimal.NewFromInt(1), 1))
	assert.Error(t, inventory.ValidateItem("Pan", decimal.NewFromInt(-1), 1))
	assert.Error(t, inventory.ValidateItem("Pan", decimal.NewFromInt(1), -1))
}

func TestFilterSalesByDate_PrefijoDeFecha(t *testing.T) {
	at := func(y int, m time.Month, d, h int) time.Time { return time.Date(y, m, d, h, 0, 0, 0, time.Local) }
	sales := []*entity.Sale{
		{ID: "a", SaleDate: at(2024, time.May, 10, 9)},
		{ID: "b", SaleDate: at(2024, time.May, 11, 18)},
		{ID: "c", SaleDate: at(2024, time.June, 1, 8)},
		{ID: "d", SaleDate: at(2023, time.May, 10, 9)},
	}
	ids := func(in []*entity.Sale) []string {
		out := []string{}
		for _, s := range in {
			out = append(out, s.ID)
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(inventory.FilterSalesByDate(sales, "")))
	assert.Equal(t, []string{"a", "b", "c"}, ids(inventory.FilterSalesByDate(sales, "2024")))
	assert.Equal(t, []string{"a", "b"}, ids(inventory.FilterSalesByDate(sales, "2024-05")))
	assert.Equal(t, []string{"a"}, ids(inventory.FilterSalesByDate(sales, "2024-05-10")))
	assert.Empty(t, inventory.FilterSalesByDate(sales, "2024-05-10 10"))
}
