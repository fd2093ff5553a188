package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
	appinventory "github.com/jhoicas/tienda-inventario/internal/application/inventory"
	"github.com/jhoicas/tienda-inventario/internal/domain"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
	"github.com/jhoicas/tienda-inventario/internal/infrastructure/filestore"
	"github.com/jhoicas/tienda-inventario/pkg/clock"
)

var t0 = time.Date(2024, time.May, 10, 9, 0, 0, 0, time.Local)

func newItems(t *testing.T) (*appinventory.ItemUseCase, *clock.Fixed) {
	t.Helper()
	clk := clock.NewFixed(t0)
	store := filestore.NewMemory()
	return appinventory.NewItemUseCase(store.Items(), store, clk, 5, 5), clk
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ── Create / GetByID ──────────────────────────────────────────────────────

func TestItemUseCase_Create(t *testing.T) {
	ctx := context.Background()
	uc, _ := newItems(t)

	got, err := uc.Create(ctx, dto.CreateItemRequest{Name: "Martillo", Price: price("19.99"), Quantity: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "", got.Description)
	assert.True(t, got.CreatedAt.Equal(t0))
	assert.True(t, got.UpdatedAt.Equal(got.CreatedAt))

	again, err := uc.GetByID(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Name, again.Name)
	assert.True(t, again.Price.Equal(price("19.99")))
}

func TestItemUseCase_CreateValidation(t *testing.T) {
	ctx := context.Background()
	uc, _ := newItems(t)

	cases := []dto.CreateItemRequest{
		{Name: "  ", Price: price("1"), Quantity: 1},
		{Name: "x", Price: price("-0.01"), Quantity: 1},
		{Name: "x", Price: price("1"), Quantity: -1},
	}
	for _, in := range cases {
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestItemUseCase_GetByIDNotFound(t *testing.T) {
	uc, _ := newItems(t)
	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Update / Delete ───────────────────────────────────────────────────────

func TestItemUseCase_Update(t *testing.T) {
	ctx := context.Background()
	uc, clk := newItems(t)
	created, err := uc.Create(ctx, dto.CreateItemRequest{Name: "Martillo", Description: "viejo", Price: price("10"), Quantity: 1})
	require.NoError(t, err)

	clk.Advance(time.Hour)
	updated, err := uc.Update(ctx, created.ID, dto.UpdateItemRequest{Name: "Mazo", Price: price("12.5"), Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, "Mazo", updated.Name)
	assert.Equal(t, "", updated.Description)
	assert.Equal(t, 4, updated.Quantity)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, updated.UpdatedAt.Equal(t0.Add(time.Hour)))
}

func TestItemUseCase_UpdateNeverMovesUpdatedAtBackwards(t *testing.T) {
	ctx := context.Background()
	uc, clk := newItems(t)
	created, err := uc.Create(ctx, dto.CreateItemRequest{Name: "a", Price: price("1"), Quantity: 1})
	require.NoError(t, err)

	clk.Advance(-time.Hour)
	updated, err := uc.Update(ctx, created.ID, dto.UpdateItemRequest{Name: "b", Price: price("1"), Quantity: 1})
	require.NoError(t, err)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

// staleReads devuelve siempre la copia tomada al crearse, como una lectura que
// quedó atrás respecto de una venta concurrente.
type staleReads struct {
	repository.ItemRepository
	snapshot *entity.Item
}

func (r staleReads) GetByID(context.Context, string) (*entity.Item, error) {
	return r.snapshot.Clone(), nil
}

func TestItemUseCase_UpdateSeesSaleCommittedBeforeIt(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFixed(t0)
	store := filestore.NewMemory()
	seed := appinventory.NewItemUseCase(store.Items(), store, clk, 5, 5)
	created, err := seed.Create(ctx, dto.CreateItemRequest{Name: "Martillo", Price: price("10"), Quantity: 5})
	require.NoError(t, err)

	snapshot, err := store.Items().GetByID(ctx, created.ID)
	require.NoError(t, err)
	items := appinventory.NewItemUseCase(staleReads{ItemRepository: store.Items(), snapshot: snapshot}, store, clk, 5, 5)
	sales := appinventory.NewSaleUseCase(store, store.Sales(), clk, 5, nil)

	// la venta se confirma una hora después; la edición llega con un reloj anterior
	clk.Advance(time.Hour)
	_, err = sales.RecordSale(ctx, dto.RecordSaleRequest{ItemID: created.ID, QuantitySold: 1})
	require.NoError(t, err)
	clk.Advance(-30 * time.Minute)

	updated, err := items.Update(ctx, created.ID, dto.UpdateItemRequest{Name: "Mazo", Price: price("10"), Quantity: 4})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.Equal(t0.Add(time.Hour)), "updated_at no debe retroceder tras la venta")

	stored, err := store.Items().GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.UpdatedAt.Equal(t0.Add(time.Hour)))
	assert.Equal(t, "Mazo", stored.Name)
}

func TestItemUseCase_UpdateErrors(t *testing.T) {
	ctx := context.Background()
	uc, _ := newItems(t)

	_, err := uc.Update(ctx, "no-existe", dto.UpdateItemRequest{Name: "a", Price: price("1"), Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	created, err := uc.Create(ctx, dto.CreateItemRequest{Name: "a", Price: price("1"), Quantity: 1})
	require.NoError(t, err)
	_, err = uc.Update(ctx, created.ID, dto.UpdateItemRequest{Name: "a", Price: price("1"), Quantity: -3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemUseCase_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	uc, _ := newItems(t)
	created, err := uc.Create(ctx, dto.CreateItemRequest{Name: "a", Price: price("1"), Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── List / LowStock ───────────────────────────────────────────────────────

func TestItemUseCase_ListPaginatesAndSearches(t *testing.T) {
	ctx := context.Background()
	uc, _ := newItems(t)
	names := []string{"Martillo", "Clavo", "Tornillo", "Llave inglesa", "Destornillador", "Sierra", "Lija"}
	for _, n := range names {
		_, err := uc.Create(ctx, dto.CreateItemRequest{Name: n, Price: price("1"), Quantity: 1})
		require.NoError(t, err)
	}

	first, err := uc.List(ctx, dto.ItemListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Page.Page)
	assert.Equal(t, 7, first.Page.Total)
	assert.Equal(t, 2, first.Page.TotalPages)
	require.Len(t, first.Items, 5)
	assert.Equal(t, "Martillo", first.Items[0].Name)

	second, err := uc.List(ctx, dto.ItemListRequest{PageRequest: dto.PageRequest{Page: 2}})
	require.NoError(t, err)
	require.Len(t, second.Items, 2)
	assert.Equal(t, "Lija", second.Items[1].Name)

	beyond, err := uc.List(ctx, dto.ItemListRequest{PageRequest: dto.PageRequest{Page: 9}})
	require.NoError(t, err)
	assert.NotNil(t, beyond.Items)
	assert.Empty(t, beyond.Items)

	found, err := uc.List(ctx, dto.ItemListRequest{Search: "TORNILL"})
	require.NoError(t, err)
	assert.Equal(t, "TORNILL", found.Search)
	require.Len(t, found.Items, 2)
	assert.Equal(t, "Tornillo", found.Items[0].Name)
	assert.Equal(t, "Destornillador", found.Items[1].Name)
}

func TestItemUseCase_LowStock(t *testing.T) {
	ctx := context.Background()
	uc, _ := newItems(t)
	for i, q := range []int{0, 4, 5, 12} {
		_, err := uc.Create(ctx, dto.CreateItemRequest{Name: string(rune('a' + i)), Price: price("1"), Quantity: q})
		require.NoError(t, err)
	}

	low, err := uc.LowStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, low.Threshold)
	require.Len(t, low.Items, 2)
	assert.Equal(t, 0, low.Items[0].Quantity)
	assert.Equal(t, 4, low.Items[1].Quantity)
}
