package filestore

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-inventario/internal/domain"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
)

var (
	_ repository.ItemRepository = (*ItemRepo)(nil)
	_ repository.SaleRepository = (*SaleRepo)(nil)
	_ repository.ItemRepository = (*txItemRepo)(nil)
	_ repository.SaleRepository = (*txSaleRepo)(nil)
)

// ── Repositorios fuera de transacción ─────────────────────────────────────

// ItemRepo implementa repository.ItemRepository sobre el Store.
type ItemRepo struct{ store *Store }

func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	return r.store.Run(ctx, func(items repository.ItemRepository, _ repository.SaleRepository) error {
		return items.Create(ctx, item)
	})
}

func (r *ItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	return r.store.getItem(id), nil
}

// GetForUpdate fuera de Run equivale a GetByID.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	return r.store.Run(ctx, func(items repository.ItemRepository, _ repository.SaleRepository) error {
		return items.Update(ctx, item)
	})
}

func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	return r.store.Run(ctx, func(items repository.ItemRepository, _ repository.SaleRepository) error {
		return items.Delete(ctx, id)
	})
}

func (r *ItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	return r.store.listItems(), nil
}

// SaleRepo implementa repository.SaleRepository sobre el Store.
type SaleRepo struct{ store *Store }

func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	return r.store.Run(ctx, func(_ repository.ItemRepository, sales repository.SaleRepository) error {
		return sales.Create(ctx, sale)
	})
}

func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	return r.store.getSale(id), nil
}

func (r *SaleRepo) List(_ context.Context) ([]*entity.Sale, error) {
	return r.store.listSales(), nil
}

// ── Repositorios atados a una unidad de trabajo ───────────────────────────

type txState struct {
	items      *collection[*entity.Item]
	sales      *collection[*entity.Sale]
	itemsDirty bool
	salesDirty bool
}

type txItemRepo struct{ st *txState }

func (r *txItemRepo) Create(_ context.Context, item *entity.Item) error {
	if _, ok := r.st.items.get(item.ID); ok {
		return fmt.Errorf("%w: item %s", domain.ErrDuplicate, item.ID)
	}
	r.st.items.put(item.ID, item.Clone())
	r.st.itemsDirty = true
	return nil
}

func (r *txItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	if it, ok := r.st.items.get(id); ok {
		return it.Clone(), nil
	}
	return nil, nil
}

// GetForUpdate no necesita bloqueo adicional: Run ya tiene el lock exclusivo.
func (r *txItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *txItemRepo) Update(_ context.Context, item *entity.Item) error {
	if _, ok := r.st.items.get(item.ID); !ok {
		return domain.ErrNotFound
	}
	r.st.items.put(item.ID, item.Clone())
	r.st.itemsDirty = true
	return nil
}

func (r *txItemRepo) Delete(_ context.Context, id string) error {
	if r.st.items.remove(id) {
		r.st.itemsDirty = true
	}
	return nil
}

func (r *txItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	return cloneItems(r.st.items.values()), nil
}

type txSaleRepo struct{ st *txState }

func (r *txSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if _, ok := r.st.sales.get(sale.ID); ok {
		return fmt.Errorf("%w: sale %s", domain.ErrDuplicate, sale.ID)
	}
	r.st.sales.put(sale.ID, sale.Clone())
	r.st.salesDirty = true
	return nil
}

func (r *txSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	if s, ok := r.st.sales.get(id); ok {
		return s.Clone(), nil
	}
	return nil, nil
}

func (r *txSaleRepo) List(_ context.Context) ([]*entity.Sale, error) {
	return cloneSales(r.st.sales.values()), nil
}
