package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/jhoicas/tienda-inventario/internal/domain"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
	"github.com/jhoicas/tienda-inventario/pkg/clock"
)

var (
	_ repository.ItemRepository = (*ItemRepo)(nil)
	_ repository.SaleRepository = (*SaleRepo)(nil)
)

const (
	itemColumns = `id, name, description, price, quantity, created_at, updated_at`
	saleColumns = `id, item_id, item_name, quantity_sold, sale_price, sale_date`
)

// scanner cubre *sql.Row y *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// mapWriteError traduce violaciones de restricciones a errores de dominio.
func mapWriteError(op string, err error) error {
	var sqlErr sqlite3.Error
	if errors.As(err, &sqlErr) && sqlErr.Code == sqlite3.ErrConstraint {
		switch sqlErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return domain.ErrDuplicate
		case sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ── Items ─────────────────────────────────────────────────────────────────

// ItemRepo implementación de ItemRepository sobre SQLite (usable con db o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar db o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

func scanItem(s scanner) (*entity.Item, error) {
	var (
		it               entity.Item
		created, updated string
	)
	if err := s.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.Quantity, &created, &updated); err != nil {
		return nil, err
	}
	var err error
	if it.CreatedAt, err = clock.Parse(created); err != nil {
		return nil, fmt.Errorf("%w: item %s: %v", domain.ErrCorruptData, it.ID, err)
	}
	if it.UpdatedAt, err = clock.Parse(updated); err != nil {
		return nil, fmt.Errorf("%w: item %s: %v", domain.ErrCorruptData, it.ID, err)
	}
	return &it, nil
}

func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO items (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Description, item.Price.String(), item.Quantity,
		clock.Format(item.CreatedAt), clock.Format(item.UpdatedAt),
	)
	if err != nil {
		return mapWriteError("insert item", err)
	}
	return nil
}

func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	it, err := scanItem(r.q.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// GetForUpdate equivale a GetByID: la conexión única ya serializa las transacciones.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE items SET name = ?, description = ?, price = ?, quantity = ?, updated_at = ? WHERE id = ?`,
		item.Name, item.Description, item.Price.String(), item.Quantity, clock.Format(item.UpdatedAt), item.ID,
	)
	if err != nil {
		return mapWriteError("update item", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+itemColumns+` FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// ── Sales ─────────────────────────────────────────────────────────────────

// SaleRepo implementación de SaleRepository sobre SQLite.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar db o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(s scanner) (*entity.Sale, error) {
	var (
		sale entity.Sale
		date string
	)
	if err := s.Scan(&sale.ID, &sale.ItemID, &sale.ItemName, &sale.QuantitySold, &sale.SalePrice, &date); err != nil {
		return nil, err
	}
	var err error
	if sale.SaleDate, err = clock.Parse(date); err != nil {
		return nil, fmt.Errorf("%w: sale %s: %v", domain.ErrCorruptData, sale.ID, err)
	}
	return &sale, nil
}

func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO sales (`+saleColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		sale.ID, sale.ItemID, sale.ItemName, sale.QuantitySold, sale.SalePrice.String(), clock.Format(sale.SaleDate),
	)
	if err != nil {
		return mapWriteError("insert sale", err)
	}
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	sale, err := scanSale(r.q.QueryRowContext(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}

func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sale)
	}
	return out, rows.Err()
}
