package repository

import (
	"context"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale. Las ventas no se modifican ni eliminan.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List devuelve todas las ventas en orden de registro.
	List(ctx context.Context) ([]*entity.Sale, error)
}
