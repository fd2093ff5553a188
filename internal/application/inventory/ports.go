package inventory

import (
	"context"

	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una unidad de trabajo, pasando repositorios atados a ella.
// Garantiza que el descuento de stock y el registro de la venta se apliquen juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
