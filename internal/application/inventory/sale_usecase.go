package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
	"github.com/jhoicas/tienda-inventario/internal/domain"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/inventory"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
	"github.com/jhoicas/tienda-inventario/pkg/clock"
)

// SaleObserver recibe cada venta confirmada (métricas).
type SaleObserver interface {
	ObserveSale(sale *entity.Sale)
}

// SaleUseCase registra ventas descontando stock dentro de una unidad de trabajo
// (bloqueo de fila con SELECT FOR UPDATE en los backends SQL).
type SaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
	clock    clock.Clock
	pageSize int
	observer SaleObserver
}

// NewSaleUseCase construye el caso de uso. observer puede ser nil.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, clk clock.Clock, pageSize int, observer SaleObserver) *SaleUseCase {
	if pageSize <= 0 {
		pageSize = inventory.DefaultPageSize
	}
	return &SaleUseCase{
		txRunner: txRunner,
		saleRepo: saleRepo,
		clock:    clk,
		pageSize: pageSize,
		observer: observer,
	}
}

// RecordSale bloquea el ítem, valida existencias, descuenta la cantidad y registra la venta.
// Devuelve *domain.InsufficientStockError si no alcanza el stock; en ese caso nada cambia.
func (uc *SaleUseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if in.ItemID == "" {
		return nil, domain.Invalid("item_id es obligatorio")
	}
	if in.QuantitySold <= 0 {
		return nil, domain.Invalid("quantity_sold debe ser mayor que cero")
	}

	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, saleRepo repository.SaleRepository) error {
		item, err := itemRepo.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.Quantity < in.QuantitySold {
			return &domain.InsufficientStockError{
				ItemID:    item.ID,
				Available: item.Quantity,
				Requested: in.QuantitySold,
			}
		}

		now := uc.clock.Now()
		item.Quantity -= in.QuantitySold
		item.UpdatedAt = touch(item.UpdatedAt, now)
		if err := itemRepo.Update(ctx, item); err != nil {
			return err
		}

		sale = &entity.Sale{
			ID:           uuid.New().String(),
			ItemID:       item.ID,
			ItemName:     item.Name,
			QuantitySold: in.QuantitySold,
			SalePrice:    item.Price.Mul(decimal.NewFromInt(int64(in.QuantitySold))),
			SaleDate:     now,
		}
		return saleRepo.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	if uc.observer != nil {
		uc.observer.ObserveSale(sale)
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta; domain.ErrNotFound si no existe.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List filtra por prefijo de fecha y pagina en orden de registro.
func (uc *SaleUseCase) List(ctx context.Context, in dto.SaleListRequest) (*dto.SaleListResponse, error) {
	in.DefaultPage()
	all, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	page := inventory.Paginate(inventory.FilterSalesByDate(all, in.Date), in.Page, uc.pageSize)
	sales := make([]dto.SaleResponse, 0, len(page.Items))
	for _, s := range page.Items {
		sales = append(sales, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Sales: sales,
		Page:  toPageResponse(page.Page, page.PageSize, page.Total, page.TotalPages),
		Date:  in.Date,
	}, nil
}
