package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
	"github.com/jhoicas/tienda-inventario/internal/domain"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/inventory"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
	"github.com/jhoicas/tienda-inventario/pkg/clock"
)

// DefaultLowStockThreshold umbral de existencias bajas si no se configura otro.
const DefaultLowStockThreshold = 5

// ItemUseCase casos de uso CRUD del catálogo de ítems.
type ItemUseCase struct {
	repo              repository.ItemRepository
	tx                TxRunner
	clock             clock.Clock
	pageSize          int
	lowStockThreshold int
}

// NewItemUseCase construye el caso de uso. tx serializa las ediciones con las ventas;
// pageSize o threshold en cero toman los valores por defecto.
func NewItemUseCase(repo repository.ItemRepository, tx TxRunner, clk clock.Clock, pageSize, lowStockThreshold int) *ItemUseCase {
	if pageSize <= 0 {
		pageSize = inventory.DefaultPageSize
	}
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	return &ItemUseCase{
		repo:              repo,
		tx:                tx,
		clock:             clk,
		pageSize:          pageSize,
		lowStockThreshold: lowStockThreshold,
	}
}

// Create crea un ítem con id nuevo. CreatedAt y UpdatedAt quedan iguales.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if err := inventory.ValidateItem(in.Name, in.Price, in.Quantity); err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un ítem; domain.ErrNotFound si no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update reemplaza nombre, descripción, precio y cantidad. Conserva CreatedAt.
// Lee y escribe dentro de la misma unidad de trabajo: una venta confirmada en medio
// no puede dejar UpdatedAt en el pasado.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if err := inventory.ValidateItem(in.Name, in.Price, in.Quantity); err != nil {
		return nil, err
	}
	var updated *entity.Item
	err := uc.tx.Run(ctx, func(itemRepo repository.ItemRepository, _ repository.SaleRepository) error {
		item, err := itemRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		item.Name = in.Name
		item.Description = in.Description
		item.Price = in.Price
		item.Quantity = in.Quantity
		item.UpdatedAt = touch(item.UpdatedAt, uc.clock.Now())
		if err := itemRepo.Update(ctx, item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(updated), nil
}

// Delete elimina un ítem. Un id inexistente no es error.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List filtra por search (nombre o descripción) y devuelve la página pedida.
func (uc *ItemUseCase) List(ctx context.Context, in dto.ItemListRequest) (*dto.ItemListResponse, error) {
	in.DefaultPage()
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	page := inventory.Paginate(inventory.FilterItems(all, in.Search), in.Page, uc.pageSize)
	items := make([]dto.ItemResponse, 0, len(page.Items))
	for _, it := range page.Items {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items:  items,
		Page:   toPageResponse(page.Page, page.PageSize, page.Total, page.TotalPages),
		Search: in.Search,
	}, nil
}

// LowStock lista los ítems con existencias por debajo del umbral configurado.
func (uc *ItemUseCase) LowStock(ctx context.Context) (*dto.LowStockResponse, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	low := inventory.LowStock(all, uc.lowStockThreshold)
	items := make([]dto.ItemResponse, 0, len(low))
	for _, it := range low {
		items = append(items, *toItemResponse(it))
	}
	return &dto.LowStockResponse{Threshold: uc.lowStockThreshold, Items: items}, nil
}
