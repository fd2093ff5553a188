package inventory

import (
	"time"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
)

// touch devuelve now, salvo que sea anterior a prev (reloj retrocedido).
func touch(prev, now time.Time) time.Time {
	if now.Before(prev) {
		return prev
	}
	return now
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Quantity:    it.Quantity,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:           s.ID,
		ItemID:       s.ItemID,
		ItemName:     s.ItemName,
		QuantitySold: s.QuantitySold,
		SalePrice:    s.SalePrice,
		SaleDate:     s.SaleDate,
	}
}

func toPageResponse(page, size, total, totalPages int) dto.PageResponse {
	return dto.PageResponse{Page: page, PageSize: size, Total: total, TotalPages: totalPages}
}
