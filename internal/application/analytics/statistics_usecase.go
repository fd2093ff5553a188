// Package analytics contiene los casos de uso de reportes de ventas.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
	"github.com/jhoicas/tienda-inventario/internal/domain/inventory"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
	"github.com/jhoicas/tienda-inventario/pkg/clock"
)

// StatisticsUseCase genera el resumen de ventas del día y del mes en curso.
//
// No guarda estado: recalcula todo a partir del historial de ventas en cada llamada.
type StatisticsUseCase struct {
	saleRepo repository.SaleRepository
	clock    clock.Clock
}

// NewStatisticsUseCase construye el caso de uso.
func NewStatisticsUseCase(saleRepo repository.SaleRepository, clk clock.Clock) *StatisticsUseCase {
	return &StatisticsUseCase{saleRepo: saleRepo, clock: clk}
}

// GetSummary construye el StatisticsDTO con la hora actual del reloj.
func (uc *StatisticsUseCase) GetSummary(ctx context.Context) (*dto.StatisticsDTO, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("statistics: listar ventas: %w", err)
	}
	stats := inventory.Summarize(sales, uc.clock.Now())

	top := make([]dto.TopItemDTO, 0, len(stats.TopItems))
	for _, ti := range stats.TopItems {
		top = append(top, dto.TopItemDTO{
			ItemID:       ti.ItemID,
			Name:         ti.Name,
			QuantitySold: ti.Quantity,
			TotalRevenue: ti.Revenue,
		})
	}
	return &dto.StatisticsDTO{
		Today:            stats.Today,
		ThisMonth:        stats.ThisMonth,
		DailyRevenue:     stats.DailyRevenue,
		DailyItemsSold:   stats.DailyItemsSold,
		MonthlyRevenue:   stats.MonthlyRevenue,
		MonthlyItemsSold: stats.MonthlyItemsSold,
		TopItems:         top,
	}, nil
}
