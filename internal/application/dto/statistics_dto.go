package dto

import "github.com/shopspring/decimal"

// StatisticsDTO respuesta de GET /api/statistics.
// Ingresos y unidades de hoy y del mes en curso, más el Top-5 de ítems más vendidos.
type StatisticsDTO struct {
	Today     string `json:"today"`      // "YYYY-MM-DD"
	ThisMonth string `json:"this_month"` // "YYYY-MM"

	DailyRevenue   decimal.Decimal `json:"daily_revenue"`
	DailyItemsSold int             `json:"daily_items_sold"`

	MonthlyRevenue   decimal.Decimal `json:"monthly_revenue"`
	MonthlyItemsSold int             `json:"monthly_items_sold"`

	// Ordenado por unidades vendidas (histórico completo), empates en orden de aparición
	TopItems []TopItemDTO `json:"top_items"`
}

// TopItemDTO acumulado histórico de un ítem vendido.
type TopItemDTO struct {
	ItemID       string          `json:"item_id"`
	Name         string          `json:"name"`
	QuantitySold int             `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
