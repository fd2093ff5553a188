package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest body para POST /api/sales.
type RecordSaleRequest struct {
	ItemID       string `json:"item_id"`
	QuantitySold int    `json:"quantity_sold"`
}

// SaleListRequest query de GET /api/sales. Date es un prefijo "YYYY", "YYYY-MM" o "YYYY-MM-DD".
type SaleListRequest struct {
	PageRequest
	Date string `query:"date"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID           string          `json:"id"`
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name"`
	QuantitySold int             `json:"quantity_sold"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	SaleDate     time.Time       `json:"sale_date"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
	Page  PageResponse   `json:"page"`
	Date  string         `json:"date"`
}
