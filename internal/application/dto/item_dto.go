package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un ítem.
type CreateItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// UpdateItemRequest entrada para editar un ítem. Reemplaza todos los campos editables.
type UpdateItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// ItemListRequest query de GET /api/items.
type ItemListRequest struct {
	PageRequest
	Search string `query:"search"`
}

// ItemResponse salida de un ítem.
type ItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ItemListResponse lista paginada de ítems.
type ItemListResponse struct {
	Items  []ItemResponse `json:"items"`
	Page   PageResponse   `json:"page"`
	Search string         `json:"search"`
}

// LowStockResponse ítems con existencias bajo el umbral.
type LowStockResponse struct {
	Threshold int            `json:"threshold"`
	Items     []ItemResponse `json:"items"`
}
