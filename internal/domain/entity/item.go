package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del inventario con su precio y existencias.
// Quantity nunca es negativo y UpdatedAt nunca es anterior a CreatedAt.
type Item struct {
	ID          string
	Name        string
	Description string // opcional; vacío si no se indicó
	Price       decimal.Decimal
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone devuelve una copia independiente del ítem.
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

// IsLowStock indica si las existencias están por debajo del umbral.
func (i *Item) IsLowStock(threshold int) bool {
	return i.Quantity < threshold
}
