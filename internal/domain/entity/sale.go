package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registra unidades vendidas de un Item en un momento dado. Es inmutable.
//
// ItemID es una referencia débil: el ítem puede haberse editado o eliminado después.
// ItemName es una copia del nombre al momento de la venta y no se sincroniza.
type Sale struct {
	ID           string
	ItemID       string
	ItemName     string
	QuantitySold int
	SalePrice    decimal.Decimal // precio del ítem al vender * QuantitySold
	SaleDate     time.Time
}

// Clone devuelve una copia independiente de la venta.
func (s *Sale) Clone() *Sale {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
