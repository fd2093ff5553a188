package inventory

import (
	"strings"

	"github.com/jhoicas/tienda-inventario/internal/domain"
	"github.com/shopspring/decimal"
)

// ValidateItem verifica los campos editables de un ítem.
func ValidateItem(name string, price decimal.Decimal, quantity int) error {
	if strings.TrimSpace(name) == "" {
		return domain.Invalid("el nombre es requerido")
	}
	if price.IsNegative() {
		return domain.Invalid("el precio no puede ser negativo")
	}
	if quantity < 0 {
		return domain.Invalid("la cantidad no puede ser negativa")
	}
	return nil
}
