package inventory

import (
	"strings"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/pkg/clock"
	"golang.org/x/text/cases"
)

// FilterItems devuelve los ítems cuyo nombre o descripción contiene query,
// sin distinguir mayúsculas/minúsculas. Un query vacío no filtra.
func FilterItems(items []*entity.Item, query string) []*entity.Item {
	if query == "" {
		return items
	}
	fold := cases.Fold()
	needle := fold.String(query)
	out := make([]*entity.Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(fold.String(it.Name), needle) ||
			(it.Description != "" && strings.Contains(fold.String(it.Description), needle)) {
			out = append(out, it)
		}
	}
	return out
}

// LowStock devuelve los ítems con existencias estrictamente menores que threshold.
func LowStock(items []*entity.Item, threshold int) []*entity.Item {
	out := make([]*entity.Item, 0)
	for _, it := range items {
		if it.IsLowStock(threshold) {
			out = append(out, it)
		}
	}
	return out
}

// FilterSalesByDate devuelve las ventas cuya fecha, en formato "YYYY-MM-DD HH:MM:SS",
// empieza por prefix. Un prefijo vacío no filtra.
func FilterSalesByDate(sales []*entity.Sale, prefix string) []*entity.Sale {
	if prefix == "" {
		return sales
	}
	out := make([]*entity.Sale, 0, len(sales))
	for _, s := range sales {
		if strings.HasPrefix(clock.Format(s.SaleDate), prefix) {
			out = append(out, s)
		}
	}
	return out
}
