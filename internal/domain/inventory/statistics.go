package inventory

import (
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/pkg/clock"
	"github.com/shopspring/decimal"
)

// TopItemsLimit número de ítems en el ranking de más vendidos.
const TopItemsLimit = 5

// TopItem acumulado de ventas de un ítem.
type TopItem struct {
	ItemID   string
	Name     string // nombre registrado en la primera venta encontrada
	Quantity int
	Revenue  decimal.Decimal
}

// Stats resumen de ventas del día y del mes de referencia.
type Stats struct {
	Today            string // YYYY-MM-DD
	ThisMonth        string // YYYY-MM
	DailyRevenue     decimal.Decimal
	DailyItemsSold   int
	MonthlyRevenue   decimal.Decimal
	MonthlyItemsSold int
	TopItems         []TopItem
}

// Summarize calcula las estadísticas a partir de todas las ventas, sin estado persistido.
//
// Una venta cuenta para el día (o el mes) si su fecha en formato "YYYY-MM-DD HH:MM:SS"
// empieza por la fecha (o el mes) de now. El ranking ordena por cantidad descendente;
// los empates conservan el orden en que cada ítem aparece por primera vez en sales.
func Summarize(sales []*entity.Sale, now time.Time) Stats {
	stats := Stats{
		Today:          now.Format(clock.DayLayout),
		ThisMonth:      now.Format(clock.MonthLayout),
		DailyRevenue:   decimal.Zero,
		MonthlyRevenue: decimal.Zero,
	}

	index := make(map[string]int)
	groups := make([]TopItem, 0)
	for _, s := range sales {
		stamp := clock.Format(s.SaleDate.In(now.Location()))
		if strings.HasPrefix(stamp, stats.Today) {
			stats.DailyRevenue = stats.DailyRevenue.Add(s.SalePrice)
			stats.DailyItemsSold += s.QuantitySold
		}
		if strings.HasPrefix(stamp, stats.ThisMonth) {
			stats.MonthlyRevenue = stats.MonthlyRevenue.Add(s.SalePrice)
			stats.MonthlyItemsSold += s.QuantitySold
		}

		i, ok := index[s.ItemID]
		if !ok {
			i = len(groups)
			index[s.ItemID] = i
			groups = append(groups, TopItem{ItemID: s.ItemID, Name: s.ItemName, Revenue: decimal.Zero})
		}
		groups[i].Quantity += s.QuantitySold
		groups[i].Revenue = groups[i].Revenue.Add(s.SalePrice)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Quantity > groups[b].Quantity
	})
	if len(groups) > TopItemsLimit {
		groups = groups[:TopItemsLimit]
	}
	stats.TopItems = groups
	return stats
}
