package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-inventario/internal/application/analytics"
)

// StatisticsHandler expone el resumen de ventas.
type StatisticsHandler struct {
	uc *analytics.StatisticsUseCase
}

// NewStatisticsHandler construye el handler.
func NewStatisticsHandler(uc *analytics.StatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

// Get devuelve ingresos y unidades de hoy y del mes, más el Top-5 de ítems.
// GET /api/statistics
func (h *StatisticsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
