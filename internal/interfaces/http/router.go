package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/tienda-inventario/internal/application/analytics"
	"github.com/jhoicas/tienda-inventario/internal/application/auth"
	"github.com/jhoicas/tienda-inventario/internal/application/inventory"
	"github.com/jhoicas/tienda-inventario/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC       *inventory.ItemUseCase
	SaleUC       *inventory.SaleUseCase
	StatisticsUC *analytics.StatisticsUseCase
	AuthUC       *auth.AuthUseCase
	CookieName   string
	SecureCookie bool
	Metrics      *metrics.Recorder // opcional
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api", SessionMiddleware(deps.AuthUC, deps.CookieName))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieName, deps.SecureCookie)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authHandler.Logout)

	// Items: lectura pública, escritura con sesión. low-stock antes de /:id.
	itemHandler := NewItemHandler(deps.ItemUC)
	items := api.Group("/items")
	items.Get("/", itemHandler.List)
	items.Get("/low-stock", itemHandler.LowStock)
	items.Get("/:id", itemHandler.GetByID)
	items.Post("/", RequireSession(), itemHandler.Create)
	items.Put("/:id", RequireSession(), itemHandler.Update)
	items.Delete("/:id", RequireSession(), itemHandler.Delete)

	// Ventas y estadísticas (protegido)
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales := api.Group("/sales", RequireSession())
	sales.Post("/", saleHandler.Record)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)

	statsHandler := NewStatisticsHandler(deps.StatisticsUC)
	api.Get("/statistics", RequireSession(), statsHandler.Get)
}
