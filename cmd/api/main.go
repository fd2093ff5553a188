package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tienda-inventario/internal/application/analytics"
	"github.com/jhoicas/tienda-inventario/internal/application/auth"
	"github.com/jhoicas/tienda-inventario/internal/application/inventory"
	"github.com/jhoicas/tienda-inventario/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/tienda-inventario/internal/interfaces/http"
	"github.com/jhoicas/tienda-inventario/pkg/clock"
	"github.com/jhoicas/tienda-inventario/pkg/config"
	"github.com/jhoicas/tienda-inventario/pkg/logger"
	"github.com/jhoicas/tienda-inventario/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar almacenamiento")
		}
	}()

	// Sin SESSION_SECRET las sesiones no sobreviven a un reinicio.
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = randomSecret()
		log.Warn().Msg("SESSION_SECRET vacío: se usa un secreto aleatorio")
	}
	authUC, err := auth.NewAuthUseCase(
		auth.Credentials{
			Username:     cfg.Session.AdminUsername,
			Password:     cfg.Session.AdminPassword,
			PasswordHash: cfg.Session.AdminPasswordHash,
		},
		auth.SessionConfig{
			Secret:     cfg.Session.Secret,
			ExpMinutes: cfg.Session.Expiration,
			Issuer:     cfg.Session.Issuer,
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("credenciales de administrador")
	}
	if !authUC.Enabled() {
		log.Warn().Msg("ADMIN_PASSWORD / ADMIN_PASSWORD_HASH vacíos: el login está deshabilitado")
	}

	clk := clock.System{}
	recorder := metrics.New()
	itemUC := inventory.NewItemUseCase(backend.Items, backend.Tx, clk, cfg.Catalog.PageSize, cfg.Catalog.LowStockThreshold)
	saleUC := inventory.NewSaleUseCase(backend.Tx, backend.Sales, clk, cfg.Catalog.PageSize, recorder)
	statsUC := analytics.NewStatisticsUseCase(backend.Sales, clk)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log, recorder))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda Inventario API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:       itemUC,
		SaleUC:       saleUC,
		StatisticsUC: statsUC,
		AuthUC:       authUC,
		CookieName:   cfg.Session.CookieName,
		SecureCookie: cfg.App.Env == "production",
		Metrics:      recorder,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("generar secreto de sesión: " + err.Error())
	}
	return hex.EncodeToString(b)
}
