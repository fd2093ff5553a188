package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/tienda-inventario/internal/infrastructure/weather"
	"github.com/jhoicas/tienda-inventario/internal/interfaces/cli"
	"github.com/jhoicas/tienda-inventario/pkg/logger"
)

func main() {
	log := logger.New(logger.Config{Env: "development", Level: "warn", Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewWeatherCommand(weather.Config{Logger: log.Zerolog()})
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("weather")
		os.Exit(1)
	}
}
