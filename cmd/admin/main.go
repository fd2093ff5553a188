package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/tienda-inventario/internal/interfaces/cli"
	"github.com/jhoicas/tienda-inventario/pkg/logger"
)

func main() {
	// stderr para no mezclarse con --format json
	log := logger.New(logger.Config{Env: "development", Level: "info", Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewAdminCommand(cli.OpenConfigured).ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("admin")
		os.Exit(1)
	}
}
