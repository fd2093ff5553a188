// Package cli contiene los comandos cobra de los binarios admin y weather.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jhoicas/tienda-inventario/internal/infrastructure/storage"
	"github.com/jhoicas/tienda-inventario/pkg/config"
)

// Formatos de salida admitidos por --format.
var ValidFormats = []string{"text", "json"}

// RootOptions flags globales de admin.
type RootOptions struct {
	Format string // "text" | "json"
}

// BackendOpener abre el almacenamiento configurado. cmd/admin usa OpenConfigured;
// los tests inyectan uno en memoria.
type BackendOpener func(ctx context.Context) (*storage.Backend, *config.Config, error)

// OpenConfigured carga la configuración del entorno y abre su backend.
func OpenConfigured(ctx context.Context) (*storage.Backend, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("abrir almacenamiento %s: %w", cfg.Store.Driver, err)
	}
	return backend, cfg, nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
