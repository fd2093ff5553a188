// Package storage abre el backend de persistencia configurado en STORE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-inventario/internal/application/inventory"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
	"github.com/jhoicas/tienda-inventario/internal/infrastructure/filestore"
	"github.com/jhoicas/tienda-inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-inventario/internal/infrastructure/sqlite"
	"github.com/jhoicas/tienda-inventario/pkg/config"
)

// Backend reúne los repositorios y el TxRunner de un mismo almacenamiento.
type Backend struct {
	Driver string
	Items  repository.ItemRepository
	Sales  repository.SaleRepository
	Tx     inventory.TxRunner
	close  func() error
}

// Close libera conexiones o archivos del backend.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Open construye el backend indicado por cfg.Store.Driver.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.Store.Driver {
	case config.DriverFile, "":
		s, err := filestore.Open(filestore.Options{
			ItemsPath: cfg.Store.ItemsPath(),
			SalesPath: cfg.Store.SalesPath(),
		})
		if err != nil {
			return nil, err
		}
		return &Backend{Driver: config.DriverFile, Items: s.Items(), Sales: s.Sales(), Tx: s, close: s.Close}, nil

	case config.DriverMemory:
		s := filestore.NewMemory()
		return &Backend{Driver: config.DriverMemory, Items: s.Items(), Sales: s.Sales(), Tx: s, close: s.Close}, nil

	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Backend{Driver: config.DriverSQLite, Items: s.Items(), Sales: s.Sales(), Tx: s, close: s.Close}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{
			Driver: config.DriverPostgres,
			Items:  postgres.NewItemRepository(pool),
			Sales:  postgres.NewSaleRepository(pool),
			Tx:     postgres.NewTxRunner(pool),
			close: func() error {
				pool.Close()
				return nil
			},
		}, nil
	}
	return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Store.Driver)
}
