package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-inventario/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8000", cfg.HTTP.Addr())
	assert.Equal(t, config.DriverFile, cfg.Store.Driver)
	assert.Equal(t, filepath.Join(".", "store_data.json"), cfg.Store.ItemsPath())
	assert.Equal(t, filepath.Join(".", "sales_data.json"), cfg.Store.SalesPath())
	assert.Equal(t, 5, cfg.Catalog.PageSize)
	assert.Equal(t, 5, cfg.Catalog.LowStockThreshold)
	assert.Equal(t, "admin", cfg.Session.AdminUsername)
	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.Equal(t, 720, cfg.Session.Expiration)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("STORE_DATA_DIR", "/var/lib/tienda")
	t.Setenv("ITEMS_PER_PAGE", "20")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abc")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/var/lib/tienda/store_data.json", cfg.Store.ItemsPath())
	assert.Equal(t, 20, cfg.Catalog.PageSize)
	assert.Equal(t, "$2a$10$abc", cfg.Session.AdminPasswordHash)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"driver":    {"STORE_DRIVER", "mongo"},
		"port":      {"HTTP_PORT", "70000"},
		"port text": {"HTTP_PORT", "ochenta"},
		"page size": {"ITEMS_PER_PAGE", "0"},
		"threshold": {"LOW_STOCK_THRESHOLD", "-1"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss:word", DBName: "tienda", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%3Aword@db:5432/tienda?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
