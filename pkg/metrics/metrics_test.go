package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/pkg/metrics"
)

func scrape(t *testing.T, r *metrics.Recorder) string {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRecorder_Sales(t *testing.T) {
	r := metrics.New()
	r.ObserveSale(&entity.Sale{QuantitySold: 3, SalePrice: decimal.RequireFromString("30.5")})
	r.ObserveSale(&entity.Sale{QuantitySold: 1, SalePrice: decimal.RequireFromString("2")})

	out := scrape(t, r)
	assert.Contains(t, out, "tienda_sales_total 2")
	assert.Contains(t, out, "tienda_items_sold_total 4")
	assert.Contains(t, out, "tienda_revenue_total 32.5")
}

func TestRecorder_Requests(t *testing.T) {
	r := metrics.New()
	r.ObserveRequest("GET", "/api/items", 200)
	r.ObserveRequest("GET", "/api/items", 200)
	r.ObserveRequest("POST", "/api/sales", 409)

	out := scrape(t, r)
	assert.Contains(t, out, `tienda_http_requests_total{method="GET",route="/api/items",status="200"} 2`)
	assert.Contains(t, out, `tienda_http_requests_total{method="POST",route="/api/sales",status="409"} 1`)
}
