// Package metrics expone contadores Prometheus de ventas y peticiones HTTP.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
)

// Recorder registra las métricas en un registry propio (no el global).
type Recorder struct {
	registry  *prometheus.Registry
	sales     prometheus.Counter
	itemsSold prometheus.Counter
	revenue   prometheus.Counter
	requests  *prometheus.CounterVec
}

// New crea el Recorder con los colectores de runtime de Go y de proceso.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		sales: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tienda_sales_total",
			Help: "Ventas registradas.",
		}),
		itemsSold: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tienda_items_sold_total",
			Help: "Unidades vendidas.",
		}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tienda_revenue_total",
			Help: "Ingresos acumulados por ventas.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tienda_http_requests_total",
			Help: "Peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(
		r.sales, r.itemsSold, r.revenue, r.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveSale implementa inventory.SaleObserver.
func (r *Recorder) ObserveSale(sale *entity.Sale) {
	r.sales.Inc()
	r.itemsSold.Add(float64(sale.QuantitySold))
	r.revenue.Add(sale.SalePrice.InexactFloat64())
}

// ObserveRequest cuenta una petición por método, ruta registrada y código de estado.
func (r *Recorder) ObserveRequest(method, route string, status int) {
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Handler sirve el formato de exposición de Prometheus.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
