// Package metrics holds the prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dealership"

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the registry in the text exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// HTTPMetrics counts and times served requests by route template.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	reg.MustRegister(requests, latency)

	return &HTTPMetrics{requests: requests, latency: latency}
}

func (m *HTTPMetrics) Observe(method, route string, status int, d time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	route = normalizeLabel(route)
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

// InventoryGauges publish the status breakdown computed by the inventory job.
type InventoryGauges struct {
	vehicleUnits   *prometheus.GaugeVec
	deliveries     *prometheus.GaugeVec
	purchaseOrders *prometheus.GaugeVec
	activeVouchers prometheus.Gauge
}

func NewInventoryGauges(reg prometheus.Registerer) *InventoryGauges {
	if reg == nil {
		return &InventoryGauges{}
	}
	g := &InventoryGauges{
		vehicleUnits: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vehicle_units",
			Help:      "Vehicle units by status.",
		}, []string{"status"}),
		deliveries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "deliveries",
			Help:      "Delivery tickets by status.",
		}, []string{"status"}),
		purchaseOrders: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "purchase_orders",
			Help:      "Manufacturer purchase orders by status.",
		}, []string{"status"}),
		activeVouchers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_vouchers",
			Help:      "Vouchers that are switched on.",
		}),
	}
	reg.MustRegister(g.vehicleUnits, g.deliveries, g.purchaseOrders, g.activeVouchers)
	return g
}

func (g *InventoryGauges) SetVehicleUnits(status string, n int64) {
	if g == nil || g.vehicleUnits == nil {
		return
	}
	g.vehicleUnits.WithLabelValues(status).Set(float64(n))
}

func (g *InventoryGauges) SetDeliveries(status string, n int64) {
	if g == nil || g.deliveries == nil {
		return
	}
	g.deliveries.WithLabelValues(status).Set(float64(n))
}

func (g *InventoryGauges) SetPurchaseOrders(status string, n int64) {
	if g == nil || g.purchaseOrders == nil {
		return
	}
	g.purchaseOrders.WithLabelValues(status).Set(float64(n))
}

func (g *InventoryGauges) SetActiveVouchers(n int64) {
	if g == nil || g.activeVouchers == nil {
		return
	}
	g.activeVouchers.Set(float64(n))
}
