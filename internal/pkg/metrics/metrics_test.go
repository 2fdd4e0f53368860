package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronJobMetrics_CountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCronJobMetrics(reg)

	m.ObserveDuration("overdue_purchase_orders", 250*time.Millisecond)
	m.IncSuccess("overdue_purchase_orders")
	m.IncSuccess("overdue_purchase_orders")
	m.IncFailure("")

	assert.InDelta(t, 2, testutil.ToFloat64(m.success.WithLabelValues("overdue_purchase_orders")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.failure.WithLabelValues("unknown")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestNilRegisterer_RecordsNothing(t *testing.T) {
	assert.NotPanics(t, func() {
		NewCronJobMetrics(nil).IncSuccess("job")
		NewHTTPMetrics(nil).Observe("GET", "/health", 200, time.Millisecond)
		NewInventoryGauges(nil).SetActiveVouchers(3)

		var gauges *InventoryGauges
		gauges.SetDeliveries("PENDING", 1)
	})
}

func TestInventoryGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	g := NewInventoryGauges(reg)

	g.SetVehicleUnits("AT_DEALER", 4)
	g.SetVehicleUnits("AT_DEALER", 3)
	g.SetPurchaseOrders("CONFIRMED", 1)
	g.SetActiveVouchers(2)

	assert.InDelta(t, 3, testutil.ToFloat64(g.vehicleUnits.WithLabelValues("AT_DEALER")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(g.purchaseOrders.WithLabelValues("CONFIRMED")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(g.activeVouchers), 0)
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	reg := NewRegistry()
	NewHTTPMetrics(reg).Observe(http.MethodGet, "/api/po", http.StatusOK, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `dealership_http_requests_total{method="GET",route="/api/po",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
