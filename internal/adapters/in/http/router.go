package http

import (
	"net/http"

	"dealership/api"
	"dealership/internal/pkg/auth"
	"dealership/internal/pkg/logger"
	"dealership/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterOptions carries the infrastructure the router wires around the
// handlers.
type RouterOptions struct {
	Doc         *openapi3.T
	Auth        auth.Config
	AuthEnabled bool
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics
	Logger      *logger.Logger
}

// NewEcho builds the echo instance serving s.
func NewEcho(s *Server, opts RouterOptions) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = ErrorHandler(opts.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(opts.Logger))
	if opts.HTTPMetrics != nil {
		e.Use(Metrics(opts.HTTPMetrics))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if opts.Registry != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(opts.Registry)))
	}
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.Spec())
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yaml")))

	g := e.Group("/api")
	g.Use(Authenticate(opts.Auth, opts.AuthEnabled, opts.Logger))
	if opts.Doc != nil {
		validate, err := OpenAPIValidator(opts.Doc)
		if err != nil {
			return nil, err
		}
		g.Use(validate)
	}

	g.GET("/models", s.ListCarModels)

	g.GET("/po", s.ListPurchaseOrders)
	g.POST("/po", s.CreatePurchaseOrder, RequirePermission(auth.PermOrderCreate))
	g.PUT("/po/:id/status", s.ChangePurchaseOrderStatus, RequirePermission(auth.PermOrderUpdateStatus))

	g.GET("/vehicle-units", s.ListVehicleUnits)
	g.PATCH("/vehicle-units/:id/arrive", s.MarkVehicleArrived, RequirePermission(auth.PermVehicleMarkArrived))
	g.PATCH("/vehicle-units/:id/vin", s.AssignVehicleVIN, RequirePermission(auth.PermVehicleSetVIN))

	g.GET("/vouchers", s.ListVouchers)
	g.GET("/vouchers/stats", s.GetVoucherStats)
	g.POST("/vouchers", s.CreateVoucher, RequirePermission(auth.PermVoucherCreate))
	g.POST("/vouchers/quote", s.QuoteVoucher)
	g.PATCH("/vouchers/:id/active", s.SetVoucherActive, RequirePermission(auth.PermVoucherCreate))

	g.GET("/customer-orders", s.ListCustomerOrders)
	g.POST("/customer-orders", s.CreateCustomerOrder, RequirePermission(auth.PermOrderCreate))
	g.PATCH("/customer-orders/:id/cancel", s.CancelCustomerOrder, RequirePermission(auth.PermOrderUpdateStatus))

	g.GET("/deliveries", s.ListDeliveries)
	g.GET("/deliveries/export.xlsx", s.ExportDeliveries)
	g.POST("/deliveries", s.CreateDelivery, RequirePermission(auth.PermDeliveryCreate))
	g.PATCH("/deliveries/:id/status", s.ChangeDeliveryStatus, RequirePermission(auth.PermDeliveryComplete))

	g.GET("/dashboard", s.GetDashboard)

	return e, nil
}
