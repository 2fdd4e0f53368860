package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealership/api"
	httpapi "dealership/internal/adapters/in/http"
	"dealership/internal/adapters/out/postgres"
	"dealership/internal/adapters/out/postgres/seed"
	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/services"
	"dealership/internal/pkg/auth"
	"dealership/internal/pkg/logger"
	"dealership/internal/pkg/report"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testAuth = auth.Config{Secret: "test-secret", Issuer: "dealership-test", TTL: time.Hour}

type voucherUoWs struct{ f *postgres.GormUnitOfWorkFactory }

func (x voucherUoWs) Create() commands.VoucherUoW { return x.f.Create() }

type inventoryUoWs struct{ f *postgres.GormUnitOfWorkFactory }

func (x inventoryUoWs) Create() commands.InventoryUoW { return x.f.Create() }

type salesUoWs struct{ f *postgres.GormUnitOfWorkFactory }

func (x salesUoWs) Create() commands.SalesUoW { return x.f.Create() }

// newTestAPI serves a seeded in-memory store with the clock frozen at now.
func newTestAPI(t *testing.T, now time.Time, authEnabled bool) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db, err := postgres.OpenInMemory(kernel.NewUUID().String(), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	factory := postgres.NewGormUnitOfWorkFactory(db)
	require.NoError(t, seed.Load(context.Background(), factory, now))

	clock := func() time.Time { return now }
	pricing := services.NewDiscountCalculator(clock)
	handover := services.NewHandover(pricing)

	h := httpapi.Handlers{
		CreateVoucher:             commands.NewCreateVoucherCommandHandler(voucherUoWs{factory}, clock),
		SetVoucherActive:          commands.NewSetVoucherActiveCommandHandler(voucherUoWs{factory}),
		CreatePurchaseOrder:       commands.NewCreatePurchaseOrderCommandHandler(inventoryUoWs{factory}, clock),
		ChangePurchaseOrderStatus: commands.NewChangePurchaseOrderStatusCommandHandler(inventoryUoWs{factory}, clock),
		MarkVehicleArrived:        commands.NewMarkVehicleArrivedCommandHandler(inventoryUoWs{factory}, clock),
		AssignVehicleVIN:          commands.NewAssignVehicleVINCommandHandler(inventoryUoWs{factory}, clock),
		CreateCustomerOrder:       commands.NewCreateCustomerOrderCommandHandler(salesUoWs{factory}, handover),
		CancelCustomerOrder:       commands.NewCancelCustomerOrderCommandHandler(salesUoWs{factory}, clock),
		CreateDelivery:            commands.NewCreateDeliveryCommandHandler(salesUoWs{factory}, handover),
		ChangeDeliveryStatus:      commands.NewChangeDeliveryStatusCommandHandler(salesUoWs{factory}, handover),

		ListCarModels:      queries.NewListCarModelsQueryHandler(db),
		ListPurchaseOrders: queries.NewListPurchaseOrdersQueryHandler(db),
		ListVehicleUnits:   queries.NewListVehicleUnitsQueryHandler(db),
		ListVouchers:       queries.NewListVouchersQueryHandler(db),
		GetVoucherStats:    queries.NewGetVoucherStatsQueryHandler(db),
		QuoteVoucher:       queries.NewQuoteVoucherQueryHandler(factory.Create().VoucherRepository(), pricing),
		ListCustomerOrders: queries.NewListCustomerOrdersQueryHandler(db),
		ListDeliveries:     queries.NewListDeliveriesQueryHandler(db),
		GetDashboard:       queries.NewGetDashboardSummaryQueryHandler(db),
	}

	doc, err := api.Load(context.Background())
	require.NoError(t, err)

	e, err := httpapi.NewEcho(httpapi.NewServer(h, pricing, logger.Nop()), httpapi.RouterOptions{
		Doc:         doc,
		Auth:        testAuth,
		AuthEnabled: authEnabled,
		Logger:      logger.Nop(),
	})
	require.NoError(t, err)
	return e, db
}

func call(e *echo.Echo, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type ServerTestSuite struct {
	suite.Suite
	e   *echo.Echo
	now time.Time
}

func (suite *ServerTestSuite) SetupTest() {
	suite.now = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	suite.e, _ = newTestAPI(suite.T(), suite.now, false)
}

func (suite *ServerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	return call(suite.e, method, path, body, "")
}

func (suite *ServerTestSuite) decode(rec *httptest.ResponseRecorder, dst any) {
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func (suite *ServerTestSuite) created(rec *httptest.ResponseRecorder) string {
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var body httpapi.Created
	suite.decode(rec, &body)
	return body.ID.String()
}

func (suite *ServerTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *ServerTestSuite) TestOpenAPIDocumentIsServed() {
	rec := suite.do(http.MethodGet, "/openapi.yaml", nil)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "openapi: 3.0.3")
}

func (suite *ServerTestSuite) TestListCarModels() {
	rec := suite.do(http.MethodGet, "/api/models", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var models []httpapi.CarModel
	suite.decode(rec, &models)
	suite.Require().Len(models, 3)
	suite.Equal("Honda Civic 1.5 Turbo", models[0].DisplayName)
}

func (suite *ServerTestSuite) TestUnknownRoute() {
	rec := suite.do(http.MethodGet, "/api/nope", nil)
	suite.Equal(http.StatusNotFound, rec.Code)

	var body httpapi.Error
	suite.decode(rec, &body)
	suite.Equal(http.StatusNotFound, body.Code)
}

func (suite *ServerTestSuite) TestPurchaseOrderLifecycleSpawnsUnits() {
	id := suite.created(suite.do(http.MethodPost, "/api/po", map[string]any{
		"orderNo":     "PO-2025-010",
		"etaAtDealer": "2025-04-01",
		"carModelId":  seed.CivicID.String(),
		"quantity":    3,
	}))

	suite.Equal(http.StatusNoContent, suite.do(http.MethodPut, "/api/po/"+id+"/status?status=SUBMITTED", nil).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodPut, "/api/po/"+id+"/status?status=CONFIRMED", nil).Code)

	rec := suite.do(http.MethodGet, "/api/vehicle-units?orderId="+id, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var units []httpapi.VehicleUnit
	suite.decode(rec, &units)
	suite.Require().Len(units, 3)
	for _, u := range units {
		suite.Equal("ON_ORDER", u.Status)
		suite.Equal("PO-2025-010", u.OrderNo)
	}

	rec = suite.do(http.MethodGet, "/api/po?status=CONFIRMED", nil)
	var orders []httpapi.PurchaseOrder
	suite.decode(rec, &orders)
	suite.Len(orders, 2)
}

func (suite *ServerTestSuite) TestCreatePurchaseOrder_Errors() {
	rec := suite.do(http.MethodPost, "/api/po", map[string]any{"quantity": 1})
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodPost, "/api/po", map[string]any{"orderNo": "PO-2025-001"})
	suite.Equal(http.StatusConflict, rec.Code)

	rec = suite.do(http.MethodPost, "/api/po", map[string]any{"orderNo": "PO-2025-011", "quantity": 2})
	suite.Equal(http.StatusBadRequest, rec.Code, "quantity without a model")
}

func (suite *ServerTestSuite) TestChangePurchaseOrderStatus_Errors() {
	path := "/api/po/" + seed.FirstOrderID.String() + "/status"

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPut, path+"?status=SHIPPED", nil).Code)
	suite.Equal(http.StatusConflict, suite.do(http.MethodPut, path+"?status=DRAFT", nil).Code)
	suite.Equal(http.StatusNotFound,
		suite.do(http.MethodPut, "/api/po/"+kernel.NewUUID().String()+"/status?status=SUBMITTED", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPut, "/api/po/not-an-id/status?status=SUBMITTED", nil).Code)
}

func (suite *ServerTestSuite) TestVehicleArrival() {
	rec := suite.do(http.MethodGet, "/api/vehicle-units?status=ON_ORDER&orderId="+seed.FirstOrderID.String(), nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var units []httpapi.VehicleUnit
	suite.decode(rec, &units)
	suite.Require().Len(units, 2)

	first := "/api/vehicle-units/" + units[0].ID.String()
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPatch, first+"/arrive?vin=SHORT", nil).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodPatch, first+"/arrive?vin=jt123456789000002", nil).Code)

	second := "/api/vehicle-units/" + units[1].ID.String()
	suite.Equal(http.StatusNoContent, suite.do(http.MethodPatch, second+"/arrive", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPatch, second+"/vin", nil).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodPatch, second+"/vin?vin=JT123456789000003", nil).Code)

	rec = suite.do(http.MethodGet, "/api/vehicle-units?status=AT_DEALER", nil)
	suite.decode(rec, &units)
	suite.Require().Len(units, 3)

	vins := make([]string, 0, len(units))
	for _, u := range units {
		vins = append(vins, u.VIN)
	}
	suite.ElementsMatch([]string{seed.StockCivicVIN, "JT123456789000002", "JT123456789000003"}, vins)
}

func (suite *ServerTestSuite) TestVouchers() {
	id := suite.created(suite.do(http.MethodPost, "/api/vouchers", map[string]any{
		"code":       "SPRING",
		"type":       "PERCENT",
		"title":      "Spring sale",
		"percent":    3,
		"usableFrom": "2025-03-01",
		"usableTo":   "2025-03-31",
	}))

	rec := suite.do(http.MethodPost, "/api/vouchers", map[string]any{
		"code": "spring", "type": "FLAT", "title": "Again", "amount": 1_000_000,
	})
	suite.Equal(http.StatusConflict, rec.Code)

	rec = suite.do(http.MethodGet, "/api/vouchers?type=PERCENT", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var vouchers []httpapi.Voucher
	suite.decode(rec, &vouchers)
	suite.Len(vouchers, 2)

	suite.Equal(http.StatusNoContent,
		suite.do(http.MethodPatch, "/api/vouchers/"+id+"/active", map[string]any{"active": false}).Code)
	suite.Equal(http.StatusBadRequest,
		suite.do(http.MethodPatch, "/api/vouchers/"+id+"/active", map[string]any{}).Code)

	rec = suite.do(http.MethodGet, "/api/vouchers?type=PERCENT", nil)
	suite.decode(rec, &vouchers)
	suite.Len(vouchers, 1)

	rec = suite.do(http.MethodGet, "/api/vouchers?includeInactive=true&q=spring", nil)
	suite.decode(rec, &vouchers)
	suite.Require().Len(vouchers, 1)
	suite.False(vouchers[0].Active)

	rec = suite.do(http.MethodGet, "/api/vouchers/stats", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var stats httpapi.VoucherStats
	suite.decode(rec, &stats)
	suite.Equal(httpapi.VoucherStats{Total: 3, Active: 2, Inactive: 1, ValidNow: 2}, stats)
}

func (suite *ServerTestSuite) TestQuoteVoucher() {
	rec := suite.do(http.MethodPost, "/api/vouchers/quote", map[string]any{"code": "PCT05", "price": 620_000_000})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var quote httpapi.VoucherQuote
	suite.decode(rec, &quote)
	suite.True(quote.Eligible)
	suite.Equal(int64(30_000_000), quote.Discount)
	suite.Equal(int64(590_000_000), quote.PriceAfter)

	rec = suite.do(http.MethodPost, "/api/vouchers/quote", map[string]any{"code": "NOPE", "price": 1})
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerTestSuite) TestCustomerOrders() {
	id := suite.created(suite.do(http.MethodPost, "/api/customer-orders", map[string]any{
		"carModelId":   seed.CorollaID.String(),
		"customerInfo": "Nguyen Van A, 0901234567",
		"price":        650_000_000,
		"voucherCode":  "flat10m",
	}))

	rec := suite.do(http.MethodGet, "/api/customer-orders?status=PENDING", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var orders []httpapi.CustomerOrder
	suite.decode(rec, &orders)
	suite.Require().Len(orders, 1)
	suite.Equal("FLAT10M", orders[0].VoucherCode)
	suite.Equal(int64(10_000_000), orders[0].DiscountApplied)
	suite.Equal(int64(640_000_000), orders[0].PriceAfter)

	suite.Equal(http.StatusNoContent, suite.do(http.MethodPatch, "/api/customer-orders/"+id+"/cancel", nil).Code)
	suite.Equal(http.StatusConflict, suite.do(http.MethodPatch, "/api/customer-orders/"+id+"/cancel", nil).Code)

	rec = suite.do(http.MethodGet, "/api/customer-orders?status=CANCELLED", nil)
	suite.decode(rec, &orders)
	suite.Len(orders, 1)
}

func (suite *ServerTestSuite) TestCustomerOrder_InactiveVoucher() {
	suite.Equal(http.StatusNoContent, suite.do(http.MethodPatch,
		"/api/vouchers/"+seed.Flat10MID.String()+"/active", map[string]any{"active": false}).Code)

	rec := suite.do(http.MethodPost, "/api/customer-orders", map[string]any{
		"carModelId":   seed.CorollaID.String(),
		"customerInfo": "Tran Thi B",
		"price":        650_000_000,
		"voucherCode":  "FLAT10M",
	})
	suite.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (suite *ServerTestSuite) TestDeliveryHandover() {
	id := suite.created(suite.do(http.MethodPost, "/api/deliveries", map[string]any{
		"vehicleId":    seed.StockCivicID.String(),
		"customerName": "Le Van C",
		"voucherCode":  "PCT05",
		"price":        700_000_000,
		"deposit":      50_000_000,
	}))

	rec := suite.do(http.MethodPost, "/api/deliveries", map[string]any{
		"vehicleId":    seed.StockCivicID.String(),
		"customerName": "Someone else",
	})
	suite.Equal(http.StatusUnprocessableEntity, rec.Code)

	rec = suite.do(http.MethodGet, "/api/deliveries?status=RESERVED", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var tickets []httpapi.Delivery
	suite.decode(rec, &tickets)
	suite.Require().Len(tickets, 1)
	suite.Equal("PENDING", tickets[0].Status)
	suite.Require().NotNil(tickets[0].PriceAfter)
	suite.Equal(int64(670_000_000), *tickets[0].PriceAfter)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPatch, "/api/deliveries/"+id+"/status",
		map[string]any{"status": "LOST"}).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodPatch, "/api/deliveries/"+id+"/status",
		map[string]any{"status": "COMPLETED"}).Code)
	suite.Equal(http.StatusConflict, suite.do(http.MethodPatch, "/api/deliveries/"+id+"/status",
		map[string]any{"status": "CANCELLED"}).Code)

	rec = suite.do(http.MethodGet, "/api/vehicle-units?status=DELIVERED", nil)
	var units []httpapi.VehicleUnit
	suite.decode(rec, &units)
	suite.Require().Len(units, 1)
	suite.Equal(seed.StockCivicID.String(), units[0].ID.String())

	rec = suite.do(http.MethodGet, "/api/deliveries/export.xlsx?status=DELIVERED", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal(report.ContentTypeXLSX, rec.Header().Get(echo.HeaderContentType))
	suite.Contains(rec.Header().Get(echo.HeaderContentDisposition), "deliveries.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	suite.Require().NoError(err)
	defer func() { _ = f.Close() }()
	customer, err := f.GetCellValue("Deliveries", "B2")
	suite.Require().NoError(err)
	suite.Equal("Le Van C", customer)
}

func (suite *ServerTestSuite) TestDashboard() {
	rec := suite.do(http.MethodGet, "/api/dashboard", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var body httpapi.Dashboard
	suite.decode(rec, &body)
	suite.Equal(int64(3), body.VehicleUnits["ON_ORDER"])
	suite.Equal(int64(1), body.VehicleUnits["AT_DEALER"])
	suite.Equal(int64(0), body.VehicleUnits["DELIVERED"])
	suite.Equal(int64(1), body.PurchaseOrders["CONFIRMED"])
	suite.Equal(int64(0), body.Deliveries["PENDING"])
	suite.Equal(int64(2), body.ActiveVouchers)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestAuthentication(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	e, _ := newTestAPI(t, now, true)

	staff, err := auth.Mint(testAuth, time.Now(), "staff-1", auth.RoleStaff)
	require.NoError(t, err)
	manager, err := auth.Mint(testAuth, time.Now(), "manager-1", auth.RoleManager)
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		rec := call(e, http.MethodGet, "/api/models", nil, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("forged token", func(t *testing.T) {
		forged, err := auth.Mint(auth.Config{Secret: "other", Issuer: testAuth.Issuer, TTL: time.Hour},
			time.Now(), "x", auth.RoleManager)
		require.NoError(t, err)
		rec := call(e, http.MethodGet, "/api/models", nil, forged)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("public routes", func(t *testing.T) {
		rec := call(e, http.MethodGet, "/health", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("staff reads", func(t *testing.T) {
		rec := call(e, http.MethodGet, "/api/dashboard", nil, staff)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("staff cannot create vouchers", func(t *testing.T) {
		rec := call(e, http.MethodPost, "/api/vouchers", map[string]any{
			"code": "STAFF", "type": "FLAT", "title": "Nope", "amount": 1_000_000,
		}, staff)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("staff issues deliveries", func(t *testing.T) {
		rec := call(e, http.MethodPost, "/api/deliveries", map[string]any{
			"vehicleId":    seed.StockCivicID.String(),
			"customerName": "Walk-in",
		}, staff)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("manager creates vouchers", func(t *testing.T) {
		rec := call(e, http.MethodPost, "/api/vouchers", map[string]any{
			"code": "MGR", "type": "FLAT", "title": "Manager deal", "amount": 1_000_000,
		}, manager)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})
}
