package http

import (
	"bytes"
	"net/http"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/customerorder"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/report"

	"github.com/labstack/echo/v4"
)

// ListCustomerOrders handles GET /api/customer-orders.
func (s *Server) ListCustomerOrders(ctx echo.Context) error {
	raw, err := queryString(ctx, "status")
	if err != nil {
		return badRequest(ctx, err)
	}

	var status *customerorder.Status
	if raw != nil {
		parsed, err := customerorder.ParseStatus(*raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewListCustomerOrdersQuery(status)
	if err != nil {
		return badRequest(ctx, err)
	}
	orders, err := s.h.ListCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]CustomerOrder, len(orders))
	for i, o := range orders {
		response[i] = toCustomerOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomerOrder handles POST /api/customer-orders.
func (s *Server) CreateCustomerOrder(ctx echo.Context) error {
	var body NewCustomerOrder
	if err := bindBody(ctx, &body); err != nil {
		return badRequest(ctx, err)
	}
	modelID, err := fromAPIUUID(body.CarModelID)
	if err != nil {
		return badRequest(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerOrderCommand(
		id, modelID, body.CustomerInfo, kernel.NewMoney(body.Price), body.VoucherCode, fromAPIDate(body.DeliveryDate))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.h.CreateCustomerOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: toAPIUUID(id)})
}

// CancelCustomerOrder handles PATCH /api/customer-orders/{id}/cancel.
func (s *Server) CancelCustomerOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelCustomerOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.CancelCustomerOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListDeliveries handles GET /api/deliveries.
func (s *Server) ListDeliveries(ctx echo.Context) error {
	deliveries, err := s.listDeliveries(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Delivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = toDelivery(d)
	}
	return ctx.JSON(http.StatusOK, response)
}

// listDeliveries runs the delivery query for the request's status filter.
func (s *Server) listDeliveries(ctx echo.Context) ([]queries.DeliveryView, error) {
	raw, err := queryString(ctx, "status")
	if err != nil {
		return nil, err
	}
	status := ""
	if raw != nil {
		status = *raw
	}

	query, err := queries.NewListDeliveriesQuery(status)
	if err != nil {
		return nil, err
	}
	return s.h.ListDeliveries.Handle(ctx.Request().Context(), query)
}

// ExportDeliveries handles GET /api/deliveries/export.xlsx.
func (s *Server) ExportDeliveries(ctx echo.Context) error {
	deliveries, err := s.listDeliveries(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	table := report.Table{
		Sheet: "Deliveries",
		Headers: []string{
			"Created", "Customer", "Model", "VIN", "Voucher",
			"Price before", "Discount", "Price after", "Deposit", "Status", "Delivered",
		},
		Rows: make([][]any, 0, len(deliveries)),
	}
	for _, d := range deliveries {
		var deliveredAt any
		if d.DeliveredAt != nil {
			deliveredAt = d.DeliveredAt.Format("2006-01-02 15:04")
		}
		table.Rows = append(table.Rows, []any{
			d.CreatedAt.Format("2006-01-02 15:04"),
			d.CustomerName,
			d.ModelName,
			d.VIN,
			d.VoucherCode,
			cellMoney(d.PriceBefore),
			d.DiscountApplied.Int64(),
			cellMoney(d.PriceAfter),
			d.Deposit.Int64(),
			d.Status.String(),
			deliveredAt,
		})
	}

	var buf bytes.Buffer
	if err = report.WriteXLSX(&buf, table); err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="deliveries.xlsx"`)
	return ctx.Blob(http.StatusOK, report.ContentTypeXLSX, buf.Bytes())
}

// cellMoney leaves the cell empty for unknown amounts.
func cellMoney(m *kernel.Money) any {
	if m == nil {
		return nil
	}
	return m.Int64()
}

// CreateDelivery handles POST /api/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var body NewDelivery
	if err := bindBody(ctx, &body); err != nil {
		return badRequest(ctx, err)
	}
	vehicleID, err := fromAPIUUID(body.VehicleID)
	if err != nil {
		return badRequest(ctx, err)
	}
	orderID, err := fromAPIUUIDPtr(body.CustomerOrderID)
	if err != nil {
		return badRequest(ctx, err)
	}
	voucherID, err := fromAPIUUIDPtr(body.VoucherID)
	if err != nil {
		return badRequest(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(
		id, vehicleID, orderID, body.CustomerName, body.VoucherCode, voucherID,
		moneyPtr(body.Price), kernel.NewMoney(body.Deposit))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.h.CreateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: toAPIUUID(id)})
}

// ChangeDeliveryStatus handles PATCH /api/deliveries/{id}/status.
func (s *Server) ChangeDeliveryStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var body DeliveryStatusChange
	if err = bindBody(ctx, &body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewChangeDeliveryStatusCommand(id, body.Status)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.ChangeDeliveryStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetDashboard handles GET /api/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	summary, err := s.h.GetDashboard.Handle(ctx.Request().Context(), queries.NewGetDashboardSummaryQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Dashboard{
		VehicleUnits:   statusCounts(summary.VehicleUnits),
		PurchaseOrders: statusCounts(summary.PurchaseOrders),
		Deliveries:     statusCounts(summary.Deliveries),
		CustomerOrders: statusCounts(summary.CustomerOrders),
		ActiveVouchers: summary.ActiveVouchers,
	})
}
