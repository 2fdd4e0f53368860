package http

import (
	"net/http"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/purchaseorder"
	"dealership/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// ListCarModels handles GET /api/models.
func (s *Server) ListCarModels(ctx echo.Context) error {
	models, err := s.h.ListCarModels.Handle(ctx.Request().Context(), queries.NewListCarModelsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]CarModel, len(models))
	for i, m := range models {
		response[i] = toCarModel(m)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListPurchaseOrders handles GET /api/po.
func (s *Server) ListPurchaseOrders(ctx echo.Context) error {
	raw, err := queryString(ctx, "status")
	if err != nil {
		return badRequest(ctx, err)
	}

	var status *purchaseorder.Status
	if raw != nil {
		parsed, err := purchaseorder.ParseStatus(*raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewListPurchaseOrdersQuery(status)
	if err != nil {
		return badRequest(ctx, err)
	}
	orders, err := s.h.ListPurchaseOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]PurchaseOrder, len(orders))
	for i, o := range orders {
		response[i] = toPurchaseOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreatePurchaseOrder handles POST /api/po.
func (s *Server) CreatePurchaseOrder(ctx echo.Context) error {
	var body NewPurchaseOrder
	if err := bindBody(ctx, &body); err != nil {
		return badRequest(ctx, err)
	}
	modelID, err := fromAPIUUIDPtr(body.CarModelID)
	if err != nil {
		return badRequest(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreatePurchaseOrderCommand(
		id, body.OrderNo, fromAPIDate(body.EtaAtDealer), body.Note, modelID, body.Quantity)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.h.CreatePurchaseOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: toAPIUUID(id)})
}

// ChangePurchaseOrderStatus handles PUT /api/po/{id}/status?status=.
func (s *Server) ChangePurchaseOrderStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	raw, err := queryString(ctx, "status")
	if err != nil {
		return badRequest(ctx, err)
	}
	if raw == nil {
		return writeError(ctx, http.StatusBadRequest, "status is required")
	}

	status, err := purchaseorder.ParseStatus(*raw)
	if err != nil {
		return badRequest(ctx, err)
	}
	cmd, err := commands.NewChangePurchaseOrderStatusCommand(id, status)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.ChangePurchaseOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListVehicleUnits handles GET /api/vehicle-units.
func (s *Server) ListVehicleUnits(ctx echo.Context) error {
	raw, err := queryString(ctx, "status")
	if err != nil {
		return badRequest(ctx, err)
	}
	orderID, err := queryUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var status *vehicle.Status
	if raw != nil {
		parsed, err := vehicle.ParseStatus(*raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewListVehicleUnitsQuery(status, orderID)
	if err != nil {
		return badRequest(ctx, err)
	}
	units, err := s.h.ListVehicleUnits.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]VehicleUnit, len(units))
	for i, u := range units {
		response[i] = toVehicleUnit(u)
	}
	return ctx.JSON(http.StatusOK, response)
}

// MarkVehicleArrived handles PATCH /api/vehicle-units/{id}/arrive[?vin=].
func (s *Server) MarkVehicleArrived(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	vin, err := queryString(ctx, "vin")
	if err != nil {
		return badRequest(ctx, err)
	}

	raw := ""
	if vin != nil {
		raw = *vin
	}
	cmd, err := commands.NewMarkVehicleArrivedCommand(id, raw)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.MarkVehicleArrived.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignVehicleVIN handles PATCH /api/vehicle-units/{id}/vin?vin=.
func (s *Server) AssignVehicleVIN(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	vin, err := queryString(ctx, "vin")
	if err != nil {
		return badRequest(ctx, err)
	}
	if vin == nil {
		return writeError(ctx, http.StatusBadRequest, "vin is required")
	}

	cmd, err := commands.NewAssignVehicleVINCommand(id, *vin)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.AssignVehicleVIN.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
