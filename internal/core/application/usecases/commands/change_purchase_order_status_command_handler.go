package commands

import (
	"context"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/purchaseorder"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/core/domain/services"
)

// ChangePurchaseOrderStatusCommandHandler advances a purchase order.
//
// Confirming an order that carries a plan spawns one ON_ORDER vehicle unit per
// planned car, unless units were already spawned for it. Units and the status
// change are committed together.
type ChangePurchaseOrderStatusCommandHandler struct {
	uowFactory InventoryUoWFactory
	clock      services.Clock
}

func NewChangePurchaseOrderStatusCommandHandler(
	uowFactory InventoryUoWFactory,
	clock services.Clock,
) ChangePurchaseOrderStatusCommandHandler {
	return ChangePurchaseOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *ChangePurchaseOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangePurchaseOrderStatusCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.PurchaseOrderRepository()
	po, err := orders.Get(ctx, cmd.PurchaseOrderID())
	if err != nil {
		return err
	}

	now := h.clock()
	if err = po.ChangeStatus(cmd.Status(), now); err != nil {
		return err
	}

	if err = orders.Update(ctx, po); err != nil {
		return err
	}

	if po.Status() == purchaseorder.Confirmed && po.Plan() != nil {
		if err = h.spawnUnits(ctx, uow, po, now); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h *ChangePurchaseOrderStatusCommandHandler) spawnUnits(
	ctx context.Context,
	uow InventoryUoW,
	po *purchaseorder.PurchaseOrder,
	now time.Time,
) error {
	units := uow.VehicleUnitRepository()

	existing, err := units.CountByOrder(ctx, po.ID())
	if err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	orderID := po.ID()
	for range po.Plan().Quantity() {
		unit, err := vehicle.NewVehicleUnit(kernel.NewUUID(), po.Plan().CarModelID(), &orderID, now)
		if err != nil {
			return err
		}
		if err = units.Add(ctx, unit); err != nil {
			return err
		}
	}

	return nil
}
