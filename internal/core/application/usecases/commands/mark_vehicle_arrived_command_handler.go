package commands

import (
	"context"

	"dealership/internal/core/domain/services"
)

// MarkVehicleArrivedCommandHandler moves a unit from ON_ORDER to AT_DEALER and
// stamps its arrival time.
type MarkVehicleArrivedCommandHandler struct {
	uowFactory InventoryUoWFactory
	clock      services.Clock
}

func NewMarkVehicleArrivedCommandHandler(
	uowFactory InventoryUoWFactory,
	clock services.Clock,
) MarkVehicleArrivedCommandHandler {
	return MarkVehicleArrivedCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *MarkVehicleArrivedCommandHandler) Handle(ctx context.Context, cmd MarkVehicleArrivedCommand) error {
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

	units := uow.VehicleUnitRepository()
	unit, err := units.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if err = unit.MarkArrived(h.clock(), cmd.VIN()); err != nil {
		return err
	}

	if err = units.Update(ctx, unit); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
