package commands

import (
	"context"

	"dealership/internal/core/domain/services"
)

// AssignVehicleVINCommandHandler overwrites the VIN of a unit. Delivered
// units are rejected with *errs.PreconditionFailedError.
type AssignVehicleVINCommandHandler struct {
	uowFactory InventoryUoWFactory
	clock      services.Clock
}

func NewAssignVehicleVINCommandHandler(
	uowFactory InventoryUoWFactory,
	clock services.Clock,
) AssignVehicleVINCommandHandler {
	return AssignVehicleVINCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *AssignVehicleVINCommandHandler) Handle(ctx context.Context, cmd AssignVehicleVINCommand) error {
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

	if err = unit.AssignVIN(cmd.VIN(), h.clock()); err != nil {
		return err
	}

	if err = units.Update(ctx, unit); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
