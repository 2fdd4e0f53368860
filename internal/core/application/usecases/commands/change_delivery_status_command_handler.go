package commands

import (
	"context"

	"dealership/internal/core/domain/model/customerorder"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/core/domain/services"
)

// ChangeDeliveryStatusCommandHandler completes or cancels a delivery ticket.
//
// Completing a ticket also delivers the vehicle and completes the linked
// customer order. The three updates share one transaction: either all of them
// are stored or none.
type ChangeDeliveryStatusCommandHandler struct {
	uowFactory SalesUoWFactory
	handover   *services.Handover
}

func NewChangeDeliveryStatusCommandHandler(
	uowFactory SalesUoWFactory,
	handover *services.Handover,
) ChangeDeliveryStatusCommandHandler {
	return ChangeDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		handover:   handover,
	}
}

func (h *ChangeDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDeliveryStatusCommand) error {
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

	deliveries := uow.DeliveryRepository()
	ticket, err := deliveries.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	var unit *vehicle.VehicleUnit
	var order *customerorder.CustomerOrder
	if cmd.IsHandover() {
		if unit, err = uow.VehicleUnitRepository().Get(ctx, ticket.VehicleID()); err != nil {
			return err
		}
		if id := ticket.CustomerOrderID(); id != nil {
			if order, err = uow.CustomerOrderRepository().Get(ctx, *id); err != nil {
				return err
			}
		}
	}

	if err = h.handover.ChangeStatus(ticket, cmd.Status(), unit, order); err != nil {
		return err
	}

	if err = deliveries.Update(ctx, ticket); err != nil {
		return err
	}

	if unit != nil {
		if err = uow.VehicleUnitRepository().Update(ctx, unit); err != nil {
			return err
		}
	}
	if order != nil {
		if err = uow.CustomerOrderRepository().Update(ctx, order); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
