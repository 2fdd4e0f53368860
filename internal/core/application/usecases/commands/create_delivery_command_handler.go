package commands

import (
	"context"

	"dealership/internal/core/domain/services"
)

// CreateDeliveryCommandHandler issues a PENDING delivery ticket.
//
// The vehicle must be AT_DEALER and free of other pending tickets, the linked
// customer order must still be PENDING, and the voucher must be active. Each
// failed precondition is reported as *errs.PreconditionFailedError; missing
// rows as *errs.ObjectNotFoundError.
type CreateDeliveryCommandHandler struct {
	uowFactory SalesUoWFactory
	handover   *services.Handover
}

func NewCreateDeliveryCommandHandler(
	uowFactory SalesUoWFactory,
	handover *services.Handover,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		handover:   handover,
	}
}

func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	unit, err := uow.VehicleUnitRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	deliveries := uow.DeliveryRepository()
	hasPending, err := deliveries.HasPendingForVehicle(ctx, unit.ID())
	if err != nil {
		return err
	}

	req := services.TicketRequest{
		CustomerName: cmd.CustomerName(),
		Price:        cmd.Price(),
		Deposit:      cmd.Deposit(),
	}

	if id := cmd.CustomerOrderID(); id != nil {
		if req.CustomerOrder, err = uow.CustomerOrderRepository().Get(ctx, *id); err != nil {
			return err
		}
	}

	switch {
	case cmd.VoucherCode() != "":
		req.Voucher, err = uow.VoucherRepository().GetByCode(ctx, cmd.VoucherCode())
	case cmd.VoucherID() != nil:
		req.Voucher, err = uow.VoucherRepository().Get(ctx, *cmd.VoucherID())
	}
	if err != nil {
		return err
	}

	ticket, err := h.handover.Issue(cmd.DeliveryID(), unit, hasPending, req)
	if err != nil {
		return err
	}

	if err = deliveries.Add(ctx, ticket); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
