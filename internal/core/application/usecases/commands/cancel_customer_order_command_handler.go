package commands

import (
	"context"

	"dealership/internal/core/domain/services"
)

// CancelCustomerOrderCommandHandler moves a PENDING customer order to
// CANCELLED. Completed and cancelled orders are terminal.
type CancelCustomerOrderCommandHandler struct {
	uowFactory SalesUoWFactory
	clock      services.Clock
}

func NewCancelCustomerOrderCommandHandler(
	uowFactory SalesUoWFactory,
	clock services.Clock,
) CancelCustomerOrderCommandHandler {
	return CancelCustomerOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *CancelCustomerOrderCommandHandler) Handle(ctx context.Context, cmd CancelCustomerOrderCommand) error {
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

	orders := uow.CustomerOrderRepository()
	order, err := orders.Get(ctx, cmd.CustomerOrderID())
	if err != nil {
		return err
	}

	if err = order.Cancel(h.clock()); err != nil {
		return err
	}

	if err = orders.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
