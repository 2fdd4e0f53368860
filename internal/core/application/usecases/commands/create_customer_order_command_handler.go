package commands

import (
	"context"

	"dealership/internal/core/domain/model/customerorder"
	"dealership/internal/core/domain/services"
)

// CreateCustomerOrderCommandHandler stores a PENDING customer order.
//
// Errors:
//   - unknown model or voucher code: *errs.ObjectNotFoundError
//   - inactive voucher: *errs.PreconditionFailedError
//   - price not positive, missing customer info: field errors from the aggregate
type CreateCustomerOrderCommandHandler struct {
	uowFactory SalesUoWFactory
	handover   *services.Handover
}

func NewCreateCustomerOrderCommandHandler(
	uowFactory SalesUoWFactory,
	handover *services.Handover,
) CreateCustomerOrderCommandHandler {
	return CreateCustomerOrderCommandHandler{
		uowFactory: uowFactory,
		handover:   handover,
	}
}

func (h *CreateCustomerOrderCommandHandler) Handle(ctx context.Context, cmd CreateCustomerOrderCommand) error {
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

	if _, err := uow.CarModelRepository().Get(ctx, cmd.CarModelID()); err != nil {
		return err
	}

	order, err := customerorder.NewCustomerOrder(
		cmd.CustomerOrderID(),
		cmd.CarModelID(),
		cmd.CustomerInfo(),
		cmd.Price(),
		cmd.DeliveryDate(),
		h.handover.Now(),
	)
	if err != nil {
		return err
	}

	if code := cmd.VoucherCode(); code != "" {
		v, err := uow.VoucherRepository().GetByCode(ctx, code)
		if err != nil {
			return err
		}
		if err = h.handover.PriceOrder(order, v); err != nil {
			return err
		}
	}

	if err = uow.CustomerOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
