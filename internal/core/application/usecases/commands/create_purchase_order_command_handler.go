package commands

import (
	"context"

	"dealership/internal/core/domain/model/purchaseorder"
	"dealership/internal/core/domain/services"
)

// CreatePurchaseOrderCommandHandler stores a DRAFT purchase order after
// checking that the planned model exists in the catalog.
type CreatePurchaseOrderCommandHandler struct {
	uowFactory InventoryUoWFactory
	clock      services.Clock
}

func NewCreatePurchaseOrderCommandHandler(
	uowFactory InventoryUoWFactory,
	clock services.Clock,
) CreatePurchaseOrderCommandHandler {
	return CreatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *CreatePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd CreatePurchaseOrderCommand) error {
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

	if plan := cmd.Plan(); plan != nil {
		if _, err := uow.CarModelRepository().Get(ctx, plan.CarModelID()); err != nil {
			return err
		}
	}

	po, err := purchaseorder.NewPurchaseOrder(
		cmd.PurchaseOrderID(), cmd.OrderNo(), cmd.Eta(), cmd.Note(), cmd.Plan(), h.clock())
	if err != nil {
		return err
	}

	if err = uow.PurchaseOrderRepository().Add(ctx, po); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
