package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/purchaseorder"
	"dealership/internal/pkg/guard"
)

var ErrChangePurchaseOrderStatusCommandIsNotConstructed = errors.New(
	"ChangePurchaseOrderStatusCommand must be created via NewChangePurchaseOrderStatusCommand constructor",
)

type ChangePurchaseOrderStatusCommand struct { //nolint:recvcheck //using for validation
	purchaseOrderID kernel.UUID
	status          purchaseorder.Status

	guard guard.ConstructorGuard
}

// NewChangePurchaseOrderStatusCommand rejects status literals that are not
// part of the purchase order state machine.
func NewChangePurchaseOrderStatusCommand(
	purchaseOrderID kernel.UUID,
	status purchaseorder.Status,
) (ChangePurchaseOrderStatusCommand, error) {
	if err := errors.Join(purchaseOrderID.Validate(), status.Validate()); err != nil {
		return ChangePurchaseOrderStatusCommand{}, err
	}

	return ChangePurchaseOrderStatusCommand{
		purchaseOrderID: purchaseOrderID,
		status:          status,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c ChangePurchaseOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePurchaseOrderStatusCommandIsNotConstructed)
}

func (c ChangePurchaseOrderStatusCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

func (c ChangePurchaseOrderStatusCommand) Status() purchaseorder.Status {
	return c.status
}
