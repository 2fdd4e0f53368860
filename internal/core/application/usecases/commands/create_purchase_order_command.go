package commands

import (
	"errors"
	"strings"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/purchaseorder"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var (
	ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
		"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
	)
	ErrOrderNoIsRequired = errors.New("order number is required")
)

// CreatePurchaseOrderCommand places a new DRAFT order with the manufacturer.
// A quantity of zero means the order has no planned model and spawns no units
// on confirmation.
//
// Example:
//
//	eta := kernel.NewDate(2025, time.April, 1)
//	cmd, err := NewCreatePurchaseOrderCommand(
//	    kernel.NewUUID(), "PO-2025-003", &eta, "spring batch", &corollaID, 4)
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	purchaseOrderID kernel.UUID
	orderNo         string
	eta             *kernel.Date
	note            string
	plan            *purchaseorder.Plan

	guard guard.ConstructorGuard
}

func NewCreatePurchaseOrderCommand(
	purchaseOrderID kernel.UUID,
	orderNo string,
	eta *kernel.Date,
	note string,
	carModelID *kernel.UUID,
	quantity int,
) (CreatePurchaseOrderCommand, error) {
	cmd := CreatePurchaseOrderCommand{
		eta:   eta,
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPurchaseOrderID(purchaseOrderID),
		cmd.setOrderNo(orderNo),
		cmd.setPlan(carModelID, quantity),
	); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

func (c CreatePurchaseOrderCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

func (c CreatePurchaseOrderCommand) OrderNo() string {
	return c.orderNo
}

func (c CreatePurchaseOrderCommand) Eta() *kernel.Date {
	return c.eta
}

func (c CreatePurchaseOrderCommand) Note() string {
	return c.note
}

// Plan returns nil when no model was planned.
func (c CreatePurchaseOrderCommand) Plan() *purchaseorder.Plan {
	return c.plan
}

func (c *CreatePurchaseOrderCommand) setPurchaseOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.purchaseOrderID = id
	return nil
}

func (c *CreatePurchaseOrderCommand) setOrderNo(orderNo string) error {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return ErrOrderNoIsRequired
	}

	c.orderNo = orderNo
	return nil
}

func (c *CreatePurchaseOrderCommand) setPlan(carModelID *kernel.UUID, quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, nil)
	}
	if quantity == 0 {
		return nil
	}
	if carModelID == nil {
		return errs.NewValueIsRequiredError("carModelId")
	}

	plan, err := purchaseorder.NewPlan(*carModelID, quantity)
	if err != nil {
		return err
	}

	c.plan = &plan
	return nil
}
