package commands

import (
	"errors"
	"strings"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrVoucherIsAmbiguous = errors.New("give either a voucher code or a voucher id, not both")
)

// CreateDeliveryCommand opens a delivery ticket for a vehicle at the dealer.
//
// The customer order, voucher and price are optional. A voucher may be given
// by code or by id. Without a price the customer order's price is used.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID      kernel.UUID
	vehicleID       kernel.UUID
	customerOrderID *kernel.UUID
	customerName    string
	voucherCode     string
	voucherID       *kernel.UUID
	price           *kernel.Money
	deposit         kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateDeliveryCommand(
	deliveryID, vehicleID kernel.UUID,
	customerOrderID *kernel.UUID,
	customerName string,
	voucherCode string,
	voucherID *kernel.UUID,
	price *kernel.Money,
	deposit kernel.Money,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		customerOrderID: customerOrderID,
		customerName:    strings.TrimSpace(customerName),
		price:           price,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(deliveryID, vehicleID),
		cmd.setVoucher(voucherCode, voucherID),
		cmd.setDeposit(deposit),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c CreateDeliveryCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c CreateDeliveryCommand) CustomerOrderID() *kernel.UUID {
	return c.customerOrderID
}

func (c CreateDeliveryCommand) CustomerName() string {
	return c.customerName
}

func (c CreateDeliveryCommand) VoucherCode() string {
	return c.voucherCode
}

func (c CreateDeliveryCommand) VoucherID() *kernel.UUID {
	return c.voucherID
}

func (c CreateDeliveryCommand) Price() *kernel.Money {
	return c.price
}

func (c CreateDeliveryCommand) Deposit() kernel.Money {
	return c.deposit
}

func (c *CreateDeliveryCommand) setIDs(deliveryID, vehicleID kernel.UUID) error {
	if err := errors.Join(deliveryID.Validate(), vehicleID.Validate()); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	c.vehicleID = vehicleID
	return nil
}

func (c *CreateDeliveryCommand) setVoucher(code string, id *kernel.UUID) error {
	code = strings.TrimSpace(code)
	if code != "" && id != nil {
		return errs.NewValueIsInvalidErrorWithCause("voucher", ErrVoucherIsAmbiguous)
	}

	c.voucherCode = code
	c.voucherID = id
	return nil
}

func (c *CreateDeliveryCommand) setDeposit(deposit kernel.Money) error {
	if deposit.IsNegative() {
		return errs.NewValueIsOutOfRangeError("deposit", deposit, 0, nil)
	}

	c.deposit = deposit
	return nil
}
