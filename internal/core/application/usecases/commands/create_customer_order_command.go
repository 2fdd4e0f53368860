package commands

import (
	"errors"
	"strings"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/guard"
)

var ErrCreateCustomerOrderCommandIsNotConstructed = errors.New(
	"CreateCustomerOrderCommand must be created via NewCreateCustomerOrderCommand constructor",
)

// CreateCustomerOrderCommand records a sale agreed with a customer. When a
// voucher code is given the discount is computed and locked in at creation.
//
// Example:
//
//	cmd, err := NewCreateCustomerOrderCommand(
//	    kernel.NewUUID(), corollaID, "Nguyen Van A, 0901234567", 500_000_000, "FLAT10M", nil)
type CreateCustomerOrderCommand struct { //nolint:recvcheck //using for validation
	customerOrderID kernel.UUID
	carModelID      kernel.UUID
	customerInfo    string
	price           kernel.Money
	voucherCode     string
	deliveryDate    *kernel.Date

	guard guard.ConstructorGuard
}

func NewCreateCustomerOrderCommand(
	customerOrderID, carModelID kernel.UUID,
	customerInfo string,
	price kernel.Money,
	voucherCode string,
	deliveryDate *kernel.Date,
) (CreateCustomerOrderCommand, error) {
	if err := errors.Join(customerOrderID.Validate(), carModelID.Validate()); err != nil {
		return CreateCustomerOrderCommand{}, err
	}

	return CreateCustomerOrderCommand{
		customerOrderID: customerOrderID,
		carModelID:      carModelID,
		customerInfo:    customerInfo,
		price:           price,
		voucherCode:     strings.TrimSpace(voucherCode),
		deliveryDate:    deliveryDate,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCustomerOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerOrderCommandIsNotConstructed)
}

func (c CreateCustomerOrderCommand) CustomerOrderID() kernel.UUID {
	return c.customerOrderID
}

func (c CreateCustomerOrderCommand) CarModelID() kernel.UUID {
	return c.carModelID
}

func (c CreateCustomerOrderCommand) CustomerInfo() string {
	return c.customerInfo
}

func (c CreateCustomerOrderCommand) Price() kernel.Money {
	return c.price
}

// VoucherCode is empty when no voucher applies.
func (c CreateCustomerOrderCommand) VoucherCode() string {
	return c.voucherCode
}

func (c CreateCustomerOrderCommand) DeliveryDate() *kernel.Date {
	return c.deliveryDate
}
