package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/guard"
)

var ErrCancelCustomerOrderCommandIsNotConstructed = errors.New(
	"CancelCustomerOrderCommand must be created via NewCancelCustomerOrderCommand constructor",
)

type CancelCustomerOrderCommand struct { //nolint:recvcheck //using for validation
	customerOrderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelCustomerOrderCommand(customerOrderID kernel.UUID) (CancelCustomerOrderCommand, error) {
	if err := customerOrderID.Validate(); err != nil {
		return CancelCustomerOrderCommand{}, err
	}

	return CancelCustomerOrderCommand{
		customerOrderID: customerOrderID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c CancelCustomerOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelCustomerOrderCommandIsNotConstructed)
}

func (c CancelCustomerOrderCommand) CustomerOrderID() kernel.UUID {
	return c.customerOrderID
}
