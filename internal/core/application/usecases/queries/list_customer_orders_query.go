package queries

import (
	"errors"
	"time"

	"dealership/internal/core/domain/model/customerorder"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/guard"
)

var ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
)

type ListCustomerOrdersQuery struct {
	status *customerorder.Status

	guard guard.ConstructorGuard
}

func NewListCustomerOrdersQuery(status *customerorder.Status) (ListCustomerOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListCustomerOrdersQuery{}, err
		}
	}
	return ListCustomerOrdersQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

func (q ListCustomerOrdersQuery) Status() *customerorder.Status {
	return q.status
}

type CustomerOrderView struct {
	ID              kernel.UUID
	CarModelID      kernel.UUID
	ModelName       string
	CustomerInfo    string
	Price           kernel.Money
	VoucherID       *kernel.UUID
	VoucherCode     string
	DiscountApplied kernel.Money
	PriceAfter      kernel.Money
	DeliveryDate    *kernel.Date
	Status          customerorder.Status
	CreatedAt       time.Time
}
