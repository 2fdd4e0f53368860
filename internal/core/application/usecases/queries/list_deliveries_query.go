package queries

import (
	"errors"
	"time"

	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/guard"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// ListDeliveriesQuery lists delivery tickets. The status filter accepts the
// console spellings RESERVED and COMPLETED as well as the canonical ones.
type ListDeliveriesQuery struct {
	status *delivery.Status

	guard guard.ConstructorGuard
}

func NewListDeliveriesQuery(status string) (ListDeliveriesQuery, error) {
	q := ListDeliveriesQuery{guard: guard.NewConstructorGuard()}
	if status == "" {
		return q, nil
	}

	canonical, err := delivery.ParseStatus(status)
	if err != nil {
		return ListDeliveriesQuery{}, err
	}
	q.status = &canonical
	return q, nil
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

// Status is nil or canonical.
func (q ListDeliveriesQuery) Status() *delivery.Status {
	return q.status
}

type DeliveryView struct {
	ID              kernel.UUID
	VehicleID       kernel.UUID
	VIN             string
	ModelName       string
	CustomerOrderID *kernel.UUID
	CustomerName    string
	VoucherID       *kernel.UUID
	VoucherCode     string
	PriceBefore     *kernel.Money
	DiscountApplied kernel.Money
	PriceAfter      *kernel.Money
	Deposit         kernel.Money
	Status          delivery.Status
	DeliveredAt     *time.Time
	CreatedAt       time.Time
}
