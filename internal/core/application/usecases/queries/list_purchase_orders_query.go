package queries

import (
	"errors"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/purchaseorder"
	"dealership/internal/pkg/guard"
)

var ErrListPurchaseOrdersQueryIsNotConstructed = errors.New(
	"ListPurchaseOrdersQuery must be created via NewListPurchaseOrdersQuery constructor",
)

// ListPurchaseOrdersQuery lists purchase orders, newest first, optionally
// narrowed to one status.
type ListPurchaseOrdersQuery struct {
	status *purchaseorder.Status

	guard guard.ConstructorGuard
}

// NewListPurchaseOrdersQuery rejects a status outside the purchase order
// state machine.
func NewListPurchaseOrdersQuery(status *purchaseorder.Status) (ListPurchaseOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListPurchaseOrdersQuery{}, err
		}
	}
	return ListPurchaseOrdersQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPurchaseOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListPurchaseOrdersQueryIsNotConstructed)
}

func (q ListPurchaseOrdersQuery) Status() *purchaseorder.Status {
	return q.status
}

type PurchaseOrderView struct {
	ID                kernel.UUID
	OrderNo           string
	Status            purchaseorder.Status
	EtaAtDealer       *kernel.Date
	Note              string
	PlannedCarModelID *kernel.UUID
	PlannedModelName  string
	PlannedQuantity   int
	UnitCount         int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
