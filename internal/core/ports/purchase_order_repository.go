package ports

import (
	"context"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/purchaseorder"
)

// PurchaseOrderRepository stores purchase orders placed with the manufacturer.
type PurchaseOrderRepository interface {
	// Add persists a new order. A taken order number yields
	// *errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error

	Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error

	Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error)

	GetByOrderNo(ctx context.Context, orderNo string) (*purchaseorder.PurchaseOrder, error)
}
