package ports

import (
	"context"

	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"
)

// DeliveryRepository stores delivery tickets.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	Update(ctx context.Context, aggregate *delivery.Delivery) error

	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// HasPendingForVehicle reports whether the vehicle already has a PENDING
	// ticket. A vehicle carries at most one.
	HasPendingForVehicle(ctx context.Context, vehicleID kernel.UUID) (bool, error)
}
