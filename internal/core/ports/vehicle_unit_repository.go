package ports

import (
	"context"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehicle"
)

type VehicleUnitRepository interface {
	Add(ctx context.Context, aggregate *vehicle.VehicleUnit) error

	Update(ctx context.Context, aggregate *vehicle.VehicleUnit) error

	Get(ctx context.Context, id kernel.UUID) (*vehicle.VehicleUnit, error)

	// CountByOrder returns how many units were spawned for a purchase order.
	CountByOrder(ctx context.Context, orderID kernel.UUID) (int64, error)
}
