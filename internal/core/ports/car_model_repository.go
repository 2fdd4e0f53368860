package ports

import (
	"context"

	"dealership/internal/core/domain/model/carmodel"
	"dealership/internal/core/domain/model/kernel"
)

// CarModelRepository is the catalog. Models are seeded and never change
// through the API.
type CarModelRepository interface {
	Add(ctx context.Context, aggregate *carmodel.CarModel) error

	Get(ctx context.Context, id kernel.UUID) (*carmodel.CarModel, error)
}
