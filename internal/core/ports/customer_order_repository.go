package ports

import (
	"context"

	"dealership/internal/core/domain/model/customerorder"
	"dealership/internal/core/domain/model/kernel"
)

type CustomerOrderRepository interface {
	Add(ctx context.Context, aggregate *customerorder.CustomerOrder) error

	Update(ctx context.Context, aggregate *customerorder.CustomerOrder) error

	Get(ctx context.Context, id kernel.UUID) (*customerorder.CustomerOrder, error)
}
