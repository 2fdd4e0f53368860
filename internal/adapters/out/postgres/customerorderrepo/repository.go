package customerorderrepo

import (
	"context"

	"dealership/internal/adapters/out/postgres/persist"
	"dealership/internal/core/domain/model/customerorder"
	"dealership/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

const entity = "customer_order"

type GormCustomerOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCustomerOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerOrderRepository {
	return &GormCustomerOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCustomerOrderRepository) Add(ctx context.Context, aggregate *customerorder.CustomerOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCustomerOrderRepository) Update(ctx context.Context, aggregate *customerorder.CustomerOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++
	if err := persist.UpdateVersioned(ctx, r.db, &CustomerOrderDTO{}, &dto, entity, dto.ID, aggregate.Version()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCustomerOrderRepository) Get(ctx context.Context, id kernel.UUID) (*customerorder.CustomerOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, persist.NotFound(err, entity, id.String())
	}

	return toDomain(dto)
}
