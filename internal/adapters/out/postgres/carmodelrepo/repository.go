package carmodelrepo

import (
	"context"

	"dealership/internal/adapters/out/postgres/persist"
	"dealership/internal/core/domain/model/carmodel"
	"dealership/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type GormCarModelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCarModelRepository(db *gorm.DB, tracker aggregateTracker) *GormCarModelRepository {
	return &GormCarModelRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCarModelRepository) Add(ctx context.Context, aggregate *carmodel.CarModel) error {
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

func (r *GormCarModelRepository) Get(ctx context.Context, id kernel.UUID) (*carmodel.CarModel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarModelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, persist.NotFound(err, "car_model", id.String())
	}

	return toDomain(dto)
}
