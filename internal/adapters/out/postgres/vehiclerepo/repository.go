package vehiclerepo

import (
	"context"

	"dealership/internal/adapters/out/postgres/persist"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehicle"

	"gorm.io/gorm"
)

const entity = "vehicle_unit"

type GormVehicleUnitRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormVehicleUnitRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleUnitRepository {
	return &GormVehicleUnitRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormVehicleUnitRepository) Add(ctx context.Context, aggregate *vehicle.VehicleUnit) error {
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

func (r *GormVehicleUnitRepository) Update(ctx context.Context, aggregate *vehicle.VehicleUnit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++
	if err := persist.UpdateVersioned(ctx, r.db, &VehicleUnitDTO{}, &dto, entity, dto.ID, aggregate.Version()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormVehicleUnitRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.VehicleUnit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleUnitDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, persist.NotFound(err, entity, id.String())
	}

	return toDomain(dto)
}

func (r *GormVehicleUnitRepository) CountByOrder(ctx context.Context, orderID kernel.UUID) (int64, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	var n int64
	err := r.db.WithContext(ctx).Model(&VehicleUnitDTO{}).Where("order_id = ?", orderID.Bytes()).Count(&n).Error
	return n, err
}
