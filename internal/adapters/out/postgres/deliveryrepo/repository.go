package deliveryrepo

import (
	"context"

	"dealership/internal/adapters/out/postgres/persist"
	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "delivery"

type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if persist.IsUniqueViolation(err) {
			return errs.NewPreconditionFailedErrorWithCause(
				"VehicleUnit", "already has a pending delivery", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++
	if err := persist.UpdateVersioned(ctx, r.db, &DeliveryDTO{}, &dto, entity, dto.ID, aggregate.Version()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, persist.NotFound(err, entity, id.String())
	}

	return toDomain(dto)
}

func (r *GormDeliveryRepository) HasPendingForVehicle(ctx context.Context, vehicleID kernel.UUID) (bool, error) {
	if err := vehicleID.Validate(); err != nil {
		return false, err
	}

	var n int64
	err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("vehicle_id = ? AND status = ?", vehicleID.Bytes(), delivery.Pending.String()).
		Count(&n).Error
	return n > 0, err
}
