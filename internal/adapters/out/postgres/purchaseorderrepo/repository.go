package purchaseorderrepo

import (
	"context"
	"strings"

	"dealership/internal/adapters/out/postgres/persist"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/purchaseorder"
	"dealership/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "purchase_order"

type GormPurchaseOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPurchaseOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPurchaseOrderRepository) Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	var taken int64
	if err := r.db.WithContext(ctx).Model(&PurchaseOrderDTO{}).Where("order_no = ?", dto.OrderNo).Count(&taken).Error; err != nil {
		return err
	}
	if taken > 0 {
		return errs.NewObjectAlreadyExistsError("order_no", dto.OrderNo)
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if persist.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order_no", dto.OrderNo, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPurchaseOrderRepository) Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++
	if err := persist.UpdateVersioned(ctx, r.db, &PurchaseOrderDTO{}, &dto, entity, dto.ID, aggregate.Version()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PurchaseOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, persist.NotFound(err, entity, id.String())
	}

	return toDomain(dto)
}

func (r *GormPurchaseOrderRepository) GetByOrderNo(ctx context.Context, orderNo string) (*purchaseorder.PurchaseOrder, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, errs.NewValueIsRequiredError("order_no")
	}

	var dto PurchaseOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_no = ?", orderNo).Error; err != nil {
		return nil, persist.NotFound(err, entity, orderNo)
	}

	return toDomain(dto)
}
