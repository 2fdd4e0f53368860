package voucherrepo

import (
	"context"

	"dealership/internal/adapters/out/postgres/persist"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/voucher"
	"dealership/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "voucher"

type GormVoucherRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormVoucherRepository(db *gorm.DB, tracker aggregateTracker) *GormVoucherRepository {
	return &GormVoucherRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a voucher. The code is checked first so the caller gets a typed
// error; the unique index covers concurrent inserts.
func (r *GormVoucherRepository) Add(ctx context.Context, aggregate *voucher.Voucher) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	var taken int64
	if err := r.db.WithContext(ctx).Model(&VoucherDTO{}).Where("code_key = ?", dto.CodeKey).Count(&taken).Error; err != nil {
		return err
	}
	if taken > 0 {
		return errs.NewObjectAlreadyExistsError("code", dto.Code)
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if persist.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("code", dto.Code, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormVoucherRepository) Update(ctx context.Context, aggregate *voucher.Voucher) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++
	if err := persist.UpdateVersioned(ctx, r.db, &VoucherDTO{}, &dto, entity, dto.ID, aggregate.Version()); err != nil {
		if persist.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("code", dto.Code, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormVoucherRepository) Get(ctx context.Context, id kernel.UUID) (*voucher.Voucher, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VoucherDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, persist.NotFound(err, entity, id.String())
	}

	return toDomain(dto)
}

func (r *GormVoucherRepository) GetByCode(ctx context.Context, code string) (*voucher.Voucher, error) {
	key := voucher.CodeKey(code)
	if key == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto VoucherDTO
	if err := r.db.WithContext(ctx).First(&dto, "code_key = ?", key).Error; err != nil {
		return nil, persist.NotFound(err, entity, key)
	}

	return toDomain(dto)
}
