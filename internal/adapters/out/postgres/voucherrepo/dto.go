// Package voucherrepo persists voucher aggregates with gorm.
package voucherrepo

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/voucher"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherDTO is a row of the vouchers table. CodeKey is the normalised code
// the unique index is built on, so "flat10m" and "FLAT10M " collide.
type VoucherDTO struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Code        string              `gorm:"size:64;not null"`
	CodeKey     string              `gorm:"size:64;not null;uniqueIndex"`
	Type        string              `gorm:"size:16;not null"`
	Title       string              `gorm:"size:200;not null"`
	MinPrice    *int64              `gorm:"type:bigint"`
	MaxDiscount *int64              `gorm:"type:bigint"`
	Amount      *int64              `gorm:"type:bigint"`
	Percent     decimal.NullDecimal `gorm:"type:numeric(5,2)"`
	UsableFrom  *time.Time          `gorm:"type:date"`
	UsableTo    *time.Time          `gorm:"type:date"`
	Stackable   bool                `gorm:"not null"`
	Active      bool                `gorm:"not null;index"`
	CreatedAt   time.Time           `gorm:"not null;autoCreateTime:false"`
	Version     int                 `gorm:"not null"`
}

func (VoucherDTO) TableName() string {
	return "vouchers"
}

func fromDomain(v *voucher.Voucher) VoucherDTO {
	var percent decimal.NullDecimal
	if p := v.Percent(); p != nil {
		percent = decimal.NewNullDecimal(*p)
	}

	return VoucherDTO{
		ID:          v.ID().Bytes(),
		Code:        v.Code(),
		CodeKey:     v.CodeKey(),
		Type:        v.Type().String(),
		Title:       v.Title(),
		MinPrice:    kernel.Int64Ptr(v.MinPrice()),
		MaxDiscount: kernel.Int64Ptr(v.MaxDiscount()),
		Amount:      kernel.Int64Ptr(v.Amount()),
		Percent:     percent,
		UsableFrom:  kernel.TimePtr(v.UsableFrom()),
		UsableTo:    kernel.TimePtr(v.UsableTo()),
		Stackable:   v.IsStackable(),
		Active:      v.IsActive(),
		CreatedAt:   v.CreatedAt(),
		Version:     v.Version(),
	}
}

func toDomain(dto VoucherDTO) (*voucher.Voucher, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var percent *decimal.Decimal
	if dto.Percent.Valid {
		p := dto.Percent.Decimal
		percent = &p
	}

	terms := voucher.Terms{
		Code:        dto.Code,
		Type:        voucher.Type(dto.Type),
		Title:       dto.Title,
		MinPrice:    kernel.MoneyPtr(dto.MinPrice),
		MaxDiscount: kernel.MoneyPtr(dto.MaxDiscount),
		Amount:      kernel.MoneyPtr(dto.Amount),
		Percent:     percent,
		UsableFrom:  kernel.DatePtr(dto.UsableFrom),
		UsableTo:    kernel.DatePtr(dto.UsableTo),
		Stackable:   dto.Stackable,
	}

	return voucher.RestoreVoucher(id, terms, dto.Active, dto.CreatedAt, dto.Version)
}
