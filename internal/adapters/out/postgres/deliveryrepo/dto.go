// Package deliveryrepo persists delivery tickets with gorm.
package deliveryrepo

import (
	"time"

	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VehicleID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustomerOrderID *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName    string     `gorm:"size:200;not null"`
	VoucherID       *uuid.UUID `gorm:"type:uuid"`
	PriceBefore     *int64     `gorm:"type:bigint"`
	DiscountApplied int64      `gorm:"type:bigint;not null"`
	PriceAfter      *int64     `gorm:"type:bigint"`
	Deposit         int64      `gorm:"type:bigint;not null"`
	Status          string     `gorm:"size:16;not null;index"`
	DeliveredAt     *time.Time
	CreatedAt       time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime:false"`
	Version         int       `gorm:"not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	p := d.Pricing()
	return DeliveryDTO{
		ID:              d.ID().Bytes(),
		VehicleID:       d.VehicleID().Bytes(),
		CustomerOrderID: kernel.RawUUID(d.CustomerOrderID()),
		CustomerName:    d.CustomerName(),
		VoucherID:       kernel.RawUUID(p.VoucherID),
		PriceBefore:     kernel.Int64Ptr(p.PriceBefore),
		DiscountApplied: p.DiscountApplied.Int64(),
		PriceAfter:      kernel.Int64Ptr(p.PriceAfter),
		Deposit:         d.Deposit().Int64(),
		Status:          d.Status().String(),
		DeliveredAt:     d.DeliveredAt(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
		Version:         d.Version(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}
	customerOrderID, err := kernel.OptionalUUID(dto.CustomerOrderID)
	if err != nil {
		return nil, err
	}
	voucherID, err := kernel.OptionalUUID(dto.VoucherID)
	if err != nil {
		return nil, err
	}

	pricing := delivery.Pricing{
		VoucherID:       voucherID,
		PriceBefore:     kernel.MoneyPtr(dto.PriceBefore),
		DiscountApplied: kernel.Money(dto.DiscountApplied),
		PriceAfter:      kernel.MoneyPtr(dto.PriceAfter),
	}

	return delivery.RestoreDelivery(
		id,
		vehicleID,
		customerOrderID,
		dto.CustomerName,
		pricing,
		kernel.Money(dto.Deposit),
		delivery.Status(dto.Status),
		dto.DeliveredAt,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
