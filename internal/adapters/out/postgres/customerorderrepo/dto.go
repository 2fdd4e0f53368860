// Package customerorderrepo persists customer orders with gorm.
package customerorderrepo

import (
	"time"

	"dealership/internal/core/domain/model/customerorder"
	"dealership/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CustomerOrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CarModelID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustomerInfo    string     `gorm:"type:text;not null"`
	Price           int64      `gorm:"type:bigint;not null"`
	VoucherID       *uuid.UUID `gorm:"type:uuid"`
	DiscountApplied int64      `gorm:"type:bigint;not null"`
	PriceAfter      int64      `gorm:"type:bigint;not null"`
	DeliveryDate    *time.Time `gorm:"type:date"`
	Status          string     `gorm:"size:16;not null;index"`
	CreatedAt       time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt       time.Time  `gorm:"not null;autoUpdateTime:false"`
	Version         int        `gorm:"not null"`
}

func (CustomerOrderDTO) TableName() string {
	return "customer_orders"
}

func fromDomain(o *customerorder.CustomerOrder) CustomerOrderDTO {
	return CustomerOrderDTO{
		ID:              o.ID().Bytes(),
		CarModelID:      o.CarModelID().Bytes(),
		CustomerInfo:    o.CustomerInfo(),
		Price:           o.Price().Int64(),
		VoucherID:       kernel.RawUUID(o.VoucherID()),
		DiscountApplied: o.DiscountApplied().Int64(),
		PriceAfter:      o.PriceAfter().Int64(),
		DeliveryDate:    kernel.TimePtr(o.DeliveryDate()),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		Version:         o.Version(),
	}
}

func toDomain(dto CustomerOrderDTO) (*customerorder.CustomerOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	carModelID, err := kernel.UUIDFromBytes(dto.CarModelID[:])
	if err != nil {
		return nil, err
	}
	voucherID, err := kernel.OptionalUUID(dto.VoucherID)
	if err != nil {
		return nil, err
	}

	return customerorder.RestoreCustomerOrder(
		id,
		carModelID,
		dto.CustomerInfo,
		kernel.Money(dto.Price),
		voucherID,
		kernel.Money(dto.DiscountApplied),
		kernel.Money(dto.PriceAfter),
		kernel.DatePtr(dto.DeliveryDate),
		customerorder.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
