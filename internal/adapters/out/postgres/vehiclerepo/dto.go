// Package vehiclerepo persists vehicle units with gorm.
package vehiclerepo

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

type VehicleUnitDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CarModelID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index"`
	VIN         *string    `gorm:"column:vin;size:17"`
	Status      string     `gorm:"size:16;not null;index"`
	ArrivedAt   *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
	Version     int       `gorm:"not null"`
}

func (VehicleUnitDTO) TableName() string {
	return "vehicle_units"
}

func fromDomain(u *vehicle.VehicleUnit) VehicleUnitDTO {
	var vin *string
	if v := u.VIN(); v != nil {
		s := v.String()
		vin = &s
	}

	return VehicleUnitDTO{
		ID:          u.ID().Bytes(),
		CarModelID:  u.CarModelID().Bytes(),
		OrderID:     kernel.RawUUID(u.OrderID()),
		VIN:         vin,
		Status:      u.Status().String(),
		ArrivedAt:   u.ArrivedAt(),
		DeliveredAt: u.DeliveredAt(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
		Version:     u.Version(),
	}
}

func toDomain(dto VehicleUnitDTO) (*vehicle.VehicleUnit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	carModelID, err := kernel.UUIDFromBytes(dto.CarModelID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.OptionalUUID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	var vin *vehicle.VIN
	if dto.VIN != nil && *dto.VIN != "" {
		v, vinErr := vehicle.NewVIN(*dto.VIN)
		if vinErr != nil {
			return nil, vinErr
		}
		vin = &v
	}

	return vehicle.RestoreVehicleUnit(
		id,
		carModelID,
		orderID,
		vin,
		vehicle.Status(dto.Status),
		dto.ArrivedAt,
		dto.DeliveredAt,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
