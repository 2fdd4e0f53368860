// Package carmodelrepo persists the car model catalog.
package carmodelrepo

import (
	"dealership/internal/core/domain/model/carmodel"
	"dealership/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CarModelDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Brand   string    `gorm:"size:100;not null"`
	Model   string    `gorm:"size:100;not null"`
	Variant string    `gorm:"size:100;not null"`
	MSRP    *int64    `gorm:"column:msrp;type:bigint"`
}

func (CarModelDTO) TableName() string {
	return "car_models"
}

func fromDomain(c *carmodel.CarModel) CarModelDTO {
	return CarModelDTO{
		ID:      c.ID().Bytes(),
		Brand:   c.Brand(),
		Model:   c.Model(),
		Variant: c.Variant(),
		MSRP:    kernel.Int64Ptr(c.MSRP()),
	}
}

func toDomain(dto CarModelDTO) (*carmodel.CarModel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return carmodel.NewCarModel(id, dto.Brand, dto.Model, dto.Variant, kernel.MoneyPtr(dto.MSRP))
}
