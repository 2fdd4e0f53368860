// Package purchaseorderrepo persists purchase orders with gorm.
package purchaseorderrepo

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/purchaseorder"

	"github.com/google/uuid"
)

// PurchaseOrderDTO is a row of manufacturer_orders. A plan is stored as
// planned_car_model_id plus planned_quantity; quantity 0 means no plan.
type PurchaseOrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNo           string     `gorm:"size:50;not null;uniqueIndex"`
	Status            string     `gorm:"size:16;not null;index"`
	EtaAtDealer       *time.Time `gorm:"type:date"`
	Note              string     `gorm:"type:text;not null"`
	PlannedCarModelID *uuid.UUID `gorm:"type:uuid"`
	PlannedQuantity   int        `gorm:"not null"`
	CreatedAt         time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt         time.Time  `gorm:"not null;autoUpdateTime:false"`
	Version           int        `gorm:"not null"`
}

func (PurchaseOrderDTO) TableName() string {
	return "manufacturer_orders"
}

func fromDomain(po *purchaseorder.PurchaseOrder) PurchaseOrderDTO {
	dto := PurchaseOrderDTO{
		ID:          po.ID().Bytes(),
		OrderNo:     po.OrderNo(),
		Status:      po.Status().String(),
		EtaAtDealer: kernel.TimePtr(po.EtaAtDealer()),
		Note:        po.Note(),
		CreatedAt:   po.CreatedAt(),
		UpdatedAt:   po.UpdatedAt(),
		Version:     po.Version(),
	}
	if plan := po.Plan(); plan != nil {
		modelID := plan.CarModelID().Bytes()
		dto.PlannedCarModelID = &modelID
		dto.PlannedQuantity = plan.Quantity()
	}
	return dto
}

func toDomain(dto PurchaseOrderDTO) (*purchaseorder.PurchaseOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var plan *purchaseorder.Plan
	if dto.PlannedCarModelID != nil && dto.PlannedQuantity > 0 {
		modelID, modelErr := kernel.UUIDFromBytes(dto.PlannedCarModelID[:])
		if modelErr != nil {
			return nil, modelErr
		}
		p, planErr := purchaseorder.NewPlan(modelID, dto.PlannedQuantity)
		if planErr != nil {
			return nil, planErr
		}
		plan = &p
	}

	return purchaseorder.RestorePurchaseOrder(
		id,
		dto.OrderNo,
		purchaseorder.Status(dto.Status),
		kernel.DatePtr(dto.EtaAtDealer),
		dto.Note,
		plan,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
