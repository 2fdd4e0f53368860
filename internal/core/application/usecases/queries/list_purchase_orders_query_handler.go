package queries

import (
	"context"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/purchaseorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListPurchaseOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListPurchaseOrdersQueryHandler(db *gorm.DB) ListPurchaseOrdersQueryHandler {
	return ListPurchaseOrdersQueryHandler{db: db}
}

type purchaseOrderRow struct {
	ID                uuid.UUID
	OrderNo           string
	Status            string
	EtaAtDealer       *time.Time
	Note              string
	PlannedCarModelID *uuid.UUID
	Brand             *string
	Model             *string
	Variant           *string
	PlannedQuantity   int
	UnitCount         int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (h ListPurchaseOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListPurchaseOrdersQuery,
) ([]PurchaseOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var where clause
	if s := query.Status(); s != nil {
		where.add("mo.status = ?", s.String())
	}

	var rows []purchaseOrderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			mo.id,
			mo.order_no,
			mo.status,
			mo.eta_at_dealer,
			mo.note,
			mo.planned_car_model_id,
			cm.brand,
			cm.model,
			cm.variant,
			mo.planned_quantity,
			(SELECT COUNT(*) FROM vehicle_units vu WHERE vu.order_id = mo.id) AS unit_count,
			mo.created_at,
			mo.updated_at
		FROM manufacturer_orders mo
		LEFT JOIN car_models cm ON cm.id = mo.planned_car_model_id
		`+where.String()+`
		ORDER BY mo.created_at DESC, mo.order_no
	`, where.args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]PurchaseOrderView, 0, len(rows))
	for _, row := range rows {
		id, err := toUUID(row.ID)
		if err != nil {
			return nil, err
		}
		modelID, err := kernel.OptionalUUID(row.PlannedCarModelID)
		if err != nil {
			return nil, err
		}

		views = append(views, PurchaseOrderView{
			ID:                id,
			OrderNo:           row.OrderNo,
			Status:            purchaseorder.Status(row.Status),
			EtaAtDealer:       kernel.DatePtr(row.EtaAtDealer),
			Note:              row.Note,
			PlannedCarModelID: modelID,
			PlannedModelName:  joinName(row.Brand, row.Model, row.Variant),
			PlannedQuantity:   row.PlannedQuantity,
			UnitCount:         row.UnitCount,
			CreatedAt:         row.CreatedAt,
			UpdatedAt:         row.UpdatedAt,
		})
	}

	return views, nil
}
