package queries

import (
	"context"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListVehicleUnitsQueryHandler struct {
	db *gorm.DB
}

func NewListVehicleUnitsQueryHandler(db *gorm.DB) ListVehicleUnitsQueryHandler {
	return ListVehicleUnitsQueryHandler{db: db}
}

type vehicleUnitRow struct {
	ID          uuid.UUID
	CarModelID  uuid.UUID
	Brand       *string
	Model       *string
	Variant     *string
	OrderID     *uuid.UUID
	OrderNo     *string
	VIN         *string `gorm:"column:vin"`
	Status      string
	ArrivedAt   *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
}

// Handle returns units newest first.
func (h ListVehicleUnitsQueryHandler) Handle(
	ctx context.Context,
	query ListVehicleUnitsQuery,
) ([]VehicleUnitView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var where clause
	if s := query.Status(); s != nil {
		where.add("vu.status = ?", s.String())
	}
	if id := query.OrderID(); id != nil {
		where.add("vu.order_id = ?", id.Bytes())
	}

	var rows []vehicleUnitRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			vu.id,
			vu.car_model_id,
			cm.brand,
			cm.model,
			cm.variant,
			vu.order_id,
			mo.order_no,
			vu.vin,
			vu.status,
			vu.arrived_at,
			vu.delivered_at,
			vu.created_at
		FROM vehicle_units vu
		LEFT JOIN car_models cm ON cm.id = vu.car_model_id
		LEFT JOIN manufacturer_orders mo ON mo.id = vu.order_id
		`+where.String()+`
		ORDER BY vu.created_at DESC, vu.vin, vu.id
	`, where.args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]VehicleUnitView, 0, len(rows))
	for _, row := range rows {
		id, err := toUUID(row.ID)
		if err != nil {
			return nil, err
		}
		modelID, err := toUUID(row.CarModelID)
		if err != nil {
			return nil, err
		}
		orderID, err := kernel.OptionalUUID(row.OrderID)
		if err != nil {
			return nil, err
		}

		views = append(views, VehicleUnitView{
			ID:          id,
			CarModelID:  modelID,
			ModelName:   joinName(row.Brand, row.Model, row.Variant),
			OrderID:     orderID,
			OrderNo:     deref(row.OrderNo),
			VIN:         deref(row.VIN),
			Status:      vehicle.Status(row.Status),
			ArrivedAt:   row.ArrivedAt,
			DeliveredAt: row.DeliveredAt,
			CreatedAt:   row.CreatedAt,
		})
	}

	return views, nil
}
