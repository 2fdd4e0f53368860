package queries

import (
	"context"
	"time"

	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

type deliveryRow struct {
	ID              uuid.UUID
	VehicleID       uuid.UUID
	VIN             *string `gorm:"column:vin"`
	Brand           *string
	Model           *string
	Variant         *string
	CustomerOrderID *uuid.UUID
	CustomerName    string
	VoucherID       *uuid.UUID
	VoucherCode     *string
	PriceBefore     *int64
	DiscountApplied int64
	PriceAfter      *int64
	Deposit         int64
	Status          string
	DeliveredAt     *time.Time
	CreatedAt       time.Time
}

func (h ListDeliveriesQueryHandler) Handle(ctx context.Context, query ListDeliveriesQuery) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var where clause
	if s := query.Status(); s != nil {
		where.add("d.status = ?", s.String())
	}

	var rows []deliveryRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.vehicle_id,
			vu.vin,
			cm.brand,
			cm.model,
			cm.variant,
			d.customer_order_id,
			d.customer_name,
			d.voucher_id,
			v.code AS voucher_code,
			d.price_before,
			d.discount_applied,
			d.price_after,
			d.deposit,
			d.status,
			d.delivered_at,
			d.created_at
		FROM deliveries d
		LEFT JOIN vehicle_units vu ON vu.id = d.vehicle_id
		LEFT JOIN car_models cm ON cm.id = vu.car_model_id
		LEFT JOIN vouchers v ON v.id = d.voucher_id
		`+where.String()+`
		ORDER BY d.created_at DESC, d.id
	`, where.args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]DeliveryView, 0, len(rows))
	for _, row := range rows {
		id, err := toUUID(row.ID)
		if err != nil {
			return nil, err
		}
		vehicleID, err := toUUID(row.VehicleID)
		if err != nil {
			return nil, err
		}
		orderID, err := kernel.OptionalUUID(row.CustomerOrderID)
		if err != nil {
			return nil, err
		}
		voucherID, err := kernel.OptionalUUID(row.VoucherID)
		if err != nil {
			return nil, err
		}

		views = append(views, DeliveryView{
			ID:              id,
			VehicleID:       vehicleID,
			VIN:             deref(row.VIN),
			ModelName:       joinName(row.Brand, row.Model, row.Variant),
			CustomerOrderID: orderID,
			CustomerName:    row.CustomerName,
			VoucherID:       voucherID,
			VoucherCode:     deref(row.VoucherCode),
			PriceBefore:     kernel.MoneyPtr(row.PriceBefore),
			DiscountApplied: kernel.Money(row.DiscountApplied),
			PriceAfter:      kernel.MoneyPtr(row.PriceAfter),
			Deposit:         kernel.Money(row.Deposit),
			Status:          delivery.Status(row.Status),
			DeliveredAt:     row.DeliveredAt,
			CreatedAt:       row.CreatedAt,
		})
	}

	return views, nil
}
