package queries

import (
	"context"
	"time"

	"dealership/internal/core/domain/model/customerorder"
	"dealership/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

type customerOrderRow struct {
	ID              uuid.UUID
	CarModelID      uuid.UUID
	Brand           *string
	Model           *string
	Variant         *string
	CustomerInfo    string
	Price           int64
	VoucherID       *uuid.UUID
	VoucherCode     *string
	DiscountApplied int64
	PriceAfter      int64
	DeliveryDate    *time.Time
	Status          string
	CreatedAt       time.Time
}

func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) ([]CustomerOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var where clause
	if s := query.Status(); s != nil {
		where.add("co.status = ?", s.String())
	}

	var rows []customerOrderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			co.id,
			co.car_model_id,
			cm.brand,
			cm.model,
			cm.variant,
			co.customer_info,
			co.price,
			co.voucher_id,
			v.code AS voucher_code,
			co.discount_applied,
			co.price_after,
			co.delivery_date,
			co.status,
			co.created_at
		FROM customer_orders co
		LEFT JOIN car_models cm ON cm.id = co.car_model_id
		LEFT JOIN vouchers v ON v.id = co.voucher_id
		`+where.String()+`
		ORDER BY co.created_at DESC, co.id
	`, where.args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]CustomerOrderView, 0, len(rows))
	for _, row := range rows {
		id, err := toUUID(row.ID)
		if err != nil {
			return nil, err
		}
		modelID, err := toUUID(row.CarModelID)
		if err != nil {
			return nil, err
		}
		voucherID, err := kernel.OptionalUUID(row.VoucherID)
		if err != nil {
			return nil, err
		}

		views = append(views, CustomerOrderView{
			ID:              id,
			CarModelID:      modelID,
			ModelName:       joinName(row.Brand, row.Model, row.Variant),
			CustomerInfo:    row.CustomerInfo,
			Price:           kernel.Money(row.Price),
			VoucherID:       voucherID,
			VoucherCode:     deref(row.VoucherCode),
			DiscountApplied: kernel.Money(row.DiscountApplied),
			PriceAfter:      kernel.Money(row.PriceAfter),
			DeliveryDate:    kernel.DatePtr(row.DeliveryDate),
			Status:          customerorder.Status(row.Status),
			CreatedAt:       row.CreatedAt,
		})
	}

	return views, nil
}
