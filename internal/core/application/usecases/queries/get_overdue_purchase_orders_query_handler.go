package queries

import (
	"context"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/purchaseorder"
	"dealership/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOverduePurchaseOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOverduePurchaseOrdersQueryHandler(db *gorm.DB) GetOverduePurchaseOrdersQueryHandler {
	return GetOverduePurchaseOrdersQueryHandler{db: db}
}

type overdueRow struct {
	ID           uuid.UUID
	OrderNo      string
	EtaAtDealer  time.Time
	UnitsOnOrder int64
}

func (h GetOverduePurchaseOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverduePurchaseOrdersQuery,
) ([]OverduePurchaseOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	today := query.Today()
	onOrder := vehicle.OnOrder.String()

	var rows []overdueRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			po.id,
			po.order_no,
			po.eta_at_dealer,
			(SELECT COUNT(*) FROM vehicle_units vu
				WHERE vu.order_id = po.id AND vu.status = ?) AS units_on_order
		FROM manufacturer_orders po
		WHERE po.status = ?
			AND po.eta_at_dealer IS NOT NULL
			AND po.eta_at_dealer < ?
			AND EXISTS (SELECT 1 FROM vehicle_units vu
				WHERE vu.order_id = po.id AND vu.status = ?)
		ORDER BY po.eta_at_dealer, po.order_no
	`, onOrder, purchaseorder.Confirmed.String(), today.Time(), onOrder).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]OverduePurchaseOrderView, 0, len(rows))
	for _, row := range rows {
		id, err := toUUID(row.ID)
		if err != nil {
			return nil, err
		}

		eta := kernel.DateOf(row.EtaAtDealer)
		views = append(views, OverduePurchaseOrderView{
			ID:           id,
			OrderNo:      row.OrderNo,
			EtaAtDealer:  eta,
			UnitsOnOrder: row.UnitsOnOrder,
			DaysOverdue:  int(today.Time().Sub(eta.Time()).Hours() / 24),
		})
	}

	return views, nil
}
