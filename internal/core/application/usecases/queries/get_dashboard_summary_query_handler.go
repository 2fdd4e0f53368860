package queries

import (
	"context"
	"fmt"

	"dealership/internal/core/domain/model/customerorder"
	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/purchaseorder"
	"dealership/internal/core/domain/model/vehicle"

	"gorm.io/gorm"
)

type GetDashboardSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardSummaryQueryHandler(db *gorm.DB) GetDashboardSummaryQueryHandler {
	return GetDashboardSummaryQueryHandler{db: db}
}

type statusCountRow struct {
	Status string
	Total  int64
}

func (h GetDashboardSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardSummaryQuery,
) (DashboardSummary, error) {
	if err := query.Validate(); err != nil {
		return DashboardSummary{}, err
	}

	db := h.db.WithContext(ctx)

	units, err := countByStatus(db, "vehicle_units", vehicle.Statuses())
	if err != nil {
		return DashboardSummary{}, err
	}
	orders, err := countByStatus(db, "manufacturer_orders", purchaseorder.Statuses())
	if err != nil {
		return DashboardSummary{}, err
	}
	deliveries, err := countByStatus(db, "deliveries", delivery.Statuses())
	if err != nil {
		return DashboardSummary{}, err
	}
	customerOrders, err := countByStatus(db, "customer_orders", customerorder.Statuses())
	if err != nil {
		return DashboardSummary{}, err
	}

	var active int64
	err = db.Raw(`SELECT COUNT(*) FROM vouchers WHERE active = ?`, true).Scan(&active).Error
	if err != nil {
		return DashboardSummary{}, err
	}

	return DashboardSummary{
		VehicleUnits:   units,
		PurchaseOrders: orders,
		Deliveries:     deliveries,
		CustomerOrders: customerOrders,
		ActiveVouchers: active,
	}, nil
}

// countByStatus groups a table by its status column. Rows with a status outside
// known are dropped.
func countByStatus[S ~string](db *gorm.DB, table string, known []S) (map[S]int64, error) {
	var rows []statusCountRow
	err := db.Raw(fmt.Sprintf(`SELECT status, COUNT(*) AS total FROM %s GROUP BY status`, table)).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count %s by status: %w", table, err)
	}

	counts := make(map[S]int64, len(known))
	for _, s := range known {
		counts[s] = 0
	}
	for _, row := range rows {
		if _, ok := counts[S(row.Status)]; ok {
			counts[S(row.Status)] = row.Total
		}
	}
	return counts, nil
}
