package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetVoucherStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetVoucherStatsQueryHandler(db *gorm.DB) GetVoucherStatsQueryHandler {
	return GetVoucherStatsQueryHandler{db: db}
}

func (h GetVoucherStatsQueryHandler) Handle(ctx context.Context, query GetVoucherStatsQuery) (VoucherStats, error) {
	if err := query.Validate(); err != nil {
		return VoucherStats{}, err
	}

	today := query.Today().Time()

	var stats VoucherStats
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN active = ? THEN 1 ELSE 0 END), 0) AS active,
			COALESCE(SUM(CASE
				WHEN active = ?
					AND (usable_from IS NULL OR usable_from <= ?)
					AND (usable_to IS NULL OR usable_to >= ?)
				THEN 1 ELSE 0 END), 0) AS valid_now
		FROM vouchers
	`, true, true, today, today).Scan(&stats).Error
	if err != nil {
		return VoucherStats{}, err
	}

	stats.Inactive = stats.Total - stats.Active
	return stats, nil
}
