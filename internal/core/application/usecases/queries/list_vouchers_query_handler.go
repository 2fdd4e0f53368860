package queries

import (
	"context"
	"strings"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/voucher"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListVouchersQueryHandler struct {
	db *gorm.DB
}

func NewListVouchersQueryHandler(db *gorm.DB) ListVouchersQueryHandler {
	return ListVouchersQueryHandler{db: db}
}

type voucherRow struct {
	ID          uuid.UUID
	Code        string
	Type        string
	Title       string
	MinPrice    *int64
	MaxDiscount *int64
	Amount      *int64
	Percent     decimal.NullDecimal
	UsableFrom  *time.Time
	UsableTo    *time.Time
	Stackable   bool
	Active      bool
	CreatedAt   time.Time
}

// Handle lists vouchers newest first.
func (h ListVouchersQueryHandler) Handle(ctx context.Context, query ListVouchersQuery) ([]VoucherView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	f := query.Filter()
	var where clause
	if !f.IncludeInactive {
		where.add("active = ?", true)
	}
	if f.Type != nil {
		where.add("type = ?", f.Type.String())
	}
	if f.Stackable != nil {
		where.add("stackable = ?", *f.Stackable)
	}
	if f.Text != "" {
		pattern := "%" + strings.ToLower(f.Text) + "%"
		where.add("(LOWER(code) LIKE ? OR LOWER(title) LIKE ?)", pattern, pattern)
	}
	if f.MinPriceFrom != nil {
		where.add("COALESCE(min_price, 0) >= ?", f.MinPriceFrom.Int64())
	}
	if f.MinPriceTo != nil {
		where.add("COALESCE(min_price, 0) <= ?", f.MinPriceTo.Int64())
	}
	if f.ValidFrom != nil {
		where.add("(usable_to IS NULL OR usable_to >= ?)", f.ValidFrom.Time())
	}
	if f.ValidTo != nil {
		where.add("(usable_from IS NULL OR usable_from <= ?)", f.ValidTo.Time())
	}

	var rows []voucherRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			type,
			title,
			min_price,
			max_discount,
			amount,
			percent,
			usable_from,
			usable_to,
			stackable,
			active,
			created_at
		FROM vouchers
		`+where.String()+`
		ORDER BY created_at DESC, code
	`, where.args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]VoucherView, 0, len(rows))
	for _, row := range rows {
		id, err := toUUID(row.ID)
		if err != nil {
			return nil, err
		}

		var percent *decimal.Decimal
		if row.Percent.Valid {
			p := row.Percent.Decimal
			percent = &p
		}

		views = append(views, VoucherView{
			ID:          id,
			Code:        row.Code,
			Type:        voucher.Type(row.Type),
			Title:       row.Title,
			MinPrice:    kernel.MoneyPtr(row.MinPrice),
			MaxDiscount: kernel.MoneyPtr(row.MaxDiscount),
			Amount:      kernel.MoneyPtr(row.Amount),
			Percent:     percent,
			UsableFrom:  kernel.DatePtr(row.UsableFrom),
			UsableTo:    kernel.DatePtr(row.UsableTo),
			Stackable:   row.Stackable,
			Active:      row.Active,
			CreatedAt:   row.CreatedAt,
		})
	}

	return views, nil
}
