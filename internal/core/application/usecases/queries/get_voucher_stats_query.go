package queries

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/guard"
)

var ErrGetVoucherStatsQueryIsNotConstructed = errors.New(
	"GetVoucherStatsQuery must be created via NewGetVoucherStatsQuery constructor",
)

// GetVoucherStatsQuery counts vouchers for the console header. ValidNow counts
// active vouchers whose window contains today.
type GetVoucherStatsQuery struct {
	today kernel.Date

	guard guard.ConstructorGuard
}

func NewGetVoucherStatsQuery(today kernel.Date) GetVoucherStatsQuery {
	return GetVoucherStatsQuery{today: today, guard: guard.NewConstructorGuard()}
}

func (q GetVoucherStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetVoucherStatsQueryIsNotConstructed)
}

func (q GetVoucherStatsQuery) Today() kernel.Date {
	return q.today
}

type VoucherStats struct {
	Total    int64
	Active   int64
	Inactive int64
	ValidNow int64
}
