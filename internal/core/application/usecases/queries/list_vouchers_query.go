package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/voucher"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListVouchersQueryIsNotConstructed = errors.New(
	"ListVouchersQuery must be created via NewListVouchersQuery constructor",
)

// VoucherFilter narrows the voucher list. Zero values do not filter.
//
// Text matches code or title, ignoring case. The min price range is applied to
// the voucher's minimum price, a missing minimum counting as 0. The validity
// range keeps vouchers whose window intersects [ValidFrom, ValidTo]; an open
// bound on either side never excludes.
type VoucherFilter struct {
	IncludeInactive bool
	Type            *voucher.Type
	Stackable       *bool
	Text            string
	MinPriceFrom    *kernel.Money
	MinPriceTo      *kernel.Money
	ValidFrom       *kernel.Date
	ValidTo         *kernel.Date
}

type ListVouchersQuery struct {
	filter VoucherFilter

	guard guard.ConstructorGuard
}

func NewListVouchersQuery(filter VoucherFilter) (ListVouchersQuery, error) {
	var err error
	if filter.Type != nil {
		err = errors.Join(err, filter.Type.Validate())
	}
	if filter.MinPriceFrom != nil && filter.MinPriceTo != nil && *filter.MinPriceFrom > *filter.MinPriceTo {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("minPriceFrom",
			fmt.Errorf("%d is greater than minPriceTo %d", *filter.MinPriceFrom, *filter.MinPriceTo)))
	}
	if filter.ValidFrom != nil && filter.ValidTo != nil && filter.ValidFrom.After(*filter.ValidTo) {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("validFrom",
			fmt.Errorf("%s is after validTo %s", filter.ValidFrom, filter.ValidTo)))
	}
	if err != nil {
		return ListVouchersQuery{}, err
	}

	filter.Text = strings.TrimSpace(filter.Text)
	return ListVouchersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListVouchersQuery) Validate() error {
	return q.guard.Validate(ErrListVouchersQueryIsNotConstructed)
}

func (q ListVouchersQuery) Filter() VoucherFilter {
	return q.filter
}

type VoucherView struct {
	ID          kernel.UUID
	Code        string
	Type        voucher.Type
	Title       string
	MinPrice    *kernel.Money
	MaxDiscount *kernel.Money
	Amount      *kernel.Money
	Percent     *decimal.Decimal
	UsableFrom  *kernel.Date
	UsableTo    *kernel.Date
	Stackable   bool
	Active      bool
	CreatedAt   time.Time
}
