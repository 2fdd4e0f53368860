package queries

import (
	"errors"
	"strings"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/services"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

var ErrQuoteVoucherQueryIsNotConstructed = errors.New(
	"QuoteVoucherQuery must be created via NewQuoteVoucherQuery constructor",
)

// QuoteVoucherQuery previews the discount a voucher gives on a price without
// storing anything.
type QuoteVoucherQuery struct {
	code  string
	price kernel.Money

	guard guard.ConstructorGuard
}

func NewQuoteVoucherQuery(code string, price kernel.Money) (QuoteVoucherQuery, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return QuoteVoucherQuery{}, errs.NewValueIsRequiredError("code")
	}
	if price.IsNegative() {
		return QuoteVoucherQuery{}, errs.NewValueIsOutOfRangeError("price", price, 0, nil)
	}
	return QuoteVoucherQuery{code: code, price: price, guard: guard.NewConstructorGuard()}, nil
}

func (q QuoteVoucherQuery) Validate() error {
	return q.guard.Validate(ErrQuoteVoucherQueryIsNotConstructed)
}

func (q QuoteVoucherQuery) Code() string {
	return q.code
}

func (q QuoteVoucherQuery) Price() kernel.Money {
	return q.price
}

type VoucherQuoteView struct {
	VoucherID  kernel.UUID
	Code       string
	Price      kernel.Money
	Discount   kernel.Money
	PriceAfter kernel.Money
	Eligible   bool
	Reason     services.Reason
}
