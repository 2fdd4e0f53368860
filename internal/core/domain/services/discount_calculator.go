package services

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/voucher"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Clock returns the evaluation time. Its location decides which calendar day
// "today" is for voucher windows.
type Clock func() time.Time

// Reason explains a quote's outcome. It is informational: callers only need
// Discount and PriceAfter.
type Reason string

const (
	ReasonApplied         Reason = "APPLIED"
	ReasonNoVoucher       Reason = "NO_VOUCHER"
	ReasonNoPrice         Reason = "NO_PRICE"
	ReasonNotYetValid     Reason = "NOT_YET_VALID"
	ReasonExpired         Reason = "EXPIRED"
	ReasonBelowMinPrice   Reason = "BELOW_MIN_PRICE"
	ReasonUnsupportedType Reason = "UNSUPPORTED_TYPE"
	ReasonZeroDiscount    Reason = "ZERO_DISCOUNT"
)

// Quote is the result of pricing a voucher against a price.
type Quote struct {
	Price      kernel.Money
	Discount   kernel.Money
	PriceAfter kernel.Money
	Reason     Reason
}

func (q Quote) Eligible() bool {
	return q.Reason == ReasonApplied
}

// ComputeDiscount returns the discount v grants on price when evaluated at now.
//
// The rules, in order:
//   - no voucher, or price <= 0: 0
//   - today (calendar day of now) before usable_from or after usable_to: 0
//   - price below min_price: 0, there is no partial discount
//   - FLAT: amount; PERCENT: price * percent / 100; PACKAGE: 0
//   - capped at max_discount, rounded down to 1,000, never negative
//
// The result is not clamped to price; use PriceAfter for that. The function
// never fails: malformed voucher data degrades to a zero discount.
func ComputeDiscount(v *voucher.Voucher, price kernel.Money, now time.Time) kernel.Money {
	return Evaluate(v, price, now).Discount
}

// PriceAfter is price minus discount, clamped at zero.
func PriceAfter(price, discount kernel.Money) kernel.Money {
	return price.Sub(discount)
}

// Evaluate is ComputeDiscount with the reason attached.
func Evaluate(v *voucher.Voucher, price kernel.Money, now time.Time) Quote {
	quote := func(discount kernel.Money, reason Reason) Quote {
		return Quote{
			Price:      price,
			Discount:   discount,
			PriceAfter: PriceAfter(price, discount),
			Reason:     reason,
		}
	}

	if v == nil || v.Validate() != nil {
		return quote(0, ReasonNoVoucher)
	}
	if !price.IsPositive() {
		return quote(0, ReasonNoPrice)
	}

	today := kernel.DateOf(now)
	if from := v.UsableFrom(); from != nil && from.After(today) {
		return quote(0, ReasonNotYetValid)
	}
	if to := v.UsableTo(); to != nil && to.Before(today) {
		return quote(0, ReasonExpired)
	}

	if minPrice := v.MinPrice(); minPrice != nil && price < *minPrice {
		return quote(0, ReasonBelowMinPrice)
	}

	var discount kernel.Money
	switch v.Type() {
	case voucher.Flat:
		if amount := v.Amount(); amount != nil {
			discount = *amount
		}
	case voucher.Percent:
		if percent := v.Percent(); percent != nil {
			raw := decimal.NewFromInt(price.Int64()).Mul(*percent).Div(hundred)
			discount = kernel.Money(raw.Floor().IntPart())
		}
	default:
		return quote(0, ReasonUnsupportedType)
	}

	if maxDiscount := v.MaxDiscount(); maxDiscount != nil {
		discount = discount.Min(*maxDiscount)
	}
	discount = discount.FloorTo(kernel.DiscountStep)

	if discount == 0 {
		return quote(0, ReasonZeroDiscount)
	}
	return quote(discount, ReasonApplied)
}

// DiscountCalculator binds the pricing rules to a clock. Re-quoting the same
// voucher later can give a different answer once its window closes; stored
// orders and deliveries keep the discount computed when they were created.
type DiscountCalculator struct {
	clock Clock
}

func NewDiscountCalculator(clock Clock) DiscountCalculator {
	if clock == nil {
		clock = time.Now
	}
	return DiscountCalculator{clock: clock}
}

func (c DiscountCalculator) Now() time.Time {
	if c.clock == nil {
		return time.Now()
	}
	return c.clock()
}

func (c DiscountCalculator) Today() kernel.Date {
	return kernel.DateOf(c.Now())
}

func (c DiscountCalculator) Discount(v *voucher.Voucher, price kernel.Money) kernel.Money {
	return ComputeDiscount(v, price, c.Now())
}

func (c DiscountCalculator) Quote(v *voucher.Voucher, price kernel.Money) Quote {
	return Evaluate(v, price, c.Now())
}
