package voucher

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrVoucherIsNotConstructed = errors.New("Voucher must be created via NewVoucher or RestoreVoucher")

	hundred = decimal.NewFromInt(100)
)

// Terms are the commercial fields of a voucher, shared by NewVoucher and
// RestoreVoucher.
type Terms struct {
	Code        string
	Type        Type
	Title       string
	MinPrice    *kernel.Money
	MaxDiscount *kernel.Money
	Amount      *kernel.Money
	Percent     *decimal.Decimal
	UsableFrom  *kernel.Date
	UsableTo    *kernel.Date
	Stackable   bool
}

// Voucher is a discount code. Only one of amount and percent is meaningful,
// depending on the type. Stackable is informational and not enforced by
// pricing. Inactive vouchers are soft-deleted: they stay listed for managers
// but can no longer be applied to a sale.
type Voucher struct {
	id          kernel.UUID
	code        string
	voucherType Type
	title       string
	minPrice    *kernel.Money
	maxDiscount *kernel.Money
	amount      *kernel.Money
	percent     *decimal.Decimal
	usableFrom  *kernel.Date
	usableTo    *kernel.Date
	stackable   bool
	active      bool
	createdAt   time.Time
	version     int

	isConstructed bool
}

// NewVoucher creates an active voucher and enforces the creation rules:
//   - code and title are required (surrounding whitespace is trimmed)
//   - FLAT needs an amount greater than 0
//   - PERCENT needs a percent in (0, 100]
//   - min price and max discount cannot be negative
//   - the validity window cannot end before it starts
func NewVoucher(id kernel.UUID, terms Terms, createdAt time.Time) (*Voucher, error) {
	v := &Voucher{
		active:        true,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setCode(terms.Code),
		v.setTitle(terms.Title),
		v.setType(terms.Type),
		v.setLimits(terms.MinPrice, terms.MaxDiscount),
		v.setWindow(terms.UsableFrom, terms.UsableTo),
	); err != nil {
		return nil, err
	}

	if err := v.setBenefit(terms.Amount, terms.Percent); err != nil {
		return nil, err
	}
	v.stackable = terms.Stackable

	return v, nil
}

// RestoreVoucher rebuilds a voucher from storage. Only structural checks run:
// rows written by older rule sets stay readable.
func RestoreVoucher(
	id kernel.UUID,
	terms Terms,
	active bool,
	createdAt time.Time,
	version int,
) (*Voucher, error) {
	v := &Voucher{
		minPrice:      terms.MinPrice,
		maxDiscount:   terms.MaxDiscount,
		amount:        terms.Amount,
		percent:       terms.Percent,
		usableFrom:    terms.UsableFrom,
		usableTo:      terms.UsableTo,
		stackable:     terms.Stackable,
		active:        active,
		createdAt:     createdAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setCode(terms.Code),
		v.setType(terms.Type),
	); err != nil {
		return nil, err
	}
	v.title = terms.Title

	return v, nil
}

func (v *Voucher) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVoucherIsNotConstructed
	}
	return nil
}

func (v *Voucher) ID() kernel.UUID {
	return v.id
}

func (v *Voucher) Code() string {
	return v.code
}

func (v *Voucher) Type() Type {
	return v.voucherType
}

func (v *Voucher) Title() string {
	return v.title
}

func (v *Voucher) MinPrice() *kernel.Money {
	return v.minPrice
}

func (v *Voucher) MaxDiscount() *kernel.Money {
	return v.maxDiscount
}

func (v *Voucher) Amount() *kernel.Money {
	return v.amount
}

func (v *Voucher) Percent() *decimal.Decimal {
	return v.percent
}

func (v *Voucher) UsableFrom() *kernel.Date {
	return v.usableFrom
}

func (v *Voucher) UsableTo() *kernel.Date {
	return v.usableTo
}

func (v *Voucher) IsStackable() bool {
	return v.stackable
}

func (v *Voucher) IsActive() bool {
	return v.active
}

func (v *Voucher) CreatedAt() time.Time {
	return v.createdAt
}

func (v *Voucher) Version() int {
	return v.version
}

func (v *Voucher) CodeKey() string {
	return CodeKey(v.code)
}

func (v *Voucher) MatchesCode(code string) bool {
	return CodeKey(code) == v.CodeKey()
}

// IsUsableOn reports whether day falls inside the inclusive validity window.
func (v *Voucher) IsUsableOn(day kernel.Date) bool {
	if v.usableFrom != nil && v.usableFrom.After(day) {
		return false
	}
	if v.usableTo != nil && v.usableTo.Before(day) {
		return false
	}
	return true
}

// Activate and Deactivate are idempotent.
func (v *Voucher) Activate() {
	v.active = true
}

func (v *Voucher) Deactivate() {
	v.active = false
}

// CodeKey is the case-insensitive identity of a voucher code.
func CodeKey(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (v *Voucher) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Voucher) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	v.code = code
	return nil
}

func (v *Voucher) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	v.title = title
	return nil
}

func (v *Voucher) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	v.voucherType = t
	return nil
}

func (v *Voucher) setLimits(minPrice, maxDiscount *kernel.Money) error {
	var err error
	if minPrice != nil && minPrice.IsNegative() {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"min_price", fmt.Errorf("%d is negative", minPrice.Int64())))
	}
	if maxDiscount != nil && maxDiscount.IsNegative() {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"max_discount", fmt.Errorf("%d is negative", maxDiscount.Int64())))
	}
	if err != nil {
		return err
	}
	v.minPrice = minPrice
	v.maxDiscount = maxDiscount
	return nil
}

func (v *Voucher) setWindow(from, to *kernel.Date) error {
	if from != nil && to != nil && to.Before(*from) {
		return errs.NewValueIsInvalidErrorWithCause(
			"usable_to", fmt.Errorf("%s is before usable_from %s", to, from))
	}
	v.usableFrom = from
	v.usableTo = to
	return nil
}

// setBenefit runs after setType so the type is known.
func (v *Voucher) setBenefit(amount *kernel.Money, percent *decimal.Decimal) error {
	switch v.voucherType {
	case Flat:
		if amount == nil || !amount.IsPositive() {
			return errs.NewValueIsInvalidErrorWithCause("amount", errors.New("FLAT voucher needs an amount greater than 0"))
		}
		v.amount = amount
	case Percent:
		if percent == nil || !percent.IsPositive() {
			return errs.NewValueIsInvalidErrorWithCause("percent", errors.New("PERCENT voucher needs a percent greater than 0"))
		}
		if percent.GreaterThan(hundred) {
			return errs.NewValueIsOutOfRangeError("percent", percent.String(), 0, 100)
		}
		v.percent = percent
	case Package:
		v.amount = amount
		v.percent = percent
	}
	return nil
}
