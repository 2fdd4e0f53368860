package customerorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/statusguard"
	"dealership/internal/pkg/errs"
)

var ErrCustomerOrderIsNotConstructed = errors.New("CustomerOrder must be created via NewCustomerOrder or RestoreCustomerOrder")

// CustomerOrder records a customer's intent to buy a car model at a price.
// A voucher discount, when applied, is locked in at creation.
type CustomerOrder struct {
	id              kernel.UUID
	carModelID      kernel.UUID
	customerInfo    string
	price           kernel.Money
	voucherID       *kernel.UUID
	discountApplied kernel.Money
	priceAfter      kernel.Money
	deliveryDate    *kernel.Date
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
	version         int

	isConstructed bool
}

// NewCustomerOrder creates a PENDING order with no discount applied.
func NewCustomerOrder(
	id, carModelID kernel.UUID,
	customerInfo string,
	price kernel.Money,
	deliveryDate *kernel.Date,
	now time.Time,
) (*CustomerOrder, error) {
	o := &CustomerOrder{
		deliveryDate:  deliveryDate,
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCarModelID(carModelID),
		o.setCustomerInfo(customerInfo),
		o.setPrice(price),
	); err != nil {
		return nil, err
	}
	o.priceAfter = price

	return o, nil
}

func RestoreCustomerOrder(
	id, carModelID kernel.UUID,
	customerInfo string,
	price kernel.Money,
	voucherID *kernel.UUID,
	discountApplied, priceAfter kernel.Money,
	deliveryDate *kernel.Date,
	status Status,
	createdAt, updatedAt time.Time,
	version int,
) (*CustomerOrder, error) {
	o := &CustomerOrder{
		voucherID:       voucherID,
		discountApplied: discountApplied,
		priceAfter:      priceAfter,
		deliveryDate:    deliveryDate,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		version:         version,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCarModelID(carModelID),
		o.setCustomerInfo(customerInfo),
		o.setPrice(price),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

func (o *CustomerOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrCustomerOrderIsNotConstructed
	}
	return nil
}

func (o *CustomerOrder) ID() kernel.UUID {
	return o.id
}

func (o *CustomerOrder) CarModelID() kernel.UUID {
	return o.carModelID
}

func (o *CustomerOrder) CustomerInfo() string {
	return o.customerInfo
}

func (o *CustomerOrder) Price() kernel.Money {
	return o.price
}

func (o *CustomerOrder) VoucherID() *kernel.UUID {
	return o.voucherID
}

func (o *CustomerOrder) DiscountApplied() kernel.Money {
	return o.discountApplied
}

func (o *CustomerOrder) PriceAfter() kernel.Money {
	return o.priceAfter
}

func (o *CustomerOrder) DeliveryDate() *kernel.Date {
	return o.deliveryDate
}

func (o *CustomerOrder) Status() Status {
	return o.status
}

func (o *CustomerOrder) CreatedAt() time.Time {
	return o.createdAt
}

func (o *CustomerOrder) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *CustomerOrder) Version() int {
	return o.version
}

// ApplyDiscount records the voucher and the discount computed for the price.
// The price after discount never drops below zero.
func (o *CustomerOrder) ApplyDiscount(voucherID kernel.UUID, discount kernel.Money) error {
	if o.status != Pending {
		return errs.NewPreconditionFailedError(
			statusguard.CustomerOrder.String(), fmt.Sprintf("discount cannot be applied at status %s", o.status))
	}
	if err := voucherID.Validate(); err != nil {
		return err
	}
	if discount.IsNegative() {
		return errs.NewValueIsOutOfRangeError("discount", discount, 0, o.price)
	}
	o.voucherID = &voucherID
	o.discountApplied = discount
	o.priceAfter = o.price.Sub(discount)
	return nil
}

// Complete is called when the delivery ticket for the order is handed over.
func (o *CustomerOrder) Complete(now time.Time) error {
	return o.transition(Completed, now)
}

func (o *CustomerOrder) Cancel(now time.Time) error {
	return o.transition(Cancelled, now)
}

func (o *CustomerOrder) transition(to Status, now time.Time) error {
	if err := statusguard.AssertTransition(statusguard.CustomerOrder, o.status.String(), to.String()); err != nil {
		return err
	}
	o.status = to
	o.updatedAt = now
	return nil
}

func (o *CustomerOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *CustomerOrder) setCarModelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.carModelID = id
	return nil
}

func (o *CustomerOrder) setCustomerInfo(info string) error {
	info = strings.TrimSpace(info)
	if info == "" {
		return errs.NewValueIsRequiredError("customer_info")
	}
	o.customerInfo = info
	return nil
}

func (o *CustomerOrder) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	o.price = price
	return nil
}
