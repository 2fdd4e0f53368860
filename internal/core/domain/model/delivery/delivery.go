package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/statusguard"
	"dealership/internal/pkg/errs"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Pricing is the price locked into a ticket when it is issued.
type Pricing struct {
	VoucherID       *kernel.UUID
	PriceBefore     *kernel.Money
	DiscountApplied kernel.Money
	PriceAfter      *kernel.Money
}

// Delivery is the handover ticket of one vehicle unit to a customer.
//
// Invariants:
//   - the vehicle was AT_DEALER when the ticket was issued (checked by the caller
//     through vehicle.VehicleUnit.EnsureDeliverable)
//   - deposit is not negative
//   - price after discount is never negative
type Delivery struct {
	id              kernel.UUID
	vehicleID       kernel.UUID
	customerOrderID *kernel.UUID
	customerName    string
	pricing         Pricing
	deposit         kernel.Money
	status          Status
	deliveredAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
	version         int

	isConstructed bool
}

func NewDelivery(
	id, vehicleID kernel.UUID,
	customerOrderID *kernel.UUID,
	customerName string,
	deposit kernel.Money,
	now time.Time,
) (*Delivery, error) {
	d := &Delivery{
		customerOrderID: customerOrderID,
		status:          Pending,
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setVehicleID(vehicleID),
		d.setCustomerName(customerName),
		d.setDeposit(deposit),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func RestoreDelivery(
	id, vehicleID kernel.UUID,
	customerOrderID *kernel.UUID,
	customerName string,
	pricing Pricing,
	deposit kernel.Money,
	status Status,
	deliveredAt *time.Time,
	createdAt, updatedAt time.Time,
	version int,
) (*Delivery, error) {
	d := &Delivery{
		customerOrderID: customerOrderID,
		customerName:    customerName,
		pricing:         pricing,
		deposit:         deposit,
		deliveredAt:     deliveredAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		version:         version,
		isConstructed:   true,
	}

	canonical, statusErr := ParseStatus(status.String())
	if err := errors.Join(
		d.setID(id),
		d.setVehicleID(vehicleID),
		statusErr,
	); err != nil {
		return nil, err
	}
	d.status = canonical

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) VehicleID() kernel.UUID {
	return d.vehicleID
}

func (d *Delivery) CustomerOrderID() *kernel.UUID {
	return d.customerOrderID
}

func (d *Delivery) CustomerName() string {
	return d.customerName
}

func (d *Delivery) Pricing() Pricing {
	return d.pricing
}

func (d *Delivery) Deposit() kernel.Money {
	return d.deposit
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

func (d *Delivery) Version() int {
	return d.version
}

func (d *Delivery) IsPending() bool {
	return d.status == Pending
}

// ApplyPricing locks the price into a pending ticket. A nil price clears it.
func (d *Delivery) ApplyPricing(voucherID *kernel.UUID, price *kernel.Money, discount kernel.Money) error {
	if !d.IsPending() {
		return errs.NewPreconditionFailedError(
			statusguard.Delivery.String(), fmt.Sprintf("pricing cannot change at status %s", d.status))
	}
	if price == nil {
		d.pricing = Pricing{}
		return nil
	}
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", *price))
	}
	if discount.IsNegative() {
		return errs.NewValueIsOutOfRangeError("discount", discount, 0, *price)
	}

	after := price.Sub(discount)
	before := *price
	d.pricing = Pricing{
		VoucherID:       voucherID,
		PriceBefore:     &before,
		DiscountApplied: discount,
		PriceAfter:      &after,
	}
	return nil
}

// ChangeStatus applies a status given in either spelling. Moving to DELIVERED
// stamps deliveredAt.
func (d *Delivery) ChangeStatus(to Status, now time.Time) error {
	canonical, err := ParseStatus(to.String())
	if err != nil {
		return err
	}
	if err := statusguard.AssertTransition(statusguard.Delivery, d.status.String(), to.String()); err != nil {
		return err
	}

	d.status = canonical
	d.updatedAt = now
	if canonical == Delivered {
		d.deliveredAt = &now
	}
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.vehicleID = id
	return nil
}

func (d *Delivery) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	d.customerName = name
	return nil
}

func (d *Delivery) setDeposit(deposit kernel.Money) error {
	if deposit.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("deposit", fmt.Errorf("%d is negative", deposit))
	}
	d.deposit = deposit
	return nil
}
