package services

import (
	"fmt"
	"time"

	"dealership/internal/core/domain/model/customerorder"
	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/statusguard"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/core/domain/model/voucher"
	"dealership/internal/pkg/errs"
)

// TicketRequest carries what is needed to issue a delivery ticket besides the
// vehicle itself. Every field except Deposit is optional.
type TicketRequest struct {
	CustomerName  string
	CustomerOrder *customerorder.CustomerOrder
	Voucher       *voucher.Voucher
	Price         *kernel.Money
	Deposit       kernel.Money
}

// Handover issues and closes delivery tickets. It keeps the vehicle unit, the
// customer order and the ticket consistent with each other; persisting them is
// left to the caller's unit of work.
type Handover struct {
	pricing DiscountCalculator
}

func NewHandover(pricing DiscountCalculator) *Handover {
	return &Handover{pricing: pricing}
}

// Now is the evaluation time used for pricing and timestamps.
func (h *Handover) Now() time.Time {
	return h.pricing.Now()
}

// EnsureVoucherUsable rejects vouchers that were switched off. Window and
// minimum price are not checked here: they only zero the discount.
func EnsureVoucherUsable(v *voucher.Voucher) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if !v.IsActive() {
		return errs.NewPreconditionFailedError("Voucher", fmt.Sprintf("%s is inactive", v.Code()))
	}
	return nil
}

// PriceOrder applies v to a pending customer order using the calculator clock.
func (h *Handover) PriceOrder(o *customerorder.CustomerOrder, v *voucher.Voucher) error {
	if err := EnsureVoucherUsable(v); err != nil {
		return err
	}
	return o.ApplyDiscount(v.ID(), h.pricing.Discount(v, o.Price()))
}

// Issue opens a PENDING ticket with the given id for unit.
//
// Preconditions:
//   - unit is AT_DEALER
//   - unit has no other pending ticket (hasPending)
//   - the linked customer order, if any, is PENDING and is for the unit's model
//   - the voucher, if any, is active
//
// Without an explicit price the customer order's price is used. Without an
// explicit voucher the customer order's locked discount is carried over.
func (h *Handover) Issue(
	id kernel.UUID,
	unit *vehicle.VehicleUnit,
	hasPending bool,
	req TicketRequest,
) (*delivery.Delivery, error) {
	if err := unit.Validate(); err != nil {
		return nil, err
	}
	if err := unit.EnsureDeliverable(); err != nil {
		return nil, err
	}
	if hasPending {
		return nil, errs.NewPreconditionFailedError(
			statusguard.VehicleUnit.String(), fmt.Sprintf("%s already has a pending delivery", unit.ID()))
	}

	var orderID *kernel.UUID
	name := req.CustomerName
	price := req.Price
	var voucherID *kernel.UUID
	var discount kernel.Money

	if o := req.CustomerOrder; o != nil {
		if err := ensureOrderMatches(o, unit); err != nil {
			return nil, err
		}
		id := o.ID()
		orderID = &id
		if name == "" {
			name = o.CustomerInfo()
		}
		if price == nil {
			p := o.Price()
			price = &p
		}
		if req.Voucher == nil && o.VoucherID() != nil {
			voucherID = o.VoucherID()
			discount = o.DiscountApplied()
		}
	}

	if v := req.Voucher; v != nil {
		if err := EnsureVoucherUsable(v); err != nil {
			return nil, err
		}
		id := v.ID()
		voucherID = &id
		discount = 0
		if price != nil {
			discount = h.pricing.Discount(v, *price)
		}
	}

	d, err := delivery.NewDelivery(id, unit.ID(), orderID, name, req.Deposit, h.pricing.Now())
	if err != nil {
		return nil, err
	}
	if err := d.ApplyPricing(voucherID, price, discount); err != nil {
		return nil, err
	}
	return d, nil
}

// ChangeStatus moves a ticket to status to. Handing the ticket over (DELIVERED
// or COMPLETED) also marks the unit DELIVERED and completes the linked customer
// order. All checks run before anything is mutated.
func (h *Handover) ChangeStatus(
	d *delivery.Delivery,
	to delivery.Status,
	unit *vehicle.VehicleUnit,
	order *customerorder.CustomerOrder,
) error {
	if err := d.Validate(); err != nil {
		return err
	}
	canonical, err := delivery.ParseStatus(to.String())
	if err != nil {
		return err
	}
	if err := statusguard.AssertTransition(statusguard.Delivery, d.Status().String(), to.String()); err != nil {
		return err
	}

	now := h.pricing.Now()
	if canonical != delivery.Delivered {
		return d.ChangeStatus(canonical, now)
	}

	if err := unit.Validate(); err != nil {
		return err
	}
	if !unit.ID().IsEqual(d.VehicleID()) {
		return errs.NewValueIsInvalidErrorWithCause("vehicle", fmt.Errorf("%s is not the ticket's vehicle", unit.ID()))
	}
	if err := statusguard.AssertTransition(
		statusguard.VehicleUnit, unit.Status().String(), vehicle.Delivered.String()); err != nil {
		return err
	}
	if order != nil {
		if err := statusguard.AssertTransition(
			statusguard.CustomerOrder, order.Status().String(), customerorder.Completed.String()); err != nil {
			return err
		}
	}

	if err := d.ChangeStatus(canonical, now); err != nil {
		return err
	}
	if err := unit.MarkDelivered(now); err != nil {
		return err
	}
	if order != nil {
		return order.Complete(now)
	}
	return nil
}

func ensureOrderMatches(o *customerorder.CustomerOrder, unit *vehicle.VehicleUnit) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status() != customerorder.Pending {
		return errs.NewPreconditionFailedError(
			statusguard.CustomerOrder.String(), fmt.Sprintf("status %s is not PENDING", o.Status()))
	}
	if !o.CarModelID().IsEqual(unit.CarModelID()) {
		return errs.NewPreconditionFailedError(
			statusguard.CustomerOrder.String(), "car model differs from the vehicle's")
	}
	return nil
}
