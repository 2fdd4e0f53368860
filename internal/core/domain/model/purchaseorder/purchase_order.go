package purchaseorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

const (
	maxOrderNoLength = 50
	maxPlanQuantity  = 500
)

var ErrPurchaseOrderIsNotConstructed = errors.New("PurchaseOrder must be created via NewPurchaseOrder or RestorePurchaseOrder")

// Plan is the optional "quantity x model" line of a purchase order.
type Plan struct {
	carModelID kernel.UUID
	quantity   int
}

func NewPlan(carModelID kernel.UUID, quantity int) (Plan, error) {
	if err := carModelID.Validate(); err != nil {
		return Plan{}, err
	}
	if quantity < 1 || quantity > maxPlanQuantity {
		return Plan{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxPlanQuantity)
	}
	return Plan{carModelID: carModelID, quantity: quantity}, nil
}

func (p Plan) CarModelID() kernel.UUID {
	return p.carModelID
}

func (p Plan) Quantity() int {
	return p.quantity
}

// PurchaseOrder (PO) is an order placed with the manufacturer.
//
// Invariants:
//   - order number is required, trimmed and unique (uniqueness is checked by the repository)
//   - status changes follow the purchase order state machine
//   - the plan, when present, has a positive quantity
type PurchaseOrder struct {
	id          kernel.UUID
	orderNo     string
	status      Status
	etaAtDealer *kernel.Date
	note        string
	plan        *Plan
	createdAt   time.Time
	updatedAt   time.Time
	version     int

	isConstructed bool
}

// NewPurchaseOrder creates a DRAFT purchase order.
//
// Parameters:
//   - orderNo: business number such as "PO-2025-001"
//   - eta: expected arrival at the dealer, optional
//   - plan: model and quantity to spawn on confirmation, optional
func NewPurchaseOrder(
	id kernel.UUID,
	orderNo string,
	eta *kernel.Date,
	note string,
	plan *Plan,
	now time.Time,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		status:        Draft,
		etaAtDealer:   eta,
		note:          strings.TrimSpace(note),
		plan:          plan,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		po.setID(id),
		po.setOrderNo(orderNo),
	); err != nil {
		return nil, err
	}

	return po, nil
}

// RestorePurchaseOrder rebuilds a purchase order loaded from storage.
func RestorePurchaseOrder(
	id kernel.UUID,
	orderNo string,
	status Status,
	eta *kernel.Date,
	note string,
	plan *Plan,
	createdAt, updatedAt time.Time,
	version int,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		etaAtDealer:   eta,
		note:          note,
		plan:          plan,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		po.setID(id),
		po.setOrderNo(orderNo),
		po.setStatus(status),
	); err != nil {
		return nil, err
	}

	return po, nil
}

func (p *PurchaseOrder) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPurchaseOrderIsNotConstructed
	}
	return nil
}

func (p *PurchaseOrder) ID() kernel.UUID {
	return p.id
}

func (p *PurchaseOrder) OrderNo() string {
	return p.orderNo
}

func (p *PurchaseOrder) Status() Status {
	return p.status
}

func (p *PurchaseOrder) EtaAtDealer() *kernel.Date {
	return p.etaAtDealer
}

func (p *PurchaseOrder) Note() string {
	return p.note
}

// Plan returns nil when the order carries no model/quantity line.
func (p *PurchaseOrder) Plan() *Plan {
	return p.plan
}

func (p *PurchaseOrder) CreatedAt() time.Time {
	return p.createdAt
}

func (p *PurchaseOrder) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *PurchaseOrder) Version() int {
	return p.version
}

// ChangeStatus moves the order along its state machine.
//
// Returns an *errs.InvalidTransitionError (errs.ErrInvalidTransition) when the
// edge is not allowed, e.g. DRAFT -> CONFIRMED.
func (p *PurchaseOrder) ChangeStatus(to Status, now time.Time) error {
	if err := to.Validate(); err != nil {
		return err
	}

	next, err := p.status.TransitionTo(to)
	if err != nil {
		return err
	}

	p.status = next
	p.updatedAt = now
	return nil
}

// IsOverdue reports whether a confirmed order should have reached the dealer
// before today.
func (p *PurchaseOrder) IsOverdue(today kernel.Date) bool {
	return p.status == Confirmed && p.etaAtDealer != nil && p.etaAtDealer.Before(today)
}

func (p *PurchaseOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *PurchaseOrder) setOrderNo(orderNo string) error {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return errs.NewValueIsRequiredError("order_no")
	}
	if len(orderNo) > maxOrderNoLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"order_no", fmt.Errorf("longer than %d characters", maxOrderNoLength))
	}
	p.orderNo = orderNo
	return nil
}

func (p *PurchaseOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
