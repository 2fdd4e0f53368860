package purchaseorder

import (
	"fmt"

	"dealership/internal/core/domain/model/statusguard"
	"dealership/internal/pkg/errs"
)

// Status is the lifecycle state of a purchase order.
//
//	DRAFT ──> SUBMITTED ──> CONFIRMED
//	  │           │
//	  └───────────┴──────> CANCELLED
//
// CONFIRMED and CANCELLED are final.
type Status string

const (
	// Draft is the initial status; the order is still being prepared.
	Draft Status = "DRAFT"
	// Submitted means the order was sent to the manufacturer.
	Submitted Status = "SUBMITTED"
	// Confirmed means the manufacturer accepted the order. Vehicle units are
	// spawned for the planned model on this transition.
	Confirmed Status = "CONFIRMED"
	// Cancelled orders were withdrawn before confirmation.
	Cancelled Status = "CANCELLED"
)

// Statuses lists every status in lifecycle order.
func Statuses() []Status {
	return []Status{Draft, Submitted, Confirmed, Cancelled}
}

// ParseStatus accepts the exact upper-case literals and rejects anything else,
// including other spellings of a known status.
func ParseStatus(value string) (Status, error) {
	s := Status(value)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Validate() error {
	if !statusguard.IsKnown(statusguard.PurchaseOrder, string(s)) {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a purchase order status", string(s)))
	}
	return nil
}

func (s Status) IsFinal() bool {
	return statusguard.IsTerminal(statusguard.PurchaseOrder, string(s))
}

// TransitionTo returns the new status or an *errs.InvalidTransitionError.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := statusguard.AssertTransition(statusguard.PurchaseOrder, string(s), string(to)); err != nil {
		return s, err
	}
	return to, nil
}
