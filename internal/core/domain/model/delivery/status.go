package delivery

import (
	"fmt"

	"dealership/internal/core/domain/model/statusguard"
	"dealership/internal/pkg/errs"
)

// Status of a delivery ticket. Only the canonical spellings are stored.
type Status string

const (
	Pending   Status = "PENDING"
	Delivered Status = "DELIVERED"
	Cancelled Status = "CANCELLED"
)

func Statuses() []Status {
	return []Status{Pending, Delivered, Cancelled}
}

// ParseStatus accepts the canonical literals and the console spellings
// RESERVED (PENDING) and COMPLETED (DELIVERED), and returns the canonical one.
func ParseStatus(value string) (Status, error) {
	if !statusguard.IsKnown(statusguard.Delivery, value) {
		return "", errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a delivery status", value))
	}
	return Status(statusguard.Canonical(statusguard.Delivery, value)), nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Validate() error {
	_, err := ParseStatus(string(s))
	return err
}
