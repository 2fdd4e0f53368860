package customerorder

import (
	"fmt"

	"dealership/internal/core/domain/model/statusguard"
	"dealership/internal/pkg/errs"
)

type Status string

const (
	Pending   Status = "PENDING"
	Completed Status = "COMPLETED"
	Cancelled Status = "CANCELLED"
)

func Statuses() []Status {
	return []Status{Pending, Completed, Cancelled}
}

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
	if !statusguard.IsKnown(statusguard.CustomerOrder, string(s)) {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a customer order status", string(s)))
	}
	return nil
}
