package vehicle

import (
	"fmt"

	"dealership/internal/core/domain/model/statusguard"
	"dealership/internal/pkg/errs"
)

// Status of a vehicle unit: ON_ORDER -> AT_DEALER -> DELIVERED.
type Status string

const (
	OnOrder   Status = "ON_ORDER"
	AtDealer  Status = "AT_DEALER"
	Delivered Status = "DELIVERED"
)

func Statuses() []Status {
	return []Status{OnOrder, AtDealer, Delivered}
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
	if !statusguard.IsKnown(statusguard.VehicleUnit, string(s)) {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a vehicle unit status", string(s)))
	}
	return nil
}
