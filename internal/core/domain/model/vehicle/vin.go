package vehicle

import (
	"fmt"
	"regexp"
	"strings"

	"dealership/internal/pkg/errs"
)

const vinLength = 17

// I, O and Q are excluded from VINs to avoid confusion with 1 and 0.
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// VIN is a vehicle identification number, stored upper case.
type VIN struct {
	value string
}

func NewVIN(raw string) (VIN, error) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	if v == "" {
		return VIN{}, errs.NewValueIsRequiredError("vin")
	}
	if len(v) != vinLength || !vinPattern.MatchString(v) {
		return VIN{}, errs.NewValueIsInvalidErrorWithCause(
			"vin", fmt.Errorf("%q is not a %d character VIN", raw, vinLength))
	}
	return VIN{value: v}, nil
}

func (v VIN) String() string {
	return v.value
}

func (v VIN) IsEmpty() bool {
	return v.value == ""
}
