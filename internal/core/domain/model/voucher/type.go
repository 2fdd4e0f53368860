package voucher

import (
	"fmt"

	"dealership/internal/pkg/errs"
)

// Type selects how a voucher's discount is computed.
type Type string

const (
	// Flat takes a fixed amount off the price.
	Flat Type = "FLAT"
	// Percent takes a percentage of the price.
	Percent Type = "PERCENT"
	// Package is a bundled deal. It is accepted and stored but has no
	// discount formula, so it prices at zero.
	Package Type = "PACKAGE"
)

var validTypes = []Type{Flat, Percent, Package}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	for _, candidate := range validTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

func (t Type) Validate() error {
	if !t.IsValid() {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a voucher type", string(t)))
	}
	return nil
}

// ParseType accepts the exact upper-case literals only.
func ParseType(value string) (Type, error) {
	t := Type(value)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}
