// Package statusguard decides whether a status change is legal for the
// dealership's stateful entities. It is a pure decision oracle: callers ask
// before mutating and persist the change themselves.
//
// Edges per kind (anything not listed is rejected, including self-loops):
//
//	PurchaseOrder  DRAFT -> SUBMITTED -> CONFIRMED
//	               DRAFT | SUBMITTED -> CANCELLED
//	VehicleUnit    ON_ORDER -> AT_DEALER -> DELIVERED
//	CustomerOrder  PENDING -> COMPLETED | CANCELLED
//	Delivery       PENDING -> DELIVERED | CANCELLED
//
// Delivery also accepts RESERVED for PENDING and COMPLETED for DELIVERED.
package statusguard

import (
	"fmt"

	"dealership/internal/pkg/errs"
)

type Kind string

const (
	PurchaseOrder Kind = "PurchaseOrder"
	VehicleUnit   Kind = "VehicleUnit"
	CustomerOrder Kind = "CustomerOrder"
	Delivery      Kind = "Delivery"
)

func (k Kind) String() string {
	return string(k)
}

type statusSet map[string]struct{}

func set(statuses ...string) statusSet {
	s := make(statusSet, len(statuses))
	for _, st := range statuses {
		s[st] = struct{}{}
	}
	return s
}

// machines maps every known status of a kind to the statuses it may move to.
// Terminal statuses map to an empty set.
var machines = map[Kind]map[string]statusSet{
	PurchaseOrder: {
		"DRAFT":     set("SUBMITTED", "CANCELLED"),
		"SUBMITTED": set("CONFIRMED", "CANCELLED"),
		"CONFIRMED": set(),
		"CANCELLED": set(),
	},
	VehicleUnit: {
		"ON_ORDER":  set("AT_DEALER"),
		"AT_DEALER": set("DELIVERED"),
		"DELIVERED": set(),
	},
	CustomerOrder: {
		"PENDING":   set("COMPLETED", "CANCELLED"),
		"COMPLETED": set(),
		"CANCELLED": set(),
	},
	Delivery: {
		"PENDING":   set("DELIVERED", "CANCELLED"),
		"DELIVERED": set(),
		"CANCELLED": set(),
	},
}

var aliases = map[Kind]map[string]string{
	Delivery: {
		"RESERVED":  "PENDING",
		"COMPLETED": "DELIVERED",
	},
}

// Canonical resolves console aliases. Unknown values are returned unchanged.
func Canonical(kind Kind, status string) string {
	if a, ok := aliases[kind][status]; ok {
		return a
	}
	return status
}

// IsKnown reports whether status is a literal of kind. Matching is case-sensitive.
func IsKnown(kind Kind, status string) bool {
	_, ok := machines[kind][Canonical(kind, status)]
	return ok
}

// IsTerminal reports whether no edge leaves status. Unknown statuses are not terminal.
func IsTerminal(kind Kind, status string) bool {
	next, ok := machines[kind][Canonical(kind, status)]
	return ok && len(next) == 0
}

func CanTransition(kind Kind, from, to string) bool {
	next, ok := machines[kind][Canonical(kind, from)]
	if !ok {
		return false
	}
	_, ok = next[Canonical(kind, to)]
	return ok
}

// AssertTransition returns *errs.InvalidTransitionError when CanTransition is false.
func AssertTransition(kind Kind, from, to string) error {
	if !CanTransition(kind, from, to) {
		return errs.NewInvalidTransitionError(kind.String(), from, to)
	}
	return nil
}

// AssertDeliveryCreatable is the creation-time guard for delivery tickets: the
// vehicle unit must be exactly AT_DEALER.
func AssertDeliveryCreatable(vehicleStatus string) error {
	if vehicleStatus != "AT_DEALER" {
		return errs.NewPreconditionFailedError(
			VehicleUnit.String(),
			fmt.Sprintf("status %s is not AT_DEALER", vehicleStatus),
		)
	}
	return nil
}

// AssertVINAssignable allows VIN assignment at any status before DELIVERED.
func AssertVINAssignable(vehicleStatus string) error {
	if !IsKnown(VehicleUnit, vehicleStatus) || IsTerminal(VehicleUnit, vehicleStatus) {
		return errs.NewPreconditionFailedError(
			VehicleUnit.String(),
			fmt.Sprintf("VIN cannot be assigned at status %s", vehicleStatus),
		)
	}
	return nil
}
