// Package vehicle holds the VehicleUnit aggregate: a single car tracked from
// the manufacturer order (ON_ORDER) through arrival at the dealer (AT_DEALER)
// to the customer (DELIVERED).
package vehicle
