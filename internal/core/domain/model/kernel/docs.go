// Package kernel provides the value objects shared by every dealership aggregate.
//
// The package includes:
//   - UUID: identifier wrapper that refuses the nil UUID
//   - Money: integer amount of VND with the rounding and clamping rules used by pricing
//   - Date: calendar date without a time of day, used for voucher windows and ETAs
//
// All values are immutable and safe for concurrent use.
package kernel
