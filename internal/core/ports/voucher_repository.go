// Package ports defines the persistence contracts of the dealership domain.
// Adapters implement them; application handlers depend only on these interfaces.
package ports

import (
	"context"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/voucher"
)

// VoucherRepository stores voucher aggregates.
type VoucherRepository interface {
	// Add persists a new voucher. A code already taken (compared
	// case-insensitively) yields *errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *voucher.Voucher) error

	// Update persists changes to an existing voucher. A stale version yields
	// *errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *voucher.Voucher) error

	Get(ctx context.Context, id kernel.UUID) (*voucher.Voucher, error)

	// GetByCode looks a voucher up by code, ignoring case and surrounding spaces.
	GetByCode(ctx context.Context, code string) (*voucher.Voucher, error)
}
