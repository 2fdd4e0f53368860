package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from it
// share the transaction started by Begin.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction, which handlers ignore when
	// deferring it after a successful Commit.
	Rollback(ctx context.Context) error

	VoucherRepository() VoucherRepository
	PurchaseOrderRepository() PurchaseOrderRepository
	VehicleUnitRepository() VehicleUnitRepository
	CustomerOrderRepository() CustomerOrderRepository
	DeliveryRepository() DeliveryRepository
	CarModelRepository() CarModelRepository
}
