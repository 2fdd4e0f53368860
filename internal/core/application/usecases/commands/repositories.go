// Package commands contains business operations that modify system state.
// Every handler follows the same steps: validate the command, begin a unit of
// work, load and mutate aggregates, persist them and commit.
package commands

import (
	"context"

	"dealership/internal/core/ports"
)

// Unit of Work interfaces narrow ports.UnitOfWork to the repositories a
// handler actually touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	VoucherRepoFactory interface {
		VoucherRepository() ports.VoucherRepository
	}

	PurchaseOrderRepoFactory interface {
		PurchaseOrderRepository() ports.PurchaseOrderRepository
	}

	VehicleUnitRepoFactory interface {
		VehicleUnitRepository() ports.VehicleUnitRepository
	}

	CustomerOrderRepoFactory interface {
		CustomerOrderRepository() ports.CustomerOrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	CarModelRepoFactory interface {
		CarModelRepository() ports.CarModelRepository
	}

	// VoucherUoW manages transactions for voucher maintenance.
	VoucherUoW interface {
		TxManager
		VoucherRepoFactory
	}

	VoucherUoWFactory interface {
		Create() VoucherUoW
	}

	// InventoryUoW manages transactions for purchase orders and the vehicle
	// units they bring in.
	InventoryUoW interface {
		TxManager
		PurchaseOrderRepoFactory
		VehicleUnitRepoFactory
		CarModelRepoFactory
	}

	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// SalesUoW manages transactions that span customer orders, delivery
	// tickets, the vehicle being sold and the voucher applied to it.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   deliveries := uow.DeliveryRepository()
	//   units := uow.VehicleUnitRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	SalesUoW interface {
		TxManager
		CustomerOrderRepoFactory
		DeliveryRepoFactory
		VehicleUnitRepoFactory
		VoucherRepoFactory
		CarModelRepoFactory
	}

	SalesUoWFactory interface {
		Create() SalesUoW
	}
)
