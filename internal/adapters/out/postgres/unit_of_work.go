// Package postgres provides the GORM implementation of the Unit of Work.
//
// A GormUnitOfWork hands out repositories bound to its transaction, so every
// change made by one command commits or rolls back together:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	po, err := uow.PurchaseOrderRepository().Get(ctx, id)
//	...
//	if err := uow.VehicleUnitRepository().Add(ctx, unit); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance is single-use and not safe for concurrent use;
// goroutines take their own from the factory.
package postgres

import (
	"context"

	"dealership/internal/adapters/out/postgres/carmodelrepo"
	"dealership/internal/adapters/out/postgres/customerorderrepo"
	"dealership/internal/adapters/out/postgres/deliveryrepo"
	"dealership/internal/adapters/out/postgres/purchaseorderrepo"
	"dealership/internal/adapters/out/postgres/vehiclerepo"
	"dealership/internal/adapters/out/postgres/voucherrepo"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate added or updated during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one *gorm.DB.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice does not nest.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when
// none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when
// none is active, e.g. after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) VoucherRepository() ports.VoucherRepository {
	return voucherrepo.NewGormVoucherRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	return purchaseorderrepo.NewGormPurchaseOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) VehicleUnitRepository() ports.VehicleUnitRepository {
	return vehiclerepo.NewGormVehicleUnitRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CustomerOrderRepository() ports.CustomerOrderRepository {
	return customerorderrepo.NewGormCustomerOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CarModelRepository() ports.CarModelRepository {
	return carmodelrepo.NewGormCarModelRepository(uow.conn(), uow)
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount reports how many writes the unit of work has seen since it was
// created or last rolled back.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

// conn returns the transaction when one is active, otherwise the pool, so
// repositories also work for single statements outside Begin/Commit.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
