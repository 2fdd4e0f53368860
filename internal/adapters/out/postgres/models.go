package postgres

import (
	"dealership/internal/adapters/out/postgres/carmodelrepo"
	"dealership/internal/adapters/out/postgres/customerorderrepo"
	"dealership/internal/adapters/out/postgres/deliveryrepo"
	"dealership/internal/adapters/out/postgres/purchaseorderrepo"
	"dealership/internal/adapters/out/postgres/vehiclerepo"
	"dealership/internal/adapters/out/postgres/voucherrepo"

	"gorm.io/gorm"
)

// Models lists the persisted DTOs in dependency order.
func Models() []any {
	return []any{
		&carmodelrepo.CarModelDTO{},
		&voucherrepo.VoucherDTO{},
		&purchaseorderrepo.PurchaseOrderDTO{},
		&vehiclerepo.VehicleUnitDTO{},
		&customerorderrepo.CustomerOrderDTO{},
		&deliveryrepo.DeliveryDTO{},
	}
}

// AutoMigrate builds the schema from the DTOs. It backs the in-memory SQLite
// demo store and the query tests; postgres uses the goose migrations.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
