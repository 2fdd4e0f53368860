// Package seed loads the demo data set the admin console ships with: three car
// models, two manufacturer orders with their units, one car at the dealer and
// two vouchers.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dealership/internal/core/domain/model/carmodel"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/purchaseorder"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/core/domain/model/voucher"
	"dealership/internal/core/ports"
	"dealership/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Fixed identifiers so demo links and tokens survive restarts.
var (
	CorollaID = kernel.MustUUID("0a8d1c3e-5f6b-4c1a-9e2d-000000000001")
	CamryID   = kernel.MustUUID("0a8d1c3e-5f6b-4c1a-9e2d-000000000002")
	CivicID   = kernel.MustUUID("0a8d1c3e-5f6b-4c1a-9e2d-000000000003")

	FirstOrderID  = kernel.MustUUID("1b9e2d4f-6a7c-4d2b-8f3e-000000000001")
	SecondOrderID = kernel.MustUUID("1b9e2d4f-6a7c-4d2b-8f3e-000000000002")

	StockCivicID = kernel.MustUUID("2caf3e5a-7b8d-4e3c-9a4f-000000000004")

	Flat10MID = kernel.MustUUID("3db04f6b-8c9e-4f4d-8b5a-000000000001")
	Pct05ID   = kernel.MustUUID("3db04f6b-8c9e-4f4d-8b5a-000000000002")
)

const StockCivicVIN = "JT123456789000001"

// Load writes the demo data in one transaction. Dates are relative to now, so
// the vouchers are usable on the day the store is seeded. Loading into a store
// that already has the catalog is a no-op.
func Load(ctx context.Context, factory ports.UnitOfWorkFactory, now time.Time) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	_, err := uow.CarModelRepository().Get(ctx, CorollaID)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err := loadCatalog(ctx, uow, now); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if err := loadInventory(ctx, uow, now); err != nil {
		return fmt.Errorf("seed inventory: %w", err)
	}

	return uow.Commit(ctx)
}

func loadCatalog(ctx context.Context, uow ports.UnitOfWork, now time.Time) error {
	models := []struct {
		id                    kernel.UUID
		brand, model, variant string
		msrp                  kernel.Money
	}{
		{CorollaID, "Toyota", "Corolla", "1.8 AT", 620_000_000},
		{CamryID, "Toyota", "Camry", "2.5 AT", 1_150_000_000},
		{CivicID, "Honda", "Civic", "1.5 Turbo", 780_000_000},
	}
	for _, m := range models {
		msrp := m.msrp
		c, err := carmodel.NewCarModel(m.id, m.brand, m.model, m.variant, &msrp)
		if err != nil {
			return err
		}
		if err := uow.CarModelRepository().Add(ctx, c); err != nil {
			return err
		}
	}

	today := kernel.DateOf(now)
	money := func(v kernel.Money) *kernel.Money { return &v }
	date := func(offset int) *kernel.Date {
		d := today.AddDays(offset)
		return &d
	}
	five := decimal.NewFromInt(5)

	vouchers := []struct {
		id    kernel.UUID
		terms voucher.Terms
	}{
		{Flat10MID, voucher.Terms{
			Code:        "FLAT10M",
			Type:        voucher.Flat,
			Title:       "Giảm 10 triệu",
			MinPrice:    money(600_000_000),
			MaxDiscount: money(10_000_000),
			Amount:      money(10_000_000),
			UsableFrom:  date(-7),
			UsableTo:    date(30),
		}},
		{Pct05ID, voucher.Terms{
			Code:        "PCT05",
			Type:        voucher.Percent,
			Title:       "Giảm 5%",
			MinPrice:    money(500_000_000),
			MaxDiscount: money(30_000_000),
			Percent:     &five,
			UsableFrom:  date(-1),
			UsableTo:    date(20),
			Stackable:   true,
		}},
	}
	for _, v := range vouchers {
		aggregate, err := voucher.NewVoucher(v.id, v.terms, now)
		if err != nil {
			return err
		}
		if err := uow.VoucherRepository().Add(ctx, aggregate); err != nil {
			return err
		}
	}
	return nil
}

func loadInventory(ctx context.Context, uow ports.UnitOfWork, now time.Time) error {
	today := kernel.DateOf(now)

	orders := []struct {
		id       kernel.UUID
		no       string
		eta      kernel.Date
		note     string
		model    kernel.UUID
		quantity int
		path     []purchaseorder.Status
	}{
		{FirstOrderID, "PO-2025-001", today.AddDays(14), "Lô đầu tiên", CorollaID, 2,
			[]purchaseorder.Status{purchaseorder.Submitted, purchaseorder.Confirmed}},
		{SecondOrderID, "PO-2025-002", today.AddDays(18), "Camry đen", CamryID, 1,
			[]purchaseorder.Status{purchaseorder.Submitted}},
	}

	for _, o := range orders {
		plan, err := purchaseorder.NewPlan(o.model, o.quantity)
		if err != nil {
			return err
		}
		eta := o.eta
		po, err := purchaseorder.NewPurchaseOrder(o.id, o.no, &eta, o.note, &plan, now)
		if err != nil {
			return err
		}
		for _, next := range o.path {
			if err := po.ChangeStatus(next, now); err != nil {
				return err
			}
		}
		if err := uow.PurchaseOrderRepository().Add(ctx, po); err != nil {
			return err
		}

		orderID := po.ID()
		for range o.quantity {
			unit, err := vehicle.NewVehicleUnit(kernel.NewUUID(), o.model, &orderID, now)
			if err != nil {
				return err
			}
			if err := uow.VehicleUnitRepository().Add(ctx, unit); err != nil {
				return err
			}
		}
	}

	vin, err := vehicle.NewVIN(StockCivicVIN)
	if err != nil {
		return err
	}
	stock, err := vehicle.NewStockUnit(StockCivicID, CivicID, &vin, now.AddDate(0, 0, -1))
	if err != nil {
		return err
	}
	return uow.VehicleUnitRepository().Add(ctx, stock)
}
