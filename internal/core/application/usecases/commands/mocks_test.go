package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/carmodel"
	"dealership/internal/core/domain/model/customerorder"
	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/purchaseorder"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/core/domain/model/voucher"
	"dealership/internal/core/domain/services"
	"dealership/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func testHandover() *services.Handover {
	return services.NewHandover(services.NewDiscountCalculator(testClock))
}

type MockVoucherRepository struct{ mock.Mock }

func (m *MockVoucherRepository) Add(ctx context.Context, v *voucher.Voucher) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockVoucherRepository) Update(ctx context.Context, v *voucher.Voucher) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockVoucherRepository) Get(ctx context.Context, id kernel.UUID) (*voucher.Voucher, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*voucher.Voucher)
	return v, args.Error(1)
}
func (m *MockVoucherRepository) GetByCode(ctx context.Context, code string) (*voucher.Voucher, error) {
	args := m.Called(ctx, code)
	v, _ := args.Get(0).(*voucher.Voucher)
	return v, args.Error(1)
}

type MockPurchaseOrderRepository struct{ mock.Mock }

func (m *MockPurchaseOrderRepository) Add(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	return m.Called(ctx, po).Error(0)
}
func (m *MockPurchaseOrderRepository) Update(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	return m.Called(ctx, po).Error(0)
}
func (m *MockPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	po, _ := args.Get(0).(*purchaseorder.PurchaseOrder)
	return po, args.Error(1)
}
func (m *MockPurchaseOrderRepository) GetByOrderNo(_ context.Context, _ string) (*purchaseorder.PurchaseOrder, error) {
	return nil, errors.New("not implemented in mock")
}

type MockVehicleUnitRepository struct{ mock.Mock }

func (m *MockVehicleUnitRepository) Add(ctx context.Context, u *vehicle.VehicleUnit) error {
	return m.Called(ctx, u).Error(0)
}
func (m *MockVehicleUnitRepository) Update(ctx context.Context, u *vehicle.VehicleUnit) error {
	return m.Called(ctx, u).Error(0)
}
func (m *MockVehicleUnitRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.VehicleUnit, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*vehicle.VehicleUnit)
	return u, args.Error(1)
}
func (m *MockVehicleUnitRepository) CountByOrder(ctx context.Context, orderID kernel.UUID) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCustomerOrderRepository struct{ mock.Mock }

func (m *MockCustomerOrderRepository) Add(ctx context.Context, o *customerorder.CustomerOrder) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockCustomerOrderRepository) Update(ctx context.Context, o *customerorder.CustomerOrder) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockCustomerOrderRepository) Get(ctx context.Context, id kernel.UUID) (*customerorder.CustomerOrder, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*customerorder.CustomerOrder)
	return o, args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}
func (m *MockDeliveryRepository) HasPendingForVehicle(ctx context.Context, vehicleID kernel.UUID) (bool, error) {
	args := m.Called(ctx, vehicleID)
	return args.Bool(0), args.Error(1)
}

type MockCarModelRepository struct{ mock.Mock }

func (m *MockCarModelRepository) Add(_ context.Context, _ *carmodel.CarModel) error {
	return errors.New("not implemented in mock")
}
func (m *MockCarModelRepository) Get(ctx context.Context, id kernel.UUID) (*carmodel.CarModel, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*carmodel.CarModel)
	return c, args.Error(1)
}

// MockUoW satisfies every narrowed unit of work of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) VoucherRepository() ports.VoucherRepository {
	return m.Called().Get(0).(ports.VoucherRepository)
}
func (m *MockUoW) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	return m.Called().Get(0).(ports.PurchaseOrderRepository)
}
func (m *MockUoW) VehicleUnitRepository() ports.VehicleUnitRepository {
	return m.Called().Get(0).(ports.VehicleUnitRepository)
}
func (m *MockUoW) CustomerOrderRepository() ports.CustomerOrderRepository {
	return m.Called().Get(0).(ports.CustomerOrderRepository)
}
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}
func (m *MockUoW) CarModelRepository() ports.CarModelRepository {
	return m.Called().Get(0).(ports.CarModelRepository)
}

type MockVoucherUoWFactory struct{ mock.Mock }

func (m *MockVoucherUoWFactory) Create() commands.VoucherUoW {
	return m.Called().Get(0).(commands.VoucherUoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	return m.Called().Get(0).(commands.InventoryUoW)
}

type MockSalesUoWFactory struct{ mock.Mock }

func (m *MockSalesUoWFactory) Create() commands.SalesUoW {
	return m.Called().Get(0).(commands.SalesUoW)
}

func newTestCarModel(t *testing.T) *carmodel.CarModel {
	t.Helper()
	m, err := carmodel.NewCarModel(kernel.NewUUID(), "Toyota", "Corolla Cross", "1.8V", nil)
	require.NoError(t, err)
	return m
}

func newTestFlatVoucher(t *testing.T, amount kernel.Money) *voucher.Voucher {
	t.Helper()
	v, err := voucher.NewVoucher(kernel.NewUUID(), voucher.Terms{
		Code:   "FLAT10M",
		Type:   voucher.Flat,
		Title:  "Flat discount",
		Amount: &amount,
	}, testNow)
	require.NoError(t, err)
	return v
}

func newTestStockUnit(t *testing.T, carModelID kernel.UUID) *vehicle.VehicleUnit {
	t.Helper()
	u, err := vehicle.NewStockUnit(kernel.NewUUID(), carModelID, nil, testNow)
	require.NoError(t, err)
	return u
}

func newTestPendingOrder(t *testing.T, carModelID kernel.UUID, price kernel.Money) *customerorder.CustomerOrder {
	t.Helper()
	o, err := customerorder.NewCustomerOrder(kernel.NewUUID(), carModelID, "Nguyen Van A", price, nil, testNow)
	require.NoError(t, err)
	return o
}
