package http

import (
	"time"

	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/kernel"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Created struct {
	ID openapi_types.UUID `json:"id"`
}

// Requests.

type NewPurchaseOrder struct {
	OrderNo     string              `json:"orderNo" validate:"required,max=50"`
	EtaAtDealer *openapi_types.Date `json:"etaAtDealer"`
	Note        string              `json:"note" validate:"max=2000"`
	CarModelID  *openapi_types.UUID `json:"carModelId"`
	Quantity    int                 `json:"quantity" validate:"min=0,max=500"`
}

type NewVoucher struct {
	Code        string              `json:"code" validate:"required,max=64"`
	Type        string              `json:"type" validate:"required,oneof=FLAT PERCENT PACKAGE"`
	Title       string              `json:"title" validate:"required,max=200"`
	MinPrice    *int64              `json:"minPrice" validate:"omitempty,min=0"`
	MaxDiscount *int64              `json:"maxDiscount" validate:"omitempty,min=0"`
	Amount      *int64              `json:"amount"`
	Percent     *decimal.Decimal    `json:"percent"`
	UsableFrom  *openapi_types.Date `json:"usableFrom"`
	UsableTo    *openapi_types.Date `json:"usableTo"`
	Stackable   bool                `json:"stackable"`
}

type VoucherActive struct {
	Active *bool `json:"active" validate:"required"`
}

type QuoteRequest struct {
	Code  string `json:"code" validate:"required"`
	Price int64  `json:"price" validate:"min=0"`
}

type NewCustomerOrder struct {
	CarModelID   openapi_types.UUID  `json:"carModelId" validate:"required"`
	CustomerInfo string              `json:"customerInfo" validate:"required"`
	Price        int64               `json:"price" validate:"gt=0"`
	VoucherCode  string              `json:"voucherCode"`
	DeliveryDate *openapi_types.Date `json:"deliveryDate"`
}

type NewDelivery struct {
	VehicleID       openapi_types.UUID  `json:"vehicleId" validate:"required"`
	CustomerOrderID *openapi_types.UUID `json:"customerOrderId"`
	CustomerName    string              `json:"customerName" validate:"required,max=200"`
	VoucherCode     string              `json:"voucherCode"`
	VoucherID       *openapi_types.UUID `json:"voucherId"`
	Price           *int64              `json:"price" validate:"omitempty,min=0"`
	Deposit         int64               `json:"deposit" validate:"min=0"`
}

type DeliveryStatusChange struct {
	Status string `json:"status" validate:"required"`
}

// Responses.

type CarModel struct {
	ID          openapi_types.UUID `json:"id"`
	Brand       string             `json:"brand"`
	Model       string             `json:"model"`
	Variant     string             `json:"variant"`
	DisplayName string             `json:"displayName"`
	MSRP        *int64             `json:"msrp,omitempty"`
}

type PurchaseOrder struct {
	ID                openapi_types.UUID  `json:"id"`
	OrderNo           string              `json:"orderNo"`
	Status            string              `json:"status"`
	EtaAtDealer       *openapi_types.Date `json:"etaAtDealer,omitempty"`
	Note              string              `json:"note"`
	PlannedCarModelID *openapi_types.UUID `json:"plannedCarModelId,omitempty"`
	PlannedModelName  string              `json:"plannedModelName,omitempty"`
	PlannedQuantity   int                 `json:"plannedQuantity"`
	UnitCount         int64               `json:"unitCount"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

type VehicleUnit struct {
	ID          openapi_types.UUID  `json:"id"`
	CarModelID  openapi_types.UUID  `json:"carModelId"`
	ModelName   string              `json:"modelName"`
	OrderID     *openapi_types.UUID `json:"orderId,omitempty"`
	OrderNo     string              `json:"orderNo,omitempty"`
	VIN         string              `json:"vin,omitempty"`
	Status      string              `json:"status"`
	ArrivedAt   *time.Time          `json:"arrivedAt,omitempty"`
	DeliveredAt *time.Time          `json:"deliveredAt,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}

type Voucher struct {
	ID          openapi_types.UUID  `json:"id"`
	Code        string              `json:"code"`
	Type        string              `json:"type"`
	Title       string              `json:"title"`
	MinPrice    *int64              `json:"minPrice,omitempty"`
	MaxDiscount *int64              `json:"maxDiscount,omitempty"`
	Amount      *int64              `json:"amount,omitempty"`
	Percent     *decimal.Decimal    `json:"percent,omitempty"`
	UsableFrom  *openapi_types.Date `json:"usableFrom,omitempty"`
	UsableTo    *openapi_types.Date `json:"usableTo,omitempty"`
	Stackable   bool                `json:"stackable"`
	Active      bool                `json:"active"`
	CreatedAt   time.Time           `json:"createdAt"`
}

type VoucherStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	ValidNow int64 `json:"validNow"`
}

type VoucherQuote struct {
	VoucherID  openapi_types.UUID `json:"voucherId"`
	Code       string             `json:"code"`
	Price      int64              `json:"price"`
	Discount   int64              `json:"discount"`
	PriceAfter int64              `json:"priceAfter"`
	Eligible   bool               `json:"eligible"`
	Reason     string             `json:"reason"`
}

type CustomerOrder struct {
	ID              openapi_types.UUID  `json:"id"`
	CarModelID      openapi_types.UUID  `json:"carModelId"`
	ModelName       string              `json:"modelName"`
	CustomerInfo    string              `json:"customerInfo"`
	Price           int64               `json:"price"`
	VoucherID       *openapi_types.UUID `json:"voucherId,omitempty"`
	VoucherCode     string              `json:"voucherCode,omitempty"`
	DiscountApplied int64               `json:"discountApplied"`
	PriceAfter      int64               `json:"priceAfter"`
	DeliveryDate    *openapi_types.Date `json:"deliveryDate,omitempty"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
}

type Delivery struct {
	ID              openapi_types.UUID  `json:"id"`
	VehicleID       openapi_types.UUID  `json:"vehicleId"`
	VIN             string              `json:"vin,omitempty"`
	ModelName       string              `json:"modelName"`
	CustomerOrderID *openapi_types.UUID `json:"customerOrderId,omitempty"`
	CustomerName    string              `json:"customerName"`
	VoucherID       *openapi_types.UUID `json:"voucherId,omitempty"`
	VoucherCode     string              `json:"voucherCode,omitempty"`
	PriceBefore     *int64              `json:"priceBefore,omitempty"`
	DiscountApplied int64               `json:"discountApplied"`
	PriceAfter      *int64              `json:"priceAfter,omitempty"`
	Deposit         int64               `json:"deposit"`
	Status          string              `json:"status"`
	DeliveredAt     *time.Time          `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
}

type Dashboard struct {
	VehicleUnits   map[string]int64 `json:"vehicleUnits"`
	PurchaseOrders map[string]int64 `json:"purchaseOrders"`
	Deliveries     map[string]int64 `json:"deliveries"`
	CustomerOrders map[string]int64 `json:"customerOrders"`
	ActiveVouchers int64            `json:"activeVouchers"`
}

// Conversions between wire and domain types.

func toAPIUUID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func toAPIUUIDPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	v := toAPIUUID(*id)
	return &v
}

func fromAPIUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func fromAPIUUIDPtr(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	v, err := fromAPIUUID(*id)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func toAPIDate(d *kernel.Date) *openapi_types.Date {
	if d == nil {
		return nil
	}
	return &openapi_types.Date{Time: d.Time()}
}

func fromAPIDate(d *openapi_types.Date) *kernel.Date {
	if d == nil {
		return nil
	}
	v := kernel.DateOf(d.Time)
	return &v
}

func moneyPtr(v *int64) *kernel.Money {
	return kernel.MoneyPtr(v)
}

func int64Ptr(m *kernel.Money) *int64 {
	return kernel.Int64Ptr(m)
}

func toCarModel(v queries.CarModelView) CarModel {
	return CarModel{
		ID:          toAPIUUID(v.ID),
		Brand:       v.Brand,
		Model:       v.Model,
		Variant:     v.Variant,
		DisplayName: v.DisplayName(),
		MSRP:        int64Ptr(v.MSRP),
	}
}

func toPurchaseOrder(v queries.PurchaseOrderView) PurchaseOrder {
	return PurchaseOrder{
		ID:                toAPIUUID(v.ID),
		OrderNo:           v.OrderNo,
		Status:            v.Status.String(),
		EtaAtDealer:       toAPIDate(v.EtaAtDealer),
		Note:              v.Note,
		PlannedCarModelID: toAPIUUIDPtr(v.PlannedCarModelID),
		PlannedModelName:  v.PlannedModelName,
		PlannedQuantity:   v.PlannedQuantity,
		UnitCount:         v.UnitCount,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func toVehicleUnit(v queries.VehicleUnitView) VehicleUnit {
	return VehicleUnit{
		ID:          toAPIUUID(v.ID),
		CarModelID:  toAPIUUID(v.CarModelID),
		ModelName:   v.ModelName,
		OrderID:     toAPIUUIDPtr(v.OrderID),
		OrderNo:     v.OrderNo,
		VIN:         v.VIN,
		Status:      v.Status.String(),
		ArrivedAt:   v.ArrivedAt,
		DeliveredAt: v.DeliveredAt,
		CreatedAt:   v.CreatedAt,
	}
}

func toVoucher(v queries.VoucherView) Voucher {
	return Voucher{
		ID:          toAPIUUID(v.ID),
		Code:        v.Code,
		Type:        v.Type.String(),
		Title:       v.Title,
		MinPrice:    int64Ptr(v.MinPrice),
		MaxDiscount: int64Ptr(v.MaxDiscount),
		Amount:      int64Ptr(v.Amount),
		Percent:     v.Percent,
		UsableFrom:  toAPIDate(v.UsableFrom),
		UsableTo:    toAPIDate(v.UsableTo),
		Stackable:   v.Stackable,
		Active:      v.Active,
		CreatedAt:   v.CreatedAt,
	}
}

func toCustomerOrder(v queries.CustomerOrderView) CustomerOrder {
	return CustomerOrder{
		ID:              toAPIUUID(v.ID),
		CarModelID:      toAPIUUID(v.CarModelID),
		ModelName:       v.ModelName,
		CustomerInfo:    v.CustomerInfo,
		Price:           v.Price.Int64(),
		VoucherID:       toAPIUUIDPtr(v.VoucherID),
		VoucherCode:     v.VoucherCode,
		DiscountApplied: v.DiscountApplied.Int64(),
		PriceAfter:      v.PriceAfter.Int64(),
		DeliveryDate:    toAPIDate(v.DeliveryDate),
		Status:          v.Status.String(),
		CreatedAt:       v.CreatedAt,
	}
}

func toDelivery(v queries.DeliveryView) Delivery {
	return Delivery{
		ID:              toAPIUUID(v.ID),
		VehicleID:       toAPIUUID(v.VehicleID),
		VIN:             v.VIN,
		ModelName:       v.ModelName,
		CustomerOrderID: toAPIUUIDPtr(v.CustomerOrderID),
		CustomerName:    v.CustomerName,
		VoucherID:       toAPIUUIDPtr(v.VoucherID),
		VoucherCode:     v.VoucherCode,
		PriceBefore:     int64Ptr(v.PriceBefore),
		DiscountApplied: v.DiscountApplied.Int64(),
		PriceAfter:      int64Ptr(v.PriceAfter),
		Deposit:         v.Deposit.Int64(),
		Status:          v.Status.String(),
		DeliveredAt:     v.DeliveredAt,
		CreatedAt:       v.CreatedAt,
	}
}

func statusCounts[S ~string](in map[S]int64) map[string]int64 {
	out := make(map[string]int64, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}
