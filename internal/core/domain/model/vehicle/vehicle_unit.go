package vehicle

import (
	"errors"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/statusguard"
)

var ErrVehicleUnitIsNotConstructed = errors.New("VehicleUnit must be created via NewVehicleUnit or RestoreVehicleUnit")

// VehicleUnit is one physical car of a catalog model.
type VehicleUnit struct {
	id          kernel.UUID
	carModelID  kernel.UUID
	orderID     *kernel.UUID
	vin         *VIN
	status      Status
	arrivedAt   *time.Time
	deliveredAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
	version     int

	isConstructed bool
}

// NewVehicleUnit creates an ON_ORDER unit. orderID links the unit to the
// purchase order that spawned it and may be nil for stock bought elsewhere.
func NewVehicleUnit(id, carModelID kernel.UUID, orderID *kernel.UUID, now time.Time) (*VehicleUnit, error) {
	return newUnit(id, carModelID, orderID, OnOrder, now)
}

// NewStockUnit creates a unit that is already at the dealer.
func NewStockUnit(id, carModelID kernel.UUID, vin *VIN, now time.Time) (*VehicleUnit, error) {
	u, err := newUnit(id, carModelID, nil, AtDealer, now)
	if err != nil {
		return nil, err
	}
	u.vin = vin
	u.arrivedAt = &now
	return u, nil
}

func newUnit(id, carModelID kernel.UUID, orderID *kernel.UUID, status Status, now time.Time) (*VehicleUnit, error) {
	u := &VehicleUnit{
		orderID:       orderID,
		status:        status,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}
	if err := errors.Join(
		u.setID(id),
		u.setCarModelID(carModelID),
	); err != nil {
		return nil, err
	}
	return u, nil
}

func RestoreVehicleUnit(
	id, carModelID kernel.UUID,
	orderID *kernel.UUID,
	vin *VIN,
	status Status,
	arrivedAt, deliveredAt *time.Time,
	createdAt, updatedAt time.Time,
	version int,
) (*VehicleUnit, error) {
	u := &VehicleUnit{
		orderID:       orderID,
		vin:           vin,
		arrivedAt:     arrivedAt,
		deliveredAt:   deliveredAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}
	if err := errors.Join(
		u.setID(id),
		u.setCarModelID(carModelID),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	u.status = status
	return u, nil
}

func (u *VehicleUnit) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrVehicleUnitIsNotConstructed
	}
	return nil
}

func (u *VehicleUnit) ID() kernel.UUID {
	return u.id
}

func (u *VehicleUnit) CarModelID() kernel.UUID {
	return u.carModelID
}

func (u *VehicleUnit) OrderID() *kernel.UUID {
	return u.orderID
}

func (u *VehicleUnit) VIN() *VIN {
	return u.vin
}

func (u *VehicleUnit) Status() Status {
	return u.status
}

func (u *VehicleUnit) ArrivedAt() *time.Time {
	return u.arrivedAt
}

func (u *VehicleUnit) DeliveredAt() *time.Time {
	return u.deliveredAt
}

func (u *VehicleUnit) CreatedAt() time.Time {
	return u.createdAt
}

func (u *VehicleUnit) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *VehicleUnit) Version() int {
	return u.version
}

// MarkArrived moves an ON_ORDER unit to AT_DEALER. When vin is given it is
// assigned in the same step.
func (u *VehicleUnit) MarkArrived(at time.Time, vin *VIN) error {
	if err := u.transition(AtDealer, at); err != nil {
		return err
	}
	u.arrivedAt = &at
	if vin != nil {
		u.vin = vin
	}
	return nil
}

// AssignVIN overwrites the VIN of a unit that has not been delivered yet.
func (u *VehicleUnit) AssignVIN(vin VIN, now time.Time) error {
	if err := statusguard.AssertVINAssignable(u.status.String()); err != nil {
		return err
	}
	u.vin = &vin
	u.updatedAt = now
	return nil
}

// EnsureDeliverable checks that a delivery ticket may be opened for the unit.
func (u *VehicleUnit) EnsureDeliverable() error {
	return statusguard.AssertDeliveryCreatable(u.status.String())
}

// MarkDelivered closes the unit's lifecycle once its delivery ticket completes.
func (u *VehicleUnit) MarkDelivered(at time.Time) error {
	if err := u.transition(Delivered, at); err != nil {
		return err
	}
	u.deliveredAt = &at
	return nil
}

func (u *VehicleUnit) transition(to Status, now time.Time) error {
	if err := statusguard.AssertTransition(statusguard.VehicleUnit, u.status.String(), to.String()); err != nil {
		return err
	}
	u.status = to
	u.updatedAt = now
	return nil
}

func (u *VehicleUnit) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *VehicleUnit) setCarModelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.carModelID = id
	return nil
}
