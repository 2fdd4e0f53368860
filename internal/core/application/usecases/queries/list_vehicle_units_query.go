package queries

import (
	"errors"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/pkg/guard"
)

var ErrListVehicleUnitsQueryIsNotConstructed = errors.New(
	"ListVehicleUnitsQuery must be created via NewListVehicleUnitsQuery constructor",
)

// ListVehicleUnitsQuery lists vehicle units with their model and purchase
// order. Both filters are optional.
type ListVehicleUnitsQuery struct {
	status  *vehicle.Status
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewListVehicleUnitsQuery(status *vehicle.Status, orderID *kernel.UUID) (ListVehicleUnitsQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListVehicleUnitsQuery{}, err
		}
	}
	return ListVehicleUnitsQuery{status: status, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListVehicleUnitsQuery) Validate() error {
	return q.guard.Validate(ErrListVehicleUnitsQueryIsNotConstructed)
}

func (q ListVehicleUnitsQuery) Status() *vehicle.Status {
	return q.status
}

func (q ListVehicleUnitsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

type VehicleUnitView struct {
	ID          kernel.UUID
	CarModelID  kernel.UUID
	ModelName   string
	OrderID     *kernel.UUID
	OrderNo     string
	VIN         string
	Status      vehicle.Status
	ArrivedAt   *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
}
