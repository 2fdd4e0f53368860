package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/pkg/guard"
)

var ErrAssignVehicleVINCommandIsNotConstructed = errors.New(
	"AssignVehicleVINCommand must be created via NewAssignVehicleVINCommand constructor",
)

type AssignVehicleVINCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	vin       vehicle.VIN

	guard guard.ConstructorGuard
}

// NewAssignVehicleVINCommand normalises rawVIN to upper case and rejects
// anything that is not a 17 character VIN.
func NewAssignVehicleVINCommand(vehicleID kernel.UUID, rawVIN string) (AssignVehicleVINCommand, error) {
	vin, err := vehicle.NewVIN(rawVIN)
	if err = errors.Join(vehicleID.Validate(), err); err != nil {
		return AssignVehicleVINCommand{}, err
	}

	return AssignVehicleVINCommand{
		vehicleID: vehicleID,
		vin:       vin,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignVehicleVINCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleVINCommandIsNotConstructed)
}

func (c AssignVehicleVINCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c AssignVehicleVINCommand) VIN() vehicle.VIN {
	return c.vin
}
