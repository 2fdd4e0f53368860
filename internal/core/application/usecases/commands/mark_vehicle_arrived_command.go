package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/pkg/guard"
)

var ErrMarkVehicleArrivedCommandIsNotConstructed = errors.New(
	"MarkVehicleArrivedCommand must be created via NewMarkVehicleArrivedCommand constructor",
)

// MarkVehicleArrivedCommand records that an ON_ORDER unit reached the dealer.
// The VIN is optional; an empty string means it is assigned later.
type MarkVehicleArrivedCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	vin       *vehicle.VIN

	guard guard.ConstructorGuard
}

func NewMarkVehicleArrivedCommand(vehicleID kernel.UUID, rawVIN string) (MarkVehicleArrivedCommand, error) {
	cmd := MarkVehicleArrivedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := vehicleID.Validate(); err != nil {
		return MarkVehicleArrivedCommand{}, err
	}
	cmd.vehicleID = vehicleID

	if rawVIN != "" {
		vin, err := vehicle.NewVIN(rawVIN)
		if err != nil {
			return MarkVehicleArrivedCommand{}, err
		}
		cmd.vin = &vin
	}

	return cmd, nil
}

func (c MarkVehicleArrivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkVehicleArrivedCommandIsNotConstructed)
}

func (c MarkVehicleArrivedCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c MarkVehicleArrivedCommand) VIN() *vehicle.VIN {
	return c.vin
}
