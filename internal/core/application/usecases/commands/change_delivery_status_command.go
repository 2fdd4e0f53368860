package commands

import (
	"errors"

	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/guard"
)

var ErrChangeDeliveryStatusCommandIsNotConstructed = errors.New(
	"ChangeDeliveryStatusCommand must be created via NewChangeDeliveryStatusCommand constructor",
)

// ChangeDeliveryStatusCommand moves a delivery ticket to a new status. The
// console spellings RESERVED and COMPLETED are accepted and kept as given.
type ChangeDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	status     delivery.Status
	canonical  delivery.Status

	guard guard.ConstructorGuard
}

func NewChangeDeliveryStatusCommand(deliveryID kernel.UUID, status string) (ChangeDeliveryStatusCommand, error) {
	canonical, err := delivery.ParseStatus(status)
	if err = errors.Join(deliveryID.Validate(), err); err != nil {
		return ChangeDeliveryStatusCommand{}, err
	}

	return ChangeDeliveryStatusCommand{
		deliveryID: deliveryID,
		status:     delivery.Status(status),
		canonical:  canonical,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryStatusCommandIsNotConstructed)
}

func (c ChangeDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Status is the literal as sent by the caller.
func (c ChangeDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

// IsHandover reports whether the target is DELIVERED (or its alias COMPLETED).
func (c ChangeDeliveryStatusCommand) IsHandover() bool {
	return c.canonical == delivery.Delivered
}
