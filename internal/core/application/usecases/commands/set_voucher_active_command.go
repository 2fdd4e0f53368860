package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/guard"
)

var ErrSetVoucherActiveCommandIsNotConstructed = errors.New(
	"SetVoucherActiveCommand must be created via NewSetVoucherActiveCommand constructor",
)

// SetVoucherActiveCommand switches a voucher on or off. Switching it to the
// state it is already in is not an error.
type SetVoucherActiveCommand struct { //nolint:recvcheck //using for validation
	voucherID kernel.UUID
	active    bool

	guard guard.ConstructorGuard
}

func NewSetVoucherActiveCommand(voucherID kernel.UUID, active bool) (SetVoucherActiveCommand, error) {
	if err := voucherID.Validate(); err != nil {
		return SetVoucherActiveCommand{}, err
	}

	return SetVoucherActiveCommand{
		voucherID: voucherID,
		active:    active,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetVoucherActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetVoucherActiveCommandIsNotConstructed)
}

func (c SetVoucherActiveCommand) VoucherID() kernel.UUID {
	return c.voucherID
}

func (c SetVoucherActiveCommand) Active() bool {
	return c.active
}
