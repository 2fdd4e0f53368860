package commands

import (
	"errors"
	"strings"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/voucher"
	"dealership/internal/pkg/guard"
)

var (
	ErrCreateVoucherCommandIsNotConstructed = errors.New(
		"CreateVoucherCommand must be created via NewCreateVoucherCommand constructor",
	)
	ErrVoucherCodeIsRequired = errors.New("voucher code is required")
)

// CreateVoucherCommand registers a new discount voucher. The commercial rules
// (benefit per type, limits, validity window) are enforced by the voucher
// aggregate; the command only checks what is needed to route the request.
//
// Example:
//
//	amount := kernel.Money(10_000_000)
//	cmd, err := NewCreateVoucherCommand(kernel.NewUUID(), voucher.Terms{
//	    Code:   "FLAT10M",
//	    Type:   voucher.Flat,
//	    Title:  "10M off",
//	    Amount: &amount,
//	})
type CreateVoucherCommand struct { //nolint:recvcheck //using for validation
	voucherID kernel.UUID
	terms     voucher.Terms

	guard guard.ConstructorGuard
}

func NewCreateVoucherCommand(voucherID kernel.UUID, terms voucher.Terms) (CreateVoucherCommand, error) {
	cmd := CreateVoucherCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVoucherID(voucherID),
		cmd.setTerms(terms),
	); err != nil {
		return CreateVoucherCommand{}, err
	}

	return cmd, nil
}

func (c CreateVoucherCommand) Validate() error {
	return c.guard.Validate(ErrCreateVoucherCommandIsNotConstructed)
}

func (c CreateVoucherCommand) VoucherID() kernel.UUID {
	return c.voucherID
}

func (c CreateVoucherCommand) Terms() voucher.Terms {
	return c.terms
}

func (c *CreateVoucherCommand) setVoucherID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.voucherID = id
	return nil
}

func (c *CreateVoucherCommand) setTerms(terms voucher.Terms) error {
	if strings.TrimSpace(terms.Code) == "" {
		return ErrVoucherCodeIsRequired
	}
	if err := terms.Type.Validate(); err != nil {
		return err
	}

	c.terms = terms
	return nil
}
