package commands

import (
	"context"

	"dealership/internal/core/domain/model/voucher"
	"dealership/internal/core/domain/services"
)

// CreateVoucherCommandHandler persists a new, active voucher. A code that is
// already taken, compared case-insensitively, fails with
// *errs.ObjectAlreadyExistsError.
type CreateVoucherCommandHandler struct {
	uowFactory VoucherUoWFactory
	clock      services.Clock
}

func NewCreateVoucherCommandHandler(uowFactory VoucherUoWFactory, clock services.Clock) CreateVoucherCommandHandler {
	return CreateVoucherCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *CreateVoucherCommandHandler) Handle(ctx context.Context, cmd CreateVoucherCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	v, err := voucher.NewVoucher(cmd.VoucherID(), cmd.Terms(), h.clock())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VoucherRepository().Add(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
