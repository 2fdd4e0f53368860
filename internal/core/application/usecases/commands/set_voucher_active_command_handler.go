package commands

import (
	"context"
)

type SetVoucherActiveCommandHandler struct {
	uowFactory VoucherUoWFactory
}

func NewSetVoucherActiveCommandHandler(uowFactory VoucherUoWFactory) SetVoucherActiveCommandHandler {
	return SetVoucherActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the voucher, flips its flag and stores it. An unchanged flag
// is still written and bumps the version.
func (h *SetVoucherActiveCommandHandler) Handle(ctx context.Context, cmd SetVoucherActiveCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.VoucherRepository()
	v, err := repo.Get(ctx, cmd.VoucherID())
	if err != nil {
		return err
	}

	if cmd.Active() {
		v.Activate()
	} else {
		v.Deactivate()
	}

	if err = repo.Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
