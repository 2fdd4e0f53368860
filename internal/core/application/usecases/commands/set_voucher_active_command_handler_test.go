package commands_test

import (
	"testing"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetVoucherActiveCommandHandler_Handle(t *testing.T) {
	for _, active := range []bool{false, true} {
		t.Run(map[bool]string{false: "deactivate", true: "activate"}[active], func(t *testing.T) {
			ctx := t.Context()
			v := newTestFlatVoucher(t, 10_000_000)
			v.Deactivate()
			cmd, err := commands.NewSetVoucherActiveCommand(v.ID(), active)
			require.NoError(t, err)

			repo := new(MockVoucherRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("VoucherRepository").Return(repo).Once(),
				repo.On("Get", mock.Anything, v.ID()).Return(v, nil).Once(),
				repo.On("Update", mock.Anything, v).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)
			factory := new(MockVoucherUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewSetVoucherActiveCommandHandler(factory)
			require.NoError(t, h.Handle(ctx, cmd))
			assert.Equal(t, active, v.IsActive())
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestSetVoucherActiveCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewSetVoucherActiveCommand(id, false)
	require.NoError(t, err)

	repo := new(MockVoucherRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VoucherRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("id", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockVoucherUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetVoucherActiveCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestSetVoucherActiveCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockVoucherUoWFactory)
	h := commands.NewSetVoucherActiveCommandHandler(factory)
	err := h.Handle(t.Context(), commands.SetVoucherActiveCommand{})
	require.ErrorIs(t, err, commands.ErrSetVoucherActiveCommandIsNotConstructed)
}
