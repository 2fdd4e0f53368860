package commands_test

import (
	"errors"
	"testing"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/purchaseorder"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePurchaseOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	model := newTestCarModel(t)
	modelID := model.ID()
	cmd, err := commands.NewCreatePurchaseOrderCommand(kernel.NewUUID(), "PO-2025-003", nil, "", &modelID, 2)
	require.NoError(t, err)

	models := new(MockCarModelRepository)
	orders := new(MockPurchaseOrderRepository)
	uow := new(MockUoW)
	var stored *purchaseorder.PurchaseOrder
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarModelRepository").Return(models).Once(),
		models.On("Get", mock.Anything, modelID).Return(model, nil).Once(),
		uow.On("PurchaseOrderRepository").Return(orders).Once(),
		orders.On("Add", mock.Anything, mock.AnythingOfType("*purchaseorder.PurchaseOrder")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*purchaseorder.PurchaseOrder) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePurchaseOrderCommandHandler(factory, testClock)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, stored)
	assert.Equal(t, purchaseorder.Draft, stored.Status())
	assert.Equal(t, "PO-2025-003", stored.OrderNo())
	assert.Equal(t, 2, stored.Plan().Quantity())
	models.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePurchaseOrderCommandHandler_Handle_WithoutPlanSkipsCatalog(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePurchaseOrderCommand(kernel.NewUUID(), "PO-2025-004", nil, "", nil, 0)
	require.NoError(t, err)

	orders := new(MockPurchaseOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PurchaseOrderRepository").Return(orders).Once(),
		orders.On("Add", mock.Anything, mock.AnythingOfType("*purchaseorder.PurchaseOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePurchaseOrderCommandHandler(factory, testClock)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "CarModelRepository")
	uow.AssertExpectations(t)
}

func TestCreatePurchaseOrderCommandHandler_Handle_UnknownModel(t *testing.T) {
	ctx := t.Context()
	modelID := kernel.NewUUID()
	cmd, err := commands.NewCreatePurchaseOrderCommand(kernel.NewUUID(), "PO-2025-005", nil, "", &modelID, 1)
	require.NoError(t, err)

	models := new(MockCarModelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarModelRepository").Return(models).Once(),
		models.On("Get", mock.Anything, modelID).Return(nil, errs.NewObjectNotFoundError("id", modelID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePurchaseOrderCommandHandler(factory, testClock)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "PurchaseOrderRepository")
	uow.AssertExpectations(t)
}

func TestCreatePurchaseOrderCommandHandler_Handle_DuplicateOrderNo(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePurchaseOrderCommand(kernel.NewUUID(), "PO-2025-001", nil, "", nil, 0)
	require.NoError(t, err)

	orders := new(MockPurchaseOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PurchaseOrderRepository").Return(orders).Once(),
		orders.On("Add", mock.Anything, mock.AnythingOfType("*purchaseorder.PurchaseOrder")).
			Return(errs.NewObjectAlreadyExistsError("orderNo", "PO-2025-001")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePurchaseOrderCommandHandler(factory, testClock)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertExpectations(t)
}

func TestCreatePurchaseOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePurchaseOrderCommand(kernel.NewUUID(), "PO-1", nil, "", nil, 0)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockInventoryUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreatePurchaseOrderCommandHandler(factory, testClock)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}
