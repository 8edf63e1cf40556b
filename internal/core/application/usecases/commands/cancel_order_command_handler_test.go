package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), testItems(t), time.Now())
	require.NoError(t, err)
	return o
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ord := testPendingOrder(t)
	drv := testAvailableDriver(t)
	assigned := testAssignedDelivery(t, drv)
	pending := testPendingDelivery(t)
	cmd, err := commands.NewCancelOrderCommand(ord.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()

	orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once()
	deliveryRepo.On("GetAllActiveByOrder", mock.Anything, ord.ID()).
		Return([]*delivery.Delivery{assigned, pending}, nil).Once()
	driverRepo.On("Get", mock.Anything, drv.ID()).Return(drv, nil).Once()
	driverRepo.On("Update", mock.Anything, drv).Return(nil).Once()
	deliveryRepo.On("Update", mock.Anything, assigned).Return(nil).Once()
	deliveryRepo.On("Update", mock.Anything, pending).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, ord).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, ord.Status())
	assert.Equal(t, delivery.StatusCancelled, assigned.Status())
	assert.Equal(t, delivery.StatusCancelled, pending.Status())
	assert.Equal(t, driver.StatusAvailable, drv.Status())
	orderRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ClosedOrder(t *testing.T) {
	ctx := t.Context()
	ord := testPendingOrder(t)
	require.NoError(t, ord.Cancel())
	cmd, err := commands.NewCancelOrderCommand(ord.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}
