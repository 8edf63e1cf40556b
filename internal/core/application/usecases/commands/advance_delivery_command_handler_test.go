package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvanceDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	drv := testAvailableDriver(t)
	dlv := testAssignedDelivery(t, drv)
	cmd, err := commands.NewAdvanceDeliveryCommand(dlv.ID(), delivery.StatusPickedUp, "left at reception")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, dlv.ID()).Return(dlv, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, dlv).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusPickedUp, dlv.Status())
	assert.Equal(t, "left at reception", dlv.Notes())
	require.NotNil(t, dlv.StartedAt())
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceDeliveryCommandHandler_Handle_TerminalReleasesDriver(t *testing.T) {
	ctx := t.Context()
	drv := testAvailableDriver(t)
	dlv := testAssignedDelivery(t, drv)
	cmd, err := commands.NewAdvanceDeliveryCommand(dlv.ID(), delivery.StatusFailed, "customer unreachable")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, dlv.ID()).Return(dlv, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, drv.ID()).Return(drv, nil).Once(),
		driverRepo.On("Update", mock.Anything, drv).Return(nil).Once(),
		deliveryRepo.On("Update", mock.Anything, dlv).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusFailed, dlv.Status())
	assert.Equal(t, driver.StatusAvailable, drv.Status())
	require.NotNil(t, dlv.CompletedAt())
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceDeliveryCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	drv := testAvailableDriver(t)
	dlv := testAssignedDelivery(t, drv)
	cmd, err := commands.NewAdvanceDeliveryCommand(dlv.ID(), delivery.StatusInTransit, "")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, dlv.ID()).Return(dlv, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, delivery.StatusAssigned, dlv.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
