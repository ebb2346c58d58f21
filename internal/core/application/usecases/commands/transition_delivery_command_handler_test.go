package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransitionDeliveryCommandHandler_Handle_ForwardStep(t *testing.T) {
	ctx := t.Context()

	testDriver := makeEligibleDriver(t)
	testDelivery := makeDelivery(t)
	require.NoError(t, testDelivery.AssignDriver(testDriver.ID()))

	cmd, err := commands.NewTransitionDeliveryCommand(testDelivery.ID(), delivery.InTransit)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	handler := commands.NewTransitionDeliveryCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.InTransit, testDelivery.Status())
	require.Len(t, publisher.events, 1)
	assert.Equal(t, "IN_TRANSIT", publisher.events[0].Status)
	uow.AssertExpectations(t)
}

func TestTransitionDeliveryCommandHandler_Handle_CancelReleasesDriverAndMirrorsOrder(t *testing.T) {
	ctx := t.Context()

	testDelivery := makeDelivery(t)
	testDriver := makeEngagedDriver(t, testDelivery.ID())
	require.NoError(t, testDelivery.AssignDriver(testDriver.ID()))

	linkedOrder := makeConfirmedOrder(t, testDelivery.OrderID())

	cmd, err := commands.NewTransitionDeliveryCommand(testDelivery.ID(), delivery.Cancelled)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetForUpdate", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testDelivery.OrderID()).Return(linkedOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionDeliveryCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Cancelled, testDelivery.Status())
	assert.Nil(t, testDelivery.DriverID())
	assert.True(t, testDriver.IsAvailable())
	assert.Nil(t, testDriver.CurrentDeliveryID())
	assert.Equal(t, order.StatusCancelled, linkedOrder.Status())
	uow.AssertExpectations(t)
}

func TestTransitionDeliveryCommandHandler_Handle_MissingOrderIsTolerated(t *testing.T) {
	ctx := t.Context()

	testDelivery := makeDelivery(t)

	cmd, err := commands.NewTransitionDeliveryCommand(testDelivery.ID(), delivery.Failed)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testDelivery.OrderID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionDeliveryCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Failed, testDelivery.Status())
}

func TestTransitionDeliveryCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()

	testDelivery := makeDelivery(t) // still PROCESSING

	cmd, err := commands.NewTransitionDeliveryCommand(testDelivery.ID(), delivery.Delivered)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionDeliveryCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	deliveryRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestTransitionDeliveryCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewTransitionDeliveryCommand(deliveryID, delivery.InTransit)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", ctx, deliveryID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionDeliveryCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestTransitionDeliveryCommandHandler_Handle_SameStatusIsIdempotent(t *testing.T) {
	ctx := t.Context()

	testDelivery := makeDelivery(t)

	cmd, err := commands.NewTransitionDeliveryCommand(testDelivery.ID(), delivery.Processing)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionDeliveryCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Processing, testDelivery.Status())
}
