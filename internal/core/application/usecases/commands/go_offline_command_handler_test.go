package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGoOfflineCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testDriver := makeEligibleDriver(t)
	cmd, err := commands.NewGoOfflineCommand(testDriver.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGoOfflineCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, testDriver.IsAvailable())
	uow.AssertExpectations(t)
}

func TestGoOfflineCommandHandler_Handle_EngagedDriverStaysOnline(t *testing.T) {
	ctx := t.Context()

	testDriver := makeEngagedDriver(t, kernel.NewUUID())
	cmd, err := commands.NewGoOfflineCommand(testDriver.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGoOfflineCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, driver.ErrDriverBusy)
	driverRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
