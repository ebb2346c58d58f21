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

func TestRegisterDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	cmd, err := commands.NewRegisterDriverCommand(driverID, "Jane Smith", "+15550101", "bike")
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := driverRepo.Calls[0].Arguments[1].(*driver.Driver)
	assert.Equal(t, driverID, added.ID())
	assert.False(t, added.IsVerified(), "registration does not verify")
	assert.False(t, added.IsAvailable(), "registration does not bring online")
	assert.False(t, added.IsEligible())
	uow.AssertExpectations(t)
}

func TestNewRegisterDriverCommand_MissingFields(t *testing.T) {
	tests := []struct {
		name        string
		driverName  string
		phone       string
		vehicleType string
		wantErr     error
	}{
		{"empty name", "", "+15550101", "bike", commands.ErrDriverNameIsRequired},
		{"empty phone", "Jane Smith", "", "bike", commands.ErrDriverPhoneIsRequired},
		{"empty vehicle type", "Jane Smith", "+15550101", "", commands.ErrVehicleTypeIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewRegisterDriverCommand(kernel.NewUUID(), tt.driverName, tt.phone, tt.vehicleType)

			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
