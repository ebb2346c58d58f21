package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDriverRepository is a mock implementation of ports.DriverRepository.
type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllEligible(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func TestFindNearestDriverQueryHandler_ReturnsClosestDriver(t *testing.T) {
	destination := [2]float64{45.4642, 9.1900}

	near := makeLocatedDriver(t, "Anna Bianchi", 45.4650, 9.1900)
	far := makeLocatedDriver(t, "Bruno Conti", 45.5642, 9.1900)

	repo := new(MockDriverRepository)
	repo.On("GetAllEligible", mock.Anything).Return([]*driver.Driver{far, near}, nil).Once()

	handler := queries.NewFindNearestDriverQueryHandler(repo)

	query, err := queries.NewFindNearestDriverQuery(destination[0], destination[1])
	require.NoError(t, err)

	response, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, near.ID(), response.DriverID)
	assert.Equal(t, "Anna Bianchi", response.Name)
	// 0.0008 degrees of latitude is roughly 89 meters.
	assert.InDelta(t, 89, response.DistanceMeters, 5)

	repo.AssertExpectations(t)
}

func TestFindNearestDriverQueryHandler_NoEligibleDrivers_ReturnsNoDriverAvailable(t *testing.T) {
	repo := new(MockDriverRepository)
	repo.On("GetAllEligible", mock.Anything).Return([]*driver.Driver{}, nil).Once()

	handler := queries.NewFindNearestDriverQueryHandler(repo)

	query, err := queries.NewFindNearestDriverQuery(45.4642, 9.1900)
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), query)
	require.ErrorIs(t, err, services.ErrNoDriverAvailable)

	repo.AssertExpectations(t)
}

func TestFindNearestDriverQueryHandler_RepositoryError_Propagates(t *testing.T) {
	repoErr := errors.New("connection refused")

	repo := new(MockDriverRepository)
	repo.On("GetAllEligible", mock.Anything).Return(nil, repoErr).Once()

	handler := queries.NewFindNearestDriverQueryHandler(repo)

	query, err := queries.NewFindNearestDriverQuery(45.4642, 9.1900)
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), query)
	require.ErrorIs(t, err, repoErr)

	repo.AssertExpectations(t)
}

// makeLocatedDriver builds an eligible driver with one accepted fix at the
// given position.
func makeLocatedDriver(t *testing.T, name string, latitude float64, longitude float64) *driver.Driver {
	t.Helper()

	located, err := driver.NewDriver(kernel.NewUUID(), name, "+393331234567", "scooter")
	require.NoError(t, err)
	located.Verify()
	located.GoOnline()

	position, err := kernel.NewGeoPoint(latitude, longitude)
	require.NoError(t, err)

	fix, err := driver.NewLocationFix(position, nil, nil, nil, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, located.RecordFix(fix))

	return located
}
