package vehicles

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/vehrenweb/rentals/internal/domain"
)

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) ListAvailable(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetByRegistration(ctx context.Context, registration string) (*domain.Vehicle, error) {
	args := m.Called(ctx, registration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) UpdateStatus(ctx context.Context, vehicleID int64, status domain.VehicleStatus) error {
	args := m.Called(ctx, vehicleID, status)
	return args.Error(0)
}

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) ListByState(ctx context.Context, state string) ([]domain.ServiceLocation, error) {
	args := m.Called(ctx, state)
	return args.Get(0).([]domain.ServiceLocation), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockCache) SetVehicles(ctx context.Context, vehicles []domain.Vehicle) error {
	args := m.Called(ctx, vehicles)
	return args.Error(0)
}

func TestVehicleService_ListAvailable_FilterSkipsCache(t *testing.T) {
	repo := &MockVehicleRepository{}
	cache := &MockCache{}
	service := NewVehicleService(repo, nil, cache)
	ctx := context.Background()

	filter := domain.VehicleFilter{FuelType: "Diesel"}
	repo.On("ListAvailable", ctx, filter).
		Return([]domain.Vehicle{{ID: 1, FuelType: "Diesel"}}, nil).Once()

	got, err := service.ListAvailable(ctx, filter)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	cache.AssertNotCalled(t, "GetVehicles", mock.Anything)
	cache.AssertNotCalled(t, "SetVehicles", mock.Anything, mock.Anything)
}

func TestVehicleService_ListAvailable_CacheHit(t *testing.T) {
	repo := &MockVehicleRepository{}
	cache := &MockCache{}
	service := NewVehicleService(repo, nil, cache)
	ctx := context.Background()

	cache.On("GetVehicles", ctx).Return([]domain.Vehicle{{ID: 1}}, nil).Once()

	got, err := service.ListAvailable(ctx, domain.VehicleFilter{})

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	repo.AssertNotCalled(t, "ListAvailable", mock.Anything, mock.Anything)
}

func TestVehicleService_ListAvailable_CacheMissFillsCache(t *testing.T) {
	repo := &MockVehicleRepository{}
	cache := &MockCache{}
	service := NewVehicleService(repo, nil, cache)
	ctx := context.Background()

	listed := []domain.Vehicle{{ID: 1}, {ID: 2}}
	cache.On("GetVehicles", ctx).Return([]domain.Vehicle(nil), nil).Once()
	repo.On("ListAvailable", ctx, domain.VehicleFilter{}).Return(listed, nil).Once()
	cache.On("SetVehicles", ctx, listed).Return(nil).Once()

	got, err := service.ListAvailable(ctx, domain.VehicleFilter{})

	assert.NoError(t, err)
	assert.Equal(t, listed, got)
	cache.AssertExpectations(t)
}

func TestVehicleService_ListAvailable_EmptyIsNotError(t *testing.T) {
	repo := &MockVehicleRepository{}
	service := NewVehicleService(repo, nil, nil)
	ctx := context.Background()

	filter := domain.VehicleFilter{VehicleType: "Truck"}
	repo.On("ListAvailable", ctx, filter).Return([]domain.Vehicle{}, nil).Once()

	got, err := service.ListAvailable(ctx, filter)

	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestVehicleService_ListAvailable_RepoError(t *testing.T) {
	repo := &MockVehicleRepository{}
	service := NewVehicleService(repo, nil, nil)
	ctx := context.Background()

	repo.On("ListAvailable", ctx, domain.VehicleFilter{}).
		Return([]domain.Vehicle(nil), errors.New("db down")).Once()

	got, err := service.ListAvailable(ctx, domain.VehicleFilter{})

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestVehicleService_Locations_EmptyState(t *testing.T) {
	service := NewVehicleService(&MockVehicleRepository{}, &MockLocationRepository{}, nil)

	got, err := service.Locations(context.Background(), "")

	assert.Nil(t, got)
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}
