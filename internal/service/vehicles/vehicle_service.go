package vehicles

import (
	"context"

	"github.com/vehrenweb/rentals/internal/domain"
	"github.com/vehrenweb/rentals/internal/repository"
)

type VehicleUseCase interface {
	ListAvailable(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error)
	Locations(ctx context.Context, state string) ([]domain.ServiceLocation, error)
}

type Cache interface {
	GetVehicles(ctx context.Context) ([]domain.Vehicle, error)
	SetVehicles(ctx context.Context, vehicles []domain.Vehicle) error
}

type VehicleService struct {
	vehicles  repository.VehicleRepository
	locations repository.LocationRepository
	cache     Cache
}

func NewVehicleService(vehicles repository.VehicleRepository, locations repository.LocationRepository, cache Cache) *VehicleService {
	return &VehicleService{vehicles: vehicles, locations: locations, cache: cache}
}

// ListAvailable returns Available vehicles narrowed by the filter. Only the
// unfiltered listing goes through the cache; filtered queries always hit the
// store. An empty result is not an error.
func (s *VehicleService) ListAvailable(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	if filter.IsZero() && s.cache != nil {
		if cached, err := s.cache.GetVehicles(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	vehicles, err := s.vehicles.ListAvailable(ctx, filter)
	if err != nil {
		return nil, err
	}
	if filter.IsZero() && s.cache != nil {
		_ = s.cache.SetVehicles(ctx, vehicles)
	}
	return vehicles, nil
}

func (s *VehicleService) Locations(ctx context.Context, state string) ([]domain.ServiceLocation, error) {
	if state == "" {
		return nil, domain.NewValidationError("State parameter is required")
	}
	return s.locations.ListByState(ctx, state)
}

var _ VehicleUseCase = (*VehicleService)(nil)
