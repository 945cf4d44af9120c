package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vehrenweb/rentals/internal/domain"
)

type LocationRepository interface {
	ListByState(ctx context.Context, state string) ([]domain.ServiceLocation, error)
}

type PGLocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) LocationRepository {
	return &PGLocationRepository{db: db}
}

func (r *PGLocationRepository) ListByState(ctx context.Context, state string) ([]domain.ServiceLocation, error) {
	rows, err := queryable(ctx, r.db).Query(ctx, `SELECT state, location_name, location_type FROM service_locations WHERE state=$1 ORDER BY location_name`, state)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]domain.ServiceLocation, 0)
	for rows.Next() {
		var l domain.ServiceLocation
		if err := rows.Scan(&l.State, &l.LocationName, &l.LocationType); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

var _ LocationRepository = (*PGLocationRepository)(nil)
