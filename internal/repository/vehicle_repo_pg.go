package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vehrenweb/rentals/internal/domain"
)

type VehicleRepository interface {
	ListAvailable(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error)
	GetByRegistration(ctx context.Context, registration string) (*domain.Vehicle, error)
	UpdateStatus(ctx context.Context, vehicleID int64, status domain.VehicleStatus) error
}

type PGVehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) VehicleRepository {
	return &PGVehicleRepository{db: db}
}

const vehicleColumns = `vehicle_id, registration_number, make, model, year, vehicle_type, fuel_type, transmission, seats, price_per_day, status, image_url`

func (r *PGVehicleRepository) ListAvailable(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	sql, params := buildVehicleQuery(filter)

	rows, err := queryable(ctx, r.db).Query(ctx, sql, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]domain.Vehicle, 0)
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.RegistrationNumber, &v.Make, &v.Model, &v.Year, &v.VehicleType, &v.FuelType, &v.Transmission, &v.Seats, &v.PricePerDay, &v.Status, &v.ImageURL); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// buildVehicleQuery assembles the filtered listing query. PriceRange accepts
// "min-max" (inclusive) or "N+" (strictly above N); malformed ranges are
// ignored rather than rejected.
func buildVehicleQuery(filter domain.VehicleFilter) (string, []any) {
	sql := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE status = 'Available'`
	params := make([]any, 0, 4)

	if filter.FuelType != "" {
		params = append(params, filter.FuelType)
		sql += fmt.Sprintf(" AND fuel_type = $%d", len(params))
	}
	if filter.Transmission != "" {
		params = append(params, filter.Transmission)
		sql += fmt.Sprintf(" AND transmission = $%d", len(params))
	}
	if filter.VehicleType != "" {
		params = append(params, filter.VehicleType)
		sql += fmt.Sprintf(" AND vehicle_type = $%d", len(params))
	}
	if filter.PriceRange != "" {
		if floor, ok := strings.CutSuffix(filter.PriceRange, "+"); ok {
			if min, err := strconv.ParseInt(floor, 10, 64); err == nil {
				params = append(params, min)
				sql += fmt.Sprintf(" AND price_per_day > $%d", len(params))
			}
		} else if lo, hi, ok := strings.Cut(filter.PriceRange, "-"); ok {
			min, errLo := strconv.ParseInt(lo, 10, 64)
			max, errHi := strconv.ParseInt(hi, 10, 64)
			if errLo == nil && errHi == nil {
				params = append(params, min, max)
				sql += fmt.Sprintf(" AND price_per_day BETWEEN $%d AND $%d", len(params)-1, len(params))
			}
		}
	}

	sql += " ORDER BY price_per_day, registration_number"
	return sql, params
}

func (r *PGVehicleRepository) GetByRegistration(ctx context.Context, registration string) (*domain.Vehicle, error) {
	row := queryable(ctx, r.db).QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE registration_number=$1`, registration)
	var v domain.Vehicle
	if err := row.Scan(&v.ID, &v.RegistrationNumber, &v.Make, &v.Model, &v.Year, &v.VehicleType, &v.FuelType, &v.Transmission, &v.Seats, &v.PricePerDay, &v.Status, &v.ImageURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "vehicle"}
		}
		return nil, err
	}
	return &v, nil
}

func (r *PGVehicleRepository) UpdateStatus(ctx context.Context, vehicleID int64, status domain.VehicleStatus) error {
	cmd, err := queryable(ctx, r.db).Exec(ctx, `UPDATE vehicles SET status=$1 WHERE vehicle_id=$2`, status, vehicleID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "vehicle"}
	}
	return nil
}

var _ VehicleRepository = (*PGVehicleRepository)(nil)
