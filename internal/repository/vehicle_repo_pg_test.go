package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/vehrenweb/rentals/internal/domain"
)

func TestNewVehicleRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewVehicleRepository(pool)
	assert.NotNil(t, repo)
}

func TestBuildVehicleQuery_NoFilter(t *testing.T) {
	sql, params := buildVehicleQuery(domain.VehicleFilter{})
	assert.Contains(t, sql, "status = 'Available'")
	assert.NotContains(t, sql, "fuel_type =")
	assert.Empty(t, params)
}

func TestBuildVehicleQuery_AllFilters(t *testing.T) {
	sql, params := buildVehicleQuery(domain.VehicleFilter{
		FuelType:     "Petrol",
		Transmission: "Manual",
		VehicleType:  "SUV",
		PriceRange:   "1000-2000",
	})
	assert.Contains(t, sql, "fuel_type = $1")
	assert.Contains(t, sql, "transmission = $2")
	assert.Contains(t, sql, "vehicle_type = $3")
	assert.Contains(t, sql, "price_per_day BETWEEN $4 AND $5")
	assert.Equal(t, []any{"Petrol", "Manual", "SUV", int64(1000), int64(2000)}, params)
}

func TestBuildVehicleQuery_OpenEndedPrice(t *testing.T) {
	sql, params := buildVehicleQuery(domain.VehicleFilter{PriceRange: "5000+"})
	assert.Contains(t, sql, "price_per_day > $1")
	assert.Equal(t, []any{int64(5000)}, params)
}

func TestBuildVehicleQuery_MalformedPriceIgnored(t *testing.T) {
	sql, params := buildVehicleQuery(domain.VehicleFilter{PriceRange: "cheap"})
	assert.NotContains(t, sql, "price_per_day >")
	assert.NotContains(t, sql, "BETWEEN")
	assert.Empty(t, params)
}
