package domain

import (
	"math"
	"time"
)

// RentalDays returns the number of billable days for a rental interval:
// the ceiling of elapsed hours over 24, never less than one.
func RentalDays(pickup, dropoff time.Time) int {
	days := int(math.Ceil(dropoff.Sub(pickup).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// TotalAmount is RentalDays times the vehicle's daily price. Computed once at
// booking creation and never recomputed.
func TotalAmount(pickup, dropoff time.Time, pricePerDay int64) int64 {
	return int64(RentalDays(pickup, dropoff)) * pricePerDay
}
