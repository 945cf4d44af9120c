package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentals_bookings_created_total",
		Help: "Number of bookings created",
	})
	BookingsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentals_bookings_completed_total",
		Help: "Number of bookings completed",
	})
	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentals_bookings_cancelled_total",
		Help: "Number of bookings cancelled",
	})
	PaymentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentals_payments_recorded_total",
		Help: "Number of payment records accepted",
	})
)
