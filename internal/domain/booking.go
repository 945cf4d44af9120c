package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

type Booking struct {
	ID            int64
	CustomerID    int64
	VehicleID     int64
	PickupState   string
	PickupPlace   string
	DropoffState  string
	DropoffPlace  string
	PickupDate    time.Time
	DropoffDate   time.Time
	RentalDays    int
	TotalAmount   int64
	Status        BookingStatus
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BookingDraft is the server-held counterpart of the booking form the client
// assembles before submitting. Stored in redis under a server-issued token.
type BookingDraft struct {
	Token         string    `json:"token"`
	VehicleID     string    `json:"vehicle_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	PickupState   string    `json:"pickup_state"`
	PickupPlace   string    `json:"pickup_place"`
	DropoffState  string    `json:"dropoff_state"`
	DropoffPlace  string    `json:"dropoff_place"`
	PickupDate    time.Time `json:"pickup_date"`
	DropoffDate   time.Time `json:"dropoff_date"`
	CreatedAt     time.Time `json:"created_at"`
}
