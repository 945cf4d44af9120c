package domain

import "time"

// Customer is identified by its (Email, Phone) pair: repeat bookings by the
// same contact reuse the same CustomerID.
type Customer struct {
	ID    int64
	Name  string
	Email string
	Phone string
}

// LicenseVerification holds the most recent verification attempt for a
// customer. One row per customer, overwritten on re-verification.
type LicenseVerification struct {
	ID          int64
	CustomerID  int64
	LicenseNo   string
	DateOfBirth time.Time
	RecordedAt  time.Time
}
