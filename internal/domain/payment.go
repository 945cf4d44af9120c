package domain

import "time"

// PaymentRecord is an append-only log entry of a completed payment. PaymentID
// is generated by the client-side payment step; a duplicate id is rejected.
type PaymentRecord struct {
	PaymentID   string
	BookingID   int64
	Amount      int64
	PaymentDate time.Time
	Method      string
	Status      string
}
