package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vehrenweb/rentals/internal/domain"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *domain.Booking) error
	Get(ctx context.Context, bookingID int64) (*domain.Booking, error)
	GetForUpdate(ctx context.Context, bookingID int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `booking_id, customer_id, vehicle_id, pickup_state, pickup_place, dropoff_state, dropoff_place, pickup_date, dropoff_date, rental_days, total_amount, status, payment_status, created_at, updated_at`

func (r *PGBookingRepository) Insert(ctx context.Context, booking *domain.Booking) error {
	row := queryable(ctx, r.db).QueryRow(ctx, `INSERT INTO bookings (
			customer_id, vehicle_id,
			pickup_state, pickup_place, dropoff_state, dropoff_place,
			pickup_date, dropoff_date, rental_days, total_amount,
			status, payment_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING booking_id, created_at, updated_at`,
		booking.CustomerID, booking.VehicleID,
		booking.PickupState, booking.PickupPlace, booking.DropoffState, booking.DropoffPlace,
		booking.PickupDate, booking.DropoffDate, booking.RentalDays, booking.TotalAmount,
		booking.Status, booking.PaymentStatus)
	return row.Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *PGBookingRepository) Get(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return r.get(ctx, bookingID, "")
}

// GetForUpdate locks the booking row for the rest of the surrounding
// transaction, serializing concurrent completion attempts on the same booking.
func (r *PGBookingRepository) GetForUpdate(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return r.get(ctx, bookingID, " FOR UPDATE")
}

func (r *PGBookingRepository) get(ctx context.Context, bookingID int64, suffix string) (*domain.Booking, error) {
	row := queryable(ctx, r.db).QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE booking_id=$1`+suffix, bookingID)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.CustomerID, &b.VehicleID, &b.PickupState, &b.PickupPlace, &b.DropoffState, &b.DropoffPlace, &b.PickupDate, &b.DropoffDate, &b.RentalDays, &b.TotalAmount, &b.Status, &b.PaymentStatus, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "booking"}
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	cmd, err := queryable(ctx, r.db).Exec(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE booking_id=$2`, status, bookingID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "booking"}
	}
	return nil
}

func (r *PGBookingRepository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	var n int64
	err := queryable(ctx, r.db).QueryRow(ctx, `SELECT count(*) FROM bookings WHERE status=$1`, status).Scan(&n)
	return n, err
}

var _ BookingRepository = (*PGBookingRepository)(nil)
