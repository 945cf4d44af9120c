package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vehrenweb/rentals/internal/domain"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment *domain.PaymentRecord) error
}

type PGPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) PaymentRepository {
	return &PGPaymentRepository{db: db}
}

// Insert appends one payment row. A repeated payment_id is a conflict; rows
// are never updated or deleted.
func (r *PGPaymentRepository) Insert(ctx context.Context, payment *domain.PaymentRecord) error {
	_, err := queryable(ctx, r.db).Exec(ctx, `INSERT INTO payments (payment_id, booking_id, amount, payment_date, payment_method, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		payment.PaymentID, payment.BookingID, payment.Amount, payment.PaymentDate, payment.Method, payment.Status)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return &domain.ConflictError{Message: "Duplicate payment ID"}
		}
		return err
	}
	return nil
}

var _ PaymentRepository = (*PGPaymentRepository)(nil)
