package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vehrenweb/rentals/internal/domain"
)

type CustomerRepository interface {
	Upsert(ctx context.Context, customer *domain.Customer) (int64, error)
	Exists(ctx context.Context, customerID int64) (bool, error)
	UpsertVerification(ctx context.Context, v *domain.LicenseVerification) (int64, error)
}

type PGCustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) CustomerRepository {
	return &PGCustomerRepository{db: db}
}

// Upsert inserts the customer or, when the (email, phone) pair already exists,
// refreshes the name and returns the existing id. Re-submission by the same
// contact never creates a duplicate row.
func (r *PGCustomerRepository) Upsert(ctx context.Context, customer *domain.Customer) (int64, error) {
	row := queryable(ctx, r.db).QueryRow(ctx, `INSERT INTO customers (name, email, phone)
		VALUES ($1, $2, $3)
		ON CONFLICT (email, phone) DO UPDATE SET name = EXCLUDED.name
		RETURNING customer_id`, customer.Name, customer.Email, customer.Phone)
	if err := row.Scan(&customer.ID); err != nil {
		return 0, err
	}
	return customer.ID, nil
}

func (r *PGCustomerRepository) Exists(ctx context.Context, customerID int64) (bool, error) {
	var exists bool
	err := queryable(ctx, r.db).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE customer_id=$1)`, customerID).Scan(&exists)
	return exists, err
}

func (r *PGCustomerRepository) UpsertVerification(ctx context.Context, v *domain.LicenseVerification) (int64, error) {
	row := queryable(ctx, r.db).QueryRow(ctx, `INSERT INTO customer_verifications (customer_id, license_no, date_of_birth, recorded_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (customer_id) DO UPDATE SET
			license_no = EXCLUDED.license_no,
			date_of_birth = EXCLUDED.date_of_birth,
			recorded_at = now()
		RETURNING verification_id`, v.CustomerID, v.LicenseNo, v.DateOfBirth)
	if err := row.Scan(&v.ID); err != nil {
		return 0, err
	}
	return v.ID, nil
}

var _ CustomerRepository = (*PGCustomerRepository)(nil)
