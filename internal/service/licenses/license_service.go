package licenses

import (
	"context"
	"time"

	"github.com/vehrenweb/rentals/internal/domain"
	"github.com/vehrenweb/rentals/internal/repository"
)

type LicenseUseCase interface {
	Verify(ctx context.Context, input VerifyInput) (int64, error)
}

type VerifyInput struct {
	CustomerID  int64  `json:"customerId"`
	LicenseNo   string `json:"licenseNo"`
	DateOfBirth string `json:"dateOfBirth"`
}

type LicenseService struct {
	customers repository.CustomerRepository
}

func NewLicenseService(customers repository.CustomerRepository) *LicenseService {
	return &LicenseService{customers: customers}
}

// Verify records a license-verification attempt for the customer, overwriting
// any previous record. The record is advisory: nothing in the backend gates on
// it.
func (s *LicenseService) Verify(ctx context.Context, input VerifyInput) (int64, error) {
	if input.CustomerID == 0 || input.DateOfBirth == "" {
		return 0, domain.NewValidationError("Customer ID and date of birth are required")
	}

	dob, err := time.Parse("2006-01-02", input.DateOfBirth)
	if err != nil {
		return 0, domain.NewValidationError("Invalid date of birth")
	}

	exists, err := s.customers.Exists(ctx, input.CustomerID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, &domain.NotFoundError{Entity: "customer"}
	}

	verification := &domain.LicenseVerification{
		CustomerID:  input.CustomerID,
		LicenseNo:   input.LicenseNo,
		DateOfBirth: dob,
	}
	return s.customers.UpsertVerification(ctx, verification)
}

var _ LicenseUseCase = (*LicenseService)(nil)
