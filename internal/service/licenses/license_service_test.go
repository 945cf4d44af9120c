package licenses

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/vehrenweb/rentals/internal/domain"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Upsert(ctx context.Context, customer *domain.Customer) (int64, error) {
	args := m.Called(ctx, customer)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Exists(ctx context.Context, customerID int64) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) UpsertVerification(ctx context.Context, v *domain.LicenseVerification) (int64, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(int64), args.Error(1)
}

func TestLicenseService_Verify_Success(t *testing.T) {
	repo := &MockCustomerRepository{}
	service := NewLicenseService(repo)
	ctx := context.Background()

	repo.On("Exists", ctx, int64(7)).Return(true, nil).Once()
	repo.On("UpsertVerification", ctx, mock.AnythingOfType("*domain.LicenseVerification")).Run(func(args mock.Arguments) {
		v := args.Get(1).(*domain.LicenseVerification)
		assert.Equal(t, int64(7), v.CustomerID)
		assert.Equal(t, "DL-0420110012345", v.LicenseNo)
		assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), v.DateOfBirth)
	}).Return(int64(11), nil).Once()

	id, err := service.Verify(ctx, VerifyInput{
		CustomerID:  7,
		LicenseNo:   "DL-0420110012345",
		DateOfBirth: "1990-05-17",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
	repo.AssertExpectations(t)
}

func TestLicenseService_Verify_MissingInput(t *testing.T) {
	service := NewLicenseService(&MockCustomerRepository{})

	_, err := service.Verify(context.Background(), VerifyInput{LicenseNo: "DL-1"})

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestLicenseService_Verify_UnknownCustomer(t *testing.T) {
	repo := &MockCustomerRepository{}
	service := NewLicenseService(repo)
	ctx := context.Background()

	repo.On("Exists", ctx, int64(99)).Return(false, nil).Once()

	_, err := service.Verify(ctx, VerifyInput{CustomerID: 99, DateOfBirth: "1990-05-17"})

	var nfErr *domain.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
	repo.AssertNotCalled(t, "UpsertVerification", mock.Anything, mock.Anything)
}

func TestLicenseService_Verify_BadDate(t *testing.T) {
	service := NewLicenseService(&MockCustomerRepository{})

	_, err := service.Verify(context.Background(), VerifyInput{CustomerID: 7, DateOfBirth: "17/05/1990"})

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}
