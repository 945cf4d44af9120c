package payments

import (
	"context"

	"github.com/vehrenweb/rentals/internal/domain"
	"github.com/vehrenweb/rentals/internal/metrics"
	"github.com/vehrenweb/rentals/internal/repository"
)

type PaymentUseCase interface {
	Record(ctx context.Context, input RecordPaymentInput) error
}

type RecordPaymentInput struct {
	PaymentID   string `json:"payment_id"`
	BookingID   int64  `json:"booking_id"`
	Amount      int64  `json:"amount"`
	PaymentDate string `json:"payment_date"`
	Method      string `json:"payment_method"`
}

type PaymentService struct {
	payments repository.PaymentRepository
}

func NewPaymentService(payments repository.PaymentRepository) *PaymentService {
	return &PaymentService{payments: payments}
}

// Record appends one simulated-payment row. The amount is taken as given and
// not reconciled against the booking's total. Duplicate payment ids conflict.
func (s *PaymentService) Record(ctx context.Context, input RecordPaymentInput) error {
	var missing []string
	if input.PaymentID == "" {
		missing = append(missing, "payment_id")
	}
	if input.BookingID == 0 {
		missing = append(missing, "booking_id")
	}
	if input.Amount == 0 {
		missing = append(missing, "amount")
	}
	if input.PaymentDate == "" {
		missing = append(missing, "payment_date")
	}
	if len(missing) > 0 {
		return &domain.ValidationError{Fields: missing}
	}

	paymentDate, err := parsePaymentDate(input.PaymentDate)
	if err != nil {
		return domain.NewValidationError("Invalid payment_date")
	}

	method := input.Method
	if method == "" {
		method = "Online"
	}

	record := &domain.PaymentRecord{
		PaymentID:   input.PaymentID,
		BookingID:   input.BookingID,
		Amount:      input.Amount,
		PaymentDate: paymentDate,
		Method:      method,
		Status:      "completed",
	}
	if err := s.payments.Insert(ctx, record); err != nil {
		return err
	}

	metrics.PaymentsRecorded.Inc()
	return nil
}

var _ PaymentUseCase = (*PaymentService)(nil)
