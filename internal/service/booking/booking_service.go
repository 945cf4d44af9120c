package booking

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/vehrenweb/rentals/internal/domain"
	"github.com/vehrenweb/rentals/internal/kafka"
	"github.com/vehrenweb/rentals/internal/metrics"
	"github.com/vehrenweb/rentals/internal/repository"
)

type BookingUseCase interface {
	Create(ctx context.Context, input CreateBookingInput) (*CreateBookingResult, error)
	Complete(ctx context.Context, bookingID int64) (*CompleteResult, error)
	Cancel(ctx context.Context, bookingID int64) (int64, error)
	CreateDraft(ctx context.Context, draft domain.BookingDraft) (string, error)
	GetDraft(ctx context.Context, token string) (*domain.BookingDraft, error)
}

// Transactor runs a function inside one storage transaction; every repository
// call made from the function joins it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Cache interface {
	SaveDraft(ctx context.Context, draft domain.BookingDraft, ttl time.Duration) error
	GetDraft(ctx context.Context, token string) (*domain.BookingDraft, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	tx                 Transactor
	bookings           repository.BookingRepository
	vehicles           repository.VehicleRepository
	customers          repository.CustomerRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	draftTTL           time.Duration
}

type CreateBookingInput struct {
	VehicleID     string    `json:"vehicleId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	PickupState   string    `json:"pickupState"`
	PickupPlace   string    `json:"pickupPlace"`
	DropoffState  string    `json:"dropoffState"`
	DropoffPlace  string    `json:"dropoffPlace"`
	PickupDate    time.Time `json:"pickupDate"`
	DropoffDate   time.Time `json:"dropoffDate"`
	PaymentMethod string    `json:"paymentMethod"`
}

type CreateBookingResult struct {
	BookingID   int64
	CustomerID  int64
	TotalAmount int64
	RentalDays  int
}

type CompleteResult struct {
	BookingID int64
	VehicleID int64
	NewStatus domain.BookingStatus
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	tx Transactor,
	bookings repository.BookingRepository,
	vehicles repository.VehicleRepository,
	customers repository.CustomerRepository,
	cache Cache,
	producer Producer,
	bookingTopic string,
	draftTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		tx:           tx,
		bookings:     bookings,
		vehicles:     vehicles,
		customers:    customers,
		cache:        cache,
		producer:     producer,
		bookingTopic: bookingTopic,
		draftTTL:     draftTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (in CreateBookingInput) missingFields() []string {
	var missing []string
	check := func(name, value string) {
		if value == "" {
			missing = append(missing, name)
		}
	}
	check("vehicleId", in.VehicleID)
	check("customerName", in.CustomerName)
	check("customerEmail", in.CustomerEmail)
	check("customerPhone", in.CustomerPhone)
	check("pickupState", in.PickupState)
	check("pickupPlace", in.PickupPlace)
	check("dropoffState", in.DropoffState)
	check("dropoffPlace", in.DropoffPlace)
	if in.PickupDate.IsZero() {
		missing = append(missing, "pickupDate")
	}
	if in.DropoffDate.IsZero() {
		missing = append(missing, "dropoffDate")
	}
	check("paymentMethod", in.PaymentMethod)
	return missing
}

// Create upserts the customer, prices the rental and inserts the booking in
// one transaction. The vehicle's status is not touched here: it flips only on
// Complete/Cancel.
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*CreateBookingResult, error) {
	if missing := input.missingFields(); len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	var result CreateBookingResult
	var booking *domain.Booking
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		customerID, err := s.customers.Upsert(ctx, &domain.Customer{
			Name:  input.CustomerName,
			Email: input.CustomerEmail,
			Phone: input.CustomerPhone,
		})
		if err != nil {
			return err
		}

		vehicle, err := s.vehicles.GetByRegistration(ctx, input.VehicleID)
		if err != nil {
			return err
		}

		if !input.DropoffDate.After(input.PickupDate) {
			return domain.NewValidationError("Dropoff date must be after pickup date")
		}

		days := domain.RentalDays(input.PickupDate, input.DropoffDate)
		total := domain.TotalAmount(input.PickupDate, input.DropoffDate, vehicle.PricePerDay)

		booking = &domain.Booking{
			CustomerID:    customerID,
			VehicleID:     vehicle.ID,
			PickupState:   input.PickupState,
			PickupPlace:   input.PickupPlace,
			DropoffState:  input.DropoffState,
			DropoffPlace:  input.DropoffPlace,
			PickupDate:    input.PickupDate,
			DropoffDate:   input.DropoffDate,
			RentalDays:    days,
			TotalAmount:   total,
			Status:        domain.BookingStatusPending,
			PaymentStatus: domain.PaymentStatusPending,
		}
		if err := s.bookings.Insert(ctx, booking); err != nil {
			return err
		}

		result = CreateBookingResult{
			BookingID:   booking.ID,
			CustomerID:  customerID,
			TotalAmount: total,
			RentalDays:  days,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.BookingsCreated.Inc()
	s.publish(ctx, "booking_created", booking)
	return &result, nil
}

// Complete marks the booking Completed and its vehicle Unavailable. The
// booking row is locked for the transaction so two concurrent completions
// cannot both succeed.
func (s *BookingService) Complete(ctx context.Context, bookingID int64) (*CompleteResult, error) {
	var result CompleteResult
	var booking *domain.Booking
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.bookings.GetForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if current.Status == domain.BookingStatusCompleted {
			return &domain.ConflictError{Message: "Booking is already completed"}
		}

		if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingStatusCompleted); err != nil {
			return err
		}
		if err := s.vehicles.UpdateStatus(ctx, current.VehicleID, domain.VehicleStatusUnavailable); err != nil {
			return err
		}

		current.Status = domain.BookingStatusCompleted
		booking = current
		result = CompleteResult{
			BookingID: bookingID,
			VehicleID: current.VehicleID,
			NewStatus: domain.BookingStatusCompleted,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.BookingsCompleted.Inc()
	s.publish(ctx, "booking_completed", booking)
	return &result, nil
}

// Cancel marks the booking Cancelled and flips its vehicle back to Available.
// The vehicle is resolved from the booking row, never from client input.
// There is no precondition on the current status: cancelling an already
// cancelled or completed booking succeeds and still releases the vehicle.
func (s *BookingService) Cancel(ctx context.Context, bookingID int64) (int64, error) {
	var booking *domain.Booking
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.bookings.Get(ctx, bookingID)
		if err != nil {
			return err
		}

		if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingStatusCancelled); err != nil {
			return err
		}
		if err := s.vehicles.UpdateStatus(ctx, current.VehicleID, domain.VehicleStatusAvailable); err != nil {
			return err
		}

		current.Status = domain.BookingStatusCancelled
		booking = current
		return nil
	})
	if err != nil {
		return 0, err
	}

	metrics.BookingsCancelled.Inc()
	s.publish(ctx, "booking_cancelled", booking)
	return bookingID, nil
}

// CreateDraft stores the client's in-progress booking form server-side and
// returns the token to hand back to the client.
func (s *BookingService) CreateDraft(ctx context.Context, draft domain.BookingDraft) (string, error) {
	if s.cache == nil {
		return "", domain.NewValidationError("drafts are not enabled")
	}
	draft.Token = uuid.NewString()
	draft.CreatedAt = time.Now()
	if err := s.cache.SaveDraft(ctx, draft, s.draftTTL); err != nil {
		return "", err
	}
	return draft.Token, nil
}

func (s *BookingService) GetDraft(ctx context.Context, token string) (*domain.BookingDraft, error) {
	if s.cache == nil {
		return nil, &domain.NotFoundError{Entity: "draft"}
	}
	draft, err := s.cache.GetDraft(ctx, token)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, &domain.NotFoundError{Entity: "draft"}
	}
	return draft, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" || booking == nil {
		return
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		BookingID:   booking.ID,
		CustomerID:  booking.CustomerID,
		VehicleID:   booking.VehicleID,
		Status:      string(booking.Status),
		TotalAmount: booking.TotalAmount,
		RentalDays:  booking.RentalDays,
		OccurredAt:  time.Now(),
	}
	key := strconv.FormatInt(booking.ID, 10)
	if err := s.producer.Publish(ctx, s.bookingTopic, key, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %d: %v", eventType, booking.ID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for booking %d: %v", eventType, booking.ID, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
