package email

import (
	"context"
	"fmt"

	"github.com/vehrenweb/rentals/internal/kafka"
)

// Sender is the simulated notification channel: it writes the receipt line to
// stdout instead of talking to a mail gateway.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("notify customer %d: booking %d is %s (total %d for %d days)\n",
		event.CustomerID, event.BookingID, event.Status, event.TotalAmount, event.RentalDays)
	return nil
}
