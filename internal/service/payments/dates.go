package payments

import (
	"fmt"
	"time"
)

var paymentDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parsePaymentDate accepts the date shapes the payment page has historically
// sent.
func parsePaymentDate(value string) (time.Time, error) {
	for _, layout := range paymentDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized payment date %q", value)
}
