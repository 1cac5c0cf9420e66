package notification

import (
	"context"

	"salonflow/models"
)

// SendOutcome is the result of one delivery attempt to one recipient.
type SendOutcome struct {
	Channel   string // "sms", "email" or "provider-sms"
	Recipient string
	Err       error
}

// OK reports whether the attempt succeeded.
func (o SendOutcome) OK() bool { return o.Err == nil }

// Dispatcher fans a newly created booking request out to every enabled
// channel of the salon. Every attempt is isolated: one failing recipient
// never blocks the rest, and no failure propagates to the caller.
type Dispatcher interface {
	DispatchBookingAlerts(ctx context.Context, salon *models.Salon, req *models.BookingRequest) []SendOutcome
}
