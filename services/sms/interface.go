package sms

import "context"

// Sender sends a single SMS to an E.164 phone number.
type Sender interface {
	Send(ctx context.Context, toPhone, message string) error
}
