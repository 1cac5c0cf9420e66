package mail

import "context"

// Mailer sends a single transactional email.
type Mailer interface {
	Send(ctx context.Context, toAddress, subject, textBody, htmlBody string) error
}
