package notification

import (
	"context"
	"errors"
	"fmt"

	providerRepo "salonflow/database/repository/provider"
	teamRepo "salonflow/database/repository/team"
	"salonflow/models"
	"salonflow/services/mail"
	"salonflow/services/sms"
	"salonflow/utils"

	"go.uber.org/zap"
)

// Dispatch channels.
const (
	ChannelSMS         = "sms"
	ChannelEmail       = "email"
	ChannelProviderSMS = "provider-sms"
)

// DefaultDispatcher is the production Dispatcher. All collaborators are
// injected; it holds no state between dispatches.
type DefaultDispatcher struct {
	Providers providerRepo.ProviderRepository
	Team      teamRepo.TeamMemberRepository
	SMS       sms.Sender
	Mailer    mail.Mailer

	// DashboardBaseURL is the root of the salon dashboard, used to build
	// the request-management link embedded in alert emails.
	DashboardBaseURL string

	Logger *zap.Logger
}

func (d *DefaultDispatcher) logger() *zap.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return zap.L()
}

// DispatchBookingAlerts runs the three fan-out stages in order: the
// salon's SMS roster, its email roster, then the personal channel of the
// specifically requested provider. The salon-level master switch gates
// the roster stages; the provider stage is gated only by the matched
// provider's own flags.
func (d *DefaultDispatcher) DispatchBookingAlerts(ctx context.Context, salon *models.Salon, req *models.BookingRequest) []SendOutcome {
	var outcomes []SendOutcome

	if salon.NotificationSettings.Enabled {
		outcomes = append(outcomes, d.fanOutSMS(ctx, salon, req)...)
		outcomes = append(outcomes, d.fanOutEmail(ctx, salon, req)...)
	}

	if req.StylistPreference != models.NoStylistPreference {
		outcomes = append(outcomes, d.notifyPreferredProvider(ctx, salon, req)...)
	}

	for _, o := range outcomes {
		if o.Err != nil {
			d.logger().Warn("booking alert delivery failed",
				zap.String("channel", o.Channel),
				zap.String("recipient", o.Recipient),
				zap.String("requestId", req.ID),
				zap.Error(o.Err))
		}
	}
	return outcomes
}

// attemptEach invokes send once per recipient and collects one outcome per
// attempt. A failing recipient never short-circuits the remaining ones.
func attemptEach[R any](channel string, recipients []R, send func(R) (string, error)) []SendOutcome {
	outcomes := make([]SendOutcome, 0, len(recipients))
	for _, r := range recipients {
		recipient, err := send(r)
		outcomes = append(outcomes, SendOutcome{Channel: channel, Recipient: recipient, Err: err})
	}
	return outcomes
}

func (d *DefaultDispatcher) fanOutSMS(ctx context.Context, salon *models.Salon, req *models.BookingRequest) []SendOutcome {
	var enabled []models.SMSRecipient
	for _, r := range salon.NotificationSettings.SMSRecipients {
		if r.Enabled {
			enabled = append(enabled, r)
		}
	}

	message := smsBookingAlert(salon, req)
	return attemptEach(ChannelSMS, enabled, func(r models.SMSRecipient) (string, error) {
		phone, err := utils.FormatPhoneNumber(r.Phone)
		if err != nil {
			return r.Phone, err
		}
		return phone, d.SMS.Send(ctx, phone, message)
	})
}

func (d *DefaultDispatcher) fanOutEmail(ctx context.Context, salon *models.Salon, req *models.BookingRequest) []SendOutcome {
	var enabled []models.EmailRecipient
	for _, r := range salon.NotificationSettings.EmailRecipients {
		if r.Enabled {
			enabled = append(enabled, r)
		}
	}

	subject := fmt.Sprintf("New Booking Request - %s", salon.Name)
	link := fmt.Sprintf("%s/dashboard/requests", d.DashboardBaseURL)
	textBody := emailBookingAlertText(req, link)
	htmlBody := emailBookingAlertHTML(req, link)

	return attemptEach(ChannelEmail, enabled, func(r models.EmailRecipient) (string, error) {
		return r.Email, d.Mailer.Send(ctx, r.Email, subject, textBody, htmlBody)
	})
}

// notifyPreferredProvider handles the provider-specific stage: match the
// free-text stylist preference against the salon's provider roster by
// exact display name (first match wins), and text the linked team member
// when the provider opted into notifications.
func (d *DefaultDispatcher) notifyPreferredProvider(ctx context.Context, salon *models.Salon, req *models.BookingRequest) []SendOutcome {
	fail := func(recipient string, err error) []SendOutcome {
		return []SendOutcome{{Channel: ChannelProviderSMS, Recipient: recipient, Err: err}}
	}

	providers, err := d.Providers.GetBySalonID(ctx, salon.ID)
	if err != nil {
		return fail(req.StylistPreference, err)
	}

	var matched *models.Provider
	for i := range providers {
		if providers[i].Name == req.StylistPreference {
			matched = &providers[i]
			break
		}
	}
	if matched == nil {
		// Free-text preference with no roster match; nothing to deliver.
		d.logger().Debug("no provider matched stylist preference",
			zap.String("salonId", salon.ID),
			zap.String("preference", req.StylistPreference))
		return nil
	}

	if !matched.ReceiveNotifications || !matched.IsTeamMember {
		return nil
	}

	member, err := d.Team.GetByID(ctx, matched.TeamMemberID)
	if err != nil {
		return fail(matched.Name, err)
	}
	if member.Phone == "" {
		return fail(matched.Name, errors.New("linked team member has no phone on file"))
	}

	phone, err := utils.FormatPhoneNumber(member.Phone)
	if err != nil {
		return fail(matched.Name, err)
	}

	message := providerBookingAlert(matched, req)
	return []SendOutcome{{
		Channel:   ChannelProviderSMS,
		Recipient: phone,
		Err:       d.SMS.Send(ctx, phone, message),
	}}
}
