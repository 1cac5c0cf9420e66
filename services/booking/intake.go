package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "salonflow/database/repository/bookingrequest"
	salonRepo "salonflow/database/repository/salon"
	"salonflow/models"
	"salonflow/services/notification"
	"salonflow/services/salon"
	"salonflow/services/tasks"
	"salonflow/services/usage"

	"go.uber.org/zap"
)

// waitlistFollowUpDelay is how long after intake the waitlist follow-up fires.
const waitlistFollowUpDelay = 24 * time.Hour

// IntakeService accepts a client's appointment request and runs the whole
// intake pipeline: validate, resolve the salon, persist, meter usage, and
// fan out notifications.
type IntakeService interface {
	SubmitRequest(ctx context.Context, in IntakeInput) (string, error)
}

// DefaultIntakeService is the production IntakeService. Persistence is the
// only step whose failure aborts the request; metering, waitlist
// scheduling, and notification dispatch are best-effort.
type DefaultIntakeService struct {
	Directory  salon.Directory
	Requests   bookingRepo.BookingRequestRepository
	Usage      usage.Tracker
	Dispatcher notification.Dispatcher
	Waitlist   tasks.Scheduler
	Logger     *zap.Logger
}

func (s *DefaultIntakeService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

// SubmitRequest runs the intake pipeline and returns the new booking
// request id.
func (s *DefaultIntakeService) SubmitRequest(ctx context.Context, in IntakeInput) (string, error) {
	if err := ValidateIntake(in); err != nil {
		return "", err
	}

	resolved, err := s.Directory.GetBySlug(ctx, in.SalonSlug)
	if err != nil {
		if errors.Is(err, salonRepo.ErrNotFound) {
			return "", ErrSalonNotFound
		}
		return "", fmt.Errorf("failed to resolve salon %q: %w", in.SalonSlug, err)
	}

	req := buildBookingRequest(in, resolved.ID)
	id, err := s.Requests.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to persist booking request: %w", err)
	}
	req.ID = id

	// Metering is non-fatal: the booking is already accepted and must not
	// be rolled back because billing bookkeeping failed.
	if s.Usage != nil {
		if _, err := s.Usage.Record(ctx, resolved.ID, models.UsageKindBooking, models.UsageActorSystem, id); err != nil {
			s.logger().Warn("intake: usage metering failed",
				zap.String("salonId", resolved.ID),
				zap.String("requestId", id),
				zap.Error(err))
		}
	}

	if in.WaitlistOptIn && s.Waitlist != nil {
		if err := s.Waitlist.ScheduleWaitlistFollowUp(id, resolved.ID, time.Now().Add(waitlistFollowUpDelay)); err != nil {
			s.logger().Warn("intake: failed to schedule waitlist follow-up",
				zap.String("requestId", id),
				zap.Error(err))
		}
	}

	if s.Dispatcher != nil {
		outcomes := s.Dispatcher.DispatchBookingAlerts(ctx, resolved, req)
		failed := 0
		for _, o := range outcomes {
			if !o.OK() {
				failed++
			}
		}
		s.logger().Info("intake: booking alerts dispatched",
			zap.String("requestId", id),
			zap.Int("attempted", len(outcomes)),
			zap.Int("failed", failed))
	}

	return id, nil
}

// buildBookingRequest normalizes a validated intake payload into the
// persisted document.
func buildBookingRequest(in IntakeInput, salonID string) *models.BookingRequest {
	stylist := in.Stylist
	if stylist == "" {
		stylist = models.NoStylistPreference
	}

	status := models.StatusPending
	if in.SubmittedByProvider {
		status = models.StatusProviderRequested
	}

	req := &models.BookingRequest{
		SalonID:            salonID,
		Name:               in.Name,
		Email:              in.Email,
		Phone:              in.Phone,
		Service:            in.Service,
		StylistPreference:  stylist,
		DateTimePreference: in.DateTimePreference,
		Notes:              in.Notes,
		WaitlistOptIn:      in.WaitlistOptIn,
		Status:             status,
	}
	if in.ProviderID != "" {
		req.ProviderID = in.ProviderID
	}
	if in.ProviderName != "" {
		req.ProviderName = in.ProviderName
	}
	return req
}
