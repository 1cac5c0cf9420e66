package usage

import (
	"context"
	"fmt"
	"time"

	salonRepo "salonflow/database/repository/salon"
	usageRepo "salonflow/database/repository/usage"
	"salonflow/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/usagerecord"
	"go.uber.org/zap"
)

// Tracker records billable usage units against a salon.
type Tracker interface {
	// Record stores one usage unit of the given kind, tagged with the
	// record that generated it, and returns the usage record id.
	Record(ctx context.Context, salonID, kind, actor, referenceID string) (string, error)
}

// DefaultTracker writes usage records to MongoDB and mirrors each unit to
// the salon's Stripe metered subscription item when one is configured.
type DefaultTracker struct {
	Repo   usageRepo.UsageRecordRepository
	Salons salonRepo.SalonRepository
	Logger *zap.Logger
}

func (t *DefaultTracker) logger() *zap.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return zap.L()
}

// Record stores the usage unit. The Stripe mirror is best-effort: a
// reporting failure is logged and the local record still counts.
func (t *DefaultTracker) Record(ctx context.Context, salonID, kind, actor, referenceID string) (string, error) {
	record := &models.UsageRecord{
		SalonID:     salonID,
		Kind:        kind,
		Actor:       actor,
		ReferenceID: referenceID,
		Quantity:    1,
	}
	id, err := t.Repo.Create(ctx, record)
	if err != nil {
		return "", fmt.Errorf("failed to record %s usage for salon %s: %w", kind, salonID, err)
	}

	t.reportToStripe(ctx, salonID)
	return id, nil
}

func (t *DefaultTracker) reportToStripe(ctx context.Context, salonID string) {
	salon, err := t.Salons.GetByID(ctx, salonID)
	if err != nil {
		t.logger().Warn("usage: could not load salon for stripe reporting",
			zap.String("salonId", salonID), zap.Error(err))
		return
	}
	itemID := salon.Billing.StripeSubscriptionItemID
	if itemID == "" {
		return
	}

	params := &stripe.UsageRecordParams{
		SubscriptionItem: stripe.String(itemID),
		Quantity:         stripe.Int64(1),
		Timestamp:        stripe.Int64(time.Now().Unix()),
		Action:           stripe.String("increment"),
	}
	if _, err := usagerecord.New(params); err != nil {
		t.logger().Warn("usage: stripe usage report failed",
			zap.String("salonId", salonID),
			zap.String("subscriptionItem", itemID),
			zap.Error(err))
	}
}
