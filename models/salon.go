package models

import "time"

// SMSRecipient is a single phone number on a salon's notification roster.
type SMSRecipient struct {
	Phone   string `bson:"phone" json:"phone"`
	Label   string `bson:"label,omitempty" json:"label,omitempty"`
	Enabled bool   `bson:"enabled" json:"enabled"`
}

// EmailRecipient is a single address on a salon's notification roster.
type EmailRecipient struct {
	Email   string `bson:"email" json:"email"`
	Label   string `bson:"label,omitempty" json:"label,omitempty"`
	Enabled bool   `bson:"enabled" json:"enabled"`
}

// NotificationSettings carries a salon's booking-alert configuration.
// Either recipient list may be empty or absent; absence means no recipients.
type NotificationSettings struct {
	Enabled         bool             `bson:"enabled" json:"enabled"`
	SMSRecipients   []SMSRecipient   `bson:"smsRecipients,omitempty" json:"smsRecipients,omitempty"`
	EmailRecipients []EmailRecipient `bson:"emailRecipients,omitempty" json:"emailRecipients,omitempty"`
}

// Billing links a salon to its Stripe metered subscription.
type Billing struct {
	StripeCustomerID         string `bson:"stripeCustomerId,omitempty" json:"stripeCustomerId,omitempty"`
	StripeSubscriptionItemID string `bson:"stripeSubscriptionItemId,omitempty" json:"stripeSubscriptionItemId,omitempty"`
}

type Salon struct {
	ID                   string               `bson:"id" json:"id"`
	Slug                 string               `bson:"slug" json:"slug"` // Public booking-page identifier.
	Name                 string               `bson:"name" json:"name"`
	Phone                string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Email                string               `bson:"email,omitempty" json:"email,omitempty"`
	Address              string               `bson:"address,omitempty" json:"address,omitempty"`
	Timezone             string               `bson:"timezone,omitempty" json:"timezone,omitempty"`
	LogoURL              string               `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	LogoPublicID         string               `bson:"logoPublicId,omitempty" json:"logoPublicId,omitempty"`
	NotificationSettings NotificationSettings `bson:"notificationSettings" json:"notificationSettings"`
	Billing              Billing              `bson:"billing" json:"billing"`
	CreatedAt            time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// PublicSalon is the projection served to the public booking page.
// Notification rosters and billing details are never exposed.
type PublicSalon struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Timezone string `json:"timezone,omitempty"`
	LogoURL  string `json:"logoUrl,omitempty"`
}

// Public returns the booking-page projection of the salon.
func (s *Salon) Public() PublicSalon {
	return PublicSalon{
		ID:       s.ID,
		Slug:     s.Slug,
		Name:     s.Name,
		Phone:    s.Phone,
		Address:  s.Address,
		Timezone: s.Timezone,
		LogoURL:  s.LogoURL,
	}
}
