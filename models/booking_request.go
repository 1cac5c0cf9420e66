package models

import "time"

// Booking request statuses. A request is created as pending (or
// provider-requested when staff file it on a walk-in's behalf) and is
// later resolved from the dashboard.
const (
	StatusPending           = "pending"
	StatusProviderRequested = "provider-requested"
	StatusBooked            = "booked"
	StatusNotBooked         = "not-booked"
)

// NoStylistPreference is the sentinel the booking form submits when the
// client has no preferred stylist.
const NoStylistPreference = "Any service provider"

// BookingRequest is a single appointment ask from a prospective client.
// Created once by the intake pipeline and never mutated by it; status
// transitions happen from the dashboard.
type BookingRequest struct {
	ID                 string    `bson:"id" json:"id"`
	SalonID            string    `bson:"salonId" json:"salonId"`
	Name               string    `bson:"name" json:"name"`
	Email              string    `bson:"email" json:"email"`
	Phone              string    `bson:"phone" json:"phone"`
	Service            string    `bson:"service" json:"service"`
	StylistPreference  string    `bson:"stylistPreference" json:"stylistPreference"`
	DateTimePreference string    `bson:"dateTimePreference" json:"dateTimePreference"`
	Notes              string    `bson:"notes" json:"notes"`
	WaitlistOptIn      bool      `bson:"waitlistOptIn" json:"waitlistOptIn"`
	Status             string    `bson:"status" json:"status"`
	ProviderID         string    `bson:"providerId,omitempty" json:"providerId,omitempty"`     // Submitting staff member, if staff-filed.
	ProviderName       string    `bson:"providerName,omitempty" json:"providerName,omitempty"` // Submitting staff member's name, if staff-filed.
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`
}
