package models

import "time"

// Usage record kinds.
const (
	UsageKindBooking = "booking"
)

// UsageActorSystem marks usage recorded by the platform itself rather than
// a signed-in dashboard user.
const UsageActorSystem = "system"

// UsageRecord is one billable unit recorded against a salon.
type UsageRecord struct {
	ID          string    `bson:"id" json:"id"`
	SalonID     string    `bson:"salonId" json:"salonId"`
	Kind        string    `bson:"kind" json:"kind"`
	Actor       string    `bson:"actor" json:"actor"`
	ReferenceID string    `bson:"referenceId" json:"referenceId"` // Id of the record that generated the unit.
	Quantity    int64     `bson:"quantity" json:"quantity"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
