package models

import "time"

// Provider is a stylist listed on a salon's public booking page. A provider
// may be linked to a TeamMember account through TeamMemberID; only linked
// providers with ReceiveNotifications set get personal booking-request SMS.
type Provider struct {
	ID                   string    `bson:"id" json:"id"`
	SalonID              string    `bson:"salonId" json:"salonId"`
	Name                 string    `bson:"name" json:"name"` // Display name shown to clients.
	Title                string    `bson:"title,omitempty" json:"title,omitempty"`
	Bio                  string    `bson:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL             string    `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	IsTeamMember         bool      `bson:"isTeamMember" json:"isTeamMember"`
	TeamMemberID         string    `bson:"teamMemberId,omitempty" json:"teamMemberId,omitempty"`
	ReceiveNotifications bool      `bson:"receiveNotifications" json:"receiveNotifications"`
	Active               bool      `bson:"active" json:"active"`
	CreatedAt            time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time `bson:"updatedAt" json:"updatedAt"`
}
