package models

import "time"

// TeamMember is a staff account at a salon, distinct from the public
// Provider listing. Carries the contact phone used for personal SMS alerts.
type TeamMember struct {
	ID        string    `bson:"id" json:"id"`
	SalonID   string    `bson:"salonId" json:"salonId"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role      string    `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
