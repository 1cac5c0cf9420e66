package notification

import (
	"fmt"
	"html"
	"strings"

	"salonflow/models"
)

// smsBookingAlert is the roster-wide "new booking request" text.
func smsBookingAlert(salon *models.Salon, req *models.BookingRequest) string {
	return fmt.Sprintf("New booking request at %s: %s requested %s (%s). Check your dashboard to respond.",
		salon.Name, req.Name, req.Service, req.DateTimePreference)
}

// providerBookingAlert is the personal text for a specifically requested provider.
func providerBookingAlert(provider *models.Provider, req *models.BookingRequest) string {
	return fmt.Sprintf("%s, you have a new booking request from %s: %s on %s.",
		provider.Name, req.Name, req.Service, req.DateTimePreference)
}

func emailBookingAlertText(req *models.BookingRequest, link string) string {
	var b strings.Builder
	b.WriteString("You have a new booking request.\n\n")
	fmt.Fprintf(&b, "Client: %s\n", req.Name)
	fmt.Fprintf(&b, "Service: %s\n", req.Service)
	fmt.Fprintf(&b, "Stylist preference: %s\n", req.StylistPreference)
	fmt.Fprintf(&b, "Requested time: %s\n", req.DateTimePreference)
	if req.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", req.Phone)
	}
	if req.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", req.Email)
	}
	if req.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", req.Notes)
	}
	fmt.Fprintf(&b, "\nManage this request: %s\n", link)
	return b.String()
}

func emailBookingAlertHTML(req *models.BookingRequest, link string) string {
	var b strings.Builder
	b.WriteString("<p>You have a new booking request.</p><ul>")
	fmt.Fprintf(&b, "<li><strong>Client:</strong> %s</li>", html.EscapeString(req.Name))
	fmt.Fprintf(&b, "<li><strong>Service:</strong> %s</li>", html.EscapeString(req.Service))
	fmt.Fprintf(&b, "<li><strong>Stylist preference:</strong> %s</li>", html.EscapeString(req.StylistPreference))
	fmt.Fprintf(&b, "<li><strong>Requested time:</strong> %s</li>", html.EscapeString(req.DateTimePreference))
	if req.Phone != "" {
		fmt.Fprintf(&b, "<li><strong>Phone:</strong> %s</li>", html.EscapeString(req.Phone))
	}
	if req.Email != "" {
		fmt.Fprintf(&b, "<li><strong>Email:</strong> %s</li>", html.EscapeString(req.Email))
	}
	if req.Notes != "" {
		fmt.Fprintf(&b, "<li><strong>Notes:</strong> %s</li>", html.EscapeString(req.Notes))
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, `<p><a href="%s">Manage this request</a></p>`, link)
	return b.String()
}
